package usecase

import (
	"context"
	"net/http"
	"strings"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// CatalogUsecase は商品の解決と一覧の業務ロジックです。
// スキャン失敗は想定内のエラーなので、404には手動選択用の一覧取得で続ける。
type CatalogUsecase struct {
	catalogRepo repo.CatalogRepository
	listGroup   singleflight.Group
}

func NewCatalogUsecase(catalogRepo repo.CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{catalogRepo: catalogRepo}
}

type ProductOutput struct {
	ID       int64  `json:"id"`
	Barcode  string `json:"barcode"`
	ItemName string `json:"item_name"`
	Price    string `json:"price"`
}

type ProductListOutput struct {
	Items []ProductOutput `json:"items"`
}

// Resolve はバーコード完全一致→商品名完全一致の順で引く。
// どちらも外れたら404。呼び出し側はListAllで手動選択にフォールバックする。
func (u *CatalogUsecase) Resolve(ctx context.Context, identifier string) (ProductOutput, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid identifier")
	}

	p, err := u.catalogRepo.FindByBarcode(ctx, identifier)
	if err == nil {
		return toProductOutput(p), nil
	}
	if err != repo.ErrNotFound {
		return ProductOutput{}, NewHTTPError(http.StatusBadGateway, "store unavailable")
	}

	//バーコードで外れたら商品名で引く
	p, err = u.catalogRepo.FindByName(ctx, identifier)
	if err == repo.ErrNotFound {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductOutput{}, NewHTTPError(http.StatusBadGateway, "store unavailable")
	}

	return toProductOutput(p), nil
}

// ListAll は全商品。毎回フルテーブルを読むので同時呼び出しは1回にまとめる。
func (u *CatalogUsecase) ListAll(ctx context.Context) (ProductListOutput, error) {
	v, err, _ := u.listGroup.Do("list_all", func() (interface{}, error) {
		return u.catalogRepo.ListAll(ctx)
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusBadGateway, "store unavailable")
	}

	items := v.([]model.Product)
	out := make([]ProductOutput, 0, len(items))
	for _, p := range items {
		out = append(out, toProductOutput(p))
	}
	return ProductListOutput{Items: out}, nil
}

// PriceOf は単価を返す。不明な商品は404（黙って0にはしない）。
func (u *CatalogUsecase) PriceOf(ctx context.Context, identifier string) (decimal.Decimal, error) {
	out, err := u.Resolve(ctx, identifier)
	if err != nil {
		return decimal.Zero, err
	}

	price, perr := decimal.NewFromString(out.Price)
	if perr != nil {
		return decimal.Zero, NewHTTPError(http.StatusBadGateway, "store unavailable")
	}
	return price, nil
}

func toProductOutput(p model.Product) ProductOutput {
	return ProductOutput{
		ID:       p.ID,
		Barcode:  p.Barcode,
		ItemName: p.Name,
		Price:    p.Price.StringFixed(2),
	}
}
