package usecase

import (
	"context"
	"net/http"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジックです。
// 単価は追加時点で確定し、以降は再計算しない。
type CartUsecase struct {
	cartStore   repo.CartStore
	catalogRepo repo.CatalogRepository
}

func NewCartUsecase(cartStore repo.CartStore, catalogRepo repo.CatalogRepository) *CartUsecase {
	return &CartUsecase{
		cartStore:   cartStore,
		catalogRepo: catalogRepo,
	}
}

type CartLineResponse struct {
	ItemName string `json:"item_name"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price"`
	SubTotal string `json:"sub_total"`
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total string             `json:"total"`
}

type AddItemInput struct {
	Identifier string
	Quantity   int64
}

// GetCart はカート取得（無ければ空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, token string) (CartResponse, error) {
	if token == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartStore.Get(ctx, token)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	return toCartResponse(cart), nil
}

// AddItem はカートに追加（同一商品名は数量加算、新規は末尾に追記）。
func (u *CartUsecase) AddItem(ctx context.Context, token string, in AddItemInput) (CartResponse, error) {
	if token == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	//商品解決（バーコード→商品名の順）
	p, err := u.resolveProduct(ctx, in.Identifier)
	if err != nil {
		return CartResponse{}, err
	}

	cart, err := u.cartStore.Get(ctx, token)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	//既存明細があれば加算、無ければ追加時点の価格で新規行
	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].ItemName == p.Name {
			cart.Lines[i].Quantity += in.Quantity
			cart.Lines[i].SubTotal = cart.Lines[i].UnitPrice.Mul(decimal.NewFromInt(cart.Lines[i].Quantity))
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, model.CartLine{
			ItemName:  p.Name,
			Quantity:  in.Quantity,
			UnitPrice: p.Price,
			SubTotal:  p.Price.Mul(decimal.NewFromInt(in.Quantity)),
		})
	}

	if err := u.cartStore.Save(ctx, token, cart); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	return toCartResponse(cart), nil
}

func (u *CartUsecase) resolveProduct(ctx context.Context, identifier string) (model.Product, error) {
	if identifier == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid identifier")
	}

	p, err := u.catalogRepo.FindByBarcode(ctx, identifier)
	if err == nil {
		return p, nil
	}
	if err != repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusBadGateway, "store unavailable")
	}

	p, err = u.catalogRepo.FindByName(ctx, identifier)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadGateway, "store unavailable")
	}
	return p, nil
}

func toCartResponse(cart model.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, CartLineResponse{
			ItemName: l.ItemName,
			Quantity: l.Quantity,
			Price:    l.UnitPrice.StringFixed(2),
			SubTotal: l.SubTotal.StringFixed(2),
		})
	}
	return CartResponse{
		Lines: lines,
		Total: cart.Total().StringFixed(2),
	}
}
