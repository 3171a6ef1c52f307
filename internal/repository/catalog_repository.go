package repository

import (
	"context"

	"pos/internal/domain/model"
)

type CatalogRepository interface {
	// バーコード完全一致。無ければ ErrNotFound
	FindByBarcode(ctx context.Context, barcode string) (model.Product, error)
	// 商品名完全一致（手動選択フォールバック用）。無ければ ErrNotFound
	FindByName(ctx context.Context, name string) (model.Product, error)
	// 全件取得
	ListAll(ctx context.Context) ([]model.Product, error)
}
