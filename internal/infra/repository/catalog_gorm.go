package repository

import (
	"context"
	"errors"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"gorm.io/gorm"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

// DI
func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// バーコード完全一致で1件取得
func (r *CatalogGormRepository) FindByBarcode(ctx context.Context, barcode string) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("barcode = ?", barcode).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品名完全一致で1件取得（フォールバック選択用）
func (r *CatalogGormRepository) FindByName(ctx context.Context, name string) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 全商品を登録順で取得
func (r *CatalogGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var items []model.Product

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Product{}, err
	}

	return items, nil
}
