package repository

import (
	"context"
	"strconv"
	"time"

	"pos/internal/domain/model"

	"gorm.io/gorm"
)

type SalesGormRepository struct {
	db *gorm.DB
}

// DI
func NewSalesGormRepository(db *gorm.DB) *SalesGormRepository {
	return &SalesGormRepository{db: db}
}

// 1注文ぶんの行をトランザクションでまとめて追記する。
// 同じ注文の行が他の注文と混ざらないようにするため。
func (r *SalesGormRepository) AppendAll(ctx context.Context, rows []model.SaleRecord) error {
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// UTCの1日ぶん（day 00:00 <= sold_at < 翌日00:00）を取得
func (r *SalesGormRepository) ListByDate(ctx context.Context, day time.Time) ([]model.SaleRecord, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var rows []model.SaleRecord

	if err := r.db.WithContext(ctx).
		Where("sold_at >= ? AND sold_at < ?", start, end).
		Order("id asc").
		Find(&rows).Error; err != nil {
		return []model.SaleRecord{}, err
	}

	return rows, nil
}

// 数値として読めるOrder IDの最大値を返す。
// 数値でないIDは無視する（ランダムID運用の行が混ざっていても壊れない）。
func (r *SalesGormRepository) MaxNumericOrderID(ctx context.Context) (int64, error) {
	var ids []string

	if err := r.db.WithContext(ctx).
		Model(&model.SaleRecord{}).
		Distinct("order_id").
		Pluck("order_id", &ids).Error; err != nil {
		return 0, err
	}

	var max int64 = 0
	for _, id := range ids {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}
