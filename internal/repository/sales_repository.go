package repository

import (
	"context"
	"time"

	"pos/internal/domain/model"
)

// Salesタブ相当の追記専用ストア
type SalesRepository interface {
	// 1注文ぶんの行をまとめて追記する。行が分断されないこと。
	AppendAll(ctx context.Context, rows []model.SaleRecord) error
	// UTCのカレンダー日付で絞り込む
	ListByDate(ctx context.Context, day time.Time) ([]model.SaleRecord, error)
	// 数値として読めるOrder IDの最大値。1件も無ければ0
	MaxNumericOrderID(ctx context.Context) (int64, error)
}
