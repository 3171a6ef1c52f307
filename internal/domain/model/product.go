package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventoryタブの1行（Barcode / Item Name / Unit Price）
type Product struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Barcode   string          `gorm:"type:varchar(64);not null;uniqueIndex" json:"barcode"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
