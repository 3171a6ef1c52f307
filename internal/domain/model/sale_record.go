package model

import "time"

// Salesタブの1行。注文1件につき明細ごとに1行を追記する。
// 金額カラムはシート由来の文字列のまま持ち、集計側でパースする。
// 追記専用。更新・削除は存在しない。
type SaleRecord struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       string    `gorm:"type:varchar(64);not null;index" json:"order_id"`
	SoldAt        time.Time `gorm:"not null;index" json:"sold_at"`
	ItemName      string    `gorm:"type:varchar(255);not null" json:"item_name"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	Price         string    `gorm:"type:varchar(32);not null" json:"price"`
	SubTotal      string    `gorm:"type:varchar(32);not null" json:"sub_total"`
	OrderTotal    string    `gorm:"type:varchar(32);not null" json:"order_total"`
	PaymentMethod string    `gorm:"type:varchar(20);not null" json:"payment_method"`
	DutyPerson    string    `gorm:"type:varchar(255);not null" json:"duty_person"`
}
