package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "Cash"
	PaymentJazzCash  PaymentMethod = "Jazzcash"
	PaymentEasypaisa PaymentMethod = "Easypaisa"
)

// 対応している支払い方法か
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentJazzCash, PaymentEasypaisa:
		return true
	}
	return false
}

// 確定済みの注文。作成後は変更しない。
type Order struct {
	OrderID       string          `json:"order_id"`
	SoldAt        time.Time       `json:"sold_at"`
	Lines         []CartLine      `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	DutyPerson    string          `json:"duty_person"`
}
