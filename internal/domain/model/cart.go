package model

import "github.com/shopspring/decimal"

// カートの明細
// unit_price は追加時点の価格を必ず保存（チェックアウト時に再計算しない）。
type CartLine struct {
	ItemName  string          `json:"item_name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	SubTotal  decimal.Decimal `json:"sub_total"`
}

// 1セッションにつきカートは1つ。永続化はしない。
type Cart struct {
	Token string     `json:"token"`
	Lines []CartLine `json:"lines"`
}

// 明細の合計
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.SubTotal)
	}
	return total
}
