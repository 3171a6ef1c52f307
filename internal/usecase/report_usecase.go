package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReportUsecase は日次の売上集計とCSV出力です。
// 日付はUTCのカレンダー日付で揃える。
type ReportUsecase struct {
	salesRepo repo.SalesRepository
	logger    *zap.Logger
}

func NewReportUsecase(salesRepo repo.SalesRepository, logger *zap.Logger) *ReportUsecase {
	return &ReportUsecase{
		salesRepo: salesRepo,
		logger:    logger,
	}
}

type SaleRowOutput struct {
	OrderID       string `json:"order_id"`
	SoldAt        string `json:"sold_at"`
	ItemName      string `json:"item_name"`
	Quantity      int64  `json:"quantity"`
	Price         string `json:"price"`
	SubTotal      string `json:"sub_total"`
	OrderTotal    string `json:"order_total"`
	PaymentMethod string `json:"payment_method"`
	DutyPerson    string `json:"duty_person"`
}

type SummaryOutput struct {
	Date         string          `json:"date"`
	TotalRevenue string          `json:"total_revenue"`
	Rows         []SaleRowOutput `json:"rows"`
}

// SummaryForDate は指定日の行と売上合計。
// Order Totalは全行に入っているので、注文IDごとに1回だけ数える。
// 数値として読めない合計の行は飛ばす（エラーにしない）。
func (u *ReportUsecase) SummaryForDate(ctx context.Context, day time.Time) (SummaryOutput, error) {
	rows, err := u.salesRepo.ListByDate(ctx, day)
	if err != nil {
		return SummaryOutput{}, NewHTTPError(http.StatusBadGateway, "store unavailable")
	}

	total := decimal.Zero
	counted := make(map[string]bool)

	out := make([]SaleRowOutput, 0, len(rows))
	for _, r := range rows {
		out = append(out, toSaleRowOutput(r))

		if counted[r.OrderID] {
			continue
		}
		v, perr := decimal.NewFromString(r.OrderTotal)
		if perr != nil {
			u.logger.Warn("skipping sale row with non-numeric order total",
				zap.String("order_id", r.OrderID),
				zap.String("order_total", r.OrderTotal),
			)
			continue
		}
		counted[r.OrderID] = true
		total = total.Add(v)
	}

	return SummaryOutput{
		Date:         day.UTC().Format("2006-01-02"),
		TotalRevenue: total.StringFixed(2),
		Rows:         out,
	}, nil
}

// RevenueForDate は合計だけ欲しい呼び出し用。
func (u *ReportUsecase) RevenueForDate(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	sum, err := u.SummaryForDate(ctx, day)
	if err != nil {
		return decimal.Zero, err
	}

	v, perr := decimal.NewFromString(sum.TotalRevenue)
	if perr != nil {
		return decimal.Zero, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return v, nil
}

// CSVのカラム順は固定。同じ入力なら必ず同じバイト列になる。
var csvHeader = []string{
	"Order ID", "Date & Time", "Item Name", "Quantity",
	"Price", "Sub Total", "Order Total", "POS", "Duty Person",
}

// ExportCSV は指定日の売上をCSVにする。
func (u *ReportUsecase) ExportCSV(ctx context.Context, day time.Time) ([]byte, error) {
	rows, err := u.salesRepo.ListByDate(ctx, day)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadGateway, "store unavailable")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	for _, r := range rows {
		rec := []string{
			r.OrderID,
			r.SoldAt.UTC().Format("2006-01-02 15:04:05"),
			r.ItemName,
			strconv.FormatInt(r.Quantity, 10),
			r.Price,
			r.SubTotal,
			r.OrderTotal,
			r.PaymentMethod,
			r.DutyPerson,
		}
		if err := w.Write(rec); err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return buf.Bytes(), nil
}

func toSaleRowOutput(r model.SaleRecord) SaleRowOutput {
	return SaleRowOutput{
		OrderID:       r.OrderID,
		SoldAt:        r.SoldAt.UTC().Format("2006-01-02 15:04:05"),
		ItemName:      r.ItemName,
		Quantity:      r.Quantity,
		Price:         r.Price,
		SubTotal:      r.SubTotal,
		OrderTotal:    r.OrderTotal,
		PaymentMethod: r.PaymentMethod,
		DutyPerson:    r.DutyPerson,
	}
}
