package usecase

import (
	"context"
	"net/http"
	"time"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
)

// 現在時刻を返す約束（テストで差し替える）
type Clock interface {
	Now() time.Time
}

// CheckoutUsecase はカートを確定して売上台帳に追記します。
// 台帳は追記専用。書き込みは1注文=1バッチで、成功したらカートを空にする。
type CheckoutUsecase struct {
	cartStore repo.CartStore
	salesRepo repo.SalesRepository
	orderIDs  OrderIDGenerator
	clock     Clock
}

func NewCheckoutUsecase(
	cartStore repo.CartStore,
	salesRepo repo.SalesRepository,
	orderIDs OrderIDGenerator,
	clock Clock,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartStore: cartStore,
		salesRepo: salesRepo,
		orderIDs:  orderIDs,
		clock:     clock,
	}
}

type CheckoutInput struct {
	PaymentMethod string
}

type OrderLineOutput struct {
	ItemName string `json:"item_name"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price"`
	SubTotal string `json:"sub_total"`
}

type OrderOutput struct {
	OrderID       string            `json:"order_id"`
	SoldAt        time.Time         `json:"sold_at"`
	Lines         []OrderLineOutput `json:"lines"`
	Total         string            `json:"total"`
	PaymentMethod string            `json:"payment_method"`
	DutyPerson    string            `json:"duty_person"`
}

// Checkout は注文を確定する。
// 空カートは400で台帳に何も書かない。単価はカートに固定済みの値を使う。
func (u *CheckoutUsecase) Checkout(ctx context.Context, token string, dutyPerson string, in CheckoutInput) (OrderOutput, error) {
	if token == "" {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	method := model.PaymentMethod(in.PaymentMethod)
	if !method.Valid() {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment_method")
	}

	cart, err := u.cartStore.Get(ctx, token)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	if len(cart.Lines) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	orderID, err := u.orderIDs.NextID(ctx)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusBadGateway, "store unavailable")
	}

	order := model.Order{
		OrderID:       orderID,
		SoldAt:        u.clock.Now().UTC(),
		Lines:         cart.Lines,
		Total:         cart.Total(),
		PaymentMethod: method,
		DutyPerson:    dutyPerson,
	}

	//1明細=1行。Order Totalは全行に入れる
	rows := make([]model.SaleRecord, 0, len(order.Lines))
	for _, l := range order.Lines {
		rows = append(rows, model.SaleRecord{
			OrderID:       order.OrderID,
			SoldAt:        order.SoldAt,
			ItemName:      l.ItemName,
			Quantity:      l.Quantity,
			Price:         l.UnitPrice.StringFixed(2),
			SubTotal:      l.SubTotal.StringFixed(2),
			OrderTotal:    order.Total.StringFixed(2),
			PaymentMethod: string(order.PaymentMethod),
			DutyPerson:    order.DutyPerson,
		})
	}

	if err := u.salesRepo.AppendAll(ctx, rows); err != nil {
		//行が書けたかは不明のまま呼び出し側に返す。自動リトライはしない
		return OrderOutput{}, NewHTTPError(http.StatusBadGateway, "store unavailable")
	}

	//追記が成功してからカートを空にする
	if err := u.cartStore.Delete(ctx, token); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	lines := make([]OrderLineOutput, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, OrderLineOutput{
			ItemName: l.ItemName,
			Quantity: l.Quantity,
			Price:    l.UnitPrice.StringFixed(2),
			SubTotal: l.SubTotal.StringFixed(2),
		})
	}

	return OrderOutput{
		OrderID:       order.OrderID,
		SoldAt:        order.SoldAt,
		Lines:         lines,
		Total:         order.Total.StringFixed(2),
		PaymentMethod: string(order.PaymentMethod),
		DutyPerson:    order.DutyPerson,
	}, nil
}

// NextOrderID は採番だけ先に見たいクライアント用。
func (u *CheckoutUsecase) NextOrderID(ctx context.Context) (string, error) {
	id, err := u.orderIDs.NextID(ctx)
	if err != nil {
		return "", NewHTTPError(http.StatusBadGateway, "store unavailable")
	}
	return id, nil
}
