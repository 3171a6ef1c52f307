package cartstore

import (
	"context"
	"testing"

	"pos/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testCart(token string) model.Cart {
	price := decimal.NewFromInt(50)
	return model.Cart{
		Token: token,
		Lines: []model.CartLine{
			{ItemName: "Chai", Quantity: 2, UnitPrice: price, SubTotal: price.Mul(decimal.NewFromInt(2))},
		},
	}
}

func TestMemoryStore_GetMissingReturnsEmptyCart(t *testing.T) {
	s := NewMemoryStore()

	cart, err := s.Get(context.Background(), "none")
	assert.NoError(t, err)
	assert.Equal(t, "none", cart.Token)
	assert.Len(t, cart.Lines, 0)
}

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Save(ctx, "tok", testCart("tok")))

	cart, err := s.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, "Chai", cart.Lines[0].ItemName)

	assert.NoError(t, s.Delete(ctx, "tok"))

	cart, err = s.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.Len(t, cart.Lines, 0)
}

// 取り出したカートをいじっても保存済みの中身は変わらない
func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Save(ctx, "tok", testCart("tok")))

	cart, err := s.Get(ctx, "tok")
	assert.NoError(t, err)
	cart.Lines[0].ItemName = "mutated"

	again, err := s.Get(ctx, "tok")
	assert.NoError(t, err)
	assert.Equal(t, "Chai", again.Lines[0].ItemName)
}
