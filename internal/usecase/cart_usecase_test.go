package usecase_test

import (
	"context"
	"testing"

	"pos/internal/domain/model"
	"pos/internal/infra/cartstore"
	repo "pos/internal/repository"
	"pos/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type CartCatalogRepoMock struct{ mock.Mock }

func (m *CartCatalogRepoMock) FindByBarcode(ctx context.Context, barcode string) (model.Product, error) {
	args := m.Called(ctx, barcode)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CartCatalogRepoMock) FindByName(ctx context.Context, name string) (model.Product, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CartCatalogRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	panic("not used in CartUsecase tests")
}

func chai() model.Product {
	return model.Product{ID: 1, Barcode: "111", Name: "Chai", Price: decimal.NewFromInt(50)}
}

func samosa() model.Product {
	return model.Product{ID: 2, Barcode: "222", Name: "Samosa", Price: decimal.NewFromInt(30)}
}

func newCartUC(catalog *CartCatalogRepoMock) (*usecase.CartUsecase, repo.CartStore) {
	store := cartstore.NewMemoryStore()
	return usecase.NewCartUsecase(store, catalog), store
}

func TestCartUsecase_AddItem_NewLine(t *testing.T) {
	catalog := new(CartCatalogRepoMock)
	catalog.On("FindByBarcode", mock.Anything, "111").Return(chai(), nil)

	uc, _ := newCartUC(catalog)

	out, err := uc.AddItem(context.Background(), "tok", usecase.AddItemInput{Identifier: "111", Quantity: 2})
	assert.NoError(t, err)
	assert.Len(t, out.Lines, 1)
	assert.Equal(t, "Chai", out.Lines[0].ItemName)
	assert.Equal(t, int64(2), out.Lines[0].Quantity)
	assert.Equal(t, "50.00", out.Lines[0].Price)
	assert.Equal(t, "100.00", out.Lines[0].SubTotal)
	assert.Equal(t, "100.00", out.Total)
}

// 同じ商品を何度追加しても明細は1行のまま、数量と小計だけ増える
func TestCartUsecase_AddItem_MergesDuplicates(t *testing.T) {
	catalog := new(CartCatalogRepoMock)
	catalog.On("FindByBarcode", mock.Anything, "111").Return(chai(), nil)

	uc, _ := newCartUC(catalog)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.AddItem(ctx, "tok", usecase.AddItemInput{Identifier: "111", Quantity: 1})
		assert.NoError(t, err)
	}

	out, err := uc.GetCart(ctx, "tok")
	assert.NoError(t, err)
	assert.Len(t, out.Lines, 1)
	assert.Equal(t, int64(3), out.Lines[0].Quantity)
	assert.Equal(t, "150.00", out.Lines[0].SubTotal)
	assert.Equal(t, "150.00", out.Total)
}

// 追加順が保たれる（並べ替えはしない）
func TestCartUsecase_AddItem_PreservesInsertionOrder(t *testing.T) {
	catalog := new(CartCatalogRepoMock)
	catalog.On("FindByBarcode", mock.Anything, "222").Return(samosa(), nil)
	catalog.On("FindByBarcode", mock.Anything, "111").Return(chai(), nil)

	uc, _ := newCartUC(catalog)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "tok", usecase.AddItemInput{Identifier: "222", Quantity: 1})
	assert.NoError(t, err)
	_, err = uc.AddItem(ctx, "tok", usecase.AddItemInput{Identifier: "111", Quantity: 1})
	assert.NoError(t, err)
	_, err = uc.AddItem(ctx, "tok", usecase.AddItemInput{Identifier: "222", Quantity: 1})
	assert.NoError(t, err)

	out, err := uc.GetCart(ctx, "tok")
	assert.NoError(t, err)
	assert.Len(t, out.Lines, 2)
	assert.Equal(t, "Samosa", out.Lines[0].ItemName)
	assert.Equal(t, "Chai", out.Lines[1].ItemName)
	assert.Equal(t, int64(2), out.Lines[0].Quantity)
	assert.Equal(t, "110.00", out.Total)
}

// バーコードで外れたら商品名で解決する（手動選択のパス）
func TestCartUsecase_AddItem_FallsBackToName(t *testing.T) {
	catalog := new(CartCatalogRepoMock)
	catalog.On("FindByBarcode", mock.Anything, "Chai").Return(model.Product{}, repo.ErrNotFound)
	catalog.On("FindByName", mock.Anything, "Chai").Return(chai(), nil)

	uc, _ := newCartUC(catalog)

	out, err := uc.AddItem(context.Background(), "tok", usecase.AddItemInput{Identifier: "Chai", Quantity: 1})
	assert.NoError(t, err)
	assert.Len(t, out.Lines, 1)
	assert.Equal(t, "Chai", out.Lines[0].ItemName)
}

func TestCartUsecase_AddItem_UnknownProduct(t *testing.T) {
	catalog := new(CartCatalogRepoMock)
	catalog.On("FindByBarcode", mock.Anything, "999").Return(model.Product{}, repo.ErrNotFound)
	catalog.On("FindByName", mock.Anything, "999").Return(model.Product{}, repo.ErrNotFound)

	uc, _ := newCartUC(catalog)

	_, err := uc.AddItem(context.Background(), "tok", usecase.AddItemInput{Identifier: "999", Quantity: 1})
	assertErrContains(t, err, "not found")
}

// 数量省略は1扱い
func TestCartUsecase_AddItem_DefaultQuantity(t *testing.T) {
	catalog := new(CartCatalogRepoMock)
	catalog.On("FindByBarcode", mock.Anything, "111").Return(chai(), nil)

	uc, _ := newCartUC(catalog)

	out, err := uc.AddItem(context.Background(), "tok", usecase.AddItemInput{Identifier: "111"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Lines[0].Quantity)
}

func TestCartUsecase_AddItem_NegativeQuantity(t *testing.T) {
	catalog := new(CartCatalogRepoMock)
	uc, _ := newCartUC(catalog)

	_, err := uc.AddItem(context.Background(), "tok", usecase.AddItemInput{Identifier: "111", Quantity: -1})
	assertErrContains(t, err, "invalid quantity")
}

// セッションごとにカートは別
func TestCartUsecase_CartsAreSessionScoped(t *testing.T) {
	catalog := new(CartCatalogRepoMock)
	catalog.On("FindByBarcode", mock.Anything, "111").Return(chai(), nil)

	uc, _ := newCartUC(catalog)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "tok-a", usecase.AddItemInput{Identifier: "111", Quantity: 1})
	assert.NoError(t, err)

	out, err := uc.GetCart(ctx, "tok-b")
	assert.NoError(t, err)
	assert.Len(t, out.Lines, 0)
	assert.Equal(t, "0.00", out.Total)
}
