package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartUC(store *mockCartStore, repo *mockProductRepo) *CartUseCase {
	return NewCartUC(store, repo, logger.NewSlogLogger())
}

func plainProduct(id int64, price int64, inventory int) *domain.Product {
	return &domain.Product{
		ID:        id,
		Name:      "Bucket Hat",
		Slug:      "bucket-hat",
		Price:     price,
		Inventory: inventory,
	}
}

func TestCartUC_GetCart_UnknownTokenReturnsEmptyCart(t *testing.T) {
	uc := newCartUC(newMockCartStore(), newMockProductRepo())

	res, err := uc.GetCart(context.Background(), "no-such-token")

	require.NoError(t, err)
	assert.True(t, res.Cart.IsEmpty())
	assert.False(t, res.OpenDrawer)
}

func TestCartUC_AddItem_DefaultsQuantityToOne(t *testing.T) {
	store := newMockCartStore()
	uc := newCartUC(store, newMockProductRepo(plainProduct(1, 500_000, 10)))

	res, err := uc.AddItem(context.Background(), NewAddItemReq("t", 1, nil, 0))

	require.NoError(t, err)
	assert.Equal(t, 1, res.Result.Added)
	assert.True(t, res.OpenDrawer)
	assert.Equal(t, 1, store.saves)
}

func TestCartUC_AddItem_NegativeQuantity(t *testing.T) {
	uc := newCartUC(newMockCartStore(), newMockProductRepo(plainProduct(1, 500_000, 10)))

	_, err := uc.AddItem(context.Background(), NewAddItemReq("t", 1, nil, -2))

	assert.ErrorIs(t, err, e.ErrInvalidQuantity)
}

func TestCartUC_AddItem_UnknownProduct(t *testing.T) {
	uc := newCartUC(newMockCartStore(), newMockProductRepo())

	_, err := uc.AddItem(context.Background(), NewAddItemReq("t", 99, nil, 1))

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCartUC_AddItem_VariantRequiredWhenProductHasVariants(t *testing.T) {
	p := plainProduct(1, 500_000, 10)
	p.Variants = []domain.ProductVariant{{ID: 7, ProductID: 1, Inventory: 5}}
	uc := newCartUC(newMockCartStore(), newMockProductRepo(p))

	_, err := uc.AddItem(context.Background(), NewAddItemReq("t", 1, nil, 1))

	assert.ErrorIs(t, err, e.ErrVariantRequired)
}

func TestCartUC_AddItem_UnknownVariant(t *testing.T) {
	p := plainProduct(1, 500_000, 10)
	p.Variants = []domain.ProductVariant{{ID: 7, ProductID: 1, Inventory: 5}}
	uc := newCartUC(newMockCartStore(), newMockProductRepo(p))

	badVariant := int64(99)
	_, err := uc.AddItem(context.Background(), NewAddItemReq("t", 1, &badVariant, 1))

	assert.ErrorIs(t, err, e.ErrVariantNotFound)
}

func TestCartUC_AddItem_SaveFailureDoesNotFailRequest(t *testing.T) {
	store := newMockCartStore()
	store.saveErr = errors.New("redis down")
	uc := newCartUC(store, newMockProductRepo(plainProduct(1, 500_000, 10)))

	res, err := uc.AddItem(context.Background(), NewAddItemReq("t", 1, nil, 2))

	require.NoError(t, err)
	assert.Equal(t, 2, res.Result.Added)
	assert.Equal(t, int64(1_000_000), res.Cart.Totals.Subtotal)
}

func TestCartUC_SetItemQuantity_ClampsToCurrentInventory(t *testing.T) {
	store := newMockCartStore()
	uc := newCartUC(store, newMockProductRepo(plainProduct(1, 500_000, 3)))

	_, err := uc.AddItem(context.Background(), NewAddItemReq("t", 1, nil, 2))
	require.NoError(t, err)

	res, err := uc.SetItemQuantity(context.Background(), "t", "1", 10)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Cart.Items[0].Quantity)
}

func TestCartUC_SetItemQuantity_InventoryLookupFailureSkipsClamp(t *testing.T) {
	store := newMockCartStore()
	repo := newMockProductRepo(plainProduct(1, 500_000, 10))
	uc := newCartUC(store, repo)

	_, err := uc.AddItem(context.Background(), NewAddItemReq("t", 1, nil, 2))
	require.NoError(t, err)

	repo.getErr = errors.New("catalog unavailable")
	res, err := uc.SetItemQuantity(context.Background(), "t", "1", 50)

	require.NoError(t, err)
	assert.Equal(t, 50, res.Cart.Items[0].Quantity)
}

func TestCartUC_SetItemQuantity_MissingLineIsNoop(t *testing.T) {
	store := newMockCartStore()
	uc := newCartUC(store, newMockProductRepo())

	res, err := uc.SetItemQuantity(context.Background(), "t", "99", 5)

	require.NoError(t, err)
	assert.True(t, res.Cart.IsEmpty())
	assert.Equal(t, 0, store.saves)
}

func TestCartUC_RemoveItem(t *testing.T) {
	store := newMockCartStore()
	uc := newCartUC(store, newMockProductRepo(plainProduct(1, 500_000, 10)))

	_, err := uc.AddItem(context.Background(), NewAddItemReq("t", 1, nil, 2))
	require.NoError(t, err)

	res, err := uc.RemoveItem(context.Background(), "t", "1")

	require.NoError(t, err)
	assert.True(t, res.Cart.IsEmpty())
	assert.Equal(t, int64(0), res.Cart.Totals.Total)
}

func TestCartUC_ClearCart(t *testing.T) {
	store := newMockCartStore()
	uc := newCartUC(store, newMockProductRepo(plainProduct(1, 500_000, 10)))

	_, err := uc.AddItem(context.Background(), NewAddItemReq("t", 1, nil, 2))
	require.NoError(t, err)

	require.NoError(t, uc.ClearCart(context.Background(), "t"))

	res, err := uc.GetCart(context.Background(), "t")
	require.NoError(t, err)
	assert.True(t, res.Cart.IsEmpty())
}
