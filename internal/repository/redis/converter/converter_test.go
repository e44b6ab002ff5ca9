package converter

import (
	"testing"
	"time"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartConverter_RoundTrip(t *testing.T) {
	conv := NewCartConverter()

	cart := domain.NewCart()
	size := "L"
	cart.AddItem(
		&domain.Product{ID: 1, Name: "Fedora", Slug: "fedora", Price: 500_000, Inventory: 10},
		&domain.ProductVariant{ID: 7, ProductID: 1, Size: &size, PriceAdjustment: 100_000, Inventory: 5},
		2,
	)
	cart.AddItem(
		&domain.Product{ID: 2, Name: "Beanie", Slug: "beanie", Price: 300_000, Inventory: 10},
		nil,
		1,
	)

	restored := conv.ToEntity(conv.ToModel(cart))

	require.Len(t, restored.Items, 2)
	assert.Equal(t, cart.Items, restored.Items)
	assert.Equal(t, cart.Totals, restored.Totals)
}

func TestCartConverter_ToEntityRecomputesTotals(t *testing.T) {
	conv := NewCartConverter()

	// модель без сумм: только строки, как в Redis
	model := &CartModel{Items: []CartLineModel{
		{ID: "1", ProductID: 1, ProductName: "Fedora", ProductPrice: 500_000, ProductSlug: "fedora", Quantity: 2},
	}}

	cart := conv.ToEntity(model)

	assert.Equal(t, int64(1_000_000), cart.Totals.Subtotal)
	assert.Equal(t, int64(75_000), cart.Totals.Tax)
	assert.Equal(t, domain.FlatShippingCost, cart.Totals.Shipping)
}

func TestProductConverter_RoundTrip(t *testing.T) {
	conv := NewProductConverter()

	color := "black"
	createdAt := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	updatedAt := createdAt.Add(48 * time.Hour)
	product := &domain.Product{
		ID:         3,
		Name:       "Snapback",
		Slug:       "snapback",
		Price:      450_000,
		Inventory:  12,
		CategoryID: 2,
		CreatedAt:  createdAt,
		UpdatedAt:  &updatedAt,
		Images: []domain.ProductImage{
			{ID: 1, ProductID: 3, ObjectKey: "snapback/a.jpg", Position: 0},
		},
		Variants: []domain.ProductVariant{
			{ID: 9, ProductID: 3, Color: &color, PriceAdjustment: 50_000, Inventory: 4},
		},
	}

	restored := conv.ToEntity(conv.ToModel(product))

	assert.Equal(t, product, restored)
}
