package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id int64, price int64, inventory int) *Product {
	return &Product{
		ID:        id,
		Name:      "Fedora",
		Slug:      "fedora",
		Price:     price,
		Inventory: inventory,
	}
}

func testVariant(id int64, adjustment int64, inventory int) *ProductVariant {
	size := "M"
	return &ProductVariant{
		ID:              id,
		Size:            &size,
		PriceAdjustment: adjustment,
		Inventory:       inventory,
	}
}

func TestLineItemID(t *testing.T) {
	assert.Equal(t, "42", LineItemID(42, nil))

	variantID := int64(7)
	assert.Equal(t, "42:7", LineItemID(42, &variantID))
}

func TestAddItem_MergesExistingLine(t *testing.T) {
	cart := NewCart()
	p := testProduct(1, 500_000, 100)

	first := cart.AddItem(p, nil, 2)
	second := cart.AddItem(p, nil, 3)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, first.LineID, second.LineID)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, int64(2_500_000), cart.Totals.Subtotal)
}

func TestAddItem_ClampsToAvailable(t *testing.T) {
	cart := NewCart()
	p := testProduct(1, 500_000, 10)

	res := cart.AddItem(p, nil, 15)

	assert.True(t, res.Limited)
	assert.Equal(t, 15, res.Requested)
	assert.Equal(t, 10, res.Added)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, 10, cart.Items[0].Quantity)
}

func TestAddItem_ClampAccountsForCartContents(t *testing.T) {
	cart := NewCart()
	p := testProduct(1, 500_000, 10)

	cart.AddItem(p, nil, 8)
	res := cart.AddItem(p, nil, 5)

	assert.True(t, res.Limited)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, 10, cart.Items[0].Quantity)
}

func TestAddItem_ZeroInventoryAddsNothing(t *testing.T) {
	cart := NewCart()
	p := testProduct(1, 500_000, 0)

	res := cart.AddItem(p, nil, 3)

	assert.True(t, res.Limited)
	assert.Equal(t, 0, res.Added)
	assert.True(t, cart.IsEmpty())
}

func TestAddItem_VariantUsesOwnInventoryAndPrice(t *testing.T) {
	cart := NewCart()
	p := testProduct(1, 500_000, 0) // базовый остаток не важен при выборе варианта
	v := testVariant(7, 100_000, 5)

	res := cart.AddItem(p, v, 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "1:7", res.LineID)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 3, res.Remaining)
	assert.Equal(t, int64(600_000), cart.Items[0].UnitPrice())
	assert.Equal(t, int64(1_200_000), cart.Totals.Subtotal)
}

func TestAddItem_SameProductDifferentVariantsAreSeparateLines(t *testing.T) {
	cart := NewCart()
	p := testProduct(1, 500_000, 10)

	cart.AddItem(p, testVariant(7, 0, 5), 1)
	cart.AddItem(p, testVariant(8, 0, 5), 1)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Totals.ItemCount)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct(1, 500_000, 10), nil, 2)

	removed, limited := cart.SetQuantity("1", 0, 10)

	assert.True(t, removed)
	assert.False(t, limited)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Totals.Total)
}

func TestSetQuantity_ClampsToAvailable(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct(1, 500_000, 10), nil, 2)

	removed, limited := cart.SetQuantity("1", 50, 10)

	assert.False(t, removed)
	assert.True(t, limited)
	assert.Equal(t, 10, cart.Items[0].Quantity)
}

func TestSetQuantity_NegativeAvailableSkipsClamp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct(1, 500_000, 10), nil, 2)

	removed, limited := cart.SetQuantity("1", 50, -1)

	assert.False(t, removed)
	assert.False(t, limited)
	assert.Equal(t, 50, cart.Items[0].Quantity)
}

func TestSetQuantity_MissingLineIsNoop(t *testing.T) {
	cart := NewCart()

	removed, limited := cart.SetQuantity("99", 5, 10)

	assert.False(t, removed)
	assert.False(t, limited)
	assert.True(t, cart.IsEmpty())
}

func TestRemove_MissingLineIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct(1, 500_000, 10), nil, 1)

	cart.Remove("99")

	assert.Len(t, cart.Items, 1)
}

func TestClear_ResetsTotals(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct(1, 500_000, 10), nil, 2)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, CartTotals{}, cart.Totals)
}

func TestRecompute_TaxAndFlatShipping(t *testing.T) {
	cart := NewCart()
	// 2 x 5000.00 NGN = 1_000_000 кобо, ниже порога бесплатной доставки
	cart.AddItem(testProduct(1, 500_000, 10), nil, 2)

	assert.Equal(t, int64(1_000_000), cart.Totals.Subtotal)
	assert.Equal(t, int64(75_000), cart.Totals.Tax) // 7.5%
	assert.Equal(t, FlatShippingCost, cart.Totals.Shipping)
	assert.Equal(t, int64(1_000_000+75_000)+FlatShippingCost, cart.Totals.Total)
}

func TestRecompute_FreeShippingAboveThreshold(t *testing.T) {
	cart := NewCart()
	// 2 x 30000.00 NGN = 6_000_000 кобо, выше порога
	cart.AddItem(testProduct(1, 3_000_000, 10), nil, 2)

	assert.Equal(t, int64(6_000_000), cart.Totals.Subtotal)
	assert.Equal(t, int64(0), cart.Totals.Shipping)
	assert.Equal(t, int64(6_000_000+450_000), cart.Totals.Total)
}

func TestRecompute_EmptyCartHasNoShipping(t *testing.T) {
	cart := NewCart()

	assert.Equal(t, int64(0), cart.Totals.Shipping)
	assert.Equal(t, int64(0), cart.Totals.Total)
}
