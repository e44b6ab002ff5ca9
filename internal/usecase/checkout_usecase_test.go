package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/crownline/shop-backend/internal/cfg"
	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShippingCfg() *cfg.ShippingCfg {
	return &cfg.ShippingCfg{
		DefaultCost:   350_000,
		DefaultDays:   "3-7 days",
		FreeThreshold: 5_000_000,
	}
}

func newCheckoutUC(store *mockCartStore, zones *mockZoneRepo, payment *mockPayment, notifier *mockNotifier) *CheckoutUseCase {
	return NewCheckoutUC(store, zones, nil, nil, nil, nil, payment, notifier, testShippingCfg(), logger.NewSlogLogger())
}

func validShipment() domain.ShippingInfo {
	return domain.ShippingInfo{
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada@example.com",
		Phone:     "+2348012345678",
		Address:   "12 Broad Street",
		City:      "Lagos",
		State:     "Lagos",
	}
}

func cartWith(store *mockCartStore, token string, price int64, quantity int) *domain.Cart {
	cart := domain.NewCart()
	cart.AddItem(&domain.Product{ID: 1, Name: "Fedora", Slug: "fedora", Price: price, Inventory: 100}, nil, quantity)
	store.carts[token] = cart
	return cart
}

func TestCheckoutUC_QuoteShipping_UsesZoneTariff(t *testing.T) {
	zones := &mockZoneRepo{zone: &domain.ShippingZone{
		Name:          "Lagos Mainland",
		State:         "Lagos",
		Cost:          150_000,
		EstimatedDays: "1-2 days",
	}}
	uc := newCheckoutUC(newMockCartStore(), zones, &mockPayment{}, &mockNotifier{})

	res, err := uc.QuoteShipping(context.Background(), &ShippingQuoteReq{State: "Lagos", Subtotal: 1_000_000})

	require.NoError(t, err)
	assert.Equal(t, int64(150_000), res.Cost)
	assert.Equal(t, "Lagos Mainland", res.ZoneName)
	assert.False(t, res.IsFree)
	assert.False(t, res.Fallback)
}

func TestCheckoutUC_QuoteShipping_FreeAboveThreshold(t *testing.T) {
	// справочник зон не должен опрашиваться вовсе
	zones := &mockZoneRepo{err: errors.New("must not be called")}
	uc := newCheckoutUC(newMockCartStore(), zones, &mockPayment{}, &mockNotifier{})

	res, err := uc.QuoteShipping(context.Background(), &ShippingQuoteReq{State: "Lagos", Subtotal: 5_000_000})

	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Cost)
	assert.True(t, res.IsFree)
}

func TestCheckoutUC_QuoteShipping_FallsBackOnLookupFailure(t *testing.T) {
	zones := &mockZoneRepo{err: errors.New("db down")}
	uc := newCheckoutUC(newMockCartStore(), zones, &mockPayment{}, &mockNotifier{})

	res, err := uc.QuoteShipping(context.Background(), &ShippingQuoteReq{State: "Unknown", Subtotal: 1_000_000})

	require.NoError(t, err)
	assert.Equal(t, int64(350_000), res.Cost)
	assert.Equal(t, "3-7 days", res.EstimatedDays)
	assert.True(t, res.Fallback)
}

func TestCheckoutUC_PlaceOrder_MissingReference(t *testing.T) {
	uc := newCheckoutUC(newMockCartStore(), &mockZoneRepo{}, &mockPayment{}, &mockNotifier{})

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{Token: "t", Shipment: validShipment()})

	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestCheckoutUC_PlaceOrder_InvalidEmail(t *testing.T) {
	uc := newCheckoutUC(newMockCartStore(), &mockZoneRepo{}, &mockPayment{}, &mockNotifier{})

	shipment := validShipment()
	shipment.Email = "not-an-email"
	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{Token: "t", Reference: "ref-1", Shipment: shipment})

	assert.ErrorIs(t, err, e.ErrInvalidEmail)
}

func TestCheckoutUC_PlaceOrder_EmptyCart(t *testing.T) {
	uc := newCheckoutUC(newMockCartStore(), &mockZoneRepo{}, &mockPayment{}, &mockNotifier{})

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{Token: "t", Reference: "ref-1", Shipment: validShipment()})

	assert.ErrorIs(t, err, e.ErrEmptyCart)
}

func TestCheckoutUC_PlaceOrder_PaymentNotVerifiedKeepsCart(t *testing.T) {
	store := newMockCartStore()
	cartWith(store, "t", 500_000, 2)
	zones := &mockZoneRepo{zone: &domain.ShippingZone{State: "Lagos", Cost: 150_000}}
	payment := &mockPayment{res: NewVerifyPaymentRes("failed", 0)}
	uc := newCheckoutUC(store, zones, payment, &mockNotifier{})

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{Token: "t", Reference: "ref-1", Shipment: validShipment()})

	assert.ErrorIs(t, err, e.ErrPaymentNotVerified)
	assert.Equal(t, 0, store.deletes)
	assert.False(t, store.carts["t"].IsEmpty())
}

func TestCheckoutUC_PlaceOrder_GatewayErrorKeepsCart(t *testing.T) {
	store := newMockCartStore()
	cartWith(store, "t", 500_000, 2)
	zones := &mockZoneRepo{zone: &domain.ShippingZone{State: "Lagos", Cost: 150_000}}
	payment := &mockPayment{err: errors.New("gateway timeout")}
	uc := newCheckoutUC(store, zones, payment, &mockNotifier{})

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{Token: "t", Reference: "ref-1", Shipment: validShipment()})

	require.Error(t, err)
	assert.Equal(t, 0, store.deletes)
}

func TestCheckoutUC_PlaceOrder_AmountMismatch(t *testing.T) {
	store := newMockCartStore()
	// subtotal 1_000_000 + tax 75_000 + доставка 150_000 = 1_225_000
	cartWith(store, "t", 500_000, 2)
	zones := &mockZoneRepo{zone: &domain.ShippingZone{State: "Lagos", Cost: 150_000}}
	payment := &mockPayment{res: NewVerifyPaymentRes("success", 1_224_999)}
	uc := newCheckoutUC(store, zones, payment, &mockNotifier{})

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{Token: "t", Reference: "ref-1", Shipment: validShipment()})

	assert.ErrorIs(t, err, e.ErrPaymentAmountMismatch)
	assert.False(t, store.carts["t"].IsEmpty())
}
