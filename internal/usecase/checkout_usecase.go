package usecase

import (
	"context"
	"encoding/json"
	"net/mail"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/crownline/shop-backend/internal/cfg"
	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CheckoutUseCase реализует оформление заказа: расчёт доставки по зоне,
// проверка оплаты у шлюза, запись заказа с outbox-событием в одной
// транзакции, очистка корзины и best-effort уведомления.
type CheckoutUseCase struct {
	cartStore    CartStore
	zoneRepo     ShippingZoneRepository
	orderRepo    OrderRepository
	customerRepo CustomerRepository
	outboxRepo   OutboxRepository
	dbPool       transaction.Transactional
	payment      PaymentInfra
	notifier     NotifierInfra
	shippingCfg  *cfg.ShippingCfg
	logger       logger.Logger
}

func NewCheckoutUC(
	cartStore CartStore,
	zoneRepo ShippingZoneRepository,
	orderRepo OrderRepository,
	customerRepo CustomerRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	payment PaymentInfra,
	notifier NotifierInfra,
	shippingCfg *cfg.ShippingCfg,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartStore:    cartStore,
		zoneRepo:     zoneRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		outboxRepo:   outboxRepo,
		dbPool:       dbPool,
		payment:      payment,
		notifier:     notifier,
		shippingCfg:  shippingCfg,
		logger:       logger,
	}
}

// QuoteShipping рассчитывает доставку по региону. Неизвестный регион или
// ошибка справочника зон не блокируют оформление: применяется тариф по
// умолчанию. Доставка бесплатна выше порога.
func (c *CheckoutUseCase) QuoteShipping(ctx context.Context, req *ShippingQuoteReq) (*ShippingQuoteRes, error) {
	const op = "CheckoutUseCase.QuoteShipping"

	if req.Subtotal >= c.shippingCfg.FreeThreshold {
		return NewShippingQuoteRes(0, "", "", true, false), nil
	}

	zone, err := c.zoneRepo.GetByState(ctx, req.State)
	if err != nil {
		c.logger.Warnf("Shipping zone lookup failed for state %q, using default cost: %v", req.State, e.Wrap(op, err))
		return NewShippingQuoteRes(c.shippingCfg.DefaultCost, "", c.shippingCfg.DefaultDays, false, true), nil
	}

	return NewShippingQuoteRes(zone.Cost, zone.Name, zone.EstimatedDays, false, false), nil
}

// PlaceOrder проверяет оплату и фиксирует заказ. Заказ и outbox-событие
// пишутся в одной транзакции; при любой ошибке корзина остаётся нетронутой,
// чтобы покупатель мог повторить попытку.
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	var err error
	if err = c.validatePlaceOrder(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := c.cartStore.Get(ctx, req.Token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if cart.IsEmpty() {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	quote, err := c.QuoteShipping(ctx, &ShippingQuoteReq{
		State:     req.Shipment.State,
		Subtotal:  cart.Totals.Subtotal,
		ItemCount: cart.Totals.ItemCount,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	subtotal := cart.Totals.Subtotal
	tax := cart.Totals.Tax
	total := subtotal + tax + quote.Cost

	// Подтверждение оплаты до записи заказа. Отказ шлюза блокирует
	// оформление, корзина не очищается.
	verification, err := c.payment.Verify(ctx, req.Reference)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if verification.Status != "success" {
		return nil, e.Wrap(op, e.ErrPaymentNotVerified)
	}
	if verification.Amount < total {
		c.logger.Warnf("Payment amount mismatch: reference: %s, paid: %d, expected: %d", req.Reference, verification.Amount, total)
		return nil, e.Wrap(op, e.ErrPaymentAmountMismatch)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	customer, err := c.customerRepo.UpsertByEmail(ctx, domain.NewCustomer(
		req.Shipment.Email,
		req.Shipment.FirstName,
		req.Shipment.LastName,
		req.Shipment.Phone,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order := domain.NewOrder(req.Reference, customer.ID, subtotal, quote.Cost, tax, req.Shipment, orderItemsFromCart(cart))
	order, err = c.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := c.orderEventPayload(order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = c.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), OrderCreatedEvent, order.ID, payload)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Заказ записан — очищаем корзину. Ошибка очистки не отменяет заказ.
	if err := c.cartStore.Delete(ctx, req.Token); err != nil {
		c.logger.Warnf("Failed to clear cart after order %d: %v", order.ID, err)
	}

	// Письма уходят параллельно и не влияют на ответ.
	c.notifier.NotifyOrderCreated(order)

	return &PlaceOrderRes{
		OrderID:   order.ID,
		Reference: order.Reference,
		Total:     order.Total,
	}, nil
}

// validatePlaceOrder проверяет обязательные поля запроса оформления.
func (c *CheckoutUseCase) validatePlaceOrder(req *PlaceOrderReq) error {
	if strings.TrimSpace(req.Reference) == "" {
		return e.ErrMissingFields
	}

	s := req.Shipment
	if strings.TrimSpace(s.FirstName) == "" ||
		strings.TrimSpace(s.LastName) == "" ||
		strings.TrimSpace(s.Address) == "" ||
		strings.TrimSpace(s.City) == "" ||
		strings.TrimSpace(s.State) == "" {
		return e.ErrMissingFields
	}

	if _, err := mail.ParseAddress(s.Email); err != nil {
		return e.ErrInvalidEmail
	}

	return nil
}

// orderEventPayload сериализует событие order.created для outbox.
func (c *CheckoutUseCase) orderEventPayload(order *domain.Order) ([]byte, error) {
	type eventItem struct {
		ProductID int64  `json:"product_id"`
		VariantID *int64 `json:"variant_id,omitempty"`
		Name      string `json:"name"`
		UnitPrice int64  `json:"unit_price"`
		Quantity  int    `json:"quantity"`
	}

	items := make([]eventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, eventItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return json.Marshal(struct {
		OrderID   int64       `json:"order_id"`
		Reference string      `json:"reference"`
		Email     string      `json:"email"`
		State     string      `json:"state"`
		Subtotal  int64       `json:"subtotal"`
		Shipping  int64       `json:"shipping"`
		Tax       int64       `json:"tax"`
		Total     int64       `json:"total"`
		Items     []eventItem `json:"items"`
	}{
		OrderID:   order.ID,
		Reference: order.Reference,
		Email:     order.Shipment.Email,
		State:     order.Shipment.State,
		Subtotal:  order.Subtotal,
		Shipping:  order.Shipping,
		Tax:       order.Tax,
		Total:     order.Total,
		Items:     items,
	})
}

// orderItemsFromCart переносит снимки строк корзины в строки заказа.
func orderItemsFromCart(cart *domain.Cart) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(cart.Items))
	for i := range cart.Items {
		line := &cart.Items[i]

		item := domain.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity,
		}
		if line.Variant != nil {
			variantID := line.Variant.ID
			item.VariantID = &variantID
			item.Size = line.Variant.Size
			item.Color = line.Variant.Color
		}

		items = append(items, item)
	}

	return items
}
