package mailer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/crownline/shop-backend/internal/cfg"
	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/pkg/logger"
	"github.com/wneessen/go-mail"
)

// Mailer отправляет письма о заказе: подтверждение покупателю и
// уведомление магазину. Отправка best-effort: ошибка SMTP логируется
// и не влияет на оформление заказа.
type Mailer struct {
	client      *mail.Client
	cfg         *cfg.SMTPCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewMailer(cfg *cfg.SMTPCfg, logger logger.Logger, shutdownCtx context.Context) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}

	return &Mailer{
		client:      client,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
	}, nil
}

// NotifyOrderCreated отправляет оба письма параллельно в фоне.
// Не блокирует и никогда не возвращает ошибку.
func (m *Mailer) NotifyOrderCreated(order *domain.Order) {
	m.wg.Add(2)

	go func() {
		defer m.wg.Done()
		m.send(order.Shipment.Email, fmt.Sprintf("Your order #%d is confirmed", order.ID), customerBody(order))
	}()

	go func() {
		defer m.wg.Done()
		m.send(m.cfg.StoreEmail, fmt.Sprintf("New order #%d (%s)", order.ID, order.Reference), storeBody(order))
	}()
}

// WaitForDrain ожидает завершения фоновых отправок при остановке приложения.
func (m *Mailer) WaitForDrain(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("mailer drain timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

func (m *Mailer) send(to, subject, body string) {
	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		m.logger.Warnf("Invalid sender address %q: %v", m.cfg.From, err)
		return
	}
	if err := msg.To(to); err != nil {
		m.logger.Warnf("Invalid recipient address %q: %v", to, err)
		return
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.Warnf("Failed to send email to %s: %v", to, err)
	}
}

func customerBody(order *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", order.Shipment.FirstName)
	fmt.Fprintf(&b, "Thank you for your order #%d.\n\n", order.ID)
	writeItems(&b, order)
	fmt.Fprintf(&b, "\nDelivery to: %s, %s, %s\n", order.Shipment.Address, order.Shipment.City, order.Shipment.State)
	b.WriteString("\nWe will email you again when your order ships.\n")
	return b.String()
}

func storeBody(order *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order #%d, payment reference %s.\n\n", order.ID, order.Reference)
	fmt.Fprintf(&b, "Customer: %s %s <%s>, phone %s\n",
		order.Shipment.FirstName, order.Shipment.LastName, order.Shipment.Email, order.Shipment.Phone)
	fmt.Fprintf(&b, "Ship to: %s, %s, %s\n\n", order.Shipment.Address, order.Shipment.City, order.Shipment.State)
	writeItems(&b, order)
	return b.String()
}

func writeItems(b *strings.Builder, order *domain.Order) {
	for _, item := range order.Items {
		variant := ""
		if item.Size != nil {
			variant += " " + *item.Size
		}
		if item.Color != nil {
			variant += " " + *item.Color
		}
		fmt.Fprintf(b, "  %dx %s%s: %s\n", item.Quantity, item.Name, variant, formatKobo(item.UnitPrice*int64(item.Quantity)))
	}
	fmt.Fprintf(b, "\nSubtotal: %s\n", formatKobo(order.Subtotal))
	fmt.Fprintf(b, "Shipping: %s\n", formatKobo(order.Shipping))
	fmt.Fprintf(b, "VAT: %s\n", formatKobo(order.Tax))
	fmt.Fprintf(b, "Total: %s\n", formatKobo(order.Total))
}

// formatKobo печатает сумму в найрах с двумя знаками после запятой.
func formatKobo(amount int64) string {
	return fmt.Sprintf("NGN %d.%02d", amount/100, amount%100)
}
