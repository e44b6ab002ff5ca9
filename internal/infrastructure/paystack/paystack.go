package paystack

import (
	"context"
	"net/http"

	"github.com/crownline/shop-backend/internal/cfg"
	"github.com/crownline/shop-backend/internal/usecase"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/rpip/paystack-go"
)

// Verifier проверяет транзакции на стороне Paystack по референсу.
// Сумма транзакции приходит в кобо.
type Verifier struct {
	client *paystack.Client
}

func NewVerifier(cfg *cfg.PaystackCfg) *Verifier {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &Verifier{
		client: paystack.NewClient(cfg.SecretKey, httpClient),
	}
}

// Verify запрашивает статус транзакции у шлюза. Сетевая ошибка или отказ
// шлюза возвращаются вызывающему: без подтверждения оплаты заказ не создаётся.
// Клиент paystack-go не принимает контекст, запрос ограничен только
// таймаутом http.Client из конфигурации.
func (v *Verifier) Verify(_ context.Context, reference string) (*usecase.VerifyPaymentRes, error) {
	txn, err := v.client.Transaction.Verify(reference)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewVerifyPaymentRes(txn.Status, int64(txn.Amount)), nil
}
