package usecase

import (
	"context"

	"github.com/crownline/shop-backend/internal/domain"
)

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
}

// PaymentInfra проверяет транзакцию по референсу на стороне платёжного шлюза.
type PaymentInfra interface {
	Verify(ctx context.Context, reference string) (*VerifyPaymentRes, error)
}

// NotifierInfra отправляет уведомления о заказе. Вызов не блокирует
// и никогда не возвращает ошибку: доставка писем — best-effort.
type NotifierInfra interface {
	NotifyOrderCreated(order *domain.Order)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
