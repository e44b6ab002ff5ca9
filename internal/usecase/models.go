package usecase

import (
	"time"

	"github.com/crownline/shop-backend/internal/domain"
)

// CART USECASE

// AddItemReq — запрос на добавление товара в корзину.
type AddItemReq struct {
	Token     string
	ProductID int64
	VariantID *int64
	Quantity  int
}

// AddItemRes — результат добавления: обновлённая корзина и отчёт
// об ограничении количества остатком.
type AddItemRes struct {
	Cart       *domain.Cart
	Result     domain.AddResult
	OpenDrawer bool // UI должен показать корзину после добавления
}

// CartRes — корзина с признаком открытия панели.
type CartRes struct {
	Cart       *domain.Cart
	OpenDrawer bool
}

// CHECKOUT USECASE

// ShippingQuoteReq — запрос расчёта доставки по региону.
type ShippingQuoteReq struct {
	State     string
	Subtotal  int64
	ItemCount int
}

// ShippingQuoteRes — рассчитанный тариф доставки.
type ShippingQuoteRes struct {
	Cost          int64
	ZoneName      string
	EstimatedDays string
	IsFree        bool
	Fallback      bool // зона не найдена, применён тариф по умолчанию
}

// PlaceOrderReq — запрос на оформление заказа после оплаты.
type PlaceOrderReq struct {
	Token     string
	Reference string
	Shipment  domain.ShippingInfo
}

// PlaceOrderRes — результат оформления заказа.
type PlaceOrderRes struct {
	OrderID   int64
	Reference string
	Total     int64
}

// VerifyPaymentRes — результат проверки транзакции у платёжного шлюза.
type VerifyPaymentRes struct {
	Status string
	Amount int64 // в кобо
}

// CATALOG USECASE

// ListProductsReq — запрос списка товаров витрины.
type ListProductsReq struct {
	CategorySlug    string
	Page            int
	PerPage         int
	IncludeArchived bool
}

// ListProductsRes — страница товаров с общим количеством.
type ListProductsRes struct {
	Products []domain.Product
	Total    int
}

// ADMIN USECASE

// AddNewProductReq — запрос на добавление нового товара.
type AddNewProductReq struct {
	Name       string
	Slug       string
	CategoryID int64
	Price      int64
	Inventory  int
	Images     []UploadImage
	Variants   []NewVariant
}

// UploadImage представляет изображение, загруженное через multipart/form-data.
type UploadImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// NewVariant — вариант товара в запросе создания.
type NewVariant struct {
	Size            *string
	Color           *string
	PriceAdjustment int64
	Inventory       int
}

// UpdateProductReq — запрос на изменение товара.
type UpdateProductReq struct {
	ID         int64
	Name       string
	Slug       string
	CategoryID int64
	Price      int64
	Inventory  int
}

// ListOrdersReq — запрос списка заказов бэк-офиса.
type ListOrdersReq struct {
	Status  string
	Page    int
	PerPage int
}

// ListOrdersRes — страница заказов с общим количеством.
type ListOrdersRes struct {
	Orders []domain.Order
	Total  int
}

// ListCustomersRes — страница покупателей.
type ListCustomersRes struct {
	Customers []domain.Customer
	Total     int
}

// LocationReq — данные точки продаж.
type LocationReq struct {
	Name     string
	Address  string
	City     string
	State    string
	Phone    string
	Hours    string
	IsActive bool
}

// INFRASTRUCTURE

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Slug   string
	Images []UploadImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const OrderCreatedEvent OutboxEventType = "order.created"

// OutboxEvent — строка транзакционного outbox для событий заказов.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewAddItemReq(token string, productID int64, variantID *int64, quantity int) *AddItemReq {
	return &AddItemReq{
		Token:     token,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
	}
}

func NewCartRes(cart *domain.Cart, openDrawer bool) *CartRes {
	return &CartRes{
		Cart:       cart,
		OpenDrawer: openDrawer,
	}
}

func NewShippingQuoteRes(cost int64, zoneName string, estimatedDays string, isFree bool, fallback bool) *ShippingQuoteRes {
	return &ShippingQuoteRes{
		Cost:          cost,
		ZoneName:      zoneName,
		EstimatedDays: estimatedDays,
		IsFree:        isFree,
		Fallback:      fallback,
	}
}

func NewVerifyPaymentRes(status string, amount int64) *VerifyPaymentRes {
	return &VerifyPaymentRes{
		Status: status,
		Amount: amount,
	}
}

func NewUploadImage(data []byte, mimeType string, size int64, name string) *UploadImage {
	return &UploadImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImagesReq(slug string, images []UploadImage) *UploadImagesReq {
	return &UploadImagesReq{
		Slug:   slug,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}
