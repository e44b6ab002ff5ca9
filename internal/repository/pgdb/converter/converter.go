package converter

import (
	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	VariantToEntity(model *VariantModel) domain.ProductVariant
	ImageToEntity(model *ProductImageModel) domain.ProductImage
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	ToEntity(model *OrderModel) *domain.Order
	ItemToModel(entity *domain.OrderItem) *OrderItemModel
	ItemToEntity(model *OrderItemModel) domain.OrderItem
}

// CustomerConverter преобразует сущности Customer между domain и моделью PostgreSQL.
type CustomerConverter interface {
	ToEntity(model *CustomerModel) *domain.Customer
}

// LocationConverter преобразует сущности StoreLocation между domain и моделью PostgreSQL.
type LocationConverter interface {
	ToEntity(model *StoreLocationModel) *domain.StoreLocation
}

// ShippingZoneConverter преобразует сущности ShippingZone между domain и моделью PostgreSQL.
type ShippingZoneConverter interface {
	ToEntity(model *ShippingZoneModel) *domain.ShippingZone
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func NewProductConverter() ProductConverter           { return &productConverter{} }
func NewCategoryConverter() CategoryConverter         { return &categoryConverter{} }
func NewOrderConverter() OrderConverter               { return &orderConverter{} }
func NewCustomerConverter() CustomerConverter         { return &customerConverter{} }
func NewLocationConverter() LocationConverter         { return &locationConverter{} }
func NewShippingZoneConverter() ShippingZoneConverter { return &shippingZoneConverter{} }
func NewOutboxEventConverter() OutboxEventConverter   { return &outboxEventConverter{} }
