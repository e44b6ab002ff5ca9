package converter

import (
	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/internal/usecase"
)

type productConverter struct{}

func (c *productConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:         entity.ID,
		Name:       entity.Name,
		Slug:       entity.Slug,
		Price:      entity.Price,
		Inventory:  entity.Inventory,
		CategoryID: entity.CategoryID,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
		IsArchived: entity.IsArchived,
	}
}

func (c *productConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:         model.ID,
		Name:       model.Name,
		Slug:       model.Slug,
		Price:      model.Price,
		Inventory:  model.Inventory,
		CategoryID: model.CategoryID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
		IsArchived: model.IsArchived,
	}
}

func (c *productConverter) VariantToEntity(model *VariantModel) domain.ProductVariant {
	return domain.ProductVariant{
		ID:              model.ID,
		ProductID:       model.ProductID,
		Size:            model.Size,
		Color:           model.Color,
		PriceAdjustment: model.PriceAdjustment,
		Inventory:       model.Inventory,
	}
}

func (c *productConverter) ImageToEntity(model *ProductImageModel) domain.ProductImage {
	return domain.ProductImage{
		ID:        model.ID,
		ProductID: model.ProductID,
		ObjectKey: model.ObjectKey,
		Position:  model.Position,
	}
}

type categoryConverter struct{}

func (c *categoryConverter) ToModel(entity *domain.Category) *CategoryModel {
	return &CategoryModel{
		ID:         entity.ID,
		Name:       entity.Name,
		Slug:       entity.Slug,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
		IsArchived: entity.IsArchived,
	}
}

func (c *categoryConverter) ToEntity(model *CategoryModel) *domain.Category {
	return &domain.Category{
		ID:         model.ID,
		Name:       model.Name,
		Slug:       model.Slug,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
		IsArchived: model.IsArchived,
	}
}

type orderConverter struct{}

func (c *orderConverter) ToModel(entity *domain.Order) *OrderModel {
	return &OrderModel{
		ID:         entity.ID,
		Reference:  entity.Reference,
		CustomerID: entity.CustomerID,
		Status:     string(entity.Status),
		Subtotal:   entity.Subtotal,
		Shipping:   entity.Shipping,
		Tax:        entity.Tax,
		Total:      entity.Total,
		FirstName:  entity.Shipment.FirstName,
		LastName:   entity.Shipment.LastName,
		Email:      entity.Shipment.Email,
		Phone:      entity.Shipment.Phone,
		Address:    entity.Shipment.Address,
		City:       entity.Shipment.City,
		State:      entity.Shipment.State,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
	}
}

func (c *orderConverter) ToEntity(model *OrderModel) *domain.Order {
	return &domain.Order{
		ID:         model.ID,
		Reference:  model.Reference,
		CustomerID: model.CustomerID,
		Status:     domain.OrderStatus(model.Status),
		Subtotal:   model.Subtotal,
		Shipping:   model.Shipping,
		Tax:        model.Tax,
		Total:      model.Total,
		Shipment: domain.ShippingInfo{
			FirstName: model.FirstName,
			LastName:  model.LastName,
			Email:     model.Email,
			Phone:     model.Phone,
			Address:   model.Address,
			City:      model.City,
			State:     model.State,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (c *orderConverter) ItemToModel(entity *domain.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:        entity.ID,
		OrderID:   entity.OrderID,
		ProductID: entity.ProductID,
		VariantID: entity.VariantID,
		Name:      entity.Name,
		Size:      entity.Size,
		Color:     entity.Color,
		UnitPrice: entity.UnitPrice,
		Quantity:  entity.Quantity,
	}
}

func (c *orderConverter) ItemToEntity(model *OrderItemModel) domain.OrderItem {
	return domain.OrderItem{
		ID:        model.ID,
		OrderID:   model.OrderID,
		ProductID: model.ProductID,
		VariantID: model.VariantID,
		Name:      model.Name,
		Size:      model.Size,
		Color:     model.Color,
		UnitPrice: model.UnitPrice,
		Quantity:  model.Quantity,
	}
}

type customerConverter struct{}

func (c *customerConverter) ToEntity(model *CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:        model.ID,
		Email:     model.Email,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Phone:     model.Phone,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

type locationConverter struct{}

func (c *locationConverter) ToEntity(model *StoreLocationModel) *domain.StoreLocation {
	return &domain.StoreLocation{
		ID:        model.ID,
		Name:      model.Name,
		Address:   model.Address,
		City:      model.City,
		State:     model.State,
		Phone:     model.Phone,
		Hours:     model.Hours,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		IsActive:  model.IsActive,
	}
}

type shippingZoneConverter struct{}

func (c *shippingZoneConverter) ToEntity(model *ShippingZoneModel) *domain.ShippingZone {
	return &domain.ShippingZone{
		ID:            model.ID,
		Name:          model.Name,
		State:         model.State,
		Cost:          model.Cost,
		EstimatedDays: model.EstimatedDays,
	}
}

type outboxEventConverter struct{}

func (c *outboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		OrderID:     entity.OrderID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (c *outboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c *outboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	entities := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		entities = append(entities, c.ToEntity(model))
	}

	return entities
}
