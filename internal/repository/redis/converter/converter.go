package converter

import "github.com/crownline/shop-backend/internal/domain"

// CartConverter преобразует корзину между domain и её Redis-проекцией.
type CartConverter interface {
	ToModel(cart *domain.Cart) *CartModel
	ToEntity(model *CartModel) *domain.Cart
}

// ProductConverter преобразует карточку товара между domain и её Redis-проекцией.
type ProductConverter interface {
	ToModel(product *domain.Product) *ProductRedisModel
	ToEntity(model *ProductRedisModel) *domain.Product
}

func NewCartConverter() CartConverter       { return &cartConverter{} }
func NewProductConverter() ProductConverter { return &productConverter{} }

type cartConverter struct{}

func (c *cartConverter) ToModel(cart *domain.Cart) *CartModel {
	model := &CartModel{Items: make([]CartLineModel, 0, len(cart.Items))}
	for i := range cart.Items {
		line := &cart.Items[i]

		lineModel := CartLineModel{
			ID:           line.ID,
			ProductID:    line.Product.ID,
			ProductName:  line.Product.Name,
			ProductPrice: line.Product.Price,
			ProductSlug:  line.Product.Slug,
			ProductImage: line.Product.Image,
			Quantity:     line.Quantity,
		}
		if line.Variant != nil {
			variantID := line.Variant.ID
			lineModel.VariantID = &variantID
			lineModel.VariantSize = line.Variant.Size
			lineModel.VariantColor = line.Variant.Color
			lineModel.VariantPriceAdjustment = line.Variant.PriceAdjustment
		}

		model.Items = append(model.Items, lineModel)
	}

	return model
}

// ToEntity восстанавливает корзину из проекции. Суммы пересчитываются
// заново: сохранённым суммам доверять нельзя.
func (c *cartConverter) ToEntity(model *CartModel) *domain.Cart {
	cart := &domain.Cart{Items: make([]domain.LineItem, 0, len(model.Items))}
	for _, lineModel := range model.Items {
		line := domain.LineItem{
			ID: lineModel.ID,
			Product: domain.ProductSnapshot{
				ID:    lineModel.ProductID,
				Name:  lineModel.ProductName,
				Slug:  lineModel.ProductSlug,
				Price: lineModel.ProductPrice,
				Image: lineModel.ProductImage,
			},
			Quantity: lineModel.Quantity,
		}
		if lineModel.VariantID != nil {
			line.Variant = &domain.VariantSnapshot{
				ID:              *lineModel.VariantID,
				Size:            lineModel.VariantSize,
				Color:           lineModel.VariantColor,
				PriceAdjustment: lineModel.VariantPriceAdjustment,
			}
		}

		cart.Items = append(cart.Items, line)
	}

	cart.Recompute()
	return cart
}

type productConverter struct{}

func (c *productConverter) ToModel(product *domain.Product) *ProductRedisModel {
	model := &ProductRedisModel{
		ID:         product.ID,
		Name:       product.Name,
		Slug:       product.Slug,
		Price:      product.Price,
		Inventory:  product.Inventory,
		CategoryID: product.CategoryID,
		IsArchived: product.IsArchived,
		CreatedAt:  product.CreatedAt,
		UpdatedAt:  product.UpdatedAt,
	}
	for _, image := range product.Images {
		model.Images = append(model.Images, ProductImageModel{
			ID:        image.ID,
			ObjectKey: image.ObjectKey,
			Position:  image.Position,
		})
	}
	for _, variant := range product.Variants {
		model.Variants = append(model.Variants, ProductVariantModel{
			ID:              variant.ID,
			Size:            variant.Size,
			Color:           variant.Color,
			PriceAdjustment: variant.PriceAdjustment,
			Inventory:       variant.Inventory,
		})
	}

	return model
}

func (c *productConverter) ToEntity(model *ProductRedisModel) *domain.Product {
	product := &domain.Product{
		ID:         model.ID,
		Name:       model.Name,
		Slug:       model.Slug,
		Price:      model.Price,
		Inventory:  model.Inventory,
		CategoryID: model.CategoryID,
		IsArchived: model.IsArchived,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
	for _, image := range model.Images {
		product.Images = append(product.Images, domain.ProductImage{
			ID:        image.ID,
			ProductID: model.ID,
			ObjectKey: image.ObjectKey,
			Position:  image.Position,
		})
	}
	for _, variant := range model.Variants {
		product.Variants = append(product.Variants, domain.ProductVariant{
			ID:              variant.ID,
			ProductID:       model.ID,
			Size:            variant.Size,
			Color:           variant.Color,
			PriceAdjustment: variant.PriceAdjustment,
			Inventory:       variant.Inventory,
		})
	}

	return product
}
