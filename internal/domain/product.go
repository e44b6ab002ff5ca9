package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID         int64
	Name       string
	Slug       string
	Price      int64 // Цена хранится в кобо
	Inventory  int
	CategoryID int64
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	IsArchived bool
	Images     []ProductImage
	Variants   []ProductVariant
}

func NewProduct(name string, slug string, price int64, inventory int, categoryID int64) *Product {
	return &Product{
		Name:       name,
		Slug:       slug,
		Price:      price,
		Inventory:  inventory,
		CategoryID: categoryID,
	}
}

// HasVariants сообщает, требуется ли выбор варианта перед добавлением в корзину.
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// Variant возвращает вариант товара по ID, nil если не найден.
func (p *Product) Variant(id int64) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}

// MainImage возвращает ключ первого изображения товара, nil если изображений нет.
func (p *Product) MainImage() *string {
	if len(p.Images) == 0 {
		return nil
	}
	return &p.Images[0].ObjectKey
}

// ProductVariant описывает покупаемую конфигурацию товара (размер/цвет)
// со своим остатком и надбавкой к базовой цене.
type ProductVariant struct {
	ID              int64
	ProductID       int64
	Size            *string
	Color           *string
	PriceAdjustment int64 // надбавка к базовой цене в кобо
	Inventory       int
}

// ProductImage описывает изображение товара, хранящееся в S3.
type ProductImage struct {
	ID        int64
	ProductID int64
	ObjectKey string
	Position  int
}
