package converter

import "time"

// CartModel — сохраняемая в Redis проекция корзины. Суммы не сохраняются:
// они пересчитываются из строк при каждой загрузке.
type CartModel struct {
	Items []CartLineModel `json:"items"`
}

// CartLineModel — строка корзины со снимком товара на момент добавления.
type CartLineModel struct {
	ID                     string  `json:"id"`
	ProductID              int64   `json:"productId"`
	ProductName            string  `json:"productName"`
	ProductPrice           int64   `json:"productPrice"`
	ProductSlug            string  `json:"productSlug"`
	ProductImage           *string `json:"productImage,omitempty"`
	VariantID              *int64  `json:"variantId,omitempty"`
	VariantSize            *string `json:"variantSize,omitempty"`
	VariantColor           *string `json:"variantColor,omitempty"`
	VariantPriceAdjustment int64   `json:"variantPriceAdjustment,omitempty"`
	Quantity               int     `json:"quantity"`
}

// ProductRedisModel — закэшированная карточка товара для витрины.
// Хранит все поля сущности: карточка из кэша неотличима от загруженной из БД.
type ProductRedisModel struct {
	ID         int64                 `json:"id"`
	Name       string                `json:"name"`
	Slug       string                `json:"slug"`
	Price      int64                 `json:"price"`
	Inventory  int                   `json:"inventory"`
	CategoryID int64                 `json:"category_id"`
	IsArchived bool                  `json:"is_archived"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  *time.Time            `json:"updated_at,omitempty"`
	Images     []ProductImageModel   `json:"images,omitempty"`
	Variants   []ProductVariantModel `json:"variants,omitempty"`
}

type ProductImageModel struct {
	ID        int64  `json:"id"`
	ObjectKey string `json:"object_key"`
	Position  int    `json:"position"`
}

type ProductVariantModel struct {
	ID              int64   `json:"id"`
	Size            *string `json:"size,omitempty"`
	Color           *string `json:"color,omitempty"`
	PriceAdjustment int64   `json:"price_adjustment"`
	Inventory       int     `json:"inventory"`
}
