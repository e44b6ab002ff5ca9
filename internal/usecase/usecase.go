package usecase

import (
	"context"

	"github.com/crownline/shop-backend/internal/domain"
)

type CartUC interface {
	GetCart(ctx context.Context, token string) (*CartRes, error)
	AddItem(ctx context.Context, req *AddItemReq) (*AddItemRes, error)
	SetItemQuantity(ctx context.Context, token string, lineID string, quantity int) (*CartRes, error)
	RemoveItem(ctx context.Context, token string, lineID string) (*CartRes, error)
	ClearCart(ctx context.Context, token string) error
}

type CheckoutUC interface {
	QuoteShipping(ctx context.Context, req *ShippingQuoteReq) (*ShippingQuoteRes, error)
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error)
}

type CatalogUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListLocations(ctx context.Context) ([]domain.StoreLocation, error)
}

type AdminUC interface {
	RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	ArchiveProduct(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, name string, slug string) (*domain.Category, error)
	ListOrders(ctx context.Context, req *ListOrdersReq) (*ListOrdersRes, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	ListCustomers(ctx context.Context, page, perPage int) (*ListCustomersRes, error)
	CreateLocation(ctx context.Context, req *LocationReq) (*domain.StoreLocation, error)
	UpdateLocation(ctx context.Context, id int64, req *LocationReq) (*domain.StoreLocation, error)
}
