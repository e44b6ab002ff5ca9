package usecase

import (
	"context"

	"github.com/crownline/shop-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Archive(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, req *ListProductsReq) ([]domain.Product, int, error)
	AddImages(ctx context.Context, productID int64, keys []string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, req *ListOrdersReq) ([]domain.Order, int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
}

type CustomerRepository interface {
	UpsertByEmail(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	List(ctx context.Context, page, perPage int) ([]domain.Customer, int, error)
}

type LocationRepository interface {
	Create(ctx context.Context, location *domain.StoreLocation) (*domain.StoreLocation, error)
	Update(ctx context.Context, location *domain.StoreLocation) (*domain.StoreLocation, error)
	List(ctx context.Context, activeOnly bool) ([]domain.StoreLocation, error)
}

type ShippingZoneRepository interface {
	GetByState(ctx context.Context, state string) (*domain.ShippingZone, error)
}

// CartStore — персистентное хранилище корзины по токену сессии.
type CartStore interface {
	Get(ctx context.Context, token string) (*domain.Cart, error)
	Save(ctx context.Context, token string, cart *domain.Cart) error
	Delete(ctx context.Context, token string) error
}

type CacheRepository interface {
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
	SetProduct(ctx context.Context, product *domain.Product) error
	DeleteProducts(ctx context.Context, slugs []string) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
