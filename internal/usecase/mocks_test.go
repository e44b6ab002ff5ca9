package usecase

import (
	"context"
	"sync"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/pkg/e"
)

type mockCartStore struct {
	m       sync.Mutex
	carts   map[string]*domain.Cart
	getErr  error
	saveErr error
	delErr  error
	saves   int
	deletes int
}

func newMockCartStore() *mockCartStore {
	return &mockCartStore{carts: map[string]*domain.Cart{}}
}

func (m *mockCartStore) Get(_ context.Context, token string) (*domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if cart, ok := m.carts[token]; ok {
		return cart, nil
	}
	return domain.NewCart(), nil
}

func (m *mockCartStore) Save(_ context.Context, token string, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.carts[token] = cart
	return nil
}

func (m *mockCartStore) Delete(_ context.Context, token string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.deletes++
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.carts, token)
	return nil
}

type mockProductRepo struct {
	products map[int64]*domain.Product
	getErr   error
}

func newMockProductRepo(products ...*domain.Product) *mockProductRepo {
	byID := make(map[int64]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &mockProductRepo{products: byID}
}

func (m *mockProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (m *mockProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (m *mockProductRepo) Archive(context.Context, int64) error {
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, e.ErrProductNotFound
}

func (m *mockProductRepo) GetBySlug(_ context.Context, slug string) (*domain.Product, error) {
	for _, p := range m.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (m *mockProductRepo) List(context.Context, *ListProductsReq) ([]domain.Product, int, error) {
	return nil, 0, nil
}

func (m *mockProductRepo) AddImages(context.Context, int64, []string) error {
	return nil
}

type mockZoneRepo struct {
	zone *domain.ShippingZone
	err  error
}

func (m *mockZoneRepo) GetByState(context.Context, string) (*domain.ShippingZone, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.zone, nil
}

type mockPayment struct {
	res *VerifyPaymentRes
	err error
}

func (m *mockPayment) Verify(context.Context, string) (*VerifyPaymentRes, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.res, nil
}

type mockNotifier struct {
	m     sync.Mutex
	calls int
}

func (m *mockNotifier) NotifyOrderCreated(*domain.Order) {
	m.m.Lock()
	defer m.m.Unlock()
	m.calls++
}

type mockCategoryRepo struct {
	created *domain.Category
	err     error
}

func (m *mockCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = category
	return category, nil
}

func (m *mockCategoryRepo) List(context.Context) ([]domain.Category, error) {
	return nil, m.err
}

type mockOrderRepo struct {
	orders   []domain.Order
	listReq  *ListOrdersReq
	statuses map[int64]domain.OrderStatus
	err      error
}

func (m *mockOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	return order, m.err
}

func (m *mockOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.orders {
		if m.orders[i].ID == id {
			return &m.orders[i], nil
		}
	}
	return nil, e.ErrOrderNotFound
}

func (m *mockOrderRepo) List(_ context.Context, req *ListOrdersReq) ([]domain.Order, int, error) {
	m.listReq = req
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.orders, len(m.orders), nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.statuses == nil {
		m.statuses = map[int64]domain.OrderStatus{}
	}
	m.statuses[id] = status
	return &domain.Order{ID: id, Status: status}, nil
}

type mockLocationRepo struct {
	locations []domain.StoreLocation
	err       error
}

func (m *mockLocationRepo) Create(_ context.Context, location *domain.StoreLocation) (*domain.StoreLocation, error) {
	if m.err != nil {
		return nil, m.err
	}
	location.ID = int64(len(m.locations) + 1)
	m.locations = append(m.locations, *location)
	return location, nil
}

func (m *mockLocationRepo) Update(_ context.Context, location *domain.StoreLocation) (*domain.StoreLocation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return location, nil
}

func (m *mockLocationRepo) List(context.Context, bool) ([]domain.StoreLocation, error) {
	return m.locations, m.err
}

type mockCacheRepo struct {
	m       sync.Mutex
	deleted []string
	err     error
}

func (m *mockCacheRepo) GetProduct(context.Context, string) (*domain.Product, error) {
	return nil, m.err
}

func (m *mockCacheRepo) SetProduct(context.Context, *domain.Product) error {
	return m.err
}

func (m *mockCacheRepo) DeleteProducts(_ context.Context, slugs []string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.deleted = append(m.deleted, slugs...)
	return m.err
}
