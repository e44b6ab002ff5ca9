package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminUC(products *mockProductRepo, categories *mockCategoryRepo, orders *mockOrderRepo,
	locations *mockLocationRepo, cache *mockCacheRepo) *AdminUseCase {
	return NewAdminUC(products, categories, orders, nil, locations, nil, cache, nil, logger.NewSlogLogger())
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "wide-brim-fedora", Slugify("Wide Brim Fedora"))
	assert.Equal(t, "bucket-hat-2", Slugify("  Bucket Hat #2!  "))
	assert.Equal(t, "snapback", Slugify("SNAPBACK"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestAdminUC_UpdateProduct_Validation(t *testing.T) {
	uc := newAdminUC(newMockProductRepo(), &mockCategoryRepo{}, &mockOrderRepo{}, &mockLocationRepo{}, &mockCacheRepo{})

	_, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{ID: 1, Name: " ", Price: 100})
	assert.ErrorIs(t, err, e.ErrProductNameRequired)

	_, err = uc.UpdateProduct(context.Background(), &UpdateProductReq{ID: 1, Name: "Fedora", Price: 0})
	assert.ErrorIs(t, err, e.ErrPriceMustBePositive)
}

func TestAdminUC_UpdateProduct_InvalidatesCache(t *testing.T) {
	cache := &mockCacheRepo{}
	uc := newAdminUC(newMockProductRepo(), &mockCategoryRepo{}, &mockOrderRepo{}, &mockLocationRepo{}, cache)

	_, err := uc.UpdateProduct(context.Background(), &UpdateProductReq{
		ID:    1,
		Name:  "Fedora",
		Slug:  "fedora",
		Price: 500_000,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"fedora"}, cache.deleted)
}

func TestAdminUC_ArchiveProduct_UnknownProduct(t *testing.T) {
	uc := newAdminUC(newMockProductRepo(), &mockCategoryRepo{}, &mockOrderRepo{}, &mockLocationRepo{}, &mockCacheRepo{})

	err := uc.ArchiveProduct(context.Background(), 99)

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestAdminUC_CreateCategory_AutoSlug(t *testing.T) {
	categories := &mockCategoryRepo{}
	uc := newAdminUC(newMockProductRepo(), categories, &mockOrderRepo{}, &mockLocationRepo{}, &mockCacheRepo{})

	category, err := uc.CreateCategory(context.Background(), "Summer Hats", "")

	require.NoError(t, err)
	assert.Equal(t, "summer-hats", category.Slug)
}

func TestAdminUC_CreateCategory_NameRequired(t *testing.T) {
	uc := newAdminUC(newMockProductRepo(), &mockCategoryRepo{}, &mockOrderRepo{}, &mockLocationRepo{}, &mockCacheRepo{})

	_, err := uc.CreateCategory(context.Background(), "  ", "")

	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestAdminUC_ListOrders_InvalidStatus(t *testing.T) {
	uc := newAdminUC(newMockProductRepo(), &mockCategoryRepo{}, &mockOrderRepo{}, &mockLocationRepo{}, &mockCacheRepo{})

	_, err := uc.ListOrders(context.Background(), &ListOrdersReq{Status: "teleported"})

	assert.ErrorIs(t, err, e.ErrInvalidOrderStatus)
}

func TestAdminUC_ListOrders_NormalizesPagination(t *testing.T) {
	orders := &mockOrderRepo{}
	uc := newAdminUC(newMockProductRepo(), &mockCategoryRepo{}, orders, &mockLocationRepo{}, &mockCacheRepo{})

	_, err := uc.ListOrders(context.Background(), &ListOrdersReq{Page: -3, PerPage: 500})

	require.NoError(t, err)
	assert.Equal(t, 1, orders.listReq.Page)
	assert.Equal(t, 20, orders.listReq.PerPage)
}

func TestAdminUC_UpdateOrderStatus(t *testing.T) {
	orders := &mockOrderRepo{}
	uc := newAdminUC(newMockProductRepo(), &mockCategoryRepo{}, orders, &mockLocationRepo{}, &mockCacheRepo{})

	_, err := uc.UpdateOrderStatus(context.Background(), 1, "bogus")
	assert.ErrorIs(t, err, e.ErrInvalidOrderStatus)

	order, err := uc.UpdateOrderStatus(context.Background(), 1, string(domain.OrderStatusShipped))
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, order.Status)
}

func TestAdminUC_CreateLocation_RequiresNameAndAddress(t *testing.T) {
	uc := newAdminUC(newMockProductRepo(), &mockCategoryRepo{}, &mockOrderRepo{}, &mockLocationRepo{}, &mockCacheRepo{})

	_, err := uc.CreateLocation(context.Background(), &LocationReq{Name: "Flagship"})

	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestAdminUC_CreateLocation_ActiveByDefault(t *testing.T) {
	locations := &mockLocationRepo{}
	uc := newAdminUC(newMockProductRepo(), &mockCategoryRepo{}, &mockOrderRepo{}, locations, &mockCacheRepo{})

	location, err := uc.CreateLocation(context.Background(), &LocationReq{
		Name:    "Flagship",
		Address: "12 Broad Street",
		City:    "Lagos",
		State:   "Lagos",
	})

	require.NoError(t, err)
	assert.True(t, location.IsActive)
}

func TestAdminUC_ListCustomers_RepoError(t *testing.T) {
	uc := NewAdminUC(newMockProductRepo(), &mockCategoryRepo{}, &mockOrderRepo{},
		&failingCustomerRepo{}, &mockLocationRepo{}, nil, &mockCacheRepo{}, nil, logger.NewSlogLogger())

	_, err := uc.ListCustomers(context.Background(), 1, 20)

	require.Error(t, err)
}

type failingCustomerRepo struct{}

func (f *failingCustomerRepo) UpsertByEmail(context.Context, *domain.Customer) (*domain.Customer, error) {
	return nil, errors.New("db down")
}

func (f *failingCustomerRepo) List(context.Context, int, int) ([]domain.Customer, int, error) {
	return nil, 0, errors.New("db down")
}
