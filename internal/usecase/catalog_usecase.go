package usecase

import (
	"context"
	"time"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/logger"
	"golang.org/x/sync/singleflight"
)

// CatalogUseCase обслуживает чтение витрины: список товаров, карточка
// товара со сквозным кэшем и справочники категорий и точек продаж.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	locationRepo LocationRepository
	cacheRepo    CacheRepository
	logger       logger.Logger
	sfg          singleflight.Group // схлопывает параллельные промахи кэша по одному slug
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	locationRepo LocationRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// ListProducts возвращает страницу активных товаров, опционально по категории.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error) {
	const op = "CatalogUseCase.ListProducts"

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	products, total, err := c.productRepo.List(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ListProductsRes{Products: products, Total: total}, nil
}

// GetProductBySlug возвращает карточку товара с вариантами и изображениями.
// Промах кэша идёт в БД под singleflight; заполнение кэша — в фоне.
func (c *CatalogUseCase) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProductBySlug"

	if cached, err := c.cacheRepo.GetProduct(ctx, slug); err == nil && cached != nil {
		return cached, nil
	}

	v, err, _ := c.sfg.Do(slug, func() (interface{}, error) {
		product, err := c.productRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}

		// Фоновое добавление товара в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetProduct(bgCtx, product); err != nil {
				c.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
			}
		}()

		return product, nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return v.(*domain.Product), nil
}

// ListCategories возвращает активные категории.
func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// ListLocations возвращает активные точки продаж для витрины.
func (c *CatalogUseCase) ListLocations(ctx context.Context) ([]domain.StoreLocation, error) {
	const op = "CatalogUseCase.ListLocations"

	locations, err := c.locationRepo.List(ctx, true)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return locations, nil
}
