package usecase

import (
	"context"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
)

// AdminUseCase реализует операции бэк-офиса: управление товарами,
// категориями, заказами, покупателями и точками продаж.
type AdminUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	orderRepo    OrderRepository
	customerRepo CustomerRepository
	locationRepo LocationRepository
	imagesInfra  ImagesInfra
	cacheRepo    CacheRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewAdminUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	orderRepo OrderRepository,
	customerRepo CustomerRepository,
	locationRepo LocationRepository,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		locationRepo: locationRepo,
		imagesInfra:  imagesInfra,
		cacheRepo:    cacheRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// RegisterNewProduct создаёт товар с вариантами и изображениями.
// Запись в БД и загрузка изображений выполняются под одной транзакцией;
// при откате уже загруженные файлы зачищаются в фоне.
func (a *AdminUseCase) RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*domain.Product, error) {
	const op = "AdminUseCase.RegisterNewProduct"

	var err error
	if err = a.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		imagesRes *UploadImagesRes
		uploaded  bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженных изображений
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded && imagesRes != nil {
				a.logger.Warnf(
					"Cleaning up orphaned images after transaction failure. product_slug: %s, error: %v",
					req.Slug,
					e.Wrap(op, err),
				)

				a.imagesInfra.CleanupImages(imagesRes.ImagesKeys)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product := domain.NewProduct(req.Name, req.Slug, req.Price, req.Inventory, req.CategoryID)
	for _, v := range req.Variants {
		product.Variants = append(product.Variants, domain.ProductVariant{
			Size:            v.Size,
			Color:           v.Color,
			PriceAdjustment: v.PriceAdjustment,
			Inventory:       v.Inventory,
		})
	}

	product, err = a.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(req.Images) > 0 {
		imagesRes, err = a.imagesInfra.UploadImages(ctx, NewUploadImagesReq(req.Slug, req.Images))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploaded = true

		if err = a.productRepo.AddImages(ctx, product.ID, imagesRes.ImagesKeys); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, product.Slug)

	return product, nil
}

// UpdateProduct изменяет скалярные поля товара и сбрасывает его кэш.
func (a *AdminUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "AdminUseCase.UpdateProduct"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}
	if req.Price <= 0 {
		return nil, e.Wrap(op, e.ErrPriceMustBePositive)
	}

	product, err := a.productRepo.Update(ctx, &domain.Product{
		ID:         req.ID,
		Name:       req.Name,
		Slug:       req.Slug,
		Price:      req.Price,
		Inventory:  req.Inventory,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, product.Slug)

	return product, nil
}

// ArchiveProduct скрывает товар с витрины, не удаляя его.
func (a *AdminUseCase) ArchiveProduct(ctx context.Context, id int64) error {
	const op = "AdminUseCase.ArchiveProduct"

	product, err := a.productRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := a.productRepo.Archive(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, product.Slug)

	return nil
}

// CreateCategory идемпотентно создаёт категорию.
func (a *AdminUseCase) CreateCategory(ctx context.Context, name string, slug string) (*domain.Category, error) {
	const op = "AdminUseCase.CreateCategory"

	if strings.TrimSpace(name) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}
	if strings.TrimSpace(slug) == "" {
		slug = Slugify(name)
	}

	category, err := a.categoryRepo.Create(ctx, domain.NewCategory(name, slug))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// ListOrders возвращает страницу заказов, опционально по статусу.
func (a *AdminUseCase) ListOrders(ctx context.Context, req *ListOrdersReq) (*ListOrdersRes, error) {
	const op = "AdminUseCase.ListOrders"

	if req.Status != "" && !domain.ValidOrderStatus(req.Status) {
		return nil, e.Wrap(op, e.ErrInvalidOrderStatus)
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	orders, total, err := a.orderRepo.List(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ListOrdersRes{Orders: orders, Total: total}, nil
}

// GetOrder возвращает заказ со строками.
func (a *AdminUseCase) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	const op = "AdminUseCase.GetOrder"

	order, err := a.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// UpdateOrderStatus переводит заказ в указанный статус.
func (a *AdminUseCase) UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	const op = "AdminUseCase.UpdateOrderStatus"

	if !domain.ValidOrderStatus(status) {
		return nil, e.Wrap(op, e.ErrInvalidOrderStatus)
	}

	order, err := a.orderRepo.UpdateStatus(ctx, id, domain.OrderStatus(status))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// ListCustomers возвращает страницу покупателей.
func (a *AdminUseCase) ListCustomers(ctx context.Context, page, perPage int) (*ListCustomersRes, error) {
	const op = "AdminUseCase.ListCustomers"

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	customers, total, err := a.customerRepo.List(ctx, page, perPage)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ListCustomersRes{Customers: customers, Total: total}, nil
}

// CreateLocation добавляет точку продаж.
func (a *AdminUseCase) CreateLocation(ctx context.Context, req *LocationReq) (*domain.StoreLocation, error) {
	const op = "AdminUseCase.CreateLocation"

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	location, err := a.locationRepo.Create(ctx, domain.NewStoreLocation(
		req.Name, req.Address, req.City, req.State, req.Phone, req.Hours,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return location, nil
}

// UpdateLocation изменяет точку продаж.
func (a *AdminUseCase) UpdateLocation(ctx context.Context, id int64, req *LocationReq) (*domain.StoreLocation, error) {
	const op = "AdminUseCase.UpdateLocation"

	location, err := a.locationRepo.Update(ctx, &domain.StoreLocation{
		ID:       id,
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Phone:    req.Phone,
		Hours:    req.Hours,
		IsActive: req.IsActive,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return location, nil
}

// invalidateProduct удаляет товар из кэша после изменения каталога.
func (a *AdminUseCase) invalidateProduct(ctx context.Context, slug string) {
	if err := a.cacheRepo.DeleteProducts(ctx, []string{slug}); err != nil {
		a.logger.Warnf("Failed to invalidate product cache: %v", err)
	}
}

// validateProduct проверяет корректность входных данных запроса на добавление товара.
func (a *AdminUseCase) validateProduct(req *AddNewProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if strings.TrimSpace(req.Slug) == "" {
		req.Slug = Slugify(req.Name)
	}

	return nil
}

// Slugify приводит название к URL-дружелюбному виду.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case !prevDash && b.Len() > 0:
			b.WriteRune('-')
			prevDash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
