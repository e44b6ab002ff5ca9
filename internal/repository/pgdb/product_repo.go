package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/internal/repository/pgdb/converter"
	"github.com/crownline/shop-backend/internal/usecase"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create записывает товар и его варианты. Вызывается под транзакцией.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (name, slug, price, inventory, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, slug, price, inventory, category_id, created_at, updated_at, is_archived;
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query,
		product.Name, product.Slug, product.Price, product.Inventory, product.CategoryID,
	).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Price, &model.Inventory,
		&model.CategoryID, &model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: product with slug %s already exists", whereami.WhereAmI(), product.Slug)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	created := p.conv.ToEntity(&model)

	variantQuery := `
		INSERT INTO product_variants (product_id, size, color, price_adjustment, inventory)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	for _, v := range product.Variants {
		variant := v
		variant.ProductID = created.ID

		if err := tx.QueryRow(ctx, variantQuery,
			created.ID, variant.Size, variant.Color, variant.PriceAdjustment, variant.Inventory,
		).Scan(&variant.ID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		created.Variants = append(created.Variants, variant)
	}

	return created, nil
}

// Update изменяет скалярные поля товара.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $2, slug = $3, price = $4, inventory = $5, category_id = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, slug, price, inventory, category_id, created_at, updated_at, is_archived;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Slug, product.Price, product.Inventory, product.CategoryID,
	).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Price, &model.Inventory,
		&model.CategoryID, &model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Archive скрывает товар с витрины, не удаляя его записи.
func (p *ProductRepo) Archive(ctx context.Context, id int64) error {
	result, err := p.pool.Exec(ctx, `
		UPDATE products SET is_archived = TRUE, updated_at = NOW() WHERE id = $1;
	`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// GetByID возвращает товар с вариантами и изображениями.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return p.getOne(ctx, "id = $1", id)
}

// GetBySlug возвращает товар с вариантами и изображениями по slug.
func (p *ProductRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return p.getOne(ctx, "slug = $1", slug)
}

// List возвращает страницу товаров с общим количеством,
// опционально отфильтрованную по slug категории.
func (p *ProductRepo) List(ctx context.Context, req *usecase.ListProductsReq) ([]domain.Product, int, error) {
	args := []any{req.PerPage, (req.Page - 1) * req.PerPage}
	filter := "WHERE TRUE"
	if !req.IncludeArchived {
		filter += " AND pr.is_archived = FALSE"
	}
	if req.CategorySlug != "" {
		args = append(args, req.CategorySlug)
		filter += fmt.Sprintf(" AND cat.slug = $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT pr.id, pr.name, pr.slug, pr.price, pr.inventory, pr.category_id,
			pr.created_at, pr.updated_at, pr.is_archived,
			COUNT(*) OVER() AS total
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		%s
		ORDER BY pr.created_at DESC, pr.id DESC
		LIMIT $1 OFFSET $2;
	`, filter)

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int
	products := make([]domain.Product, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Slug, &model.Price, &model.Inventory,
			&model.CategoryID, &model.CreatedAt, &model.UpdatedAt, &model.IsArchived, &total,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		products = append(products, *p.conv.ToEntity(&model))
		ids = append(ids, model.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(products) == 0 {
		return products, total, nil
	}

	byID := make(map[int64]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	if err := p.loadVariants(ctx, ids, byID); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := p.loadImages(ctx, ids, byID); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, total, nil
}

// AddImages записывает ключи загруженных изображений товара.
// Вызывается под транзакцией вместе с созданием товара.
func (p *ProductRepo) AddImages(ctx context.Context, productID int64, keys []string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO product_images (product_id, object_key, position)
		VALUES ($1, $2, $3);
	`

	for position, key := range keys {
		if _, err := tx.Exec(ctx, query, productID, key, position); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

func (p *ProductRepo) getOne(ctx context.Context, where string, arg any) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT id, name, slug, price, inventory, category_id, created_at, updated_at, is_archived
		FROM products
		WHERE %s;
	`, where)

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, arg).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Price, &model.Inventory,
		&model.CategoryID, &model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	product := p.conv.ToEntity(&model)
	byID := map[int64]*domain.Product{product.ID: product}

	if err := p.loadVariants(ctx, []int64{product.ID}, byID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := p.loadImages(ctx, []int64{product.ID}, byID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

func (p *ProductRepo) loadVariants(ctx context.Context, ids []int64, byID map[int64]*domain.Product) error {
	rows, err := p.pool.Query(ctx, `
		SELECT id, product_id, size, color, price_adjustment, inventory
		FROM product_variants
		WHERE product_id = ANY($1)
		ORDER BY id;
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var model converter.VariantModel
		if err := rows.Scan(
			&model.ID, &model.ProductID, &model.Size, &model.Color,
			&model.PriceAdjustment, &model.Inventory,
		); err != nil {
			return err
		}

		if product, ok := byID[model.ProductID]; ok {
			product.Variants = append(product.Variants, p.conv.VariantToEntity(&model))
		}
	}

	return rows.Err()
}

func (p *ProductRepo) loadImages(ctx context.Context, ids []int64, byID map[int64]*domain.Product) error {
	rows, err := p.pool.Query(ctx, `
		SELECT id, product_id, object_key, position
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY product_id, position;
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var model converter.ProductImageModel
		if err := rows.Scan(&model.ID, &model.ProductID, &model.ObjectKey, &model.Position); err != nil {
			return err
		}

		if product, ok := byID[model.ProductID]; ok {
			product.Images = append(product.Images, p.conv.ImageToEntity(&model))
		}
	}

	return rows.Err()
}
