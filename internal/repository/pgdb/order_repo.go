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

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// Create записывает заказ и его строки. Вызывается под транзакцией
// вместе с покупателем и outbox-событием.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToModel(order)
	query := `
		INSERT INTO orders (
			reference, customer_id, status, subtotal, shipping, tax, total,
			first_name, last_name, email, phone, address, city, state
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.Reference, model.CustomerID, model.Status,
		model.Subtotal, model.Shipping, model.Tax, model.Total,
		model.FirstName, model.LastName, model.Email, model.Phone,
		model.Address, model.City, model.State,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: order with reference %s already exists", whereami.WhereAmI(), order.Reference)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	created := o.conv.ToEntity(model)

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, variant_id, name, size, color, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`

	for _, item := range order.Items {
		item.OrderID = created.ID

		if err := tx.QueryRow(ctx, itemQuery,
			created.ID, item.ProductID, item.VariantID, item.Name,
			item.Size, item.Color, item.UnitPrice, item.Quantity,
		).Scan(&item.ID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		created.Items = append(created.Items, item)
	}

	return created, nil
}

// GetByID возвращает заказ со строками.
func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, reference, customer_id, status, subtotal, shipping, tax, total,
			first_name, last_name, email, phone, address, city, state,
			created_at, updated_at
		FROM orders
		WHERE id = $1;
	`

	var model converter.OrderModel
	err := o.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Reference, &model.CustomerID, &model.Status,
		&model.Subtotal, &model.Shipping, &model.Tax, &model.Total,
		&model.FirstName, &model.LastName, &model.Email, &model.Phone,
		&model.Address, &model.City, &model.State,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	order := o.conv.ToEntity(&model)

	rows, err := o.pool.Query(ctx, `
		SELECT id, order_id, product_id, variant_id, name, size, color, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id;
	`, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var item converter.OrderItemModel
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.VariantID,
			&item.Name, &item.Size, &item.Color, &item.UnitPrice, &item.Quantity,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		order.Items = append(order.Items, o.conv.ItemToEntity(&item))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return order, nil
}

// List возвращает страницу заказов без строк, опционально по статусу.
func (o *OrderRepo) List(ctx context.Context, req *usecase.ListOrdersReq) ([]domain.Order, int, error) {
	args := []any{req.PerPage, (req.Page - 1) * req.PerPage}
	filter := ""
	if req.Status != "" {
		args = append(args, req.Status)
		filter = "WHERE status = $3"
	}

	query := fmt.Sprintf(`
		SELECT id, reference, customer_id, status, subtotal, shipping, tax, total,
			first_name, last_name, email, phone, address, city, state,
			created_at, updated_at,
			COUNT(*) OVER() AS total_count
		FROM orders
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2;
	`, filter)

	rows, err := o.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int
	orders := make([]domain.Order, 0)
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(
			&model.ID, &model.Reference, &model.CustomerID, &model.Status,
			&model.Subtotal, &model.Shipping, &model.Tax, &model.Total,
			&model.FirstName, &model.LastName, &model.Email, &model.Phone,
			&model.Address, &model.City, &model.State,
			&model.CreatedAt, &model.UpdatedAt, &total,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		orders = append(orders, *o.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return orders, total, nil
}

// UpdateStatus переводит заказ в новый статус и возвращает обновлённую запись.
func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, reference, customer_id, status, subtotal, shipping, tax, total,
			first_name, last_name, email, phone, address, city, state,
			created_at, updated_at;
	`

	var model converter.OrderModel
	err := o.pool.QueryRow(ctx, query, id, string(status)).Scan(
		&model.ID, &model.Reference, &model.CustomerID, &model.Status,
		&model.Subtotal, &model.Shipping, &model.Tax, &model.Total,
		&model.FirstName, &model.LastName, &model.Email, &model.Phone,
		&model.Address, &model.City, &model.State,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}
