package pgdb

import (
	"context"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/internal/repository/pgdb/converter"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CustomerRepo реализует репозиторий покупателей поверх PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
	conv converter.CustomerConverter
}

func NewCustomerRepo(pool *pgxpool.Pool, conv converter.CustomerConverter) *CustomerRepo {
	return &CustomerRepo{pool: pool, conv: conv}
}

// UpsertByEmail идемпотентно создаёт или обновляет покупателя по email.
// Повторный заказ с тем же адресом обновляет имя и телефон.
// Вызывается под транзакцией оформления заказа.
func (c *CustomerRepo) UpsertByEmail(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO customers (email, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			updated_at = NOW()
		RETURNING id, email, first_name, last_name, phone, created_at, updated_at;
	`

	var model converter.CustomerModel
	if err := tx.QueryRow(ctx, query,
		customer.Email, customer.FirstName, customer.LastName, customer.Phone,
	).Scan(
		&model.ID, &model.Email, &model.FirstName, &model.LastName,
		&model.Phone, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// List возвращает страницу покупателей с общим количеством.
func (c *CustomerRepo) List(ctx context.Context, page, perPage int) ([]domain.Customer, int, error) {
	query := `
		SELECT id, email, first_name, last_name, phone, created_at, updated_at,
			COUNT(*) OVER() AS total
		FROM customers
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2;
	`

	rows, err := c.pool.Query(ctx, query, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int
	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var model converter.CustomerModel
		if err := rows.Scan(
			&model.ID, &model.Email, &model.FirstName, &model.LastName,
			&model.Phone, &model.CreatedAt, &model.UpdatedAt, &total,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		customers = append(customers, *c.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return customers, total, nil
}
