package pgdb

import (
	"context"
	"errors"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/internal/repository/pgdb/converter"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// LocationRepo реализует репозиторий точек продаж поверх PostgreSQL.
type LocationRepo struct {
	pool *pgxpool.Pool
	conv converter.LocationConverter
}

func NewLocationRepo(pool *pgxpool.Pool, conv converter.LocationConverter) *LocationRepo {
	return &LocationRepo{pool: pool, conv: conv}
}

// Create добавляет точку продаж.
func (l *LocationRepo) Create(ctx context.Context, location *domain.StoreLocation) (*domain.StoreLocation, error) {
	query := `
		INSERT INTO store_locations (name, address, city, state, phone, hours, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, address, city, state, phone, hours, created_at, updated_at, is_active;
	`

	var model converter.StoreLocationModel
	if err := l.pool.QueryRow(ctx, query,
		location.Name, location.Address, location.City, location.State,
		location.Phone, location.Hours, location.IsActive,
	).Scan(
		&model.ID, &model.Name, &model.Address, &model.City, &model.State,
		&model.Phone, &model.Hours, &model.CreatedAt, &model.UpdatedAt, &model.IsActive,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return l.conv.ToEntity(&model), nil
}

// Update изменяет точку продаж.
func (l *LocationRepo) Update(ctx context.Context, location *domain.StoreLocation) (*domain.StoreLocation, error) {
	query := `
		UPDATE store_locations
		SET name = $2, address = $3, city = $4, state = $5, phone = $6, hours = $7,
			is_active = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, address, city, state, phone, hours, created_at, updated_at, is_active;
	`

	var model converter.StoreLocationModel
	err := l.pool.QueryRow(ctx, query,
		location.ID, location.Name, location.Address, location.City, location.State,
		location.Phone, location.Hours, location.IsActive,
	).Scan(
		&model.ID, &model.Name, &model.Address, &model.City, &model.State,
		&model.Phone, &model.Hours, &model.CreatedAt, &model.UpdatedAt, &model.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrLocationNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return l.conv.ToEntity(&model), nil
}

// List возвращает точки продаж; activeOnly ограничивает выдачу витриной.
func (l *LocationRepo) List(ctx context.Context, activeOnly bool) ([]domain.StoreLocation, error) {
	query := `
		SELECT id, name, address, city, state, phone, hours, created_at, updated_at, is_active
		FROM store_locations
		WHERE is_active OR NOT $1
		ORDER BY name;
	`

	rows, err := l.pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	locations := make([]domain.StoreLocation, 0)
	for rows.Next() {
		var model converter.StoreLocationModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Address, &model.City, &model.State,
			&model.Phone, &model.Hours, &model.CreatedAt, &model.UpdatedAt, &model.IsActive,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		locations = append(locations, *l.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return locations, nil
}
