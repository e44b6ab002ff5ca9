package pgdb

import (
	"context"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/internal/repository/pgdb/converter"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ShippingZoneRepo реализует справочник тарифов доставки поверх PostgreSQL.
type ShippingZoneRepo struct {
	pool *pgxpool.Pool
	conv converter.ShippingZoneConverter
}

func NewShippingZoneRepo(pool *pgxpool.Pool, conv converter.ShippingZoneConverter) *ShippingZoneRepo {
	return &ShippingZoneRepo{pool: pool, conv: conv}
}

// GetByState возвращает тариф зоны для региона без учёта регистра.
func (s *ShippingZoneRepo) GetByState(ctx context.Context, state string) (*domain.ShippingZone, error) {
	query := `
		SELECT id, name, state, cost, estimated_days
		FROM shipping_zones
		WHERE LOWER(state) = LOWER($1);
	`

	var model converter.ShippingZoneModel
	err := s.pool.QueryRow(ctx, query, state).Scan(
		&model.ID, &model.Name, &model.State, &model.Cost, &model.EstimatedDays,
	)
	if err != nil {
		// pgx.ErrNoRows тоже уходит наверх: неизвестный регион обслуживается
		// тарифом по умолчанию на уровне бизнес-логики
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}
