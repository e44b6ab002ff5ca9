package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/crownline/shop-backend/internal/cfg"
	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/internal/repository/redis/converter"
	"github.com/crownline/shop-backend/pkg/clients"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CartStore хранит корзины в Redis по токену сессии. Хранилище
// best-effort: любая деградация Redis превращается в пустую корзину
// или проглоченную запись, но никогда не ломает операцию покупателя.
type CartStore struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCartStore(client *clients.RedisClient, conv converter.CartConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CartStore {
	return &CartStore{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Get загружает корзину по токену. Отсутствующий ключ, ошибка Redis или
// повреждённый payload дают пустую корзину; повреждённый ключ удаляется.
func (s *CartStore) Get(ctx context.Context, token string) (*domain.Cart, error) {
	key := s.cartKey(token)

	data, err := s.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, r.Nil) {
			s.logger.Warnf("Redis GET failed, serving empty cart: %v", e.Wrap(whereami.WhereAmI(), err))
		}

		return domain.NewCart(), nil
	}

	var model converter.CartModel
	if err := json.Unmarshal(data, &model); err != nil {
		s.logger.Warnf("Corrupt cart payload, resetting. key: %s, error: %v", key, e.Wrap(whereami.WhereAmI(), err))
		if err := s.client.Client.Del(context.Background(), key).Err(); err != nil {
			s.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}

		return domain.NewCart(), nil
	}

	return s.conv.ToEntity(&model), nil
}

// Save сохраняет корзину с TTL сессии. Ошибка записи логируется и
// проглатывается: корзина в памяти остаётся авторитетной до конца запроса.
func (s *CartStore) Save(ctx context.Context, token string, cart *domain.Cart) error {
	data, err := json.Marshal(s.conv.ToModel(cart))
	if err != nil {
		s.logger.Warnf("Failed to marshal cart: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := s.client.Client.Set(ctx, s.cartKey(token), data, s.cfg.CartTTL).Err(); err != nil {
		s.logger.Warnf("Redis SET failed for cart: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// Delete удаляет корзину по токену.
func (s *CartStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Client.Del(ctx, s.cartKey(token)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *CartStore) cartKey(token string) string {
	return "cart:" + token
}
