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

// CacheRepo кэширует карточки товаров по slug. Любая деградация Redis
// трактуется как промах кэша и логируется.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProduct возвращает закэшированную карточку товара; (nil, nil) — промах.
func (c *CacheRepo) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	key := c.productKey(slug)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, r.Nil) {
			c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}

		return nil, nil
	}

	var model converter.ProductRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, nil
	}

	if model.Slug != slug {
		c.logger.Warnf("Cache slug mismatch: key_slug: %s, model_slug: %s", slug, model.Slug)
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}

		return nil, nil
	}

	return c.conv.ToEntity(&model), nil
}

// SetProduct кэширует карточку товара с заданным TTL.
// Игнорирует ошибки сериализации/записи, логируя их.
func (c *CacheRepo) SetProduct(ctx context.Context, product *domain.Product) error {
	data, err := json.Marshal(c.conv.ToModel(product))
	if err != nil {
		c.logger.Warnf("Failed to marshal product for caching (Product ID: %d): %v", product.ID, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := c.client.Client.Set(ctx, c.productKey(product.Slug), data, c.cfg.ProductTTL).Err(); err != nil {
		c.logger.Warnf("Cache SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteProducts удаляет карточки из кэша по slug после изменения каталога.
func (c *CacheRepo) DeleteProducts(ctx context.Context, slugs []string) error {
	keys := make([]string, len(slugs))
	for i, slug := range slugs {
		keys[i] = c.productKey(slug)
	}

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// productKey возвращает Redis-ключ карточки товара.
func (c *CacheRepo) productKey(slug string) string {
	return "product:" + slug
}
