package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/crownline/shop-backend/internal/cfg"
	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/internal/repository/redis/converter"
	"github.com/crownline/shop-backend/pkg/clients"
	"github.com/crownline/shop-backend/pkg/logger"
	r "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartStore(t *testing.T) (*CartStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := r.NewClient(&r.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewCartStore(
		&clients.RedisClient{Client: client},
		converter.NewCartConverter(),
		&cfg.RedisCfg{CartTTL: time.Hour},
		logger.NewSlogLogger(),
	)

	return store, mr
}

func testCart() *domain.Cart {
	cart := domain.NewCart()
	cart.AddItem(&domain.Product{ID: 1, Name: "Fedora", Slug: "fedora", Price: 500_000, Inventory: 10}, nil, 2)
	return cart
}

func TestCartStore_Get_MissingKeyReturnsEmptyCart(t *testing.T) {
	store, _ := setupCartStore(t)

	cart, err := store.Get(context.Background(), "no-such-token")

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Totals.Total)
}

func TestCartStore_Get_CorruptPayloadResetsCart(t *testing.T) {
	store, mr := setupCartStore(t)
	require.NoError(t, mr.Set("cart:tok", "{not json"))

	cart, err := store.Get(context.Background(), "tok")

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	// повреждённый ключ удалён, следующая загрузка начнётся с чистого листа
	assert.False(t, mr.Exists("cart:tok"))
}

func TestCartStore_SaveThenGet_RoundTrip(t *testing.T) {
	store, mr := setupCartStore(t)
	cart := testCart()

	require.NoError(t, store.Save(context.Background(), "tok", cart))

	loaded, err := store.Get(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, cart.Items, loaded.Items)
	assert.Equal(t, cart.Totals, loaded.Totals)
	assert.Equal(t, time.Hour, mr.TTL("cart:tok"))
}

func TestCartStore_Save_RedisFailureIsSwallowed(t *testing.T) {
	store, mr := setupCartStore(t)
	mr.Close()

	err := store.Save(context.Background(), "tok", testCart())

	assert.NoError(t, err)
}

func TestCartStore_Get_RedisFailureReturnsEmptyCart(t *testing.T) {
	store, mr := setupCartStore(t)
	mr.Close()

	cart, err := store.Get(context.Background(), "tok")

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartStore_Delete(t *testing.T) {
	store, mr := setupCartStore(t)
	require.NoError(t, store.Save(context.Background(), "tok", testCart()))

	require.NoError(t, store.Delete(context.Background(), "tok"))

	assert.False(t, mr.Exists("cart:tok"))
}
