package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/evgear/store-backend/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewRedisCache(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return cache, mr, cleanup
}

func TestGet_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()

	products := []domain.Product{
		{ID: primitive.NewObjectID(), Title: "Level 2 Home Charger", Price: 499.0, InStock: true},
		{ID: primitive.NewObjectID(), Title: "Type 2 Charging Cable 7m", Price: 129.0, InStock: true},
	}

	// Manually set data in miniredis
	data, _ := json.Marshal(products)
	mr.Set(listingKey, string(data))

	result, err := cache.Get(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, products[0].ID, result[0].ID)
	assert.Equal(t, "Level 2 Home Charger", result[0].Title)
	assert.Equal(t, 499.0, result[0].Price)
}

func TestGet_CacheMiss(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	result, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestGet_CorruptPayload(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	mr.Set(listingKey, "{not json")

	result, err := cache.Get(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestSet_RoundTrip(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	products := []domain.Product{
		{ID: primitive.NewObjectID(), Title: "Portable Tire Inflator", Price: 59.0},
	}

	err := cache.Set(ctx, products)
	require.NoError(t, err)

	result, err := cache.Get(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, products[0].ID, result[0].ID)

	// TTL is the base plus up to 5 minutes of jitter
	ttl := mr.TTL(listingKey)
	assert.GreaterOrEqual(t, ttl, cache.baseTTL)
	assert.LessOrEqual(t, ttl, cache.baseTTL+5*time.Minute)
}

func TestDelete(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, []domain.Product{{Title: "Charger"}}))
	require.True(t, mr.Exists(listingKey))

	require.NoError(t, cache.Delete(ctx))
	assert.False(t, mr.Exists(listingKey))
}
