package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"resto/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = redis.Nil

	clearBatch = 100
)

type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	// Clear deletes every key matching the glob pattern.
	Clear(ctx context.Context, pattern string) error
	// Incr atomically increments the integer at key and returns the new value. A missing key starts at 0.
	Incr(ctx context.Context, key string) (int64, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Clear implements RedisCache. Matching keys are unlinked in batches of clearBatch.
func (cache *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, pattern)

	deleted := 0
	batch := make([]string, 0, clearBatch)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}

		if err := cache.client.Unlink(ctx, batch...).Err(); err != nil {
			return err
		}

		deleted += len(batch)
		batch = batch[:0]

		return nil
	}

	iter := cache.client.Scan(ctx, 0, pattern, clearBatch).Iterator()

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())

		if len(batch) < clearBatch {
			continue
		}

		if err = flush(); err != nil {
			break
		}
	}

	if err == nil {
		err = iter.Err()
	}

	if err == nil {
		err = flush()
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("pattern", pattern).Int("deleted", deleted).Str("RedisCache", "Clear").Msg("failed to clear cache")

		return fmt.Errorf("failed to clear cache keys: %w", err)
	}

	scope.SetAttribute("cache.deleted", deleted)
	log.Debug().Str("pattern", pattern).Int("deleted", deleted).Msg("cache cleared")

	return nil
}

// Incr implements RedisCache.
func (cache *redisCache) Incr(ctx context.Context, key string) (value int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Incr")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	value, err = cache.client.Incr(ctx, key).Result()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Incr").Msg("failed to incr cache")

		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	return value, nil
}

// Delete implements RedisCache.
func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	if err = cache.client.Del(ctx, key).Err(); err != nil {
		scope.TraceError(err)
		log.Error().Str("key", key).Err(err).Str("RedisCache", "Delete").Msg("failed to del cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get implements RedisCache. A missing key returns an error wrapping Nil.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cacheValue, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, Nil) {
			scope.TraceError(err)
		}

		return fmt.Errorf("failed to get cache value: %w", err)
	}

	switch v := value.(type) {
	case *string:
		*v = cacheValue
	default:
		err = json.Unmarshal([]byte(cacheValue), value)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("key", key).Str("RedisCache", "Get").Msg("failed to unmarshal cache")

			return fmt.Errorf("failed to unmarshal cache value: %w", err)
		}
	}

	return nil
}

// Save implements RedisCache.
func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var strValue []byte
	switch v := value.(type) {
	case string:
		strValue = []byte(v)
	default:
		strValue, err = json.Marshal(v)

		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to marshal cache")

			return fmt.Errorf("failed to marshal cache value: %w", err)
		}
	}

	err = cache.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err()

	if err != nil {
		scope.TraceError(err)

		log.Error().Err(err).Str("key", key).Str("RedisCache", "Save").Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("RedisCache", "Save").Str("key", key).Msg("success to set cache")

	return nil
}
