package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: on a hit the cached JSON is
// unmarshaled into dest; on a miss the loader runs and its result (already
// written into dest by the loader) is stored under key with the given TTL.
// When Redis is unavailable the loader runs directly and nothing is cached.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, loader func() error) error {
	if client == nil {
		return loader()
	}

	raw, err := client.Get(ctx, key).Result()
	if err == nil {
		if unmarshalErr := json.Unmarshal([]byte(raw), dest); unmarshalErr == nil {
			return nil
		}
		// Corrupt cache entry: drop it and fall through to the loader.
		client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		// Redis degraded; serve from the source of truth.
		return loader()
	}

	if err := loader(); err != nil {
		return err
	}

	if payload, marshalErr := json.Marshal(dest); marshalErr == nil {
		client.Set(ctx, key, payload, ttl)
	}
	return nil
}
