package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ripple/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: on a hit, dest is filled from the
// cached JSON; on a miss, load populates dest and the result is written back
// with the given TTL. A nil or unreachable Redis degrades to calling load.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, load func() error) error {
	prefix := keyPrefix(key)

	if client != nil {
		raw, err := client.Get(ctx, key).Result()
		switch {
		case err == nil:
			if unmarshalErr := json.Unmarshal([]byte(raw), dest); unmarshalErr == nil {
				middleware.CacheHits.WithLabelValues(prefix).Inc()
				return nil
			}
			// Corrupt entry: drop it and fall through to load.
			client.Del(ctx, key)
		case !errors.Is(err, redis.Nil):
			// Redis error other than a miss; serve from the source.
		}
		middleware.CacheMisses.WithLabelValues(prefix).Inc()
	}

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		if raw, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, raw, ttl)
		}
	}
	return nil
}

func keyPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
