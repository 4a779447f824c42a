package grpc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/godilite/founder-assessment/internal/assessment"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

const (
	defaultSetTimeout = 5 * time.Second
	profileKeyPrefix  = "grpc:profile"
)

// addTTLJitter adds up to ±15s random jitter to TTLs of a minute or more to
// avoid mass expiration.
func addTTLJitter(ttl time.Duration) time.Duration {
	if ttl < time.Minute {
		return ttl
	}
	jitter := time.Duration(rand.Intn(30)-15) * time.Second
	return ttl + jitter
}

// profileCacheKey identifies a response set scored against one catalog
// version, independently of answer order and timestamps.
func profileCacheKey(catalogVersion string, responses []assessment.Response) string {
	pairs := make([]string, len(responses))
	for i, r := range responses {
		pairs[i] = r.QuestionID + "=" + string(r.Value)
	}
	sort.Strings(pairs)

	h := xxhash.New()
	_, _ = h.WriteString(strings.Join(pairs, "\n"))
	return fmt.Sprintf("%s:%s:%016x", profileKeyPrefix, catalogVersion, h.Sum64())
}

func fetchAndCacheInBackground[T any](
	ctx context.Context,
	c Cacher,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T

	value, err := fn(ctx)
	if err != nil {
		return zero, err
	}

	go func(v T) {
		setCtx, cancel := context.WithTimeout(context.Background(), defaultSetTimeout)
		defer cancel()

		ttlWithJitter := addTTLJitter(ttl)
		if err := c.Set(setCtx, key, v, ttlWithJitter); err != nil {
			logger.Warn("failed to set cache on miss", zap.String("key", key), zap.Error(err))
		} else {
			logger.Debug("cache populated on miss", zap.String("key", key))
		}
	}(value)

	return value, nil
}

// FindAndCache implements read-through caching with singleflight. Cached values
// are deterministic results, so a hit is served without refresh.
func FindAndCache[T any](
	ctx context.Context,
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T
	if logger == nil {
		logger = zap.NewNop()
	}

	var cached T
	err := c.Get(ctx, key, &cached)
	switch {
	case err == nil:
		logger.Debug("cache hit", zap.String("key", key))
		return cached, nil

	case errors.Is(err, redis.Nil):
		logger.Debug("cache miss", zap.String("key", key))

	default:
		logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	// The fetch ignores cancellation of the caller that started it. Each
	// caller stops waiting when its own ctx is done.
	flightCtx := context.WithoutCancel(ctx)
	ch := sf.DoChan(key, func() (any, error) {
		return fetchAndCacheInBackground(flightCtx, c, key, ttl, logger, fn)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return zero, res.Err
	}

	value, ok := res.Val.(T)
	if !ok {
		logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}

	if res.Shared {
		logger.Debug("singleflight shared result", zap.String("key", key))
	}

	return value, nil
}
