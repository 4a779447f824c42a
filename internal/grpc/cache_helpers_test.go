package grpc

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/godilite/founder-assessment/internal/assessment"
	"github.com/godilite/founder-assessment/internal/grpc/mocks"
)

func TestProfileCacheKey(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	base := []assessment.Response{
		{QuestionID: "r1", Value: "5", Timestamp: at},
		{QuestionID: "i1", Value: "3", Timestamp: at},
	}

	const version = "0123456789abcdef"
	key := profileCacheKey(version, base)

	t.Run("prefix and width", func(t *testing.T) {
		prefix := profileKeyPrefix + ":" + version + ":"
		assert.True(t, strings.HasPrefix(key, prefix))
		assert.Len(t, strings.TrimPrefix(key, prefix), 16)
	})

	t.Run("catalog version matters", func(t *testing.T) {
		assert.NotEqual(t, key, profileCacheKey("fedcba9876543210", base))
	})

	t.Run("order and timestamps are ignored", func(t *testing.T) {
		reordered := []assessment.Response{
			{QuestionID: "i1", Value: "3", Timestamp: at.Add(time.Hour)},
			{QuestionID: "r1", Value: "5"},
		}
		assert.Equal(t, key, profileCacheKey(version, reordered))
	})

	t.Run("values matter", func(t *testing.T) {
		changed := []assessment.Response{
			{QuestionID: "r1", Value: "4"},
			{QuestionID: "i1", Value: "3"},
		}
		assert.NotEqual(t, key, profileCacheKey(version, changed))
	})

	t.Run("duplicates matter", func(t *testing.T) {
		assert.NotEqual(t, key, profileCacheKey(version, append(base, base[0])))
	})
}

func TestAddTTLJitter(t *testing.T) {
	assert.Equal(t, time.Duration(0), addTTLJitter(0))
	assert.Equal(t, time.Second, addTTLJitter(time.Second))

	for range 50 {
		got := addTTLJitter(10 * time.Minute)
		assert.GreaterOrEqual(t, got, 10*time.Minute-15*time.Second)
		assert.Less(t, got, 10*time.Minute+15*time.Second)
	}
}

func TestFindAndCache(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		cache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				*dest.(*int) = 42
				return nil
			},
		}
		var sf singleflight.Group

		v, err := FindAndCache(ctx, cache, &sf, "k", time.Minute, zap.NewNop(), func(context.Context) (int, error) {
			return 0, errors.New("must not fetch")
		})

		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("miss populates the cache", func(t *testing.T) {
		cache := &mocks.MockCacher{}
		var sf singleflight.Group

		v, err := FindAndCache(ctx, cache, &sf, "k", time.Minute, nil, func(context.Context) (int, error) {
			return 7, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 7, v)
		assert.Eventually(t, func() bool {
			return len(cache.SetKeys()) == 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("get error is treated as a miss", func(t *testing.T) {
		cache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				return errors.New("connection refused")
			},
		}
		var sf singleflight.Group

		v, err := FindAndCache(ctx, cache, &sf, "k", time.Minute, zap.NewNop(), func(context.Context) (int, error) {
			return 9, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 9, v)
	})

	t.Run("fetch error", func(t *testing.T) {
		cache := &mocks.MockCacher{}
		var sf singleflight.Group

		_, err := FindAndCache(ctx, cache, &sf, "k", time.Minute, zap.NewNop(), func(context.Context) (int, error) {
			return 0, errors.New("boom")
		})

		assert.EqualError(t, err, "boom")
		assert.Empty(t, cache.SetKeys())
	})

	t.Run("concurrent misses share one fetch", func(t *testing.T) {
		cache := &mocks.MockCacher{}
		var sf singleflight.Group
		var calls atomic.Int32
		release := make(chan struct{})

		fetch := func(context.Context) (int, error) {
			calls.Add(1)
			<-release
			return 5, nil
		}

		var g errgroup.Group
		for range 8 {
			g.Go(func() error {
				v, err := FindAndCache(ctx, cache, &sf, "shared", time.Minute, zap.NewNop(), fetch)
				if err == nil && v != 5 {
					return errors.New("unexpected value")
				}
				return err
			})
		}

		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
		time.Sleep(50 * time.Millisecond)
		close(release)

		require.NoError(t, g.Wait())
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("a canceled caller does not fail the shared fetch", func(t *testing.T) {
		cache := &mocks.MockCacher{}
		var sf singleflight.Group
		var calls atomic.Int32
		release := make(chan struct{})
		fetchErr := make(chan error, 1)

		fetch := func(fetchCtx context.Context) (int, error) {
			calls.Add(1)
			<-release
			fetchErr <- fetchCtx.Err()
			return 5, nil
		}

		firstCtx, cancelFirst := context.WithCancel(ctx)
		firstDone := make(chan error, 1)
		go func() {
			_, err := FindAndCache(firstCtx, cache, &sf, "detached", time.Minute, zap.NewNop(), fetch)
			firstDone <- err
		}()
		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

		secondDone := make(chan int, 1)
		go func() {
			v, err := FindAndCache(ctx, cache, &sf, "detached", time.Minute, zap.NewNop(), fetch)
			if err != nil {
				v = -1
			}
			secondDone <- v
		}()
		time.Sleep(50 * time.Millisecond)

		cancelFirst()
		assert.ErrorIs(t, <-firstDone, context.Canceled)

		close(release)
		assert.Equal(t, 5, <-secondDone)
		assert.NoError(t, <-fetchErr)
		assert.Equal(t, int32(1), calls.Load())
	})
}
