package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TrackingCache is an in-memory stand-in for the redis cache. Values go
// through JSON like they do in redis.
type TrackingCache struct {
	mu       sync.Mutex
	GetCalls int
	Hits     int
	SetCalls int
	data     map[string]cacheEntry
}

type cacheEntry struct {
	value  []byte
	expiry time.Time
}

func NewTrackingCache() *TrackingCache {
	return &TrackingCache{
		data: make(map[string]cacheEntry),
	}
}

func (c *TrackingCache) Get(ctx context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.GetCalls++
	entry, exists := c.data[key]
	if !exists || !time.Now().Before(entry.expiry) {
		return redis.Nil
	}
	c.Hits++
	return json.Unmarshal(entry.value, dest)
}

func (c *TrackingCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.SetCalls++
	c.data[key] = cacheEntry{
		value:  data,
		expiry: time.Now().Add(exp),
	}
	return nil
}

func (c *TrackingCache) Close() error {
	return nil
}

// Stats returns the call counters under the lock.
func (c *TrackingCache) Stats() (gets, hits, sets int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.GetCalls, c.Hits, c.SetCalls
}
