package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNop(t *testing.T) {
	var c Nop
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", 1, time.Minute))

	var dest int
	assert.ErrorIs(t, c.Get(ctx, "k", &dest), redis.Nil)
	assert.NoError(t, c.Close())
}

func TestNewUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := New(ctx, WithAddress("127.0.0.1:1"))

	assert.ErrorContains(t, err, "ping redis at 127.0.0.1:1")
}
