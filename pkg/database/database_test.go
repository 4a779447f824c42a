package database

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("memory database is pinned to one connection", func(t *testing.T) {
		db, err := New(context.Background(), WithMaxOpenConns(10))
		require.NoError(t, err)
		defer db.Close()

		assert.Equal(t, 1, db.Stats().MaxOpenConnections)

		_, err = db.Exec(`CREATE TABLE t (id INTEGER)`)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO t (id) VALUES (1)`)
		require.NoError(t, err)

		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
		assert.Equal(t, 1, n)
	})

	t.Run("file database with pragmas", func(t *testing.T) {
		path := t.TempDir() + "/catalog.db"
		db, err := New(context.Background(),
			WithDataSource(path),
			WithPragma("_busy_timeout", "5000"),
			WithMaxOpenConns(4),
		)
		require.NoError(t, err)
		defer db.Close()

		assert.Equal(t, 4, db.Stats().MaxOpenConnections)

		var timeout int
		require.NoError(t, db.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
		assert.Equal(t, 5000, timeout)
	})

	t.Run("empty driver", func(t *testing.T) {
		_, err := New(context.Background(), WithDriver(""))
		assert.ErrorContains(t, err, "driver cannot be empty")
	})

	t.Run("empty data source", func(t *testing.T) {
		_, err := New(context.Background(), WithDataSource(""))
		assert.ErrorContains(t, err, "data source cannot be empty")
	})

	t.Run("unknown driver exhausts retries", func(t *testing.T) {
		_, err := New(context.Background(), WithDriver("nope"), WithRetry(2, time.Millisecond))
		assert.ErrorContains(t, err, "after 2 attempts")
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(ctx, WithDriver("nope"), WithRetry(5, time.Hour))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDataSourceName(t *testing.T) {
	assert.Equal(t, "a.db", dataSourceName("a.db", nil))
	assert.Equal(t, "a.db?_fk=1", dataSourceName("a.db", map[string]string{"_fk": "1"}))
	assert.Equal(t, "file:a.db?mode=rw&_fk=1", dataSourceName("file:a.db?mode=rw", map[string]string{"_fk": "1"}))
}
