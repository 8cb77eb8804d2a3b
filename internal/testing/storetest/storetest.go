// Package storetest opens throwaway record stores for package tests.
package storetest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/NutriFind_Go/internal/database"
	"github.com/osse101/NutriFind_Go/internal/database/sqlite"
	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/live"
)

// Open migrates a fresh database under t.TempDir and returns a store wired to
// a new in-memory bus. The store is closed when the test finishes.
func Open(t testing.TB) (*sqlite.Store, *event.MemoryBus) {
	t.Helper()

	db, err := database.OpenAndMigrate(context.Background(), filepath.Join(t.TempDir(), "records.db"), 1)
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	store := sqlite.New(db, bus)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store, bus
}

// Clock returns a deterministic clock that advances by one second per call
func Clock(startMillis int64) func() int64 {
	next := startMillis
	return func() int64 {
		now := next
		next += 1000
		return now
	}
}

// Next waits for the next snapshot on sub and requires it to be a success
func Next[T any](t testing.TB, sub *live.Subscription[T]) T {
	t.Helper()
	select {
	case res, ok := <-sub.C:
		require.True(t, ok, "subscription closed")
		value, success := res.Value()
		require.True(t, success, "unexpected failure: %v", res.Err())
		return value
	case <-time.After(NextTimeout):
		t.Fatal("timed out waiting for snapshot")
	}
	var zero T
	return zero
}

// NextTimeout bounds how long Next waits
const NextTimeout = 2 * time.Second
