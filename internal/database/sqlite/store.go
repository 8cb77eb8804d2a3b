// Package sqlite implements the local record store on modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/logger"
	"github.com/osse101/NutriFind_Go/internal/metrics"
)

// Store persists favourites, history, shopping list items and preferences.
// Each committed mutation publishes a change event for its table.
type Store struct {
	db  *sql.DB
	bus event.Bus
}

// New wraps an already migrated database
func New(db *sql.DB, bus event.Bus) *Store {
	return &Store{db: db, bus: bus}
}

// DB exposes the underlying handle for health checks
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// notify publishes a change event. Handler failures are logged, never
// returned, since the mutation itself has already committed.
func (s *Store) notify(ctx context.Context, topic event.Type, operation string, affected int64) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event.NewChangeEvent(topic, operation, affected)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgChangeHandlerFailed, "topic", topic, "operation", operation, "error", err)
	}
}

// dbError wraps a driver error with domain.ErrDatabaseError
func dbError(op string, err error) error {
	metrics.StoreErrors.WithLabelValues(op).Inc()
	return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, op, err)
}

func notFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
