// Package database opens the embedded SQLite database and manages its schema.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// Pool interface for database handle operations
type Pool interface {
	PingContext(ctx context.Context) error
	Close() error
}

// Open opens the SQLite database at path, creating its directory if needed,
// and checks the connection. It does not touch the schema; see Migrator.
func Open(ctx context.Context, path string, maxOpenConns int) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%s", ErrMsgPathRequired)
	}
	cleanPath := filepath.Clean(path)

	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateDir, err)
		}
	}

	db, err := sql.Open(DriverName, cleanPath+DSNOptions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}

	if maxOpenConns <= 0 {
		maxOpenConns = DefaultMaxOpenConns
	}
	db.SetMaxOpenConns(maxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyOpenedDatabase, "path", cleanPath)
	return db, nil
}

// OpenAndMigrate opens the database and applies every pending migration
func OpenAndMigrate(ctx context.Context, path string, maxOpenConns int) (*sql.DB, error) {
	db, err := Open(ctx, path, maxOpenConns)
	if err != nil {
		return nil, err
	}

	migrator, err := NewMigrator(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrator.Up(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
