package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/osse101/NutriFind_Go/internal/database/migrations"
)

// MigrationStatus describes one embedded migration and whether it is applied
type MigrationStatus struct {
	Version   int64
	Path      string
	Applied   bool
	AppliedAt time.Time
}

// Migrator applies the embedded goose migrations to a database
type Migrator struct {
	provider *goose.Provider
}

// NewMigrator binds the embedded migrations to db
func NewMigrator(db *sql.DB) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	return &Migrator{provider: provider}, nil
}

// Up applies all pending migrations
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	if len(results) == 0 {
		slog.Default().Debug(LogMsgSchemaUpToDate)
	}
	for _, res := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"version", res.Source.Version,
			"path", res.Source.Path,
			"duration", res.Duration)
	}
	return nil
}

// Down rolls back the most recently applied migration. It is a no-op on an
// empty schema.
func (m *Migrator) Down(ctx context.Context) error {
	res, err := m.provider.Down(ctx)
	if errors.Is(err, goose.ErrNoNextVersion) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRollbackMigration, err)
	}

	slog.Default().Info(LogMsgMigrationRolledBack,
		"version", res.Source.Version,
		"path", res.Source.Path)
	return nil
}

// Status lists every embedded migration in version order
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadStatus, err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, MigrationStatus{
			Version:   st.Source.Version,
			Path:      st.Source.Path,
			Applied:   st.State == goose.StateApplied,
			AppliedAt: st.AppliedAt,
		})
	}
	return out, nil
}

// Version returns the highest applied migration version
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToReadStatus, err)
	}
	return version, nil
}
