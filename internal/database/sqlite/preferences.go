package sqlite

import (
	"context"

	"github.com/osse101/NutriFind_Go/internal/event"
)

// GetPreferences returns every stored preference. Absent keys are simply missing.
func (s *Store) GetPreferences(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences`)
	if err != nil {
		return nil, dbError(OpGetPreferences, err)
	}
	defer rows.Close()

	prefs := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, dbError(OpGetPreferences, err)
		}
		prefs[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(OpGetPreferences, err)
	}
	return prefs, nil
}

// SetPreference writes one key, replacing any previous value
func (s *Store) SetPreference(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return dbError(OpSetPreference, err)
	}

	s.notify(ctx, event.PreferencesChanged, event.OperationUpsert, 1)
	return nil
}
