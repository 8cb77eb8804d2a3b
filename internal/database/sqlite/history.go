package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/event"
)

const historyColumns = `id, title, image, ready_in_minutes, servings, viewed_at`

// UpsertHistory records a view, replacing any earlier view of the same recipe.
// Every write takes the next seq, which orders views sharing a timestamp.
func (s *Store) UpsertHistory(ctx context.Context, rec domain.HistoryRecord) error {
	query := `
		INSERT OR REPLACE INTO recipe_history (` + historyColumns + `, seq)
		VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM recipe_history))
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.Title, nullString(rec.Image), rec.ReadyInMinutes, rec.Servings, rec.ViewedAt)
	if err != nil {
		return dbError(OpUpsertHistory, err)
	}

	s.notify(ctx, event.HistoryChanged, event.OperationUpsert, 1)
	return nil
}

// GetHistory loads the history entry for a recipe id
func (s *Store) GetHistory(ctx context.Context, id int) (*domain.HistoryRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+historyColumns+` FROM recipe_history WHERE id = ?`, id)
	rec, err := scanHistory(row)
	if notFound(err) {
		return nil, fmt.Errorf("%w: history %d", domain.ErrRecordNotFound, id)
	}
	if err != nil {
		return nil, dbError(OpGetHistory, err)
	}
	return &rec, nil
}

// ListRecentHistory returns up to limit entries, most recently viewed first.
// A limit of zero or less returns every entry.
func (s *Store) ListRecentHistory(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+historyColumns+`
		FROM recipe_history
		ORDER BY viewed_at DESC, seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, dbError(OpListHistory, err)
	}
	defer rows.Close()

	records := []domain.HistoryRecord{}
	for rows.Next() {
		rec, err := scanHistory(rows)
		if err != nil {
			return nil, dbError(OpListHistory, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(OpListHistory, err)
	}
	return records, nil
}

// DeleteHistory removes one entry. Deleting a missing id is a no-op.
func (s *Store) DeleteHistory(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recipe_history WHERE id = ?`, id)
	if err != nil {
		return dbError(OpDeleteHistory, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.notify(ctx, event.HistoryChanged, event.OperationDelete, n)
	}
	return nil
}

// ClearHistory removes every entry
func (s *Store) ClearHistory(ctx context.Context) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recipe_history`)
	if err != nil {
		return dbError(OpClearHistory, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.notify(ctx, event.HistoryChanged, event.OperationClear, n)
	}
	return nil
}

func scanHistory(row scanner) (domain.HistoryRecord, error) {
	var (
		rec   domain.HistoryRecord
		image sql.NullString
	)
	if err := row.Scan(&rec.ID, &rec.Title, &image, &rec.ReadyInMinutes, &rec.Servings, &rec.ViewedAt); err != nil {
		return domain.HistoryRecord{}, err
	}
	rec.Image = image.String
	return rec, nil
}
