package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/event"
)

const favouriteColumns = `id, title, image, ready_in_minutes, servings, summary, added_at`

// UpsertFavourite inserts rec or replaces the row with the same id. Every
// write takes the next seq, which orders favourites sharing a timestamp.
func (s *Store) UpsertFavourite(ctx context.Context, rec domain.FavouriteRecord) error {
	query := `
		INSERT OR REPLACE INTO favourite_recipes (` + favouriteColumns + `, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM favourite_recipes))
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.Title, nullString(rec.Image), rec.ReadyInMinutes, rec.Servings,
		nullString(rec.Summary), rec.AddedAt)
	if err != nil {
		return dbError(OpUpsertFavourite, err)
	}

	s.notify(ctx, event.FavouritesChanged, event.OperationUpsert, 1)
	return nil
}

// GetFavourite loads one favourite by recipe id
func (s *Store) GetFavourite(ctx context.Context, id int) (*domain.FavouriteRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+favouriteColumns+` FROM favourite_recipes WHERE id = ?`, id)
	rec, err := scanFavourite(row)
	if notFound(err) {
		return nil, fmt.Errorf("%w: favourite %d", domain.ErrRecordNotFound, id)
	}
	if err != nil {
		return nil, dbError(OpGetFavourite, err)
	}
	return &rec, nil
}

// FavouriteExists reports whether recipe id is a favourite
func (s *Store) FavouriteExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM favourite_recipes WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, dbError(OpFavouriteExists, err)
	}
	return exists, nil
}

// ListFavourites returns every favourite, most recently added first
func (s *Store) ListFavourites(ctx context.Context) ([]domain.FavouriteRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+favouriteColumns+`
		FROM favourite_recipes
		ORDER BY added_at DESC, seq DESC
	`)
	if err != nil {
		return nil, dbError(OpListFavourites, err)
	}
	defer rows.Close()

	records := []domain.FavouriteRecord{}
	for rows.Next() {
		rec, err := scanFavourite(rows)
		if err != nil {
			return nil, dbError(OpListFavourites, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(OpListFavourites, err)
	}
	return records, nil
}

// DeleteFavourite removes one favourite. Deleting a missing id is a no-op.
func (s *Store) DeleteFavourite(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM favourite_recipes WHERE id = ?`, id)
	if err != nil {
		return dbError(OpDeleteFavourite, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.notify(ctx, event.FavouritesChanged, event.OperationDelete, n)
	}
	return nil
}

// ClearFavourites removes every favourite
func (s *Store) ClearFavourites(ctx context.Context) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM favourite_recipes`)
	if err != nil {
		return dbError(OpClearFavourites, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.notify(ctx, event.FavouritesChanged, event.OperationClear, n)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFavourite(row scanner) (domain.FavouriteRecord, error) {
	var (
		rec     domain.FavouriteRecord
		image   sql.NullString
		summary sql.NullString
	)
	if err := row.Scan(&rec.ID, &rec.Title, &image, &rec.ReadyInMinutes, &rec.Servings, &summary, &rec.AddedAt); err != nil {
		return domain.FavouriteRecord{}, err
	}
	rec.Image = image.String
	rec.Summary = summary.String
	return rec, nil
}
