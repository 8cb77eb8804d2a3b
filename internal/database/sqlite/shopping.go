package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/logger"
)

const itemColumns = `id, name, amount, unit, is_checked, recipe_id, recipe_title, added_at`

// Unchecked items first, then newest first. id breaks ties within one bulk add.
const itemOrder = `ORDER BY is_checked ASC, added_at DESC, id DESC`

const insertItemQuery = `
	INSERT INTO shopping_list (name, amount, unit, is_checked, recipe_id, recipe_title, added_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
`

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertItem(ctx context.Context, ex execer, item domain.ShoppingListItem) (int64, error) {
	res, err := ex.ExecContext(ctx, insertItemQuery,
		item.Name, item.Amount, item.Unit, boolToInt(item.IsChecked),
		nullInt(item.RecipeID), nullStringPtr(item.RecipeTitle), item.AddedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertItem stores item and returns its assigned id. item.ID is ignored.
func (s *Store) InsertItem(ctx context.Context, item domain.ShoppingListItem) (int64, error) {
	id, err := insertItem(ctx, s.db, item)
	if err != nil {
		return 0, dbError(OpInsertItem, err)
	}

	s.notify(ctx, event.ShoppingListChanged, event.OperationInsert, 1)
	return id, nil
}

// InsertItems stores all items in one transaction and returns their ids in
// input order. Either every item is stored or none is.
func (s *Store) InsertItems(ctx context.Context, items []domain.ShoppingListItem) ([]int64, error) {
	if len(items) == 0 {
		return []int64{}, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, dbError(OpInsertItems, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", rbErr)
		}
	}()

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id, err := insertItem(ctx, tx, item)
		if err != nil {
			return nil, dbError(OpInsertItems, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, dbError(OpInsertItems, err)
	}

	s.notify(ctx, event.ShoppingListChanged, event.OperationInsert, int64(len(ids)))
	return ids, nil
}

// GetItem loads one item by id
func (s *Store) GetItem(ctx context.Context, id int64) (*domain.ShoppingListItem, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM shopping_list WHERE id = ?`, id)
	item, err := scanItem(row)
	if notFound(err) {
		return nil, fmt.Errorf("%w: %w: %d", domain.ErrItemNotFound, domain.ErrRecordNotFound, id)
	}
	if err != nil {
		return nil, dbError(OpGetItem, err)
	}
	return &item, nil
}

// UpdateItem replaces every column of the row with item.ID
func (s *Store) UpdateItem(ctx context.Context, item domain.ShoppingListItem) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE shopping_list
		SET name = ?, amount = ?, unit = ?, is_checked = ?, recipe_id = ?, recipe_title = ?, added_at = ?
		WHERE id = ?
	`, item.Name, item.Amount, item.Unit, boolToInt(item.IsChecked),
		nullInt(item.RecipeID), nullStringPtr(item.RecipeTitle), item.AddedAt, item.ID)
	if err != nil {
		return dbError(OpUpdateItem, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return dbError(OpUpdateItem, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %w: %d", domain.ErrItemNotFound, domain.ErrRecordNotFound, item.ID)
	}

	s.notify(ctx, event.ShoppingListChanged, event.OperationUpdate, n)
	return nil
}

// DeleteItem removes one item. Deleting a missing id is a no-op.
func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM shopping_list WHERE id = ?`, id)
	if err != nil {
		return dbError(OpDeleteItem, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.notify(ctx, event.ShoppingListChanged, event.OperationDelete, n)
	}
	return nil
}

// DeleteCheckedItems removes every checked item and returns how many were removed
func (s *Store) DeleteCheckedItems(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM shopping_list WHERE is_checked = 1`)
	if err != nil {
		return 0, dbError(OpDeleteCheckedItems, err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		s.notify(ctx, event.ShoppingListChanged, event.OperationDelete, n)
	}
	return n, nil
}

// ClearItems removes every item
func (s *Store) ClearItems(ctx context.Context) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM shopping_list`)
	if err != nil {
		return dbError(OpClearItems, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.notify(ctx, event.ShoppingListChanged, event.OperationClear, n)
	}
	return nil
}

// ListItems returns every item, unchecked first, each group newest first
func (s *Store) ListItems(ctx context.Context) ([]domain.ShoppingListItem, error) {
	return s.listItems(ctx, `SELECT `+itemColumns+` FROM shopping_list `+itemOrder)
}

// ListUncheckedItems returns the unchecked items, newest first
func (s *Store) ListUncheckedItems(ctx context.Context) ([]domain.ShoppingListItem, error) {
	return s.listItems(ctx, `SELECT `+itemColumns+` FROM shopping_list WHERE is_checked = 0 `+itemOrder)
}

func (s *Store) listItems(ctx context.Context, query string) ([]domain.ShoppingListItem, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dbError(OpListItems, err)
	}
	defer rows.Close()

	items := []domain.ShoppingListItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, dbError(OpListItems, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(OpListItems, err)
	}
	return items, nil
}

func scanItem(row scanner) (domain.ShoppingListItem, error) {
	var (
		item        domain.ShoppingListItem
		checked     int
		recipeID    sql.NullInt64
		recipeTitle sql.NullString
	)
	err := row.Scan(&item.ID, &item.Name, &item.Amount, &item.Unit, &checked,
		&recipeID, &recipeTitle, &item.AddedAt)
	if err != nil {
		return domain.ShoppingListItem{}, err
	}
	item.IsChecked = checked != 0
	if recipeID.Valid {
		id := int(recipeID.Int64)
		item.RecipeID = &id
	}
	if recipeTitle.Valid {
		title := recipeTitle.String
		item.RecipeTitle = &title
	}
	return item, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullStringPtr(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
