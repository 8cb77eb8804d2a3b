package shoppinglist

import (
	"context"

	"github.com/osse101/NutriFind_Go/internal/domain"
)

// Repository defines the storage the shopping list service needs
type Repository interface {
	InsertItem(ctx context.Context, item domain.ShoppingListItem) (int64, error)
	InsertItems(ctx context.Context, items []domain.ShoppingListItem) ([]int64, error)
	GetItem(ctx context.Context, id int64) (*domain.ShoppingListItem, error)
	UpdateItem(ctx context.Context, item domain.ShoppingListItem) error
	DeleteItem(ctx context.Context, id int64) error
	DeleteCheckedItems(ctx context.Context) (int64, error)
	ClearItems(ctx context.Context) error
	ListItems(ctx context.Context) ([]domain.ShoppingListItem, error)
	ListUncheckedItems(ctx context.Context) ([]domain.ShoppingListItem, error)
}
