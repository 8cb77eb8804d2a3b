package shoppinglist

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NutriFind_Go/internal/domain"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) InsertItem(ctx context.Context, item domain.ShoppingListItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) InsertItems(ctx context.Context, items []domain.ShoppingListItem) ([]int64, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRepository) GetItem(ctx context.Context, id int64) (*domain.ShoppingListItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingListItem), args.Error(1)
}

func (m *MockRepository) UpdateItem(ctx context.Context, item domain.ShoppingListItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRepository) DeleteItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) DeleteCheckedItems(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ClearItems(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) ListItems(ctx context.Context) ([]domain.ShoppingListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingListItem), args.Error(1)
}

func (m *MockRepository) ListUncheckedItems(ctx context.Context) ([]domain.ShoppingListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingListItem), args.Error(1)
}
