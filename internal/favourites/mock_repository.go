package favourites

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NutriFind_Go/internal/domain"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertFavourite(ctx context.Context, rec domain.FavouriteRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) GetFavourite(ctx context.Context, id int) (*domain.FavouriteRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavouriteRecord), args.Error(1)
}

func (m *MockRepository) FavouriteExists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListFavourites(ctx context.Context) ([]domain.FavouriteRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FavouriteRecord), args.Error(1)
}

func (m *MockRepository) DeleteFavourite(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ClearFavourites(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
