package history

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NutriFind_Go/internal/domain"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertHistory(ctx context.Context, rec domain.HistoryRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) ListRecentHistory(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryRecord), args.Error(1)
}

func (m *MockRepository) DeleteHistory(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ClearHistory(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
