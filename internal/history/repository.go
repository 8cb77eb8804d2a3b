package history

import (
	"context"

	"github.com/osse101/NutriFind_Go/internal/domain"
)

// Repository defines the storage the history service needs
type Repository interface {
	UpsertHistory(ctx context.Context, rec domain.HistoryRecord) error
	ListRecentHistory(ctx context.Context, limit int) ([]domain.HistoryRecord, error)
	DeleteHistory(ctx context.Context, id int) error
	ClearHistory(ctx context.Context) error
}
