package history

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/live"
	"github.com/osse101/NutriFind_Go/internal/logger"
	"github.com/osse101/NutriFind_Go/internal/metrics"
)

// Service records and lists recently viewed recipes
type Service interface {
	// AddToHistory records a view of recipe now. Viewing it again moves it to
	// the front instead of adding a second entry.
	AddToHistory(ctx context.Context, recipe domain.Recipe) error
	DeleteFromHistory(ctx context.Context, id int) error
	ClearHistory(ctx context.Context) error
	// Recent returns up to DefaultRecentLimit entries, most recent first
	Recent(ctx context.Context) ([]domain.HistoryRecord, error)
	ObserveRecent(ctx context.Context) *live.Subscription[[]domain.HistoryRecord]
}

type service struct {
	repo Repository
	bus  event.Bus
	now  func() int64
}

// NewService creates a new history service
func NewService(repo Repository, bus event.Bus) Service {
	return newServiceWithClock(repo, bus, func() int64 { return time.Now().UnixMilli() })
}

func newServiceWithClock(repo Repository, bus event.Bus, now func() int64) *service {
	return &service{repo: repo, bus: bus, now: now}
}

func (s *service) AddToHistory(ctx context.Context, recipe domain.Recipe) error {
	if err := s.repo.UpsertHistory(ctx, domain.NewHistoryRecord(recipe, s.now())); err != nil {
		return fmt.Errorf("record view of recipe %d: %w", recipe.ID, err)
	}
	metrics.RecipesViewed.Inc()
	logger.FromContext(ctx).Debug(LogMsgHistoryRecorded, "recipe_id", recipe.ID)
	return nil
}

func (s *service) DeleteFromHistory(ctx context.Context, id int) error {
	if err := s.repo.DeleteHistory(ctx, id); err != nil {
		return fmt.Errorf("delete history entry %d: %w", id, err)
	}
	logger.FromContext(ctx).Debug(LogMsgHistoryDeleted, "recipe_id", id)
	return nil
}

func (s *service) ClearHistory(ctx context.Context) error {
	if err := s.repo.ClearHistory(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgHistoryCleared)
	return nil
}

func (s *service) Recent(ctx context.Context) ([]domain.HistoryRecord, error) {
	return s.repo.ListRecentHistory(ctx, DefaultRecentLimit)
}

func (s *service) ObserveRecent(ctx context.Context) *live.Subscription[[]domain.HistoryRecord] {
	return live.NewQuery(s.bus, QueryRecent, s.Recent, event.HistoryChanged).Observe(ctx)
}
