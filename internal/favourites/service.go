package favourites

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/live"
	"github.com/osse101/NutriFind_Go/internal/logger"
)

// Service manages favourite recipes
type Service interface {
	// Add stores recipe as a favourite, replacing any earlier entry
	Add(ctx context.Context, recipe domain.Recipe) error
	// Remove deletes the favourite with the given recipe id
	Remove(ctx context.Context, id int) error
	// Toggle removes the favourite if present, else adds it, and returns the
	// resulting state. It is not atomic against concurrent toggles of one id.
	Toggle(ctx context.Context, recipe domain.Recipe) (bool, error)
	IsFavourite(ctx context.Context, id int) (bool, error)
	ObserveIsFavourite(ctx context.Context, id int) *live.Subscription[bool]
	Get(ctx context.Context, id int) (*domain.FavouriteRecord, error)
	All(ctx context.Context) ([]domain.FavouriteRecord, error)
	ObserveAll(ctx context.Context) *live.Subscription[[]domain.FavouriteRecord]
	Clear(ctx context.Context) error
}

type service struct {
	repo Repository
	bus  event.Bus
	now  func() int64
}

// NewService creates a new favourites service
func NewService(repo Repository, bus event.Bus) Service {
	return newServiceWithClock(repo, bus, func() int64 { return time.Now().UnixMilli() })
}

func newServiceWithClock(repo Repository, bus event.Bus, now func() int64) *service {
	return &service{repo: repo, bus: bus, now: now}
}

func (s *service) Add(ctx context.Context, recipe domain.Recipe) error {
	if err := s.repo.UpsertFavourite(ctx, domain.NewFavouriteRecord(recipe, s.now())); err != nil {
		return fmt.Errorf("add favourite %d: %w", recipe.ID, err)
	}
	logger.FromContext(ctx).Debug(LogMsgFavouriteAdded, "recipe_id", recipe.ID)
	return nil
}

func (s *service) Remove(ctx context.Context, id int) error {
	if err := s.repo.DeleteFavourite(ctx, id); err != nil {
		return fmt.Errorf("remove favourite %d: %w", id, err)
	}
	logger.FromContext(ctx).Debug(LogMsgFavouriteRemoved, "recipe_id", id)
	return nil
}

func (s *service) Toggle(ctx context.Context, recipe domain.Recipe) (bool, error) {
	exists, err := s.repo.FavouriteExists(ctx, recipe.ID)
	if err != nil {
		return false, fmt.Errorf("toggle favourite %d: %w", recipe.ID, err)
	}

	if exists {
		if err := s.Remove(ctx, recipe.ID); err != nil {
			return true, err
		}
	} else {
		if err := s.Add(ctx, recipe); err != nil {
			return false, err
		}
	}

	logger.FromContext(ctx).Info(LogMsgFavouriteToggled, "recipe_id", recipe.ID, "favourite", !exists)
	return !exists, nil
}

func (s *service) IsFavourite(ctx context.Context, id int) (bool, error) {
	return s.repo.FavouriteExists(ctx, id)
}

func (s *service) ObserveIsFavourite(ctx context.Context, id int) *live.Subscription[bool] {
	return live.NewQuery(s.bus, QueryIsFavourite, func(ctx context.Context) (bool, error) {
		return s.repo.FavouriteExists(ctx, id)
	}, event.FavouritesChanged).Observe(ctx)
}

func (s *service) Get(ctx context.Context, id int) (*domain.FavouriteRecord, error) {
	return s.repo.GetFavourite(ctx, id)
}

func (s *service) All(ctx context.Context) ([]domain.FavouriteRecord, error) {
	return s.repo.ListFavourites(ctx)
}

func (s *service) ObserveAll(ctx context.Context) *live.Subscription[[]domain.FavouriteRecord] {
	return live.NewQuery(s.bus, QueryAll, s.repo.ListFavourites, event.FavouritesChanged).Observe(ctx)
}

func (s *service) Clear(ctx context.Context) error {
	if err := s.repo.ClearFavourites(ctx); err != nil {
		return fmt.Errorf("clear favourites: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgFavouritesClear)
	return nil
}
