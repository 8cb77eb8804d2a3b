package favourites

import (
	"context"

	"github.com/osse101/NutriFind_Go/internal/domain"
)

// Repository defines the storage the favourites service needs
type Repository interface {
	UpsertFavourite(ctx context.Context, rec domain.FavouriteRecord) error
	GetFavourite(ctx context.Context, id int) (*domain.FavouriteRecord, error)
	FavouriteExists(ctx context.Context, id int) (bool, error)
	ListFavourites(ctx context.Context) ([]domain.FavouriteRecord, error)
	DeleteFavourite(ctx context.Context, id int) error
	ClearFavourites(ctx context.Context) error
}
