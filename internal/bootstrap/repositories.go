package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/NutriFind_Go/internal/config"
	"github.com/osse101/NutriFind_Go/internal/database"
	"github.com/osse101/NutriFind_Go/internal/database/sqlite"
	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/favourites"
	"github.com/osse101/NutriFind_Go/internal/history"
	"github.com/osse101/NutriFind_Go/internal/identity"
	"github.com/osse101/NutriFind_Go/internal/recipe"
	"github.com/osse101/NutriFind_Go/internal/server"
	"github.com/osse101/NutriFind_Go/internal/settings"
	"github.com/osse101/NutriFind_Go/internal/shoppinglist"
	"github.com/osse101/NutriFind_Go/internal/spoonacular"
)

// OpenStore opens the embedded database, applies pending migrations and
// returns the record store bound to bus
func OpenStore(ctx context.Context, cfg *config.Config, bus event.Bus) (*sqlite.Store, error) {
	db, err := database.OpenAndMigrate(ctx, cfg.DBPath, cfg.DBMaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	slog.Info(LogMsgStoreOpened, "path", cfg.DBPath, "max_open_conns", cfg.DBMaxOpenConns)
	return sqlite.New(db, bus), nil
}

// NewGateway creates the Spoonacular client from configuration
func NewGateway(cfg *config.Config) (recipe.Gateway, error) {
	client, err := spoonacular.NewClient(cfg.SpoonacularBaseURL, cfg.SpoonacularAPIKey, cfg.HTTPClientTimeout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateGateway, err)
	}
	slog.Info(LogMsgGatewayConfigured, "base_url", cfg.SpoonacularBaseURL, "timeout", cfg.HTTPClientTimeout)
	return client, nil
}

// InitializeServices builds every repository service over one store.
// The store implements each package's Repository interface.
func InitializeServices(store *sqlite.Store, bus event.Bus, gateway recipe.Gateway, provider identity.Provider) server.Services {
	recipes := recipe.NewService(gateway)
	return server.Services{
		Recipes:      recipes,
		Search:       recipe.NewSearchSession(recipes),
		Favourites:   favourites.NewService(store, bus),
		History:      history.NewService(store, bus),
		ShoppingList: shoppinglist.NewService(store, bus),
		Settings:     settings.NewService(store, bus),
		Identity:     provider,
	}
}
