package recipe

import (
	"context"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/search"
)

// Gateway is the remote recipe catalog. It is satisfied by *spoonacular.Client.
type Gateway interface {
	SearchRecipes(ctx context.Context, params search.Params) (*domain.RecipeSearchResponse, error)
	RandomRecipes(ctx context.Context, number int, tags []string) ([]domain.Recipe, error)
	RecipeInformation(ctx context.Context, id int, includeNutrition bool) (*domain.Recipe, error)
}
