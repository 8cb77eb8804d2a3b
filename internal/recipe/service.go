package recipe

import (
	"context"
	"fmt"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/logger"
	"github.com/osse101/NutriFind_Go/internal/metrics"
	"github.com/osse101/NutriFind_Go/internal/search"
)

// Service wraps the catalog gateway. Search and information calls report
// failures as a Result, never as a panic or a bare error.
type Service interface {
	// SearchRecipes searches the catalog. A blank query makes no call and
	// returns the Skipped variant.
	SearchRecipes(ctx context.Context, query string, filters domain.SearchFilters, number, offset int) domain.Result[domain.RecipeSearchResponse]
	// GetRecipeDetails returns the recipe with nutrition, or the gateway error
	GetRecipeDetails(ctx context.Context, id int) (*domain.Recipe, error)
	GetRecipeInformation(ctx context.Context, id int) domain.Result[domain.Recipe]
	// RandomRecipes returns recommendations. A non-positive number asks for
	// DefaultRandomNumber.
	RandomRecipes(ctx context.Context, number int, tags []string) domain.Result[[]domain.Recipe]
}

type service struct {
	gateway Gateway
}

// NewService creates a new recipe service
func NewService(gateway Gateway) Service {
	return &service{gateway: gateway}
}

func (s *service) SearchRecipes(ctx context.Context, query string, filters domain.SearchFilters, number, offset int) domain.Result[domain.RecipeSearchResponse] {
	log := logger.FromContext(ctx)

	params, ok := search.Build(query, filters, number, offset)
	if !ok {
		log.Debug(LogMsgSearchSkipped)
		return domain.Skipped[domain.RecipeSearchResponse]()
	}

	metrics.SearchesPerformed.Inc()
	resp, err := s.gateway.SearchRecipes(ctx, params)
	if err != nil {
		log.Warn(LogMsgSearchFailed, "query", params.Query, "error", err)
		return domain.Failure[domain.RecipeSearchResponse](err)
	}

	log.Debug(LogMsgSearchCompleted, "query", params.Query, "results", len(resp.Results), "total", resp.TotalResults)
	return domain.Success(*resp)
}

func (s *service) GetRecipeDetails(ctx context.Context, id int) (*domain.Recipe, error) {
	recipe, err := s.gateway.RecipeInformation(ctx, id, true)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDetailsFailed, "recipe_id", id, "error", err)
		return nil, fmt.Errorf("load recipe %d: %w", id, err)
	}
	return recipe, nil
}

func (s *service) GetRecipeInformation(ctx context.Context, id int) domain.Result[domain.Recipe] {
	recipe, err := s.GetRecipeDetails(ctx, id)
	if err != nil {
		return domain.Failure[domain.Recipe](err)
	}
	return domain.Success(*recipe)
}

func (s *service) RandomRecipes(ctx context.Context, number int, tags []string) domain.Result[[]domain.Recipe] {
	if number <= 0 {
		number = DefaultRandomNumber
	}

	recipes, err := s.gateway.RandomRecipes(ctx, number, tags)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRandomFailed, "error", err)
		return domain.Failure[[]domain.Recipe](err)
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return domain.Success(recipes)
}
