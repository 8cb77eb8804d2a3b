package recipe

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/search"
)

// MockGateway is a mock implementation of the Gateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) SearchRecipes(ctx context.Context, params search.Params) (*domain.RecipeSearchResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeSearchResponse), args.Error(1)
}

func (m *MockGateway) RandomRecipes(ctx context.Context, number int, tags []string) ([]domain.Recipe, error) {
	args := m.Called(ctx, number, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockGateway) RecipeInformation(ctx context.Context, id int, includeNutrition bool) (*domain.Recipe, error) {
	args := m.Called(ctx, id, includeNutrition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}
