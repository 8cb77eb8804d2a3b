package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/history"
	"github.com/osse101/NutriFind_Go/internal/logger"
	"github.com/osse101/NutriFind_Go/internal/recipe"
	"github.com/osse101/NutriFind_Go/internal/search"
)

// FiltersRequest carries the optional search filters
type FiltersRequest struct {
	Cuisine      string   `json:"cuisine" validate:"max=100"`
	Diet         string   `json:"diet" validate:"diet"`
	Intolerances []string `json:"intolerances" validate:"dive,intolerance"`
	MaxReadyTime *int     `json:"maxReadyTime" validate:"omitempty,gte=0"`
	MinProtein   *int     `json:"minProtein" validate:"omitempty,gte=0"`
	MinCalories  *int     `json:"minCalories" validate:"omitempty,gte=0"`
	MaxCalories  *int     `json:"maxCalories" validate:"omitempty,gte=0"`
}

// Filters returns the search filters of the request
func (r FiltersRequest) Filters() domain.SearchFilters {
	intolerances := make([]string, len(r.Intolerances))
	for i, v := range r.Intolerances {
		intolerances[i] = strings.ToLower(v)
	}
	return domain.SearchFilters{
		Cuisine:      r.Cuisine,
		Diet:         strings.ToLower(r.Diet),
		Intolerances: intolerances,
		MaxReadyTime: r.MaxReadyTime,
		MinProtein:   r.MinProtein,
		MinCalories:  r.MinCalories,
		MaxCalories:  r.MaxCalories,
	}
}

// SearchRequest carries the query string of a recipe search
type SearchRequest struct {
	Query string `validate:"max=200"`
	FiltersRequest
	Number *int `validate:"omitempty,gte=1,lte=100"`
	Offset *int `validate:"omitempty,gte=0,lte=900"`
}

func parseSearchRequest(w http.ResponseWriter, r *http.Request) (SearchRequest, bool) {
	req := SearchRequest{
		Query: GetOptionalQueryParam(r, search.ParamQuery, ""),
		FiltersRequest: FiltersRequest{
			Cuisine:      GetOptionalQueryParam(r, search.ParamCuisine, ""),
			Diet:         GetOptionalQueryParam(r, search.ParamDiet, ""),
			Intolerances: GetListParam(r, search.ParamIntolerances),
		},
	}

	bounds := []struct {
		name string
		dst  **int
	}{
		{search.ParamMaxReadyTime, &req.MaxReadyTime},
		{search.ParamMinProtein, &req.MinProtein},
		{search.ParamMinCalories, &req.MinCalories},
		{search.ParamMaxCalories, &req.MaxCalories},
		{search.ParamNumber, &req.Number},
		{search.ParamOffset, &req.Offset},
	}
	for _, b := range bounds {
		v, ok := GetOptionalIntParam(r, w, b.name)
		if !ok {
			return req, false
		}
		*b.dst = v
	}

	if err := validateRequest(w, req); err != nil {
		return req, false
	}
	return req, true
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

// HandleSearchRecipes searches the remote catalog
func HandleSearchRecipes(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseSearchRequest(w, r)
		if !ok {
			return
		}
		if strings.TrimSpace(req.Query) == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		result := svc.SearchRecipes(r.Context(), req.Query, req.Filters(),
			valueOr(req.Number, search.DefaultNumber), valueOr(req.Offset, search.DefaultOffset))
		resp, ok := result.Value()
		if !ok {
			respondServiceError(w, r, ErrMsgSearchFailed, result.Err())
			return
		}
		if resp.Results == nil {
			resp.Results = []domain.RecipeSearchResult{}
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleRandomRecipes returns recommended recipes
func HandleRandomRecipes(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, ok := GetOptionalIntParam(r, w, "number")
		if !ok {
			return
		}

		result := svc.RandomRecipes(r.Context(), valueOr(number, recipe.DefaultRandomNumber), GetListParam(r, "tags"))
		recipes, ok := result.Value()
		if !ok {
			respondServiceError(w, r, ErrMsgGetRandomFailed, result.Err())
			return
		}
		respondJSON(w, http.StatusOK, recipes)
	}
}

// HandleGetRecipe returns one recipe with nutrition and records the view in
// history. A failure to record the view is logged and does not fail the
// request.
func HandleGetRecipe(svc recipe.Service, historySvc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, "id")
		if !ok {
			return
		}

		result := svc.GetRecipeInformation(r.Context(), id)
		rec, ok := result.Value()
		if !ok {
			respondServiceError(w, r, ErrMsgGetRecipeFailed, result.Err())
			return
		}

		recordView(r.Context(), historySvc, rec)
		respondJSON(w, http.StatusOK, rec)
	}
}

func recordView(ctx context.Context, historySvc history.Service, rec domain.Recipe) {
	if err := historySvc.AddToHistory(ctx, rec); err != nil {
		logger.FromContext(ctx).Warn(LogMsgHistoryRecordFailed, "recipe_id", rec.ID, "error", err)
	}
}
