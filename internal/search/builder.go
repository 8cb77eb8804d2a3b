// Package search maps a free-text query and filter set onto the parameters
// of a catalog search call.
package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/osse101/NutriFind_Go/internal/domain"
)

// Params is a fully resolved search call
type Params struct {
	Query                string
	Number               int
	Offset               int
	AddRecipeInformation bool
	FillIngredients      bool
	AddRecipeNutrition   bool
	// Filters holds only the filter fields that are set
	Filters map[string]string
}

// Values renders p as URL query parameters
func (p Params) Values() url.Values {
	v := url.Values{}
	v.Set(ParamQuery, p.Query)
	v.Set(ParamNumber, strconv.Itoa(p.Number))
	v.Set(ParamOffset, strconv.Itoa(p.Offset))
	v.Set(ParamAddRecipeInformation, strconv.FormatBool(p.AddRecipeInformation))
	v.Set(ParamFillIngredients, strconv.FormatBool(p.FillIngredients))
	v.Set(ParamAddRecipeNutrition, strconv.FormatBool(p.AddRecipeNutrition))
	for k, val := range p.Filters {
		v.Set(k, val)
	}
	return v
}

// Build resolves a search call. It reports false when the trimmed query is
// blank, in which case no search should be issued. A non-positive number
// falls back to DefaultNumber and a negative offset to DefaultOffset.
func Build(query string, filters domain.SearchFilters, number, offset int) (Params, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Params{}, false
	}
	if number <= 0 {
		number = DefaultNumber
	}
	if offset < 0 {
		offset = DefaultOffset
	}

	return Params{
		Query:                query,
		Number:               number,
		Offset:               offset,
		AddRecipeInformation: true,
		FillIngredients:      true,
		AddRecipeNutrition:   true,
		Filters:              FilterParams(filters),
	}, true
}

// FilterParams returns the set filter fields keyed by parameter name.
// Blank strings, empty lists and nil bounds are left out entirely. Cuisine
// and diet are sent as given once they are not blank.
// IncludeIngredients and ExcludeIngredients are never sent.
func FilterParams(f domain.SearchFilters) map[string]string {
	params := make(map[string]string)

	if !isBlank(f.Cuisine) {
		params[ParamCuisine] = f.Cuisine
	}
	if !isBlank(f.Diet) {
		params[ParamDiet] = f.Diet
	}
	if intolerances := joinNonBlank(f.Intolerances); intolerances != "" {
		params[ParamIntolerances] = intolerances
	}
	putBound(params, ParamMaxReadyTime, f.MaxReadyTime)
	putBound(params, ParamMinProtein, f.MinProtein)
	putBound(params, ParamMinCalories, f.MinCalories)
	putBound(params, ParamMaxCalories, f.MaxCalories)

	return params
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func putBound(params map[string]string, key string, v *int) {
	if v != nil {
		params[key] = strconv.Itoa(*v)
	}
}

func joinNonBlank(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, ListSeparator)
}
