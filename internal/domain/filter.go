package domain

// Diet options accepted by the catalog. DietNone leaves the diet unset.
const (
	DietNone        = ""
	DietVegetarian  = "vegetarian"
	DietVegan       = "vegan"
	DietGlutenFree  = "gluten free"
	DietKeto        = "keto"
	DietPescetarian = "pescetarian"
	DietPaleo       = "paleo"
	DietPrimal      = "primal"
	DietWhole30     = "whole30"
)

// Intolerance options accepted by the catalog
const (
	IntoleranceDairy     = "dairy"
	IntoleranceEgg       = "egg"
	IntoleranceGluten    = "gluten"
	IntoleranceGrain     = "grain"
	IntolerancePeanut    = "peanut"
	IntoleranceSeafood   = "seafood"
	IntoleranceSesame    = "sesame"
	IntoleranceShellfish = "shellfish"
	IntoleranceSoy       = "soy"
	IntoleranceTreeNut   = "tree nut"
	IntoleranceWheat     = "wheat"
)

// SearchFilters narrows a recipe search. Empty strings, empty slices and nil
// bounds all mean "unset".
type SearchFilters struct {
	Cuisine      string   `json:"cuisine"`
	Diet         string   `json:"diet"`
	Intolerances []string `json:"intolerances"`
	MaxReadyTime *int     `json:"maxReadyTime,omitempty"`
	MinProtein   *int     `json:"minProtein,omitempty"`
	MinCalories  *int     `json:"minCalories,omitempty"`
	MaxCalories  *int     `json:"maxCalories,omitempty"`

	// Not sent to the catalog by the query builder.
	IncludeIngredients []string `json:"includeIngredients"`
	ExcludeIngredients []string `json:"excludeIngredients"`
}

// IsDefault reports whether no filter is set
func (f SearchFilters) IsDefault() bool {
	return f.Cuisine == "" &&
		f.Diet == "" &&
		len(f.Intolerances) == 0 &&
		f.MaxReadyTime == nil &&
		f.MinProtein == nil &&
		f.MinCalories == nil &&
		f.MaxCalories == nil &&
		len(f.IncludeIngredients) == 0 &&
		len(f.ExcludeIngredients) == 0
}

// IntPtr returns a pointer to v, for building optional bounds
func IntPtr(v int) *int {
	return &v
}
