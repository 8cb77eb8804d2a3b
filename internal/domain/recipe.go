package domain

// Recipe is a recipe as returned by the remote catalog. It is rebuilt on every
// fetch and never mutated in place.
type Recipe struct {
	ID                   int                   `json:"id"`
	Title                string                `json:"title"`
	Image                string                `json:"image,omitempty"`
	Summary              string                `json:"summary"`
	ReadyInMinutes       int                   `json:"readyInMinutes"`
	Servings             int                   `json:"servings"`
	SourceURL            string                `json:"sourceUrl,omitempty"`
	ExtendedIngredients  []Ingredient          `json:"extendedIngredients"`
	AnalyzedInstructions []AnalyzedInstruction `json:"analyzedInstructions"`
	Nutrition            *Nutrition            `json:"nutrition,omitempty"`
}

// Ingredient is a single ingredient line of a recipe
type Ingredient struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Original string  `json:"original"`
}

// AnalyzedInstruction is a named group of preparation steps
type AnalyzedInstruction struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// Step is one numbered preparation step
type Step struct {
	Number      int          `json:"number"`
	Step        string       `json:"step"`
	Ingredients []Ingredient `json:"ingredients"`
	Equipment   []Equipment  `json:"equipment"`
}

// Equipment is a tool referenced by a step
type Equipment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Nutrition holds the nutrient breakdown of a recipe
type Nutrition struct {
	Nutrients   []Nutrient            `json:"nutrients"`
	Ingredients []NutritionIngredient `json:"ingredients"`
}

// Nutrient is a named nutrient amount
type Nutrient struct {
	Name                string  `json:"name"`
	Amount              float64 `json:"amount"`
	Unit                string  `json:"unit"`
	PercentOfDailyNeeds float64 `json:"percentOfDailyNeeds"`
}

// NutritionIngredient is the per-ingredient nutrient breakdown
type NutritionIngredient struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Amount    float64    `json:"amount"`
	Unit      string     `json:"unit"`
	Nutrients []Nutrient `json:"nutrients"`
}

// Steps returns every step of every instruction set in order
func (r Recipe) Steps() []Step {
	var steps []Step
	for _, instruction := range r.AnalyzedInstructions {
		steps = append(steps, instruction.Steps...)
	}
	return steps
}

// RecipeSearchResult is one hit of a catalog search
type RecipeSearchResult struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Image     string     `json:"image,omitempty"`
	ImageType string     `json:"imageType,omitempty"`
	Nutrition *Nutrition `json:"nutrition,omitempty"`
}

// RecipeSearchResponse is a page of search results
type RecipeSearchResponse struct {
	Results      []RecipeSearchResult `json:"results"`
	Offset       int                  `json:"offset"`
	Number       int                  `json:"number"`
	TotalResults int                  `json:"totalResults"`
}
