package search

// Paging defaults for a search call
const (
	DefaultNumber = 20
	DefaultOffset = 0
)

// Query parameter names understood by the catalog search endpoint
const (
	ParamQuery                = "query"
	ParamNumber               = "number"
	ParamOffset               = "offset"
	ParamAddRecipeInformation = "addRecipeInformation"
	ParamFillIngredients      = "fillIngredients"
	ParamAddRecipeNutrition   = "addRecipeNutrition"
	ParamCuisine              = "cuisine"
	ParamDiet                 = "diet"
	ParamIntolerances         = "intolerances"
	ParamMaxReadyTime         = "maxReadyTime"
	ParamMinProtein           = "minProtein"
	ParamMinCalories          = "minCalories"
	ParamMaxCalories          = "maxCalories"
)

// ListSeparator joins multi-valued filters
const ListSeparator = ","
