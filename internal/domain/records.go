package domain

// FavouriteRecord is a saved favourite. ID is the recipe id and is unique.
type FavouriteRecord struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image,omitempty"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
	Summary        string `json:"summary"`
	AddedAt        int64  `json:"addedAt"` // epoch millis
}

// NewFavouriteRecord builds the stored form of a recipe
func NewFavouriteRecord(recipe Recipe, addedAt int64) FavouriteRecord {
	return FavouriteRecord{
		ID:             recipe.ID,
		Title:          recipe.Title,
		Image:          recipe.Image,
		ReadyInMinutes: recipe.ReadyInMinutes,
		Servings:       recipe.Servings,
		Summary:        recipe.Summary,
		AddedAt:        addedAt,
	}
}

// HistoryRecord is a recently viewed recipe. ID is the recipe id and is unique;
// the latest view wins.
type HistoryRecord struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image,omitempty"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
	ViewedAt       int64  `json:"viewedAt"` // epoch millis
}

// NewHistoryRecord builds the stored form of a viewed recipe
func NewHistoryRecord(recipe Recipe, viewedAt int64) HistoryRecord {
	return HistoryRecord{
		ID:             recipe.ID,
		Title:          recipe.Title,
		Image:          recipe.Image,
		ReadyInMinutes: recipe.ReadyInMinutes,
		Servings:       recipe.Servings,
		ViewedAt:       viewedAt,
	}
}

// ShoppingListItem is one line of the shopping list. ID is assigned by the
// store; zero means not yet stored.
type ShoppingListItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required,max=200"`
	Amount      string  `json:"amount" validate:"max=50"`
	Unit        string  `json:"unit" validate:"max=50"`
	IsChecked   bool    `json:"isChecked"`
	RecipeID    *int    `json:"recipeId,omitempty"`
	RecipeTitle *string `json:"recipeTitle,omitempty"`
	AddedAt     int64   `json:"addedAt"` // epoch millis
}
