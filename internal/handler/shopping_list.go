package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/shoppinglist"
)

// ShoppingItemRequest is the editable part of a shopping list item
type ShoppingItemRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Amount      string  `json:"amount" validate:"max=50"`
	Unit        string  `json:"unit" validate:"max=50"`
	IsChecked   bool    `json:"isChecked"`
	RecipeID    *int    `json:"recipeId" validate:"omitempty,gt=0"`
	RecipeTitle *string `json:"recipeTitle" validate:"omitempty,max=300"`
}

func (s ShoppingItemRequest) item() domain.ShoppingListItem {
	return domain.ShoppingListItem{
		Name:        s.Name,
		Amount:      s.Amount,
		Unit:        s.Unit,
		IsChecked:   s.IsChecked,
		RecipeID:    s.RecipeID,
		RecipeTitle: s.RecipeTitle,
	}
}

// IngredientRequest is one ingredient line to add to the list
type IngredientRequest struct {
	Name   string  `json:"name" validate:"required,max=200"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Unit   string  `json:"unit" validate:"max=50"`
}

// AddIngredientsRequest adds a recipe's ingredients to the list
type AddIngredientsRequest struct {
	RecipeID    int                 `json:"recipeId" validate:"required,gt=0"`
	RecipeTitle string              `json:"recipeTitle" validate:"required,max=300"`
	Ingredients []IngredientRequest `json:"ingredients" validate:"required,min=1,max=100,dive"`
}

// DeletedResponse reports how many rows a bulk delete removed
type DeletedResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// HandleListShoppingItems lists the shopping list, unchecked first. With
// ?unchecked=true only unchecked items are returned.
func HandleListShoppingItems(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := svc.All
		if uncheckedOnly(r) {
			list = svc.Unchecked
		}
		items, err := list(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetShoppingListFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, nonNil(items))
	}
}

func uncheckedOnly(r *http.Request) bool {
	v, err := strconv.ParseBool(GetOptionalQueryParam(r, "unchecked", "false"))
	return err == nil && v
}

// HandleAddShoppingItem adds one item
func HandleAddShoppingItem(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ShoppingItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add shopping list item"); err != nil {
			return
		}
		item, err := svc.AddItem(r.Context(), req.item())
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateShoppingFailed, err)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleAddRecipeIngredients adds every ingredient of a recipe in one step
func HandleAddRecipeIngredients(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddIngredientsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add recipe ingredients"); err != nil {
			return
		}

		ingredients := make([]domain.Ingredient, len(req.Ingredients))
		for i, in := range req.Ingredients {
			ingredients[i] = domain.Ingredient{Name: in.Name, Amount: in.Amount, Unit: in.Unit}
		}

		items, err := svc.AddIngredientsFromRecipe(r.Context(), ingredients, req.RecipeID, req.RecipeTitle)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateShoppingFailed, err)
			return
		}
		respondJSON(w, http.StatusCreated, items)
	}
}

// HandleUpdateShoppingItem replaces an item's fields
func HandleUpdateShoppingItem(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}
		var req ShoppingItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update shopping list item"); err != nil {
			return
		}

		existing, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateShoppingFailed, err)
			return
		}

		item := req.item()
		item.ID = id
		item.AddedAt = existing.AddedAt
		if err := svc.UpdateItem(r.Context(), item); err != nil {
			respondServiceError(w, r, ErrMsgUpdateShoppingFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleToggleShoppingItem flips an item's checked state
func HandleToggleShoppingItem(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}
		item, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateShoppingFailed, err)
			return
		}
		toggled, err := svc.ToggleChecked(r.Context(), *item)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateShoppingFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, toggled)
	}
}

// HandleDeleteShoppingItem removes one item
func HandleDeleteShoppingItem(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}
		if err := svc.DeleteItem(r.Context(), id); err != nil {
			respondServiceError(w, r, ErrMsgUpdateShoppingFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemoved})
	}
}

// HandleDeleteCheckedItems removes every checked item
func HandleDeleteCheckedItems(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.DeleteCheckedItems(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateShoppingFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DeletedResponse{Message: MsgCheckedRemoved, Deleted: n})
	}
}

// HandleClearShoppingList removes every item
func HandleClearShoppingList(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearAll(r.Context()); err != nil {
			respondServiceError(w, r, ErrMsgUpdateShoppingFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgShoppingCleared})
	}
}
