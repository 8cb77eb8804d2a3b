package handler

import (
	"net/http"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/favourites"
)

// FavouriteRequest is the recipe to save as a favourite
type FavouriteRequest struct {
	ID             int    `json:"id" validate:"required,gt=0"`
	Title          string `json:"title" validate:"required,max=300"`
	Image          string `json:"image" validate:"max=2048"`
	ReadyInMinutes int    `json:"readyInMinutes" validate:"gte=0"`
	Servings       int    `json:"servings" validate:"gte=0"`
	Summary        string `json:"summary"`
}

// Recipe returns the recipe fields stored with a favourite
func (f FavouriteRequest) Recipe() domain.Recipe {
	return domain.Recipe{
		ID:             f.ID,
		Title:          f.Title,
		Image:          f.Image,
		ReadyInMinutes: f.ReadyInMinutes,
		Servings:       f.Servings,
		Summary:        f.Summary,
	}
}

// FavouriteStatusResponse reports whether a recipe is a favourite
type FavouriteStatusResponse struct {
	RecipeID  int  `json:"recipeId"`
	Favourite bool `json:"favourite"`
}

// HandleListFavourites lists favourites, newest first
func HandleListFavourites(svc favourites.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.All(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetFavouritesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, nonNil(all))
	}
}

// HandleAddFavourite saves a favourite, replacing any earlier entry
func HandleAddFavourite(svc favourites.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FavouriteRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add favourite"); err != nil {
			return
		}
		if err := svc.Add(r.Context(), req.Recipe()); err != nil {
			respondServiceError(w, r, ErrMsgUpdateFavouritesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFavouriteSaved})
	}
}

// HandleToggleFavourite flips the favourite state of a recipe
func HandleToggleFavourite(svc favourites.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FavouriteRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Toggle favourite"); err != nil {
			return
		}
		on, err := svc.Toggle(r.Context(), req.Recipe())
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateFavouritesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, FavouriteStatusResponse{RecipeID: req.ID, Favourite: on})
	}
}

// HandleFavouriteStatus reports whether a recipe is a favourite
func HandleFavouriteStatus(svc favourites.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, "id")
		if !ok {
			return
		}
		on, err := svc.IsFavourite(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetFavouritesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, FavouriteStatusResponse{RecipeID: id, Favourite: on})
	}
}

// HandleRemoveFavourite deletes a favourite. Removing a missing one succeeds.
func HandleRemoveFavourite(svc favourites.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, "id")
		if !ok {
			return
		}
		if err := svc.Remove(r.Context(), id); err != nil {
			respondServiceError(w, r, ErrMsgUpdateFavouritesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFavouriteRemoved})
	}
}

// HandleClearFavourites deletes every favourite
func HandleClearFavourites(svc favourites.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context()); err != nil {
			respondServiceError(w, r, ErrMsgUpdateFavouritesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFavouritesCleared})
	}
}

// nonNil keeps empty lists encoding as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
