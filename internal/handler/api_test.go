package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/favourites"
	"github.com/osse101/NutriFind_Go/internal/history"
	"github.com/osse101/NutriFind_Go/internal/identity"
	"github.com/osse101/NutriFind_Go/internal/recipe"
	"github.com/osse101/NutriFind_Go/internal/search"
	"github.com/osse101/NutriFind_Go/internal/settings"
	"github.com/osse101/NutriFind_Go/internal/shoppinglist"
	"github.com/osse101/NutriFind_Go/internal/testing/storetest"
)

const testSigningKey = "handler-test-signing-key-42"

type testAPI struct {
	gateway  *recipe.MockGateway
	history  history.Service
	verifier *identity.Verifier
	router   chi.Router
}

// newTestAPI wires real services over a temporary store, with only the
// remote catalog mocked
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store, bus := storetest.Open(t)

	gateway := &recipe.MockGateway{}
	recipes := recipe.NewService(gateway)
	favs := favourites.NewService(store, bus)
	hist := history.NewService(store, bus)
	shopping := shoppinglist.NewService(store, bus)
	prefs := settings.NewService(store, bus)
	verifier := identity.NewVerifier(testSigningKey, "nutrifind")
	provider := identity.NewLocalProvider(verifier, bus)

	r := chi.NewRouter()
	r.Get("/recipes/search", HandleSearchRecipes(recipes))
	r.Get("/recipes/random", HandleRandomRecipes(recipes))
	session := recipe.NewSearchSession(recipes)
	r.Get("/recipes/session", HandleGetSearchSession(session))
	r.Put("/recipes/session", HandleUpdateSearchSession(session))
	r.Post("/recipes/session/search", HandleRunSearchSession(session))
	r.Delete("/recipes/session/filters", HandleClearSearchFilters(session))
	r.Get("/recipes/{id}", HandleGetRecipe(recipes, hist))

	r.Get("/favourites", HandleListFavourites(favs))
	r.Post("/favourites", HandleAddFavourite(favs))
	r.Post("/favourites/toggle", HandleToggleFavourite(favs))
	r.Get("/favourites/{id}", HandleFavouriteStatus(favs))
	r.Delete("/favourites/{id}", HandleRemoveFavourite(favs))

	r.Get("/history", HandleRecentHistory(hist))
	r.Delete("/history", HandleClearHistory(hist))

	r.Get("/shopping-list", HandleListShoppingItems(shopping))
	r.Post("/shopping-list", HandleAddShoppingItem(shopping))
	r.Post("/shopping-list/ingredients", HandleAddRecipeIngredients(shopping))
	r.Delete("/shopping-list/checked", HandleDeleteCheckedItems(shopping))
	r.Put("/shopping-list/{id}", HandleUpdateShoppingItem(shopping))
	r.Post("/shopping-list/{id}/toggle", HandleToggleShoppingItem(shopping))

	r.Get("/settings", HandleGetSettings(prefs))
	r.Patch("/settings", HandleUpdateSettings(prefs))
	r.Post("/settings/first-launch-complete", HandleFirstLaunchComplete(prefs))
	r.Post("/settings/biometric/toggle", HandleToggleSetting(prefs.ToggleBiometric))

	r.Get("/session", HandleGetSession(provider))
	r.Post("/session/credential", HandleSignInWithCredential(provider))
	r.Post("/session/anonymous", HandleSignInAnonymously(provider))
	r.Delete("/session", HandleSignOut(provider))

	return &testAPI{gateway: gateway, history: hist, verifier: verifier, router: r}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func soup() *domain.Recipe {
	return &domain.Recipe{ID: 42, Title: "Tomato Soup", ReadyInMinutes: 30, Servings: 4}
}

// =============================================================================
// Recipes
// =============================================================================

func TestHandleSearchRecipes(t *testing.T) {
	t.Run("results", func(t *testing.T) {
		api := newTestAPI(t)
		api.gateway.On("SearchRecipes", mock.Anything, mock.MatchedBy(func(p search.Params) bool {
			return p.Query == "pasta" && p.Filters[search.ParamDiet] == domain.DietVegan && p.Number == 5
		})).Return(&domain.RecipeSearchResponse{
			Results:      []domain.RecipeSearchResult{{ID: 1, Title: "Vegan Pasta"}},
			Number:       5,
			TotalResults: 1,
		}, nil).Once()

		w := api.do(t, http.MethodGet, "/recipes/search?query=pasta&diet=Vegan&number=5", nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[domain.RecipeSearchResponse](t, w)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "Vegan Pasta", resp.Results[0].Title)
		api.gateway.AssertExpectations(t)
	})

	t.Run("blank query performs no search", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(t, http.MethodGet, "/recipes/search?query=%20%20", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		api.gateway.AssertNotCalled(t, "SearchRecipes", mock.Anything, mock.Anything)
	})

	t.Run("empty page encodes as empty list", func(t *testing.T) {
		api := newTestAPI(t)
		api.gateway.On("SearchRecipes", mock.Anything, mock.Anything).
			Return(&domain.RecipeSearchResponse{}, nil).Once()

		w := api.do(t, http.MethodGet, "/recipes/search?query=nothing", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"results":[]`)
	})

	t.Run("unknown diet", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(t, http.MethodGet, "/recipes/search?query=pasta&diet=carnivore", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[ValidationErrorResponse](t, w)
		assert.Equal(t, "Unknown diet", resp.Fields["diet"])
	})

	t.Run("malformed number", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(t, http.MethodGet, "/recipes/search?query=pasta&maxReadyTime=soon", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, fmt.Sprintf(ErrMsgInvalidNumber, search.ParamMaxReadyTime), decode[ErrorResponse](t, w).Error)
	})

	t.Run("remote unavailable", func(t *testing.T) {
		api := newTestAPI(t)
		api.gateway.On("SearchRecipes", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: timeout", domain.ErrRemoteUnavailable)).Once()

		w := api.do(t, http.MethodGet, "/recipes/search?query=pasta", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, ErrMsgRemoteUnavailable, decode[ErrorResponse](t, w).Error)
	})
}

func TestSearchSessionEndpoints(t *testing.T) {
	t.Run("new session lists no results", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(t, http.MethodGet, "/recipes/session", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"results":[]`)
	})

	t.Run("blank query keeps previous results", func(t *testing.T) {
		api := newTestAPI(t)
		api.gateway.On("SearchRecipes", mock.Anything, mock.MatchedBy(func(p search.Params) bool {
			return p.Query == "curry" && p.Filters[search.ParamDiet] == domain.DietVegan
		})).Return(&domain.RecipeSearchResponse{
			Results: []domain.RecipeSearchResult{{ID: 1, Title: "Chickpea Curry"}, {ID: 2, Title: "Dal"}},
		}, nil).Once()

		query := "curry"
		w := api.do(t, http.MethodPut, "/recipes/session", SearchSessionRequest{
			Query:   &query,
			Filters: &FiltersRequest{Diet: "Vegan"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = api.do(t, http.MethodPost, "/recipes/session/search", nil)
		require.Equal(t, http.StatusOK, w.Code)
		first := decode[SearchSessionResponse](t, w)
		assert.True(t, first.Searched)
		require.Len(t, first.State.Results, 2)

		blank := "   "
		api.do(t, http.MethodPut, "/recipes/session", SearchSessionRequest{Query: &blank})
		w = api.do(t, http.MethodPost, "/recipes/session/search", nil)
		second := decode[SearchSessionResponse](t, w)
		assert.False(t, second.Searched)
		assert.Len(t, second.State.Results, 2)
		assert.Equal(t, domain.DietVegan, second.State.Filters.Diet)
		api.gateway.AssertNumberOfCalls(t, "SearchRecipes", 1)
	})

	t.Run("clear filters", func(t *testing.T) {
		api := newTestAPI(t)
		api.do(t, http.MethodPut, "/recipes/session", SearchSessionRequest{Filters: &FiltersRequest{Cuisine: "Thai"}})

		w := api.do(t, http.MethodDelete, "/recipes/session/filters", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode[recipe.SearchState](t, w).Filters.IsDefault())
	})

	t.Run("invalid filters are rejected", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(t, http.MethodPut, "/recipes/session", SearchSessionRequest{Filters: &FiltersRequest{Diet: "carnivore"}})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown diet")
	})
}

func TestHandleGetRecipe(t *testing.T) {
	t.Run("records the view", func(t *testing.T) {
		api := newTestAPI(t)
		api.gateway.On("RecipeInformation", mock.Anything, 42, true).Return(soup(), nil).Once()

		w := api.do(t, http.MethodGet, "/recipes/42", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Tomato Soup", decode[domain.Recipe](t, w).Title)

		recent, err := api.history.Recent(context.Background())
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, 42, recent[0].ID)
	})

	t.Run("not found", func(t *testing.T) {
		api := newTestAPI(t)
		api.gateway.On("RecipeInformation", mock.Anything, 7, true).
			Return(nil, fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, domain.ErrRecipeNotFound)).Once()

		w := api.do(t, http.MethodGet, "/recipes/7", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		recent, err := api.history.Recent(context.Background())
		require.NoError(t, err)
		assert.Empty(t, recent)
	})

	t.Run("invalid id", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(t, http.MethodGet, "/recipes/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		api.gateway.AssertNotCalled(t, "RecipeInformation", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleRandomRecipes_DefaultNumber(t *testing.T) {
	api := newTestAPI(t)
	api.gateway.On("RandomRecipes", mock.Anything, recipe.DefaultRandomNumber, []string{"vegetarian", "dessert"}).
		Return([]domain.Recipe{*soup()}, nil).Once()

	w := api.do(t, http.MethodGet, "/recipes/random?tags=vegetarian,%20dessert", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Recipe](t, w), 1)
	api.gateway.AssertExpectations(t)
}

// =============================================================================
// Records
// =============================================================================

func TestFavouritesFlow(t *testing.T) {
	api := newTestAPI(t)
	fav := FavouriteRequest{ID: 42, Title: "Tomato Soup", Servings: 4}

	w := api.do(t, http.MethodPost, "/favourites/toggle", fav)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[FavouriteStatusResponse](t, w).Favourite)

	w = api.do(t, http.MethodGet, "/favourites/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[FavouriteStatusResponse](t, w).Favourite)

	w = api.do(t, http.MethodGet, "/favourites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]domain.FavouriteRecord](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Tomato Soup", list[0].Title)

	w = api.do(t, http.MethodPost, "/favourites/toggle", fav)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[FavouriteStatusResponse](t, w).Favourite)

	w = api.do(t, http.MethodGet, "/favourites", nil)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestHandleAddFavourite_Validation(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/favourites", FavouriteRequest{ID: 0, Title: ""})

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ValidationErrorResponse](t, w)
	assert.Contains(t, resp.Fields, "id")
	assert.Contains(t, resp.Fields, "title")
}

func TestHandleRemoveFavourite_MissingSucceeds(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodDelete, "/favourites/99", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestShoppingListFlow(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/shopping-list/ingredients", AddIngredientsRequest{
		RecipeID:    42,
		RecipeTitle: "Tomato Soup",
		Ingredients: []IngredientRequest{
			{Name: "tomatoes", Amount: 500, Unit: "g"},
			{Name: "cream", Amount: 0.5, Unit: "cup"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	added := decode[[]domain.ShoppingListItem](t, w)
	require.Len(t, added, 2)
	assert.Equal(t, "500", added[0].Amount)
	require.NotNil(t, added[0].RecipeID)
	assert.Equal(t, 42, *added[0].RecipeID)

	w = api.do(t, http.MethodPost, fmt.Sprintf("/shopping-list/%d/toggle", added[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[domain.ShoppingListItem](t, w).IsChecked)

	w = api.do(t, http.MethodGet, "/shopping-list?unchecked=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	unchecked := decode[[]domain.ShoppingListItem](t, w)
	require.Len(t, unchecked, 1)
	assert.Equal(t, "cream", unchecked[0].Name)

	w = api.do(t, http.MethodDelete, "/shopping-list/checked", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decode[DeletedResponse](t, w).Deleted)

	w = api.do(t, http.MethodGet, "/shopping-list", nil)
	assert.Len(t, decode[[]domain.ShoppingListItem](t, w), 1)
}

func TestHandleUpdateShoppingItem(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/shopping-list", ShoppingItemRequest{Name: "milk", Amount: "1", Unit: "l"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[domain.ShoppingListItem](t, w)
	require.NotZero(t, created.ID)

	t.Run("keeps added time", func(t *testing.T) {
		w := api.do(t, http.MethodPut, fmt.Sprintf("/shopping-list/%d", created.ID),
			ShoppingItemRequest{Name: "oat milk", Amount: "2", Unit: "l"})

		require.Equal(t, http.StatusOK, w.Code)
		updated := decode[domain.ShoppingListItem](t, w)
		assert.Equal(t, "oat milk", updated.Name)
		assert.Equal(t, created.AddedAt, updated.AddedAt)
	})

	t.Run("missing item", func(t *testing.T) {
		w := api.do(t, http.MethodPut, "/shopping-list/999", ShoppingItemRequest{Name: "bread"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrMsgItemNotFoundError, decode[ErrorResponse](t, w).Error)
	})
}

// =============================================================================
// Settings and session
// =============================================================================

func TestHandleUpdateSettings(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		api := newTestAPI(t)
		dark := true

		w := api.do(t, http.MethodPatch, "/settings", SettingsRequest{DarkMode: &dark})

		require.Equal(t, http.StatusOK, w.Code)
		prefs := decode[domain.UserPreferences](t, w)
		assert.True(t, prefs.DarkMode)
		assert.True(t, prefs.NotificationsEnabled)
		assert.Equal(t, domain.LanguageEnglish, prefs.LanguageCode)
	})

	t.Run("regional language stored as base", func(t *testing.T) {
		api := newTestAPI(t)
		lang := "af-ZA"

		w := api.do(t, http.MethodPatch, "/settings", SettingsRequest{LanguageCode: &lang})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.LanguageAfrikaans, decode[domain.UserPreferences](t, w).LanguageCode)
	})

	t.Run("unsupported language writes nothing", func(t *testing.T) {
		api := newTestAPI(t)
		dark := true
		lang := "fr"

		w := api.do(t, http.MethodPatch, "/settings", SettingsRequest{DarkMode: &dark, LanguageCode: &lang})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgInvalidLanguage, decode[ErrorResponse](t, w).Error)

		w = api.do(t, http.MethodGet, "/settings", nil)
		assert.False(t, decode[domain.UserPreferences](t, w).DarkMode)
	})
}

func TestHandleSettingsActions(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/settings/first-launch-complete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodPost, "/settings/biometric/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[ToggleResponse](t, w).Enabled)

	w = api.do(t, http.MethodGet, "/settings", nil)
	prefs := decode[domain.UserPreferences](t, w)
	assert.False(t, prefs.IsFirstLaunch)
	assert.True(t, prefs.BiometricEnabled)
}

func TestSessionFlow(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[SessionResponse](t, w).SignedIn)

	token, err := api.verifier.Issue("user-7", "cook@example.com", "Cook", time.Hour)
	require.NoError(t, err)

	w = api.do(t, http.MethodPost, "/session/credential", CredentialRequest{Token: token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[domain.AuthResult](t, w)
	require.True(t, result.IsSuccess())
	assert.Equal(t, "user-7", result.User.UID)

	w = api.do(t, http.MethodGet, "/session", nil)
	session := decode[SessionResponse](t, w)
	assert.True(t, session.SignedIn)
	assert.Equal(t, "cook@example.com", session.User.Email)

	w = api.do(t, http.MethodDelete, "/session", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, "/session", nil)
	assert.False(t, decode[SessionResponse](t, w).SignedIn)
}

func TestHandleSignIn_Failures(t *testing.T) {
	api := newTestAPI(t)

	t.Run("rejected credential", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/session/credential", CredentialRequest{Token: "not-a-jwt"})

		require.Equal(t, http.StatusUnauthorized, w.Code)
		result := decode[domain.AuthResult](t, w)
		assert.False(t, result.IsSuccess())
		assert.NotEmpty(t, result.Message)
	})

	t.Run("missing token", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/session/credential", CredentialRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/session/anonymous", nil)

		require.Equal(t, http.StatusOK, w.Code)
		result := decode[domain.AuthResult](t, w)
		require.True(t, result.IsSuccess())
		assert.True(t, result.User.IsAnonymous)
	})
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"recipe not found wins over remote", fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, domain.ErrRecipeNotFound), http.StatusNotFound},
		{"item not found", fmt.Errorf("x: %w", domain.ErrItemNotFound), http.StatusNotFound},
		{"invalid language", fmt.Errorf("%w: fr", domain.ErrInvalidLanguage), http.StatusBadRequest},
		{"credential", domain.ErrInvalidCredential, http.StatusUnauthorized},
		{"malformed", domain.ErrMalformedResponse, http.StatusBadGateway},
		{"database", fmt.Errorf("%w: locked", domain.ErrDatabaseError), http.StatusInternalServerError},
		{"unmapped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.status, status)
		})
	}
}
