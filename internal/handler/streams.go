package handler

import (
	"context"
	"net/http"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/favourites"
	"github.com/osse101/NutriFind_Go/internal/history"
	"github.com/osse101/NutriFind_Go/internal/identity"
	"github.com/osse101/NutriFind_Go/internal/live"
	"github.com/osse101/NutriFind_Go/internal/settings"
	"github.com/osse101/NutriFind_Go/internal/shoppinglist"
	"github.com/osse101/NutriFind_Go/internal/sse"
)

// StreamFavourites serves the favourites list as a live SSE stream
func StreamFavourites(svc favourites.Service) http.HandlerFunc {
	return sse.Stream(favourites.QueryAll, func(ctx context.Context, _ *http.Request) *live.Subscription[[]domain.FavouriteRecord] {
		return svc.ObserveAll(ctx)
	})
}

// StreamFavouriteStatus serves whether one recipe is a favourite
func StreamFavouriteStatus(svc favourites.Service) http.HandlerFunc {
	stream := func(id int) http.HandlerFunc {
		return sse.Stream(favourites.QueryIsFavourite, func(ctx context.Context, _ *http.Request) *live.Subscription[bool] {
			return svc.ObserveIsFavourite(ctx, id)
		})
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, "id")
		if !ok {
			return
		}
		stream(id).ServeHTTP(w, r)
	}
}

// StreamHistory serves recent history as a live SSE stream
func StreamHistory(svc history.Service) http.HandlerFunc {
	return sse.Stream(history.QueryRecent, func(ctx context.Context, _ *http.Request) *live.Subscription[[]domain.HistoryRecord] {
		return svc.ObserveRecent(ctx)
	})
}

// StreamShoppingList serves the shopping list as a live SSE stream.
// ?unchecked=true restricts it to unchecked items.
func StreamShoppingList(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, observe := shoppinglist.QueryAll, svc.ObserveAll
		if uncheckedOnly(r) {
			name, observe = shoppinglist.QueryUnchecked, svc.ObserveUnchecked
		}
		sse.Stream(name, func(ctx context.Context, _ *http.Request) *live.Subscription[[]domain.ShoppingListItem] {
			return observe(ctx)
		}).ServeHTTP(w, r)
	}
}

// StreamSettings serves the preferences as a live SSE stream
func StreamSettings(svc settings.Service) http.HandlerFunc {
	return sse.Stream(settings.QuerySnapshot, func(ctx context.Context, _ *http.Request) *live.Subscription[domain.UserPreferences] {
		return svc.Observe(ctx)
	})
}

// StreamSession serves the current user as a live SSE stream. A null
// snapshot means nobody is signed in.
func StreamSession(provider identity.Provider) http.HandlerFunc {
	return sse.Stream(identity.QueryCurrentUser, func(ctx context.Context, _ *http.Request) *live.Subscription[*domain.User] {
		return provider.Observe(ctx)
	})
}
