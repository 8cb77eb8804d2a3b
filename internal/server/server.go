package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/NutriFind_Go/internal/database"
	"github.com/osse101/NutriFind_Go/internal/favourites"
	"github.com/osse101/NutriFind_Go/internal/handler"
	"github.com/osse101/NutriFind_Go/internal/history"
	"github.com/osse101/NutriFind_Go/internal/identity"
	"github.com/osse101/NutriFind_Go/internal/logger"
	"github.com/osse101/NutriFind_Go/internal/metrics"
	"github.com/osse101/NutriFind_Go/internal/recipe"
	"github.com/osse101/NutriFind_Go/internal/settings"
	"github.com/osse101/NutriFind_Go/internal/shoppinglist"
	"github.com/osse101/NutriFind_Go/internal/sse"
)

// Options configures the listener and middleware
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Services are the repositories exposed over HTTP
type Services struct {
	Recipes      recipe.Service
	Search       *recipe.SearchSession
	Favourites   favourites.Service
	History      history.Service
	ShoppingList shoppinglist.Service
	Settings     settings.Service
	Identity     identity.Provider
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	// closing is cancelled when shutdown begins so open streams end
	closing context.Context
	close   context.CancelFunc
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc Services, hub *sse.Hub) *Server {
	closing, closeStreams := context.WithCancel(context.Background())
	s := &Server{
		dbPool:  dbPool,
		closing: closing,
		close:   closeStreams,
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           s.routes(opts, svc, hub),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	s.httpServer.RegisterOnShutdown(closeStreams)
	return s
}

func (s *Server) routes(opts Options, svc Services, hub *sse.Hub) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, NewFailedAuthTracker()))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(s.dbPool))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.With(s.streaming).Get("/events", sse.Handler(hub))

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/search", handler.HandleSearchRecipes(svc.Recipes))
			r.Get("/random", handler.HandleRandomRecipes(svc.Recipes))
			r.Get("/session", handler.HandleGetSearchSession(svc.Search))
			r.Put("/session", handler.HandleUpdateSearchSession(svc.Search))
			r.Post("/session/search", handler.HandleRunSearchSession(svc.Search))
			r.Delete("/session/filters", handler.HandleClearSearchFilters(svc.Search))
			r.Get("/{id}", handler.HandleGetRecipe(svc.Recipes, svc.History))
		})

		r.Route("/favourites", func(r chi.Router) {
			r.Get("/", handler.HandleListFavourites(svc.Favourites))
			r.Post("/", handler.HandleAddFavourite(svc.Favourites))
			r.Delete("/", handler.HandleClearFavourites(svc.Favourites))
			r.Post("/toggle", handler.HandleToggleFavourite(svc.Favourites))
			r.With(s.streaming).Get("/stream", handler.StreamFavourites(svc.Favourites))
			r.Get("/{id}", handler.HandleFavouriteStatus(svc.Favourites))
			r.Delete("/{id}", handler.HandleRemoveFavourite(svc.Favourites))
			r.With(s.streaming).Get("/{id}/stream", handler.StreamFavouriteStatus(svc.Favourites))
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/", handler.HandleRecentHistory(svc.History))
			r.Delete("/", handler.HandleClearHistory(svc.History))
			r.With(s.streaming).Get("/stream", handler.StreamHistory(svc.History))
			r.Delete("/{id}", handler.HandleDeleteHistory(svc.History))
		})

		r.Route("/shopping-list", func(r chi.Router) {
			r.Get("/", handler.HandleListShoppingItems(svc.ShoppingList))
			r.Post("/", handler.HandleAddShoppingItem(svc.ShoppingList))
			r.Delete("/", handler.HandleClearShoppingList(svc.ShoppingList))
			r.Post("/ingredients", handler.HandleAddRecipeIngredients(svc.ShoppingList))
			r.Delete("/checked", handler.HandleDeleteCheckedItems(svc.ShoppingList))
			r.With(s.streaming).Get("/stream", handler.StreamShoppingList(svc.ShoppingList))
			r.Put("/{id}", handler.HandleUpdateShoppingItem(svc.ShoppingList))
			r.Delete("/{id}", handler.HandleDeleteShoppingItem(svc.ShoppingList))
			r.Post("/{id}/toggle", handler.HandleToggleShoppingItem(svc.ShoppingList))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", handler.HandleGetSettings(svc.Settings))
			r.Patch("/", handler.HandleUpdateSettings(svc.Settings))
			r.Post("/first-launch-complete", handler.HandleFirstLaunchComplete(svc.Settings))
			r.Post("/nutrition-info/toggle", handler.HandleToggleSetting(svc.Settings.ToggleShowNutritionInfo))
			r.Post("/biometric/toggle", handler.HandleToggleSetting(svc.Settings.ToggleBiometric))
			r.With(s.streaming).Get("/stream", handler.StreamSettings(svc.Settings))
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/", handler.HandleGetSession(svc.Identity))
			r.Delete("/", handler.HandleSignOut(svc.Identity))
			r.Post("/credential", handler.HandleSignInWithCredential(svc.Identity))
			r.Post("/anonymous", handler.HandleSignInAnonymously(svc.Identity))
			r.With(s.streaming).Get("/stream", handler.StreamSession(svc.Identity))
		})
	})

	return r
}

// streaming ends long-lived responses once shutdown begins
func (s *Server) streaming(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		stop := context.AfterFunc(s.closing, cancel)
		defer stop()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets event streams flush through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Keep an upstream request id when one is supplied
		requestID := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server. It returns nil once Stop has shut it down.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	defer s.close()
	return s.httpServer.Shutdown(ctx)
}
