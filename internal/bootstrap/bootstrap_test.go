package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NutriFind_Go/internal/config"
	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/identity"
	"github.com/osse101/NutriFind_Go/internal/recipe"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogLevel:           "debug",
		LogFormat:          "text",
		Environment:        "test",
		ServiceName:        "nutrifind",
		Version:            "test",
		DBPath:             filepath.Join(t.TempDir(), "nutrifind.db"),
		DBMaxOpenConns:     1,
		SpoonacularBaseURL: "https://api.spoonacular.com/",
		SpoonacularAPIKey:  "test-key",
		HTTPClientTimeout:  time.Second,
	}
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-0%d_10-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"session_2026-01-04_10-00-00.log",
		"session_2026-01-05_10-00-00.log",
		"notes.txt",
	}, names)
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := testConfig(t)
	cfg.LogDir = t.TempDir()

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, f)
	t.Cleanup(func() { _ = f.Close() })

	slog.Info("hello from test")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), LogMsgStartingNutriFind)
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	f, err := SetupLogger(testConfig(t))

	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestServicesShareStoreAndBus(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	events := InitializeEventSystem()
	RegisterEventHandlers(events)

	store, err := OpenStore(ctx, cfg, events.Bus)
	require.NoError(t, err)

	gateway := &recipe.MockGateway{}
	provider := identity.NewLocalProvider(identity.NewVerifier("bootstrap-test-signing-key", cfg.ServiceName), events.Bus)
	services := InitializeServices(store, events.Bus, gateway, provider)

	require.NoError(t, services.Favourites.Add(ctx, domain.Recipe{ID: 3, Title: "Dhal"}))
	// metrics collector and SSE relay
	assert.Equal(t, 2, events.Bus.SubscriberCount(event.FavouritesChanged))

	GracefulShutdown(ctx, ShutdownComponents{Events: events, Store: store})

	assert.Equal(t, 0, events.Bus.SubscriberCount(event.FavouritesChanged))
	assert.Error(t, store.DB().PingContext(ctx))
}

func TestNewGateway_RejectsBadBaseURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.SpoonacularBaseURL = "://nope"

	_, err := NewGateway(cfg)

	assert.Error(t, err)
}
