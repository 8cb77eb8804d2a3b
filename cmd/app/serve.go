package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osse101/NutriFind_Go/internal/bootstrap"
	"github.com/osse101/NutriFind_Go/internal/config"
	"github.com/osse101/NutriFind_Go/internal/identity"
	"github.com/osse101/NutriFind_Go/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Open and migrate the record store, then serve the API until interrupted.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.ValidateEnv(); err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if warnings, err := config.ValidateEnvWithWarnings(); err == nil {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := bootstrap.InitializeEventSystem()
	bootstrap.RegisterEventHandlers(events)

	store, err := bootstrap.OpenStore(ctx, cfg, events.Bus)
	if err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{Events: events})
		return err
	}

	gateway, err := bootstrap.NewGateway(cfg)
	if err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{Events: events, Store: store})
		return err
	}

	provider := identity.NewLocalProvider(identity.NewVerifier(cfg.IdentitySigningKey, cfg.IdentityIssuer), events.Bus)
	services := bootstrap.InitializeServices(store, events.Bus, gateway, provider)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, store.DB(), services, events.Hub)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err = <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	case <-ctx.Done():
		slog.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Events: events,
		Store:  store,
	})

	return err
}
