// @title           Catering Planner API
// @version         1.0
// @description     Catering events, menu items, recipes and scaled shopping lists.
// @BasePath        /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/CateringPlanner_Go/docs"
	"github.com/osse101/CateringPlanner_Go/internal/assistant"
	"github.com/osse101/CateringPlanner_Go/internal/bootstrap"
	"github.com/osse101/CateringPlanner_Go/internal/booking"
	"github.com/osse101/CateringPlanner_Go/internal/catalog"
	"github.com/osse101/CateringPlanner_Go/internal/config"
	"github.com/osse101/CateringPlanner_Go/internal/server"
	"github.com/osse101/CateringPlanner_Go/internal/shopping"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation failed", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: publisher,
		Config:   cfg,
	}); err != nil {
		return err
	}

	catalogService := catalog.NewService(repos.Catalog, catalog.CacheConfig{
		Size: cfg.CacheSize,
		TTL:  cfg.CacheTTL,
	})

	if _, err := bootstrap.SyncCatalog(ctx, catalog.NewLoader(repos.Catalog, publisher), cfg.CatalogSeedPath); err != nil {
		return err
	}

	bookingService := booking.NewService(repos.Event, catalogService, publisher, shopping.NewFormatter(nil))

	services := server.Services{
		Catalog:   catalogService,
		Booking:   bookingService,
		Assistant: assistant.NewResponder(),
	}
	if repos.Pool != nil {
		services.DBPool = repos.Pool
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
		Storage:        cfg.Storage,
	}, services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	runErr := waitForStop(ctx, serverErr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		DBPool:             repos.Pool,
	})

	return runErr
}

// waitForStop blocks until ctx is cancelled or the server exits. A server
// error is returned so the process exits non-zero after shutdown.
func waitForStop(ctx context.Context, serverErr <-chan error) error {
	select {
	case <-ctx.Done():
		return nil
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed to start", "error", err)
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}
}
