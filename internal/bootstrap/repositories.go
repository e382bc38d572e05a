package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CateringPlanner_Go/internal/config"
	"github.com/osse101/CateringPlanner_Go/internal/database"
	"github.com/osse101/CateringPlanner_Go/internal/database/postgres"
	"github.com/osse101/CateringPlanner_Go/internal/repository"
	"github.com/osse101/CateringPlanner_Go/internal/repository/memory"
)

var (
	_ repository.Catalog = (*postgres.CatalogRepository)(nil)
	_ repository.Event   = (*postgres.EventRepository)(nil)
	_ repository.Catalog = (*memory.Catalog)(nil)
	_ repository.Event   = (*memory.Events)(nil)
)

// Repositories holds the repository implementations used by the application.
// Pool is nil when running on in-memory storage.
type Repositories struct {
	Catalog repository.Catalog
	Event   repository.Event
	Pool    *pgxpool.Pool
}

// InitializeRepositories creates the repositories for the configured storage
// backend. For PostgreSQL it opens the pool and applies pending migrations.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		slog.Warn(LogMsgUsingMemoryStorage)
		return &Repositories{
			Catalog: memory.NewCatalog(),
			Event:   memory.NewEvents(),
		}, nil

	case config.StoragePostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		slog.Info(LogMsgConnectedDatabase, "host", cfg.DBHost, "name", cfg.DBName)

		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)

		return &Repositories{
			Catalog: postgres.NewCatalogRepository(pool),
			Event:   postgres.NewEventRepository(pool),
			Pool:    pool,
		}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorage, cfg.Storage)
	}
}
