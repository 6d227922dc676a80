package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpaceBot_Go/internal/config"
	"github.com/osse101/SpaceBot_Go/internal/database"
	"github.com/osse101/SpaceBot_Go/internal/database/memory"
	"github.com/osse101/SpaceBot_Go/internal/database/postgres"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Ledger    repository.Ledger
	Inventory repository.Inventory
	Shop      repository.Shop
	Job       repository.Job
	Stock     repository.Stock
	Trade     repository.Trade
}

// InitializeRepositories creates the PostgreSQL repositories over one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Ledger:    postgres.NewLedgerRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		Shop:      postgres.NewShopRepository(dbPool),
		Job:       postgres.NewJobRepository(dbPool),
		Stock:     postgres.NewStockRepository(dbPool),
		Trade:     postgres.NewTradeRepository(dbPool),
	}
}

// InitializeMemoryRepositories creates repositories sharing one in-process store
func InitializeMemoryRepositories(store *memory.Store) *Repositories {
	return &Repositories{
		Ledger:    memory.NewLedgerRepository(store),
		Inventory: memory.NewInventoryRepository(store),
		Shop:      memory.NewShopRepository(store),
		Job:       memory.NewJobRepository(store),
		Stock:     memory.NewStockRepository(store),
		Trade:     memory.NewTradeRepository(store),
	}
}

// OpenStorage connects the configured backend. For PostgreSQL the schema is migrated before
// the repositories are returned. The returned pool backs /readyz and must be closed on exit.
func OpenStorage(ctx context.Context, cfg *config.Config) (database.Pool, *Repositories, error) {
	log := logger.FromContext(ctx)

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		log.Info(LogMsgStorageReady, "driver", cfg.StorageDriver)
		return store, InitializeMemoryRepositories(store), nil

	case config.StorageDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, nil, fmt.Errorf(ErrMsgConnectFailed, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf(ErrMsgMigrateFailed, err)
		}
		log.Info(LogMsgStorageReady, "driver", cfg.StorageDriver)
		return pool, InitializeRepositories(pool), nil

	default:
		return nil, nil, fmt.Errorf(ErrMsgUnknownStorage, cfg.StorageDriver)
	}
}
