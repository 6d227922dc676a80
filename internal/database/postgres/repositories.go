package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// LedgerRepository implements repository.Ledger for PostgreSQL
type LedgerRepository struct{ *Store }

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{Store: NewStore(db)}
}

// BeginTx starts a new transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct{ *Store }

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{Store: NewStore(db)}
}

// BeginTx starts a new transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// ShopRepository implements repository.Shop for PostgreSQL
type ShopRepository struct{ *Store }

// NewShopRepository creates a new ShopRepository
func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{Store: NewStore(db)}
}

// BeginTx starts a new transaction
func (r *ShopRepository) BeginTx(ctx context.Context) (repository.ShopTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// JobRepository implements repository.Job for PostgreSQL
type JobRepository struct{ *Store }

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{Store: NewStore(db)}
}

// BeginTx starts a new transaction
func (r *JobRepository) BeginTx(ctx context.Context) (repository.JobTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// StockRepository implements repository.Stock for PostgreSQL
type StockRepository struct{ *Store }

// NewStockRepository creates a new StockRepository
func NewStockRepository(db *pgxpool.Pool) *StockRepository {
	return &StockRepository{Store: NewStore(db)}
}

// BeginTx starts a new transaction
func (r *StockRepository) BeginTx(ctx context.Context) (repository.StockTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// TradeRepository implements repository.Trade for PostgreSQL
type TradeRepository struct{ *Store }

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *pgxpool.Pool) *TradeRepository {
	return &TradeRepository{Store: NewStore(db)}
}

// BeginTx starts a new transaction
func (r *TradeRepository) BeginTx(ctx context.Context) (repository.TradeTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

var (
	_ repository.Ledger    = (*LedgerRepository)(nil)
	_ repository.Inventory = (*InventoryRepository)(nil)
	_ repository.Shop      = (*ShopRepository)(nil)
	_ repository.Job       = (*JobRepository)(nil)
	_ repository.Stock     = (*StockRepository)(nil)
	_ repository.Trade     = (*TradeRepository)(nil)
)
