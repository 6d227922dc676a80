package memory

import (
	"context"

	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// LedgerRepository implements repository.Ledger on a Store
type LedgerRepository struct{ *Store }

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(s *Store) *LedgerRepository { return &LedgerRepository{Store: s} }

func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// InventoryRepository implements repository.Inventory on a Store
type InventoryRepository struct{ *Store }

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(s *Store) *InventoryRepository { return &InventoryRepository{Store: s} }

func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// ShopRepository implements repository.Shop on a Store
type ShopRepository struct{ *Store }

// NewShopRepository creates a new ShopRepository
func NewShopRepository(s *Store) *ShopRepository { return &ShopRepository{Store: s} }

func (r *ShopRepository) BeginTx(ctx context.Context) (repository.ShopTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// JobRepository implements repository.Job on a Store
type JobRepository struct{ *Store }

// NewJobRepository creates a new JobRepository
func NewJobRepository(s *Store) *JobRepository { return &JobRepository{Store: s} }

func (r *JobRepository) BeginTx(ctx context.Context) (repository.JobTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// StockRepository implements repository.Stock on a Store
type StockRepository struct{ *Store }

// NewStockRepository creates a new StockRepository
func NewStockRepository(s *Store) *StockRepository { return &StockRepository{Store: s} }

func (r *StockRepository) BeginTx(ctx context.Context) (repository.StockTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// TradeRepository implements repository.Trade on a Store
type TradeRepository struct{ *Store }

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(s *Store) *TradeRepository { return &TradeRepository{Store: s} }

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
