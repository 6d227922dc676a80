package repository

import (
	"context"
	"time"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// Stock defines the persistence needed for the stock market
type Stock interface {
	GetStocks(ctx context.Context) ([]domain.Stock, error)
	// GetStock returns nil when the stock does not exist
	GetStock(ctx context.Context, stockID string) (*domain.Stock, error)
	CountStocks(ctx context.Context) (int, error)
	ListStocksByPrice(ctx context.Context, descending bool, limit, offset int) ([]domain.Stock, error)
	GetHolding(ctx context.Context, userID int64, stockID string) (int64, error)
	GetPortfolio(ctx context.Context, userID int64) ([]domain.PortfolioEntry, error)
	// GetPriceHistory returns samples newest first
	GetPriceHistory(ctx context.Context, stockID string, limit int) ([]domain.PriceSample, error)
	// GetLatestSample returns the newest sample strictly before the cutoff, or the newest
	// overall when before is nil. Returns nil when none match.
	GetLatestSample(ctx context.Context, stockID string, before *time.Time) (*domain.PriceSample, error)
	CountPriceSamples(ctx context.Context) (int64, error)
	// DeleteOldestPriceSamples removes up to n samples in recording order
	DeleteOldestPriceSamples(ctx context.Context, n int) (int64, error)
	BeginTx(ctx context.Context) (StockTx, error)
}

// StockTx defines the interface for stock market transactions
type StockTx interface {
	Tx
	AccountOps
	StockOps
}
