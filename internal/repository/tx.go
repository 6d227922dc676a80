package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// AccountOps reads and writes accounts inside a transaction
type AccountOps interface {
	// GetAccountForUpdate creates the account when missing and holds its row lock until the
	// transaction ends.
	GetAccountForUpdate(ctx context.Context, userID int64) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account *domain.Account) error
}

// ItemOps reads and writes inventory rows inside a transaction
type ItemOps interface {
	// GetItemQuantityForUpdate returns 0 when the user holds none of the item
	GetItemQuantityForUpdate(ctx context.Context, userID int64, itemID string) (int64, error)
	// SetItemQuantity upserts the row; a zero quantity deletes it
	SetItemQuantity(ctx context.Context, userID int64, itemID string, quantity int64) error
}

// EmploymentOps reads and writes job state inside a transaction
type EmploymentOps interface {
	GetJob(ctx context.Context, jobID string) (*domain.Job, error)
	GetEmploymentForUpdate(ctx context.Context, userID int64) (*domain.Employment, error)
	InsertEmployment(ctx context.Context, employment *domain.Employment) error
	DeleteEmployment(ctx context.Context, userID int64) error
	UpdateLastWork(ctx context.Context, userID int64, at time.Time) error
	GetLastApplicationForUpdate(ctx context.Context, userID int64, jobID string) (*time.Time, error)
	UpsertApplication(ctx context.Context, userID int64, jobID string, at time.Time) error
}

// StockOps reads and writes stocks, samples and holdings inside a transaction
type StockOps interface {
	GetStockForUpdate(ctx context.Context, stockID string) (*domain.Stock, error)
	InsertStock(ctx context.Context, stock *domain.Stock) error
	UpdateStockPrice(ctx context.Context, stockID string, price decimal.Decimal) error
	InsertPriceSample(ctx context.Context, sample domain.PriceSample) error
	GetHoldingForUpdate(ctx context.Context, userID int64, stockID string) (int64, error)
	// SetHolding upserts the row; a zero quantity deletes it
	SetHolding(ctx context.Context, userID int64, stockID string, quantity int64) error
}

// TradeOps reads and writes trade offers inside a transaction
type TradeOps interface {
	InsertTrade(ctx context.Context, trade *domain.TradeOffer) (int64, error)
	GetTradeForUpdate(ctx context.Context, tradeID int64) (*domain.TradeOffer, error)
	UpdateTradeStatus(ctx context.Context, tradeID int64, status domain.TradeStatus, resolvedAt time.Time) error
}
