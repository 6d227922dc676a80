package repository

import (
	"context"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// Trade defines the persistence needed for trade escrow
type Trade interface {
	// GetTrade returns nil when the trade does not exist
	GetTrade(ctx context.Context, tradeID int64) (*domain.TradeOffer, error)
	// ListTradesForUser returns trades where the user is either party, newest first
	ListTradesForUser(ctx context.Context, userID int64, status domain.TradeStatus) ([]domain.TradeOffer, error)
	BeginTx(ctx context.Context) (TradeTx, error)
}

// TradeTx defines the interface for trade transactions
type TradeTx interface {
	Tx
	AccountOps
	ItemOps
	TradeOps
}
