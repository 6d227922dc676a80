package repository

import (
	"context"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// Ledger defines the persistence needed for balances
type Ledger interface {
	// GetAccount returns the account, creating it with a zero balance when missing
	GetAccount(ctx context.Context, userID int64) (*domain.Account, error)
	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx defines the interface for ledger transactions
type LedgerTx interface {
	Tx
	AccountOps
}
