package ledger

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// Debit removes amount from the user's balance inside the caller's transaction. It fails with
// domain.ErrInsufficientFunds, leaving the account untouched, when the balance is too low.
func Debit(ctx context.Context, tx repository.AccountOps, userID, amount int64) (*domain.Account, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	acc, err := tx.GetAccountForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	if acc.Balance < amount {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, acc.Balance)
	}
	acc.Balance -= amount
	if err := tx.UpdateAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateAccountFailed, err)
	}
	return acc, nil
}

// Credit adds amount to the user's balance inside the caller's transaction
func Credit(ctx context.Context, tx repository.AccountOps, userID, amount int64) (*domain.Account, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	acc, err := tx.GetAccountForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	if acc.Balance, err = addCredits(acc.Balance, amount); err != nil {
		return nil, err
	}
	if err := tx.UpdateAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateAccountFailed, err)
	}
	return acc, nil
}

// Move transfers amount between two accounts inside the caller's transaction
func Move(ctx context.Context, tx repository.AccountOps, from, to, amount int64) error {
	if _, _, err := LockPair(ctx, tx, from, to); err != nil {
		return err
	}
	if _, err := Debit(ctx, tx, from, amount); err != nil {
		return err
	}
	_, err := Credit(ctx, tx, to, amount)
	return err
}

// LockPair locks both accounts in ascending user id order and returns them as (a, b)
func LockPair(ctx context.Context, tx repository.AccountOps, a, b int64) (*domain.Account, *domain.Account, error) {
	first, second := a, b
	if second < first {
		first, second = second, first
	}
	firstAcc, err := tx.GetAccountForUpdate(ctx, first)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	secondAcc, err := tx.GetAccountForUpdate(ctx, second)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	if first == a {
		return firstAcc, secondAcc, nil
	}
	return secondAcc, firstAcc, nil
}

// addCredits returns balance+amount, refusing sums an int64 balance cannot hold
func addCredits(balance, amount int64) (int64, error) {
	if amount > math.MaxInt64-balance {
		return 0, fmt.Errorf("%w: crediting %d overflows balance %d", domain.ErrInvalidAmount, amount, balance)
	}
	return balance + amount, nil
}

// percentOf is floor(balance*pct/100) without the intermediate product
func percentOf(balance, pct int64) int64 {
	return balance/100*pct + balance%100*pct/100
}
