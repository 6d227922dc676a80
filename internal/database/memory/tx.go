package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// Tx is a serialized transaction over a private copy of the store state
type Tx struct {
	store *Store
	st    *state
	done  bool
}

// Commit publishes the transaction's state and releases the store
func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	t.store.committed = t.st
	t.store.mu.Unlock()
	return nil
}

// Rollback discards the transaction's state and releases the store
func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}

func duplicate(kind, id string) error {
	return fmt.Errorf("%w: %s %q", domain.ErrDuplicate, kind, id)
}

// ---- AccountOps ----

func (t *Tx) GetAccountForUpdate(ctx context.Context, userID int64) (*domain.Account, error) {
	acc := t.st.account(userID)
	return &acc, nil
}

func (t *Tx) UpdateAccount(ctx context.Context, account *domain.Account) error {
	if account.Balance < 0 {
		return fmt.Errorf("balance check violated for user %d", account.UserID)
	}
	t.st.accounts[account.UserID] = *account
	return nil
}

// ---- ItemOps ----

func (t *Tx) GetItemQuantityForUpdate(ctx context.Context, userID int64, itemID string) (int64, error) {
	return t.st.inventory[userItemKey{userID, itemID}], nil
}

func (t *Tx) SetItemQuantity(ctx context.Context, userID int64, itemID string, quantity int64) error {
	key := userItemKey{userID, itemID}
	switch {
	case quantity < 0:
		return fmt.Errorf("negative quantity for item %s", itemID)
	case quantity == 0:
		delete(t.st.inventory, key)
	default:
		if _, ok := t.st.shopItems[itemID]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
		t.st.inventory[key] = quantity
	}
	return nil
}

// ---- EmploymentOps ----

func (t *Tx) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	if j, ok := t.st.jobs[jobID]; ok {
		return &j, nil
	}
	return nil, nil
}

func (t *Tx) GetEmploymentForUpdate(ctx context.Context, userID int64) (*domain.Employment, error) {
	if e, ok := t.st.employment[userID]; ok {
		return &e, nil
	}
	return nil, nil
}

func (t *Tx) InsertEmployment(ctx context.Context, employment *domain.Employment) error {
	if _, ok := t.st.employment[employment.UserID]; ok {
		return fmt.Errorf("%w: user %d", domain.ErrAlreadyEmployed, employment.UserID)
	}
	t.st.employment[employment.UserID] = *employment
	return nil
}

func (t *Tx) DeleteEmployment(ctx context.Context, userID int64) error {
	delete(t.st.employment, userID)
	return nil
}

func (t *Tx) UpdateLastWork(ctx context.Context, userID int64, at time.Time) error {
	e, ok := t.st.employment[userID]
	if !ok {
		return fmt.Errorf("%w: user %d", domain.ErrNotEmployed, userID)
	}
	e.LastWorkAt = &at
	t.st.employment[userID] = e
	return nil
}

func (t *Tx) GetLastApplicationForUpdate(ctx context.Context, userID int64, jobID string) (*time.Time, error) {
	if at, ok := t.st.applications[userJobKey{userID, jobID}]; ok {
		return &at, nil
	}
	return nil, nil
}

func (t *Tx) UpsertApplication(ctx context.Context, userID int64, jobID string, at time.Time) error {
	t.st.applications[userJobKey{userID, jobID}] = at
	return nil
}

// ---- StockOps ----

func (t *Tx) GetStockForUpdate(ctx context.Context, stockID string) (*domain.Stock, error) {
	if s, ok := t.st.stocks[stockID]; ok {
		return &s, nil
	}
	return nil, nil
}

func (t *Tx) InsertStock(ctx context.Context, stock *domain.Stock) error {
	if _, ok := t.st.stocks[stock.StockID]; ok {
		return duplicate("stock", stock.StockID)
	}
	t.st.stocks[stock.StockID] = *stock
	return nil
}

func (t *Tx) UpdateStockPrice(ctx context.Context, stockID string, price decimal.Decimal) error {
	s, ok := t.st.stocks[stockID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrStockNotFound, stockID)
	}
	s.Price = price
	t.st.stocks[stockID] = s
	return nil
}

func (t *Tx) InsertPriceSample(ctx context.Context, sample domain.PriceSample) error {
	t.st.samples = append(t.st.samples, sampleRow{id: t.st.nextSampleID, sample: sample})
	t.st.nextSampleID++
	return nil
}

func (t *Tx) GetHoldingForUpdate(ctx context.Context, userID int64, stockID string) (int64, error) {
	return t.st.holdings[userStockKey{userID, stockID}], nil
}

func (t *Tx) SetHolding(ctx context.Context, userID int64, stockID string, quantity int64) error {
	key := userStockKey{userID, stockID}
	switch {
	case quantity < 0:
		return fmt.Errorf("negative holding for stock %s", stockID)
	case quantity == 0:
		delete(t.st.holdings, key)
	default:
		t.st.holdings[key] = quantity
	}
	return nil
}

// ---- TradeOps ----

func (t *Tx) InsertTrade(ctx context.Context, trade *domain.TradeOffer) (int64, error) {
	id := t.st.nextTradeID
	t.st.nextTradeID++
	stored := *trade
	stored.TradeID = id
	t.st.trades[id] = stored
	return id, nil
}

func (t *Tx) GetTradeForUpdate(ctx context.Context, tradeID int64) (*domain.TradeOffer, error) {
	if tr, ok := t.st.trades[tradeID]; ok {
		return &tr, nil
	}
	return nil, nil
}

func (t *Tx) UpdateTradeStatus(ctx context.Context, tradeID int64, status domain.TradeStatus, resolvedAt time.Time) error {
	tr, ok := t.st.trades[tradeID]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrTradeNotFound, tradeID)
	}
	tr.Status = status
	tr.ResolvedAt = &resolvedAt
	t.st.trades[tradeID] = tr
	return nil
}
