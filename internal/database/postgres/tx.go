package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// Tx implements every repository transaction interface on a pgx.Tx
type Tx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *Tx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// ---- AccountOps ----

func (t *Tx) GetAccountForUpdate(ctx context.Context, userID int64) (*domain.Account, error) {
	return getAccount(ctx, t.tx, userID, true)
}

func (t *Tx) UpdateAccount(ctx context.Context, account *domain.Account) error {
	_, err := t.tx.Exec(ctx, `
		UPDATE accounts
		SET balance = $2, job_points = $3, last_daily_claim = $4, last_rob_at = $5, last_dig_at = $6
		WHERE user_id = $1`,
		account.UserID, account.Balance, account.JobPoints,
		account.LastDailyClaim, account.LastRobAt, account.LastDigAt)
	if err != nil {
		return fmt.Errorf(ErrMsgExec, kindAccount, err)
	}
	return nil
}

// ---- ItemOps ----

// GetItemQuantityForUpdate locks the owner's account row, which guards all of their inventory rows
func (t *Tx) GetItemQuantityForUpdate(ctx context.Context, userID int64, itemID string) (int64, error) {
	if _, err := getAccount(ctx, t.tx, userID, true); err != nil {
		return 0, err
	}
	var qty int64
	err := t.tx.QueryRow(ctx, `SELECT quantity FROM inventory WHERE user_id = $1 AND item_id = $2`, userID, itemID).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf(ErrMsgScanRow, kindInventory, err)
	}
	return qty, nil
}

func (t *Tx) SetItemQuantity(ctx context.Context, userID int64, itemID string, quantity int64) error {
	var err error
	switch {
	case quantity < 0:
		return fmt.Errorf(ErrMsgNegativeAmount, "quantity", itemID)
	case quantity == 0:
		_, err = t.tx.Exec(ctx, `DELETE FROM inventory WHERE user_id = $1 AND item_id = $2`, userID, itemID)
	default:
		_, err = t.tx.Exec(ctx, `
			INSERT INTO inventory (user_id, item_id, quantity) VALUES ($1, $2, $3)
			ON CONFLICT (user_id, item_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
			userID, itemID, quantity)
	}
	if err != nil {
		return translate(err, kindInventory, itemID)
	}
	return nil
}

// ---- EmploymentOps ----

func (t *Tx) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	return getJob(ctx, t.tx, jobID)
}

// GetEmploymentForUpdate locks the account row since a missing employment row cannot be locked
func (t *Tx) GetEmploymentForUpdate(ctx context.Context, userID int64) (*domain.Employment, error) {
	if _, err := getAccount(ctx, t.tx, userID, true); err != nil {
		return nil, err
	}
	emp, err := scanEmployment(t.tx.QueryRow(ctx,
		`SELECT user_id, job_id, started_at, last_work_at FROM employment WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanRow, kindEmployment, err)
	}
	return emp, nil
}

func (t *Tx) InsertEmployment(ctx context.Context, employment *domain.Employment) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO employment (user_id, job_id, started_at, last_work_at) VALUES ($1, $2, $3, $4)`,
		employment.UserID, employment.JobID, employment.StartedAt, employment.LastWorkAt)
	if err != nil {
		err = translate(err, kindEmployment, employment.JobID)
		if errors.Is(err, domain.ErrDuplicate) {
			return fmt.Errorf("%w: user %d", domain.ErrAlreadyEmployed, employment.UserID)
		}
		return err
	}
	return nil
}

func (t *Tx) DeleteEmployment(ctx context.Context, userID int64) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM employment WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf(ErrMsgExec, kindEmployment, err)
	}
	return nil
}

func (t *Tx) UpdateLastWork(ctx context.Context, userID int64, at time.Time) error {
	tag, err := t.tx.Exec(ctx, `UPDATE employment SET last_work_at = $2 WHERE user_id = $1`, userID, at)
	if err != nil {
		return fmt.Errorf(ErrMsgExec, kindEmployment, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %d", domain.ErrNotEmployed, userID)
	}
	return nil
}

func (t *Tx) GetLastApplicationForUpdate(ctx context.Context, userID int64, jobID string) (*time.Time, error) {
	var at time.Time
	err := t.tx.QueryRow(ctx, `
		SELECT applied_at FROM job_applications
		WHERE user_id = $1 AND job_id = $2
		FOR UPDATE`, userID, jobID).Scan(&at)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanRow, "application", err)
	}
	at = at.UTC()
	return &at, nil
}

func (t *Tx) UpsertApplication(ctx context.Context, userID int64, jobID string, at time.Time) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO job_applications (user_id, job_id, applied_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, job_id) DO UPDATE SET applied_at = EXCLUDED.applied_at`,
		userID, jobID, at)
	if err != nil {
		return fmt.Errorf(ErrMsgExec, "application", err)
	}
	return nil
}

// ---- StockOps ----

func (t *Tx) GetStockForUpdate(ctx context.Context, stockID string) (*domain.Stock, error) {
	st, err := scanStock(t.tx.QueryRow(ctx, `SELECT `+stockColumns+` FROM stocks WHERE stock_id = $1 FOR UPDATE`, stockID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanRow, kindStock, err)
	}
	return &st, nil
}

func (t *Tx) InsertStock(ctx context.Context, stock *domain.Stock) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO stocks (stock_id, name, price) VALUES ($1, $2, $3::numeric)`,
		stock.StockID, stock.Name, stock.Price.String())
	if err != nil {
		return translate(err, kindStock, stock.StockID)
	}
	return nil
}

func (t *Tx) UpdateStockPrice(ctx context.Context, stockID string, price decimal.Decimal) error {
	tag, err := t.tx.Exec(ctx, `UPDATE stocks SET price = $2::numeric WHERE stock_id = $1`, stockID, price.String())
	if err != nil {
		return fmt.Errorf(ErrMsgExec, kindStock, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrStockNotFound, stockID)
	}
	return nil
}

func (t *Tx) InsertPriceSample(ctx context.Context, sample domain.PriceSample) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO stock_price_history (stock_id, price, recorded_at) VALUES ($1, $2::numeric, $3)`,
		sample.StockID, sample.Price.String(), sample.RecordedAt)
	if err != nil {
		return translate(err, kindSample, sample.StockID)
	}
	return nil
}

// GetHoldingForUpdate locks the owner's account row, which guards all of their holdings
func (t *Tx) GetHoldingForUpdate(ctx context.Context, userID int64, stockID string) (int64, error) {
	if _, err := getAccount(ctx, t.tx, userID, true); err != nil {
		return 0, err
	}
	return getHolding(ctx, t.tx, userID, stockID)
}

func (t *Tx) SetHolding(ctx context.Context, userID int64, stockID string, quantity int64) error {
	var err error
	switch {
	case quantity < 0:
		return fmt.Errorf(ErrMsgNegativeAmount, "holding", stockID)
	case quantity == 0:
		_, err = t.tx.Exec(ctx, `DELETE FROM holdings WHERE user_id = $1 AND stock_id = $2`, userID, stockID)
	default:
		_, err = t.tx.Exec(ctx, `
			INSERT INTO holdings (user_id, stock_id, quantity) VALUES ($1, $2, $3)
			ON CONFLICT (user_id, stock_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
			userID, stockID, quantity)
	}
	if err != nil {
		return translate(err, kindHolding, stockID)
	}
	return nil
}

// ---- TradeOps ----

func (t *Tx) InsertTrade(ctx context.Context, trade *domain.TradeOffer) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `
		INSERT INTO trades (
			proposer_id, counterparty_id,
			offer_kind, offer_item_id, offer_credits,
			request_kind, request_item_id, request_credits,
			status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING trade_id`,
		trade.ProposerID, trade.CounterpartyID,
		string(trade.Offer.Kind), nullIfEmpty(trade.Offer.ItemID), trade.Offer.Credits,
		string(trade.Request.Kind), nullIfEmpty(trade.Request.ItemID), trade.Request.Credits,
		string(trade.Status), trade.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgExec, kindTrade, err)
	}
	return id, nil
}

func (t *Tx) GetTradeForUpdate(ctx context.Context, tradeID int64) (*domain.TradeOffer, error) {
	return getTrade(ctx, t.tx, tradeID, true)
}

func (t *Tx) UpdateTradeStatus(ctx context.Context, tradeID int64, status domain.TradeStatus, resolvedAt time.Time) error {
	tag, err := t.tx.Exec(ctx, `UPDATE trades SET status = $2, resolved_at = $3 WHERE trade_id = $1`,
		tradeID, string(status), resolvedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgExec, kindTrade, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrTradeNotFound, tradeID)
	}
	return nil
}

var (
	_ repository.LedgerTx    = (*Tx)(nil)
	_ repository.InventoryTx = (*Tx)(nil)
	_ repository.ShopTx      = (*Tx)(nil)
	_ repository.JobTx       = (*Tx)(nil)
	_ repository.StockTx     = (*Tx)(nil)
	_ repository.TradeTx     = (*Tx)(nil)
)
