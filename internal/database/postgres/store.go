// Package postgres implements the repositories on PostgreSQL through pgx. Row locks taken with
// SELECT ... FOR UPDATE provide the per-account, per-stock and per-trade serialization the
// services rely on; inventory and holding rows are guarded by their owner's account lock.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// Store holds the pool shared by every repository
type Store struct {
	db *pgxpool.Pool
}

// NewStore wraps a connection pool
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool
func (s *Store) Close() {
	s.db.Close()
}

func (s *Store) begin(ctx context.Context) (*Tx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTx, err)
	}
	return &Tx{tx: tx}, nil
}

// ---- Accounts ----

// GetAccount returns the account, creating it with a zero balance when missing
func (s *Store) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	return getAccount(ctx, s.db, userID, false)
}

// ---- Shop catalog ----

func (s *Store) GetShopItem(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	it, err := scanShopItem(s.db.QueryRow(ctx, `SELECT `+shopItemColumns+` FROM shop_items WHERE item_id = $1`, itemID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanRow, kindShopItem, err)
	}
	return &it, nil
}

func (s *Store) GetShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	return s.ListShopItems(ctx, 0, 0)
}

func (s *Store) CountShopItems(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM shop_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf(ErrMsgQuery, kindShopItem, err)
	}
	return n, nil
}

// ListShopItems pages the catalog by item id; a zero limit returns everything
func (s *Store) ListShopItems(ctx context.Context, limit, offset int) ([]domain.ShopItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+shopItemColumns+` FROM shop_items
		ORDER BY item_id
		LIMIT NULLIF($1, 0) OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuery, kindShopItem, err)
	}
	return collect(rows, kindShopItem, scanShopItem)
}

func (s *Store) InsertShopItem(ctx context.Context, item *domain.ShopItem) error {
	_, err := s.db.Exec(ctx, `INSERT INTO shop_items (item_id, name, price) VALUES ($1, $2, $3)`,
		item.ItemID, item.Name, item.Price)
	if err != nil {
		return translate(err, kindShopItem, item.ItemID)
	}
	return nil
}

// ---- Inventory ----

func (s *Store) GetInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT i.item_id, s.name, i.quantity
		FROM inventory i
		JOIN shop_items s ON s.item_id = i.item_id
		WHERE i.user_id = $1
		ORDER BY s.name`, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuery, kindInventory, err)
	}
	return collect(rows, kindInventory, func(row pgx.Row) (domain.InventoryEntry, error) {
		var e domain.InventoryEntry
		err := row.Scan(&e.ItemID, &e.Name, &e.Quantity)
		return e, err
	})
}

// ---- Jobs ----

func (s *Store) GetJobs(ctx context.Context) ([]domain.Job, error) {
	rows, err := s.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY job_id`)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuery, kindJob, err)
	}
	return collect(rows, kindJob, scanJob)
}

func (s *Store) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	return getJob(ctx, s.db, jobID)
}

func (s *Store) InsertJob(ctx context.Context, job *domain.Job) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO jobs (job_id, name, description, hourly_pay, acceptance_chance)
		VALUES ($1, $2, $3, $4, $5)`,
		job.JobID, job.Name, job.Description, job.HourlyPay, job.AcceptanceChance)
	if err != nil {
		return translate(err, kindJob, job.JobID)
	}
	return nil
}

func (s *Store) GetEmployment(ctx context.Context, userID int64) (*domain.Employment, error) {
	emp, err := scanEmployment(s.db.QueryRow(ctx,
		`SELECT user_id, job_id, started_at, last_work_at FROM employment WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanRow, kindEmployment, err)
	}
	return emp, nil
}

// ---- Stocks ----

func (s *Store) GetStocks(ctx context.Context) ([]domain.Stock, error) {
	rows, err := s.db.Query(ctx, `SELECT `+stockColumns+` FROM stocks ORDER BY stock_id`)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuery, kindStock, err)
	}
	return collect(rows, kindStock, scanStock)
}

func (s *Store) GetStock(ctx context.Context, stockID string) (*domain.Stock, error) {
	st, err := scanStock(s.db.QueryRow(ctx, `SELECT `+stockColumns+` FROM stocks WHERE stock_id = $1`, stockID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanRow, kindStock, err)
	}
	return &st, nil
}

func (s *Store) CountStocks(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM stocks`).Scan(&n); err != nil {
		return 0, fmt.Errorf(ErrMsgQuery, kindStock, err)
	}
	return n, nil
}

func (s *Store) ListStocksByPrice(ctx context.Context, descending bool, limit, offset int) ([]domain.Stock, error) {
	order := "ASC"
	if descending {
		order = "DESC"
	}
	rows, err := s.db.Query(ctx, `
		SELECT `+stockColumns+` FROM stocks
		ORDER BY price `+order+`, stock_id
		LIMIT NULLIF($1, 0) OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuery, kindStock, err)
	}
	return collect(rows, kindStock, scanStock)
}

func (s *Store) GetHolding(ctx context.Context, userID int64, stockID string) (int64, error) {
	return getHolding(ctx, s.db, userID, stockID)
}

func (s *Store) GetPortfolio(ctx context.Context, userID int64) ([]domain.PortfolioEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT s.stock_id, s.name, s.price::text, h.quantity, (s.price * h.quantity)::text
		FROM holdings h
		JOIN stocks s ON s.stock_id = h.stock_id
		WHERE h.user_id = $1
		ORDER BY s.stock_id`, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuery, kindHolding, err)
	}
	return collect(rows, kindHolding, func(row pgx.Row) (domain.PortfolioEntry, error) {
		var (
			e            domain.PortfolioEntry
			price, value string
		)
		if err := row.Scan(&e.Stock.StockID, &e.Stock.Name, &price, &e.Quantity, &value); err != nil {
			return e, err
		}
		var err error
		if e.Stock.Price, err = parsePrice(price); err != nil {
			return e, err
		}
		e.Value, err = parsePrice(value)
		return e, err
	})
}

// GetPriceHistory returns samples newest first
func (s *Store) GetPriceHistory(ctx context.Context, stockID string, limit int) ([]domain.PriceSample, error) {
	rows, err := s.db.Query(ctx, `
		SELECT stock_id, price::text, recorded_at
		FROM stock_price_history
		WHERE stock_id = $1
		ORDER BY sample_id DESC
		LIMIT NULLIF($2, 0)`, stockID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuery, kindSample, err)
	}
	return collect(rows, kindSample, scanSample)
}

func (s *Store) GetLatestSample(ctx context.Context, stockID string, before *time.Time) (*domain.PriceSample, error) {
	smp, err := scanSample(s.db.QueryRow(ctx, `
		SELECT stock_id, price::text, recorded_at
		FROM stock_price_history
		WHERE stock_id = $1 AND ($2::timestamptz IS NULL OR recorded_at < $2)
		ORDER BY recorded_at DESC, sample_id DESC
		LIMIT 1`, stockID, before))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanRow, kindSample, err)
	}
	return &smp, nil
}

func (s *Store) CountPriceSamples(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM stock_price_history`).Scan(&n); err != nil {
		return 0, fmt.Errorf(ErrMsgQuery, kindSample, err)
	}
	return n, nil
}

// DeleteOldestPriceSamples removes up to n samples in recording order
func (s *Store) DeleteOldestPriceSamples(ctx context.Context, n int) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	tag, err := s.db.Exec(ctx, `
		DELETE FROM stock_price_history
		WHERE sample_id IN (
			SELECT sample_id FROM stock_price_history ORDER BY sample_id LIMIT $1
		)`, n)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgExec, kindSample, err)
	}
	return tag.RowsAffected(), nil
}

// ---- Trades ----

func (s *Store) GetTrade(ctx context.Context, tradeID int64) (*domain.TradeOffer, error) {
	return getTrade(ctx, s.db, tradeID, false)
}

func (s *Store) ListTradesForUser(ctx context.Context, userID int64, status domain.TradeStatus) ([]domain.TradeOffer, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+tradeColumns+` FROM trades
		WHERE (proposer_id = $1 OR counterparty_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY trade_id DESC`, userID, string(status))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQuery, kindTrade, err)
	}
	return collect(rows, kindTrade, scanTrade)
}

func getHolding(ctx context.Context, q querier, userID int64, stockID string) (int64, error) {
	var qty int64
	err := q.QueryRow(ctx, `SELECT quantity FROM holdings WHERE user_id = $1 AND stock_id = $2`, userID, stockID).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf(ErrMsgScanRow, kindHolding, err)
	}
	return qty, nil
}

func getTrade(ctx context.Context, q querier, tradeID int64, forUpdate bool) (*domain.TradeOffer, error) {
	sql := `SELECT ` + tradeColumns + ` FROM trades WHERE trade_id = $1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}
	tr, err := scanTrade(q.QueryRow(ctx, sql, tradeID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanRow, kindTrade, err)
	}
	return &tr, nil
}
