package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// translate maps constraint violations onto domain errors
func translate(err error, kind, id string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeUniqueViolation:
			return fmt.Errorf("%w: %s %q", domain.ErrDuplicate, kind, id)
		case PgErrorCodeForeignKeyViolation:
			return fmt.Errorf("%w: %s %q", notFoundFor(kind), kind, id)
		}
	}
	return fmt.Errorf(ErrMsgExec, kind, err)
}

func notFoundFor(kind string) error {
	switch kind {
	case kindStock, kindHolding, kindSample:
		return domain.ErrStockNotFound
	case kindEmployment:
		return domain.ErrJobNotFound
	default:
		return domain.ErrItemNotFound
	}
}

const (
	kindAccount    = "account"
	kindShopItem   = "shop item"
	kindInventory  = "inventory"
	kindJob        = "job"
	kindEmployment = "employment"
	kindStock      = "stock"
	kindSample     = "price sample"
	kindHolding    = "holding"
	kindTrade      = "trade"
)

// parsePrice reads a NUMERIC selected as text
func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf(ErrMsgParsePrice, s, err)
	}
	return d, nil
}

// ptrTime normalizes a nullable timestamp to UTC
func ptrTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// collect scans every row with fn
func collect[T any](rows pgx.Rows, kind string, fn func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := fn(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanRow, kind, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgQuery, kind, err)
	}
	return out, nil
}

// ---- Shared statements ----

const accountColumns = `user_id, balance, job_points, last_daily_claim, last_rob_at, last_dig_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	if err := row.Scan(&acc.UserID, &acc.Balance, &acc.JobPoints, &acc.LastDailyClaim, &acc.LastRobAt, &acc.LastDigAt); err != nil {
		return nil, err
	}
	acc.LastDailyClaim = ptrTime(acc.LastDailyClaim)
	acc.LastRobAt = ptrTime(acc.LastRobAt)
	acc.LastDigAt = ptrTime(acc.LastDigAt)
	return &acc, nil
}

// ensureAccount creates the zero-balance row when missing
func ensureAccount(ctx context.Context, q querier, userID int64) error {
	if _, err := q.Exec(ctx, `INSERT INTO accounts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID); err != nil {
		return fmt.Errorf(ErrMsgEnsureAccount, userID, err)
	}
	return nil
}

func getAccount(ctx context.Context, q querier, userID int64, forUpdate bool) (*domain.Account, error) {
	if err := ensureAccount(ctx, q, userID); err != nil {
		return nil, err
	}
	sql := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}
	acc, err := scanAccount(q.QueryRow(ctx, sql, userID))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanRow, kindAccount, err)
	}
	return acc, nil
}

const shopItemColumns = `item_id, name, price`

func scanShopItem(row pgx.Row) (domain.ShopItem, error) {
	var it domain.ShopItem
	err := row.Scan(&it.ItemID, &it.Name, &it.Price)
	return it, err
}

const jobColumns = `job_id, name, description, hourly_pay, acceptance_chance`

func scanJob(row pgx.Row) (domain.Job, error) {
	var j domain.Job
	err := row.Scan(&j.JobID, &j.Name, &j.Description, &j.HourlyPay, &j.AcceptanceChance)
	return j, err
}

func getJob(ctx context.Context, q querier, jobID string) (*domain.Job, error) {
	j, err := scanJob(q.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE job_id = $1`, jobID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanRow, kindJob, err)
	}
	return &j, nil
}

func scanEmployment(row pgx.Row) (*domain.Employment, error) {
	var e domain.Employment
	if err := row.Scan(&e.UserID, &e.JobID, &e.StartedAt, &e.LastWorkAt); err != nil {
		return nil, err
	}
	e.StartedAt = e.StartedAt.UTC()
	e.LastWorkAt = ptrTime(e.LastWorkAt)
	return &e, nil
}

const stockColumns = `stock_id, name, price::text`

func scanStock(row pgx.Row) (domain.Stock, error) {
	var (
		s     domain.Stock
		price string
	)
	if err := row.Scan(&s.StockID, &s.Name, &price); err != nil {
		return s, err
	}
	p, err := parsePrice(price)
	s.Price = p
	return s, err
}

func scanSample(row pgx.Row) (domain.PriceSample, error) {
	var (
		s     domain.PriceSample
		price string
	)
	if err := row.Scan(&s.StockID, &price, &s.RecordedAt); err != nil {
		return s, err
	}
	s.RecordedAt = s.RecordedAt.UTC()
	p, err := parsePrice(price)
	s.Price = p
	return s, err
}

const tradeColumns = `trade_id, proposer_id, counterparty_id,
	offer_kind, COALESCE(offer_item_id, ''), offer_credits,
	request_kind, COALESCE(request_item_id, ''), request_credits,
	status, created_at, resolved_at`

func scanTrade(row pgx.Row) (domain.TradeOffer, error) {
	var t domain.TradeOffer
	err := row.Scan(&t.TradeID, &t.ProposerID, &t.CounterpartyID,
		&t.Offer.Kind, &t.Offer.ItemID, &t.Offer.Credits,
		&t.Request.Kind, &t.Request.ItemID, &t.Request.Credits,
		&t.Status, &t.CreatedAt, &t.ResolvedAt)
	t.CreatedAt = t.CreatedAt.UTC()
	t.ResolvedAt = ptrTime(t.ResolvedAt)
	return t, err
}

// nullIfEmpty stores blank item ids as NULL
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
