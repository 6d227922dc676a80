// Package memory is an in-process storage backend. Transactions are fully serialized: a
// transaction holds the store lock from BeginTx until Commit or Rollback and works on a private
// copy of the state that replaces the committed state on Commit.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

type userItemKey struct {
	userID int64
	itemID string
}

type userJobKey struct {
	userID int64
	jobID  string
}

type userStockKey struct {
	userID  int64
	stockID string
}

type sampleRow struct {
	id     int64
	sample domain.PriceSample
}

type state struct {
	accounts     map[int64]domain.Account
	shopItems    map[string]domain.ShopItem
	inventory    map[userItemKey]int64
	jobs         map[string]domain.Job
	employment   map[int64]domain.Employment
	applications map[userJobKey]time.Time
	stocks       map[string]domain.Stock
	samples      []sampleRow
	holdings     map[userStockKey]int64
	trades       map[int64]domain.TradeOffer
	nextSampleID int64
	nextTradeID  int64
}

func newState() *state {
	return &state{
		accounts:     make(map[int64]domain.Account),
		shopItems:    make(map[string]domain.ShopItem),
		inventory:    make(map[userItemKey]int64),
		jobs:         make(map[string]domain.Job),
		employment:   make(map[int64]domain.Employment),
		applications: make(map[userJobKey]time.Time),
		stocks:       make(map[string]domain.Stock),
		holdings:     make(map[userStockKey]int64),
		trades:       make(map[int64]domain.TradeOffer),
		nextSampleID: 1,
		nextTradeID:  1,
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *state) clone() *state {
	return &state{
		accounts:     cloneMap(s.accounts),
		shopItems:    cloneMap(s.shopItems),
		inventory:    cloneMap(s.inventory),
		jobs:         cloneMap(s.jobs),
		employment:   cloneMap(s.employment),
		applications: cloneMap(s.applications),
		stocks:       cloneMap(s.stocks),
		samples:      append([]sampleRow(nil), s.samples...),
		holdings:     cloneMap(s.holdings),
		trades:       cloneMap(s.trades),
		nextSampleID: s.nextSampleID,
		nextTradeID:  s.nextTradeID,
	}
}

func (s *state) account(userID int64) domain.Account {
	acc, ok := s.accounts[userID]
	if !ok {
		acc = domain.Account{UserID: userID}
		s.accounts[userID] = acc
	}
	return acc
}

// Store holds the committed state. Methods outside a transaction must not be called by a
// goroutine that currently holds an open transaction.
type Store struct {
	mu        sync.Mutex
	committed *state
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{committed: newState()}
}

func (s *Store) read(fn func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.committed)
}

func (s *Store) begin(ctx context.Context) (*Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &Tx{store: s, st: s.committed.clone()}, nil
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op
func (s *Store) Close() {}

// ---- Accounts ----

// GetAccount returns the account, creating it with a zero balance when missing
func (s *Store) GetAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	var acc domain.Account
	s.read(func(st *state) { acc = st.account(userID) })
	return &acc, nil
}

// ---- Shop catalog ----

func (s *Store) GetShopItem(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	var item *domain.ShopItem
	s.read(func(st *state) {
		if it, ok := st.shopItems[itemID]; ok {
			item = &it
		}
	})
	return item, nil
}

func (s *Store) GetShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	var items []domain.ShopItem
	s.read(func(st *state) { items = sortedShopItems(st) })
	return items, nil
}

func (s *Store) CountShopItems(ctx context.Context) (int, error) {
	var n int
	s.read(func(st *state) { n = len(st.shopItems) })
	return n, nil
}

func (s *Store) ListShopItems(ctx context.Context, limit, offset int) ([]domain.ShopItem, error) {
	var items []domain.ShopItem
	s.read(func(st *state) { items = page(sortedShopItems(st), limit, offset) })
	return items, nil
}

func (s *Store) InsertShopItem(ctx context.Context, item *domain.ShopItem) error {
	var err error
	s.read(func(st *state) {
		if _, ok := st.shopItems[item.ItemID]; ok {
			err = duplicate("shop item", item.ItemID)
			return
		}
		st.shopItems[item.ItemID] = *item
	})
	return err
}

func sortedShopItems(st *state) []domain.ShopItem {
	items := make([]domain.ShopItem, 0, len(st.shopItems))
	for _, it := range st.shopItems {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items
}

// ---- Inventory ----

func (s *Store) GetInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error) {
	var entries []domain.InventoryEntry
	s.read(func(st *state) {
		for k, qty := range st.inventory {
			if k.userID != userID {
				continue
			}
			entries = append(entries, domain.InventoryEntry{
				ItemID:   k.itemID,
				Name:     st.shopItems[k.itemID].Name,
				Quantity: qty,
			})
		}
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// ---- Jobs ----

func (s *Store) GetJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	s.read(func(st *state) {
		for _, j := range st.jobs {
			jobs = append(jobs, j)
		}
	})
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].JobID < jobs[j].JobID })
	return jobs, nil
}

func (s *Store) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	var job *domain.Job
	s.read(func(st *state) {
		if j, ok := st.jobs[jobID]; ok {
			job = &j
		}
	})
	return job, nil
}

func (s *Store) InsertJob(ctx context.Context, job *domain.Job) error {
	var err error
	s.read(func(st *state) {
		if _, ok := st.jobs[job.JobID]; ok {
			err = duplicate("job", job.JobID)
			return
		}
		st.jobs[job.JobID] = *job
	})
	return err
}

func (s *Store) GetEmployment(ctx context.Context, userID int64) (*domain.Employment, error) {
	var emp *domain.Employment
	s.read(func(st *state) {
		if e, ok := st.employment[userID]; ok {
			emp = &e
		}
	})
	return emp, nil
}

// ---- Stocks ----

func (s *Store) GetStocks(ctx context.Context) ([]domain.Stock, error) {
	var stocks []domain.Stock
	s.read(func(st *state) { stocks = sortedStocks(st) })
	return stocks, nil
}

func (s *Store) GetStock(ctx context.Context, stockID string) (*domain.Stock, error) {
	var stock *domain.Stock
	s.read(func(st *state) {
		if v, ok := st.stocks[stockID]; ok {
			stock = &v
		}
	})
	return stock, nil
}

func (s *Store) CountStocks(ctx context.Context) (int, error) {
	var n int
	s.read(func(st *state) { n = len(st.stocks) })
	return n, nil
}

func (s *Store) ListStocksByPrice(ctx context.Context, descending bool, limit, offset int) ([]domain.Stock, error) {
	var stocks []domain.Stock
	s.read(func(st *state) {
		all := sortedStocks(st)
		sort.SliceStable(all, func(i, j int) bool {
			if descending {
				return all[i].Price.GreaterThan(all[j].Price)
			}
			return all[i].Price.LessThan(all[j].Price)
		})
		stocks = page(all, limit, offset)
	})
	return stocks, nil
}

func (s *Store) GetHolding(ctx context.Context, userID int64, stockID string) (int64, error) {
	var qty int64
	s.read(func(st *state) { qty = st.holdings[userStockKey{userID, stockID}] })
	return qty, nil
}

func (s *Store) GetPortfolio(ctx context.Context, userID int64) ([]domain.PortfolioEntry, error) {
	var entries []domain.PortfolioEntry
	s.read(func(st *state) {
		for k, qty := range st.holdings {
			if k.userID != userID {
				continue
			}
			stock := st.stocks[k.stockID]
			entries = append(entries, domain.PortfolioEntry{
				Stock:    stock,
				Quantity: qty,
				Value:    stock.Price.Mul(decimal.NewFromInt(qty)),
			})
		}
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Stock.StockID < entries[j].Stock.StockID })
	return entries, nil
}

func (s *Store) GetPriceHistory(ctx context.Context, stockID string, limit int) ([]domain.PriceSample, error) {
	var samples []domain.PriceSample
	s.read(func(st *state) {
		for i := len(st.samples) - 1; i >= 0 && (limit <= 0 || len(samples) < limit); i-- {
			if st.samples[i].sample.StockID == stockID {
				samples = append(samples, st.samples[i].sample)
			}
		}
	})
	return samples, nil
}

func (s *Store) GetLatestSample(ctx context.Context, stockID string, before *time.Time) (*domain.PriceSample, error) {
	var latest *domain.PriceSample
	s.read(func(st *state) {
		for _, row := range st.samples {
			smp := row.sample
			if smp.StockID != stockID {
				continue
			}
			if before != nil && !smp.RecordedAt.Before(*before) {
				continue
			}
			if latest == nil || !smp.RecordedAt.Before(latest.RecordedAt) {
				cp := smp
				latest = &cp
			}
		}
	})
	return latest, nil
}

func (s *Store) CountPriceSamples(ctx context.Context) (int64, error) {
	var n int64
	s.read(func(st *state) { n = int64(len(st.samples)) })
	return n, nil
}

func (s *Store) DeleteOldestPriceSamples(ctx context.Context, n int) (int64, error) {
	var deleted int64
	s.read(func(st *state) {
		if n > len(st.samples) {
			n = len(st.samples)
		}
		if n <= 0 {
			return
		}
		st.samples = append([]sampleRow(nil), st.samples[n:]...)
		deleted = int64(n)
	})
	return deleted, nil
}

func sortedStocks(st *state) []domain.Stock {
	stocks := make([]domain.Stock, 0, len(st.stocks))
	for _, v := range st.stocks {
		stocks = append(stocks, v)
	}
	sort.Slice(stocks, func(i, j int) bool { return stocks[i].StockID < stocks[j].StockID })
	return stocks
}

// ---- Trades ----

func (s *Store) GetTrade(ctx context.Context, tradeID int64) (*domain.TradeOffer, error) {
	var trade *domain.TradeOffer
	s.read(func(st *state) {
		if t, ok := st.trades[tradeID]; ok {
			trade = &t
		}
	})
	return trade, nil
}

func (s *Store) ListTradesForUser(ctx context.Context, userID int64, status domain.TradeStatus) ([]domain.TradeOffer, error) {
	var trades []domain.TradeOffer
	s.read(func(st *state) {
		for _, t := range st.trades {
			if t.IsParty(userID) && (status == "" || t.Status == status) {
				trades = append(trades, t)
			}
		}
	})
	sort.Slice(trades, func(i, j int) bool { return trades[i].TradeID > trades[j].TradeID })
	return trades, nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end]
}
