package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
	"github.com/osse101/SpaceBot_Go/internal/utils"
)

// Service defines the stock market business logic
type Service interface {
	GetStocks(ctx context.Context) ([]domain.Stock, error)
	GetStock(ctx context.Context, stockID string) (*domain.Stock, error)
	MarketOverview(ctx context.Context, order domain.StockOrder, page int) (*domain.StockPage, error)

	Buy(ctx context.Context, userID int64, stockID string, quantity int64) (*domain.StockTrade, error)
	Sell(ctx context.Context, userID int64, stockID string, quantity int64) (*domain.StockTrade, error)
	GetUserStockQuantity(ctx context.Context, userID int64, stockID string) (int64, error)
	Portfolio(ctx context.Context, userID int64) ([]domain.PortfolioEntry, error)

	// FetchStockHistory returns up to limit samples, newest first
	FetchStockHistory(ctx context.Context, stockID string, limit int) ([]domain.PriceSample, error)
	MarketTrends(ctx context.Context) ([]domain.StockTrend, error)

	// Fluctuate applies one random price step to every stock
	Fluctuate(ctx context.Context) error
	// PruneHistory drops the oldest samples once the log outgrows its cap
	PruneHistory(ctx context.Context) (int64, error)

	AddStock(ctx context.Context, stock *domain.Stock) error
}

// Config holds the market tunables
type Config struct {
	ImpactRate       decimal.Decimal
	FluctuationRange float64
	HistoryCap       int64
	PruneBatch       int
	TrendWindow      time.Duration
}

// DefaultConfig returns the standard market tunables
func DefaultConfig() Config {
	return Config{
		ImpactRate:       decimal.NewFromFloat(domain.DefaultImpactRate),
		FluctuationRange: domain.DefaultFluctuationRange,
		HistoryCap:       domain.DefaultHistoryCap,
		PruneBatch:       domain.DefaultPruneBatch,
		TrendWindow:      domain.DefaultTrendWindow,
	}
}

type service struct {
	repo repository.Stock
	cfg  Config
	rnd  utils.Rand
	now  func() time.Time
}

// NewService creates a new stock market service
func NewService(repo repository.Stock, cfg Config, rnd utils.Rand) Service {
	if rnd == nil {
		rnd = utils.DefaultRand()
	}
	return &service{
		repo: repo,
		cfg:  cfg,
		rnd:  rnd,
		now:  time.Now,
	}
}

func (s *service) GetStocks(ctx context.Context) ([]domain.Stock, error) {
	stocks, err := s.repo.GetStocks(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get stocks", "error", err)
		return nil, fmt.Errorf(ErrMsgGetStocksFailed, err)
	}
	return stocks, nil
}

func (s *service) GetStock(ctx context.Context, stockID string) (*domain.Stock, error) {
	stock, err := s.repo.GetStock(ctx, stockID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStockFailed, err)
	}
	if stock == nil {
		return nil, fmt.Errorf(ErrMsgStockNotFoundFmt, stockID, domain.ErrStockNotFound)
	}
	return stock, nil
}

func (s *service) MarketOverview(ctx context.Context, order domain.StockOrder, page int) (*domain.StockPage, error) {
	if order == "" {
		order = domain.StockOrderHighest
	}
	if order != domain.StockOrderHighest && order != domain.StockOrderLowest {
		return nil, fmt.Errorf(ErrMsgInvalidOrderFmt, order, domain.ErrInvalidInput)
	}

	count, err := s.repo.CountStocks(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountStocksFailed, err)
	}
	page, total := utils.ClampPage(page, count, domain.StockPageSize)

	stocks, err := s.repo.ListStocksByPrice(ctx, order == domain.StockOrderHighest, domain.StockPageSize, utils.PageOffset(page, domain.StockPageSize))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStocksFailed, err)
	}
	if stocks == nil {
		stocks = []domain.Stock{}
	}
	return &domain.StockPage{Stocks: stocks, Order: order, Page: page, TotalPages: total}, nil
}

func (s *service) GetUserStockQuantity(ctx context.Context, userID int64, stockID string) (int64, error) {
	qty, err := s.repo.GetHolding(ctx, userID, stockID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgGetHoldingFailed, err)
	}
	return qty, nil
}

func (s *service) Portfolio(ctx context.Context, userID int64) ([]domain.PortfolioEntry, error) {
	entries, err := s.repo.GetPortfolio(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get portfolio", "error", err, logger.AttrKeyUserID, userID)
		return nil, fmt.Errorf(ErrMsgGetPortfolioFailed, err)
	}
	return entries, nil
}

func (s *service) FetchStockHistory(ctx context.Context, stockID string, limit int) ([]domain.PriceSample, error) {
	if _, err := s.GetStock(ctx, stockID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}
	samples, err := s.repo.GetPriceHistory(ctx, stockID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetHistoryFailed, err)
	}
	return samples, nil
}

// MarketTrends compares each stock's latest sample with the latest one recorded before the
// trend window. Stocks missing either sample report no change.
func (s *service) MarketTrends(ctx context.Context) ([]domain.StockTrend, error) {
	stocks, err := s.GetStocks(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := s.now().Add(-s.cfg.TrendWindow)

	trends := make([]domain.StockTrend, 0, len(stocks))
	for _, st := range stocks {
		trend := domain.StockTrend{Stock: st}

		latest, err := s.repo.GetLatestSample(ctx, st.StockID, nil)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetHistoryFailed, err)
		}
		previous, err := s.repo.GetLatestSample(ctx, st.StockID, &cutoff)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetHistoryFailed, err)
		}
		if latest != nil {
			trend.Latest = &latest.Price
		}
		if previous != nil {
			trend.Previous = &previous.Price
		}
		if latest != nil && previous != nil {
			change := latest.Price.Sub(previous.Price)
			trend.Change = &change
		}
		trends = append(trends, trend)
	}
	return trends, nil
}

// AddStock lists a new stock and records its opening price
func (s *service) AddStock(ctx context.Context, stock *domain.Stock) (err error) {
	defer func() { metrics.RecordOperation(OpAddStock, err) }()

	if err := validateStock(stock); err != nil {
		return err
	}
	now := s.now()
	err = s.withTx(ctx, func(tx repository.StockTx) error {
		if err := tx.InsertStock(ctx, stock); err != nil {
			if domain.IsExpected(err) {
				return err
			}
			return fmt.Errorf(ErrMsgInsertStockFailed, err)
		}
		if err := tx.InsertPriceSample(ctx, domain.PriceSample{StockID: stock.StockID, Price: stock.Price, RecordedAt: now}); err != nil {
			return fmt.Errorf(ErrMsgRecordSampleFailed, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.StockPrice.WithLabelValues(stock.StockID).Set(stock.Price.InexactFloat64())
	logger.FromContext(ctx).Info(LogMsgStockAdded, "stock_id", stock.StockID, "price", stock.Price.String())
	return nil
}

func validateStock(stock *domain.Stock) error {
	switch {
	case stock == nil:
		return fmt.Errorf(ErrMsgInvalidStockFmt, "missing stock", domain.ErrInvalidInput)
	case strings.TrimSpace(stock.StockID) == "":
		return fmt.Errorf(ErrMsgInvalidStockFmt, "empty stock id", domain.ErrInvalidInput)
	case strings.TrimSpace(stock.Name) == "":
		return fmt.Errorf(ErrMsgInvalidStockFmt, "empty name", domain.ErrInvalidInput)
	case stock.Price.IsNegative():
		return fmt.Errorf(ErrMsgInvalidStockFmt, "negative price", domain.ErrInvalidAmount)
	}
	return checkPrice(stock.Price)
}

func (s *service) withTx(ctx context.Context, fn func(tx repository.StockTx) error) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to begin transaction", "error", err)
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		logger.FromContext(ctx).Error("Failed to commit transaction", "error", err)
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}
