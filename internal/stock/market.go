package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
	"github.com/osse101/SpaceBot_Go/internal/utils"
)

// Fluctuate moves every stock by a uniform random step in its own transaction. A failure on
// one stock does not stop the others; all failures are returned joined.
func (s *service) Fluctuate(ctx context.Context) (err error) {
	defer func() { metrics.RecordOperation(OpFluctuate, err) }()

	stocks, err := s.GetStocks(ctx)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	var errs []error
	for _, st := range stocks {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		delta := utils.Uniform(s.rnd, -s.cfg.FluctuationRange, s.cfg.FluctuationRange)
		newPrice, err := s.fluctuateOne(ctx, st.StockID, delta)
		if err != nil {
			log.Error(LogMsgFluctuateFailed, "stock_id", st.StockID, "error", err)
			errs = append(errs, fmt.Errorf(ErrMsgFluctuateStockFmt, st.StockID, err))
			continue
		}
		metrics.StockPrice.WithLabelValues(st.StockID).Set(newPrice.InexactFloat64())
	}

	metrics.MarketTicks.Inc()
	log.Debug(LogMsgMarketTick, "stocks", len(stocks), "failed", len(errs))
	return errors.Join(errs...)
}

func (s *service) fluctuateOne(ctx context.Context, stockID string, delta float64) (newPrice decimal.Decimal, err error) {
	now := s.now()
	err = s.withTx(ctx, func(tx repository.StockTx) error {
		stock, err := lockStock(ctx, tx, stockID)
		if err != nil {
			return err
		}
		newPrice = driftPrice(stock.Price, delta)
		return setPrice(ctx, tx, stockID, newPrice, now)
	})
	return newPrice, err
}

// PruneHistory deletes the oldest PruneBatch samples once more than HistoryCap are stored
func (s *service) PruneHistory(ctx context.Context) (deleted int64, err error) {
	defer func() { metrics.RecordOperation(OpPruneHistory, err) }()

	count, err := s.repo.CountPriceSamples(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgCountSamplesFailed, err)
	}
	if count <= s.cfg.HistoryCap {
		return 0, nil
	}

	deleted, err = s.repo.DeleteOldestPriceSamples(ctx, s.cfg.PruneBatch)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgDeleteSamplesFailed, err)
	}
	metrics.PriceSamplesPruned.Add(float64(deleted))
	logger.FromContext(ctx).Info(LogMsgHistoryPruned, "count", count, "deleted", deleted)
	return deleted, nil
}

// setPrice stores the new price and appends the matching sample
func setPrice(ctx context.Context, tx repository.StockOps, stockID string, price decimal.Decimal, at time.Time) error {
	if err := tx.UpdateStockPrice(ctx, stockID, price); err != nil {
		return fmt.Errorf(ErrMsgUpdatePriceFailed, err)
	}
	if err := tx.InsertPriceSample(ctx, domain.PriceSample{StockID: stockID, Price: price, RecordedAt: at}); err != nil {
		return fmt.Errorf(ErrMsgRecordSampleFailed, err)
	}
	return nil
}
