package stock

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/ledger"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// Buy charges ceil(price*qty) credits, adds the shares and moves the price up. The stock row
// stays locked for the whole transaction so concurrent trades and ticks apply in sequence.
func (s *service) Buy(ctx context.Context, userID int64, stockID string, quantity int64) (trade *domain.StockTrade, err error) {
	defer func() { metrics.RecordOperation(OpBuyStock, err) }()

	if quantity <= 0 {
		return nil, fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidAmount)
	}

	now := s.now()
	err = s.withTx(ctx, func(tx repository.StockTx) error {
		stock, err := lockStock(ctx, tx, stockID)
		if err != nil {
			return err
		}

		cost, err := buyCost(stock.Price, quantity)
		if err != nil {
			return err
		}
		newPrice := impactPrice(stock.Price, s.cfg.ImpactRate, quantity, true)
		if err := checkPrice(newPrice); err != nil {
			return err
		}
		acc, err := debitOrLock(ctx, tx, userID, cost)
		if err != nil {
			return err
		}

		held, err := tx.GetHoldingForUpdate(ctx, userID, stockID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetHoldingFailed, err)
		}
		if quantity > math.MaxInt64-held {
			return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidAmount)
		}
		if err := tx.SetHolding(ctx, userID, stockID, held+quantity); err != nil {
			return fmt.Errorf(ErrMsgSetHoldingFailed, err)
		}

		if err := setPrice(ctx, tx, stockID, newPrice, now); err != nil {
			return err
		}

		trade = &domain.StockTrade{
			StockID:    stockID,
			Quantity:   quantity,
			Credits:    cost,
			OldPrice:   stock.Price,
			NewPrice:   newPrice,
			NewBalance: acc.Balance,
			Holding:    held + quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	recordTrade(trade, SideBuy)
	metrics.RecordBurn(SinkStockBuy, trade.Credits)
	logger.FromContext(ctx).Info(LogMsgStockBought, logger.AttrKeyUserID, userID, "stock_id", stockID,
		"quantity", quantity, "cost", trade.Credits, "new_price", trade.NewPrice.String())
	return trade, nil
}

// Sell pays floor(price*qty) credits, removes the shares and moves the price down
func (s *service) Sell(ctx context.Context, userID int64, stockID string, quantity int64) (trade *domain.StockTrade, err error) {
	defer func() { metrics.RecordOperation(OpSellStock, err) }()

	if quantity <= 0 {
		return nil, fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidAmount)
	}

	now := s.now()
	err = s.withTx(ctx, func(tx repository.StockTx) error {
		stock, err := lockStock(ctx, tx, stockID)
		if err != nil {
			return err
		}

		held, err := tx.GetHoldingForUpdate(ctx, userID, stockID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetHoldingFailed, err)
		}
		if held < quantity {
			return fmt.Errorf(ErrMsgNotEnoughSharesFmt, stockID, held, quantity, domain.ErrInsufficientShares)
		}
		if err := tx.SetHolding(ctx, userID, stockID, held-quantity); err != nil {
			return fmt.Errorf(ErrMsgSetHoldingFailed, err)
		}

		proceeds, err := sellProceeds(stock.Price, quantity)
		if err != nil {
			return err
		}
		var acc *domain.Account
		if proceeds > 0 {
			acc, err = ledger.Credit(ctx, tx, userID, proceeds)
		} else {
			acc, err = tx.GetAccountForUpdate(ctx, userID)
		}
		if err != nil {
			return err
		}

		newPrice := impactPrice(stock.Price, s.cfg.ImpactRate, quantity, false)
		if err := setPrice(ctx, tx, stockID, newPrice, now); err != nil {
			return err
		}

		trade = &domain.StockTrade{
			StockID:    stockID,
			Quantity:   quantity,
			Credits:    proceeds,
			OldPrice:   stock.Price,
			NewPrice:   newPrice,
			NewBalance: acc.Balance,
			Holding:    held - quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	recordTrade(trade, SideSell)
	metrics.RecordMint(SourceStockSell, trade.Credits)
	logger.FromContext(ctx).Info(LogMsgStockSold, logger.AttrKeyUserID, userID, "stock_id", stockID,
		"quantity", quantity, "proceeds", trade.Credits, "new_price", trade.NewPrice.String())
	return trade, nil
}

func lockStock(ctx context.Context, tx repository.StockOps, stockID string) (*domain.Stock, error) {
	stock, err := tx.GetStockForUpdate(ctx, stockID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStockFailed, err)
	}
	if stock == nil {
		return nil, fmt.Errorf(ErrMsgStockNotFoundFmt, stockID, domain.ErrStockNotFound)
	}
	return stock, nil
}

// debitOrLock debits a positive cost, or just locks the account when a worthless stock costs nothing
func debitOrLock(ctx context.Context, tx repository.AccountOps, userID, cost int64) (*domain.Account, error) {
	if cost > 0 {
		return ledger.Debit(ctx, tx, userID, cost)
	}
	acc, err := tx.GetAccountForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	return acc, nil
}

func recordTrade(trade *domain.StockTrade, side string) {
	metrics.SharesTraded.WithLabelValues(trade.StockID, side).Add(float64(trade.Quantity))
	metrics.StockPrice.WithLabelValues(trade.StockID).Set(trade.NewPrice.InexactFloat64())
}
