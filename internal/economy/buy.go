package economy

import (
	"context"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/inventory"
	"github.com/osse101/SpaceBot_Go/internal/ledger"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// BuyItem charges the catalog price and grants one unit in a single transaction
func (s *service) BuyItem(ctx context.Context, userID int64, itemID string) (purchase *domain.Purchase, err error) {
	defer func() { metrics.RecordOperation(OpBuyItem, err) }()

	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyItemCalled, logger.AttrKeyUserID, userID, "item_id", itemID)

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	err = s.withTx(ctx, func(tx repository.ShopTx) error {
		acc, err := ledger.Debit(ctx, tx, userID, item.Price)
		if err != nil {
			return err
		}
		if _, err := inventory.Grant(ctx, tx, userID, item.ItemID, 1); err != nil {
			return err
		}
		purchase = &domain.Purchase{Item: *item, NewBalance: acc.Balance, Quantity: 1}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBurn(SinkShop, item.Price)
	metrics.ItemsBought.WithLabelValues(item.ItemID).Inc()
	log.Info(LogMsgItemPurchased, logger.AttrKeyUserID, userID, "item_id", item.ItemID, "price", item.Price)
	return purchase, nil
}
