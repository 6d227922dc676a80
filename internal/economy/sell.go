package economy

import (
	"context"
	"fmt"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/inventory"
	"github.com/osse101/SpaceBot_Go/internal/ledger"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// SellItem returns quantity units to the shop for their sell price each
func (s *service) SellItem(ctx context.Context, userID int64, itemID string, quantity int64) (sale *domain.Sale, err error) {
	defer func() { metrics.RecordOperation(OpSellItem, err) }()

	log := logger.FromContext(ctx)
	log.Info(LogMsgSellItemCalled, logger.AttrKeyUserID, userID, "item_id", itemID, "quantity", quantity)

	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	proceeds := item.SellPrice() * quantity

	err = s.withTx(ctx, func(tx repository.ShopTx) error {
		held, err := tx.GetItemQuantityForUpdate(ctx, userID, item.ItemID)
		if err != nil {
			return fmt.Errorf(inventory.ErrMsgGetQuantityFailed, err)
		}
		if held < quantity {
			return fmt.Errorf(ErrMsgItemNotOwnedFmt, item.ItemID, held, quantity, domain.ErrItemNotOwned)
		}
		if _, err := inventory.Take(ctx, tx, userID, item.ItemID, quantity); err != nil {
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
		sale = &domain.Sale{Item: *item, Sold: quantity, Proceeds: proceeds, NewBalance: acc.Balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordMint(SourceShop, proceeds)
	metrics.ItemsSold.WithLabelValues(item.ItemID).Add(float64(quantity))
	log.Info(LogMsgItemSold, logger.AttrKeyUserID, userID, "item_id", item.ItemID, "quantity", quantity, "proceeds", proceeds)
	return sale, nil
}
