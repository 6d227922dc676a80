package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// Grant adds qty units of an item inside the caller's transaction and returns the new quantity
func Grant(ctx context.Context, tx repository.ItemOps, userID int64, itemID string, qty int64) (int64, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("%w: quantity %d", domain.ErrInvalidAmount, qty)
	}
	current, err := tx.GetItemQuantityForUpdate(ctx, userID, itemID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgGetQuantityFailed, err)
	}
	if err := tx.SetItemQuantity(ctx, userID, itemID, current+qty); err != nil {
		return 0, fmt.Errorf(ErrMsgSetQuantityFailed, err)
	}
	return current + qty, nil
}

// Take removes qty units of an item inside the caller's transaction. It fails with
// domain.ErrInsufficientItem when the user holds fewer than qty. A row reaching zero is deleted.
func Take(ctx context.Context, tx repository.ItemOps, userID int64, itemID string, qty int64) (int64, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("%w: quantity %d", domain.ErrInvalidAmount, qty)
	}
	current, err := tx.GetItemQuantityForUpdate(ctx, userID, itemID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgGetQuantityFailed, err)
	}
	if current < qty {
		return 0, fmt.Errorf("%w: %s (have %d, need %d)", domain.ErrInsufficientItem, itemID, current, qty)
	}
	if err := tx.SetItemQuantity(ctx, userID, itemID, current-qty); err != nil {
		return 0, fmt.Errorf(ErrMsgSetQuantityFailed, err)
	}
	return current - qty, nil
}
