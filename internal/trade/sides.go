package trade

import (
	"context"
	"fmt"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/inventory"
	"github.com/osse101/SpaceBot_Go/internal/ledger"
	"github.com/osse101/SpaceBot_Go/internal/repository"
)

// validateSide checks that exactly one half of the side is set
func validateSide(label string, side domain.TradeSide) error {
	switch side.Kind {
	case domain.TradeSideItem:
		if side.ItemID == "" {
			return fmt.Errorf(ErrMsgInvalidSideFmt, label, "missing item id", domain.ErrInvalidTradeSide)
		}
		if side.Credits != 0 {
			return fmt.Errorf(ErrMsgInvalidSideFmt, label, "item side carries credits", domain.ErrInvalidTradeSide)
		}
	case domain.TradeSideCredits:
		if side.Credits <= 0 {
			return fmt.Errorf(ErrMsgInvalidSideFmt, label, "credits must be positive", domain.ErrInvalidAmount)
		}
		if side.ItemID != "" {
			return fmt.Errorf(ErrMsgInvalidSideFmt, label, "credit side names an item", domain.ErrInvalidTradeSide)
		}
	default:
		return fmt.Errorf(ErrMsgInvalidSideFmt, label, fmt.Sprintf("unknown kind %q", side.Kind), domain.ErrInvalidTradeSide)
	}
	return nil
}

// requireHeld checks the owner holds at least one unit of an item side
func requireHeld(ctx context.Context, tx repository.ItemOps, ownerID int64, side domain.TradeSide) error {
	if side.Kind != domain.TradeSideItem {
		return nil
	}
	qty, err := tx.GetItemQuantityForUpdate(ctx, ownerID, side.ItemID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetQuantityFailed, err)
	}
	if qty < 1 {
		return fmt.Errorf(ErrMsgSideNotHeldFmt, ownerID, side.ItemID, domain.ErrInsufficientItem)
	}
	return nil
}

// moveSide transfers one side of a trade from one party to the other
func moveSide(ctx context.Context, tx repository.TradeTx, side domain.TradeSide, from, to int64) error {
	switch side.Kind {
	case domain.TradeSideCredits:
		return ledger.Move(ctx, tx, from, to, side.Credits)
	case domain.TradeSideItem:
		if _, err := inventory.Take(ctx, tx, from, side.ItemID, 1); err != nil {
			return err
		}
		_, err := inventory.Grant(ctx, tx, to, side.ItemID, 1)
		return err
	default:
		return fmt.Errorf(ErrMsgInvalidSideFmt, "stored", string(side.Kind), domain.ErrInvalidTradeSide)
	}
}
