package economy

import (
	"fmt"
	"strings"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// validateQuantity validates the transaction quantity
func validateQuantity(quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidAmount)
	}
	return nil
}

// validateShopItem checks an admin-supplied catalog entry
func validateShopItem(item *domain.ShopItem) error {
	switch {
	case item == nil:
		return fmt.Errorf(ErrMsgInvalidShopItemFmt, "missing item", domain.ErrInvalidInput)
	case strings.TrimSpace(item.ItemID) == "":
		return fmt.Errorf(ErrMsgInvalidShopItemFmt, "empty item id", domain.ErrInvalidInput)
	case strings.TrimSpace(item.Name) == "":
		return fmt.Errorf(ErrMsgInvalidShopItemFmt, "empty name", domain.ErrInvalidInput)
	case item.Price <= 0:
		return fmt.Errorf(ErrMsgInvalidShopItemFmt, "price must be positive", domain.ErrInvalidAmount)
	}
	return nil
}
