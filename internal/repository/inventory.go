package repository

import (
	"context"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// Inventory defines the persistence needed for item holdings
type Inventory interface {
	GetInventory(ctx context.Context, userID int64) ([]domain.InventoryEntry, error)
	GetShopItem(ctx context.Context, itemID string) (*domain.ShopItem, error)
	GetShopItems(ctx context.Context) ([]domain.ShopItem, error)
	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx defines the interface for inventory transactions
type InventoryTx interface {
	Tx
	AccountOps
	ItemOps
}
