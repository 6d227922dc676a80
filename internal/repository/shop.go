package repository

import (
	"context"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// Shop defines the persistence needed for the item catalog and purchases
type Shop interface {
	// GetShopItem returns nil when the item does not exist
	GetShopItem(ctx context.Context, itemID string) (*domain.ShopItem, error)
	GetShopItems(ctx context.Context) ([]domain.ShopItem, error)
	CountShopItems(ctx context.Context) (int, error)
	ListShopItems(ctx context.Context, limit, offset int) ([]domain.ShopItem, error)
	// InsertShopItem wraps domain.ErrDuplicate when the id is taken
	InsertShopItem(ctx context.Context, item *domain.ShopItem) error
	BeginTx(ctx context.Context) (ShopTx, error)
}

// ShopTx defines the interface for shop transactions
type ShopTx interface {
	Tx
	AccountOps
	ItemOps
}
