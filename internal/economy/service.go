package economy

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/repository"
	"github.com/osse101/SpaceBot_Go/internal/utils"
)

// Service defines the interface for shop operations
type Service interface {
	GetShopItems(ctx context.Context) ([]domain.ShopItem, error)
	// ListItems returns one page of the catalog. Out-of-range pages are clamped.
	ListItems(ctx context.Context, page int) (*domain.ShopPage, error)
	BuyItem(ctx context.Context, userID int64, itemID string) (*domain.Purchase, error)
	SellItem(ctx context.Context, userID int64, itemID string, quantity int64) (*domain.Sale, error)
	AddShopItem(ctx context.Context, item *domain.ShopItem) error
}

// Config tunes the catalog cache
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

// DefaultConfig returns the standard cache settings
func DefaultConfig() Config {
	return Config{CacheSize: DefaultCacheSize, CacheTTL: DefaultCacheTTL}
}

type service struct {
	repo  repository.Shop
	cache *catalogCache
}

// NewService creates a new shop service
func NewService(repo repository.Shop, cfg Config) Service {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		cache: newCatalogCache(cfg.CacheSize, cfg.CacheTTL),
	}
}

func (s *service) GetShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	if items, ok := s.cache.All(); ok {
		return slices.Clone(items), nil
	}
	items, err := s.repo.GetShopItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get shop items", "error", err)
		return nil, fmt.Errorf(ErrMsgGetItemsFailed, err)
	}
	s.cache.SetAll(items)
	return slices.Clone(items), nil
}

func (s *service) ListItems(ctx context.Context, page int) (*domain.ShopPage, error) {
	count, err := s.repo.CountShopItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountItemsFailed, err)
	}
	page, total := utils.ClampPage(page, count, domain.ShopPageSize)

	items, err := s.repo.ListShopItems(ctx, domain.ShopPageSize, utils.PageOffset(page, domain.ShopPageSize))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemsFailed, err)
	}
	if items == nil {
		items = []domain.ShopItem{}
	}
	return &domain.ShopPage{Items: items, Page: page, TotalPages: total}, nil
}

func (s *service) AddShopItem(ctx context.Context, item *domain.ShopItem) (err error) {
	defer func() { metrics.RecordOperation(OpAddShopItem, err) }()

	if err := validateShopItem(item); err != nil {
		return err
	}
	if err := s.repo.InsertShopItem(ctx, item); err != nil {
		if domain.IsExpected(err) {
			return err
		}
		return fmt.Errorf(ErrMsgInsertItemFailed, err)
	}

	s.cache.InvalidateAll()
	s.cache.SetItem(*item)
	logger.FromContext(ctx).Info(LogMsgShopItemAdded, "item_id", item.ItemID, "price", item.Price)
	return nil
}

// getItem resolves a catalog item, consulting the cache first
func (s *service) getItem(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	if item, ok := s.cache.Item(itemID); ok {
		return item, nil
	}
	item, err := s.repo.GetShopItem(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get item", "error", err, "item_id", itemID)
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, itemID, domain.ErrItemNotFound)
	}
	s.cache.SetItem(*item)
	return item, nil
}

func (s *service) withTx(ctx context.Context, fn func(tx repository.ShopTx) error) error {
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
