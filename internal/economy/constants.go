package economy

import "time"

// ==================== Catalog Cache ====================

const (
	// CacheSchemaVersion is bumped when the cached entry layout changes so old entries are dropped
	CacheSchemaVersion = "1.0"

	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute

	cacheKeyAll        = "catalog:all"
	cacheKeyItemPrefix = "item:"
)

// ==================== Metrics ====================

// Operation names used for metrics
const (
	OpBuyItem     = "buy_item"
	OpSellItem    = "sell_item"
	OpAddShopItem = "add_shop_item"

	SinkShop   = "shop"
	SourceShop = "shop"
)

// ==================== Error Messages ====================

// Formatted error messages for validation
const (
	ErrMsgInvalidQuantityFmt = "invalid quantity: %d: %w"
	ErrMsgItemNotOwnedFmt    = "%s (have %d, selling %d): %w"
	ErrMsgItemNotFoundFmt    = "item not found: %s: %w"
	ErrMsgInvalidShopItemFmt = "invalid shop item: %s: %w"
)

// Database operation error messages
const (
	ErrMsgGetItemFailed           = "failed to get item: %w"
	ErrMsgGetItemsFailed          = "failed to get shop items: %w"
	ErrMsgCountItemsFailed        = "failed to count shop items: %w"
	ErrMsgInsertItemFailed        = "failed to insert shop item: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgBuyItemCalled  = "BuyItem called"
	LogMsgItemPurchased  = "Item purchased"
	LogMsgSellItemCalled = "SellItem called"
	LogMsgItemSold       = "Item sold"
	LogMsgShopItemAdded  = "Shop item added"
)
