package inventory

// Operation names used for metrics
const (
	OpAddToInventory = "add_to_inventory"
	OpRemoveItem     = "remove_item"
	OpDig            = "dig"

	SourceDig = "dig"
)

// Database operation error messages
const (
	ErrMsgGetQuantityFailed       = "failed to get item quantity: %w"
	ErrMsgSetQuantityFailed       = "failed to set item quantity: %w"
	ErrMsgGetItemFailed           = "failed to get item: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgDigCompleted = "Dig completed"
)
