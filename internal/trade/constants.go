package trade

// Operation names used for metrics
const (
	OpProposeTrade = "propose_trade"
	OpAcceptTrade  = "accept_trade"
	OpRejectTrade  = "reject_trade"
	OpCancelTrade  = "cancel_trade"
)

// Formatted error messages
const (
	ErrMsgTradeNotFoundFmt   = "trade %d: %w"
	ErrMsgTradeNotPendingFmt = "trade %d is %s: %w"
	ErrMsgInvalidSideFmt     = "%s side: %s: %w"
	ErrMsgSideNotHeldFmt     = "user %d does not hold %s: %w"
)

// Database operation error messages
const (
	ErrMsgGetTradeFailed          = "failed to get trade: %w"
	ErrMsgListTradesFailed        = "failed to list trades: %w"
	ErrMsgInsertTradeFailed       = "failed to insert trade: %w"
	ErrMsgUpdateTradeFailed       = "failed to update trade: %w"
	ErrMsgGetQuantityFailed       = "failed to get item quantity: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgTradeProposed = "Trade proposed"
	LogMsgTradeResolved = "Trade resolved"
)
