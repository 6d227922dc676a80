package stock

// PriceScale is the number of decimal places prices are rounded to after every change
const PriceScale = 4

// MaxPriceDigits is the number of integer digits a stored price may have
const MaxPriceDigits = 16

// Operation names used for metrics
const (
	OpBuyStock     = "buy_stock"
	OpSellStock    = "sell_stock"
	OpFluctuate    = "fluctuate"
	OpPruneHistory = "prune_history"
	OpAddStock     = "add_stock"

	SinkStockBuy    = "stock_buy"
	SourceStockSell = "stock_sell"

	SideBuy  = "buy"
	SideSell = "sell"
)

// Background job names
const (
	JobNameFluctuation = "market_fluctuation"
	JobNamePrune       = "price_history_prune"
)

// Formatted error messages
const (
	ErrMsgStockNotFoundFmt   = "stock %s: %w"
	ErrMsgInvalidQuantityFmt = "invalid quantity: %d: %w"
	ErrMsgTradeTooLargeFmt   = "trade total %s exceeds the credit range: %w"
	ErrMsgPriceTooLargeFmt   = "price %s exceeds the storable range: %w"
	ErrMsgInvalidStockFmt    = "invalid stock: %s: %w"
	ErrMsgInvalidOrderFmt    = "invalid order %q: %w"
	ErrMsgNotEnoughSharesFmt = "%s (have %d, selling %d): %w"
	ErrMsgFluctuateStockFmt  = "fluctuate %s: %w"
)

// Database operation error messages
const (
	ErrMsgGetStocksFailed         = "failed to get stocks: %w"
	ErrMsgGetStockFailed          = "failed to get stock: %w"
	ErrMsgCountStocksFailed       = "failed to count stocks: %w"
	ErrMsgGetHoldingFailed        = "failed to get holding: %w"
	ErrMsgSetHoldingFailed        = "failed to set holding: %w"
	ErrMsgGetPortfolioFailed      = "failed to get portfolio: %w"
	ErrMsgGetHistoryFailed        = "failed to get price history: %w"
	ErrMsgUpdatePriceFailed       = "failed to update price: %w"
	ErrMsgRecordSampleFailed      = "failed to record price sample: %w"
	ErrMsgCountSamplesFailed      = "failed to count price samples: %w"
	ErrMsgDeleteSamplesFailed     = "failed to delete price samples: %w"
	ErrMsgInsertStockFailed       = "failed to insert stock: %w"
	ErrMsgGetAccountFailed        = "failed to get account: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgStockBought     = "Stock bought"
	LogMsgStockSold       = "Stock sold"
	LogMsgMarketTick      = "Market tick applied"
	LogMsgHistoryPruned   = "Price history pruned"
	LogMsgStockAdded      = "Stock added"
	LogMsgFluctuateFailed = "Failed to fluctuate stock"
)
