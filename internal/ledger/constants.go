package ledger

// Operation names used for metrics and logs
const (
	OpAddBalance    = "add_balance"
	OpRemoveBalance = "remove_balance"
	OpTransfer      = "transfer"
	OpClaimDaily    = "claim_daily"
	OpRob           = "rob"
)

// Mint and sink labels
const (
	SourceDaily = "daily"
	SourceAdmin = "admin"
	SinkAdmin   = "admin"
	SinkRobFine = "rob_fine"
)

// Database operation error messages
const (
	ErrMsgGetAccountFailed        = "failed to get account: %w"
	ErrMsgUpdateAccountFailed     = "failed to update account: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgTransferCompleted = "Transfer completed"
	LogMsgDailyClaimed      = "Daily reward claimed"
	LogMsgRobSucceeded      = "Robbery succeeded"
	LogMsgRobFailed         = "Robbery failed"
)
