package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParam      = "Invalid %s"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
)

// User-facing messages derived from domain errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	// Catalog lookups
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgJobNotFoundError   = "Job not found"
	ErrMsgStockNotFoundError = "Stock not found"
	ErrMsgTradeNotFoundError = "Trade not found"

	// Balances and holdings
	ErrMsgNotEnoughMoneyError  = "Not enough credits"
	ErrMsgInsufficientItemsErr = "Not enough items"
	ErrMsgNotInInventoryError  = "You don't have that item"
	ErrMsgNotEnoughSharesError = "You don't own enough shares"

	// Employment
	ErrMsgAlreadyEmployedError = "You already have a job. Resign first"
	ErrMsgNotEmployedError     = "You don't have a job"
	ErrMsgNoChallengeError     = "No work in progress. Start working first"
	ErrMsgChallengeOpenError   = "Finish your current work first"

	// Trades
	ErrMsgTradeClosedError   = "That trade is already closed"
	ErrMsgWrongAcceptorError = "Only the other party can respond to this trade"
	ErrMsgNotTradePartyError = "You are not part of this trade"

	// Validation
	ErrMsgAmountPositiveError   = "Amount must be positive"
	ErrMsgInvalidTradeSideError = "Each side of a trade must be one item or some credits"
	ErrMsgSelfTargetError       = "You can't target yourself"
	ErrMsgDuplicateError        = "That already exists"
)

// Success messages
const (
	MsgTransferCompleted = "Transfer completed"
	MsgDailyClaimed      = "Daily reward claimed"
	MsgRobSucceeded      = "Robbery succeeded"
	MsgRobFailed         = "Robbery failed"
	MsgBalanceAdjusted   = "Balance updated"
	MsgInventoryUpdated  = "Inventory updated"
	MsgItemPurchased     = "Item purchased"
	MsgItemSold          = "Item sold"
	MsgApplicationHired  = "You got the job"
	MsgApplicationDenied = "Application rejected"
	MsgResigned          = "You resigned"
	MsgWorkStarted       = "Work started"
	MsgWorkCorrect       = "Good work"
	MsgWorkIncorrect     = "Wrong answer"
	MsgSharesBought      = "Shares bought"
	MsgSharesSold        = "Shares sold"
	MsgTradeProposed     = "Trade proposed"
	MsgTradeAccepted     = "Trade accepted"
	MsgTradeRejected     = "Trade rejected"
	MsgTradeCancelled    = "Trade cancelled"
	MsgCreated           = "Created"
)
