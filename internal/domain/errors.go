package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog lookups
	ErrMsgItemNotFound  = "item not found"
	ErrMsgJobNotFound   = "job not found"
	ErrMsgStockNotFound = "stock not found"
	ErrMsgTradeNotFound = "trade not found"

	// Balance, inventory and holdings
	ErrMsgInsufficientFunds  = "insufficient funds"
	ErrMsgInsufficientItem   = "insufficient item quantity"
	ErrMsgItemNotOwned       = "item not owned"
	ErrMsgInsufficientShares = "insufficient shares"

	// Employment
	ErrMsgAlreadyEmployed = "already employed"
	ErrMsgNotEmployed     = "not employed"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Trade and work state
	ErrMsgTradeNotPending      = "trade is not pending"
	ErrMsgWrongAcceptor        = "only the counterparty can respond to this trade"
	ErrMsgNotTradeParty        = "not a party to this trade"
	ErrMsgNoPendingChallenge   = "no pending work challenge"
	ErrMsgChallengeOutstanding = "work challenge already in progress"

	// Validation
	ErrMsgInvalidAmount    = "amount must be positive"
	ErrMsgInvalidTradeSide = "invalid trade side"
	ErrMsgSelfTarget       = "cannot target yourself"
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgDuplicate        = "already exists"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrJobNotFound   = errors.New(ErrMsgJobNotFound)
	ErrStockNotFound = errors.New(ErrMsgStockNotFound)
	ErrTradeNotFound = errors.New(ErrMsgTradeNotFound)

	ErrInsufficientFunds  = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientItem   = errors.New(ErrMsgInsufficientItem)
	ErrItemNotOwned       = errors.New(ErrMsgItemNotOwned)
	ErrInsufficientShares = errors.New(ErrMsgInsufficientShares)

	ErrAlreadyEmployed = errors.New(ErrMsgAlreadyEmployed)
	ErrNotEmployed     = errors.New(ErrMsgNotEmployed)

	// ErrOnCooldown is matched by cooldown.ErrOnCooldown via errors.Is.
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrTradeNotPending      = errors.New(ErrMsgTradeNotPending)
	ErrWrongAcceptor        = errors.New(ErrMsgWrongAcceptor)
	ErrNotTradeParty        = errors.New(ErrMsgNotTradeParty)
	ErrNoPendingChallenge   = errors.New(ErrMsgNoPendingChallenge)
	ErrChallengeOutstanding = errors.New(ErrMsgChallengeOutstanding)

	ErrInvalidAmount    = errors.New(ErrMsgInvalidAmount)
	ErrInvalidTradeSide = errors.New(ErrMsgInvalidTradeSide)
	ErrSelfTarget       = errors.New(ErrMsgSelfTarget)
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrDuplicate        = errors.New(ErrMsgDuplicate)
)

// ErrorKind groups domain errors into the categories callers render differently.
type ErrorKind string

const (
	KindNone         ErrorKind = ""
	KindNotFound     ErrorKind = "not_found"
	KindInsufficient ErrorKind = "insufficient"
	KindEmployment   ErrorKind = "employment"
	KindCooldown     ErrorKind = "cooldown"
	KindInvalidState ErrorKind = "invalid_state"
	KindValidation   ErrorKind = "validation"
	KindFault        ErrorKind = "fault"
)

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrItemNotFound, KindNotFound},
	{ErrJobNotFound, KindNotFound},
	{ErrStockNotFound, KindNotFound},
	{ErrTradeNotFound, KindNotFound},
	{ErrInsufficientFunds, KindInsufficient},
	{ErrInsufficientItem, KindInsufficient},
	{ErrItemNotOwned, KindInsufficient},
	{ErrInsufficientShares, KindInsufficient},
	{ErrAlreadyEmployed, KindEmployment},
	{ErrNotEmployed, KindEmployment},
	{ErrOnCooldown, KindCooldown},
	{ErrTradeNotPending, KindInvalidState},
	{ErrWrongAcceptor, KindInvalidState},
	{ErrNotTradeParty, KindInvalidState},
	{ErrNoPendingChallenge, KindInvalidState},
	{ErrChallengeOutstanding, KindInvalidState},
	{ErrInvalidAmount, KindValidation},
	{ErrInvalidTradeSide, KindValidation},
	{ErrSelfTarget, KindValidation},
	{ErrInvalidInput, KindValidation},
	{ErrDuplicate, KindValidation},
}

// KindOf classifies err. Errors outside the taxonomy are faults.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindFault
}

// IsExpected reports whether err is a recoverable economy outcome rather than a fault.
func IsExpected(err error) bool {
	kind := KindOf(err)
	return kind != KindNone && kind != KindFault
}
