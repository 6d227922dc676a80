package domain

import "time"

// TradeStatus is the lifecycle state of a trade offer. Every status other than pending is terminal.
type TradeStatus string

const (
	TradePending   TradeStatus = "pending"
	TradeAccepted  TradeStatus = "accepted"
	TradeRejected  TradeStatus = "rejected"
	TradeCancelled TradeStatus = "cancelled"
)

// TradeSideKind tags which half of a TradeSide is set
type TradeSideKind string

const (
	TradeSideItem    TradeSideKind = "item"
	TradeSideCredits TradeSideKind = "credits"
)

// TradeSide is either one unit of an item or an amount of credits
type TradeSide struct {
	Kind    TradeSideKind `json:"kind"`
	ItemID  string        `json:"item_id,omitempty"`
	Credits int64         `json:"credits,omitempty"`
}

// ItemSide builds an item trade side
func ItemSide(itemID string) TradeSide {
	return TradeSide{Kind: TradeSideItem, ItemID: itemID}
}

// CreditSide builds a credit trade side
func CreditSide(amount int64) TradeSide {
	return TradeSide{Kind: TradeSideCredits, Credits: amount}
}

// TradeOffer is a two-party exchange held in escrow until accepted, rejected or cancelled
type TradeOffer struct {
	TradeID        int64       `json:"trade_id"`
	ProposerID     int64       `json:"proposer_id"`
	CounterpartyID int64       `json:"counterparty_id"`
	Offer          TradeSide   `json:"offer"`
	Request        TradeSide   `json:"request"`
	Status         TradeStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	ResolvedAt     *time.Time  `json:"resolved_at,omitempty"`
}

// IsParty reports whether userID is either side of the trade
func (t TradeOffer) IsParty(userID int64) bool {
	return userID == t.ProposerID || userID == t.CounterpartyID
}
