package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock is a tradable ticker with a non-negative price
type Stock struct {
	StockID string          `json:"stock_id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
}

// PriceSample is one entry of the append-only price log
type PriceSample struct {
	StockID    string          `json:"stock_id"`
	Price      decimal.Decimal `json:"price"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// Holding is a user's position in one stock
type Holding struct {
	UserID   int64  `json:"user_id"`
	StockID  string `json:"stock_id"`
	Quantity int64  `json:"quantity"`
}

// PortfolioEntry values a holding at the current price
type PortfolioEntry struct {
	Stock    Stock           `json:"stock"`
	Quantity int64           `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// StockTrade is the result of a buy or sell
type StockTrade struct {
	StockID    string          `json:"stock_id"`
	Quantity   int64           `json:"quantity"`
	Credits    int64           `json:"credits"`
	OldPrice   decimal.Decimal `json:"old_price"`
	NewPrice   decimal.Decimal `json:"new_price"`
	NewBalance int64           `json:"new_balance"`
	Holding    int64           `json:"holding"`
}

// StockOrder selects the sort order for the market overview
type StockOrder string

const (
	StockOrderHighest StockOrder = "highest"
	StockOrderLowest  StockOrder = "lowest"
)

// StockPage is one page of the market overview
type StockPage struct {
	Stocks     []Stock    `json:"stocks"`
	Order      StockOrder `json:"order"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
}

// StockTrend compares the latest price to the latest price before the trend window.
// Change is nil when either sample is missing.
type StockTrend struct {
	Stock    Stock            `json:"stock"`
	Latest   *decimal.Decimal `json:"latest,omitempty"`
	Previous *decimal.Decimal `json:"previous,omitempty"`
	Change   *decimal.Decimal `json:"change,omitempty"`
}
