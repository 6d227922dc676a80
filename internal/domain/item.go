package domain

// ShopItem is an immutable catalog entry
type ShopItem struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
}

// SellPrice returns the credits paid for selling one unit back to the shop
func (i ShopItem) SellPrice() int64 {
	return i.Price * SellPriceNumerator / SellPriceDenominator
}

// ShopPage is one page of the shop catalog
type ShopPage struct {
	Items      []ShopItem `json:"items"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
}

// Purchase is the result of buying a shop item
type Purchase struct {
	Item       ShopItem `json:"item"`
	NewBalance int64    `json:"new_balance"`
	Quantity   int64    `json:"quantity"`
}

// Sale is the result of selling items back to the shop
type Sale struct {
	Item       ShopItem `json:"item"`
	Sold       int64    `json:"sold"`
	Proceeds   int64    `json:"proceeds"`
	NewBalance int64    `json:"new_balance"`
}
