package domain

// InventoryEntry is a user's quantity of one catalog item. Quantities are always positive;
// entries that reach zero are removed.
type InventoryEntry struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// DigOutcome enumerates what a dig can turn up
type DigOutcome string

const (
	DigNothing DigOutcome = "nothing"
	DigCredits DigOutcome = "credits"
	DigItem    DigOutcome = "item"
)

// DigResult describes what a dig produced
type DigResult struct {
	Outcome DigOutcome `json:"outcome"`
	Credits int64      `json:"credits,omitempty"`
	Item    *ShopItem  `json:"item,omitempty"`
}
