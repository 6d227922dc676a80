package catalog

// SchemaName identifies the embedded catalog schema in validation errors
const SchemaName = "catalog.schema.json"

// File operation error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
)

// Validation format strings, used with fmt.Errorf and ErrInvalidCatalog
const (
	ErrFmtEmpty             = "%w: no items, jobs or stocks defined"
	ErrFmtEntryEmptyID      = "%w: %s at index %d has an empty id"
	ErrFmtEntryEmptyName    = "%w: %s '%s' has an empty name"
	ErrFmtDuplicateID       = "%w: duplicate %s '%s'"
	ErrFmtNonPositivePrice  = "%w: %s '%s' must have a positive price"
	ErrFmtNonPositivePay    = "%w: job '%s' must have a positive hourly_pay"
	ErrFmtChanceOutOfBounds = "%w: job '%s' acceptance_chance must be within [0, 1]"
)

// Seed error messages
const (
	ErrMsgSeedItemFailed  = "failed to seed item '%s': %w"
	ErrMsgSeedJobFailed   = "failed to seed job '%s': %w"
	ErrMsgSeedStockFailed = "failed to seed stock '%s': %w"
)

// Log messages
const (
	LogMsgSeedCompleted = "Catalog seed completed"
	LogMsgEntryExists   = "Catalog entry already present, skipping"
)

// Entry kinds used in messages
const (
	kindItem  = "item"
	kindJob   = "job"
	kindStock = "stock"
)
