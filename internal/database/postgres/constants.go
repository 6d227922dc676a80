package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a row references a missing catalog entry
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error messages
const (
	ErrMsgBeginTx        = "failed to begin transaction: %w"
	ErrMsgEnsureAccount  = "failed to ensure account %d: %w"
	ErrMsgScanRow        = "failed to scan %s: %w"
	ErrMsgQuery          = "failed to query %s: %w"
	ErrMsgExec           = "failed to write %s: %w"
	ErrMsgParsePrice     = "failed to parse price %q: %w"
	ErrMsgNegativeAmount = "negative %s for %s"
)
