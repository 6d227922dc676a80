package validation

// SchemaBaseURL prefixes schema names to form the resource URL the compiler resolves
const SchemaBaseURL = "https://spacebot.local/schemas/"

const (
	ErrMsgParseSchemaFailed   = "failed to parse schema %s: %w"
	ErrMsgAddSchemaFailed     = "failed to add schema resource %s: %w"
	ErrMsgCompileSchemaFailed = "failed to compile schema %s: %w"
	ErrMsgParseDataFailed     = "failed to parse JSON data: %w"
	ErrMsgEncodeValueFailed   = "failed to encode value for validation: %w"
)

const (
	RootLocation   = "(root)"
	LineFmtKeyword = "  - at %s: %s validation failed"
	LineFmtGeneric = "  - at %s: validation failed"
)
