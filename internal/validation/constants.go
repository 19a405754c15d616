package validation

// Error Messages
const (
	ErrMsgParseSchema   = "failed to parse schema"
	ErrMsgAddSchema     = "failed to add schema resource"
	ErrMsgCompileSchema = "failed to compile schema"
	ErrMsgUnknownSchema = "schema not registered"
)
