package diagnostics

// Diagnostic codes. L-codes originate from scanner flags, V-codes from
// the structural validator.
const (
	ErrUnknownToken       = "L0001"
	ErrUnterminatedString = "L0002"
	ErrUnterminatedChar   = "L0003"
	WarnUnterminatedBlock = "L0004"
	ErrUnmatchedClose     = "V0001"
	ErrDelimiterMismatch  = "V0002"
	ErrUnterminatedOpen   = "V0003"
	WarnMissingTerminator = "V0004"
)
