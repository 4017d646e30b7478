package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// config errors
const (
	ErrInvalidPort      = Error("invalid port")
	ErrInvalidSize      = Error("invalid size")
	ErrInvalidDuration  = Error("invalid duration")
	ErrInvalidLogLevel  = Error("invalid log level")
	ErrInvalidLogFormat = Error("invalid log format")
)

// request body errors
const (
	ErrMalformedJSON       = Error("malformed JSON body")
	ErrBodyTooLarge        = Error("request body too large")
	ErrUnsupportedCharset  = Error("unsupported charset")
	ErrUnsupportedEncoding = Error("unsupported content encoding")
)
