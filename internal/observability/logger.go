package observability

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger reports host process lifecycle events (startup, fatal init
// failures). Formatted access output goes through the weblog handle instead.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Common field names for structured logs.
const (
	FieldAddress = "addr"
	FieldPath    = "path"
	FieldLevel   = "level"
	FieldError   = "err"
)
