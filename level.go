package weblog

import (
	"strings"

	"github.com/pkg/errors"

	"weblog/internal/ansi"
)

// Level is the closed set of severities, ascending.
type Level uint8

const (
	Debug Level = iota
	Info
	Warning
	Error
	Critical
)

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Critical:
		return "CRITICAL"
	}
	return "UNKNOWN"
}

// Style returns the composite ANSI style rendering lines of this severity.
// A level outside the known set has no style.
func (l Level) Style() string {
	switch l {
	case Debug, Info:
		return ansi.Dim
	case Warning:
		return ansi.Yellow
	case Error:
		return ansi.Red
	case Critical:
		return ansi.Magenta + ansi.Bold
	}
	return ""
}

// ParseLevel maps a configuration string to its Level. An unknown name is an
// initialization error, never a silent default.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARNING", "WARN":
		return Warning, nil
	case "ERROR":
		return Error, nil
	case "CRITICAL":
		return Critical, nil
	}
	return Info, errors.Errorf("unknown log level %q", s)
}
