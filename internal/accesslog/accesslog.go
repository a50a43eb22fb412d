// Package accesslog emits one colorized log line per completed HTTP
// exchange, choosing severity and status color from the response status.
package accesslog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"weblog"
	"weblog/internal/observability"
	"weblog/internal/style"
)

// Template is the fixed access line body.
const Template = `{logger} "{method} {path} {version}" => {status} {time}`

// Exchange carries the facts of one finished request/response pair.
type Exchange struct {
	Method     string
	Path       string // path including the query string
	Scheme     string
	ProtoMajor int
	ProtoMinor int
	Status     int
	Reason     string
	Elapsed    time.Duration
}

// Logger writes access lines through a weblog handle. It holds no state of
// its own.
type Logger struct {
	log *weblog.Logger
}

// New returns an access logger emitting through log.
func New(log *weblog.Logger) *Logger { return &Logger{log: log} }

// Log classifies the exchange and emits exactly one record: debug for a
// handled status, error otherwise. The classification travels with the
// record, so the status field is colored for this exchange regardless of
// what other goroutines are logging.
func (a *Logger) Log(ex Exchange) {
	cls := style.Classify(ex.Status)
	level := weblog.Debug
	if cls == style.Success {
		observability.SuccessCounter.Inc()
	} else {
		level = weblog.Error
		observability.ErrorCounter.Inc()
	}
	ms := int(math.Round(ex.Elapsed.Seconds() * 1000))
	a.log.Emit(&weblog.Record{
		Level:    level,
		Template: Template,
		Status:   cls,
		Args: map[string]any{
			"logger":  a.log.Name(),
			"method":  ex.Method,
			"path":    ex.Path,
			"version": fmt.Sprintf("%s/%d.%d", strings.ToUpper(ex.Scheme), ex.ProtoMajor, ex.ProtoMinor),
			"status":  strconv.Itoa(ex.Status) + ":" + ex.Reason,
			"time":    strconv.Itoa(ms) + "ms",
		},
	})
}
