// Package weblog is a colorized structured logger for webhook-receiving
// HTTP services. Lines are styled per severity and per semantic field, and
// multi-line payloads restate the severity color on every physical line so
// they survive line-splitting log collectors.
package weblog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"weblog/internal/observability"
)

// ColorMode selects how New decides whether to emit ANSI codes.
type ColorMode uint8

const (
	// ColorAuto enables color when the sink is a terminal.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode maps a configuration string to its ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, errors.Errorf("unknown color mode %q", s)
}

// Logger emits formatted records to a single sink. Construct one at service
// startup and pass the handle to every component that logs.
type Logger struct {
	name  string
	level atomic.Int32
	fmtr  Formatter

	mu  sync.Mutex
	out io.Writer
}

// New builds a logger named name writing to w, dropping records below the
// given minimum level.
func New(name string, level Level, mode ColorMode, w io.Writer) *Logger {
	l := &Logger{name: name, out: w}
	l.level.Store(int32(level))
	l.fmtr.NoColor = !colorEnabled(mode, w)
	return l
}

func colorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Name returns the logger name used in access log lines.
func (l *Logger) Name() string { return l.name }

// Level returns the current minimum emitted severity.
func (l *Logger) Level() Level { return Level(l.level.Load()) }

// SetLevel changes the minimum emitted severity at runtime.
func (l *Logger) SetLevel(level Level) { l.level.Store(int32(level)) }

// Emit formats rec and writes exactly one newline-terminated line. Records
// below the logger's threshold are dropped.
func (l *Logger) Emit(rec *Record) {
	if rec.Level < l.Level() {
		return
	}
	line := l.fmtr.Format(rec) + "\n"
	l.mu.Lock()
	io.WriteString(l.out, line)
	l.mu.Unlock()
	observability.LineCounter.Inc()
}

func (l *Logger) log(level Level, template string, args map[string]any) {
	l.Emit(&Record{Level: level, Template: template, Args: args})
}

// Debug emits a record at debug level.
func (l *Logger) Debug(template string, args map[string]any) { l.log(Debug, template, args) }

// Info emits a record at info level.
func (l *Logger) Info(template string, args map[string]any) { l.log(Info, template, args) }

// Warning emits a record at warning level.
func (l *Logger) Warning(template string, args map[string]any) { l.log(Warning, template, args) }

// Error emits a record at error level.
func (l *Logger) Error(template string, args map[string]any) { l.log(Error, template, args) }

// Critical emits a record at critical level.
func (l *Logger) Critical(template string, args map[string]any) { l.log(Critical, template, args) }
