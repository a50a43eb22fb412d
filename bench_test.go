package weblog

import (
	"io"
	"testing"
)

const benchTemplate = `{logger} "{method} {path} {version}" => {status} {time}`

func benchArgs() map[string]any {
	return map[string]any{
		"logger":  "bot",
		"method":  "GET",
		"path":    "/webhook",
		"version": "HTTP/1.1",
		"status":  "200:OK",
		"time":    "12ms",
	}
}

// BenchmarkFormat renders a fully colorized access record.
func BenchmarkFormat(b *testing.B) {
	var f Formatter
	rec := &Record{Level: Debug, Template: benchTemplate, Args: benchArgs()}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Format(rec)
	}
}

// BenchmarkEmit measures the full emit path against a discarded sink.
func BenchmarkEmit(b *testing.B) {
	l := New("bot", Debug, ColorNever, io.Discard)
	rec := &Record{Level: Debug, Template: benchTemplate, Args: benchArgs()}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Emit(rec)
	}
}
