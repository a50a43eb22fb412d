// Package style maps semantic log argument names to their terminal styles
// and classifies HTTP response statuses.
package style

import (
	"fmt"

	"weblog/internal/ansi"
)

// StatusClass buckets a response status for severity and color selection.
type StatusClass uint8

const (
	// Success covers the statuses the webhook host replies with on a
	// handled request.
	Success StatusClass = iota
	// Other covers everything else.
	Other
)

// Classify buckets an HTTP status code.
func Classify(code int) StatusClass {
	switch code {
	case 200, 201, 204:
		return Success
	}
	return Other
}

// fieldStyle pairs a color with an optional style.
type fieldStyle struct {
	color string
	style string
}

const statusKey = "status"

// fields is the closed registry of known argument names. The status entry
// carries no color of its own; it is chosen per record from the status
// class. The key set never changes after init.
var fields = map[string]fieldStyle{
	"event":          {color: ansi.Green},
	"ratelimit":      {color: ansi.White, style: ansi.Bold},
	"time_remaining": {color: ansi.White, style: ansi.Bold},
	"url":            {color: ansi.Blue, style: ansi.Underline},
	"file":           {color: ansi.Yellow},
	"request":        {color: ansi.Yellow},
	"time":           {color: ansi.Yellow},
	statusKey:        {style: ansi.Bold},
	"method":         {color: ansi.Magenta, style: ansi.Bold},
	"path":           {color: ansi.Blue},
	"data":           {color: ansi.Yellow},
	"version":        {color: ansi.Yellow},
}

func statusColor(cls StatusClass) string {
	if cls == Success {
		return ansi.Green
	}
	return ansi.Red
}

// FormatArgs returns a copy of args with every registry-known value wrapped
// in its field style, resetting back to the severity style given by reset.
// Values are coerced to text before injection. Keys outside the registry
// pass through untouched and args itself is never mutated.
func FormatArgs(args map[string]any, cls StatusClass, reset string) map[string]any {
	formatted := make(map[string]any, len(args))
	for key, value := range args {
		fs, ok := fields[key]
		if !ok {
			formatted[key] = value
			continue
		}
		color := fs.color
		if key == statusKey {
			color = statusColor(cls)
		}
		st := fs.style
		if st == "" {
			st = ansi.Normal
		}
		formatted[key] = ansi.Inject(fmt.Sprint(value), color, st, reset)
	}
	return formatted
}
