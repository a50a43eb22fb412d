// Package ansi generates the escape sequences used to color log output.
package ansi

import "strconv"

// CSI is the control sequence introducer shared by all codes.
const CSI = "\x1b["

// Code returns the escape sequence selecting graphic rendition n.
func Code(n int) string { return CSI + strconv.Itoa(n) + "m" }

var (
	Black   = Code(30)
	Red     = Code(31)
	Green   = Code(32)
	Yellow  = Code(33)
	Blue    = Code(34)
	Magenta = Code(35)
	Cyan    = Code(36)
	White   = Code(37)
	Reset   = Code(39)

	Bold      = Code(1)
	Dim       = Code(2)
	Underline = Code(4)
	Normal    = Code(22)
	ResetAll  = Code(0)
)

// Inject wraps msg in color and style, then restores the surrounding
// severity style given by reset. The leading ResetAll clears whatever codes
// are in effect, so injected strings can be nested inside each other.
func Inject(msg, color, style, reset string) string {
	return ResetAll + color + style + msg + ResetAll + reset
}
