package weblog

import (
	"fmt"
	"strings"

	"weblog/internal/ansi"
	"weblog/internal/style"
)

// lineFormat is the uncolored shape of every emitted line.
const lineFormat = "[%s] %s"

// Record is one log entry before formatting. Template is interpolated with
// {name} placeholders from Args. Status selects the color of a "status"
// argument, if present. Err and Stack are optional payloads appended after
// the message.
type Record struct {
	Level    Level
	Template string
	Args     map[string]any
	Status   style.StatusClass
	Err      error
	Stack    string

	errText string // rendered Err, cached after the first Format
}

// Formatter renders records as single colorized lines.
type Formatter struct {
	NoColor bool
}

// template returns the severity-colored line format, falling back to the
// plain one for a level outside the known set.
func (f *Formatter) template(l Level) string {
	st := l.Style()
	if f.NoColor || st == "" {
		return lineFormat
	}
	return st + lineFormat + ansi.ResetAll
}

// Format renders rec: colorize the arguments, interpolate the template,
// append the rendered error with per-line recoloring, append the stack, and
// wrap the result in the severity template.
func (f *Formatter) Format(rec *Record) string {
	args := rec.Args
	if args != nil && !f.NoColor {
		args = style.FormatArgs(args, rec.Status, rec.Level.Style())
	}
	msg := expand(rec.Template, args)
	if rec.Err != nil && rec.errText == "" {
		// %+v prints the stack for wrapped errors.
		rec.errText = fmt.Sprintf("%+v", rec.Err)
	}
	if rec.errText != "" {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		msg += rec.errText
		if !f.NoColor {
			// Line-splitting collectors drop the style on every physical
			// line after the first, so restate it after each newline.
			msg = strings.ReplaceAll(msg, "\n", "\n"+rec.Level.Style())
		}
	}
	if rec.Stack != "" {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		msg += rec.Stack
	}
	return fmt.Sprintf(f.template(rec.Level), rec.Level, msg)
}

// expand substitutes {name} placeholders with the matching args values.
// Placeholders without a matching key are left verbatim.
func expand(tmpl string, args map[string]any) string {
	if len(args) == 0 || !strings.ContainsRune(tmpl, '{') {
		return tmpl
	}
	var b strings.Builder
	rest := tmpl
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			b.WriteString(rest)
			return b.String()
		}
		name := rest[i+1 : i+j]
		if v, ok := args[name]; ok {
			b.WriteString(rest[:i])
			b.WriteString(fmt.Sprint(v))
		} else {
			b.WriteString(rest[:i+j+1])
		}
		rest = rest[i+j+1:]
	}
}
