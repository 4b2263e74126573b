package mathtex

import (
	"log/slog"
	"strings"
)

// Builder accumulates markup. Spaces are weak: a space recorded with RecordWeakSpace
// is written only when both sides of it were marked with MarkSupport, since named
// commands glue to following letters while operators and symbols do not need a gap.
type Builder struct {
	buf      strings.Builder
	space    bool // weak space pending
	before   bool // support marked right before the pending space
	support  bool // support marked at the current position
	finished bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// RecordWeakSpace marks a space boundary. A space at the very beginning is dropped,
// consecutive spaces collapse into one.
func (b *Builder) RecordWeakSpace() {
	if b.buf.Len() == 0 || b.space {
		return
	}

	b.space = true
	b.before = b.support
	b.support = false
}

// MarkSupport marks the current position as one where an adjacent weak space may
// become visible.
func (b *Builder) MarkSupport() {
	b.support = true
}

func (b *Builder) flush() {
	if b.finished {
		panic("mathtex: write to finished builder")
	}

	if b.space && b.before && b.support {
		b.buf.WriteString(`\ `)
	}

	b.space = false
	b.before = false
	b.support = false
}

// PushVerbatim writes s as is.
func (b *Builder) PushVerbatim(s string) {
	b.flush()
	b.buf.WriteString(s)
}

// PushEscaped writes a single character escaped for math mode. Characters which
// have neither a plain form nor a command are dropped.
func (b *Builder) PushEscaped(c rune) {
	b.flush()

	switch {
	case c == ' ':
		b.buf.WriteString(`\ `)
	case c == '%' || c == '&' || c == '$' || c == '#':
		b.buf.WriteByte('\\')
		b.buf.WriteRune(c)
		b.buf.WriteByte(' ')
	case c == '{':
		b.buf.WriteString(`\left\{`)
	case c == '}':
		b.buf.WriteString(`\right\}`)
	case c == '(' || c == '[':
		b.buf.WriteString(`\left`)
		b.buf.WriteRune(c)
	case c == ')' || c == ']':
		b.buf.WriteString(`\right`)
		b.buf.WriteRune(c)
	case isPlain(c):
		b.buf.WriteRune(c)
	default:
		cmd, ok := LookupCommand(c)
		if !ok {
			// TODO: decide whether unknown characters should fail the conversion instead
			Logger().Debug("mathtex: dropping character without markup", slog.String("char", runeName(c)))
			return
		}

		b.buf.WriteByte('\\')
		b.buf.WriteString(cmd.Name)
		b.buf.WriteByte(' ')
	}
}

// Finish returns the markup, the builder must not be used afterwards.
func (b *Builder) Finish() string {
	b.finished = true
	return b.buf.String()
}

// isPlain reports characters written to markup unchanged
func isPlain(c rune) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case 'Α' <= c && c <= 'Ω', 'α' <= c && c <= 'ω':
		return true
	}

	switch c {
	case '*', '+', '-', '?', '!', '=', '<', '>', ':', ',', ';', '|', '/', '@', '.', '"':
		return true
	default:
		return false
	}
}
