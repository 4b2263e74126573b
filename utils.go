package mathtex

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/runenames"
)

// graphemes counts extended grapheme clusters in s
func graphemes(s string) (n int) {
	var seg segmenter.Segmenter
	seg.Init([]rune(s))

	iter := seg.GraphemeIterator()
	for iter.Next() {
		n++
	}

	return
}

// unwrap strips formula and sequence containers holding exactly one child
func unwrap(node Node) Node {
	for {
		switch n := node.(type) {
		case *Formula:
			if len(n.Children) != 1 {
				return node
			}
			node = n.Children[0]
		case *Sequence:
			if len(n.Children) != 1 {
				return node
			}
			node = n.Children[0]
		default:
			return node
		}
	}
}

// character reduces node to a single character: a one-character atom or a symbol
// resolving through the name table.
func character(node Node) (rune, error) {
	switch n := unwrap(node).(type) {
	case *Atom:
		c, size := utf8.DecodeRuneInString(n.Text)
		if size == 0 || size != len(n.Text) || c == utf8.RuneError {
			return 0, newError(NotAnAccent, n.Span(), "%q is not a single character", n.Text)
		}

		return c, nil
	case *Symbol:
		c, ok := LookupSymbol(n.Name)
		if !ok {
			return 0, newError(UnknownSymbol, n.Span(), "%s", n.Name)
		}

		return c, nil
	case nil:
		return 0, newError(NotAnAccent, 0, "accent is missing")
	default:
		return 0, newError(NotAnAccent, n.Span(), "only a single character is allowed here")
	}
}

// runeName describes r for diagnostics, eg. "U+2603 SNOWMAN"
func runeName(r rune) string {
	if name := runenames.Name(r); name != "" {
		return fmt.Sprintf("U+%04X %s", r, name)
	}

	return fmt.Sprintf("U+%04X", r)
}
