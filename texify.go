package mathtex

import (
	"log/slog"
	"strings"
)

// Texify converts a formula tree into math markup. The first error aborts the
// conversion, no partial output is returned.
func Texify(node Node) (string, error) {
	b := NewBuilder()
	if err := texify(b, node); err != nil {
		return "", err
	}

	return b.Finish(), nil
}

func texify(b *Builder, node Node) error {
	switch n := node.(type) {
	case *Space:
		b.RecordWeakSpace()
		return nil
	case *ForcedBreak:
		b.PushVerbatim(`\\`)
		return nil
	case *Symbol:
		return texifySymbol(b, n)
	case *LiteralText:
		texifyLiteral(b, n.Text)
		return nil
	case *Sequence:
		return texifyChildren(b, n.Children)
	case *Formula:
		return texifyChildren(b, n.Children)
	case *Atom:
		return texifyAtom(b, n)
	case *Accent:
		return texifyAccent(b, n)
	case *Fraction:
		return texifyAndWrap(b, `\frac{`, "}{", "}", trimmed(n.Num), trimmed(n.Denom))
	case *Binomial:
		return texifyAndWrap(b, `\binom{`, "}{", "}", plain(n.Upper), plain(n.Lower))
	case *Script:
		return texifyScript(b, n)
	case *AlignPoint:
		return nil
	case *Sqrt:
		return texifyAndWrap(b, `\sqrt{`, "", "}", plain(n.Body))
	case *Floor:
		return texifyAndWrap(b, `\left\lfloor `, "", `\right\rfloor `, plain(n.Body))
	case *Ceil:
		return texifyAndWrap(b, `\left\lceil `, "", `\right\rceil `, plain(n.Body))
	case nil:
		return newError(NotAllowedHere, 0, "missing node")
	default:
		return newError(NotAllowedHere, node.Span(), "%T", node)
	}
}

func texifyChildren(b *Builder, children []Node) error {
	for _, child := range children {
		if err := texify(b, child); err != nil {
			return err
		}
	}

	return nil
}

func texifySymbol(b *Builder, n *Symbol) error {
	c, ok := LookupSymbol(n.Name)
	if !ok {
		return newError(UnknownSymbol, n.Span(), "%s", n.Name)
	}

	b.PushEscaped(c)
	return nil
}

// texifyLiteral writes text upright, each character escaped on its own
func texifyLiteral(b *Builder, text string) {
	b.MarkSupport()
	b.PushVerbatim(`\mathrm{`)
	for _, c := range text {
		b.PushEscaped(c)
	}
	b.PushVerbatim("}")
	b.MarkSupport()
}

func texifyAtom(b *Builder, n *Atom) error {
	if graphemes(n.Text) > 1 {
		texifyLiteral(b, n.Text)
		return nil
	}

	for _, c := range n.Text {
		supportive := c == '|'
		if supportive {
			b.MarkSupport()
		}

		b.PushEscaped(c)

		if supportive {
			b.MarkSupport()
		}
	}

	return nil
}

func texifyAccent(b *Builder, n *Accent) error {
	cmd, ok := LookupAccentCommand(n.Char)
	if !ok {
		Logger().Debug("mathtex: dropping accent without command", slog.String("accent", runeName(n.Char)), slog.Uint64("span", uint64(n.Span())))
		return texify(b, n.Base)
	}

	b.PushVerbatim(`\` + cmd.Name + "{")
	if err := texify(b, n.Base); err != nil {
		return err
	}

	b.PushVerbatim("}")
	return nil
}

func texifyScript(b *Builder, n *Script) error {
	if err := texify(b, n.Base); err != nil {
		return err
	}

	if n.Sub != nil {
		if err := texifyAndWrap(b, "_{", "", "}", trimmed(n.Sub)); err != nil {
			return err
		}
	}

	if n.Sup != nil {
		if err := texifyAndWrap(b, "^{", "", "}", trimmed(n.Sup)); err != nil {
			return err
		}
	}

	return nil
}

// operand renders one argument of a directive into b
type operand func(b *Builder) error

func plain(node Node) operand {
	return func(b *Builder) error {
		return texify(b, node)
	}
}

// trimmed renders node with one redundant outer pair of parentheses removed
func trimmed(node Node) operand {
	return func(b *Builder) error {
		sub := NewBuilder()
		if err := texify(sub, node); err != nil {
			return err
		}

		b.PushVerbatim(unparen(sub.Finish()))
		return nil
	}
}

// texifyAndWrap writes prefix, the operands joined by separator and suffix
func texifyAndWrap(b *Builder, prefix, separator, suffix string, operands ...operand) error {
	b.PushVerbatim(prefix)
	for i, op := range operands {
		if i > 0 {
			b.PushVerbatim(separator)
		}

		if err := op(b); err != nil {
			return err
		}
	}

	b.PushVerbatim(suffix)
	return nil
}

// unparen strips the outer \left( \right) pair if it encloses the whole markup
func unparen(s string) string {
	const opening, closing = `\left(`, `\right)`

	if !strings.HasPrefix(s, opening) || !strings.HasSuffix(s, closing) {
		return s
	}

	tokens, err := Tokenize(s)
	if err != nil {
		return s
	}

	depth := 0
	for i, t := range tokens {
		d, ok := t.(Delimiter)
		if !ok {
			continue
		}

		if d.Open {
			depth++
			continue
		}

		if depth--; depth == 0 {
			if i == len(tokens)-1 && d.Symbol == ")" {
				return s[len(opening) : len(s)-len(closing)]
			}

			return s
		}
	}

	return s
}
