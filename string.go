package mathtex

// String extracts plain text from a formula tree, structure is flattened and symbols
// are replaced by their characters.
func String(node Node) string {
	switch n := node.(type) {
	case *Atom:
		return n.Text
	case *LiteralText:
		return n.Text
	case *Symbol:
		if c, ok := LookupSymbol(n.Name); ok {
			return string(c)
		}

		return n.Name
	case *Space:
		return " "
	case *ForcedBreak:
		return "\n"
	case *Formula:
		return concat(n.Children...)
	case *Sequence:
		return concat(n.Children...)
	case *Accent:
		return String(n.Base) + string(n.Char)
	case *Fraction:
		return concat(n.Num, n.Denom)
	case *Binomial:
		return concat(n.Upper, n.Lower)
	case *Script:
		return concat(n.Base, n.Sub, n.Sup)
	case *Sqrt:
		return String(n.Body)
	case *Floor:
		return String(n.Body)
	case *Ceil:
		return String(n.Body)
	default:
		return ""
	}
}

func concat(nodes ...Node) (out string) {
	for _, node := range nodes {
		if node != nil {
			out += String(node)
		}
	}

	return
}
