package mathtex

// accents maps accepted accent spellings to the canonical combining codepoint
var accents = map[rune]rune{
	'`': '\u0300', '\u0300': '\u0300', // grave
	'´': '\u0301', '\u0301': '\u0301', // acute
	'^': '\u0302', '\u0302': '\u0302', // circumflex
	'~': '\u0303', '\u223C': '\u0303', '\u0303': '\u0303', // tilde
	'¯': '\u0304', '\u0304': '\u0304', // macron
	'‾': '\u0305', '\u0305': '\u0305', // overline
	'˘': '\u0306', '\u0306': '\u0306', // breve
	'.': '\u0307', '\u22C5': '\u0307', '\u0307': '\u0307', // dot
	'¨': '\u0308', '\u0308': '\u0308', // diaeresis
	'ˇ': '\u030C', '\u030C': '\u030C', // caron
	'→': '\u20D7', '\u20D7': '\u20D7', // arrow
}

// NormalizeAccent maps an accent character, or one of its aliases, to the
// canonical combining codepoint.
func NormalizeAccent(c rune) (rune, bool) {
	a, ok := accents[c]
	return a, ok
}

// NewAccent builds an accent node. The operand must reduce to one character, either
// a single character atom or a symbol, which is one of the supported accents:
//
//	grave `, acute ´, circumflex ^, tilde ~, macron ¯, overline ‾,
//	breve ˘, dot ., diaeresis ¨, caron ˇ, arrow →
//
// Formulas and sequences with exactly one child are looked through.
func NewAccent(span Span, base, operand Node) (*Accent, error) {
	c, err := character(operand)
	if err != nil {
		if e, ok := err.(*Error); ok && e.Span == 0 {
			e.Span = span
		}

		return nil, err
	}

	accent, ok := NormalizeAccent(c)
	if !ok {
		return nil, newError(NotAnAccent, operandSpan(operand, span), "%s", runeName(c))
	}

	return &Accent{Location: span, Base: base, Char: accent}, nil
}

func operandSpan(operand Node, fallback Span) Span {
	if s := operand.Span(); s != 0 {
		return s
	}

	return fallback
}
