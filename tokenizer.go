package mathtex

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Tokenizer reads math markup back into tokens, it understands the subset of the
// dialect Texify produces.
type Tokenizer struct {
	r io.RuneScanner
}

func NewTokenizer(r io.RuneScanner) *Tokenizer {
	return &Tokenizer{r: r}
}

// Token returns the next token or io.EOF.
func (l *Tokenizer) Token() (any, error) {
	char, _, err := l.r.ReadRune()
	if err != nil {
		return nil, err
	}

	switch char {
	case '{':
		return GroupStart{}, nil
	case '}':
		return GroupEnd{}, nil
	case '^':
		return Superscript{}, nil
	case '_':
		return Subscript{}, nil
	case '\\':
		return l.readBackslash()
	default:
		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return l.readText()
	}
}

// Tokenize splits markup into tokens.
func Tokenize(markup string) (tokens []any, err error) {
	l := NewTokenizer(strings.NewReader(markup))
	for {
		t, err := l.Token()
		if err == io.EOF {
			return tokens, nil
		}

		if err != nil {
			return nil, err
		}

		tokens = append(tokens, t)
	}
}

func (l *Tokenizer) readText() (any, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return Text(runes), nil
		}

		if err != nil {
			return nil, err
		}

		if isSpecial(read) {
			return Text(runes), l.r.UnreadRune()
		}

		runes = append(runes, read)
	}
}

func (l *Tokenizer) readBackslash() (any, error) {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return nil, errors.New("EOF: dangling backslash")
	}

	if err != nil {
		return nil, err
	}

	// a letter means it's a control word \xyz
	if isLetter(r) {
		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return l.readCommand()
	}

	// control symbol: \{, \%, \ or \\
	return ControlSequence([]rune{'\\', r}), nil
}

func (l *Tokenizer) readCommand() (any, error) {
	name, err := l.word()
	if err != nil {
		return nil, err
	}

	command := "\\" + name

	switch command {
	case "\\left", "\\right":
		return l.readDelimiter(command == "\\left")
	default:
		if err := l.whitespaces(); err != nil {
			return nil, err
		}

		return ControlSequence(command), nil
	}
}

// readDelimiter reads delimiter following \left or \right: a character, a control symbol or a control word
func (l *Tokenizer) readDelimiter(open bool) (any, error) {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return nil, errors.New("EOF: delimiter is expected")
	}

	if err != nil {
		return nil, err
	}

	if r != '\\' {
		if isWhitespace(r) || isSpecial(r) {
			return nil, fmt.Errorf("character %q is not a delimiter", r)
		}

		return Delimiter{Open: open, Symbol: string(r)}, nil
	}

	r, _, err = l.r.ReadRune()
	if err == io.EOF {
		return nil, errors.New("EOF: delimiter is expected")
	}

	if err != nil {
		return nil, err
	}

	if !isLetter(r) {
		return Delimiter{Open: open, Symbol: string([]rune{'\\', r})}, nil
	}

	if err := l.r.UnreadRune(); err != nil {
		return nil, err
	}

	name, err := l.word()
	if err != nil {
		return nil, err
	}

	if err := l.whitespaces(); err != nil {
		return nil, err
	}

	return Delimiter{Open: open, Symbol: "\\" + name}, nil
}

// whitespaces skips until next non-whitespace symbol
func (l *Tokenizer) whitespaces() error {
	for {
		r, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if !isWhitespace(r) {
			return l.r.UnreadRune()
		}
	}
}

// word reads sequence of letters
func (l *Tokenizer) word() (string, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return string(runes), nil
		}

		if err != nil {
			return "", err
		}

		if !isLetter(read) {
			return string(runes), l.r.UnreadRune()
		}

		runes = append(runes, read)
	}
}

// Validate checks that groups and auto-sized delimiters in markup are balanced.
func Validate(markup string) error {
	tokens, err := Tokenize(markup)
	if err != nil {
		return err
	}

	groups, delimiters := 0, 0
	for _, t := range tokens {
		switch token := t.(type) {
		case GroupStart:
			groups++
		case GroupEnd:
			if groups--; groups < 0 {
				return errors.New("unexpected closing brace")
			}
		case Delimiter:
			if token.Open {
				delimiters++
			} else if delimiters--; delimiters < 0 {
				return fmt.Errorf("unexpected closing delimiter \\right%s", token.Symbol)
			}
		}
	}

	if groups != 0 {
		return errors.New("group is not closed")
	}

	if delimiters != 0 {
		return errors.New("delimiter is not closed")
	}

	return nil
}

// isLetter returns true for a letter
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isSpecial returns true if a symbol has a special meaning and should interrupt text reading
func isSpecial(r rune) bool {
	switch r {
	case '\\', '{', '}', '^', '_':
		return true
	default:
		return false
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}
