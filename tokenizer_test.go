package mathtex_test

import (
	"github.com/eolymp/go-mathtex"
	"github.com/google/go-cmp/cmp"
	"testing"
)

func TestTokenize(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output []any
	}{
		{
			name:  "fraction",
			input: `\frac{x+1}{2}`,
			output: []any{
				mathtex.ControlSequence(`\frac`),
				mathtex.GroupStart{},
				mathtex.Text("x+1"),
				mathtex.GroupEnd{},
				mathtex.GroupStart{},
				mathtex.Text("2"),
				mathtex.GroupEnd{},
			},
		},
		{
			name:  "parentheses",
			input: `\left(x\right)`,
			output: []any{
				mathtex.Delimiter{Open: true, Symbol: "("},
				mathtex.Text("x"),
				mathtex.Delimiter{Open: false, Symbol: ")"},
			},
		},
		{
			name:  "braces",
			input: `\left\{x\right\}`,
			output: []any{
				mathtex.Delimiter{Open: true, Symbol: `\{`},
				mathtex.Text("x"),
				mathtex.Delimiter{Open: false, Symbol: `\}`},
			},
		},
		{
			name:  "named delimiters",
			input: `\left\lfloor x\right\rfloor `,
			output: []any{
				mathtex.Delimiter{Open: true, Symbol: `\lfloor`},
				mathtex.Text("x"),
				mathtex.Delimiter{Open: false, Symbol: `\rfloor`},
			},
		},
		{
			name:  "arrows are not delimiters",
			input: `\leftarrow x\rightarrow y`,
			output: []any{
				mathtex.ControlSequence(`\leftarrow`),
				mathtex.Text("x"),
				mathtex.ControlSequence(`\rightarrow`),
				mathtex.Text("y"),
			},
		},
		{
			name:  "control symbols",
			input: `a\ b\% 1\\c`,
			output: []any{
				mathtex.Text("a"),
				mathtex.ControlSequence(`\ `),
				mathtex.Text("b"),
				mathtex.ControlSequence(`\%`),
				mathtex.Text(" 1"),
				mathtex.ControlSequence(`\\`),
				mathtex.Text("c"),
			},
		},
		{
			name:  "scripts",
			input: `a_{i}^{2}`,
			output: []any{
				mathtex.Text("a"),
				mathtex.Subscript{},
				mathtex.GroupStart{},
				mathtex.Text("i"),
				mathtex.GroupEnd{},
				mathtex.Superscript{},
				mathtex.GroupStart{},
				mathtex.Text("2"),
				mathtex.GroupEnd{},
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mathtex.Tokenize(tc.input)
			if err != nil {
				t.Fatalf("Unable to read tokens: %v", err)
			}

			if !cmp.Equal(tc.output, got) {
				t.Errorf("Tokens do not match:\n%s\n", cmp.Diff(tc.output, got))
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tt := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "fraction", input: `\frac{\left(x\right)}{2}`, valid: true},
		{name: "floor", input: `\left\lfloor x\right\rfloor `, valid: true},
		{name: "escaped braces", input: `\left\{x\right\}`, valid: true},
		{name: "unclosed group", input: `\frac{x`, valid: false},
		{name: "unexpected group end", input: `x}`, valid: false},
		{name: "unclosed delimiter", input: `\left(x`, valid: false},
		{name: "unexpected delimiter", input: `x\right)`, valid: false},
		{name: "dangling backslash", input: `x\`, valid: false},
		{name: "missing delimiter", input: `\left`, valid: false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := mathtex.Validate(tc.input)
			if tc.valid && err != nil {
				t.Errorf("expected %q to be valid, got %v", tc.input, err)
			}

			if !tc.valid && err == nil {
				t.Errorf("expected %q to be invalid", tc.input)
			}
		})
	}
}
