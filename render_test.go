package mathtex_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/eolymp/go-mathtex"
)

func TestRender(t *testing.T) {
	formula := func(block bool, children ...mathtex.Node) *mathtex.Formula {
		return &mathtex.Formula{Block: block, Children: children}
	}

	atom := func(s string) mathtex.Node {
		return &mathtex.Atom{Text: s}
	}

	tt := []struct {
		name     string
		render   string
		document *mathtex.Formula
	}{
		{
			name:     "inline math",
			render:   "$α+β$",
			document: formula(false, &mathtex.Symbol{Name: "alpha"}, atom("+"), &mathtex.Symbol{Name: "beta"}),
		},
		{
			name:     "block math",
			render:   `$$a_{i}^{2}\leq \frac{1}{2}$$`,
			document: formula(true, &mathtex.Script{Base: atom("a"), Sub: atom("i"), Sup: atom("2")}, &mathtex.Symbol{Name: "lt.eq"}, &mathtex.Fraction{Num: atom("1"), Denom: atom("2")}),
		},
		{
			name:     "empty formula",
			render:   "$$",
			document: formula(false),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			buffer := bytes.NewBuffer(nil)

			err := mathtex.Render(buffer, tc.document)
			if err != nil {
				t.Fatal("unable to render:", err)
			}

			if got := buffer.String(); got != tc.render {
				t.Errorf("Rendered markup does not match:\nWANT:\n  %#v\nGOT:\n  %#v\n", tc.render, got)
			}
		})
	}
}

func TestRenderError(t *testing.T) {
	buffer := bytes.NewBuffer(nil)

	err := mathtex.Render(buffer, &mathtex.Formula{Children: []mathtex.Node{&mathtex.Symbol{Name: "nope"}}})
	if !errors.Is(err, mathtex.ErrUnknownSymbol) {
		t.Fatalf("expected %v, got %v", mathtex.ErrUnknownSymbol, err)
	}

	if buffer.Len() != 0 {
		t.Errorf("expected nothing to be written, got %q", buffer.String())
	}
}
