package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/eolymp/go-mathtex"
	"github.com/tdewolff/test"
)

func TestConvert(t *testing.T) {
	input := `
type: formula
block: true
children:
  - type: frac
    num: {type: seq, children: ["(", x, "+", "1", ")"]}
    denom: "2"
`

	w := &bytes.Buffer{}
	err := (&Convert{Validate: true}).convert(strings.NewReader(input), w)
	test.Error(t, err)
	test.String(t, w.String(), "\\frac{x+1}{2}\n")

	w.Reset()
	err = (&Convert{Delimit: true}).convert(strings.NewReader(input), w)
	test.Error(t, err)
	test.String(t, w.String(), "$$\\frac{x+1}{2}$$\n")
}

func TestConvertErrors(t *testing.T) {
	w := &bytes.Buffer{}

	err := (&Convert{}).convert(strings.NewReader("{type: symbol, name: nope, span: 12}"), w)
	test.That(t, errors.Is(err, mathtex.ErrUnknownSymbol), "expected unknown symbol error, got", err)
	test.That(t, strings.HasPrefix(err.Error(), "span 12: "), "expected span in error, got", err)
	test.That(t, w.Len() == 0, "expected no output")

	err = (&Convert{}).convert(strings.NewReader("{type: matrix}"), w)
	test.That(t, err != nil, "expected decode error")
}
