package mathtex

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// wireNode is the serialized form of a node. A plain scalar is shorthand for an atom.
type wireNode struct {
	Type     string      `yaml:"type"`
	Span     uint64      `yaml:"span"`
	Block    bool        `yaml:"block"`
	Text     string      `yaml:"text"`
	Name     string      `yaml:"name"`
	Index    int         `yaml:"index"`
	Children []*wireNode `yaml:"children"`
	Base     *wireNode   `yaml:"base"`
	Accent   *wireNode   `yaml:"accent"`
	Num      *wireNode   `yaml:"num"`
	Denom    *wireNode   `yaml:"denom"`
	Upper    *wireNode   `yaml:"upper"`
	Lower    *wireNode   `yaml:"lower"`
	Sub      *wireNode   `yaml:"sub"`
	Sup      *wireNode   `yaml:"sup"`
	Body     *wireNode   `yaml:"body"`

	line int
}

func (w *wireNode) UnmarshalYAML(value *yaml.Node) error {
	w.line = value.Line

	if value.Kind == yaml.ScalarNode {
		w.Type = "atom"
		w.Text = value.Value
		return nil
	}

	type plain wireNode
	return value.Decode((*plain)(w))
}

// Decode reads a formula tree from YAML or JSON, for example:
//
//	type: formula
//	children:
//	  - {type: frac, num: "1", denom: {type: symbol, name: pi}}
//
// Nodes without an explicit span get their input line number as span.
func Decode(r io.Reader) (Node, error) {
	var root wireNode
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return nil, errors.New("formula tree is empty")
		}

		return nil, fmt.Errorf("unable to read formula tree: %w", err)
	}

	return root.node()
}

func (w *wireNode) span() Span {
	if w.Span != 0 {
		return Span(w.Span)
	}

	return Span(w.line)
}

func (w *wireNode) node() (Node, error) {
	span := w.span()

	switch w.Type {
	case "formula":
		children, err := nodes(w.Children)
		if err != nil {
			return nil, err
		}

		return &Formula{Location: span, Block: w.Block, Children: children}, nil
	case "seq", "sequence":
		children, err := nodes(w.Children)
		if err != nil {
			return nil, err
		}

		return &Sequence{Location: span, Children: children}, nil
	case "atom":
		if w.Text == "" {
			return nil, fmt.Errorf("line %d: atom text must not be empty", w.line)
		}

		return &Atom{Location: span, Text: w.Text}, nil
	case "symbol":
		return &Symbol{Location: span, Name: w.Name}, nil
	case "text":
		return &LiteralText{Location: span, Text: w.Text}, nil
	case "space":
		return &Space{Location: span}, nil
	case "linebreak":
		return &ForcedBreak{Location: span}, nil
	case "accent":
		base, err := w.Base.required("base")
		if err != nil {
			return nil, err
		}

		accent, err := w.Accent.optional()
		if err != nil {
			return nil, err
		}

		node, err := NewAccent(span, base, accent)
		if err != nil {
			return nil, err
		}

		return node, nil
	case "frac":
		num, denom, err := pair(w.Num, "num", w.Denom, "denom")
		if err != nil {
			return nil, err
		}

		return &Fraction{Location: span, Num: num, Denom: denom}, nil
	case "binom":
		upper, lower, err := pair(w.Upper, "upper", w.Lower, "lower")
		if err != nil {
			return nil, err
		}

		return &Binomial{Location: span, Upper: upper, Lower: lower}, nil
	case "script":
		base, err := w.Base.required("base")
		if err != nil {
			return nil, err
		}

		sub, err := w.Sub.optional()
		if err != nil {
			return nil, err
		}

		sup, err := w.Sup.optional()
		if err != nil {
			return nil, err
		}

		return &Script{Location: span, Base: base, Sub: sub, Sup: sup}, nil
	case "align":
		point, err := NewAlignPoint(span, w.Index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", w.line, err)
		}

		return point, nil
	case "sqrt":
		body, err := w.Body.required("body")
		if err != nil {
			return nil, err
		}

		return &Sqrt{Location: span, Body: body}, nil
	case "floor":
		body, err := w.Body.required("body")
		if err != nil {
			return nil, err
		}

		return &Floor{Location: span, Body: body}, nil
	case "ceil":
		body, err := w.Body.required("body")
		if err != nil {
			return nil, err
		}

		return &Ceil{Location: span, Body: body}, nil
	case "":
		return nil, fmt.Errorf("line %d: node type is missing", w.line)
	default:
		return nil, fmt.Errorf("line %d: unknown node type %q", w.line, w.Type)
	}
}

// optional converts w if present, keeping an untyped nil when it is absent
func (w *wireNode) optional() (Node, error) {
	if w == nil {
		return nil, nil
	}

	return w.node()
}

func (w *wireNode) required(field string) (Node, error) {
	if w == nil {
		return nil, fmt.Errorf("%s is required", field)
	}

	return w.node()
}

func pair(a *wireNode, fa string, b *wireNode, fb string) (Node, Node, error) {
	first, err := a.required(fa)
	if err != nil {
		return nil, nil, err
	}

	second, err := b.required(fb)
	if err != nil {
		return nil, nil, err
	}

	return first, second, nil
}

func nodes(list []*wireNode) ([]Node, error) {
	children := make([]Node, 0, len(list))
	for index, item := range list {
		if item == nil {
			return nil, fmt.Errorf("child #%d is empty", index)
		}

		child, err := item.node()
		if err != nil {
			return nil, err
		}

		children = append(children, child)
	}

	return children, nil
}
