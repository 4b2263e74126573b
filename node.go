package mathtex

import "errors"

// Span is an opaque handle to the source location a node was built from.
// Zero means the node is detached from any source.
type Span uint64

// Node is one node of a formula tree. The set of implementations is closed.
type Node interface {
	Span() Span
	node()
}

type Formula struct {
	Location Span
	Block    bool // formula is displayed as a separate block
	Children []Node
}

type Atom struct {
	Location Span
	Text     string
}

type Symbol struct {
	Location Span
	Name     string
}

// LiteralText is rendered upright, character by character.
type LiteralText struct {
	Location Span
	Text     string
}

// Space is a weak separator, see Builder.RecordWeakSpace.
type Space struct {
	Location Span
}

type ForcedBreak struct {
	Location Span
}

type Sequence struct {
	Location Span
	Children []Node
}

// Accent is a base with a canonical combining accent, use NewAccent to build one.
type Accent struct {
	Location Span
	Base     Node
	Char     rune
}

type Fraction struct {
	Location Span
	Num      Node
	Denom    Node
}

type Binomial struct {
	Location Span
	Upper    Node
	Lower    Node
}

// Script is a base with optional sub- and superscript, nil means absent.
type Script struct {
	Location Span
	Base     Node
	Sub      Node
	Sup      Node
}

// AlignPoint is an alignment marker (& and &&), it has no markup of its own.
type AlignPoint struct {
	Location Span
	Index    int
}

type Sqrt struct {
	Location Span
	Body     Node
}

type Floor struct {
	Location Span
	Body     Node
}

type Ceil struct {
	Location Span
	Body     Node
}

// NewAlignPoint builds an alignment point, index is 1 for & and 2 for && etc.
func NewAlignPoint(span Span, index int) (*AlignPoint, error) {
	if index < 1 {
		return nil, errors.New("alignment point index must be positive")
	}

	return &AlignPoint{Location: span, Index: index}, nil
}

func (n *Formula) Span() Span     { return n.Location }
func (n *Atom) Span() Span        { return n.Location }
func (n *Symbol) Span() Span      { return n.Location }
func (n *LiteralText) Span() Span { return n.Location }
func (n *Space) Span() Span       { return n.Location }
func (n *ForcedBreak) Span() Span { return n.Location }
func (n *Sequence) Span() Span    { return n.Location }
func (n *Accent) Span() Span      { return n.Location }
func (n *Fraction) Span() Span    { return n.Location }
func (n *Binomial) Span() Span    { return n.Location }
func (n *Script) Span() Span      { return n.Location }
func (n *AlignPoint) Span() Span  { return n.Location }
func (n *Sqrt) Span() Span        { return n.Location }
func (n *Floor) Span() Span       { return n.Location }
func (n *Ceil) Span() Span        { return n.Location }

func (*Formula) node()     {}
func (*Atom) node()        {}
func (*Symbol) node()      {}
func (*LiteralText) node() {}
func (*Space) node()       {}
func (*ForcedBreak) node() {}
func (*Sequence) node()    {}
func (*Accent) node()      {}
func (*Fraction) node()    {}
func (*Binomial) node()    {}
func (*Script) node()      {}
func (*AlignPoint) node()  {}
func (*Sqrt) node()        {}
func (*Floor) node()       {}
func (*Ceil) node()        {}
