package mathtex

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	UnknownSymbol ErrorKind = iota + 1
	NotAllowedHere
	NotAnAccent
)

var (
	ErrUnknownSymbol  = errors.New("unknown symbol")
	ErrNotAllowedHere = errors.New("not allowed here")
	ErrNotAnAccent    = errors.New("not an accent")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnknownSymbol:
		return ErrUnknownSymbol
	case NotAllowedHere:
		return ErrNotAllowedHere
	case NotAnAccent:
		return ErrNotAnAccent
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a conversion or construction failure tied to the node that caused it.
// Match the kind with errors.Is(err, ErrUnknownSymbol) and friends.
type Error struct {
	Kind ErrorKind
	Span Span
	Msg  string // optional detail, eg. the unknown name
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}

	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind ErrorKind, span Span, format string, args ...any) *Error {
	return &Error{Kind: kind, Span: span, Msg: fmt.Sprintf(format, args...)}
}
