package mathtex

// Tokens produced by the Tokenizer when reading markup back.

type Text string

// ControlSequence is a control word (\frac) or control symbol (\{, \ , \\), including the backslash.
type ControlSequence string

// Delimiter is an auto-sized delimiter, \left( or \right\rfloor.
type Delimiter struct {
	Open   bool
	Symbol string // "(", "\\{", "\\lfloor", ...
}

type GroupStart struct {
}

type GroupEnd struct {
}

type Superscript struct {
}

type Subscript struct {
}
