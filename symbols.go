package mathtex

// AtomClass is the math class of a symbol, as used by the renderer for spacing.
type AtomClass int

const (
	Ordinary AtomClass = iota
	Alphabetic
	Binary
	Relation
	Large
	Opening
	Closing
	Punctuation
	Fence
	AccentClass
	AccentWide
	BottomAccent
	Over
	Under
)

// Command is a named markup command, written as \Name followed by a space.
type Command struct {
	Name  string
	Class AtomClass
}

// commands maps a codepoint to its markup command. Characters passed through
// unchanged by the builder are deliberately absent.
var commands = map[rune]Command{
	// accents
	'\u0300': {"grave", AccentClass},
	'\u0301': {"acute", AccentClass},
	'\u0302': {"hat", AccentClass},
	'\u0303': {"tilde", AccentClass},
	'\u0304': {"bar", AccentClass},
	'\u0305': {"overbar", AccentClass},
	'\u0306': {"breve", AccentClass},
	'\u0307': {"dot", AccentClass},
	'\u0308': {"ddot", AccentClass},
	'\u030A': {"ocirc", AccentClass},
	'\u030C': {"check", AccentClass},
	'\u20D6': {"overleftarrow", AccentClass},
	'\u20D7': {"vec", AccentClass},
	'\u20DB': {"dddot", AccentClass},
	'\u20DC': {"ddddot", AccentClass},
	'\u20E1': {"overleftrightarrow", AccentWide},
	'\u0330': {"wideutilde", BottomAccent},
	'\u0331': {"underbar", BottomAccent},

	// greek variants outside the plain alphabet
	'ϑ': {"vartheta", Alphabetic},
	'ϕ': {"phi", Alphabetic},
	'ϖ': {"varpi", Alphabetic},
	'ϰ': {"varkappa", Alphabetic},
	'ϱ': {"varrho", Alphabetic},
	'ϵ': {"epsilon", Alphabetic},

	// binary operators
	'±': {"pm", Binary},
	'×': {"times", Binary},
	'÷': {"div", Binary},
	'†': {"dagger", Binary},
	'‡': {"ddagger", Binary},
	'−': {"minus", Binary},
	'∓': {"mp", Binary},
	'∖': {"setminus", Binary},
	'∘': {"circ", Binary},
	'∧': {"wedge", Binary},
	'∨': {"vee", Binary},
	'∩': {"cap", Binary},
	'∪': {"cup", Binary},
	'⊕': {"oplus", Binary},
	'⊖': {"ominus", Binary},
	'⊗': {"otimes", Binary},
	'⊘': {"oslash", Binary},
	'⊙': {"odot", Binary},
	'⋅': {"cdot", Binary},
	'⋆': {"star", Binary},

	// relations and arrows
	'←': {"leftarrow", Relation},
	'↑': {"uparrow", Relation},
	'→': {"rightarrow", Relation},
	'↓': {"downarrow", Relation},
	'↔': {"leftrightarrow", Relation},
	'↦': {"mapsto", Relation},
	'⇐': {"Leftarrow", Relation},
	'⇒': {"Rightarrow", Relation},
	'⇔': {"Leftrightarrow", Relation},
	'⟶': {"longrightarrow", Relation},
	'⟹': {"Longrightarrow", Relation},
	'∈': {"in", Relation},
	'∉': {"notin", Relation},
	'∋': {"ni", Relation},
	'∝': {"propto", Relation},
	'∣': {"mid", Relation},
	'∥': {"parallel", Relation},
	'∼': {"sim", Relation},
	'≃': {"simeq", Relation},
	'≅': {"cong", Relation},
	'≈': {"approx", Relation},
	'≔': {"coloneq", Relation},
	'≠': {"ne", Relation},
	'≡': {"equiv", Relation},
	'≤': {"leq", Relation},
	'≥': {"geq", Relation},
	'≪': {"ll", Relation},
	'≫': {"gg", Relation},
	'⊂': {"subset", Relation},
	'⊃': {"supset", Relation},
	'⊆': {"subseteq", Relation},
	'⊇': {"supseteq", Relation},
	'⊢': {"vdash", Relation},
	'⊨': {"vDash", Relation},

	// large operators
	'∏': {"prod", Large},
	'∐': {"coprod", Large},
	'∑': {"sum", Large},
	'∫': {"int", Large},
	'∬': {"iint", Large},
	'∭': {"iiint", Large},
	'∮': {"oint", Large},
	'⋀': {"bigwedge", Large},
	'⋁': {"bigvee", Large},
	'⋂': {"bigcap", Large},
	'⋃': {"bigcup", Large},
	'⨀': {"bigodot", Large},
	'⨁': {"bigoplus", Large},
	'⨂': {"bigotimes", Large},

	// ordinary symbols
	'¬': {"neg", Ordinary},
	'…': {"ldots", Ordinary},
	'′': {"prime", Ordinary},
	'″': {"dprime", Ordinary},
	'ℂ': {"BbbC", Alphabetic},
	'ℏ': {"hslash", Ordinary},
	'ℑ': {"Im", Ordinary},
	'ℓ': {"ell", Ordinary},
	'ℕ': {"BbbN", Alphabetic},
	'ℚ': {"BbbQ", Alphabetic},
	'ℜ': {"Re", Ordinary},
	'ℝ': {"BbbR", Alphabetic},
	'ℤ': {"BbbZ", Alphabetic},
	'ℵ': {"aleph", Alphabetic},
	'∀': {"forall", Ordinary},
	'∂': {"partial", Ordinary},
	'∃': {"exists", Ordinary},
	'∄': {"nexists", Ordinary},
	'∅': {"emptyset", Ordinary},
	'∇': {"nabla", Ordinary},
	'∠': {"angle", Ordinary},
	'∞': {"infty", Ordinary},
	'⋮': {"vdots", Relation},
	'⋯': {"cdots", Ordinary},
	'⋱': {"ddots", Relation},

	// delimiters
	'‖': {"Vert", Fence},
	'⌈': {"lceil", Opening},
	'⌉': {"rceil", Closing},
	'⌊': {"lfloor", Opening},
	'⌋': {"rfloor", Closing},
	'⟨': {"langle", Opening},
	'⟩': {"rangle", Closing},
	'⏞': {"overbrace", Over},
	'⏟': {"underbrace", Under},
}

// names resolves symbol identifiers, as written by users, to their codepoint.
var names = map[string]rune{
	"alpha": 'α', "beta": 'β', "gamma": 'γ', "delta": 'δ', "epsilon": 'ε', "zeta": 'ζ',
	"eta": 'η', "theta": 'θ', "iota": 'ι', "kappa": 'κ', "lambda": 'λ', "mu": 'μ',
	"nu": 'ν', "xi": 'ξ', "omicron": 'ο', "pi": 'π', "rho": 'ρ', "sigma": 'σ',
	"tau": 'τ', "upsilon": 'υ', "phi": 'φ', "chi": 'χ', "psi": 'ψ', "omega": 'ω',
	"Alpha": 'Α', "Beta": 'Β', "Gamma": 'Γ', "Delta": 'Δ', "Epsilon": 'Ε', "Zeta": 'Ζ',
	"Eta": 'Η', "Theta": 'Θ', "Iota": 'Ι', "Kappa": 'Κ', "Lambda": 'Λ', "Mu": 'Μ',
	"Nu": 'Ν', "Xi": 'Ξ', "Omicron": 'Ο', "Pi": 'Π', "Rho": 'Ρ', "Sigma": 'Σ',
	"Tau": 'Τ', "Upsilon": 'Υ', "Phi": 'Φ', "Chi": 'Χ', "Psi": 'Ψ', "Omega": 'Ω',

	"epsilon.alt": 'ϵ', "theta.alt": 'ϑ', "phi.alt": 'ϕ',
	"rho.alt": 'ϱ', "pi.alt": 'ϖ', "kappa.alt": 'ϰ',

	"plus": '+', "minus": '−', "plus.minus": '±', "minus.plus": '∓',
	"times": '×', "div": '÷', "dot.op": '⋅', "circle.small": '∘',
	"star.op": '⋆', "and": '∧', "or": '∨', "sect": '∩', "union": '∪',
	"plus.circle": '⊕', "minus.circle": '⊖', "times.circle": '⊗',
	"slash.circle": '⊘', "dot.circle": '⊙', "without": '∖',
	"dagger": '†', "dagger.double": '‡',

	"eq": '=', "lt": '<', "gt": '>', "eq.not": '≠', "lt.eq": '≤', "gt.eq": '≥',
	"lt.double": '≪', "gt.double": '≫', "approx": '≈', "equiv": '≡',
	"tilde": '∼', "tilde.eq": '≃', "tilde.equiv": '≅', "prop": '∝',
	"in": '∈', "in.not": '∉', "in.rev": '∋', "subset": '⊂',
	"supset": '⊃', "subset.eq": '⊆', "supset.eq": '⊇', "divides": '∣',
	"parallel": '∥', "colon.eq": '≔', "tack.r": '⊢', "models": '⊨',

	"arrow.r": '→', "arrow.l": '←', "arrow.t": '↑', "arrow.b": '↓',
	"arrow.l.r": '↔', "arrow.r.double": '⇒', "arrow.l.double": '⇐',
	"arrow.l.r.double": '⇔', "arrow.r.bar": '↦', "arrow.r.long": '⟶',
	"arrow.r.double.long": '⟹',

	"sum": '∑', "product": '∏', "product.co": '∐', "integral": '∫',
	"integral.double": '∬', "integral.triple": '∭', "integral.cont": '∮',
	"and.big": '⋀', "or.big": '⋁', "sect.big": '⋂', "union.big": '⋃',
	"dot.circle.big": '⨀', "plus.circle.big": '⨁', "times.circle.big": '⨂',

	"infinity": '∞', "diff": '∂', "nabla": '∇', "forall": '∀',
	"exists": '∃', "exists.not": '∄', "nothing": '∅', "not": '¬',
	"prime": '′', "prime.double": '″', "dots.h": '…', "dots.h.c": '⋯',
	"dots.v": '⋮', "dots.down": '⋱', "planck.reduce": 'ℏ', "ell": 'ℓ',
	"aleph": 'ℵ', "angle": '∠', "Re": 'ℜ', "Im": 'ℑ',
	"RR": 'ℝ', "NN": 'ℕ', "ZZ": 'ℤ', "QQ": 'ℚ', "CC": 'ℂ',

	"bar.v": '|', "bar.v.double": '‖', "angle.l": '⟨', "angle.r": '⟩',
	"ceil.l": '⌈', "ceil.r": '⌉', "floor.l": '⌊', "floor.r": '⌋',
	"brace.t": '⏞', "brace.b": '⏟', "paren.l": '(', "paren.r": ')',
	"bracket.l": '[', "bracket.r": ']', "brace.l": '{', "brace.r": '}',
	"percent": '%', "amp": '&', "hash": '#', "dollar": '$', "dot": '.',

	"grave": '`', "acute": '´', "hat": '^', "macron": '¯', "overline": '‾',
	"breve": '˘', "diaer": '¨', "caron": 'ˇ',
}

// LookupSymbol resolves a symbol identifier, eg. "arrow.r", to its codepoint.
func LookupSymbol(name string) (rune, bool) {
	r, ok := names[name]
	return r, ok
}

// LookupCommand returns the markup command for a codepoint.
func LookupCommand(r rune) (Command, bool) {
	c, ok := commands[r]
	return c, ok
}

// LookupAccentCommand returns the command for a codepoint only if it is an accent.
func LookupAccentCommand(r rune) (Command, bool) {
	c, ok := commands[r]
	if !ok || c.Class != AccentClass {
		return Command{}, false
	}

	return c, true
}
