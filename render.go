package mathtex

import (
	"fmt"
	"io"
)

// Render writes the formula as a math environment: $...$ for inline formulas and
// $$...$$ for block formulas.
func Render(w io.Writer, f *Formula) error {
	tex, err := Texify(f)
	if err != nil {
		return err
	}

	delimiter := "$"
	if f.Block {
		delimiter = "$$"
	}

	_, err = fmt.Fprint(w, delimiter, tex, delimiter)
	return err
}
