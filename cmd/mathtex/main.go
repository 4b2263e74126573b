package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eolymp/go-mathtex"
	"github.com/tdewolff/argp"
)

type Convert struct {
	Output   string `short:"o" desc:"Output file"`
	Delimit  bool   `short:"d" desc:"Wrap markup in $ or $$ depending on the formula kind"`
	Validate bool   `desc:"Check that groups and delimiters in the output are balanced"`
	Verbose  bool   `short:"v" desc:"Log dropped characters and accents to stderr"`
	Input    string `index:"0" desc:"Input file with the formula tree in YAML or JSON, - for stdin"`
}

func main() {
	root := argp.NewCmd(&Convert{}, "Convert formula trees into TeX math markup")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Convert) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	if cmd.Verbose {
		mathtex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var r io.Reader = os.Stdin
	if cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()

		r = f
	}

	var w io.Writer = os.Stdout
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()

		w = f
	}

	return cmd.convert(r, w)
}

func (cmd *Convert) convert(r io.Reader, w io.Writer) error {
	node, err := mathtex.Decode(r)
	if err != nil {
		return err
	}

	tex, err := mathtex.Texify(node)
	if err != nil {
		return describe(err)
	}

	if cmd.Validate {
		if err := mathtex.Validate(tex); err != nil {
			return fmt.Errorf("invalid markup %q: %w", tex, err)
		}
	}

	out := bytes.NewBufferString(tex)
	if formula, ok := node.(*mathtex.Formula); ok && cmd.Delimit {
		out.Reset()
		if err := mathtex.Render(out, formula); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(w, out.String())
	return err
}

// describe prefixes conversion errors with the location they originate from
func describe(err error) error {
	if e, ok := err.(*mathtex.Error); ok && e.Span != 0 {
		return fmt.Errorf("span %d: %w", e.Span, err)
	}

	return err
}
