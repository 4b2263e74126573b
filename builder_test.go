package mathtex_test

import (
	"testing"

	"github.com/eolymp/go-mathtex"
)

func TestBuilderEscaping(t *testing.T) {
	tt := []struct {
		char rune
		tex  string
	}{
		{char: ' ', tex: `\ `},
		{char: '%', tex: `\% `},
		{char: '&', tex: `\& `},
		{char: '$', tex: `\$ `},
		{char: '#', tex: `\# `},
		{char: '{', tex: `\left\{`},
		{char: '}', tex: `\right\}`},
		{char: '(', tex: `\left(`},
		{char: '[', tex: `\left[`},
		{char: ')', tex: `\right)`},
		{char: ']', tex: `\right]`},
		{char: 'q', tex: "q"},
		{char: 'Q', tex: "Q"},
		{char: '7', tex: "7"},
		{char: 'λ', tex: "λ"},
		{char: 'Σ', tex: "Σ"},
		{char: '|', tex: "|"},
		{char: '"', tex: `"`},
		{char: '≤', tex: `\leq `},
		{char: '∑', tex: `\sum `},
		{char: 'ℝ', tex: `\BbbR `},
		{char: '☃', tex: ""},
		{char: '~', tex: ""},
	}

	for _, tc := range tt {
		t.Run(string(tc.char), func(t *testing.T) {
			b := mathtex.NewBuilder()
			b.PushEscaped(tc.char)

			if got := b.Finish(); got != tc.tex {
				t.Errorf("Escaped character does not match: want %q, got %q", tc.tex, got)
			}
		})
	}
}

func TestBuilderWeakSpace(t *testing.T) {
	tt := []struct {
		name  string
		build func(b *mathtex.Builder)
		tex   string
	}{
		{
			name: "support on both sides",
			build: func(b *mathtex.Builder) {
				b.PushVerbatim("a")
				b.MarkSupport()
				b.RecordWeakSpace()
				b.MarkSupport()
				b.PushVerbatim("b")
			},
			tex: `a\ b`,
		},
		{
			name: "support before only",
			build: func(b *mathtex.Builder) {
				b.PushVerbatim("a")
				b.MarkSupport()
				b.RecordWeakSpace()
				b.PushVerbatim("b")
			},
			tex: "ab",
		},
		{
			name: "support after only",
			build: func(b *mathtex.Builder) {
				b.PushVerbatim("a")
				b.RecordWeakSpace()
				b.MarkSupport()
				b.PushVerbatim("b")
			},
			tex: "ab",
		},
		{
			name: "consecutive spaces collapse",
			build: func(b *mathtex.Builder) {
				b.PushVerbatim("a")
				b.MarkSupport()
				b.RecordWeakSpace()
				b.RecordWeakSpace()
				b.RecordWeakSpace()
				b.MarkSupport()
				b.PushEscaped('b')
			},
			tex: `a\ b`,
		},
		{
			name: "support is consumed by a write",
			build: func(b *mathtex.Builder) {
				b.PushVerbatim("a")
				b.MarkSupport()
				b.PushVerbatim("b")
				b.RecordWeakSpace()
				b.MarkSupport()
				b.PushVerbatim("c")
			},
			tex: "abc",
		},
		{
			name: "leading space is dropped",
			build: func(b *mathtex.Builder) {
				b.MarkSupport()
				b.RecordWeakSpace()
				b.MarkSupport()
				b.PushVerbatim("a")
			},
			tex: "a",
		},
		{
			name: "trailing space is dropped",
			build: func(b *mathtex.Builder) {
				b.PushVerbatim("a")
				b.MarkSupport()
				b.RecordWeakSpace()
				b.MarkSupport()
			},
			tex: "a",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			b := mathtex.NewBuilder()
			tc.build(b)

			if got := b.Finish(); got != tc.tex {
				t.Errorf("Markup does not match: want %q, got %q", tc.tex, got)
			}
		})
	}
}

func TestBuilderFinished(t *testing.T) {
	b := mathtex.NewBuilder()
	b.PushVerbatim("x")

	if got := b.Finish(); got != "x" {
		t.Fatalf("unexpected markup %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected write to a finished builder to panic")
		}
	}()

	b.PushVerbatim("y")
}
