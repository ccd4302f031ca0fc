package glyph

import (
	"testing"
	"unicode"

	"github.com/gogpu/tessella"
)

func TestSelectionCount(t *testing.T) {
	for _, count := range []int{1, 10, 100, 255} {
		got := Selection(tessella.NewRand(1234), count)
		if len(got) != count {
			t.Errorf("Selection(%d) returned %d glyphs", count, len(got))
		}
	}
}

func TestSelectionZero(t *testing.T) {
	if got := Selection(tessella.NewRand(1), 0); got != nil {
		t.Errorf("Selection(0) = %v, want nil", got)
	}
	if got := Selection(tessella.NewRand(1), -5); got != nil {
		t.Errorf("Selection(-5) = %v, want nil", got)
	}
}

func TestSelectionDeterministic(t *testing.T) {
	a := Selection(tessella.NewRand(42), 100)
	b := Selection(tessella.NewRand(42), 100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("glyph %d differs under equal seeds: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestSelectionAllGraphic(t *testing.T) {
	for _, g := range Selection(tessella.NewRand(7), 500) {
		if !unicode.IsGraphic(g) {
			t.Errorf("Selection produced non-graphic glyph %U", g)
		}
		if unicode.IsSpace(g) {
			t.Errorf("Selection produced whitespace glyph %U", g)
		}
	}
}

func TestBlocksWellFormed(t *testing.T) {
	blocks := Blocks()
	if len(blocks) == 0 {
		t.Fatal("no priority blocks")
	}
	for _, b := range blocks {
		if b.Name == "" {
			t.Error("block without a name")
		}
		if b.Lo >= b.Hi {
			t.Errorf("block %q has empty range %U..%U", b.Name, b.Lo, b.Hi)
		}
	}
}

func TestGlitchSetNonEmpty(t *testing.T) {
	set := GlitchSet()
	if len(set) == 0 {
		t.Fatal("empty glitch set")
	}
	for _, g := range set {
		if !unicode.IsGraphic(g) {
			t.Errorf("glitch glyph %U is not graphic", g)
		}
	}
}
