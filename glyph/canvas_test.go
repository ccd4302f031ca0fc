package glyph

import (
	"strings"
	"testing"

	"github.com/gogpu/tessella"
)

func TestNewCanvasBlank(t *testing.T) {
	c := NewCanvas(10, 4)
	if c.Width() != 10 || c.Height() != 4 {
		t.Fatalf("canvas is %dx%d, want 10x4", c.Width(), c.Height())
	}
	for y := range 4 {
		for x := range 10 {
			if c.At(x, y) != ' ' {
				t.Fatalf("cell (%d,%d) = %q, want space", x, y, c.At(x, y))
			}
		}
	}
}

func TestPlaceAndAt(t *testing.T) {
	c := NewCanvas(8, 8)
	c.Place(3, 2, '█')
	if c.At(3, 2) != '█' {
		t.Errorf("At(3,2) = %q, want █", c.At(3, 2))
	}

	// Out-of-bounds placements are dropped, not clamped here.
	c.Place(-1, 0, 'x')
	c.Place(8, 0, 'x')
	c.Place(0, 8, 'x')
	for y := range 8 {
		for x := range 8 {
			if c.At(x, y) == 'x' {
				t.Fatalf("out-of-bounds glyph landed at (%d,%d)", x, y)
			}
		}
	}
}

func TestPlaceWideGlyph(t *testing.T) {
	c := NewCanvas(6, 2)
	c.Place(2, 0, '日')
	if c.At(2, 0) != '日' {
		t.Errorf("At(2,0) = %q, want 日", c.At(2, 0))
	}
	// The claimed neighbor reads as space and is skipped in output.
	if c.At(3, 0) != ' ' {
		t.Errorf("At(3,0) = %q, want space", c.At(3, 0))
	}
	line := strings.Split(c.Text(), "\n")[0]
	// 6 columns: 2 spaces + double-width glyph + 2 trailing spaces = 5 runes.
	if got := len([]rune(line)); got != 5 {
		t.Errorf("row rendered as %d runes (%q), want 5", got, line)
	}

	// A wide glyph at the right edge is dropped rather than split.
	c.Place(5, 1, '日')
	if c.At(5, 1) != ' ' {
		t.Errorf("edge cell = %q, want space", c.At(5, 1))
	}
}

func TestPlaceOverwritesWideGlyph(t *testing.T) {
	rowLen := func(c *Canvas, y int) int {
		return len([]rune(strings.Split(c.Text(), "\n")[y]))
	}

	// Overwriting the head of a wide glyph releases the claimed column.
	c := NewCanvas(6, 2)
	c.Place(2, 0, '日')
	c.Place(2, 0, '█')
	if c.At(2, 0) != '█' {
		t.Errorf("At(2,0) = %q, want █", c.At(2, 0))
	}
	if got := rowLen(c, 0); got != 6 {
		t.Errorf("row rendered as %d runes after head overwrite, want 6", got)
	}

	// Overwriting the claimed column erases the wide glyph behind it.
	c.Place(2, 1, '日')
	c.Place(3, 1, '█')
	if c.At(2, 1) != ' ' {
		t.Errorf("At(2,1) = %q after tail overwrite, want space", c.At(2, 1))
	}
	if c.At(3, 1) != '█' {
		t.Errorf("At(3,1) = %q, want █", c.At(3, 1))
	}
	if got := rowLen(c, 1); got != 6 {
		t.Errorf("row rendered as %d runes after tail overwrite, want 6", got)
	}

	// A wide glyph overlapping another wide glyph's head releases both
	// cells it displaces.
	c2 := NewCanvas(8, 1)
	c2.Place(2, 0, '日')
	c2.Place(3, 0, '本')
	if c2.At(2, 0) != ' ' {
		t.Errorf("At(2,0) = %q after overlap, want space", c2.At(2, 0))
	}
	if c2.At(3, 0) != '本' {
		t.Errorf("At(3,0) = %q, want 本", c2.At(3, 0))
	}
	if got := rowLen(c2, 0); got != 7 {
		t.Errorf("row rendered as %d runes with one wide glyph, want 7", got)
	}
}

func TestTextDimensions(t *testing.T) {
	c := NewCanvas(12, 5)
	rows := strings.Split(c.Text(), "\n")
	if len(rows) != 5 {
		t.Fatalf("Text() has %d rows, want 5", len(rows))
	}
	for i, row := range rows {
		if len([]rune(row)) != 12 {
			t.Errorf("row %d has %d columns, want 12", i, len([]rune(row)))
		}
	}
}

func TestRenderPatternPlacesGlyphs(t *testing.T) {
	rules, err := tessella.RulesFor(tessella.P4)
	if err != nil {
		t.Fatalf("RulesFor(p4) error = %v", err)
	}
	c := NewCanvas(40, 40)
	r := tessella.NewRand(1234)
	if err := c.RenderPattern(r, tessella.P4, rules, GlitchSet(), 0); err != nil {
		t.Fatalf("RenderPattern() error = %v", err)
	}

	placed := 0
	for y := range 40 {
		for x := range 40 {
			if c.At(x, y) != ' ' {
				placed++
			}
		}
	}
	if placed == 0 {
		t.Error("RenderPattern placed no glyphs")
	}
}

func TestRenderPatternDeterministic(t *testing.T) {
	rules, _ := tessella.RulesFor(tessella.P6M)
	render := func() string {
		c := NewCanvas(30, 30)
		if err := c.RenderPattern(tessella.NewRand(42), tessella.P6M, rules, GlitchSet(), 0.3); err != nil {
			t.Fatalf("RenderPattern() error = %v", err)
		}
		return c.Text()
	}
	if a, b := render(), render(); a != b {
		t.Error("RenderPattern not deterministic under equal seeds")
	}
}

func TestRenderPatternEmptyCanvas(t *testing.T) {
	rules, _ := tessella.RulesFor(tessella.P1)
	c := NewCanvas(0, 0)
	if err := c.RenderPattern(tessella.NewRand(1), tessella.P1, rules, GlitchSet(), 0); err != nil {
		t.Fatalf("RenderPattern on empty canvas error = %v", err)
	}
}

func TestScatterDense(t *testing.T) {
	c := NewCanvas(20, 10)
	if err := c.ScatterDense(tessella.NewRand(7), GlitchSet(), 50); err != nil {
		t.Fatalf("ScatterDense() error = %v", err)
	}
	placed := 0
	for y := range 10 {
		for x := range 20 {
			if c.At(x, y) != ' ' {
				placed++
			}
		}
	}
	if placed == 0 {
		t.Error("ScatterDense placed nothing")
	}
}

func TestEmbedPoemCentred(t *testing.T) {
	c := NewCanvas(40, 12)
	line := "pattern logic emerges"
	c.EmbedPoem(tessella.NewRand(1), []string{line})

	if !strings.Contains(c.Text(), line) {
		t.Fatalf("poem line not embedded:\n%s", c.Text())
	}
}

func TestEmbedPoemCapsAtFive(t *testing.T) {
	lines := []string{
		"one", "two", "three", "four", "five", "six", "seven", "eight",
	}
	c := NewCanvas(30, 40)
	c.EmbedPoem(tessella.NewRand(9), lines)

	embedded := 0
	for _, l := range strings.Split(c.Text(), "\n") {
		if strings.TrimSpace(l) != "" {
			embedded++
		}
	}
	if embedded > maxPoemLines {
		t.Errorf("%d poem rows embedded, cap is %d", embedded, maxPoemLines)
	}
}

func TestEmbedPoemSkipsBlank(t *testing.T) {
	c := NewCanvas(20, 10)
	c.EmbedPoem(tessella.NewRand(3), []string{"", "   ", "real line"})
	if !strings.Contains(c.Text(), "real line") {
		t.Error("non-blank line missing")
	}
}

func TestHTMLHighlightsPoem(t *testing.T) {
	c := NewCanvas(24, 9)
	c.EmbedPoem(tessella.NewRand(5), []string{"glyphs arrange"})
	out := c.HTML()

	if !strings.Contains(out, `<span class="poem">`) {
		t.Error("HTML output missing poem highlight span")
	}
	if strings.Count(out, "<span") != strings.Count(out, "</span>") {
		t.Error("unbalanced spans in HTML output")
	}
	if !strings.Contains(out, "glyphs arrange") {
		t.Error("poem text missing from HTML output")
	}
}

func TestHTMLEscapes(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Place(0, 0, '<')
	c.Place(1, 0, '&')
	out := c.HTML()
	if strings.Contains(out, "<&") {
		t.Error("HTML output not escaped")
	}
	if !strings.Contains(out, "&lt;") || !strings.Contains(out, "&amp;") {
		t.Error("expected escaped entities in HTML output")
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(5, 5)
	c.Place(2, 2, '█')
	c.Clear()
	if c.At(2, 2) != ' ' {
		t.Error("Clear left a glyph behind")
	}
}
