package glyph

import (
	"html"
	"slices"
	"strings"

	"golang.org/x/text/width"

	"github.com/gogpu/tessella"
)

// wideSkip marks the second column of a double-width glyph.
const wideSkip = rune(0)

// Canvas is a character grid the pattern is rendered into. It is the
// terminal-mode counterpart of the pixel surface: one glyph per cell,
// with East Asian wide glyphs occupying two columns.
type Canvas struct {
	w, h  int
	cells [][]rune
	poem  [][]bool
}

// NewCanvas creates a space-filled w x h canvas. Degenerate dimensions
// yield an empty canvas that ignores all placements.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{w: w, h: h}
	c.cells = make([][]rune, h)
	c.poem = make([][]bool, h)
	for y := range c.cells {
		c.cells[y] = make([]rune, w)
		c.poem[y] = make([]bool, w)
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
	return c
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.h }

// Clear resets every cell to a space.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
			c.poem[y][x] = false
		}
	}
}

// At returns the glyph at a cell, or space when out of bounds.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return ' '
	}
	if c.cells[y][x] == wideSkip {
		return ' '
	}
	return c.cells[y][x]
}

// Place writes a glyph at a cell. Out-of-bounds placements are dropped.
// A double-width glyph claims the neighboring column too; at the right
// edge it is dropped rather than split.
func (c *Canvas) Place(x, y int, g rune) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	if isWide(g) {
		if x+1 >= c.w {
			return
		}
		c.unlink(x, y)
		c.unlink(x+1, y)
		c.cells[y][x] = g
		c.cells[y][x+1] = wideSkip
		return
	}
	c.unlink(x, y)
	c.cells[y][x] = g
}

// unlink erases a cell together with its double-width pairing, so an
// overwrite never leaves an orphaned claimed column that would shorten
// the rendered row.
func (c *Canvas) unlink(x, y int) {
	if c.cells[y][x] == wideSkip && x > 0 {
		c.cells[y][x-1] = ' '
	}
	if isWide(c.cells[y][x]) && x+1 < c.w {
		c.cells[y][x+1] = ' '
	}
	c.cells[y][x] = ' '
}

func isWide(g rune) bool {
	switch width.LookupRune(g).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// RenderPattern draws one instancing pass as glyphs. Placements outside
// the canvas clamp to its edge, matching the installation's terminal
// mode, where the pattern visibly piles up at the borders.
func (c *Canvas) RenderPattern(r *tessella.Rand, g tessella.Group, rules tessella.RuleSet, glyphs []rune, baseRotation float64) error {
	if c.w == 0 || c.h == 0 || len(glyphs) == 0 {
		return nil
	}

	placements := tessella.Instance(tessella.PrimitiveLine, rules, c.w, c.h, tessella.InstanceConfig{
		Rng:          r,
		BaseRotation: baseRotation,
		JitterAmount: 0.2,
	})

	cx, cy := c.w/2, c.h/2
	for _, p := range placements {
		glyph, err := tessella.Pick(r, glyphs)
		if err != nil {
			return err
		}
		x := clamp(cx+int(p.X), 0, c.w-1)
		y := clamp(cy+int(p.Y), 0, c.h-1)
		c.Place(x, y, glyph)
	}
	return nil
}

// ScatterDense fills the canvas with count randomly placed glyphs, the
// high-density mode used by the chaos animation.
func (c *Canvas) ScatterDense(r *tessella.Rand, glyphs []rune, count int) error {
	if c.w == 0 || c.h == 0 || len(glyphs) == 0 {
		return nil
	}
	for range count {
		glyph, err := tessella.Pick(r, glyphs)
		if err != nil {
			return err
		}
		c.Place(r.IntBelow(c.w), r.IntBelow(c.h), glyph)
	}
	return nil
}

// maxPoemLines caps how many poem lines one canvas embeds.
const maxPoemLines = 5

// EmbedPoem centres up to five poem lines across the canvas, marking
// their cells so HTML output can highlight them. Longer inputs are
// thinned by RNG picks; blank lines are skipped.
func (c *Canvas) EmbedPoem(r *tessella.Rand, lines []string) {
	if c.w == 0 || c.h == 0 {
		return
	}

	selected := make([]string, 0, maxPoemLines)
	if len(lines) > maxPoemLines {
		for range maxPoemLines {
			line, err := tessella.Pick(r, lines)
			if err != nil {
				break
			}
			if strings.TrimSpace(line) == "" || slices.Contains(selected, line) {
				continue
			}
			selected = append(selected, line)
		}
	} else {
		for _, line := range lines {
			if strings.TrimSpace(line) != "" {
				selected = append(selected, line)
			}
		}
	}
	if len(selected) == 0 {
		return
	}

	spacing := c.h / (len(selected) + 2)
	if spacing < 3 {
		spacing = 3
	}

	for i, line := range selected {
		y := (i + 1) * spacing
		if y >= c.h {
			break
		}
		runes := []rune(line)
		start := (c.w - len(runes)) / 2
		if start < 0 {
			start = 0
		}
		for j, g := range runes {
			x := start + j
			if x >= c.w {
				break
			}
			c.Place(x, y, g)
			c.poem[y][x] = true
		}
	}
}

// Text renders the canvas as newline-joined rows.
func (c *Canvas) Text() string {
	var b strings.Builder
	for y := range c.cells {
		for x := range c.cells[y] {
			if c.cells[y][x] == wideSkip {
				continue
			}
			b.WriteRune(c.cells[y][x])
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// HTML renders the canvas as a monospace block with poem cells wrapped
// in highlight spans.
func (c *Canvas) HTML() string {
	var b strings.Builder
	b.WriteString(`<div class="pattern">`)
	b.WriteByte('\n')
	for y := range c.cells {
		inPoem := false
		for x := range c.cells[y] {
			g := c.cells[y][x]
			if g == wideSkip {
				continue
			}
			if c.poem[y][x] && !inPoem {
				b.WriteString(`<span class="poem">`)
				inPoem = true
			}
			if !c.poem[y][x] && inPoem {
				b.WriteString(`</span>`)
				inPoem = false
			}
			b.WriteString(html.EscapeString(string(g)))
		}
		if inPoem {
			b.WriteString(`</span>`)
		}
		b.WriteByte('\n')
	}
	b.WriteString(`</div>`)
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}