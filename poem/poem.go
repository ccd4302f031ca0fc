// Package poem supplies the verse lines woven into rendered patterns.
//
// The installation overlays short poem fragments onto its output. This
// package holds the embedded line corpus, a heuristic syllable counter,
// and a Generator that selects thematically matching lines. Selection
// is driven entirely by an injected random source, so a fixed seed
// always yields the same lines.
package poem

import (
	"slices"
	"strings"

	"github.com/gogpu/tessella"
)

// defaultLines is the fallback corpus used when no external poems are
// supplied.
var defaultLines = []string{
	"digital whispers dance across empty space",
	"fractured geometry of forgotten dreams",
	"pattern logic emerges from chaos",
	"echoes of silicon in patterns unfold",
	"symmetry breaks at the edge of perception",
	"terminal beauty in unicode spaces",
	"glyphs arrange like constellations",
	"digital artifacts reveal hidden truths",
	"characters drift in mathematical seas",
	"structured randomness tells a story",
}

// DefaultLines returns a copy of the embedded corpus.
func DefaultLines() []string {
	return slices.Clone(defaultLines)
}

// Generator selects poem lines from a corpus.
type Generator struct {
	lines []string
}

// NewGenerator returns a Generator over the given corpus. Blank lines
// are dropped; an empty corpus falls back to the embedded default.
func NewGenerator(lines []string) *Generator {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		kept = slices.Clone(defaultLines)
	}
	return &Generator{lines: kept}
}

// Corpus returns a copy of the generator's lines.
func (g *Generator) Corpus() []string {
	return slices.Clone(g.lines)
}

// Lines returns up to n corpus lines containing seed as a
// case-insensitive substring. When fewer than n lines match, the
// remainder is filled with random picks from the corpus, without
// duplicates while the corpus allows it.
func (g *Generator) Lines(r *tessella.Rand, seed string, n int) []string {
	if n <= 0 {
		return nil
	}

	out := make([]string, 0, n)
	needle := strings.ToLower(seed)
	if needle != "" {
		for _, line := range g.lines {
			if strings.Contains(strings.ToLower(line), needle) {
				out = append(out, line)
				if len(out) == n {
					return out
				}
			}
		}
	}

	// Fill the rest by random pick. Bounded retries keep this
	// terminating on small corpora.
	for retries := 4 * n; len(out) < n && len(out) < len(g.lines) && retries > 0; retries-- {
		line, err := tessella.Pick(r, g.lines)
		if err != nil {
			break
		}
		if !slices.Contains(out, line) {
			out = append(out, line)
		}
	}
	return out
}

// NextSeed picks a fresh theme word from WordSet.
func (g *Generator) NextSeed(r *tessella.Rand) string {
	word, err := tessella.Pick(r, WordSet)
	if err != nil {
		return ""
	}
	return word
}
