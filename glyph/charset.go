// Package glyph renders patterns as Unicode character grids, the
// installation's terminal and web text mode.
package glyph

import (
	"unicode"

	"github.com/gogpu/tessella"
)

// Block is a named Unicode code-point range.
type Block struct {
	Name string
	Lo   rune
	Hi   rune
}

// priorityBlocks are the ranges favored for the glitch aesthetic.
// Selection samples only the first 50 code points of each block; the
// tails of several of these ranges are sparse or unassigned.
var priorityBlocks = []Block{
	{"Box Drawing", 0x2500, 0x257F},
	{"Block Elements", 0x2580, 0x259F},
	{"Braille Patterns", 0x2800, 0x28FF},
	{"CJK Symbols and Punctuation", 0x3000, 0x303F},
	{"Geometric Shapes", 0x25A0, 0x25FF},
	{"Mathematical Operators", 0x2200, 0x22FF},
	{"Miscellaneous Technical", 0x2300, 0x23FF},
	{"Arrows", 0x2190, 0x21FF},
	{"Miscellaneous Symbols", 0x2600, 0x26FF},
}

// Blocks returns the curated block table.
func Blocks() []Block {
	out := make([]Block, len(priorityBlocks))
	copy(out, priorityBlocks)
	return out
}

// glitchSet is the hand-picked fallback set: box drawing, block
// elements, and geometric shapes that read well at terminal size.
var glitchSet = []rune{
	'█', '▓', '▒', '░', '▀', '▄', '▌', '▐', '■', '□', '▪', '▫', '▬', '▭', '▮',
	'▯', '▰', '▱', '▲', '△', '▴', '▵', '▶', '▷', '▸', '▹', '►', '▻', '▼', '▽',
	'▾', '▿', '◀', '◁', '◂', '◃', '◄', '◅', '◆', '◇', '◈', '◉', '◊', '○', '◌',
	'◍', '◎', '●', '◐', '◑', '◒', '◓', '◔', '◕', '◖', '◗', '◘', '◙', '◚', '◛',
	'◜', '◝', '◞', '◟', '◠', '◡', '◢', '◣', '◤', '◥', '◦', '◧', '◨', '◩', '◪',
	'◫', '◬', '◭', '◮', '◯', '│', '┃', '┄', '┅', '┆', '┇', '┈', '┉', '┊', '┋',
	'┌', '┍', '┎', '┏', '┐', '┑', '┒', '┓', '└', '┕', '┖', '┗', '┘', '┙', '┚',
	'┛', '├', '┝', '┞', '┟', '┠', '┡', '┢', '┣', '┤', '┥', '┦', '┧', '┨', '┩',
	'┪', '┫', '┬', '┭', '┮', '┯', '┰', '┱', '┲', '┳', '┴', '┵', '┶', '┷', '┸',
	'┹', '┺', '┻', '┼', '┽', '┾', '┿', '╀', '╁', '╂', '╃', '╄', '╅', '╆', '╇',
	'╈', '╉', '╊', '╋', '╌', '╍', '╎', '╏', '═', '║', '╒', '╓', '╔', '╕', '╖',
	'╗', '╘', '╙', '╚', '╛', '╜', '╝', '╞', '╟', '╠', '╡', '╢', '╣', '╤', '╥',
	'╦', '╧', '╨', '╩', '╪', '╫', '╬', '╭', '╮', '╯', '╰', '╱', '╲', '╳', '╴',
	'╵', '╶', '╷', '╸', '╹', '╺', '╻', '╼', '╽', '╾', '╿', '⎕', '⌧', '⌐', '¬',
	'¦', '¯', '‾', '⎺', '⎻', '⎼', '⎽', '―', '⎯', '⎰', '⎱',
}

// GlitchSet returns the fallback glyph set.
func GlitchSet() []rune {
	out := make([]rune, len(glitchSet))
	copy(out, glitchSet)
	return out
}

// Selection picks count pattern glyphs from the shared RNG stream: half
// from the glitch set, the rest sampled from the priority blocks with
// non-graphic code points re-rolled into the glitch set. Deterministic
// for a seeded Rand.
func Selection(r *tessella.Rand, count int) []rune {
	if count <= 0 {
		return nil
	}
	out := make([]rune, 0, count)

	for range count / 2 {
		g, err := tessella.Pick(r, glitchSet)
		if err != nil {
			break
		}
		out = append(out, g)
	}

	for len(out) < count {
		block, err := tessella.Pick(r, priorityBlocks)
		if err != nil {
			break
		}
		hi := block.Hi
		if block.Lo+50 < hi {
			hi = block.Lo + 50
		}
		cp := rune(r.IntIn(int(block.Lo), int(hi)))
		if unicode.IsGraphic(cp) && !unicode.IsSpace(cp) {
			out = append(out, cp)
			continue
		}
		g, err := tessella.Pick(r, glitchSet)
		if err != nil {
			break
		}
		out = append(out, g)
	}

	return out
}
