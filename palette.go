package tessella

import "github.com/gogpu/gg"

// Palette is a named ordered color scheme. The driver cycles palettes
// over time; a poem's mood may select the starting palette, but palettes
// never influence geometry.
type Palette struct {
	Name   string
	Colors []gg.RGBA
}

// Color returns the i-th color, wrapping around the scheme.
func (p Palette) Color(i int) gg.RGBA {
	if len(p.Colors) == 0 {
		return gg.RGB(1, 1, 1)
	}
	if i < 0 {
		i = -i
	}
	return p.Colors[i%len(p.Colors)]
}

// BackgroundBrush builds the background wash for a canvas, a vertical
// gradient from the palette's first color to its last.
func (p Palette) BackgroundBrush(width, height int) *gg.LinearGradientBrush {
	g := gg.NewLinearGradientBrush(0, 0, 0, float64(height))
	first := p.Color(0)
	last := p.Color(len(p.Colors) - 1)
	g.AddColorStop(0, gg.RGBA{R: first.R * 0.25, G: first.G * 0.25, B: first.B * 0.25, A: 1})
	g.AddColorStop(1, gg.RGBA{R: last.R * 0.1, G: last.G * 0.1, B: last.B * 0.1, A: 1})
	return g
}

// DefaultPalettes returns the built-in installation palettes.
// The returned slice is fresh and safe to reorder or extend.
func DefaultPalettes() []Palette {
	return []Palette{
		{Name: "terminal", Colors: []gg.RGBA{
			gg.Hex("#00ff9f"), gg.Hex("#00b8ff"), gg.Hex("#001eff"),
			gg.Hex("#bd00ff"), gg.Hex("#d600ff"),
		}},
		{Name: "protected-flower", Colors: []gg.RGBA{
			gg.Hex("#ff6ec7"), gg.Hex("#ffd319"), gg.Hex("#ff901f"),
			gg.Hex("#ff2975"), gg.Hex("#f222ff"),
		}},
		{Name: "glasshouse", Colors: []gg.RGBA{
			gg.Hex("#c9fffd"), gg.Hex("#96e8ff"), gg.Hex("#6cc4ff"),
			gg.Hex("#5a8cff"), gg.Hex("#7b61ff"),
		}},
		{Name: "paper", Colors: []gg.RGBA{
			gg.Hex("#fdf6e3"), gg.Hex("#eee8d5"), gg.Hex("#93a1a1"),
			gg.Hex("#586e75"), gg.Hex("#073642"),
		}},
		{Name: "ember", Colors: []gg.RGBA{
			gg.Hex("#ffedd8"), gg.Hex("#ffb347"), gg.Hex("#ff7847"),
			gg.Hex("#d64545"), gg.Hex("#6e1423"),
		}},
	}
}

// blendCycle is the composite-mode rotation applied as elapsed time
// advances. Normal first so a fresh run starts readable.
var blendCycle = []gg.BlendMode{
	gg.BlendNormal,
	gg.BlendMultiply,
	gg.BlendScreen,
	gg.BlendOverlay,
}
