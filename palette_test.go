package tessella

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestDefaultPalettes(t *testing.T) {
	palettes := DefaultPalettes()
	if len(palettes) == 0 {
		t.Fatal("no default palettes")
	}
	seen := make(map[string]bool)
	for _, p := range palettes {
		if p.Name == "" {
			t.Error("palette without a name")
		}
		if seen[p.Name] {
			t.Errorf("duplicate palette %q", p.Name)
		}
		seen[p.Name] = true
		if len(p.Colors) == 0 {
			t.Errorf("palette %q has no colors", p.Name)
		}
		for i, c := range p.Colors {
			if c.A == 0 {
				t.Errorf("palette %q color %d is fully transparent", p.Name, i)
			}
		}
	}
}

func TestPaletteColorWraps(t *testing.T) {
	p := DefaultPalettes()[0]
	n := len(p.Colors)
	if p.Color(0) != p.Color(n) {
		t.Error("Color(n) does not wrap to Color(0)")
	}
	if p.Color(-1) != p.Color(1) {
		t.Error("negative index does not mirror")
	}
}

func TestPaletteColorEmpty(t *testing.T) {
	var p Palette
	c := p.Color(3)
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("empty palette Color() = %+v, want white", c)
	}
}

func TestBackgroundBrush(t *testing.T) {
	p := DefaultPalettes()[0]
	if p.BackgroundBrush(100, 200) == nil {
		t.Fatal("BackgroundBrush returned nil")
	}
}

func TestBlendCycleStartsNormal(t *testing.T) {
	if len(blendCycle) != 4 {
		t.Fatalf("len(blendCycle) = %d, want 4", len(blendCycle))
	}
	if blendCycle[0] != gg.BlendNormal {
		t.Error("blend cycle does not start at BlendNormal")
	}
}
