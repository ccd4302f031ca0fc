// Package tessella renders animated wallpaper-group patterns for a
// generative art installation.
//
// # Overview
//
// tessella takes a seed and one of the 17 wallpaper groups, the complete
// classification of periodic plane symmetries, and tiles a canvas with
// transformed copies of simple primitives. A Driver animates the pattern
// frame by frame: rotation drifts, palettes and blend modes cycle, and
// alternate pattern programs (kaleidoscope glass, particle blooms) share
// the same symmetry machinery. Poem lines ride on top as a display
// overlay and never touch geometry.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/tessella"
//	)
//
//	r, err := tessella.NewRenderer(
//	    tessella.WithSeed(1234),
//	    tessella.WithGroup(tessella.P6M),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dc := gg.NewContext(1024, 1024)
//	r.RenderFrame(dc, time.Now())
//	dc.SavePNG("pattern.png")
//
// # Determinism
//
// All randomness flows through one linear-congruential generator: the
// same seed always renders the same frames, which is what lets an
// installation be reproduced on another machine. Seeding from the wall
// clock (the default) gives a fresh pattern per run.
//
// # Architecture
//
//   - Core: Rand, Group, RuleSet, Corner, Instance (the symmetry engine)
//   - Renderer/Driver: per-frame drawing and the animation loop
//   - glyph: Unicode character-canvas output with poem embedding
//   - poem: seed-word line selection for the overlay
//
// Drawing goes through the Surface interface; *gg.Context satisfies it,
// as does any 2D backend with the same primitive set.
package tessella
