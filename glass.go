package tessella

import (
	"math"
	"time"

	"github.com/gogpu/gg"
)

// glassShard is one triangle of the kaleidoscope fold. Shards are
// regenerated from the glass seed, not the live RNG stream, so the fold
// holds its shape from frame to frame and only shimmers.
type glassShard struct {
	a, b, c  gg.Point
	colorIdx int
	phase    float64
}

const glassShardCount = 18

// renderGlass draws the kaleidoscope: a set of shards sampled from the
// fundamental domain, repeated around the centre with alternate wedges
// mirrored, the classic two-mirror fold.
func (r *Renderer) renderGlass(s Surface, palette Palette, blend gg.BlendMode, elapsed time.Duration) {
	width, height := s.Width(), s.Height()
	cx, cy := float64(width)/2, float64(height)/2

	wedges := r.rules.InstancesPerCell * 2
	if wedges < 6 {
		wedges = 6
	}

	// Stretch domain samples out to the canvas radius.
	reach := math.Hypot(cx, cy)
	scale := reach / (math.Max(r.rules.XSpacing, r.rules.YSpacing) * 1.5)

	shardRand := NewRand(r.glassSeed)
	shards := make([]glassShard, glassShardCount)
	for i := range shards {
		ring := 0.25 + 0.75*shardRand.FloatUnit()
		p0 := RandomInDomain(shardRand, r.group, r.rules)
		p1 := RandomInDomain(shardRand, r.group, r.rules)
		p2 := RandomInDomain(shardRand, r.group, r.rules)
		shards[i] = glassShard{
			a:        gg.Pt(p0.X*scale*ring, p0.Y*scale*ring),
			b:        gg.Pt(p1.X*scale*ring, p1.Y*scale*ring),
			c:        gg.Pt(p2.X*scale*ring, p2.Y*scale*ring),
			colorIdx: shardRand.IntBelow(len(palette.Colors)),
			phase:    shardRand.FloatIn(0, 2*math.Pi),
		}
	}

	t := elapsed.Seconds()

	// Sweep-gradient halo under the fold, rotating with it.
	halo := gg.NewSweepGradientBrush(cx, cy, r.baseRotation)
	for i := range wedges {
		col := palette.Color(i)
		halo.AddColorStop(float64(i)/float64(wedges), gg.RGBA{R: col.R, G: col.G, B: col.B, A: 0.18})
	}
	halo.AddColorStop(1, gg.RGBA{R: palette.Color(0).R, G: palette.Color(0).G, B: palette.Color(0).B, A: 0.18})
	s.ClearPath()
	s.SetFillBrush(halo)
	s.DrawCircle(cx, cy, reach)
	r.fillPlacement(s)

	s.PushLayer(blend, 0.9)
	for w := range wedges {
		s.Push()
		s.Translate(cx, cy)
		s.Rotate(r.baseRotation + float64(w)*2*math.Pi/float64(wedges))
		if w%2 == 1 {
			s.Scale(1, -1)
		}

		for _, sh := range shards {
			col := palette.Color(sh.colorIdx)
			shimmer := 0.35 + 0.25*math.Sin(t*0.8+sh.phase)
			s.SetRGBA(col.R, col.G, col.B, shimmer)

			s.ClearPath()
			s.MoveTo(sh.a.X, sh.a.Y)
			s.LineTo(sh.b.X, sh.b.Y)
			s.LineTo(sh.c.X, sh.c.Y)
			s.ClosePath()
			r.fillPlacement(s)
		}

		s.Pop()
	}
	s.PopLayer()
}
