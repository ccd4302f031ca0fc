package tessella

import (
	"math"

	"github.com/gogpu/gg"
)

// petal is one bloom particle. Petals spawn inside the fundamental
// domain, drift outward, and fade; the fold around the centre gives the
// flower its symmetry.
type petal struct {
	pos      gg.Point
	vel      gg.Point
	age      float64
	life     float64
	size     float64
	colorIdx int
}

const (
	maxPetals      = 140
	petalsPerFrame = 3
)

// renderFlower advances and draws the particle bloom. Spawning consumes
// the renderer's RNG stream, so a seeded run blooms identically.
func (r *Renderer) renderFlower(s Surface, palette Palette, blend gg.BlendMode, dt float64) {
	width, height := s.Width(), s.Height()
	cx, cy := float64(width)/2, float64(height)/2

	for range petalsPerFrame {
		if len(r.petals) >= maxPetals {
			break
		}
		p := RandomInDomain(r.rng, r.group, r.rules)
		// Outward drift away from the centre plus a tangential curl.
		angle := math.Atan2(p.Y, p.X) + r.rng.FloatIn(-0.4, 0.4)
		speed := r.rng.FloatIn(8, 28)
		r.petals = append(r.petals, petal{
			pos:      p,
			vel:      gg.Pt(math.Cos(angle)*speed, math.Sin(angle)*speed),
			life:     r.rng.FloatIn(2, 5),
			size:     r.rng.FloatIn(1.5, 4.5),
			colorIdx: r.rng.IntBelow(len(palette.Colors)),
		})
	}

	alive := r.petals[:0]
	for i := range r.petals {
		pt := &r.petals[i]
		pt.age += dt
		if pt.age >= pt.life {
			continue
		}
		pt.pos = gg.Pt(pt.pos.X+pt.vel.X*dt*r.speed, pt.pos.Y+pt.vel.Y*dt*r.speed)
		alive = append(alive, *pt)
	}
	r.petals = alive

	folds := r.rules.InstancesPerCell
	if folds < 3 {
		folds = 3
	}

	s.PushLayer(blend, 0.9)
	for f := range folds {
		s.Push()
		s.Translate(cx, cy)
		s.Rotate(r.baseRotation + float64(f)*2*math.Pi/float64(folds))
		if r.rules.MirrorInstances && f%2 == 1 {
			s.Scale(1, -1)
		}

		for _, pt := range r.petals {
			col := palette.Color(pt.colorIdx)
			fade := 1 - pt.age/pt.life
			s.SetRGBA(col.R, col.G, col.B, 0.8*fade)
			s.DrawCircle(pt.pos.X, pt.pos.Y, pt.size*(0.5+fade))
			r.fillPlacement(s)
		}

		s.Pop()
	}
	s.PopLayer()
}
