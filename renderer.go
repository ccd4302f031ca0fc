package tessella

import (
	"math"
	"time"

	"github.com/gogpu/gg"
)

// Animation pacing constants. Drift is radians per second at speed 1;
// the intervals divide elapsed time into palette and blend-mode steps.
const (
	rotationDrift   = 0.15
	paletteInterval = 4 * time.Second
	blendInterval   = 6 * time.Second
)

// Renderer draws one pattern per frame onto a Surface. It owns every
// piece of cross-frame state (the RNG, the active group and rules, and
// the animation clock), so independent Renderers never interfere and a
// seeded Renderer reproduces the same frames anywhere.
//
// Renderer is single-writer: all methods are called from the frame
// loop, never concurrently.
type Renderer struct {
	rng      *Rand
	group    Group
	rules    RuleSet
	pattern  PatternType
	palettes []Palette

	baseRotation    float64
	jitter          float64
	speed           float64
	widthAwareCells bool

	overlay []string

	start time.Time
	last  time.Time

	glassSeed int64
	petals    []petal
}

// NewRenderer creates a renderer. Without options it seeds from the wall
// clock and picks a starting group at random, like the installation does
// on page load; pass WithSeed and WithGroup for reproducible output.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		rng:      NewRandFromClock(),
		pattern:  PatternWallpaper,
		palettes: DefaultPalettes(),
		jitter:   0.2,
		speed:    1,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.group == "" {
		g, err := Pick(r.rng, Groups())
		if err != nil {
			return nil, err
		}
		r.group = g
	}

	rules, err := RulesFor(r.group)
	if err != nil {
		return nil, err
	}
	r.rules = rules
	r.glassSeed = r.rng.Next()
	return r, nil
}

// Group returns the active wallpaper group.
func (r *Renderer) Group() Group { return r.group }

// Rules returns the active rule set.
func (r *Renderer) Rules() RuleSet { return r.rules }

// Pattern returns the active pattern type.
func (r *Renderer) Pattern() PatternType { return r.pattern }

// BaseRotation returns the accumulated animation rotation. It drifts
// continuously and survives group and pattern switches.
func (r *Renderer) BaseRotation() float64 { return r.baseRotation }

// SetGroup switches the active group. The change takes effect on the
// next frame without resetting rotation or the RNG stream. An unknown
// group returns UnknownGroupError and the previous group is retained.
func (r *Renderer) SetGroup(g Group) error {
	rules, err := RulesFor(g)
	if err != nil {
		return err
	}
	r.group = g
	r.rules = rules
	r.glassSeed = r.rng.Next()
	Logger().Info("group switched", "group", g)
	return nil
}

// SetRandomGroup switches to a group picked from the RNG stream.
func (r *Renderer) SetRandomGroup() error {
	g, err := Pick(r.rng, Groups())
	if err != nil {
		return err
	}
	return r.SetGroup(g)
}

// SetPattern switches the visual program. Animation state carries over
// so the switch is continuous.
func (r *Renderer) SetPattern(p PatternType) error {
	if _, err := ParsePatternType(string(p)); err != nil {
		return err
	}
	r.pattern = p
	r.glassSeed = r.rng.Next()
	Logger().Info("pattern switched", "pattern", p)
	return nil
}

// SetOverlay replaces the poem lines drawn over the pattern. Overlay
// text never influences geometry; it is purely a display layer.
func (r *Renderer) SetOverlay(lines []string) {
	r.overlay = append([]string(nil), lines...)
}

// RenderFrame draws one complete frame for the given instant. A nil
// surface returns MissingSurfaceError so the caller can log and skip the
// frame; a zero-sized surface draws nothing and is not an error.
func (r *Renderer) RenderFrame(s Surface, now time.Time) error {
	if s == nil {
		return &MissingSurfaceError{Op: "render frame"}
	}

	if r.start.IsZero() {
		r.start = now
		r.last = now
	}
	dt := now.Sub(r.last).Seconds()
	r.last = now
	if dt < 0 {
		dt = 0
	}
	// A stalled host delivers one oversized dt; cap it so the pattern
	// lurches at most a quarter second.
	if dt > 0.25 {
		dt = 0.25
	}
	r.baseRotation += rotationDrift * r.speed * dt

	width, height := s.Width(), s.Height()
	if width <= 0 || height <= 0 {
		return nil
	}

	elapsed := now.Sub(r.start)
	palette := r.palettes[int(elapsed/paletteInterval)%len(r.palettes)]
	blend := blendCycle[int(elapsed/blendInterval)%len(blendCycle)]

	s.ClearPath()
	s.SetFillBrush(palette.BackgroundBrush(width, height))
	s.DrawRectangle(0, 0, float64(width), float64(height))
	if err := s.Fill(); err != nil {
		return err
	}

	switch r.pattern {
	case PatternGlass:
		r.renderGlass(s, palette, blend, elapsed)
	case PatternFlower:
		r.renderFlower(s, palette, blend, dt)
	default:
		r.renderWallpaper(s, palette, blend, elapsed)
	}

	r.drawOverlay(s, palette, width, height)
	return nil
}

func (r *Renderer) renderWallpaper(s Surface, palette Palette, blend gg.BlendMode, elapsed time.Duration) {
	width, height := s.Width(), s.Height()
	cx, cy := float64(width)/2, float64(height)/2

	r.drawDomainOutline(s, palette, cx, cy)

	// The pass count breathes between 2 and 5 over ~25 seconds.
	passes := 2 + int((math.Sin(elapsed.Seconds()*0.25)+1)*1.5)
	second := int(elapsed / time.Second)

	s.PushLayer(blend, 0.85)
	for pass := range passes {
		prim := Primitive((pass + second) % int(numPrimitives))
		placements := Instance(prim, r.rules, width, height, InstanceConfig{
			Rng:             r.rng,
			BaseRotation:    r.baseRotation,
			JitterAmount:    r.jitter,
			WidthAwareCells: r.widthAwareCells,
		})
		Logger().Debug("instanced pass",
			"pass", pass, "primitive", prim, "placements", len(placements))

		col := palette.Color(pass)
		size := math.Min(r.rules.XSpacing, r.rules.YSpacing) * 0.8
		for _, p := range placements {
			r.drawPlacement(s, p, col, cx, cy, size)
		}
	}
	s.PopLayer()
}

// drawDomainOutline strokes the fundamental domain's corner polygon and
// an inset copy shrunk toward the centroid, both under the animation
// rotation.
func (r *Renderer) drawDomainOutline(s Surface, palette Palette, cx, cy float64) {
	corners := r.rules.PolygonSides
	centroid := Centroid(r.group, r.rules)

	s.Push()
	s.Translate(cx, cy)
	s.Rotate(r.baseRotation)

	edge := palette.Color(0)
	s.SetRGBA(edge.R, edge.G, edge.B, 0.6)
	s.SetLineWidth(1.5)
	r.tracePolygon(s, corners, 1, centroid)
	if err := s.Stroke(); err != nil {
		Logger().Warn("outline stroke failed", "err", err)
	}

	inset := palette.Color(1)
	s.SetRGBA(inset.R, inset.G, inset.B, 0.4)
	s.SetLineWidth(1)
	r.tracePolygon(s, corners, 0.6, centroid)
	if err := s.Stroke(); err != nil {
		Logger().Warn("inset stroke failed", "err", err)
	}

	s.Pop()
}

// tracePolygon paths the domain corners scaled toward the centroid.
// Scale 1 is the exact domain; smaller values shrink it in place.
func (r *Renderer) tracePolygon(s Surface, corners int, scale float64, centroid gg.Point) {
	s.ClearPath()
	for i := range corners {
		c := Corner(i, r.group, r.rules)
		x := centroid.X + (c.X-centroid.X)*scale
		y := centroid.Y + (c.Y-centroid.Y)*scale
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.ClosePath()
}

func (r *Renderer) drawPlacement(s Surface, p Placement, col gg.RGBA, cx, cy, size float64) {
	s.Push()
	s.Translate(cx+p.X, cy+p.Y)
	s.Rotate(p.Rotation)
	s.Scale(p.Mirror, 1)
	s.SetRGBA(col.R, col.G, col.B, 0.7)

	switch p.Primitive {
	case PrimitiveLine:
		s.SetLineWidth(1)
		s.DrawLine(-size/2, 0, size/2, 0)
		if err := s.Stroke(); err != nil {
			Logger().Warn("placement stroke failed", "err", err)
		}
	case PrimitiveCircle:
		s.DrawCircle(0, 0, size*0.35)
		r.fillPlacement(s)
	case PrimitiveSquare:
		s.DrawRectangle(-size*0.35, -size*0.35, size*0.7, size*0.7)
		r.fillPlacement(s)
	case PrimitiveTriangle:
		s.DrawRegularPolygon(3, 0, 0, size*0.4, 0)
		r.fillPlacement(s)
	}

	s.Pop()
}

func (r *Renderer) fillPlacement(s Surface) {
	if err := s.Fill(); err != nil {
		Logger().Warn("placement fill failed", "err", err)
	}
}

func (r *Renderer) drawOverlay(s Surface, palette Palette, width, height int) {
	if len(r.overlay) == 0 {
		return
	}
	col := palette.Color(len(palette.Colors) - 1)
	s.SetRGBA(col.R, col.G, col.B, 0.9)
	lineHeight := float64(height) / float64(len(r.overlay)+3)
	for i, line := range r.overlay {
		y := lineHeight * float64(i+2)
		s.DrawStringAnchored(line, float64(width)/2, y, 0.5, 0.5)
	}
}
