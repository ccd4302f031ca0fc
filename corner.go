package tessella

import (
	"math"

	"github.com/gogpu/gg"
)

// Corner returns one corner of the fundamental domain for a group.
// Index 0 is always the origin; index 3 only exists for quadrilateral
// domains (PolygonSides == 4).
//
// The per-group distance overrides below are exact: they are the
// relationships that make each tiling's fundamental domain close up, and
// approximating them leaves visible seams between cells.
func Corner(index int, g Group, rules RuleSet) gg.Point {
	distance := rules.XSpacing

	switch g {
	case P3M1:
		distance = 2 / math.Sqrt(3) * rules.XSpacing / 2
	case P4, P4M, P4G:
		distance = rules.XSpacing / 2
	}

	switch index {
	case 1:
		switch g {
		case P3:
			distance = 0.5 * rules.XSpacing / sqrt34
		case P6M:
			distance = 0.5 * rules.XSpacing
		}
		return gg.Pt(distance, 0)

	case 2:
		switch g {
		case P3:
			distance = 0.5 * rules.XSpacing / sqrt34
		case P31M, P6, P6M:
			distance = 2 / math.Sqrt(3) * rules.XSpacing / 2
		case P4M:
			distance = 0.5 * math.Sqrt2 * rules.XSpacing
		}
		return gg.Pt(distance*math.Cos(rules.BaseAngle), distance*math.Sin(rules.BaseAngle))

	case 3:
		switch g {
		case P3:
			distance = 0.5 * rules.XSpacing / sqrt34
		case P1, P2:
			distance = 2 * (math.Sqrt(3) / 2) * rules.XSpacing
		case PM, PMM, PG, CM, CMM, PGG, PMG:
			distance = rules.XSpacing * math.Sqrt2
		case P4, P4M, P4G:
			distance = math.Sqrt2 * rules.XSpacing / 2
		}
		return gg.Pt(distance*math.Cos(rules.BaseAngle/2), distance*math.Sin(rules.BaseAngle/2))
	}

	return gg.Pt(0, 0)
}

// Centroid returns the centre of the fundamental domain, used as the
// shrink target for inset outlines and as the spawn anchor for blooms.
func Centroid(g Group, rules RuleSet) gg.Point {
	c0 := Corner(0, g, rules)
	if rules.PolygonSides == 4 {
		c3 := Corner(3, g, rules)
		return gg.Pt((c0.X+c3.X)/2, (c0.Y+c3.Y)/2)
	}
	c1 := Corner(1, g, rules)
	c2 := Corner(2, g, rules)
	return gg.Pt((c0.X+c1.X+c2.X)/3, (c0.Y+c1.Y+c2.Y)/3)
}

// RandomInDomain samples a point inside the fundamental domain by
// lerp-blending between corners, consuming draws from r.
func RandomInDomain(r *Rand, g Group, rules RuleSet) gg.Point {
	c0 := Corner(0, g, rules)
	c1 := Corner(1, g, rules)
	c2 := Corner(2, g, rules)

	p := c0

	blend := r.FloatUnit()
	p = gg.Pt(lerp(p.X, c1.X, blend), lerp(p.Y, c1.Y, blend))

	if rules.PolygonSides == 3 {
		blend = r.FloatUnit()
		p = gg.Pt(lerp(p.X, c2.X, blend), lerp(p.Y, c2.Y, blend))
		return p
	}

	// Quadrilateral domains blend the row coordinate and shear the column
	// by the same draw so the sample stays inside the sheared cell.
	blend = r.FloatUnit()
	p = gg.Pt(p.X+(c2.X-c0.X)*blend, lerp(p.Y, c2.Y, blend))
	return p
}

func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}
