package tessella

import "math"

// BaseSpacing is the unscaled tile spacing every rule set starts from.
// The per-group halvings and doublings below are calibrated against it.
const BaseSpacing = 16.0

// RuleSet holds the geometric constants that realize one wallpaper
// group's symmetries on a tiled grid. Values are data, not derivation:
// each row transcribes the textbook constraints (rotation order,
// reflection axes, glide planes) as concrete defaults.
//
// RuleSet is a value type; RulesFor returns a fresh copy and nothing
// mutates a rule set mid-render.
type RuleSet struct {
	// PolygonSides is the fundamental domain's side count, 3 or 4.
	PolygonSides int
	// BaseAngle is the angle of the domain edge from corner 0 to corner 2.
	BaseAngle float64

	// XSpacing and YSpacing are the cell strides of the tiling grid.
	XSpacing float64
	YSpacing float64

	// RotationOffset is a constant rotation applied to every cell.
	RotationOffset float64
	// PerCellRotation accumulates per grid column.
	PerCellRotation float64
	// PerRowRotation accumulates per grid row.
	PerRowRotation float64

	// Shear skews rows horizontally by Shear*XSpacing per row.
	Shear float64

	// XFlip mirrors cells in even columns across the Y axis.
	XFlip bool
	// YFlip mirrors cells in even columns across the X axis.
	YFlip bool
	// YFlipAlternatePairs mirrors cells in even column pairs.
	YFlipAlternatePairs bool
	// YFlipAlternateRows mirrors cells in even rows.
	YFlipAlternateRows bool

	// InstancesPerCell is the rotational copy count per cell.
	InstancesPerCell int
	// MirrorInstances adds a reflected pass per rotational copy.
	MirrorInstances bool
}

// sqrt34 is sqrt(3/4), the height of a unit equilateral triangle's
// bounding row. It relates row spacing to column spacing in every
// hexagonal-lattice group.
var sqrt34 = math.Sqrt(3.0 / 4.0)

// RulesFor returns the rule set for a wallpaper group. It is a pure
// function: the same group always yields a structurally equal value.
// Unrecognized groups return an UnknownGroupError; callers should fall
// back to their last valid group rather than abort.
func RulesFor(g Group) (RuleSet, error) {
	// Rectangular-grid defaults; each row below overrides its own fields.
	r := RuleSet{
		PolygonSides:     4,
		BaseAngle:        math.Pi / 2,
		XSpacing:         BaseSpacing,
		YSpacing:         BaseSpacing,
		InstancesPerCell: 1,
	}

	switch g {
	case P1: // translations only
		r.YSpacing = sqrt34 * r.XSpacing
		r.BaseAngle = math.Pi / 3
		r.Shear = 0.5
		r.XSpacing *= 0.5

	case PM: // reflection along one axis
		r.XFlip = true
		r.XSpacing *= 0.5

	case PMM: // reflections along two axes
		r.XFlip = true
		r.YFlipAlternateRows = true
		r.XSpacing *= 0.5

	case PG: // glide reflection
		r.YFlip = true
		r.XSpacing *= 0.5

	case PMG: // reflection + rotation
		r.XFlip = true
		r.YFlipAlternatePairs = true
		r.XSpacing *= 0.5

	case CMM: // reflection + diagonal
		r.XFlip = true
		r.YFlipAlternatePairs = true
		r.YFlipAlternateRows = true
		r.XSpacing *= 0.5

	case PGG: // two perpendicular glide reflections
		r.PerRowRotation = math.Pi
		r.YFlip = true
		r.XSpacing *= 0.5

	case P2: // 2-fold rotation
		r.YSpacing = sqrt34 * r.XSpacing
		r.BaseAngle = math.Pi / 3
		r.PerCellRotation = math.Pi
		r.Shear = 0.5
		r.XSpacing *= 0.5

	case P4: // 4-fold rotation
		r.XSpacing *= 2
		r.YSpacing *= 2
		r.InstancesPerCell = 4

	case P4M: // 4-fold rotation + reflection
		r.PolygonSides = 3
		r.BaseAngle = math.Pi / 4
		r.XSpacing *= 2
		r.YSpacing *= 2
		r.InstancesPerCell = 4
		r.MirrorInstances = true

	case P4G: // 4-fold rotation + reflection + glide
		r.PerCellRotation = math.Pi / 2
		r.XSpacing *= 2
		r.YSpacing *= 2
		r.Shear = 1
		r.InstancesPerCell = 2
		r.MirrorInstances = true

	case CM: // reflection + glide reflection
		r.XFlip = true
		r.Shear = 1
		r.XSpacing *= 0.5

	case P3: // 3-fold rotation
		r.RotationOffset = math.Pi / 6
		r.BaseAngle = 2 * math.Pi / 3
		r.XSpacing *= 2
		r.YSpacing = sqrt34 * r.XSpacing
		r.Shear = 0.5
		r.InstancesPerCell = 3

	case P3M1: // 3-fold rotation + reflection through centres
		r.PolygonSides = 3
		r.BaseAngle = math.Pi / 3
		r.RotationOffset = math.Pi / 6
		r.PerCellRotation = 2 * math.Pi / 3
		r.XSpacing *= 2
		r.YSpacing = sqrt34 * r.XSpacing
		r.Shear = 0.5
		r.InstancesPerCell = 3
		r.MirrorInstances = true

	case P31M: // 3-fold rotation + reflection between centres
		r.PolygonSides = 3
		r.BaseAngle = math.Pi / 6
		r.XSpacing *= 2
		r.YSpacing = sqrt34 * r.XSpacing
		r.Shear = 0.5
		r.InstancesPerCell = 3
		r.MirrorInstances = true

	case P6: // 6-fold rotation
		r.PolygonSides = 3
		r.BaseAngle = math.Pi / 6
		r.XSpacing *= 2
		r.YSpacing = sqrt34 * r.XSpacing
		r.Shear = 0.5
		r.InstancesPerCell = 6

	case P6M: // 6-fold rotation + reflection
		r.PolygonSides = 3
		r.BaseAngle = math.Pi / 6
		r.XSpacing *= 2
		r.YSpacing = sqrt34 * r.XSpacing
		r.Shear = 0.5
		r.InstancesPerCell = 6
		r.MirrorInstances = true

	default:
		return RuleSet{}, &UnknownGroupError{Name: string(g)}
	}

	return r, nil
}
