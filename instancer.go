package tessella

import "math"

// InstanceConfig carries the per-frame inputs of an instancing pass.
type InstanceConfig struct {
	// Rng supplies the jitter draws. Required when JitterAmount > 0.
	Rng *Rand
	// BaseRotation is the driver's animated rotation, added on top of the
	// rule set's per-cell rotation terms.
	BaseRotation float64
	// JitterAmount bounds the random offset applied to every emitted
	// coordinate. Zero disables jitter (and consumes no draws).
	JitterAmount float64
	// WidthAwareCells derives the column count from the canvas width.
	// By default both axes count from the canvas height; the 17 rule
	// rows were tuned against that behavior, so only opt in
	// deliberately.
	WidthAwareCells bool
}

// Placement is one transformed copy of a primitive, ready to draw.
type Placement struct {
	Primitive Primitive
	// X, Y position the copy relative to the pattern centre, jitter
	// already applied.
	X, Y float64
	// Rotation orients directional primitives (lines, triangles).
	Rotation float64
	// Mirror is -1 for the reflected pass of a mirrored group, else 1.
	Mirror float64
}

// Instance replicates a primitive across the tiling grid covering a
// width x height canvas, applying each cell's symmetry transforms.
//
// The transform order is fixed: translate, rotate, flip, instance-rotate,
// mirror, jitter. Transforms do not commute, and the 17 rule rows encode
// their constants against exactly this order.
//
// The result is a finite slice; re-running with an equally seeded Rng
// reproduces it exactly. A degenerate canvas returns an empty slice.
func Instance(prim Primitive, rules RuleSet, width, height int, cfg InstanceConfig) []Placement {
	if width <= 0 || height <= 0 {
		return nil
	}

	cellCountX := int(float64(height)/rules.XSpacing) + 2
	if cfg.WidthAwareCells {
		cellCountX = int(float64(width)/rules.XSpacing) + 2
	}
	cellCountY := int(float64(height)/rules.YSpacing) + 2

	mirrors := []float64{1}
	if rules.MirrorInstances {
		mirrors = []float64{-1, 1}
	}

	out := make([]Placement, 0, cellCountX*cellCountY*rules.InstancesPerCell*len(mirrors))

	for y := range cellCountY {
		for x := range cellCountX {
			posX := (float64(x) - float64(cellCountX)/2 + (float64(y)-float64(cellCountY)/2)*rules.Shear) * rules.XSpacing
			posY := (float64(y) - float64(cellCountY)/2) * rules.YSpacing

			cellRotation := rules.PerCellRotation*float64(x) +
				rules.PerRowRotation*float64(y) +
				rules.RotationOffset +
				cfg.BaseRotation

			xFlipped := rules.XFlip && x%2 == 0
			if xFlipped {
				posX += rules.XSpacing
			}

			yFlipped := (rules.YFlip && x%2 == 0) ||
				(rules.YFlipAlternatePairs && (x/2)%2 == 0) ||
				(rules.YFlipAlternateRows && y%2 == 0)
			if rules.YFlipAlternateRows && y%2 == 0 {
				posY += rules.YSpacing
			}

			for i := range rules.InstancesPerCell {
				rotation := cellRotation + float64(i)*(2*math.Pi/float64(rules.InstancesPerCell))
				sin, cos := math.Sincos(rotation)

				for _, mirror := range mirrors {
					fx := posX*cos - posY*sin
					fy := posX*sin + posY*cos

					if xFlipped {
						fx = -fx
					}
					if yFlipped {
						fy = -fy
					}
					fx *= mirror

					if cfg.JitterAmount > 0 && cfg.Rng != nil {
						fx = cfg.Rng.Jitter(fx, cfg.JitterAmount)
						fy = cfg.Rng.Jitter(fy, cfg.JitterAmount)
					}

					out = append(out, Placement{
						Primitive: prim,
						X:         fx,
						Y:         fy,
						Rotation:  rotation,
						Mirror:    mirror,
					})
				}
			}
		}
	}

	return out
}
