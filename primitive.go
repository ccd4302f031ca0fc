package tessella

// Primitive selects the base shape the instancer replicates across the
// tiling. The driver cycles through all four over time.
type Primitive int

const (
	// PrimitiveLine is a stroked segment along the domain edge.
	PrimitiveLine Primitive = iota
	// PrimitiveCircle is a filled disc at the domain centre.
	PrimitiveCircle
	// PrimitiveSquare is a filled axis-aligned square.
	PrimitiveSquare
	// PrimitiveTriangle is a filled equilateral triangle.
	PrimitiveTriangle

	numPrimitives
)

// String returns the primitive's name for logs and the control panel.
func (p Primitive) String() string {
	switch p {
	case PrimitiveLine:
		return "line"
	case PrimitiveCircle:
		return "circle"
	case PrimitiveSquare:
		return "square"
	case PrimitiveTriangle:
		return "triangle"
	}
	return "unknown"
}
