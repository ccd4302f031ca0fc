package tessella

import "github.com/gogpu/gg"

// Surface is the drawing capability the renderer needs: path building,
// fill/stroke, an affine transform stack with save/restore, composite
// layers, and text. *gg.Context satisfies it; so does any backend with
// the same primitive set. The implementation is resolved when a Renderer
// or Driver is constructed, never probed per call.
type Surface interface {
	Width() int
	Height() int

	ClearWithColor(col gg.RGBA)
	SetRGBA(r, g, b, a float64)
	SetFillBrush(b gg.Brush)
	SetLineWidth(width float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	ClearPath()
	Fill() error
	Stroke() error

	DrawLine(x1, y1, x2, y2 float64)
	DrawCircle(x, y, r float64)
	DrawRectangle(x, y, w, h float64)
	DrawRegularPolygon(n int, x, y, r, rotation float64)

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)

	PushLayer(blendMode gg.BlendMode, opacity float64)
	PopLayer()

	DrawStringAnchored(s string, x, y, ax, ay float64)
}

var _ Surface = (*gg.Context)(nil)
