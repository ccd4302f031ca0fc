package tessella

import (
	"fmt"

	"github.com/gogpu/gg"
)

// fakeSurface records draw calls for assertions. It stands in for
// *gg.Context so renderer tests need no rasterizer.
type fakeSurface struct {
	w, h    int
	ops     []string
	panicOp string
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h}
}

func (f *fakeSurface) record(op string, args ...any) {
	if op == f.panicOp {
		panic("fakeSurface: forced panic on " + op)
	}
	f.ops = append(f.ops, fmt.Sprintf("%s%v", op, args))
}

func (f *fakeSurface) count(op string) int {
	n := 0
	for _, o := range f.ops {
		if len(o) >= len(op) && o[:len(op)] == op {
			n++
		}
	}
	return n
}

func (f *fakeSurface) Width() int  { return f.w }
func (f *fakeSurface) Height() int { return f.h }

func (f *fakeSurface) ClearWithColor(col gg.RGBA)      { f.record("ClearWithColor") }
func (f *fakeSurface) SetRGBA(r, g, b, a float64)      { f.record("SetRGBA", r, g, b, a) }
func (f *fakeSurface) SetFillBrush(b gg.Brush)         { f.record("SetFillBrush") }
func (f *fakeSurface) SetLineWidth(width float64)      { f.record("SetLineWidth", width) }
func (f *fakeSurface) MoveTo(x, y float64)             { f.record("MoveTo", x, y) }
func (f *fakeSurface) LineTo(x, y float64)             { f.record("LineTo", x, y) }
func (f *fakeSurface) ClosePath()                      { f.record("ClosePath") }
func (f *fakeSurface) ClearPath()                      { f.record("ClearPath") }
func (f *fakeSurface) Fill() error                     { f.record("Fill"); return nil }
func (f *fakeSurface) Stroke() error                   { f.record("Stroke"); return nil }
func (f *fakeSurface) DrawLine(x1, y1, x2, y2 float64) { f.record("DrawLine", x1, y1, x2, y2) }
func (f *fakeSurface) DrawCircle(x, y, r float64)      { f.record("DrawCircle", x, y, r) }
func (f *fakeSurface) DrawRectangle(x, y, w, h float64) {
	f.record("DrawRectangle", x, y, w, h)
}
func (f *fakeSurface) DrawRegularPolygon(n int, x, y, r, rotation float64) {
	f.record("DrawRegularPolygon", n, x, y, r, rotation)
}
func (f *fakeSurface) Push()                 { f.record("Push") }
func (f *fakeSurface) Pop()                  { f.record("Pop") }
func (f *fakeSurface) Translate(x, y float64) { f.record("Translate", x, y) }
func (f *fakeSurface) Rotate(angle float64)   { f.record("Rotate", angle) }
func (f *fakeSurface) Scale(x, y float64)     { f.record("Scale", x, y) }
func (f *fakeSurface) PushLayer(blendMode gg.BlendMode, opacity float64) {
	f.record("PushLayer", blendMode, opacity)
}
func (f *fakeSurface) PopLayer() { f.record("PopLayer") }
func (f *fakeSurface) DrawStringAnchored(s string, x, y, ax, ay float64) {
	f.record("DrawStringAnchored", s, x, y, ax, ay)
}
