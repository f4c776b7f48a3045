package argel

import (
	"log/slog"

	"github.com/gogpu/argel/internal/raster"
)

// Shape is something that can paint itself onto a canvas at a given
// origin. Shapes own their geometry; the origin and color are bound late,
// so one Shape value can be drawn many times.
//
// Implementations must tolerate any origin, including negative ones and
// ones beyond the canvas, without writing out of bounds.
type Shape interface {
	Rasterize(c *Canvas, x, y int, color Color)
}

// ShapeFunc adapts an ordinary function to the Shape interface.
type ShapeFunc func(c *Canvas, x, y int, color Color)

// Rasterize calls f(c, x, y, color).
func (f ShapeFunc) Rasterize(c *Canvas, x, y int, color Color) {
	f(c, x, y, color)
}

// RectShape is an axis-aligned filled rectangle.
//
// W and H may be negative, in which case the rectangle extends left or up
// from the origin. A zero dimension draws nothing.
type RectShape struct {
	W, H int
}

// Rectangle returns a filled w×h rectangle.
func Rectangle(w, h int) Shape {
	return RectShape{W: w, H: h}
}

// Rasterize implements Shape.
func (s RectShape) Rasterize(c *Canvas, x, y int, color Color) {
	if s.W == 0 || s.H == 0 {
		Logger().Debug("argel: skipping degenerate rectangle",
			slog.Int("w", s.W), slog.Int("h", s.H))
		return
	}
	raster.FillRect(c.width, c.height, x, y, s.W, s.H, c.spanFiller(color))
}

// CircleShape is a filled disk whose bounding box is the 2R×2R square
// anchored at the drawing origin. A non-positive radius, or one larger
// than 2^30 (2^14 on 32-bit platforms), draws nothing.
type CircleShape struct {
	R int
}

// Circle returns a filled disk of radius r.
func Circle(r int) Shape {
	return CircleShape{R: r}
}

// Rasterize implements Shape.
func (s CircleShape) Rasterize(c *Canvas, x, y int, color Color) {
	if s.R <= 0 || s.R > raster.MaxRadius {
		Logger().Debug("argel: skipping degenerate circle", slog.Int("r", s.R))
		return
	}
	raster.FillCircle(c.width, c.height, x, y, s.R, c.spanFiller(color))
}

// spanFiller returns a raster.SpanFunc writing color into c. A canvas
// without pixel storage accepts no spans.
func (c *Canvas) spanFiller(color Color) raster.SpanFunc {
	if len(c.pixels) == 0 {
		return func(int, int, int) {}
	}
	return func(y, x1, x2 int) {
		c.fillSpan(y, x1, x2, color)
	}
}
