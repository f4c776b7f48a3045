// Package argel provides a minimal 2D raster canvas.
//
// # Overview
//
// A [Canvas] is a flat, row-major buffer of packed 24-bit RGB pixels.
// Pixels can be written one at a time, the whole canvas can be filled, and
// shapes can be drawn through [Canvas.Draw]. The finished buffer is written
// out as a binary PPM (P6) image.
//
// # Quick Start
//
//	c := argel.New(100, 100)
//	c.Fill(0x000000)
//	c.Draw(25, 25, argel.Circle(25), 0x00FF00)
//	if err := c.SavePPM("circle.ppm"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Shapes
//
// [Rectangle] and [Circle] return reusable [Shape] values. Drawing a shape
// that lies partly or entirely off the canvas is not an error; it is
// clipped. Degenerate shapes (zero width or height, non-positive radius)
// draw nothing.
//
// # Concurrency
//
// A Canvas has a single owner. There is no internal locking.
package argel
