package argel

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Canvas is a rectangular buffer of packed 0x00RRGGBB pixels stored in
// row-major order, top row first.
//
// Stride currently always equals width; it is kept separate so rows may
// later be padded.
type Canvas struct {
	width  int
	height int
	stride int
	pixels []uint32
}

// New creates a canvas of the given size with every pixel set to black.
//
// New panics if either dimension is negative or width*height does not fit
// in an int.
func New(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("argel: negative canvas size %dx%d", width, height))
	}
	if width != 0 && height > math.MaxInt/width {
		panic(fmt.Sprintf("argel: canvas size %dx%d overflows", width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		stride: width,
		pixels: make([]uint32, width*height),
	}
}

// NewFromPixels creates a canvas that adopts pixels as its storage.
// The slice is not copied.
//
// An empty slice yields a canvas whose pixel accessors report
// ErrEmptyBuffer. A non-empty slice shorter than width*height panics.
func NewFromPixels(width, height int, pixels []uint32) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("argel: negative canvas size %dx%d", width, height))
	}
	if len(pixels) != 0 && (width != 0 && height > len(pixels)/width) {
		panic(fmt.Sprintf("argel: %d pixels do not cover %dx%d", len(pixels), width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		stride: width,
		pixels: pixels,
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Stride returns the distance in pixels between vertically adjacent pixels.
func (c *Canvas) Stride() int {
	return c.stride
}

// Pixels returns the raw pixel storage.
func (c *Canvas) Pixels() []uint32 {
	return c.pixels
}

// Fill sets every pixel to color.
func (c *Canvas) Fill(color Color) {
	v := uint32(color)
	for i := range c.pixels {
		c.pixels[i] = v
	}
}

// GetPixel returns the channels of the pixel at (x, y).
func (c *Canvas) GetPixel(x, y int) (r, g, b uint8, err error) {
	if err := c.checkPixel(x, y); err != nil {
		return 0, 0, 0, err
	}
	r, g, b = Color(c.pixels[y*c.stride+x]).Channels()
	return r, g, b, nil
}

// SetPixel sets the pixel at (x, y) to color.
func (c *Canvas) SetPixel(x, y int, color Color) error {
	if err := c.checkPixel(x, y); err != nil {
		return err
	}
	c.pixels[y*c.stride+x] = uint32(color)
	return nil
}

// checkPixel reports ErrEmptyBuffer before ErrOutOfBounds.
func (c *Canvas) checkPixel(x, y int) error {
	if len(c.pixels) == 0 {
		return ErrEmptyBuffer
	}
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return nil
}

// Draw rasterizes s with its origin at (x, y). The origin may lie anywhere,
// including off the canvas; the shape clips itself.
func (c *Canvas) Draw(x, y int, s Shape, color Color) {
	s.Rasterize(c, x, y, color)
}

// fillSpan sets pixels x1..x2 (inclusive) of row y.
func (c *Canvas) fillSpan(y, x1, x2 int, color Color) {
	row := c.pixels[y*c.stride+x1 : y*c.stride+x2+1]
	v := uint32(color)
	for i := range row {
		row[i] = v
	}
}

// ToImage converts the canvas to an opaque image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	if len(c.pixels) == 0 {
		return img
	}
	for y := 0; y < c.height; y++ {
		src := c.pixels[y*c.stride : y*c.stride+c.width]
		dst := img.Pix[y*img.Stride:]
		for x, p := range src {
			i := x * 4
			dst[i+0] = uint8(p >> 16)
			dst[i+1] = uint8(p >> 8)
			dst[i+2] = uint8(p)
			dst[i+3] = 0xff
		}
	}
	return img
}

// FromImage creates a canvas from an image. Alpha is discarded after
// compositing over black.
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rgba, ok := img.(*image.RGBA)
	if !ok || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Copy(rgba, image.Point{}, img, bounds, draw.Src, nil)
	}

	c := New(width, height)
	for y := 0; y < height; y++ {
		src := rgba.Pix[y*rgba.Stride:]
		dst := c.pixels[y*c.stride : y*c.stride+width]
		for x := range dst {
			i := x * 4
			dst[x] = uint32(RGB(src[i+0], src[i+1], src[i+2]))
		}
	}
	return c
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	if len(c.pixels) == 0 || x < 0 || y < 0 || x >= c.width || y >= c.height {
		return color.RGBA{}
	}
	p := c.pixels[y*c.stride+x]
	return color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 0xff}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
