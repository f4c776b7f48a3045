package ppm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/spakin/netpbm"
)

// Decoding errors.
var (
	// ErrFormat is returned when the input is not a binary PPM with
	// maximum value 255.
	ErrFormat = errors.New("ppm: invalid format")
)

// maxHeaderBytes bounds how much input is inspected before the body.
const maxHeaderBytes = 1024

// maxPixels bounds the allocation made for a decoded image.
const maxPixels = 1 << 28

// Image is a decoded PPM image holding packed 0x00RRGGBB pixels in
// row-major order.
type Image struct {
	Width  int
	Height int
	Pix    []uint32
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return color.RGBA{}
	}
	p := m.Pix[y*m.Width+x]
	return color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 0xff}
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// DecodeConfig reads only the header.
func DecodeConfig(r io.Reader) (image.Config, error) {
	cfg, err := peekHeader(bufio.NewReaderSize(r, maxHeaderBytes))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: cfg.Width, Height: cfg.Height}, nil
}

// Decode reads a complete P6 image with maximum value 255.
//
// Parsing is done by netpbm; the result is repacked into 0x00RRGGBB
// pixels. Any malformed or truncated input yields an error matching
// ErrFormat.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReaderSize(r, maxHeaderBytes)
	cfg, err := peekHeader(br)
	if err != nil {
		return nil, err
	}

	img, err := netpbm.Decode(br, &netpbm.DecodeOptions{
		Target: netpbm.PPM,
		Exact:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if img.MaxValue() != MaxValue {
		return nil, fmt.Errorf("%w: maxval %d", ErrFormat, img.MaxValue())
	}

	bounds := img.Bounds()
	if bounds.Dx() != cfg.Width || bounds.Dy() != cfg.Height {
		return nil, fmt.Errorf("%w: decoded %dx%d, header says %dx%d",
			ErrFormat, bounds.Dx(), bounds.Dy(), cfg.Width, cfg.Height)
	}

	m := &Image{Width: cfg.Width, Height: cfg.Height, Pix: make([]uint32, cfg.Width*cfg.Height)}
	for y := 0; y < m.Height; y++ {
		row := m.Pix[y*m.Width : (y+1)*m.Width]
		for x := range row {
			cr, cg, cb, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			row[x] = (cr>>8)<<16 | (cg>>8)<<8 | cb>>8
		}
	}
	return m, nil
}

// peekHeader validates the magic token and image size without consuming
// any input from br.
func peekHeader(br *bufio.Reader) (image.Config, error) {
	head, err := br.Peek(maxHeaderBytes)
	if err != nil && !errors.Is(err, io.EOF) {
		return image.Config{}, fmt.Errorf("ppm: read header: %w", err)
	}
	if !bytes.HasPrefix(head, []byte(Magic)) {
		return image.Config{}, fmt.Errorf("%w: missing %s magic", ErrFormat, Magic)
	}

	cfg, err := netpbm.DecodeConfig(bytes.NewReader(head))
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if cfg.Width < 0 || cfg.Height < 0 ||
		(cfg.Width > 0 && cfg.Height > maxPixels/cfg.Width) {
		return image.Config{}, fmt.Errorf("%w: image too large (%dx%d)", ErrFormat, cfg.Width, cfg.Height)
	}
	return cfg, nil
}
