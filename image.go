package argel

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/argel/ppm"
)

// EncodePPM writes the canvas to w as a binary PPM (P6) image.
func (c *Canvas) EncodePPM(w io.Writer, opts ...SaveOption) error {
	o := defaultSaveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o.newEncoder().Encode(w, c.pixels, c.width, c.height)
}

// SavePPM writes the canvas to the file at path as a binary PPM (P6)
// image. I/O failures are returned as *ppm.IOError; the file may be left
// truncated.
func (c *Canvas) SavePPM(path string, opts ...SaveOption) error {
	o := defaultSaveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.newEncoder().Save(path, c.pixels, c.width, c.height); err != nil {
		return err
	}
	Logger().Info("argel: saved image",
		slog.String("path", path),
		slog.Int("width", c.width),
		slog.Int("height", c.height),
		slog.Int("bytes", ppm.EncodedSize(c.width, c.height)))
	return nil
}

// DecodePPM reads a binary PPM (P6) image into a new canvas.
func DecodePPM(r io.Reader) (*Canvas, error) {
	m, err := ppm.Decode(r)
	if err != nil {
		return nil, err
	}
	return NewFromPixels(m.Width, m.Height, m.Pix), nil
}

// LoadPPM reads the binary PPM (P6) image at path into a new canvas.
func LoadPPM(path string) (*Canvas, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("argel: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodePPM(f)
}
