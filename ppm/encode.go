// Package ppm reads and writes binary PPM (P6) pixel dumps.
//
// The encoder writes a single header line
//
//	P6 <width> <height> 255\n
//
// followed by width*height*3 raw bytes, one R,G,B triple per pixel in
// row-major order with the top row first. There is no compression, no alpha
// channel and no row padding.
//
// Pixels are supplied as packed 0x00RRGGBB values. The encoder stages them
// through a fixed-size chunk buffer, so peak memory does not depend on the
// image size.
package ppm

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// Magic is the PPM binary pixel-dump magic token.
const Magic = "P6"

// MaxValue is the only channel maximum written and accepted.
const MaxValue = 255

// DefaultBufferSize is the chunk size used by Encode and Save.
const DefaultBufferSize = 4096

// minBufferSize is one pixel.
const minBufferSize = 3

// Encoding errors.
var (
	// ErrInvalidDimensions is returned when width or height is negative or
	// the encoded body size overflows an int.
	ErrInvalidDimensions = errors.New("ppm: invalid dimensions")

	// ErrShortBuffer is returned when the pixel slice holds fewer than
	// width*height values.
	ErrShortBuffer = errors.New("ppm: pixel buffer smaller than width*height")
)

// IOError records a failure of the destination while encoding.
// The partially written output is left as is.
type IOError struct {
	Op   string // "create", "write" or "close"
	Path string // empty when encoding to a plain io.Writer
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return "ppm: " + e.Op + ": " + e.Err.Error()
	}
	return "ppm: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// Header returns the header line written for a width×height image.
func Header(width, height int) string {
	return Magic + " " + strconv.Itoa(width) + " " + strconv.Itoa(height) + " " + strconv.Itoa(MaxValue) + "\n"
}

// EncodedSize returns the exact number of bytes Encode writes for a
// width×height image, or -1 when the dimensions are negative or the body
// size does not fit in an int.
func EncodedSize(width, height int) int {
	if !validDimensions(width, height) {
		return -1
	}
	body := width * height * 3
	header := len(Header(width, height))
	if body > math.MaxInt-header {
		return -1
	}
	return header + body
}

// validDimensions reports whether width*height*3 is representable.
func validDimensions(width, height int) bool {
	if width < 0 || height < 0 {
		return false
	}
	return width == 0 || height <= math.MaxInt/3/width
}

// Option configures an Encoder.
type Option func(*encoderOptions)

type encoderOptions struct {
	bufferSize int
}

func defaultOptions() encoderOptions {
	return encoderOptions{bufferSize: DefaultBufferSize}
}

// WithBufferSize sets the size of the staging buffer in bytes.
// Values smaller than one pixel (3 bytes) are raised to 3.
func WithBufferSize(n int) Option {
	return func(o *encoderOptions) {
		o.bufferSize = max(n, minBufferSize)
	}
}

// Encoder writes PPM images through a reusable staging buffer.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder configured by opts.
func NewEncoder(opts ...Option) *Encoder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Encoder{buf: make([]byte, o.bufferSize)}
}

// BufferSize returns the staging buffer size in bytes.
func (e *Encoder) BufferSize() int {
	return len(e.buf)
}

// Encode writes the first width*height values of pixels to w.
//
// The staging buffer is flushed whenever the next pixel would not fit and
// once more at the end. A write failure is returned as *IOError; w may then
// hold a truncated image.
func (e *Encoder) Encode(w io.Writer, pixels []uint32, width, height int) error {
	if !validDimensions(width, height) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	n := width * height
	if len(pixels) < n {
		return fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(pixels), n)
	}

	if _, err := io.WriteString(w, Header(width, height)); err != nil {
		return &IOError{Op: "write", Err: err}
	}

	buf := e.buf
	i := 0
	flushes := 0
	for _, p := range pixels[:n] {
		if i+3 > len(buf) {
			if _, err := w.Write(buf[:i]); err != nil {
				return &IOError{Op: "write", Err: err}
			}
			flushes++
			i = 0
		}
		buf[i+0] = byte(p >> 16)
		buf[i+1] = byte(p >> 8)
		buf[i+2] = byte(p)
		i += 3
	}
	if i > 0 {
		if _, err := w.Write(buf[:i]); err != nil {
			return &IOError{Op: "write", Err: err}
		}
		flushes++
	}

	Logger().Debug("ppm: encoded",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("flushes", flushes))
	return nil
}

// Save creates (or truncates) the file at path and encodes the image into
// it. Failures to create, write or close the file are returned as *IOError
// carrying the path.
func (e *Encoder) Save(path string, pixels []uint32, width, height int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: unwrapPathError(err)}
	}

	if err := e.Encode(f, pixels, width, height); err != nil {
		_ = f.Close()
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
		}
		return err
	}

	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: unwrapPathError(err)}
	}
	return nil
}

// Encode writes pixels to w using a fresh Encoder with default settings.
func Encode(w io.Writer, pixels []uint32, width, height int) error {
	return NewEncoder().Encode(w, pixels, width, height)
}

// Save writes pixels to the file at path using a fresh Encoder with
// default settings.
func Save(path string, pixels []uint32, width, height int) error {
	return NewEncoder().Save(path, pixels, width, height)
}

// unwrapPathError drops the *fs.PathError layer so IOError does not repeat
// the path. The underlying errno still matches errors.Is checks.
func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
