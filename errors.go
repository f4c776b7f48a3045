package argel

import "errors"

// Pixel access errors.
var (
	// ErrOutOfBounds is returned when pixel coordinates are outside the
	// canvas.
	ErrOutOfBounds = errors.New("argel: coordinates out of bounds")

	// ErrEmptyBuffer is returned when the canvas has no pixel storage.
	// It signals a malformed Canvas rather than bad coordinates.
	ErrEmptyBuffer = errors.New("argel: pixel buffer is empty")
)
