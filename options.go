package argel

import "github.com/gogpu/argel/ppm"

// SaveOption configures how a canvas is written out.
//
// Example:
//
//	c.SavePPM("out.ppm", argel.WithBufferSize(64<<10))
type SaveOption func(*saveOptions)

// saveOptions holds optional configuration for EncodePPM and SavePPM.
type saveOptions struct {
	encoder []ppm.Option
}

func defaultSaveOptions() saveOptions {
	return saveOptions{}
}

// WithBufferSize sets the size in bytes of the staging buffer the encoder
// flushes through. The default is ppm.DefaultBufferSize.
func WithBufferSize(n int) SaveOption {
	return func(o *saveOptions) {
		o.encoder = append(o.encoder, ppm.WithBufferSize(n))
	}
}

func (o saveOptions) newEncoder() *ppm.Encoder {
	return ppm.NewEncoder(o.encoder...)
}
