package argel

import "image/color"

// Color is a 24-bit RGB color packed as 0x00RRGGBB.
// The top byte is ignored.
type Color uint32

// Common colors.
const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
	Red   Color = 0xFF0000
	Green Color = 0x00FF00
	Blue  Color = 0x0000FF
)

// RGB packs three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Channels returns the red, green and blue components of c.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16 & 0xFF), uint8(c >> 8 & 0xFF), uint8(c & 0xFF)
}

// RGBA implements the color.Color interface. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}.RGBA()
}

// FromColor converts a standard color.Color to a Color. Translucent colors
// come out as if composited over black.
func FromColor(c color.Color) Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return RGB(rgba.R, rgba.G, rgba.B)
}
