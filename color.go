package curveart

import (
	"fmt"
	"image/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB8(n.R, n.G, n.B).WithAlpha(float64(n.A) / 255)
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGB8 creates an opaque color from 8-bit components.
func RGB8(r, g, b uint8) RGBA {
	return RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// WithAlpha returns a copy of c with the given alpha.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Hex creates a color from a hex string, or opaque black if s is not
// valid. See ParseHex.
func Hex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex parses a color in one of the forms "RGB", "RGBA", "RRGGBB" or
// "RRGGBBAA", with an optional leading '#'.
func ParseHex(s string) (RGBA, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var digits [8]uint32
	for i := 0; i < len(hex) && i < len(digits); i++ {
		v, ok := hexDigit(hex[i])
		if !ok {
			return RGBA{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidInput, s)
		}
		digits[i] = v
	}

	var r, g, b, a uint32
	switch len(hex) {
	case 3:
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, 255
	case 4:
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6:
		r, g, b, a = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], 255
	case 8:
		r, g, b, a = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], digits[6]<<4|digits[7]
	default:
		return RGBA{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidInput, s)
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// HexString formats c as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c RGBA) HexString() string {
	n := c.Color().(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// premultiplied returns c as a premultiplied 8-bit color.RGBA.
func (c RGBA) premultiplied() color.RGBA {
	a := uint32(to8(c.A))
	return color.RGBA{
		R: uint8((uint32(to8(c.R))*a + 127) / 255),
		G: uint8((uint32(to8(c.G))*a + 127) / 255),
		B: uint8((uint32(to8(c.B))*a + 127) / 255),
		A: uint8(a),
	}
}

// to8 converts a [0, 1] component to a rounded 8-bit value.
func to8(x float64) uint8 {
	return uint8(clamp255(x*255) + 0.5)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Transparent = RGBA{}
)
