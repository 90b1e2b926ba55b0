// Package color provides an RGBA color type with clamped float32
// channels, plus parsing of W3 color names and hex codes.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-math32/math32"
)

// Color is an RGBA color. Channels are kept clamped to [0, 1].
type Color struct {
	r, g, b, a float32
}

// New creates an opaque color from float channels. Channels are
// clamped to [0, 1].
func New(r, g, b float32) Color { return NewAlpha(r, g, b, 1) }

// NewAlpha creates a color from float channels. Channels are clamped
// to [0, 1].
func NewAlpha(r, g, b, a float32) Color {
	return Color{
		r: math32.Clamp01(r),
		g: math32.Clamp01(g),
		b: math32.Clamp01(b),
		a: math32.Clamp01(a),
	}
}

// FromRGBA creates a color from byte channels.
func FromRGBA(r, g, b, a uint8) Color {
	return NewAlpha(
		float32(r)/255,
		float32(g)/255,
		float32(b)/255,
		float32(a)/255,
	)
}

// FromRGB creates an opaque color from byte channels.
func FromRGB(r, g, b uint8) Color { return FromRGBA(r, g, b, 255) }

// Parse creates a color from a W3 color name or a hex code such as
// #5A9CA4 or #669, optionally carrying alpha (#5A9CA4DD, #669D).
// Names are case-insensitive and ignore spaces and underscores, so
// "olivedrab", "Olive Drab", and "olive_drab" are the same color.
func Parse(nameOrHex string) (Color, error) {
	normalized := strings.ToLower(nameOrHex)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "_", "")

	if hex, ok := namedColors[normalized]; ok {
		return parseHex(hex)
	}

	return parseHex(nameOrHex)
}

// MustParse is like Parse but yields black for unknown input.
func MustParse(nameOrHex string) Color {
	c, err := Parse(nameOrHex)
	if err != nil {
		return New(0, 0, 0)
	}
	return c
}

func parseHex(hex string) (Color, error) {
	if !strings.HasPrefix(hex, "#") {
		return Color{}, fmt.Errorf("color: %q is neither a known name nor a hex code", hex)
	}

	var r, g, b uint8
	a := uint8(255)
	var err error

	switch len(hex) {
	case 4, 5:
		if r, err = doubledHexByte(hex[1:2]); err != nil {
			return Color{}, err
		}
		if g, err = doubledHexByte(hex[2:3]); err != nil {
			return Color{}, err
		}
		if b, err = doubledHexByte(hex[3:4]); err != nil {
			return Color{}, err
		}
		if len(hex) == 5 {
			if a, err = doubledHexByte(hex[4:5]); err != nil {
				return Color{}, err
			}
		}
	case 7, 9:
		if r, err = hexByte(hex[1:3]); err != nil {
			return Color{}, err
		}
		if g, err = hexByte(hex[3:5]); err != nil {
			return Color{}, err
		}
		if b, err = hexByte(hex[5:7]); err != nil {
			return Color{}, err
		}
		if len(hex) == 9 {
			if a, err = hexByte(hex[7:9]); err != nil {
				return Color{}, err
			}
		}
	default:
		return Color{}, fmt.Errorf("color: hex code %q has invalid length", hex)
	}

	return FromRGBA(r, g, b, a), nil
}

func hexByte(s string) (uint8, error) {
	value, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("color: invalid hex digits %q", s)
	}
	return uint8(value), nil
}

// doubledHexByte expands a single hex digit d into the byte 0xdd.
func doubledHexByte(s string) (uint8, error) {
	value, err := hexByte(s)
	if err != nil {
		return 0, err
	}
	return value*16 + value, nil
}

// R returns the red channel in [0, 1].
func (c Color) R() float32 { return c.r }

// G returns the green channel in [0, 1].
func (c Color) G() float32 { return c.g }

// B returns the blue channel in [0, 1].
func (c Color) B() float32 { return c.b }

// A returns the alpha channel in [0, 1].
func (c Color) A() float32 { return c.a }

// RByte returns the red channel as a byte.
func (c Color) RByte() uint8 { return uint8(c.r * 255) }

// GByte returns the green channel as a byte.
func (c Color) GByte() uint8 { return uint8(c.g * 255) }

// BByte returns the blue channel as a byte.
func (c Color) BByte() uint8 { return uint8(c.b * 255) }

// AByte returns the alpha channel as a byte.
func (c Color) AByte() uint8 { return uint8(c.a * 255) }

// SetR sets the red channel, clamped to [0, 1].
func (c *Color) SetR(value float32) { c.r = math32.Clamp01(value) }

// SetG sets the green channel, clamped to [0, 1].
func (c *Color) SetG(value float32) { c.g = math32.Clamp01(value) }

// SetB sets the blue channel, clamped to [0, 1].
func (c *Color) SetB(value float32) { c.b = math32.Clamp01(value) }

// SetA sets the alpha channel, clamped to [0, 1].
func (c *Color) SetA(value float32) { c.a = math32.Clamp01(value) }

// Approx reports whether both colors are equal within the default
// channel tolerance.
func (c Color) Approx(rhs Color) bool {
	return math32.Approx(c.r, rhs.r) && math32.Approx(c.g, rhs.g) &&
		math32.Approx(c.b, rhs.b) && math32.Approx(c.a, rhs.a)
}

func (c Color) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", c.r, c.g, c.b, c.a)
}
