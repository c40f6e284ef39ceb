package rendering

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an 8-bit-per-channel RGBA color. Channels are not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// FromComponents constructs an opaque Color from red, green, blue bytes.
func FromComponents(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// FromRGBA unpacks a 0xRRGGBBAA value.
func FromRGBA(rgba uint32) Color {
	return Color{
		R: uint8(rgba >> 24),
		G: uint8(rgba >> 16),
		B: uint8(rgba >> 8),
		A: uint8(rgba),
	}
}

// FromRGB unpacks an RGBA-shaped value and forces the alpha byte to 0xFF.
// The low byte of rgb is discarded, so FromRGB(0x336699FF) and
// FromRGB(0x33669900) yield the same color.
func FromRGB(rgb uint32) Color {
	return FromRGBA(rgb&0xFFFFFF00 | 0x000000FF)
}

// Packed returns the color as 0xRRGGBBAA.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// RGBA implements image/color.Color, returning alpha-premultiplied
// 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%08x", c.Packed())
}

// ColorFromImage converts any image/color.Color into a Color.
func ColorFromImage(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Named looks up an SVG 1.1 color keyword ("tomato", "steelblue").
// Lookup is case-insensitive.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, false
	}
	return ColorFromImage(c), true
}

// ErrInvalidColor is returned by ParseColor for unrecognized input.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor accepts a color keyword, "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		if c, ok := Named(s); ok {
			return c, nil
		}
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	switch len(hex) {
	case 6:
		return FromRGB(uint32(v) << 8), nil
	case 8:
		return FromRGBA(uint32(v)), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Common colors.
var (
	ColorTransparent = Color{}
	ColorBlack       = FromRGB(0x000000FF)
	ColorWhite       = FromRGB(0xFFFFFFFF)
	ColorRed         = FromRGB(0xFF0000FF)
	ColorGreen       = FromRGB(0x00FF00FF)
	ColorBlue        = FromRGB(0x0000FFFF)
)
