package colorspace

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA is a color with normalized, non-premultiplied components in [0,1].
// It is the canonical representation from which HSLA and HSBA are derived.
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// HSLA is a hue, saturation, lightness and alpha view of a color.
type HSLA struct {
	H float64 `json:"h"` // Hue: 0-1 (degrees / 360)
	S float64 `json:"s"`
	L float64 `json:"l"`
	A float64 `json:"a"`
}

// HSBA is a hue, saturation, brightness (value) and alpha view of a color.
type HSBA struct {
	H float64 `json:"h"` // Hue: 0-1 (degrees / 360)
	S float64 `json:"s"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Common colors.
var (
	Black       = RGBA{A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{}
)

// FromHex builds an RGBA from the RGB part of a hex string and an explicit
// opacity. Malformed hex input is an error.
func FromHex(hex string, opacity float64) (RGBA, error) {
	p, err := ParseHexStrict(hex)
	if err != nil {
		return RGBA{}, err
	}
	c := p.RGBA()
	c.A = clamp01(opacity)
	return c, nil
}

// FromHSLA builds an RGBA from hue, saturation, lightness and alpha.
func FromHSLA(h, s, l, a float64) RGBA {
	h, s, v := HSLToHSB(h, clamp01(s), clamp01(l))
	return FromHSBA(h, s, v, a)
}

// FromHSBA builds an RGBA from hue, saturation, brightness and alpha.
func FromHSBA(h, s, v, a float64) RGBA {
	r, g, b := HSBToRGB(h, clamp01(s), clamp01(v))
	return RGBA{R: r, G: g, B: b, A: clamp01(a)}
}

// HSLA returns the HSL view of c.
func (c RGBA) HSLA() HSLA {
	h, s, l := RGBToHSL(c.R, c.G, c.B)
	return HSLA{H: h, S: s, L: l, A: c.A}
}

// HSBA returns the HSB view of c.
func (c RGBA) HSBA() HSBA {
	h, s, v := RGBToHSB(c.R, c.G, c.B)
	return HSBA{H: h, S: s, B: v, A: c.A}
}

// Lighter raises the HSL lightness of c by amount, capped at 1.
func (c RGBA) Lighter(amount float64) RGBA {
	return c.HSLA().Lighter(amount).RGBA()
}

// Darker lowers the HSL lightness of c by amount, floored at 0.
func (c RGBA) Darker(amount float64) RGBA {
	return c.HSLA().Darker(amount).RGBA()
}

// Primary picks a contrasting overlay color for c: Darker(amount) when c is
// light (L > 0.5), Lighter(amount) otherwise.
func (c RGBA) Primary(amount float64) RGBA {
	return c.HSLA().Primary(amount).RGBA()
}

// Packed rounds each component to 8 bits.
func (c RGBA) Packed() PackedColor {
	return NewPackedColor(to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

// Hex formats c as "#RRGGBBAA".
func (c RGBA) Hex() string {
	return c.Packed().Hex()
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(clamp01(c.R)*alpha*0xffff + 0.5)
	g = uint32(clamp01(c.G)*alpha*0xffff + 0.5)
	b = uint32(clamp01(c.B)*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return
}

// Model converts any color.Color to RGBA.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// FromColor converts a color.Color to RGBA, undoing alpha premultiplication.
func FromColor(c color.Color) RGBA {
	if rgba, ok := c.(RGBA); ok {
		return rgba
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// RGBA converts the HSL view back to RGBA.
func (c HSLA) RGBA() RGBA {
	return FromHSLA(c.H, c.S, c.L, c.A)
}

// HSBA converts the HSL view to the HSB view.
func (c HSLA) HSBA() HSBA {
	h, s, v := HSLToHSB(c.H, c.S, c.L)
	return HSBA{H: h, S: s, B: v, A: c.A}
}

// Lighter raises lightness by amount. Hue, saturation and alpha are kept.
func (c HSLA) Lighter(amount float64) HSLA {
	c.L = clamp01(math.Min(c.L+amount, 1))
	return c
}

// Darker lowers lightness by amount. Hue, saturation and alpha are kept.
func (c HSLA) Darker(amount float64) HSLA {
	c.L = clamp01(math.Max(c.L-amount, 0))
	return c
}

// Primary returns Darker(amount) for light colors and Lighter(amount)
// otherwise.
func (c HSLA) Primary(amount float64) HSLA {
	if c.L > 0.5 {
		return c.Darker(amount)
	}
	return c.Lighter(amount)
}

// RGBA converts the HSB view back to RGBA.
func (c HSBA) RGBA() RGBA {
	return FromHSBA(c.H, c.S, c.B, c.A)
}

// HSLA converts the HSB view to the HSL view.
func (c HSBA) HSLA() HSLA {
	h, s, l := HSBToHSL(c.H, c.S, c.B)
	return HSLA{H: h, S: s, L: l, A: c.A}
}

// Preview returns the demo ramp for c: the color itself, slightly lighter,
// darker, and fully darkened.
func Preview(c RGBA) []RGBA {
	return []RGBA{
		c,
		c.Lighter(0.12),
		c.Darker(0.18),
		c.Darker(1),
	}
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}
