package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Contrast thresholds for normal-size text (WCAG 2.x).
const (
	ContrastAA  = 4.5
	ContrastAAA = 7.0
)

// Colorful returns c as a go-colorful color. Alpha is dropped.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// FromColorful converts a go-colorful color with the given alpha.
func FromColorful(c colorful.Color, alpha float64) RGBA {
	c = c.Clamped()
	return RGBA{R: c.R, G: c.G, B: c.B, A: clamp01(alpha)}
}

// RelativeLuminance returns the luminance of c in [0,1] as defined for
// contrast computations: linear-light RGB weighted by the sRGB primaries.
func RelativeLuminance(c RGBA) float64 {
	r, g, b := c.Colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the contrast ratio between two colors, from 1 (no
// contrast) to 21 (black on white). The order of the arguments does not
// matter. Alpha is ignored.
func ContrastRatio(a, b RGBA) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}

// DistanceCIEDE2000 returns the perceptual distance between two colors.
// Values below about 0.01 are indistinguishable; alpha is ignored.
func DistanceCIEDE2000(a, b RGBA) float64 {
	return a.Colorful().DistanceCIEDE2000(b.Colorful())
}
