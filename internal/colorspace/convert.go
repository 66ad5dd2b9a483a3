package colorspace

import "math"

// RGBToHSL converts normalized RGB to HSL. Hue is normalized to [0,1).
// Achromatic input (r == g == b) yields zero hue and saturation.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)

	l = (max + min) / 2
	if max == min {
		return 0, 0, l
	}

	s = (max - min) / (1 - math.Abs(2*l-1))
	return hue(r, g, b, max, min), clamp01(s), l
}

// RGBToHSB converts normalized RGB to HSB (HSV). Hue is normalized to [0,1).
func RGBToHSB(r, g, b float64) (h, s, v float64) {
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)

	v = max
	if max == 0 {
		return 0, 0, v
	}
	s = (max - min) / max
	if max == min {
		return 0, s, v
	}
	return hue(r, g, b, max, min), s, v
}

// hue computes the normalized hue for a chromatic color (max != min).
func hue(r, g, b, max, min float64) float64 {
	d := max - min
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6
	if h >= 1 {
		h -= 1
	}
	return h
}

// HSLToHSB converts HSL saturation and lightness to HSB saturation and
// brightness. Hue passes through unchanged.
func HSLToHSB(h, s, l float64) (float64, float64, float64) {
	v := l + s*math.Min(l, 1-l)
	if v == 0 {
		return h, 0, 0
	}
	return h, clamp01(2 * (1 - l/v)), clamp01(v)
}

// HSBToHSL is the inverse of HSLToHSB.
func HSBToHSL(h, s, v float64) (float64, float64, float64) {
	l := v * (1 - s/2)
	if l == 0 || l == 1 {
		return h, 0, l
	}
	return h, clamp01((v - l) / math.Min(l, 1-l)), clamp01(l)
}

// HSBToRGB converts HSB (HSV) with a normalized hue to normalized RGB.
func HSBToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	h = wrapHue(h) * 6
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// HSLToRGB converts HSL with a normalized hue to normalized RGB. The
// conversion goes through HSB.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	return HSBToRGB(HSLToHSB(h, s, l))
}

// wrapHue maps any hue onto [0,1).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	return h
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
