package colorspace

import "fmt"

// Adjustment names one of the lightness derivations.
type Adjustment string

const (
	AdjustLighter Adjustment = "lighter"
	AdjustDarker  Adjustment = "darker"
	AdjustPrimary Adjustment = "primary"
)

// ParseAdjustment validates an adjustment name.
func ParseAdjustment(s string) (Adjustment, error) {
	switch a := Adjustment(s); a {
	case AdjustLighter, AdjustDarker, AdjustPrimary:
		return a, nil
	default:
		return "", fmt.Errorf("unknown adjustment %q (want lighter, darker or primary)", s)
	}
}

// Apply derives a new color from c. An unknown adjustment returns c
// unchanged.
func (a Adjustment) Apply(c RGBA, amount float64) RGBA {
	switch a {
	case AdjustLighter:
		return c.Lighter(amount)
	case AdjustDarker:
		return c.Darker(amount)
	case AdjustPrimary:
		return c.Primary(amount)
	default:
		return c
	}
}
