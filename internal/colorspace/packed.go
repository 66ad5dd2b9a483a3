package colorspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned by ParseHexStrict for input that is not
// a hex color of at most 8 digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// maxHexDigits is the longest accepted encoding (RRGGBBAA).
const maxHexDigits = 8

// PackedColor holds four 8-bit channels in big-endian order:
// red (most significant), green, blue, alpha (least significant).
type PackedColor uint32

// NewPackedColor packs four 8-bit channels.
func NewPackedColor(r, g, b, a uint8) PackedColor {
	return PackedColor(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// ParseHex parses a hex color permissively. Malformed input (empty string,
// non-hex characters, more than 8 digits) yields PackedColor(0), fully
// transparent black. Use ParseHexStrict to detect malformed input.
func ParseHex(s string) PackedColor {
	p, err := ParseHexStrict(s)
	if err != nil {
		return 0
	}
	return p
}

// ParseHexStrict parses a hex color of up to 8 digits with an optional
// leading '#'.
//
// Up to 6 digits are read as RRGGBB with an opaque alpha channel; shorter
// strings are taken as the numeric value, so "FF" is blue. 7 or 8 digits
// are read as RRGGBBAA.
func ParseHexStrict(s string) (PackedColor, error) {
	digits := strings.TrimPrefix(s, "#")
	if digits == "" || len(digits) > maxHexDigits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	// ParseUint rejects signs and underscores for an explicit base of 16.
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	if len(digits) <= 6 {
		return PackedColor(uint32(v)<<8 | 0xFF), nil
	}
	return PackedColor(v), nil
}

// Channels returns the red, green, blue and alpha bytes.
func (p PackedColor) Channels() (r, g, b, a uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// RGBA converts the packed channels to normalized components.
func (p PackedColor) RGBA() RGBA {
	r, g, b, a := p.Channels()
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Hex formats the color as "#RRGGBBAA".
func (p PackedColor) Hex() string {
	return fmt.Sprintf("#%08X", uint32(p))
}

// HexRGB formats the color as "#RRGGBB", dropping alpha.
func (p PackedColor) HexRGB() string {
	return fmt.Sprintf("#%06X", uint32(p)>>8)
}
