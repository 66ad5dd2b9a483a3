package colorspace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexStrict(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PackedColor
	}{
		{"six digits opaque", "C1D2EB", 0xC1D2EBFF},
		{"leading hash", "#C1D2EB", 0xC1D2EBFF},
		{"lowercase", "c1d2eb", 0xC1D2EBFF},
		{"eight digits with alpha", "C1D2EB80", 0xC1D2EB80},
		{"black", "000000", 0x000000FF},
		{"white", "FFFFFF", 0xFFFFFFFF},
		{"short is numeric value", "FF", 0x0000FFFF},
		{"seven digits", "1000000", 0x01000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexStrict(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "got %s", got.Hex())
		})
	}
}

func TestParseHexStrict_Invalid(t *testing.T) {
	for _, input := range []string{"", "#", "ZZZ", "12G456", "-FFFFFF", "+FFFFFF", "FF_FFFF", "123456789", " FFFFFF"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseHexStrict(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidColorFormat), "error %v should wrap ErrInvalidColorFormat", err)
		})
	}
}

func TestParseHex_PermissiveFallback(t *testing.T) {
	for _, input := range []string{"", "ZZZ", "not a color", "123456789"} {
		t.Run(input, func(t *testing.T) {
			p := ParseHex(input)
			assert.Equal(t, PackedColor(0), p)
			assert.Equal(t, RGBA{}, p.RGBA())
		})
	}
}

func TestParseHex_SixDigitsAreOpaque(t *testing.T) {
	for _, input := range []string{"000000", "FFFFFF", "C1D2EB", "123456", "ABCDEF", "00FF00"} {
		assert.Equal(t, 1.0, ParseHex(input).RGBA().A, input)
	}
}

func TestPackedColor_RGBA(t *testing.T) {
	c := ParseHex("C1D2EB").RGBA()

	assert.InDelta(t, 0.757, c.R, 0.002)
	assert.InDelta(t, 0.824, c.G, 0.002)
	assert.InDelta(t, 0.922, c.B, 0.002)
	assert.Equal(t, 1.0, c.A)
}

func TestPackedColor_Channels(t *testing.T) {
	r, g, b, a := PackedColor(0x11223344).Channels()
	assert.Equal(t, [4]uint8{0x11, 0x22, 0x33, 0x44}, [4]uint8{r, g, b, a})
	assert.Equal(t, PackedColor(0x11223344), NewPackedColor(r, g, b, a))
}

func TestPackedColor_Hex(t *testing.T) {
	p := PackedColor(0xC1D2EB80)
	assert.Equal(t, "#C1D2EB80", p.Hex())
	assert.Equal(t, "#C1D2EB", p.HexRGB())
	assert.Equal(t, "#00000000", PackedColor(0).Hex())
}
