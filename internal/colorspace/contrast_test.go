package colorspace

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio(Black, White), 1e-9)
	assert.InDelta(t, 21.0, ContrastRatio(White, Black), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio(White, White), 1e-9)

	gray := ParseHex("777777").RGBA()
	assert.InDelta(t, 4.48, ContrastRatio(gray, White), 0.01)
}

func TestRelativeLuminance(t *testing.T) {
	assert.Zero(t, RelativeLuminance(Black))
	assert.InDelta(t, 1.0, RelativeLuminance(White), 1e-9)
	assert.InDelta(t, 0.2126, RelativeLuminance(RGBA{R: 1, A: 1}), 1e-9)
}

func TestDistanceCIEDE2000(t *testing.T) {
	c := ParseHex("C1D2EB").RGBA()
	assert.InDelta(t, 0, DistanceCIEDE2000(c, c), 1e-12)
	assert.Greater(t, DistanceCIEDE2000(Black, White), 0.9)
	assert.Less(t, DistanceCIEDE2000(c, c.Lighter(0.01)), DistanceCIEDE2000(c, c.Lighter(0.1)))
}

func TestColorfulBridge(t *testing.T) {
	c := RGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.4}
	back := FromColorful(c.Colorful(), c.A)
	assert.Equal(t, c, back)

	clamped := FromColorful(colorful.Color{R: 1.2, G: -0.1, B: 0.5}, 2)
	assert.Equal(t, RGBA{R: 1, G: 0, B: 0.5, A: 1}, clamped)
}
