package imaging

import (
	"image"
	"math"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// countColor counts pixels in rect whose packed value equals want.
func countColor(img image.Image, rect image.Rectangle, want colorspace.PackedColor) int {
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if colorspace.FromColor(img.At(x, y)).Packed() == want {
				n++
			}
		}
	}
	return n
}

// nearlyEqual reports whether a and b differ by at most one 8-bit step per
// channel.
func nearlyEqual(a, b colorspace.RGBA) bool {
	const step = 1.0 / 255
	return math.Abs(a.R-b.R) <= step && math.Abs(a.G-b.G) <= step &&
		math.Abs(a.B-b.B) <= step && math.Abs(a.A-b.A) <= step
}

func TestRenderLabelImage(t *testing.T) {
	bg := colorspace.ParseHex("C1D2EB").RGBA()
	fg := bg.Primary(1.0)

	img, err := RenderLabelImage(bg, fg, "#C1D2EB", 120, 40)
	if err != nil {
		t.Fatalf("RenderLabelImage failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 120, 40) {
		t.Fatalf("bounds: got %v", img.Bounds())
	}

	if got := colorspace.FromColor(img.At(0, 0)).Packed(); got != bg.Packed() {
		t.Errorf("corner should be background, got %s", got.Hex())
	}
	if n := countColor(img, img.Bounds(), fg.Packed()); n == 0 {
		t.Error("label text was not drawn in the foreground color")
	}
}

func TestRenderLabelImage_InvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {maxSwatchSide + 1, 10}} {
		if _, err := RenderLabelImage(colorspace.White, colorspace.Black, "x", size[0], size[1]); err == nil {
			t.Errorf("size %v should be rejected", size)
		}
	}
}

func TestRenderSwatchImage(t *testing.T) {
	c := colorspace.ParseHex("C1D2EB").RGBA()

	img, err := RenderSwatchImage(c, 200, 50)
	if err != nil {
		t.Fatalf("RenderSwatchImage failed: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Fatalf("bounds: got %v, want 200x200", img.Bounds())
	}

	for i, cell := range colorspace.Preview(c) {
		corner := colorspace.FromColor(img.At(0, i*50))
		if !nearlyEqual(corner, cell) {
			t.Errorf("cell %d: got %s, want %s", i, corner.Hex(), cell.Hex())
		}
		rect := image.Rect(0, i*50, 200, (i+1)*50)
		if countColor(img, rect, cell.Primary(1.0).Packed()) == 0 {
			t.Errorf("cell %d: no label pixels in primary color", i)
		}
	}
}

func TestRenderSwatch(t *testing.T) {
	result, err := RenderSwatch(colorspace.Black, 100, 25)
	if err != nil {
		t.Fatalf("RenderSwatch failed: %v", err)
	}
	img := decodeResult(t, result)
	if img.Bounds().Dy() != 100 {
		t.Errorf("height: got %d, want 100", img.Bounds().Dy())
	}

	if _, err := RenderSwatch(colorspace.Black, 100, 0); err == nil {
		t.Error("zero cell height should be rejected")
	}
}
