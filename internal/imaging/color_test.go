package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// solidImage creates an in-memory image filled with c.
func solidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// quadrantImage is red top-left, green top-right, blue bottom-left and white
// bottom-right.
func quadrantImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			switch {
			case x < width/2 && y < height/2:
				c = color.RGBA{255, 0, 0, 255}
			case y < height/2:
				c = color.RGBA{0, 255, 0, 255}
			case x < width/2:
				c = color.RGBA{0, 0, 255, 255}
			default:
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := solidImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040FF" {
		t.Errorf("Hex: got %s, want #FF8040FF", result.Hex)
	}
	if result.Channels != [4]uint8{255, 128, 64, 255} {
		t.Errorf("Channels: got %v", result.Channels)
	}
	if result.RGBA.A != 1 {
		t.Errorf("alpha: got %f, want 1", result.RGBA.A)
	}
}

func TestSampleColor_KnownHues(t *testing.T) {
	tests := []struct {
		name    string
		color   color.RGBA
		wantHex string
		wantHue float64
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#FF0000FF", 0},
		{"pure green", color.RGBA{0, 255, 0, 255}, "#00FF00FF", 120},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000FFFF", 240},
		{"white", color.RGBA{255, 255, 255, 255}, "#FFFFFFFF", 0},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000FF", 0},
		{"gray", color.RGBA{128, 128, 128, 255}, "#808080FF", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SampleColor(solidImage(4, 4, tt.color), 1, 1)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if math.Abs(result.HueDeg-tt.wantHue) > 1e-6 {
				t.Errorf("hue: got %f, want %f", result.HueDeg, tt.wantHue)
			}
		})
	}
}

func TestSampleColor_Translucent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})

	result, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#FF000080" {
		t.Errorf("Hex: got %s, want #FF000080", result.Hex)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := solidImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := quadrantImage(100, 100)

	points := []LabeledPoint{
		{X: 25, Y: 25, Label: "red"},
		{X: 75, Y: 25, Label: "green"},
		{X: 25, Y: 75, Label: "blue"},
		{X: 75, Y: 75},
	}
	want := []string{"#FF0000FF", "#00FF00FF", "#0000FFFF", "#FFFFFFFF"}

	result, err := SampleColorsMulti(img, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}
	if len(result.Samples) != len(points) {
		t.Fatalf("got %d samples, want %d", len(result.Samples), len(points))
	}
	for i, s := range result.Samples {
		if s.Label != points[i].Label {
			t.Errorf("sample %d label: got %q, want %q", i, s.Label, points[i].Label)
		}
		if s.Color.Hex != want[i] {
			t.Errorf("sample %d: got %s, want %s", i, s.Color.Hex, want[i])
		}
	}
}

func TestSampleColorsMulti_FailsFast(t *testing.T) {
	img := solidImage(10, 10, color.Black)
	_, err := SampleColorsMulti(img, []LabeledPoint{{X: 1, Y: 1}, {X: 20, Y: 1}})
	if err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}

func TestAverageColor(t *testing.T) {
	img := quadrantImage(10, 10)

	avg := AverageColor(img, img.Bounds())
	// Two quadrants carry red (red, white), same for green and blue.
	for name, v := range map[string]float64{"r": avg.R, "g": avg.G, "b": avg.B} {
		if math.Abs(v-0.5) > 1e-9 {
			t.Errorf("%s: got %f, want 0.5", name, v)
		}
	}

	if got := AverageColor(image.NewNRGBA(image.Rect(0, 0, 3, 3)), image.Rect(0, 0, 3, 3)); got.A != 0 {
		t.Errorf("transparent image average alpha: got %f, want 0", got.A)
	}
	if got := AverageColor(img, image.Rect(50, 50, 60, 60)); got.A != 0 {
		t.Errorf("empty intersection should be transparent, got %v", got)
	}
}

func TestDominantColors(t *testing.T) {
	img := quadrantImage(100, 100)

	result, err := DominantColors(img, 3, nil, 0)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 3 {
		t.Fatalf("got %d colors, want 3", len(result.Colors))
	}
	for _, c := range result.Colors {
		if math.Abs(c.Percentage-25) > 1e-9 {
			t.Errorf("%s: got %.2f%%, want 25%%", c.Color.Hex, c.Percentage)
		}
	}
}

func TestDominantColors_Quantizes(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{0xF0, 0xF0, 0xF0, 255})
	for x := 0; x < 10; x++ {
		img.Set(x, 0, color.RGBA{0xFA, 0xFA, 0xFA, 255})
	}

	result, err := DominantColors(img, 5, nil, 0)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 || result.Colors[0].Color.Hex != "#F0F0F0FF" {
		t.Errorf("expected a single #F0F0F0FF bucket, got %+v", result.Colors)
	}
}

func TestDominantColors_MergesSimilar(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{0x80, 0x20, 0x20, 255})
	for x := 0; x < 10; x++ {
		img.Set(x, 0, color.RGBA{0x90, 0x20, 0x20, 255})
	}

	unmerged, err := DominantColors(img, 5, nil, 0)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(unmerged.Colors) != 2 {
		t.Fatalf("without merging: got %d colors, want 2", len(unmerged.Colors))
	}

	merged, err := DominantColors(img, 5, nil, 0.1)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(merged.Colors) != 1 {
		t.Fatalf("with merging: got %d colors, want 1", len(merged.Colors))
	}
	if merged.Colors[0].Color.Hex != "#802020FF" || merged.Colors[0].Percentage != 100 {
		t.Errorf("merged: got %s at %.1f%%", merged.Colors[0].Color.Hex, merged.Colors[0].Percentage)
	}
}

func TestDominantColors_Region(t *testing.T) {
	img := quadrantImage(100, 100)

	result, err := DominantColors(img, 5, &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}, 0)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 || result.Colors[0].Color.Hex != "#F00000FF" {
		t.Errorf("top-left quadrant should be quantized red, got %+v", result.Colors)
	}
}

func TestDominantColors_Invalid(t *testing.T) {
	img := quadrantImage(10, 10)

	tests := []struct {
		name   string
		count  int
		region *Region
	}{
		{"zero count", 0, nil},
		{"region outside", 3, &Region{X1: 0, Y1: 0, X2: 20, Y2: 5}},
		{"inverted region", 3, &Region{X1: 5, Y1: 5, X2: 2, Y2: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DominantColors(img, tt.count, tt.region, 0); err == nil {
				t.Error("expected error")
			}
		})
	}
}
