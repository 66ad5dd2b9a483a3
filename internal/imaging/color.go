package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// SampleColor returns the color at (x, y) in every representation.
// Coordinates outside the image bounds are an error.
func SampleColor(img image.Image, x, y int) (*colorspace.Description, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	d := colorspace.Describe(colorspace.FromColor(img.At(x, y)))
	return &d, nil
}

// LabeledPoint is a pixel coordinate with an optional label that is echoed
// back in the result.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult is one sample from SampleColorsMulti.
type LabeledColorResult struct {
	Label string                 `json:"label,omitempty"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Color colorspace.Description `json:"color"`
}

// MultiColorResult holds samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point. Any out-of-bounds point fails the
// whole call and no partial results are returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// AverageColor returns the mean color of img within rect. Pixels are
// averaged premultiplied so transparent pixels do not darken the result.
func AverageColor(img image.Image, rect image.Rectangle) colorspace.RGBA {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return colorspace.Transparent
	}

	var sr, sg, sb, sa float64
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			sr += float64(r)
			sg += float64(g)
			sb += float64(b)
			sa += float64(a)
		}
	}
	if sa == 0 {
		return colorspace.Transparent
	}

	n := float64(rect.Dx() * rect.Dy())
	return colorspace.RGBA{
		R: sr / sa,
		G: sg / sa,
		B: sb / sa,
		A: sa / (n * 0xffff),
	}
}

// ColorFrequency is a dominant color and its share of the analyzed pixels.
type ColorFrequency struct {
	Color      colorspace.Description `json:"color"`
	Percentage float64                `json:"percentage"` // 0-100
}

// DominantColorsResult lists colors by descending frequency.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most frequent colors in img, or
// in region when it is non-nil.
//
// Pixels are quantized by dropping the low 4 bits of each 8-bit channel,
// so #F0F0F0 and #FAFAFA land in the same bucket. Buckets whose CIEDE2000
// distance to a more frequent bucket is below mergeDistance are folded
// into it; mergeDistance <= 0 disables merging. Alpha is ignored.
func DominantColors(img image.Image, count int, region *Region, mergeDistance float64) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	src, err := cropRegion(img, region)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	buckets := make(map[colorspace.PackedColor]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := colorspace.FromColor(src.At(x, y)).Packed().Channels()
			key := colorspace.NewPackedColor(r&0xF0, g&0xF0, b&0xF0, 0xFF)
			buckets[key]++
			total++
		}
	}

	type cluster struct {
		color colorspace.RGBA
		key   colorspace.PackedColor
		count int
	}
	sorted := make([]cluster, 0, len(buckets))
	for key, n := range buckets {
		sorted = append(sorted, cluster{color: key.RGBA(), key: key, count: n})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].key < sorted[j].key
	})

	merged := make([]cluster, 0, len(sorted))
	for _, c := range sorted {
		folded := false
		if mergeDistance > 0 {
			for i := range merged {
				if colorspace.DistanceCIEDE2000(merged[i].color, c.color) < mergeDistance {
					merged[i].count += c.count
					folded = true
					break
				}
			}
		}
		if !folded {
			merged = append(merged, c)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].count > merged[j].count
	})

	if len(merged) > count {
		merged = merged[:count]
	}

	colors := make([]ColorFrequency, len(merged))
	for i, c := range merged {
		colors[i] = ColorFrequency{
			Color:      colorspace.Describe(c.color),
			Percentage: float64(c.count) / float64(total) * 100,
		}
	}
	return &DominantColorsResult{Colors: colors}, nil
}
