package imaging

import (
	"image"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// CompareRegionsResult describes how two regions of an image differ in
// color, both pixel by pixel and by their average colors.
type CompareRegionsResult struct {
	SimilarityScore float64 `json:"similarity_score"` // share of matching pixels, 0-1
	PixelsDifferent int     `json:"pixels_different"`
	TotalPixels     int     `json:"total_pixels"`
	SameSize        bool    `json:"same_size"`

	Average1 colorspace.Description `json:"average1"`
	Average2 colorspace.Description `json:"average2"`

	// AverageDistance is the CIEDE2000 distance between the two averages.
	AverageDistance float64 `json:"average_distance"`
	// ContrastRatio is the contrast between the two averages, 1-21.
	ContrastRatio float64 `json:"contrast_ratio"`
}

// CompareRegions compares r1 and r2 of img. Pixels are paired from the
// top-left corners over the overlap of both sizes; a pair counts as
// different when its CIEDE2000 distance exceeds threshold.
func CompareRegions(img image.Image, r1, r2 Region, threshold float64) (*CompareRegionsResult, error) {
	bounds := img.Bounds()
	if err := r1.validate(bounds); err != nil {
		return nil, err
	}
	if err := r2.validate(bounds); err != nil {
		return nil, err
	}

	s1, s2 := r1.Rect().Size(), r2.Rect().Size()
	w := min(s1.X, s2.X)
	h := min(s1.Y, s2.Y)

	total := w * h
	different := 0
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c1 := colorspace.FromColor(img.At(r1.X1+dx, r1.Y1+dy))
			c2 := colorspace.FromColor(img.At(r2.X1+dx, r2.Y1+dy))
			if colorspace.DistanceCIEDE2000(c1, c2) > threshold {
				different++
			}
		}
	}

	a1 := AverageColor(img, r1.Rect())
	a2 := AverageColor(img, r2.Rect())

	return &CompareRegionsResult{
		SimilarityScore: math.Round((1-float64(different)/float64(total))*1000) / 1000,
		PixelsDifferent: different,
		TotalPixels:     total,
		SameSize:        s1 == s2,
		Average1:        colorspace.Describe(a1),
		Average2:        colorspace.Describe(a2),
		AverageDistance: math.Round(colorspace.DistanceCIEDE2000(a1, a2)*10000) / 10000,
		ContrastRatio:   math.Round(colorspace.ContrastRatio(a1, a2)*100) / 100,
	}, nil
}
