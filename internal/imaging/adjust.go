package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// AdjustImage applies a lightness adjustment to every pixel of img and
// returns the new image. Transparent pixels stay transparent.
func AdjustImage(img image.Image, adj colorspace.Adjustment, amount float64) *image.RGBA {
	return adjust.Apply(img, func(px color.RGBA) color.RGBA {
		out := adj.Apply(colorspace.FromColor(px), amount)
		return color.RGBAModel.Convert(out).(color.RGBA)
	})
}

// AdjustLightness is AdjustImage with a named adjustment, returning the
// result as PNG.
func AdjustLightness(img image.Image, mode string, amount float64) (*ImageResult, error) {
	adj, err := colorspace.ParseAdjustment(mode)
	if err != nil {
		return nil, err
	}
	return newImageResult(AdjustImage(img, adj, amount))
}
