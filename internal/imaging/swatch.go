package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// maxSwatchSide bounds generated images.
const maxSwatchSide = 4096

// labelFace is the font used for swatch labels.
var labelFace font.Face = basicfont.Face7x13

// RenderLabelImage fills a width x height image with bg and draws text
// centered in fg.
func RenderLabelImage(bg, fg colorspace.RGBA, text string, width, height int) (*image.NRGBA, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	img := imaging.New(width, height, bg)

	metrics := labelFace.Metrics()
	textWidth := font.MeasureString(labelFace, text).Ceil()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Color(fg)),
		Face: labelFace,
		Dot: fixed.Point26_6{
			X: fixed.I((width - textWidth) / 2),
			Y: fixed.I((height-textHeight)/2 + metrics.Ascent.Ceil()),
		},
	}
	d.DrawString(text)
	return img, nil
}

// RenderLabel renders a single labeled cell as PNG.
func RenderLabel(bg, fg colorspace.RGBA, text string, width, height int) (*ImageResult, error) {
	img, err := RenderLabelImage(bg, fg, text, width, height)
	if err != nil {
		return nil, err
	}
	return newImageResult(img)
}

// RenderSwatchImage stacks the preview ramp of c (see colorspace.Preview)
// into one image. Each cell is labeled with its hex value drawn in the
// cell's own Primary(1.0) color.
func RenderSwatchImage(c colorspace.RGBA, width, cellHeight int) (*image.NRGBA, error) {
	ramp := colorspace.Preview(c)
	if err := checkSize(width, cellHeight*len(ramp)); err != nil {
		return nil, err
	}

	canvas := imaging.New(width, cellHeight*len(ramp), color.Transparent)
	for i, cell := range ramp {
		img, err := RenderLabelImage(cell, cell.Primary(1.0), cell.Packed().HexRGB(), width, cellHeight)
		if err != nil {
			return nil, err
		}
		canvas = imaging.Paste(canvas, img, image.Pt(0, i*cellHeight))
	}
	return canvas, nil
}

// RenderSwatch renders the preview ramp of c as PNG.
func RenderSwatch(c colorspace.RGBA, width, cellHeight int) (*ImageResult, error) {
	img, err := RenderSwatchImage(c, width, cellHeight)
	if err != nil {
		return nil, err
	}
	return newImageResult(img)
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 || width > maxSwatchSide || height > maxSwatchSide {
		return fmt.Errorf("image size %dx%d out of range (1-%d)", width, height, maxSwatchSide)
	}
	return nil
}
