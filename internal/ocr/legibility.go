package ocr

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

// Label dimensions used for the OCR probe. Tesseract reads the 7x13 face
// more reliably when scaled up, so the label is rendered and then enlarged.
const (
	labelWidth  = 160
	labelHeight = 40
	ocrScale    = 4
)

// LegibilityReport describes how readable fg text is on bg.
type LegibilityReport struct {
	Background    colorspace.Description `json:"background"`
	Foreground    colorspace.Description `json:"foreground"`
	ContrastRatio float64                `json:"contrast_ratio"` // 1-21
	PassesAA      bool                   `json:"passes_aa"`
	PassesAAA     bool                   `json:"passes_aaa"`

	// OCR fields are set only when a Reader was supplied.
	OCRChecked bool    `json:"ocr_checked"`
	OCRText    string  `json:"ocr_text,omitempty"`
	OCRMatch   bool    `json:"ocr_match"`
	OCRError   string  `json:"ocr_error,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// CheckLegibility reports the contrast of fg on bg and, when reader is not
// nil, renders text in fg on bg and reads it back. An unavailable reader
// is recorded in OCRError rather than failing the check.
func CheckLegibility(bg, fg colorspace.RGBA, text string, reader Reader) (*LegibilityReport, error) {
	ratio := colorspace.ContrastRatio(bg, fg)
	report := &LegibilityReport{
		Background:    colorspace.Describe(bg),
		Foreground:    colorspace.Describe(fg),
		ContrastRatio: math.Round(ratio*100) / 100,
		PassesAA:      ratio >= colorspace.ContrastAA,
		PassesAAA:     ratio >= colorspace.ContrastAAA,
	}
	if reader == nil {
		return report, nil
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text must not be empty for an OCR check")
	}

	label, err := imaging.RenderLabelImage(bg, fg, text, labelWidth, labelHeight)
	if err != nil {
		return nil, err
	}
	enlarged := imaging.Enlarge(label, ocrScale)

	result, err := reader.ReadText(enlarged)
	if errors.Is(err, ErrUnavailable) {
		report.OCRError = err.Error()
		return report, nil
	}
	if err != nil {
		return nil, fmt.Errorf("legibility check failed: %w", err)
	}

	report.OCRChecked = true
	report.OCRText = result.Text
	report.Confidence = result.Confidence
	report.OCRMatch = normalize(result.Text) == normalize(text)
	return report, nil
}

// normalize drops whitespace and case so OCR spacing quirks do not count as
// mismatches.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}
