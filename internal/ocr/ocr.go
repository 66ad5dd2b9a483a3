package ocr

import (
	"errors"
	"image"
)

// ErrUnavailable is returned when OCR support was not compiled in.
var ErrUnavailable = errors.New("ocr not available in this build")

// DefaultLanguage is the Tesseract language used when none is given.
const DefaultLanguage = "eng"

// Reader extracts text from an image.
type Reader interface {
	ReadText(img image.Image) (*TextResult, error)
}

// Word is one recognized word with its bounding box.
type Word struct {
	Text       string          `json:"text"`
	Confidence float64         `json:"confidence"` // 0-1
	Bounds     image.Rectangle `json:"bounds"`
}

// TextResult is the output of a Reader.
type TextResult struct {
	Text string `json:"text"`
	// Confidence is the mean word confidence, 0-1. Zero when no words were
	// found.
	Confidence float64 `json:"confidence"`
	Words      []Word  `json:"words"`
}

// meanConfidence averages word confidences.
func meanConfidence(words []Word) float64 {
	if len(words) == 0 {
		return 0
	}
	var sum float64
	for _, w := range words {
		sum += w.Confidence
	}
	return sum / float64(len(words))
}
