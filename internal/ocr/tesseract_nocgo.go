//go:build !cgo

package ocr

import "image"

// Tesseract is unavailable without cgo; ReadText always fails.
type Tesseract struct {
	Language string
}

// NewTesseract returns a reader for language, or DefaultLanguage when empty.
func NewTesseract(language string) *Tesseract {
	if language == "" {
		language = DefaultLanguage
	}
	return &Tesseract{Language: language}
}

// ReadText returns ErrUnavailable.
func (t *Tesseract) ReadText(image.Image) (*TextResult, error) {
	return nil, ErrUnavailable
}

// Version returns ErrUnavailable.
func Version() (string, error) {
	return "", ErrUnavailable
}
