// Package ocr checks whether text drawn in one color on another is actually
// readable, using the Tesseract OCR engine through gosseract.
//
// CheckLegibility renders a label the way the swatch renderer does, reports
// its contrast ratio, and optionally reads it back with OCR. The contrast
// numbers are always available; the OCR step needs a Reader.
//
// # Prerequisites
//
// The Tesseract reader requires cgo and the Tesseract library with the
// language data for the requested language:
//   - Ubuntu/Debian: apt-get install libtesseract-dev tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Builds without cgo compile a Tesseract reader that always returns
// ErrUnavailable, so callers can degrade to a contrast-only report.
package ocr
