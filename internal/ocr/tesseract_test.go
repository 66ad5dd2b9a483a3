package ocr

import (
	"errors"
	"strings"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

func TestNewTesseract_DefaultLanguage(t *testing.T) {
	if got := NewTesseract("").Language; got != DefaultLanguage {
		t.Errorf("Language: got %q, want %q", got, DefaultLanguage)
	}
	if got := NewTesseract("deu").Language; got != "deu" {
		t.Errorf("Language: got %q, want deu", got)
	}
}

func TestTesseract_ReadsHighContrastLabel(t *testing.T) {
	if _, err := Version(); err != nil {
		t.Skipf("tesseract not available: %v", err)
	}

	label, err := imaging.RenderLabelImage(colorspace.White, colorspace.Black, "HELLO", labelWidth, labelHeight)
	if err != nil {
		t.Fatalf("RenderLabelImage failed: %v", err)
	}

	result, err := NewTesseract("").ReadText(imaging.Enlarge(label, ocrScale))
	if errors.Is(err, ErrUnavailable) {
		t.Skip("ocr not compiled in")
	}
	if err != nil {
		t.Skipf("tesseract could not run (missing language data?): %v", err)
	}
	// Recognition quality depends on the installed model; only log it.
	if !strings.Contains(strings.ToUpper(result.Text), "HELLO") {
		t.Logf("OCR read %q for HELLO (confidence %.2f)", result.Text, result.Confidence)
	}
}
