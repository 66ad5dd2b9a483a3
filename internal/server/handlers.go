package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall executes a tool and wraps its JSON result in MCP's
// content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log().Info("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches to the handler for name.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Operations
	case "color_parse_hex":
		return s.handleColorParseHex(args)
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_lighter":
		return s.handleColorAdjust(colorspace.AdjustLighter, args)
	case "color_darker":
		return s.handleColorAdjust(colorspace.AdjustDarker, args)
	case "color_primary":
		return s.handleColorAdjust(colorspace.AdjustPrimary, args)
	case "color_preview":
		return s.handleColorPreview(args)
	case "color_contrast":
		return s.handleColorContrast(args)
	case "color_swatch":
		return s.handleColorSwatch(args)
	case "color_legibility":
		return s.handleColorLegibility(args)

	// Image Operations
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_adjust_lightness":
		return s.handleImageAdjustLightness(args)
	case "image_compare_regions":
		return s.handleImageCompareRegions(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response. Empty data is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Missing arguments leave v as is.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// parseColor reads a hex color, strictly unless configured or asked
// otherwise.
func (s *Server) parseColor(hex string, strict *bool) (colorspace.RGBA, error) {
	useStrict := s.cfg.StrictHex
	if strict != nil {
		useStrict = *strict
	}
	if !useStrict {
		return colorspace.ParseHex(hex).RGBA(), nil
	}
	p, err := colorspace.ParseHexStrict(hex)
	if err != nil {
		return colorspace.RGBA{}, err
	}
	return p.RGBA(), nil
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// === Color Operation Handlers ===

type colorParseHexArgs struct {
	Hex    string `json:"hex"`
	Strict *bool  `json:"strict"`
}

type parseHexResult struct {
	Input string                 `json:"input"`
	Valid bool                   `json:"valid"`
	Color colorspace.Description `json:"color"`
}

func (s *Server) handleColorParseHex(args json.RawMessage) (interface{}, error) {
	var a colorParseHexArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := s.parseColor(a.Hex, a.Strict)
	if err != nil {
		return nil, err
	}
	_, strictErr := colorspace.ParseHexStrict(a.Hex)
	return &parseHexResult{
		Input: a.Hex,
		Valid: strictErr == nil,
		Color: colorspace.Describe(c),
	}, nil
}

type rgbArgs struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a"`
}

type hslArgs struct {
	H float64  `json:"h"`
	S float64  `json:"s"`
	L float64  `json:"l"`
	A *float64 `json:"a"`
}

type hsbArgs struct {
	H float64  `json:"h"`
	S float64  `json:"s"`
	B float64  `json:"b"`
	A *float64 `json:"a"`
}

type colorConvertArgs struct {
	Hex *string  `json:"hex"`
	RGB *rgbArgs `json:"rgb"`
	HSL *hslArgs `json:"hsl"`
	HSB *hsbArgs `json:"hsb"`
}

// checkUnit reports the first component outside [0,1].
func checkUnit(model string, names string, values ...float64) error {
	for i, v := range values {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s component %c must be within 0-1, got %g", model, names[i], v)
		}
	}
	return nil
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	given := 0
	for _, set := range []bool{a.Hex != nil, a.RGB != nil, a.HSL != nil, a.HSB != nil} {
		if set {
			given++
		}
	}
	if given != 1 {
		return nil, fmt.Errorf("exactly one of hex, rgb, hsl or hsb is required, got %d", given)
	}

	var c colorspace.RGBA
	switch {
	case a.Hex != nil:
		var err error
		if c, err = s.parseColor(*a.Hex, nil); err != nil {
			return nil, err
		}
	case a.RGB != nil:
		alpha := orDefault(a.RGB.A, 1)
		if err := checkUnit("rgb", "rgba", a.RGB.R, a.RGB.G, a.RGB.B, alpha); err != nil {
			return nil, err
		}
		c = colorspace.RGBA{R: a.RGB.R, G: a.RGB.G, B: a.RGB.B, A: alpha}
	case a.HSL != nil:
		alpha := orDefault(a.HSL.A, 1)
		if err := checkUnit("hsl", "hsla", a.HSL.H, a.HSL.S, a.HSL.L, alpha); err != nil {
			return nil, err
		}
		c = colorspace.FromHSLA(a.HSL.H, a.HSL.S, a.HSL.L, alpha)
	case a.HSB != nil:
		alpha := orDefault(a.HSB.A, 1)
		if err := checkUnit("hsb", "hsba", a.HSB.H, a.HSB.S, a.HSB.B, alpha); err != nil {
			return nil, err
		}
		c = colorspace.FromHSBA(a.HSB.H, a.HSB.S, a.HSB.B, alpha)
	}

	d := colorspace.Describe(c)
	return &d, nil
}

type colorAdjustArgs struct {
	Hex    string   `json:"hex"`
	Amount *float64 `json:"amount"`
}

type adjustResult struct {
	Input      colorspace.Description `json:"input"`
	Adjustment string                 `json:"adjustment"`
	Amount     float64                `json:"amount"`
	Result     colorspace.Description `json:"result"`
}

func (s *Server) handleColorAdjust(adj colorspace.Adjustment, args json.RawMessage) (interface{}, error) {
	var a colorAdjustArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := s.parseColor(a.Hex, nil)
	if err != nil {
		return nil, err
	}
	amount := orDefault(a.Amount, s.cfg.DefaultAmount)
	return &adjustResult{
		Input:      colorspace.Describe(c),
		Adjustment: string(adj),
		Amount:     amount,
		Result:     colorspace.Describe(adj.Apply(c, amount)),
	}, nil
}

type hexArgs struct {
	Hex string `json:"hex"`
}

type previewEntry struct {
	Name    string                 `json:"name"`
	Color   colorspace.Description `json:"color"`
	Primary colorspace.Description `json:"primary"`
}

type previewResult struct {
	Colors []previewEntry `json:"colors"`
}

var previewNames = []string{"base", "lighter(0.12)", "darker(0.18)", "darker(1)"}

func (s *Server) handleColorPreview(args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := s.parseColor(a.Hex, nil)
	if err != nil {
		return nil, err
	}

	ramp := colorspace.Preview(c)
	entries := make([]previewEntry, len(ramp))
	for i, rc := range ramp {
		entries[i] = previewEntry{
			Name:    previewNames[i],
			Color:   colorspace.Describe(rc),
			Primary: colorspace.Describe(rc.Primary(1.0)),
		}
	}
	return &previewResult{Colors: entries}, nil
}

type colorContrastArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

type contrastResult struct {
	Foreground    colorspace.Description `json:"foreground"`
	Background    colorspace.Description `json:"background"`
	ContrastRatio float64                `json:"contrast_ratio"`
	PassesAA      bool                   `json:"passes_aa"`
	PassesAAA     bool                   `json:"passes_aaa"`
	Distance      float64                `json:"distance"`
}

func (s *Server) handleColorContrast(args json.RawMessage) (interface{}, error) {
	var a colorContrastArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	fg, err := s.parseColor(a.Foreground, nil)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := s.parseColor(a.Background, nil)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	ratio := colorspace.ContrastRatio(fg, bg)
	return &contrastResult{
		Foreground:    colorspace.Describe(fg),
		Background:    colorspace.Describe(bg),
		ContrastRatio: ratio,
		PassesAA:      ratio >= colorspace.ContrastAA,
		PassesAAA:     ratio >= colorspace.ContrastAAA,
		Distance:      colorspace.DistanceCIEDE2000(fg, bg),
	}, nil
}

type colorSwatchArgs struct {
	Hex        string `json:"hex"`
	Width      int    `json:"width"`
	CellHeight int    `json:"cell_height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = s.cfg.SwatchWidth
	}
	if a.CellHeight == 0 {
		a.CellHeight = s.cfg.SwatchCellHeight
	}
	c, err := s.parseColor(a.Hex, nil)
	if err != nil {
		return nil, err
	}
	return imaging.RenderSwatch(c, a.Width, a.CellHeight)
}

type colorLegibilityArgs struct {
	Background string   `json:"background"`
	Foreground *string  `json:"foreground"`
	Amount     *float64 `json:"amount"`
	Text       *string  `json:"text"`
	OCR        bool     `json:"ocr"`
}

func (s *Server) handleColorLegibility(args json.RawMessage) (interface{}, error) {
	var a colorLegibilityArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	bg, err := s.parseColor(a.Background, nil)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	fg := bg.Primary(orDefault(a.Amount, 1.0))
	if a.Foreground != nil {
		if fg, err = s.parseColor(*a.Foreground, nil); err != nil {
			return nil, fmt.Errorf("foreground: %w", err)
		}
	}

	text := bg.Packed().HexRGB()
	if a.Text != nil {
		text = *a.Text
	}

	var reader ocr.Reader
	if a.OCR {
		reader = s.reader
	}
	return ocr.CheckLegibility(bg, fg, text, reader)
}

// === Image Operation Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type imageDominantColorsArgs struct {
	Path          string          `json:"path"`
	Count         int             `json:"count"`
	Region        *imaging.Region `json:"region,omitempty"`
	MergeDistance *float64        `json:"merge_distance"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count, a.Region, orDefault(a.MergeDistance, 0.05))
}

type imageAdjustLightnessArgs struct {
	Path   string   `json:"path"`
	Mode   string   `json:"mode"`
	Amount *float64 `json:"amount"`
}

func (s *Server) handleImageAdjustLightness(args json.RawMessage) (interface{}, error) {
	var a imageAdjustLightnessArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.AdjustLightness(img, a.Mode, orDefault(a.Amount, s.cfg.DefaultAmount))
}

type imageCompareRegionsArgs struct {
	Path      string         `json:"path"`
	Region1   imaging.Region `json:"region1"`
	Region2   imaging.Region `json:"region2"`
	Threshold *float64       `json:"threshold"`
}

func (s *Server) handleImageCompareRegions(args json.RawMessage) (interface{}, error) {
	var a imageCompareRegionsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CompareRegions(img, a.Region1, a.Region2, orDefault(a.Threshold, 0.02))
}
