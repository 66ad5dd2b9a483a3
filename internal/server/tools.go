package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func schema(properties map[string]interface{}, required ...string) map[string]interface{} {
	s := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}

func regionProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": prop("integer", "Left edge (inclusive)"),
			"y1": prop("integer", "Top edge (inclusive)"),
			"x2": prop("integer", "Right edge (exclusive)"),
			"y2": prop("integer", "Bottom edge (exclusive)"),
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

func componentsProp(description string, keys ...string) map[string]interface{} {
	props := map[string]interface{}{
		"a": prop("number", "Alpha 0-1. Default 1"),
	}
	for _, k := range keys {
		props[k] = prop("number", "Component 0-1")
	}
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties":  props,
		"required":    keys,
	}
}

const (
	hexDesc    = "Hex color: RRGGBB or RRGGBBAA, optional leading #"
	amountDesc = "Lightness change 0-1. Defaults to the server's configured amount"
	pathDesc   = "Absolute path to the image file"
)

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Operations
		{
			Name:        "color_parse_hex",
			Description: "Parse a hex color into its packed value, 8-bit channels and normalized RGBA/HSLA/HSBA. With strict=false malformed input yields transparent black instead of an error.",
			InputSchema: schema(map[string]interface{}{
				"hex":    prop("string", hexDesc),
				"strict": prop("boolean", "Reject malformed input. Defaults to the server setting"),
			}, "hex"),
		},
		{
			Name:        "color_convert",
			Description: "Convert a color given as hex, rgb, hsl or hsb (exactly one) into every representation. Hue is normalized 0-1.",
			InputSchema: schema(map[string]interface{}{
				"hex": prop("string", hexDesc),
				"rgb": componentsProp("Normalized RGB", "r", "g", "b"),
				"hsl": componentsProp("Hue, saturation, lightness", "h", "s", "l"),
				"hsb": componentsProp("Hue, saturation, brightness", "h", "s", "b"),
			}),
		},
		{
			Name:        "color_lighter",
			Description: "Raise a color's HSL lightness by amount, capped at 1. Hue, saturation and alpha are kept.",
			InputSchema: schema(map[string]interface{}{
				"hex":    prop("string", hexDesc),
				"amount": prop("number", amountDesc),
			}, "hex"),
		},
		{
			Name:        "color_darker",
			Description: "Lower a color's HSL lightness by amount, floored at 0. Hue, saturation and alpha are kept.",
			InputSchema: schema(map[string]interface{}{
				"hex":    prop("string", hexDesc),
				"amount": prop("number", amountDesc),
			}, "hex"),
		},
		{
			Name:        "color_primary",
			Description: "Pick a readable overlay color: darker by amount when the color is light (lightness > 0.5), lighter otherwise.",
			InputSchema: schema(map[string]interface{}{
				"hex":    prop("string", hexDesc),
				"amount": prop("number", amountDesc),
			}, "hex"),
		},
		{
			Name:        "color_preview",
			Description: "Return the preview ramp of a color: itself, lighter(0.12), darker(0.18) and darker(1), each with its primary text color.",
			InputSchema: schema(map[string]interface{}{
				"hex": prop("string", hexDesc),
			}, "hex"),
		},
		{
			Name:        "color_contrast",
			Description: "Contrast ratio (1-21), AA/AAA pass flags and CIEDE2000 distance between two colors.",
			InputSchema: schema(map[string]interface{}{
				"foreground": prop("string", hexDesc),
				"background": prop("string", hexDesc),
			}, "foreground", "background"),
		},
		{
			Name:        "color_swatch",
			Description: "Render the preview ramp of a color as a base64 PNG, each cell labeled with its hex in its primary color.",
			InputSchema: schema(map[string]interface{}{
				"hex":         prop("string", hexDesc),
				"width":       prop("integer", "Swatch width in pixels"),
				"cell_height": prop("integer", "Height of each of the four cells in pixels"),
			}, "hex"),
		},
		{
			Name:        "color_legibility",
			Description: "Check how readable text is on a background. Reports contrast and, with ocr=true, reads a rendered label back with Tesseract.",
			InputSchema: schema(map[string]interface{}{
				"background": prop("string", hexDesc),
				"foreground": prop("string", "Text color. Defaults to the background's primary(amount) color"),
				"amount":     prop("number", "Amount for the default foreground. Default 1.0"),
				"text":       prop("string", "Label text for the OCR check. Defaults to the background hex"),
				"ocr":        prop("boolean", "Run the OCR probe. Default false"),
			}, "background"),
		},

		// Image Operations
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and average color.",
			InputSchema: schema(map[string]interface{}{
				"path": prop("string", pathDesc),
			}, "path"),
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel in every representation.",
			InputSchema: schema(map[string]interface{}{
				"path": prop("string", pathDesc),
				"x":    prop("integer", "X coordinate (0-based, from left)"),
				"y":    prop("integer", "Y coordinate (0-based, from top)"),
			}, "path", "x", "y"),
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get colors at multiple pixels in a single call.",
			InputSchema: schema(map[string]interface{}{
				"path": prop("string", pathDesc),
				"points": map[string]interface{}{
					"type":        "array",
					"description": "Points to sample",
					"items": schema(map[string]interface{}{
						"x":     prop("integer", "X coordinate"),
						"y":     prop("integer", "Y coordinate"),
						"label": prop("string", "Optional label echoed in the result"),
					}, "x", "y"),
				},
			}, "path", "points"),
		},
		{
			Name:        "image_dominant_colors",
			Description: "Most frequent colors in an image or region, with perceptually similar colors merged.",
			InputSchema: schema(map[string]interface{}{
				"path":           prop("string", pathDesc),
				"count":          prop("integer", "Number of colors to return. Default 5"),
				"region":         regionProp("Optional region to analyze"),
				"merge_distance": prop("number", "CIEDE2000 distance below which colors merge. Default 0.05, 0 disables"),
			}, "path"),
		},
		{
			Name:        "image_adjust_lightness",
			Description: "Apply lighter, darker or primary to every pixel and return the result as base64 PNG.",
			InputSchema: schema(map[string]interface{}{
				"path": prop("string", pathDesc),
				"mode": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"lighter", "darker", "primary"},
					"description": "Adjustment to apply",
				},
				"amount": prop("number", amountDesc),
			}, "path", "mode"),
		},
		{
			Name:        "image_compare_regions",
			Description: "Compare the colors of two regions pixel by pixel and by their averages.",
			InputSchema: schema(map[string]interface{}{
				"path":      prop("string", pathDesc),
				"region1":   regionProp("First region"),
				"region2":   regionProp("Second region"),
				"threshold": prop("number", "CIEDE2000 distance above which a pixel pair differs. Default 0.02"),
			}, "path", "region1", "region2"),
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
