package colorspace

// Description is a color in every representation this package knows, in
// the shape returned by the MCP tools and the CLI.
type Description struct {
	Hex      string   `json:"hex"`      // "#RRGGBBAA"
	HexRGB   string   `json:"hex_rgb"`  // "#RRGGBB", alpha dropped
	Packed   uint32   `json:"packed"`   // 0xRRGGBBAA
	Channels [4]uint8 `json:"channels"` // 8-bit R, G, B, A
	RGBA     RGBA     `json:"rgba"`     // normalized components
	HSLA     HSLA     `json:"hsla"`     // hue normalized to 0-1
	HSBA     HSBA     `json:"hsba"`     // hue normalized to 0-1
	HueDeg   float64  `json:"hue_deg"`  // hue in degrees, 0-360
	IsLight  bool     `json:"is_light"` // HSL lightness above 0.5
}

// Describe expands c into a Description.
func Describe(c RGBA) Description {
	p := c.Packed()
	r, g, b, a := p.Channels()
	hsl := c.HSLA()
	return Description{
		Hex:      p.Hex(),
		HexRGB:   p.HexRGB(),
		Packed:   uint32(p),
		Channels: [4]uint8{r, g, b, a},
		RGBA:     c,
		HSLA:     hsl,
		HSBA:     c.HSBA(),
		HueDeg:   hsl.H * 360,
		IsLight:  hsl.L > 0.5,
	}
}
