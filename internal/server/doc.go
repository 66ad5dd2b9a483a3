// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// The server speaks JSON-RPC 2.0 over stdio:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Operations:
//   - color_parse_hex: Parse a hex string into every representation
//   - color_convert: Convert between hex, RGB, HSL and HSB
//   - color_lighter, color_darker, color_primary: Lightness adjustments
//   - color_preview: Base, lighter, darker and shadow ramp
//   - color_contrast: WCAG contrast ratio and CIEDE2000 distance
//   - color_swatch: Render the preview ramp as a PNG
//   - color_legibility: Contrast check with an optional OCR probe
//
// Image Operations:
//   - image_load: Load image and get metadata
//   - image_sample_color, image_sample_colors_multi: Sample pixels
//   - image_dominant_colors: Extract color palette
//   - image_adjust_lightness: Lighten or darken every pixel
//   - image_compare_regions: Compare two regions
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with
// code -32000 and the Go error string in data. Malformed hex colors are
// errors unless Config.StrictHex is off or the call passes strict=false.
//
// # Usage
//
//	srv := server.New(server.DefaultConfig())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
