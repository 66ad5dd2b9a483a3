package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/ocr"
)

// protocolVersion is the MCP revision this server speaks.
const protocolVersion = "2024-11-05"

// Config controls tool defaults.
type Config struct {
	// Version is reported in the initialize handshake.
	Version string

	// StrictHex rejects malformed hex colors with an error. When false,
	// malformed input is read as transparent black.
	StrictHex bool

	// DefaultAmount is used by lighter/darker/primary when a call omits it.
	DefaultAmount float64

	// SwatchWidth and SwatchCellHeight size color_swatch images.
	SwatchWidth      int
	SwatchCellHeight int

	// OCRLanguage is the Tesseract language for color_legibility.
	OCRLanguage string

	Logger *slog.Logger
}

// DefaultConfig returns the configuration used when no overrides are given.
func DefaultConfig() Config {
	return Config{
		Version:          "dev",
		StrictHex:        true,
		DefaultAmount:    0.1,
		SwatchWidth:      200,
		SwatchCellHeight: 50,
		OCRLanguage:      ocr.DefaultLanguage,
	}
}

// Server handles MCP protocol communication.
type Server struct {
	cfg    Config
	cache  *imaging.ImageCache
	reader ocr.Reader
}

// MCPRequest represents an incoming JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response.
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error.
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server. Zero-valued sizes and amounts in cfg fall back to
// DefaultConfig.
func New(cfg Config) *Server {
	def := DefaultConfig()
	if cfg.DefaultAmount == 0 {
		cfg.DefaultAmount = def.DefaultAmount
	}
	if cfg.SwatchWidth == 0 {
		cfg.SwatchWidth = def.SwatchWidth
	}
	if cfg.SwatchCellHeight == 0 {
		cfg.SwatchCellHeight = def.SwatchCellHeight
	}
	if cfg.Version == "" {
		cfg.Version = def.Version
	}
	return &Server{
		cfg:    cfg,
		cache:  imaging.NewImageCache(),
		reader: ocr.NewTesseract(cfg.OCRLanguage),
	}
}

func (s *Server) log() *slog.Logger {
	if s.cfg.Logger != nil {
		return s.cfg.Logger
	}
	return slog.Default()
}

// Run serves requests from stdin and writes responses to stdout.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r and writes responses to
// w until r is exhausted.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Swatch and image arguments can be large.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.log().Warn("failed to parse request", "error", err)
			if err := encoder.Encode(s.errorResponse(nil, -32700, "Parse error", err.Error())); err != nil {
				return fmt.Errorf("failed to encode response: %w", err)
			}
			continue
		}

		resp := s.handleRequest(&req)
		if resp == nil {
			continue
		}
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}

// handleRequest routes requests to appropriate handlers.
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	s.log().Debug("request", "method", req.Method, "id", req.ID)

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return s.errorResponse(req.ID, -32601, fmt.Sprintf("Method not found: %s", req.Method), "")
	}
}

func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "color-tools-mcp",
				"version": s.cfg.Version,
			},
		},
	}
}
