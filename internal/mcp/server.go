package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Kitware/vtk-mcp/internal/config"
	"github.com/Kitware/vtk-mcp/internal/scraper"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"get_vtk_class_info": {
		def:     classInfoToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleClassInfo },
	},
	"search_vtk_classes": {
		def:     searchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSearch },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// Tools returns the definitions of all registered tools.
// Used by the CLI to render the tool listing.
func Tools() []mcp.Tool {
	defs := make([]mcp.Tool, 0, len(toolRegistry))
	for _, entry := range toolRegistry {
		defs = append(defs, entry.def)
	}
	return defs
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with the VTK documentation tools
// registered. Tools listed in cfg.DisabledTools are excluded.
func NewServer(scr *scraper.Scraper, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"vtk-mcp",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(scr, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(scr *scraper.Scraper, cfg *config.Config, version string) error {
	s := NewServer(scr, cfg, version)
	return server.ServeStdio(s)
}

// RunHTTP starts the MCP server using the streamable HTTP transport,
// listening on host:port.
func RunHTTP(scr *scraper.Scraper, cfg *config.Config, version, host string, port int) error {
	s := NewServer(scr, cfg, version)
	httpServer := server.NewStreamableHTTPServer(s)
	return httpServer.Start(fmt.Sprintf("%s:%d", host, port))
}
