package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/animdocs/internal/activity"
	"github.com/ziadkadry99/animdocs/internal/catalog"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the recipe catalog to agents.
type Server struct {
	catalog  *catalog.Catalog
	recorder activity.Recorder
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server over c. Source fetches are reported to
// recorder, which may be nil.
func NewServer(c *catalog.Catalog, recorder activity.Recorder) *Server {
	if recorder == nil {
		recorder = activity.Nop{}
	}
	s := &Server{
		catalog:  c,
		recorder: recorder,
	}

	s.mcp = server.NewMCPServer(
		"animdocs",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listAnimationsTool, s.handleListAnimations)
	s.mcp.AddTool(searchAnimationsTool, s.handleSearchAnimations)
	s.mcp.AddTool(getAnimationTool, s.handleGetAnimation)
	s.mcp.AddTool(getSourceTool, s.handleGetSource)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
