package mcp

import (
	"time"

	"github.com/ka2n/menu/api"
	"github.com/ka2n/menu/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server for menu
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server instance answering from client
func NewServer(client *api.Client) *Server {
	s := server.NewMCPServer("menu", api.Version)

	registerTools(s, &tools{client: client, now: time.Now})

	return &Server{
		server: s,
	}
}

// Run starts the MCP server
func (s *Server) Run() error {
	log.Debug("Serving MCP over stdio")
	return server.ServeStdio(s.server)
}

// registerTools registers all available tools with the MCP server
func registerTools(s *server.MCPServer, t *tools) {
	s.AddTools(t.serverTools()...)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
