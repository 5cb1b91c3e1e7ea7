package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/elastic-mcp/internal/config"
	"github.com/dshills/elastic-mcp/internal/esclient"
)

const (
	// ServerName is the MCP server name
	ServerName = "elastic-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	client *esclient.Client
}

// NewServer creates a new MCP server instance bound to the configured
// Elasticsearch cluster.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		client: esclient.New(cfg.URL, cfg.APIKey),
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until the transport
// closes.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(listIndicesTool(), s.handleListIndices)
	s.mcp.AddTool(listAliasesTool(), s.handleListAliases)
	s.mcp.AddTool(getMappingsOfIndexTool(), s.handleGetMappingsOfIndex)
	s.mcp.AddTool(getMappingsOfAliasTool(), s.handleGetMappingsOfAlias)
	s.mcp.AddTool(searchTool(), s.handleSearch)
}
