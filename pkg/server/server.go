// Package server provides the MCP server implementation for the Google
// Maps integration.
package server

import (
	"log/slog"

	"github.com/mapworks/gmapsmcp/pkg/config"
	"github.com/mapworks/gmapsmcp/pkg/gmaps"
	"github.com/mapworks/gmapsmcp/pkg/tools"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// ServerName is the name of the MCP server
	ServerName = "gmaps-mcp-server"

	// ServerVersion is the version of the MCP server
	ServerVersion = "0.1.0"
)

// Server encapsulates the MCP server with Google Maps tools.
type Server struct {
	srv      *server.MCPServer
	registry *tools.Registry
}

// NewServer creates a new Google Maps MCP server with all tools
// registered. The upstream client is built once from the configuration
// and shared by every tool invocation.
func NewServer(cfg *config.Config) (*Server, error) {
	logger := slog.Default()
	logger.Info("initializing Google Maps MCP server",
		"name", ServerName,
		"version", ServerVersion)

	opts := []gmaps.Option{
		gmaps.WithLanguage(cfg.Language),
		gmaps.WithRegion(cfg.Region),
		gmaps.WithRateLimit(cfg.MaxRequestsPerSecond, 1),
		gmaps.WithLogger(logger),
	}
	if cfg.CacheEnabled {
		opts = append(opts, gmaps.WithCache(cfg.CacheTTL, 1000))
	}
	client := gmaps.NewClient(cfg.APIKey, opts...)

	srv := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	svc := tools.NewService(client, logger)
	registry := tools.NewRegistry(logger, svc)
	registry.RegisterTools(srv)

	return &Server{srv: srv, registry: registry}, nil
}

// Registry returns the tool registry backing this server.
func (s *Server) Registry() *tools.Registry {
	return s.registry
}

// Run starts the MCP server using stdin/stdout for communication.
func (s *Server) Run() error {
	return server.ServeStdio(s.srv)
}

// RunHTTP starts the MCP server over the SSE HTTP transport on the given
// address. Session and connection lifecycle are handled by the
// transport; each tool call remains an independent unit of work.
func (s *Server) RunHTTP(addr string) error {
	sse := server.NewSSEServer(s.srv)
	return sse.Start(addr)
}
