package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolDefinition represents one registered Google Maps MCP tool.
type ToolDefinition struct {
	Name        string
	Description string
	Tool        mcp.Tool
	Handler     func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Registry maps tool names to their schemas and handlers. Handlers close
// over the injected Service; the registry itself holds no per-call state.
type Registry struct {
	logger   *slog.Logger
	defs     []ToolDefinition
	handlers map[string]func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// NewRegistry creates a registry with every tool bound to the given
// service.
func NewRegistry(logger *slog.Logger, svc *Service) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	defs := []ToolDefinition{
		{
			Name:        "search_nearby",
			Description: "Search for places near a specific location",
			Tool:        SearchNearbyTool(),
			Handler:     svc.HandleSearchNearby,
		},
		{
			Name:        "get_place_details",
			Description: "Get detailed information about a specific place",
			Tool:        PlaceDetailsTool(),
			Handler:     svc.HandlePlaceDetails,
		},
		{
			Name:        "get_geocode",
			Description: "Convert an address to coordinates",
			Tool:        GeocodeTool(),
			Handler:     svc.HandleGeocode,
		},
		{
			Name:        "get_reverse_geocode",
			Description: "Convert coordinates to an address",
			Tool:        ReverseGeocodeTool(),
			Handler:     svc.HandleReverseGeocode,
		},
		{
			Name:        "get_distance_matrix",
			Description: "Calculate distance and time between multiple origins and destinations",
			Tool:        DistanceMatrixTool(),
			Handler:     svc.HandleDistanceMatrix,
		},
		{
			Name:        "get_directions",
			Description: "Get directions between two locations",
			Tool:        DirectionsTool(),
			Handler:     svc.HandleDirections,
		},
		{
			Name:        "get_elevation",
			Description: "Get elevation data for locations",
			Tool:        ElevationTool(),
			Handler:     svc.HandleElevation,
		},
		{
			Name:        "get_map_with_directions",
			Description: "Generate a static map with directions overlay",
			Tool:        MapDirectionsTool(),
			Handler:     svc.HandleMapDirections,
		},
		{
			Name:        "generate_static_map",
			Description: "Generate a static map image URL",
			Tool:        StaticMapTool(),
			Handler:     svc.HandleStaticMap,
		},
	}

	handlers := make(map[string]func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error), len(defs))
	for _, def := range defs {
		handlers[def.Name] = def.Handler
	}

	return &Registry{
		logger:   logger,
		defs:     defs,
		handlers: handlers,
	}
}

// ToolDefinitions returns all registered tool definitions.
func (r *Registry) ToolDefinitions() []ToolDefinition {
	return r.defs
}

// RegisterTools registers all tools with the MCP server.
func (r *Registry) RegisterTools(mcpServer *server.MCPServer) {
	for _, def := range r.defs {
		r.logger.Info("registering tool", "name", def.Name)
		mcpServer.AddTool(def.Tool, def.Handler)
	}
}

// Dispatch routes a tool call by name. Every outcome, including an
// unknown tool name or a missing argument bag, resolves to a well-formed
// envelope; the returned error is always nil so no fault crosses the
// transport boundary.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	handler, ok := r.handlers[name]
	if !ok {
		r.logger.Warn("unknown tool requested", "name", name)
		return failureResponse(UnknownToolf("unknown tool: %s", name)), nil
	}
	if args == nil {
		return failureResponse(InvalidArgumentf("no arguments provided")), nil
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return handler(ctx, req)
}
