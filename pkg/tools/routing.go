package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// DistanceMatrixTool returns the tool definition for distance matrix
// computation.
func DistanceMatrixTool() mcp.Tool {
	return mcp.NewTool("get_distance_matrix",
		mcp.WithDescription("Calculate distance and time between multiple origins and destinations"),
		mcp.WithArray("origins",
			mcp.Required(),
			mcp.Description("List of origin addresses or coordinates"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("destinations",
			mcp.Required(),
			mcp.Description("List of destination addresses or coordinates"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("mode",
			mcp.Description("Travel mode"),
			mcp.Enum("driving", "walking", "bicycling", "transit"),
			mcp.DefaultString("driving"),
		),
	)
}

// DirectionsTool returns the tool definition for route computation.
func DirectionsTool() mcp.Tool {
	return mcp.NewTool("get_directions",
		mcp.WithDescription("Get directions between two locations"),
		mcp.WithString("origin",
			mcp.Required(),
			mcp.Description("Starting point address or coordinates"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Description("Destination address or coordinates"),
		),
		mcp.WithString("mode",
			mcp.Description("Travel mode"),
			mcp.Enum("driving", "walking", "bicycling", "transit"),
			mcp.DefaultString("driving"),
		),
	)
}

// HandleDistanceMatrix implements the get_distance_matrix tool.
func (s *Service) HandleDistanceMatrix(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	origins, ok := stringSliceArg(req, "origins")
	if !ok {
		return failureResponse(InvalidArgumentf("origins is required and must be a list of strings")), nil
	}
	destinations, ok := stringSliceArg(req, "destinations")
	if !ok {
		return failureResponse(InvalidArgumentf("destinations is required and must be a list of strings")), nil
	}
	mode := mcp.ParseString(req, "mode", "")
	return toResponse(s.DistanceMatrix(ctx, origins, destinations, mode)), nil
}

// HandleDirections implements the get_directions tool.
func (s *Service) HandleDirections(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	origin := mcp.ParseString(req, "origin", "")
	destination := mcp.ParseString(req, "destination", "")
	mode := mcp.ParseString(req, "mode", "")
	return toResponse(s.Directions(ctx, origin, destination, mode)), nil
}

// DistanceMatrix computes the origin x destination travel matrix. The
// matrix is returned exactly as upstream produced it: an empty or
// all-unreachable matrix is a legitimate answer, not an error.
func (s *Service) DistanceMatrix(ctx context.Context, origins, destinations []string, mode string) Result[DistanceMatrixResult] {
	matrix, err := s.distanceMatrix(ctx, origins, destinations, mode)
	if err != nil {
		s.logger.Debug("distance matrix failed", "error", err)
		return Failure[DistanceMatrixResult](err)
	}
	return Success(matrix)
}

func (s *Service) distanceMatrix(ctx context.Context, origins, destinations []string, mode string) (DistanceMatrixResult, error) {
	if len(origins) == 0 {
		return DistanceMatrixResult{}, InvalidArgumentf("origins must contain at least one entry")
	}
	if len(destinations) == 0 {
		return DistanceMatrixResult{}, InvalidArgumentf("destinations must contain at least one entry")
	}
	travelMode, err := parseTravelMode(mode)
	if err != nil {
		return DistanceMatrixResult{}, err
	}

	resp, err := s.maps.DistanceMatrix(ctx, origins, destinations, string(travelMode))
	if err != nil {
		return DistanceMatrixResult{}, Upstreamf("distance matrix request failed: %v", err)
	}
	if err := upstreamStatus("distance matrix", resp.Status, resp.ErrorMessage); err != nil {
		return DistanceMatrixResult{}, err
	}

	result := DistanceMatrixResult{
		OriginAddresses:      resp.OriginAddresses,
		DestinationAddresses: resp.DestinationAddresses,
		Rows:                 make([]MatrixRow, 0, len(resp.Rows)),
	}
	for _, row := range resp.Rows {
		elements := make([]MatrixElement, 0, len(row.Elements))
		for _, el := range row.Elements {
			element := MatrixElement{Status: el.Status}
			if el.Distance != nil {
				element.Distance = &TextValue{Text: el.Distance.Text, Value: el.Distance.Value}
			}
			if el.Duration != nil {
				element.Duration = &TextValue{Text: el.Duration.Text, Value: el.Duration.Value}
			}
			elements = append(elements, element)
		}
		result.Rows = append(result.Rows, MatrixRow{Elements: elements})
	}
	return result, nil
}

// Directions computes routes between two locations. Zero routes is a
// failure.
func (s *Service) Directions(ctx context.Context, origin, destination, mode string) Result[DirectionsResult] {
	directions, err := s.directions(ctx, origin, destination, mode)
	if err != nil {
		s.logger.Debug("directions failed", "error", err)
		return Failure[DirectionsResult](err)
	}
	return Success(directions)
}

func (s *Service) directions(ctx context.Context, origin, destination, mode string) (DirectionsResult, error) {
	if err := validateRequiredString(origin, "origin"); err != nil {
		return DirectionsResult{}, err
	}
	if err := validateRequiredString(destination, "destination"); err != nil {
		return DirectionsResult{}, err
	}
	travelMode, err := parseTravelMode(mode)
	if err != nil {
		return DirectionsResult{}, err
	}

	resp, err := s.maps.Directions(ctx, origin, destination, string(travelMode))
	if err != nil {
		return DirectionsResult{}, Upstreamf("directions request failed: %v", err)
	}
	if err := upstreamStatus("directions", resp.Status, resp.ErrorMessage); err != nil {
		return DirectionsResult{}, err
	}
	if len(resp.Routes) == 0 {
		return DirectionsResult{}, EmptyResultf("no route found")
	}

	result := DirectionsResult{Routes: make([]DirectionsRoute, 0, len(resp.Routes))}
	for _, route := range resp.Routes {
		legs := make([]RouteLeg, 0, len(route.Legs))
		for _, leg := range route.Legs {
			steps := make([]RouteStep, 0, len(leg.Steps))
			for _, step := range leg.Steps {
				steps = append(steps, RouteStep{
					Distance:     TextValue{Text: step.Distance.Text, Value: step.Distance.Value},
					Duration:     TextValue{Text: step.Duration.Text, Value: step.Duration.Value},
					Instructions: step.HTMLInstructions,
					TravelMode:   step.TravelMode,
				})
			}
			legs = append(legs, RouteLeg{
				Distance:     TextValue{Text: leg.Distance.Text, Value: leg.Distance.Value},
				Duration:     TextValue{Text: leg.Duration.Text, Value: leg.Duration.Value},
				StartAddress: leg.StartAddress,
				EndAddress:   leg.EndAddress,
				Steps:        steps,
			})
		}
		result.Routes = append(result.Routes, DirectionsRoute{Summary: route.Summary, Legs: legs})
	}
	return result, nil
}
