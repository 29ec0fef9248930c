package tools

import (
	"context"

	"github.com/mapworks/gmapsmcp/pkg/geo"
	"github.com/mark3labs/mcp-go/mcp"
)

// ElevationTool returns the tool definition for elevation sampling.
func ElevationTool() mcp.Tool {
	return mcp.NewTool("get_elevation",
		mcp.WithDescription("Get elevation data for locations"),
		mcp.WithArray("locations",
			mcp.Required(),
			mcp.Description("List of locations to get elevation data for"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"latitude":  map[string]any{"type": "number"},
					"longitude": map[string]any{"type": "number"},
				},
				"required": []string{"latitude", "longitude"},
			}),
		),
	)
}

// HandleElevation implements the get_elevation tool.
func (s *Service) HandleElevation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := arrayArg(req, "locations")
	if !ok {
		return failureResponse(InvalidArgumentf("locations is required and must be a list")), nil
	}

	locations := make([]geo.Location, 0, len(raw))
	for i, item := range raw {
		obj, err := toObject(item)
		if err != nil {
			return failureResponse(InvalidArgumentf("locations[%d] must be an object with latitude and longitude", i)), nil
		}
		lat, ok := floatField(obj, "latitude")
		if !ok {
			return failureResponse(InvalidArgumentf("locations[%d].latitude is required and must be a number", i)), nil
		}
		lng, ok := floatField(obj, "longitude")
		if !ok {
			return failureResponse(InvalidArgumentf("locations[%d].longitude is required and must be a number", i)), nil
		}
		locations = append(locations, geo.Location{Latitude: lat, Longitude: lng})
	}

	return toResponse(s.Elevation(ctx, locations)), nil
}

// Elevation samples elevation at each location. Every coordinate pair is
// validated before the single batch request; one invalid pair fails the
// whole call and nothing is sent upstream.
func (s *Service) Elevation(ctx context.Context, locations []geo.Location) Result[[]ElevationSample] {
	samples, err := s.elevation(ctx, locations)
	if err != nil {
		s.logger.Debug("elevation failed", "error", err)
		return Failure[[]ElevationSample](err)
	}
	return Success(samples)
}

func (s *Service) elevation(ctx context.Context, locations []geo.Location) ([]ElevationSample, error) {
	if len(locations) == 0 {
		return nil, InvalidArgumentf("locations must contain at least one entry")
	}
	for _, loc := range locations {
		if err := validateCoordinates(loc.Latitude, loc.Longitude); err != nil {
			return nil, err
		}
	}

	resp, err := s.maps.Elevation(ctx, locations)
	if err != nil {
		return nil, Upstreamf("elevation request failed: %v", err)
	}
	if err := upstreamStatus("elevation", resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}

	samples := make([]ElevationSample, 0, len(resp.Results))
	for _, r := range resp.Results {
		samples = append(samples, ElevationSample{
			Elevation:  r.Elevation,
			Location:   geo.Location{Latitude: r.Location.Lat, Longitude: r.Location.Lng},
			Resolution: r.Resolution,
		})
	}
	return samples, nil
}
