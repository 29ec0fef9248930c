package tools

import (
	"context"

	"github.com/mapworks/gmapsmcp/pkg/geo"
	"github.com/mark3labs/mcp-go/mcp"
)

// GeocodeTool returns the tool definition for forward geocoding.
func GeocodeTool() mcp.Tool {
	return mcp.NewTool("get_geocode",
		mcp.WithDescription("Convert an address or place name to geographic coordinates"),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("Address or place name to convert"),
		),
	)
}

// ReverseGeocodeTool returns the tool definition for reverse geocoding.
func ReverseGeocodeTool() mcp.Tool {
	return mcp.NewTool("get_reverse_geocode",
		mcp.WithDescription("Convert coordinates to a human-readable address"),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude coordinate"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude coordinate"),
		),
	)
}

// HandleGeocode implements the get_geocode tool.
func (s *Service) HandleGeocode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	address := mcp.ParseString(req, "address", "")
	return toResponse(s.Geocode(ctx, address)), nil
}

// HandleReverseGeocode implements the get_reverse_geocode tool.
func (s *Service) HandleReverseGeocode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	lat := mcp.ParseFloat64(req, "latitude", 0)
	lng := mcp.ParseFloat64(req, "longitude", 0)
	return toResponse(s.ReverseGeocode(ctx, lat, lng)), nil
}

// Geocode resolves an address to a Location, taking the first candidate
// as canonical. Zero candidates is a failure.
func (s *Service) Geocode(ctx context.Context, address string) Result[Location] {
	loc, err := s.geocode(ctx, address)
	if err != nil {
		s.logger.Debug("geocode failed", "error", err)
		return Failure[Location](err)
	}
	return Success(loc)
}

func (s *Service) geocode(ctx context.Context, address string) (Location, error) {
	if err := validateRequiredString(address, "address"); err != nil {
		return Location{}, err
	}

	resp, err := s.maps.Geocode(ctx, address)
	if err != nil {
		return Location{}, Upstreamf("geocoding request failed: %v", err)
	}
	if err := upstreamStatus("geocoding", resp.Status, resp.ErrorMessage); err != nil {
		return Location{}, err
	}
	if len(resp.Results) == 0 {
		return Location{}, EmptyResultf("no results found for the given address")
	}

	best := resp.Results[0]
	return Location{
		Location: geo.Location{
			Latitude:  best.Geometry.Location.Lat,
			Longitude: best.Geometry.Location.Lng,
		},
		Address: best.FormattedAddress,
		PlaceID: best.PlaceID,
	}, nil
}

// ReverseGeocode resolves coordinates to the nearest address. The output
// echoes the input coordinates rather than any coordinate from the
// upstream payload.
func (s *Service) ReverseGeocode(ctx context.Context, lat, lng float64) Result[Location] {
	loc, err := s.reverseGeocode(ctx, lat, lng)
	if err != nil {
		s.logger.Debug("reverse geocode failed", "error", err)
		return Failure[Location](err)
	}
	return Success(loc)
}

func (s *Service) reverseGeocode(ctx context.Context, lat, lng float64) (Location, error) {
	if err := validateCoordinates(lat, lng); err != nil {
		return Location{}, err
	}

	resp, err := s.maps.ReverseGeocode(ctx, geo.Location{Latitude: lat, Longitude: lng})
	if err != nil {
		return Location{}, Upstreamf("reverse geocoding request failed: %v", err)
	}
	if err := upstreamStatus("geocoding", resp.Status, resp.ErrorMessage); err != nil {
		return Location{}, err
	}
	if len(resp.Results) == 0 {
		return Location{}, EmptyResultf("no results found for the given coordinates")
	}

	best := resp.Results[0]
	return Location{
		Location: geo.Location{Latitude: lat, Longitude: lng},
		Address:  best.FormattedAddress,
		PlaceID:  best.PlaceID,
	}, nil
}
