package tools

import (
	"context"

	"github.com/mapworks/gmapsmcp/pkg/geo"
	"github.com/mapworks/gmapsmcp/pkg/gmaps"
	"github.com/mark3labs/mcp-go/mcp"
)

// placeDetailFields is the fixed allowlist requested from the Place
// Details API. Bounding the field set bounds the response size.
var placeDetailFields = []string{
	"place_id",
	"name",
	"formatted_address",
	"geometry",
	"rating",
	"user_ratings_total",
	"opening_hours",
	"photos",
	"price_level",
	"types",
	"website",
	"formatted_phone_number",
}

// SearchNearbyParams are the arguments of the search_nearby tool.
type SearchNearbyParams struct {
	Center    LocationInput
	Keyword   string
	Radius    int
	OpenNow   bool
	MinRating float64
}

// SearchNearbyTool returns the tool definition for nearby place search.
func SearchNearbyTool() mcp.Tool {
	return mcp.NewTool("search_nearby",
		mcp.WithDescription("Search for places near a specific location"),
		mcp.WithObject("center",
			mcp.Required(),
			mcp.Description("Center of the search area"),
			mcp.Properties(map[string]any{
				"value": map[string]any{
					"type":        "string",
					"description": "Address, place name or coordinates (format: lat,lng)",
				},
				"isCoordinates": map[string]any{
					"type":        "boolean",
					"description": "Whether the value is coordinates",
					"default":     false,
				},
			}),
		),
		mcp.WithString("keyword",
			mcp.Description("Search keyword (e.g., restaurant, coffee)"),
		),
		mcp.WithNumber("radius",
			mcp.Description("Search radius in meters"),
			mcp.DefaultNumber(1000),
		),
		mcp.WithBoolean("openNow",
			mcp.Description("Only show places that are currently open"),
			mcp.DefaultBool(false),
		),
		mcp.WithNumber("minRating",
			mcp.Description("Minimum rating requirement (0-5)"),
		),
	)
}

// PlaceDetailsTool returns the tool definition for place detail lookup.
func PlaceDetailsTool() mcp.Tool {
	return mcp.NewTool("get_place_details",
		mcp.WithDescription("Get detailed information about a specific place"),
		mcp.WithString("placeId",
			mcp.Required(),
			mcp.Description("Google Maps place ID"),
		),
	)
}

// HandleSearchNearby implements the search_nearby tool.
func (s *Service) HandleSearchNearby(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	center, ok := objectArg(req, "center")
	if !ok {
		return failureResponse(InvalidArgumentf("center is required")), nil
	}
	value, ok := stringField(center, "value")
	if !ok {
		return failureResponse(InvalidArgumentf("center.value is required")), nil
	}
	isCoordinates, _ := boolField(center, "isCoordinates")

	params := SearchNearbyParams{
		Center:    LocationInput{Value: value, IsCoordinates: isCoordinates},
		Keyword:   mcp.ParseString(req, "keyword", ""),
		Radius:    int(mcp.ParseFloat64(req, "radius", 1000)),
		OpenNow:   mcp.ParseBoolean(req, "openNow", false),
		MinRating: mcp.ParseFloat64(req, "minRating", 0),
	}

	return toResponse(s.SearchNearby(ctx, params)), nil
}

// HandlePlaceDetails implements the get_place_details tool.
func (s *Service) HandlePlaceDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	placeID := mcp.ParseString(req, "placeId", "")
	return toResponse(s.PlaceDetails(ctx, placeID)), nil
}

// SearchNearby finds places around a center point. A free-text center is
// geocoded first; the minRating filter is applied locally after upstream
// returns, since the API offers no minimum-rating parameter. An empty
// result set is a successful, empty answer.
func (s *Service) SearchNearby(ctx context.Context, params SearchNearbyParams) Result[[]NearbyPlace] {
	places, err := s.searchNearby(ctx, params)
	if err != nil {
		s.logger.Debug("nearby search failed", "error", err)
		return Failure[[]NearbyPlace](err)
	}
	return Success(places)
}

func (s *Service) searchNearby(ctx context.Context, params SearchNearbyParams) ([]NearbyPlace, error) {
	if params.Radius <= 0 {
		return nil, InvalidArgumentf("radius must be greater than 0")
	}
	if params.MinRating < 0 || params.MinRating > 5 {
		return nil, InvalidArgumentf("minRating must be between 0 and 5")
	}

	center, err := s.resolveLocation(ctx, params.Center)
	if err != nil {
		return nil, err
	}

	resp, err := s.maps.NearbySearch(ctx, gmaps.NearbySearchParams{
		Location: center.Location,
		Radius:   params.Radius,
		Keyword:  params.Keyword,
		OpenNow:  params.OpenNow,
	})
	if err != nil {
		return nil, Upstreamf("nearby search request failed: %v", err)
	}
	if err := upstreamStatus("places", resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}

	places := make([]NearbyPlace, 0, len(resp.Results))
	for _, p := range resp.Results {
		if p.PlaceID == "" || p.Name == "" || p.Geometry == nil {
			return nil, MalformedPayloadf("required place data is missing")
		}
		// A place without a rating counts as rating 0 for filtering.
		if params.MinRating > 0 && p.Rating < params.MinRating {
			continue
		}
		places = append(places, NearbyPlace{
			PlaceID: p.PlaceID,
			Name:    p.Name,
			Location: &geo.Location{
				Latitude:  p.Geometry.Location.Lat,
				Longitude: p.Geometry.Location.Lng,
			},
			Rating:           p.Rating,
			UserRatingsTotal: p.UserRatingsTotal,
			Types:            p.Types,
			Vicinity:         p.Vicinity,
		})
	}
	return places, nil
}

// PlaceDetails looks up one place by ID. The upstream status is checked
// before the payload so that a malformed-but-OK payload yields a specific
// missing-data message.
func (s *Service) PlaceDetails(ctx context.Context, placeID string) Result[PlaceDetails] {
	details, err := s.placeDetails(ctx, placeID)
	if err != nil {
		s.logger.Debug("place details failed", "error", err)
		return Failure[PlaceDetails](err)
	}
	return Success(details)
}

func (s *Service) placeDetails(ctx context.Context, placeID string) (PlaceDetails, error) {
	if err := validateRequiredString(placeID, "placeId"); err != nil {
		return PlaceDetails{}, err
	}

	resp, err := s.maps.PlaceDetails(ctx, placeID, placeDetailFields)
	if err != nil {
		return PlaceDetails{}, Upstreamf("place details request failed: %v", err)
	}
	if err := upstreamStatus("places", resp.Status, resp.ErrorMessage); err != nil {
		return PlaceDetails{}, err
	}
	if resp.Status == gmaps.StatusZeroResults {
		return PlaceDetails{}, EmptyResultf("no place found for the given place ID")
	}
	if resp.Result == nil {
		return PlaceDetails{}, MalformedPayloadf("no place data returned from the places API")
	}

	place := resp.Result
	if place.PlaceID == "" || place.Name == "" {
		return PlaceDetails{}, MalformedPayloadf(
			"missing required place data - place_id: %q, name: %q", place.PlaceID, place.Name)
	}

	details := PlaceDetails{
		PlaceID:          place.PlaceID,
		Name:             place.Name,
		FormattedAddress: place.FormattedAddress,
		Rating:           place.Rating,
		UserRatingsTotal: place.UserRatingsTotal,
		PriceLevel:       place.PriceLevel,
		Types:            place.Types,
		Website:          place.Website,
		PhoneNumber:      place.FormattedPhoneNumber,
	}
	if place.Geometry != nil {
		details.Location = &geo.Location{
			Latitude:  place.Geometry.Location.Lat,
			Longitude: place.Geometry.Location.Lng,
		}
	}
	if place.OpeningHours != nil {
		hours := &OpeningHours{OpenNow: place.OpeningHours.OpenNow}
		for _, period := range place.OpeningHours.Periods {
			p := OpeningPeriod{
				Open: DayTime{Day: period.Open.Day, Time: period.Open.Time},
			}
			if period.Close != nil {
				p.Close = DayTime{Day: period.Close.Day, Time: period.Close.Time}
			}
			hours.Periods = append(hours.Periods, p)
		}
		details.OpeningHours = hours
	}
	for _, photo := range place.Photos {
		details.Photos = append(details.Photos, Photo{
			PhotoReference: photo.PhotoReference,
			Height:         photo.Height,
			Width:          photo.Width,
		})
	}
	return details, nil
}
