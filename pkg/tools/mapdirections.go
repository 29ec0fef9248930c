package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mapworks/gmapsmcp/pkg/geo"
	"github.com/mark3labs/mcp-go/mcp"
)

// interactiveMapsBaseURL is the Google Maps deep-link endpoint. It takes
// no credential.
const interactiveMapsBaseURL = "https://www.google.com/maps/dir/"

// Defaults for the rendered static map.
const (
	defaultMapWidth  = 640
	defaultMapHeight = 480
	defaultMapScale  = 2
	routePathStyle   = "color:0x4285F4|weight:4"
)

// RoutePoint is a stop on the route: a human-readable address plus its
// coordinates. All three fields are required; latitude or longitude 0 is
// a value, not an absence.
type RoutePoint struct {
	Address string
	Lat     float64
	Lng     float64
}

// MapDirectionsParams are the arguments of the get_map_with_directions
// tool.
type MapDirectionsParams struct {
	Origin      RoutePoint
	Destination RoutePoint
	Waypoints   []RoutePoint
	Mode        TravelMode
	Width       int
	Height      int
	Scale       int
	MapType     string
}

// RouteSummary recaps the rendered route.
type RouteSummary struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Waypoints   []string `json:"waypoints,omitempty"`
	Mode        string   `json:"mode"`
}

// MapDirectionsResult pairs the interactive deep link with the rendered
// static map URL.
type MapDirectionsResult struct {
	GoogleMapsURL string       `json:"googleMapsUrl"`
	StaticMapURL  string       `json:"staticMapUrl"`
	Summary       RouteSummary `json:"summary"`
}

func routePointProperties() map[string]any {
	return map[string]any{
		"address": map[string]any{"type": "string", "description": "Human-readable address"},
		"lat":     map[string]any{"type": "number", "description": "Latitude coordinate"},
		"lng":     map[string]any{"type": "number", "description": "Longitude coordinate"},
	}
}

// MapDirectionsTool returns the tool definition for the map-with-
// directions composite.
func MapDirectionsTool() mcp.Tool {
	return mcp.NewTool("get_map_with_directions",
		mcp.WithDescription("Generate a map visualization showing directions from origin to destination with optional waypoints. Returns both an interactive Google Maps URL and a static map image URL."),
		mcp.WithObject("origin",
			mcp.Required(),
			mcp.Description("Starting point of the route"),
			mcp.Properties(routePointProperties()),
		),
		mcp.WithObject("destination",
			mcp.Required(),
			mcp.Description("End point of the route"),
			mcp.Properties(routePointProperties()),
		),
		mcp.WithArray("waypoints",
			mcp.Description("Optional intermediate stops along the route"),
			mcp.Items(map[string]any{
				"type":       "object",
				"properties": routePointProperties(),
				"required":   []string{"address", "lat", "lng"},
			}),
		),
		mcp.WithString("mode",
			mcp.Description("Travel mode for directions"),
			mcp.Enum("driving", "walking", "bicycling", "transit"),
			mcp.DefaultString("driving"),
		),
		mcp.WithObject("size",
			mcp.Description("Size of the static map image"),
			mcp.Properties(map[string]any{
				"width":  map[string]any{"type": "number", "description": "Width in pixels", "default": defaultMapWidth},
				"height": map[string]any{"type": "number", "description": "Height in pixels", "default": defaultMapHeight},
			}),
		),
		mcp.WithNumber("scale",
			mcp.Description("Scale factor for high-DPI displays (1 or 2)"),
			mcp.DefaultNumber(defaultMapScale),
		),
		mcp.WithString("mapType",
			mcp.Description("Map type for static map"),
			mcp.Enum("roadmap", "satellite", "hybrid", "terrain"),
			mcp.DefaultString("roadmap"),
		),
	)
}

// HandleMapDirections implements the get_map_with_directions tool.
func (s *Service) HandleMapDirections(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params, err := parseMapDirectionsArgs(req)
	if err != nil {
		return failureResponse(err), nil
	}
	return toResponse(s.MapDirections(params)), nil
}

func parseMapDirectionsArgs(req mcp.CallToolRequest) (MapDirectionsParams, error) {
	var params MapDirectionsParams

	origin, err := routePointArg(req, "origin")
	if err != nil {
		return params, err
	}
	params.Origin = origin

	destination, err := routePointArg(req, "destination")
	if err != nil {
		return params, err
	}
	params.Destination = destination

	if raw, ok := arrayArg(req, "waypoints"); ok {
		for i, item := range raw {
			obj, objErr := toObject(item)
			if objErr != nil {
				return params, InvalidArgumentf("waypoints[%d] must be an object", i)
			}
			wp, wpErr := routePointFields(obj, fmt.Sprintf("waypoints[%d]", i))
			if wpErr != nil {
				return params, wpErr
			}
			params.Waypoints = append(params.Waypoints, wp)
		}
	}

	mode, err := parseTravelMode(mcp.ParseString(req, "mode", ""))
	if err != nil {
		return params, err
	}
	params.Mode = mode

	params.Width = defaultMapWidth
	params.Height = defaultMapHeight
	if size, ok := objectArg(req, "size"); ok {
		if w, present := intField(size, "width"); present {
			params.Width = w
		}
		if h, present := intField(size, "height"); present {
			params.Height = h
		}
	}
	if params.Width <= 0 || params.Height <= 0 {
		return params, InvalidArgumentf("size dimensions must be greater than 0")
	}

	// Compared before truncation so a fractional scale is rejected
	// rather than rounded into a valid one.
	scale := mcp.ParseFloat64(req, "scale", defaultMapScale)
	if scale != 1 && scale != 2 {
		return params, InvalidArgumentf("scale must be 1 or 2")
	}
	params.Scale = int(scale)

	params.MapType = mcp.ParseString(req, "mapType", "roadmap")
	return params, nil
}

// routePointArg reads a required route point from the top-level argument
// bag.
func routePointArg(req mcp.CallToolRequest, key string) (RoutePoint, error) {
	obj, ok := objectArg(req, key)
	if !ok {
		return RoutePoint{}, InvalidArgumentf("%s must include address, lat, and lng", key)
	}
	return routePointFields(obj, key)
}

// routePointFields checks that all three of address, lat and lng are set,
// using explicit key-presence tests so that zero-valued coordinates pass.
func routePointFields(obj map[string]any, field string) (RoutePoint, error) {
	address, ok := stringField(obj, "address")
	if !ok {
		return RoutePoint{}, InvalidArgumentf("%s must include address, lat, and lng", field)
	}
	if err := validateRequiredString(address, field+".address"); err != nil {
		return RoutePoint{}, err
	}
	lat, ok := floatField(obj, "lat")
	if !ok {
		return RoutePoint{}, InvalidArgumentf("%s must include address, lat, and lng", field)
	}
	lng, ok := floatField(obj, "lng")
	if !ok {
		return RoutePoint{}, InvalidArgumentf("%s must include address, lat, and lng", field)
	}
	if err := validateCoordinates(lat, lng); err != nil {
		return RoutePoint{}, err
	}
	return RoutePoint{Address: address, Lat: lat, Lng: lng}, nil
}

// MapDirections builds the interactive deep link and the static map URL
// for a route. No upstream call is made; both URLs are pure functions of
// the parameters. The static map URL embeds the API key and must be
// treated as secret.
func (s *Service) MapDirections(params MapDirectionsParams) Result[MapDirectionsResult] {
	result, err := s.mapDirections(params)
	if err != nil {
		s.logger.Debug("map with directions failed", "error", err)
		return Failure[MapDirectionsResult](err)
	}
	return Success(result)
}

func (s *Service) mapDirections(params MapDirectionsParams) (MapDirectionsResult, error) {
	summary := RouteSummary{
		Origin:      params.Origin.Address,
		Destination: params.Destination.Address,
		Mode:        string(params.Mode),
	}
	for _, wp := range params.Waypoints {
		summary.Waypoints = append(summary.Waypoints, wp.Address)
	}

	return MapDirectionsResult{
		GoogleMapsURL: buildGoogleMapsURL(params),
		StaticMapURL:  s.buildRouteStaticMapURL(params),
		Summary:       summary,
	}, nil
}

// buildGoogleMapsURL assembles the interactive directions deep link. It
// carries no credential.
func buildGoogleMapsURL(params MapDirectionsParams) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", params.Origin.Address)
	q.Set("destination", params.Destination.Address)
	q.Set("travelmode", string(params.Mode))

	if len(params.Waypoints) > 0 {
		waypoints := ""
		for i, wp := range params.Waypoints {
			if i > 0 {
				waypoints += "|"
			}
			waypoints += wp.Address
		}
		q.Set("waypoints", waypoints)
	}

	return interactiveMapsBaseURL + "?" + q.Encode()
}

// buildRouteStaticMapURL assembles the static map URL: origin marker
// green "A", destination red with the last letter of the sequence,
// waypoints blue "B" onward, and a path connecting every stop in order.
func (s *Service) buildRouteStaticMapURL(params MapDirectionsParams) string {
	stops := make([]RoutePoint, 0, len(params.Waypoints)+2)
	stops = append(stops, params.Origin)
	stops = append(stops, params.Waypoints...)
	stops = append(stops, params.Destination)

	q := url.Values{}
	q.Set("size", fmt.Sprintf("%dx%d", params.Width, params.Height))
	q.Set("scale", strconv.Itoa(params.Scale))
	q.Set("maptype", params.MapType)

	q.Add("markers", fmt.Sprintf("size:mid|color:green|label:A|%s", formatLatLng(params.Origin)))
	destLabel := rune('A' + len(stops) - 1)
	q.Add("markers", fmt.Sprintf("size:mid|color:red|label:%c|%s", destLabel, formatLatLng(params.Destination)))
	for i, wp := range params.Waypoints {
		q.Add("markers", fmt.Sprintf("size:mid|color:blue|label:%c|%s", rune('B'+i), formatLatLng(wp)))
	}

	path := routePathStyle
	for _, stop := range stops {
		path += "|" + formatLatLng(stop)
	}
	q.Set("path", path)

	return s.maps.StaticMapURL(q)
}

func formatLatLng(p RoutePoint) string {
	return geo.Location{Latitude: p.Lat, Longitude: p.Lng}.String()
}
