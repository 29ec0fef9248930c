package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mapworks/gmapsmcp/pkg/geo"
	"github.com/mark3labs/mcp-go/mcp"
)

// staticMapScale is fixed for retina displays.
const staticMapScale = 2

// StaticMapMarker is one marker on a generated static map.
type StaticMapMarker struct {
	Location geo.Location
	Color    string
	Label    string
}

// StaticMapPath is a polyline drawn on a generated static map.
type StaticMapPath struct {
	Points []geo.Location
	Color  string
	Weight int
}

// StaticMapOptions are the arguments of the generate_static_map tool.
type StaticMapOptions struct {
	Center  geo.Location
	Zoom    int
	Width   int
	Height  int
	MapType string
	Markers []StaticMapMarker
	Path    *StaticMapPath
}

// StaticMapTool returns the tool definition for static map generation.
func StaticMapTool() mcp.Tool {
	return mcp.NewTool("generate_static_map",
		mcp.WithDescription("Generate a static map image URL for a location with optional markers and path"),
		mcp.WithObject("center",
			mcp.Required(),
			mcp.Description("Center of the map"),
			mcp.Properties(map[string]any{
				"lat": map[string]any{"type": "number", "description": "Latitude coordinate"},
				"lng": map[string]any{"type": "number", "description": "Longitude coordinate"},
			}),
		),
		mcp.WithNumber("zoom",
			mcp.Required(),
			mcp.Description("Map zoom level (0 is fully zoomed out)"),
		),
		mcp.WithObject("size",
			mcp.Required(),
			mcp.Description("Size of the map image in pixels"),
			mcp.Properties(map[string]any{
				"width":  map[string]any{"type": "number", "description": "Width in pixels"},
				"height": map[string]any{"type": "number", "description": "Height in pixels"},
			}),
		),
		mcp.WithArray("markers",
			mcp.Description("Markers to draw on the map"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"location": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"lat": map[string]any{"type": "number"},
							"lng": map[string]any{"type": "number"},
						},
						"required": []string{"lat", "lng"},
					},
					"color": map[string]any{"type": "string"},
					"label": map[string]any{"type": "string"},
				},
				"required": []string{"location"},
			}),
		),
		mcp.WithObject("path",
			mcp.Description("Pathline to draw on the map"),
			mcp.Properties(map[string]any{
				"points": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"lat": map[string]any{"type": "number"},
							"lng": map[string]any{"type": "number"},
						},
						"required": []string{"lat", "lng"},
					},
				},
				"color":  map[string]any{"type": "string"},
				"weight": map[string]any{"type": "number"},
			}),
		),
		mcp.WithString("mapType",
			mcp.Description("Map type"),
			mcp.Enum("roadmap", "satellite", "hybrid", "terrain"),
			mcp.DefaultString("roadmap"),
		),
	)
}

// HandleStaticMap implements the generate_static_map tool.
func (s *Service) HandleStaticMap(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts, err := parseStaticMapArgs(req)
	if err != nil {
		return failureResponse(err), nil
	}
	return toResponse(s.StaticMap(opts)), nil
}

func parseStaticMapArgs(req mcp.CallToolRequest) (StaticMapOptions, error) {
	var opts StaticMapOptions

	center, ok := objectArg(req, "center")
	if !ok {
		return opts, InvalidArgumentf("center is required")
	}
	centerLoc, err := latLngFields(center, "center")
	if err != nil {
		return opts, err
	}
	opts.Center = centerLoc

	// Zoom 0 is a valid value, so presence is checked explicitly instead
	// of relying on a parse default.
	zoomRaw, ok := req.Params.Arguments["zoom"]
	if !ok {
		return opts, InvalidArgumentf("zoom is required")
	}
	zoom, castErr := toInt(zoomRaw)
	if castErr != nil {
		return opts, InvalidArgumentf("zoom must be a number")
	}
	if zoom < 0 {
		return opts, InvalidArgumentf("zoom must not be negative")
	}
	opts.Zoom = zoom

	size, ok := objectArg(req, "size")
	if !ok {
		return opts, InvalidArgumentf("size is required")
	}
	width, ok := intField(size, "width")
	if !ok {
		return opts, InvalidArgumentf("size.width is required and must be a number")
	}
	height, ok := intField(size, "height")
	if !ok {
		return opts, InvalidArgumentf("size.height is required and must be a number")
	}
	if width <= 0 || height <= 0 {
		return opts, InvalidArgumentf("size dimensions must be greater than 0")
	}
	opts.Width = width
	opts.Height = height

	opts.MapType = mcp.ParseString(req, "mapType", "roadmap")

	if rawMarkers, ok := arrayArg(req, "markers"); ok {
		for i, item := range rawMarkers {
			obj, objErr := toObject(item)
			if objErr != nil {
				return opts, InvalidArgumentf("markers[%d] must be an object", i)
			}
			locObj, locOK := obj["location"]
			if !locOK {
				return opts, InvalidArgumentf("markers[%d].location is required", i)
			}
			locMap, locErr := toObject(locObj)
			if locErr != nil {
				return opts, InvalidArgumentf("markers[%d].location must be an object", i)
			}
			loc, locFieldErr := latLngFields(locMap, fmt.Sprintf("markers[%d].location", i))
			if locFieldErr != nil {
				return opts, locFieldErr
			}
			marker := StaticMapMarker{Location: loc}
			marker.Color, _ = stringField(obj, "color")
			marker.Label, _ = stringField(obj, "label")
			opts.Markers = append(opts.Markers, marker)
		}
	}

	if pathObj, ok := objectArg(req, "path"); ok {
		path := &StaticMapPath{}
		path.Color, _ = stringField(pathObj, "color")
		path.Weight, _ = intField(pathObj, "weight")
		rawPoints, pointsOK := pathObj["points"]
		if !pointsOK {
			return opts, InvalidArgumentf("path.points is required when path is set")
		}
		points, sliceErr := toSlice(rawPoints)
		if sliceErr != nil {
			return opts, InvalidArgumentf("path.points must be a list")
		}
		for i, item := range points {
			obj, objErr := toObject(item)
			if objErr != nil {
				return opts, InvalidArgumentf("path.points[%d] must be an object", i)
			}
			loc, locErr := latLngFields(obj, fmt.Sprintf("path.points[%d]", i))
			if locErr != nil {
				return opts, locErr
			}
			path.Points = append(path.Points, loc)
		}
		opts.Path = path
	}

	return opts, nil
}

// latLngFields reads and validates a lat/lng pair from an object,
// accepting zero values as present.
func latLngFields(obj map[string]any, field string) (geo.Location, error) {
	lat, ok := floatField(obj, "lat")
	if !ok {
		return geo.Location{}, InvalidArgumentf("%s.lat is required and must be a number", field)
	}
	lng, ok := floatField(obj, "lng")
	if !ok {
		return geo.Location{}, InvalidArgumentf("%s.lng is required and must be a number", field)
	}
	if err := validateCoordinates(lat, lng); err != nil {
		return geo.Location{}, err
	}
	return geo.Location{Latitude: lat, Longitude: lng}, nil
}

// StaticMap assembles a Static Maps API URL. It is a pure function of its
// inputs: identical options produce byte-identical URLs, and no network
// call is made. The returned URL embeds the API key and must not be
// relayed to untrusted parties.
func (s *Service) StaticMap(opts StaticMapOptions) Result[string] {
	mapURL, err := s.staticMapURL(opts)
	if err != nil {
		s.logger.Debug("static map failed", "error", err)
		return Failure[string](err)
	}
	return Success(mapURL)
}

func (s *Service) staticMapURL(opts StaticMapOptions) (string, error) {
	if err := validateCoordinates(opts.Center.Latitude, opts.Center.Longitude); err != nil {
		return "", err
	}
	mapType := opts.MapType
	if mapType == "" {
		mapType = "roadmap"
	}

	q := url.Values{}
	q.Set("center", opts.Center.String())
	q.Set("zoom", strconv.Itoa(opts.Zoom))
	q.Set("size", fmt.Sprintf("%dx%d", opts.Width, opts.Height))
	q.Set("maptype", mapType)
	q.Set("scale", strconv.Itoa(staticMapScale))

	if len(opts.Markers) > 0 {
		parts := make([]string, 0, len(opts.Markers))
		for _, marker := range opts.Markers {
			if err := validateCoordinates(marker.Location.Latitude, marker.Location.Longitude); err != nil {
				return "", err
			}
			var spec []string
			if marker.Color != "" {
				spec = append(spec, "color:"+marker.Color)
			}
			if marker.Label != "" {
				spec = append(spec, "label:"+marker.Label)
			}
			spec = append(spec, marker.Location.String())
			parts = append(parts, strings.Join(spec, "|"))
		}
		q.Set("markers", strings.Join(parts, "|"))
	}

	if opts.Path != nil && len(opts.Path.Points) > 0 {
		var spec []string
		if opts.Path.Color != "" {
			spec = append(spec, "color:"+opts.Path.Color)
		}
		if opts.Path.Weight > 0 {
			spec = append(spec, "weight:"+strconv.Itoa(opts.Path.Weight))
		}
		points := make([]string, 0, len(opts.Path.Points))
		for _, point := range opts.Path.Points {
			if err := validateCoordinates(point.Latitude, point.Longitude); err != nil {
				return "", err
			}
			points = append(points, point.String())
		}
		spec = append(spec, strings.Join(points, "|"))
		q.Set("path", strings.Join(spec, "|"))
	}

	return s.maps.StaticMapURL(q), nil
}
