package gmaps

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/mapworks/gmapsmcp/pkg/geo"
)

// NearbySearchParams shapes a Places nearby search request.
type NearbySearchParams struct {
	Location geo.Location
	Radius   int
	Keyword  string
	OpenNow  bool
}

// Geocode resolves a free-text address to geocoding candidates. The
// configured region bias is forwarded, matching the Geocoding API's
// region parameter.
func (c *Client) Geocode(ctx context.Context, address string) (*GeocodeResponse, error) {
	q := url.Values{}
	q.Set("address", address)
	if c.region != "" {
		q.Set("region", c.region)
	}

	var out GeocodeResponse
	if err := c.get(ctx, pathGeocode, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReverseGeocode resolves coordinates to address candidates.
func (c *Client) ReverseGeocode(ctx context.Context, loc geo.Location) (*GeocodeResponse, error) {
	q := url.Values{}
	q.Set("latlng", loc.String())

	var out GeocodeResponse
	if err := c.get(ctx, pathGeocode, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NearbySearch finds places around a center point.
func (c *Client) NearbySearch(ctx context.Context, params NearbySearchParams) (*NearbySearchResponse, error) {
	q := url.Values{}
	q.Set("location", params.Location.String())
	q.Set("radius", strconv.Itoa(params.Radius))
	if params.Keyword != "" {
		q.Set("keyword", params.Keyword)
	}
	if params.OpenNow {
		q.Set("opennow", "true")
	}

	var out NearbySearchResponse
	if err := c.get(ctx, pathNearbySearch, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceDetails looks up a place by ID, requesting only the given fields.
func (c *Client) PlaceDetails(ctx context.Context, placeID string, fields []string) (*PlaceDetailsResponse, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}

	var out PlaceDetailsResponse
	if err := c.get(ctx, pathPlaceDetails, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DistanceMatrix computes travel distance and time for every origin x
// destination pair.
func (c *Client) DistanceMatrix(ctx context.Context, origins, destinations []string, mode string) (*DistanceMatrixResponse, error) {
	q := url.Values{}
	q.Set("origins", strings.Join(origins, "|"))
	q.Set("destinations", strings.Join(destinations, "|"))
	q.Set("mode", mode)

	var out DistanceMatrixResponse
	if err := c.get(ctx, pathDistanceMatrix, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Directions computes routes between an origin and a destination.
func (c *Client) Directions(ctx context.Context, origin, destination, mode string) (*DirectionsResponse, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("mode", mode)

	var out DirectionsResponse
	if err := c.get(ctx, pathDirections, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Elevation samples elevation at each of the given locations in a single
// batch request.
func (c *Client) Elevation(ctx context.Context, locations []geo.Location) (*ElevationResponse, error) {
	encoded := make([]string, 0, len(locations))
	for _, loc := range locations {
		encoded = append(encoded, loc.String())
	}

	q := url.Values{}
	q.Set("locations", strings.Join(encoded, "|"))

	var out ElevationResponse
	if err := c.get(ctx, pathElevation, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
