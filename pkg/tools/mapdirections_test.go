package tools

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapDirectionsArgs() map[string]any {
	return map[string]any{
		"origin": map[string]any{
			"address": "Ferry Building, San Francisco",
			"lat":     37.7955,
			"lng":     -122.3937,
		},
		"destination": map[string]any{
			"address": "Golden Gate Bridge",
			"lat":     37.8199,
			"lng":     -122.4783,
		},
	}
}

func TestMapDirectionsBuildsBothURLs(t *testing.T) {
	svc := newTestService(t, newFakeUpstream())

	args := mapDirectionsArgs()
	args["waypoints"] = []any{
		map[string]any{"address": "Palace of Fine Arts", "lat": 37.8029, "lng": -122.4484},
	}
	res, err := svc.HandleMapDirections(context.Background(), callRequest("get_map_with_directions", args))
	require.NoError(t, err)

	env := decodeEnvelope[MapDirectionsResult](t, res)
	require.True(t, env.Success)
	data := env.Data

	deepLink, parseErr := url.Parse(data.GoogleMapsURL)
	require.NoError(t, parseErr)
	assert.Equal(t, "www.google.com", deepLink.Host)
	q := deepLink.Query()
	assert.Equal(t, "1", q.Get("api"))
	assert.Equal(t, "Ferry Building, San Francisco", q.Get("origin"))
	assert.Equal(t, "Golden Gate Bridge", q.Get("destination"))
	assert.Equal(t, "driving", q.Get("travelmode"), "mode defaults to driving")
	assert.Equal(t, "Palace of Fine Arts", q.Get("waypoints"))

	staticURL, parseErr := url.Parse(data.StaticMapURL)
	require.NoError(t, parseErr)
	sq := staticURL.Query()
	assert.Equal(t, "640x480", sq.Get("size"))
	assert.Equal(t, "2", sq.Get("scale"))
	assert.Equal(t, "roadmap", sq.Get("maptype"))
	markers := sq["markers"]
	require.Len(t, markers, 3, "origin, destination and each waypoint get a marker")
	assert.Equal(t, "size:mid|color:green|label:A|37.7955,-122.3937", markers[0])
	assert.Equal(t, "size:mid|color:red|label:C|37.8199,-122.4783", markers[1])
	assert.Equal(t, "size:mid|color:blue|label:B|37.8029,-122.4484", markers[2])
	assert.Equal(t,
		"color:0x4285F4|weight:4|37.7955,-122.3937|37.8029,-122.4484|37.8199,-122.4783",
		sq.Get("path"), "the path visits every stop in order")

	assert.Equal(t, "Ferry Building, San Francisco", data.Summary.Origin)
	assert.Equal(t, []string{"Palace of Fine Arts"}, data.Summary.Waypoints)
	assert.Equal(t, "driving", data.Summary.Mode)
}

func TestMapDirectionsStaticURLEmbedsKey(t *testing.T) {
	svc := newTestService(t, newFakeUpstream())

	res, err := svc.HandleMapDirections(context.Background(), callRequest("get_map_with_directions", mapDirectionsArgs()))
	require.NoError(t, err)
	env := decodeEnvelope[MapDirectionsResult](t, res)
	require.True(t, env.Success)

	staticURL, parseErr := url.Parse(env.Data.StaticMapURL)
	require.NoError(t, parseErr)
	assert.Equal(t, "test-key", staticURL.Query().Get("key"))

	deepLink, parseErr := url.Parse(env.Data.GoogleMapsURL)
	require.NoError(t, parseErr)
	assert.Empty(t, deepLink.Query().Get("key"), "the deep link carries no credential")
}

func TestMapDirectionsZeroCoordinatesAccepted(t *testing.T) {
	svc := newTestService(t, newFakeUpstream())

	args := mapDirectionsArgs()
	args["origin"] = map[string]any{"address": "Null Island", "lat": 0.0, "lng": 0.0}
	res, err := svc.HandleMapDirections(context.Background(), callRequest("get_map_with_directions", args))
	require.NoError(t, err)
	env := decodeEnvelope[MapDirectionsResult](t, res)
	require.True(t, env.Success)
	assert.Contains(t, env.Data.StaticMapURL, "label%3AA%7C0%2C0")
}

func TestMapDirectionsRoutePointValidation(t *testing.T) {
	svc := newTestService(t, newFakeUpstream())

	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantErr string
	}{
		{
			"missing origin",
			func(m map[string]any) { delete(m, "origin") },
			"origin must include address, lat, and lng",
		},
		{
			"origin missing lng",
			func(m map[string]any) {
				m["origin"] = map[string]any{"address": "a", "lat": 1.0}
			},
			"origin must include address, lat, and lng",
		},
		{
			"waypoint missing address",
			func(m map[string]any) {
				m["waypoints"] = []any{map[string]any{"lat": 1.0, "lng": 2.0}}
			},
			"waypoints[0] must include address, lat, and lng",
		},
		{
			"waypoint blank address",
			func(m map[string]any) {
				m["waypoints"] = []any{map[string]any{"address": "  ", "lat": 1.0, "lng": 2.0}}
			},
			"waypoints[0].address is required",
		},
		{
			"destination out of range",
			func(m map[string]any) {
				m["destination"] = map[string]any{"address": "b", "lat": -91.0, "lng": 0.0}
			},
			"invalid latitude",
		},
		{
			"bad scale",
			func(m map[string]any) { m["scale"] = 3.0 },
			"scale must be 1 or 2",
		},
		{
			"fractional scale",
			func(m map[string]any) { m["scale"] = 1.5 },
			"scale must be 1 or 2",
		},
		{
			"bad mode",
			func(m map[string]any) { m["mode"] = "teleport" },
			"invalid travel mode",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := mapDirectionsArgs()
			tc.mutate(args)
			res, err := svc.HandleMapDirections(context.Background(), callRequest("get_map_with_directions", args))
			require.NoError(t, err)
			env := decodeEnvelope[MapDirectionsResult](t, res)
			assert.False(t, env.Success)
			assert.True(t, res.IsError)
			assert.Contains(t, env.Error, tc.wantErr)
		})
	}
}

func TestMapDirectionsCustomSize(t *testing.T) {
	svc := newTestService(t, newFakeUpstream())

	args := mapDirectionsArgs()
	args["size"] = map[string]any{"width": 800.0, "height": 600.0}
	args["scale"] = 1.0
	args["mapType"] = "terrain"
	res, err := svc.HandleMapDirections(context.Background(), callRequest("get_map_with_directions", args))
	require.NoError(t, err)
	env := decodeEnvelope[MapDirectionsResult](t, res)
	require.True(t, env.Success)

	staticURL, parseErr := url.Parse(env.Data.StaticMapURL)
	require.NoError(t, parseErr)
	assert.Equal(t, "800x600", staticURL.Query().Get("size"))
	assert.Equal(t, "1", staticURL.Query().Get("scale"))
	assert.Equal(t, "terrain", staticURL.Query().Get("maptype"))
}
