package tools

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/mapworks/gmapsmcp/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticMapURLIsDeterministic(t *testing.T) {
	svc := newTestService(t, newFakeUpstream())

	opts := StaticMapOptions{
		Center:  geo.Location{Latitude: 40.7, Longitude: -74.0},
		Zoom:    12,
		Width:   640,
		Height:  480,
		MapType: "satellite",
		Markers: []StaticMapMarker{
			{Location: geo.Location{Latitude: 40.7, Longitude: -74.0}, Color: "red", Label: "A"},
			{Location: geo.Location{Latitude: 40.8, Longitude: -74.1}},
		},
		Path: &StaticMapPath{
			Points: []geo.Location{{Latitude: 40.7, Longitude: -74.0}, {Latitude: 40.8, Longitude: -74.1}},
			Color:  "0xff0000ff",
			Weight: 5,
		},
	}

	first := svc.StaticMap(opts)
	second := svc.StaticMap(opts)
	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, *first.Data, *second.Data, "identical options must produce identical URLs")
}

func TestStaticMapURLParameters(t *testing.T) {
	svc := newTestService(t, newFakeUpstream())

	env := svc.StaticMap(StaticMapOptions{
		Center: geo.Location{Latitude: 40.7, Longitude: -74.0},
		Zoom:   12,
		Width:  640,
		Height: 480,
		Markers: []StaticMapMarker{
			{Location: geo.Location{Latitude: 40.7, Longitude: -74.0}, Color: "red", Label: "A"},
		},
	})
	require.True(t, env.Success)

	u, err := url.Parse(*env.Data)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "40.7,-74", q.Get("center"))
	assert.Equal(t, "12", q.Get("zoom"))
	assert.Equal(t, "640x480", q.Get("size"))
	assert.Equal(t, "roadmap", q.Get("maptype"), "mapType defaults to roadmap")
	assert.Equal(t, "2", q.Get("scale"))
	assert.Equal(t, "color:red|label:A|40.7,-74", q.Get("markers"))
	assert.Equal(t, "test-key", q.Get("key"), "the URL embeds the credential")
	assert.Equal(t, "en", q.Get("language"))
}

func TestStaticMapMarkersShareOneParameter(t *testing.T) {
	svc := newTestService(t, newFakeUpstream())

	env := svc.StaticMap(StaticMapOptions{
		Center: geo.Location{Latitude: 0, Longitude: 0},
		Zoom:   2,
		Width:  100,
		Height: 100,
		Markers: []StaticMapMarker{
			{Location: geo.Location{Latitude: 1, Longitude: 2}},
			{Location: geo.Location{Latitude: 3, Longitude: 4}},
		},
	})
	require.True(t, env.Success)

	u, err := url.Parse(*env.Data)
	require.NoError(t, err)
	require.Len(t, u.Query()["markers"], 1)
	assert.Equal(t, "1,2|3,4", u.Query().Get("markers"))
}

func TestStaticMapPathSpec(t *testing.T) {
	svc := newTestService(t, newFakeUpstream())

	env := svc.StaticMap(StaticMapOptions{
		Center: geo.Location{Latitude: 40.7, Longitude: -74.0},
		Zoom:   10,
		Width:  400,
		Height: 300,
		Path: &StaticMapPath{
			Points: []geo.Location{{Latitude: 40.7, Longitude: -74.0}, {Latitude: 40.8, Longitude: -74.1}},
			Color:  "0x0000ff",
			Weight: 3,
		},
	})
	require.True(t, env.Success)

	u, err := url.Parse(*env.Data)
	require.NoError(t, err)
	assert.Equal(t, "color:0x0000ff|weight:3|40.7,-74|40.8,-74.1", u.Query().Get("path"))
}

func TestStaticMapInvalidMarkerCoordinates(t *testing.T) {
	svc := newTestService(t, newFakeUpstream())

	env := svc.StaticMap(StaticMapOptions{
		Center:  geo.Location{Latitude: 0, Longitude: 0},
		Zoom:    2,
		Width:   100,
		Height:  100,
		Markers: []StaticMapMarker{{Location: geo.Location{Latitude: 95, Longitude: 0}}},
	})
	require.False(t, env.Success)
	assert.Contains(t, env.Error, "invalid latitude")
}

func TestHandleStaticMapArgumentPresence(t *testing.T) {
	svc := newTestService(t, newFakeUpstream())

	validArgs := func() map[string]any {
		return map[string]any{
			"center": map[string]any{"lat": 40.7, "lng": -74.0},
			"zoom":   12.0,
			"size":   map[string]any{"width": 640.0, "height": 480.0},
		}
	}

	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantErr string
	}{
		{"missing center", func(m map[string]any) { delete(m, "center") }, "center is required"},
		{"missing zoom", func(m map[string]any) { delete(m, "zoom") }, "zoom is required"},
		{"negative zoom", func(m map[string]any) { m["zoom"] = -1.0 }, "zoom must not be negative"},
		{"missing size", func(m map[string]any) { delete(m, "size") }, "size is required"},
		{
			"missing height",
			func(m map[string]any) { m["size"] = map[string]any{"width": 640.0} },
			"size.height is required",
		},
		{
			"zero width",
			func(m map[string]any) { m["size"] = map[string]any{"width": 0.0, "height": 480.0} },
			"size dimensions must be greater than 0",
		},
		{
			"missing center lng",
			func(m map[string]any) { m["center"] = map[string]any{"lat": 40.7} },
			"center.lng is required",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := validArgs()
			tc.mutate(args)
			res, err := svc.HandleStaticMap(context.Background(), callRequest("generate_static_map", args))
			require.NoError(t, err)
			env := decodeEnvelope[string](t, res)
			assert.False(t, env.Success)
			assert.Contains(t, env.Error, tc.wantErr)
		})
	}
}

func TestHandleStaticMapZeroValuesAccepted(t *testing.T) {
	// Zoom 0 and the 0,0 coordinate are legitimate values that must not
	// be mistaken for missing arguments.
	svc := newTestService(t, newFakeUpstream())

	res, err := svc.HandleStaticMap(context.Background(), callRequest("generate_static_map", map[string]any{
		"center": map[string]any{"lat": 0.0, "lng": 0.0},
		"zoom":   0.0,
		"size":   map[string]any{"width": 640.0, "height": 480.0},
	}))
	require.NoError(t, err)
	env := decodeEnvelope[string](t, res)
	require.True(t, env.Success)
	assert.True(t, strings.Contains(*env.Data, "zoom=0"))
	assert.True(t, strings.Contains(*env.Data, "center=0%2C0"))
}
