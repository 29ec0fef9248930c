package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocationCoordinates(t *testing.T) {
	upstream := newFakeUpstream()
	svc := newTestService(t, upstream)

	loc, err := svc.resolveLocation(context.Background(), LocationInput{
		Value:         " 40.7, -74.0 ",
		IsCoordinates: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 40.7, loc.Latitude)
	assert.Equal(t, -74.0, loc.Longitude)
	assert.EqualValues(t, 0, upstream.hits.Load(), "coordinate input must be parsed locally")
}

func TestResolveLocationCoordinateErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not numeric", "not,numbers"},
		{"single component", "40.7"},
		{"three components", "1,2,3"},
		{"latitude out of range", "90.5,0"},
		{"longitude out of range", "0,181"},
		{"NaN pair", "NaN,NaN"},
		{"infinite latitude", "Inf,0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			upstream := newFakeUpstream()
			svc := newTestService(t, upstream)

			_, err := svc.resolveLocation(context.Background(), LocationInput{
				Value:         tc.value,
				IsCoordinates: true,
			})
			require.Error(t, err)
			var terr *ToolError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, KindInvalidArgument, terr.Kind)
			assert.EqualValues(t, 0, upstream.hits.Load())
		})
	}
}

func TestResolveLocationFreeText(t *testing.T) {
	upstream := newFakeUpstream()
	upstream.handleJSON("/maps/api/geocode/json", geocodeOKBody)
	svc := newTestService(t, upstream)

	loc, err := svc.resolveLocation(context.Background(), LocationInput{Value: "Mountain View"})
	require.NoError(t, err)
	assert.Equal(t, "ChIJgoog", loc.PlaceID)
	assert.EqualValues(t, 1, upstream.hits.Load())
}
