package tools

import (
	"context"
	"testing"

	"github.com/mapworks/gmapsmcp/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registeredToolNames = []string{
	"search_nearby",
	"get_place_details",
	"get_geocode",
	"get_reverse_geocode",
	"get_distance_matrix",
	"get_directions",
	"get_elevation",
	"get_map_with_directions",
	"generate_static_map",
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	svc := newTestService(t, newFakeUpstream())
	return NewRegistry(testutil.DiscardLogger(), svc)
}

func TestRegistryExposesAllTools(t *testing.T) {
	reg := newTestRegistry(t)

	defs := reg.ToolDefinitions()
	require.Len(t, defs, len(registeredToolNames))
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		assert.Equal(t, def.Name, def.Tool.Name, "definition name must match the schema name")
		assert.NotEmpty(t, def.Description)
		assert.NotNil(t, def.Handler)
		seen[def.Name] = true
	}
	for _, name := range registeredToolNames {
		assert.True(t, seen[name], "missing tool %s", name)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	reg := newTestRegistry(t)

	res, err := reg.Dispatch(context.Background(), "get_weather", map[string]any{})
	require.NoError(t, err, "dispatch failures travel inside the envelope")

	env := decodeEnvelope[struct{}](t, res)
	assert.False(t, env.Success)
	assert.True(t, res.IsError)
	assert.Contains(t, env.Error, "unknown tool: get_weather")
}

func TestDispatchNilArguments(t *testing.T) {
	reg := newTestRegistry(t)

	res, err := reg.Dispatch(context.Background(), "get_geocode", nil)
	require.NoError(t, err)

	env := decodeEnvelope[struct{}](t, res)
	assert.False(t, env.Success)
	assert.True(t, res.IsError)
	assert.Contains(t, env.Error, "no arguments provided")
}

func TestDispatchRoutesToHandler(t *testing.T) {
	reg := newTestRegistry(t)

	// The geocode handler receives the arguments and fails on validation,
	// proving dispatch reached it rather than the unknown-tool path.
	res, err := reg.Dispatch(context.Background(), "get_geocode", map[string]any{"address": ""})
	require.NoError(t, err)

	env := decodeEnvelope[Location](t, res)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "address is required")
}
