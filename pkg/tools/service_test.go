package tools

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mapworks/gmapsmcp/pkg/gmaps"
	"github.com/mapworks/gmapsmcp/pkg/testutil"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

// fakeUpstream is a counting fake Maps backend. Handlers are registered
// per endpoint path; unregistered paths return 404.
type fakeUpstream struct {
	mux  *http.ServeMux
	hits atomic.Int64
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{mux: http.NewServeMux()}
}

func (f *fakeUpstream) handle(path string, fn http.HandlerFunc) {
	f.mux.HandleFunc(path, fn)
}

func (f *fakeUpstream) handleJSON(path string, body string) {
	f.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.hits.Add(1)
	f.mux.ServeHTTP(w, r)
}

// newTestService wires a Service to the fake upstream.
func newTestService(t *testing.T, upstream *fakeUpstream) *Service {
	t.Helper()
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	client := gmaps.NewClient("test-key",
		gmaps.WithBaseURL(ts.URL),
		gmaps.WithHTTPClient(ts.Client()),
		gmaps.WithLanguage("en"),
		gmaps.WithRegion("US"),
	)
	return NewService(client, testutil.DiscardLogger())
}

// callRequest builds a CallToolRequest the way the dispatcher does.
func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// resultText extracts the textual envelope payload from a tool response.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

// decodeEnvelope unmarshals the envelope payload of a tool response.
func decodeEnvelope[T any](t *testing.T, res *mcp.CallToolResult) Result[T] {
	t.Helper()
	var out Result[T]
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	return out
}
