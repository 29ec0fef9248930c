package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// Result is the two-outcome envelope every tool resolves to. Exactly one
// of Data and Error is meaningful, according to Success.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success wraps data in a successful Result.
func Success[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: &data}
}

// Failure wraps an error in a failed Result.
func Failure[T any](err error) Result[T] {
	msg := "an unknown error occurred"
	if err != nil {
		msg = err.Error()
	}
	return Result[T]{Success: false, Error: msg}
}

// toResponse serializes the envelope as the textual payload of a tool
// response. The payload-level Success flag and the transport-level
// IsError flag are both set on every response; transports may rely on
// either.
func toResponse[T any](res Result[T]) *mcp.CallToolResult {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(`{"success":false,"error":"failed to encode result"}`)},
			IsError: true,
		}
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(b))},
		IsError: !res.Success,
	}
}

// failureResponse is a convenience for paths that fail before producing
// any typed data, such as argument parsing and unknown-tool dispatch.
func failureResponse(err error) *mcp.CallToolResult {
	return toResponse(Failure[struct{}](err))
}
