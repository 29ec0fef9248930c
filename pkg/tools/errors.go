// Package tools provides the Google Maps MCP tools implementations.
package tools

import (
	"fmt"
	"strings"

	"github.com/mapworks/gmapsmcp/pkg/geo"
)

// Kind classifies a tool failure. Every error crossing an adapter
// boundary carries exactly one kind.
type Kind string

const (
	// KindInvalidArgument marks a local validation failure. Requests
	// failing this way never reach the upstream API.
	KindInvalidArgument Kind = "invalid_argument"

	// KindEmptyResult marks an upstream call that succeeded but returned
	// zero usable results where at least one was required.
	KindEmptyResult Kind = "empty_result"

	// KindUpstream marks a non-success upstream status or a transport
	// failure.
	KindUpstream Kind = "upstream_error"

	// KindMalformedPayload marks an upstream success whose payload lacks
	// fields the canonical result requires.
	KindMalformedPayload Kind = "malformed_payload"

	// KindUnknownTool marks a dispatch to a tool name with no registered
	// handler.
	KindUnknownTool Kind = "unknown_tool"
)

// ToolError is the single error type produced by the tools package.
type ToolError struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	return e.Message
}

// InvalidArgumentf creates a validation error.
func InvalidArgumentf(format string, args ...any) *ToolError {
	return &ToolError{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// EmptyResultf creates an empty-upstream-result error.
func EmptyResultf(format string, args ...any) *ToolError {
	return &ToolError{Kind: KindEmptyResult, Message: fmt.Sprintf(format, args...)}
}

// Upstreamf creates an upstream-failure error.
func Upstreamf(format string, args ...any) *ToolError {
	return &ToolError{Kind: KindUpstream, Message: fmt.Sprintf(format, args...)}
}

// MalformedPayloadf creates a missing-required-data error.
func MalformedPayloadf(format string, args ...any) *ToolError {
	return &ToolError{Kind: KindMalformedPayload, Message: fmt.Sprintf(format, args...)}
}

// UnknownToolf creates an unknown-tool error.
func UnknownToolf(format string, args ...any) *ToolError {
	return &ToolError{Kind: KindUnknownTool, Message: fmt.Sprintf(format, args...)}
}

// validateRequiredString checks that a required string is non-empty after
// trimming, naming the field in the error.
func validateRequiredString(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return InvalidArgumentf("%s is required", field)
	}
	return nil
}

// validateCoordinates wraps the shared range check into the error
// taxonomy.
func validateCoordinates(lat, lng float64) error {
	if err := geo.ValidateCoordinates(lat, lng); err != nil {
		return &ToolError{Kind: KindInvalidArgument, Message: err.Error()}
	}
	return nil
}

// upstreamStatus interprets the status string embedded in an otherwise
// successful API response. It returns nil for OK and ZERO_RESULTS; the
// caller decides whether an empty result set is acceptable.
func upstreamStatus(service, status, errorMessage string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	default:
		if errorMessage == "" {
			errorMessage = "unknown error"
		}
		return Upstreamf("%s API error: %s - %s", service, status, errorMessage)
	}
}
