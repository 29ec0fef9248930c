package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// Argument-bag extraction helpers. Presence and type are checked
// explicitly: a key set to a zero value (latitude 0, empty-but-meaningful
// string) is present, only a missing key or a wrong type fails. Scalar
// top-level arguments go through the mcp.Parse* helpers; these cover the
// nested objects and arrays those helpers do not reach.

// objectArg returns a top-level object argument.
func objectArg(req mcp.CallToolRequest, key string) (map[string]any, bool) {
	v, ok := req.Params.Arguments[key]
	if !ok || v == nil {
		return nil, false
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, false
	}
	return m, true
}

// arrayArg returns a top-level array argument.
func arrayArg(req mcp.CallToolRequest, key string) ([]any, bool) {
	v, ok := req.Params.Arguments[key]
	if !ok || v == nil {
		return nil, false
	}
	s, err := cast.ToSliceE(v)
	if err != nil {
		return nil, false
	}
	return s, true
}

// stringSliceArg returns a top-level array-of-strings argument.
func stringSliceArg(req mcp.CallToolRequest, key string) ([]string, bool) {
	v, ok := req.Params.Arguments[key]
	if !ok || v == nil {
		return nil, false
	}
	s, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, false
	}
	return s, true
}

// toObject coerces an array element to an object.
func toObject(v any) (map[string]any, error) {
	return cast.ToStringMapE(v)
}

// toSlice coerces a nested value to a list.
func toSlice(v any) ([]any, error) {
	return cast.ToSliceE(v)
}

// toInt coerces a JSON number to an int.
func toInt(v any) (int, error) {
	return cast.ToIntE(v)
}

// floatField reads a numeric field from a nested object. Zero is a value,
// not an absence.
func floatField(obj map[string]any, key string) (float64, bool) {
	v, ok := obj[key]
	if !ok {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// intField reads an integer field from a nested object.
func intField(obj map[string]any, key string) (int, bool) {
	v, ok := obj[key]
	if !ok {
		return 0, false
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// stringField reads a string field from a nested object.
func stringField(obj map[string]any, key string) (string, bool) {
	v, ok := obj[key]
	if !ok {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// boolField reads a boolean field from a nested object.
func boolField(obj map[string]any, key string) (bool, bool) {
	v, ok := obj[key]
	if !ok {
		return false, false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, false
	}
	return b, true
}
