package common

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
)

// GetZoneFromArgs extracts the timezone from request arguments.
// Defaults to "UTC" when the argument is absent or empty.
func GetZoneFromArgs(args map[string]interface{}) string {
	if zone, ok := args["timezone"].(string); ok && zone != "" {
		return zone
	}
	return "UTC"
}

// RequiredStringArg extracts a required string argument. The second
// return value is false when the argument is missing or empty.
func RequiredStringArg(args map[string]interface{}, name string) (string, bool) {
	val, ok := args[name].(string)
	if !ok || val == "" {
		return "", false
	}
	return val, true
}

// OptionalStringArg extracts an optional string argument, returning
// the fallback when absent or empty.
func OptionalStringArg(args map[string]interface{}, name, fallback string) string {
	if val, ok := args[name].(string); ok && val != "" {
		return val
	}
	return fallback
}

// OptionalNumberArg extracts an optional numeric argument, returning
// the fallback when absent. JSON numbers arrive as float64.
func OptionalNumberArg(args map[string]interface{}, name string, fallback float64) float64 {
	if val, ok := args[name].(float64); ok {
		return val
	}
	return fallback
}

// OptionalBoolArg extracts an optional boolean argument, returning the
// fallback when absent.
func OptionalBoolArg(args map[string]interface{}, name string, fallback bool) bool {
	if val, ok := args[name].(bool); ok {
		return val
	}
	return fallback
}

// JSONResult marshals v as indented JSON and wraps it in a text tool
// result.
func JSONResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ErrorResult converts an error into a tool error result. Validation
// errors keep their field prefix so clients can tell which argument
// was rejected.
func ErrorResult(err error) *mcp.CallToolResult {
	if verr, ok := clock.AsValidation(err); ok {
		return mcp.NewToolResultError(verr.Error())
	}
	return mcp.NewToolResultError(err.Error())
}
