package astro_tools

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func request(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func decodeResult(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	if result == nil {
		t.Fatal("nil result")
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %+v", result.Content)
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("failed to decode result JSON: %v", err)
	}
	return payload
}

func TestHandleSunriseSunset(t *testing.T) {
	// London on the June solstice
	result, err := handleSunriseSunset(request(map[string]interface{}{
		"date":      "2025-06-21",
		"latitude":  51.5074,
		"longitude": -0.1278,
		"timezone":  "Europe/London",
	}))
	if err != nil {
		t.Fatalf("handleSunriseSunset() error = %v", err)
	}

	payload := decodeResult(t, result)
	if payload["sunrise"] == nil || payload["sunset"] == nil {
		t.Fatalf("missing sun events: %v", payload)
	}
	if payload["date"] != "2025-06-21" {
		t.Errorf("date = %v, want 2025-06-21", payload["date"])
	}
	if payload["dayLength"] == nil {
		t.Error("missing dayLength")
	}
}

func TestHandleSunriseSunset_Validation(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{name: "missing latitude", args: map[string]interface{}{"longitude": 0.0}},
		{name: "missing longitude", args: map[string]interface{}{"latitude": 0.0}},
		{name: "latitude out of range", args: map[string]interface{}{"latitude": 95.0, "longitude": 0.0}},
		{name: "longitude out of range", args: map[string]interface{}{"latitude": 0.0, "longitude": 181.0}},
		{name: "bad date", args: map[string]interface{}{"latitude": 0.0, "longitude": 0.0, "date": "solstice"}},
		{name: "bad zone", args: map[string]interface{}{"latitude": 0.0, "longitude": 0.0, "timezone": "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleSunriseSunset(request(tt.args))
			if err != nil {
				t.Fatalf("handleSunriseSunset() error = %v", err)
			}
			if !result.IsError {
				t.Error("expected error result")
			}
		})
	}
}

func TestHandleMoonPhase(t *testing.T) {
	// 2025-06-11 was a full moon
	result, err := handleMoonPhase(request(map[string]interface{}{
		"date": "2025-06-11",
	}))
	if err != nil {
		t.Fatalf("handleMoonPhase() error = %v", err)
	}

	payload := decodeResult(t, result)
	if payload["phaseName"] != "Full Moon" {
		t.Errorf("phaseName = %v, want Full Moon", payload["phaseName"])
	}
	illum, ok := payload["illumination"].(float64)
	if !ok || illum < 0.95 {
		t.Errorf("illumination = %v, want near 1", payload["illumination"])
	}
}

func TestHandleMoonPhase_Validation(t *testing.T) {
	result, err := handleMoonPhase(request(map[string]interface{}{
		"latitude": 120.0,
	}))
	if err != nil {
		t.Fatalf("handleMoonPhase() error = %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for out-of-range latitude")
	}
}
