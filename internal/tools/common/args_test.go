package common

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
)

func TestGetZoneFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{name: "explicit zone", args: map[string]interface{}{"timezone": "Asia/Tokyo"}, want: "Asia/Tokyo"},
		{name: "empty zone", args: map[string]interface{}{"timezone": ""}, want: "UTC"},
		{name: "missing", args: map[string]interface{}{}, want: "UTC"},
		{name: "wrong type", args: map[string]interface{}{"timezone": 42}, want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetZoneFromArgs(tt.args); got != tt.want {
				t.Errorf("GetZoneFromArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequiredStringArg(t *testing.T) {
	args := map[string]interface{}{"date": "2025-06-18", "count": 3.0, "empty": ""}

	if val, ok := RequiredStringArg(args, "date"); !ok || val != "2025-06-18" {
		t.Errorf("RequiredStringArg(date) = %q, %v", val, ok)
	}
	if _, ok := RequiredStringArg(args, "empty"); ok {
		t.Error("RequiredStringArg(empty) should fail")
	}
	if _, ok := RequiredStringArg(args, "count"); ok {
		t.Error("RequiredStringArg(count) should fail for non-string")
	}
	if _, ok := RequiredStringArg(args, "missing"); ok {
		t.Error("RequiredStringArg(missing) should fail")
	}
}

func TestOptionalArgs(t *testing.T) {
	args := map[string]interface{}{
		"format":   "iso",
		"duration": 45.0,
		"exclude":  true,
	}

	if got := OptionalStringArg(args, "format", "unix"); got != "iso" {
		t.Errorf("OptionalStringArg(format) = %q, want iso", got)
	}
	if got := OptionalStringArg(args, "missing", "unix"); got != "unix" {
		t.Errorf("OptionalStringArg(missing) = %q, want fallback", got)
	}
	if got := OptionalNumberArg(args, "duration", 30); got != 45 {
		t.Errorf("OptionalNumberArg(duration) = %v, want 45", got)
	}
	if got := OptionalNumberArg(args, "missing", 30); got != 30 {
		t.Errorf("OptionalNumberArg(missing) = %v, want fallback", got)
	}
	if got := OptionalBoolArg(args, "exclude", false); !got {
		t.Error("OptionalBoolArg(exclude) = false, want true")
	}
	if got := OptionalBoolArg(args, "missing", true); !got {
		t.Error("OptionalBoolArg(missing) should return fallback")
	}
}

func TestJSONResult(t *testing.T) {
	result, err := JSONResult(map[string]string{"timezone": "UTC"})
	if err != nil {
		t.Fatalf("JSONResult() error = %v", err)
	}
	if result.IsError {
		t.Error("JSONResult() produced an error result")
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	if !strings.Contains(text.Text, `"timezone": "UTC"`) {
		t.Errorf("JSONResult() text = %q, missing timezone field", text.Text)
	}
}

func TestErrorResult(t *testing.T) {
	verr := clock.InvalidArgument("timezone", "unknown timezone %q", "Mars/Olympus")
	result := ErrorResult(verr)
	if !result.IsError {
		t.Error("ErrorResult() should produce an error result")
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	if !strings.Contains(text.Text, "timezone") {
		t.Errorf("ErrorResult() text = %q, missing field name", text.Text)
	}
}
