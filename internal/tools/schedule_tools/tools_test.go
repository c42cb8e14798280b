package schedule_tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/schedule"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/server"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/timeparse"
)

// A Wednesday, 15:45 UTC. New York is on EDT and London on BST.
var fixedNow = time.Date(2025, time.June, 18, 15, 45, 0, 0, time.UTC)

func testEngine() *schedule.Engine {
	return schedule.NewEngineWithClock(slog.Default(), func() time.Time { return fixedNow })
}

func testParser() *timeparse.Parser {
	return timeparse.NewWithClock(nil, func() time.Time { return fixedNow })
}

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

func TestHandleWorkingHoursOverlap(t *testing.T) {
	result, err := handleWorkingHoursOverlap(request(map[string]interface{}{
		"participants": []interface{}{
			map[string]interface{}{"name": "Alice", "timezone": "America/New_York", "start": "09:00", "end": "17:00"},
			map[string]interface{}{"name": "Bob", "timezone": "Europe/London", "start": "09:00", "end": "17:00"},
		},
		"referenceTimezone": "UTC",
	}), testEngine())
	if err != nil {
		t.Fatalf("handleWorkingHoursOverlap() error = %v", err)
	}

	payload := decodeResult(t, result)
	pairwise, ok := payload["pairwiseOverlaps"].([]interface{})
	if !ok || len(pairwise) != 1 {
		t.Fatalf("pairwiseOverlaps = %v, want one record", payload["pairwiseOverlaps"])
	}
	record := pairwise[0].(map[string]interface{})
	if record["minutes"] != float64(180) {
		t.Errorf("minutes = %v, want 180", record["minutes"])
	}
}

func TestHandleWorkingHoursOverlap_Validation(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{name: "missing participants", args: map[string]interface{}{}},
		{name: "empty participants", args: map[string]interface{}{"participants": []interface{}{}}},
		{
			name: "non-object participant",
			args: map[string]interface{}{"participants": []interface{}{"Alice"}},
		},
		{
			name: "bad day time",
			args: map[string]interface{}{"participants": []interface{}{
				map[string]interface{}{"name": "Alice", "timezone": "UTC", "start": "25:99", "end": "17:00"},
			}},
		},
		{
			name: "bad zone",
			args: map[string]interface{}{"participants": []interface{}{
				map[string]interface{}{"name": "Alice", "timezone": "Mars/Olympus", "start": "09:00", "end": "17:00"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleWorkingHoursOverlap(request(tt.args), testEngine())
			if err != nil {
				t.Fatalf("handleWorkingHoursOverlap() error = %v", err)
			}
			if !result.IsError {
				t.Error("expected error result")
			}
		})
	}
}

func TestHandleFindMeetingSlots(t *testing.T) {
	result, err := handleFindMeetingSlots(request(map[string]interface{}{
		"participants": []interface{}{
			map[string]interface{}{"name": "Solo", "timezone": "UTC"},
		},
		"date":            "2025-06-18",
		"durationMinutes": 60.0,
	}), testEngine())
	if err != nil {
		t.Fatalf("handleFindMeetingSlots() error = %v", err)
	}

	payload := decodeResult(t, result)
	slots, ok := payload["slots"].([]interface{})
	if !ok || len(slots) == 0 {
		t.Fatalf("slots = %v, want non-empty", payload["slots"])
	}
	// 9-17 window with 30-minute steps: 09:00 through 16:00 inclusive
	if len(slots) != 15 {
		t.Errorf("len(slots) = %d, want 15", len(slots))
	}
	if payload["optimal"] == nil {
		t.Error("missing optimal slot")
	}
}

func TestHandleFindMeetingSlots_Validation(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{name: "missing participants", args: map[string]interface{}{"date": "2025-06-18"}},
		{
			name: "missing date",
			args: map[string]interface{}{"participants": []interface{}{
				map[string]interface{}{"name": "Solo", "timezone": "UTC"},
			}},
		},
		{
			name: "bad date",
			args: map[string]interface{}{
				"participants": []interface{}{
					map[string]interface{}{"name": "Solo", "timezone": "UTC"},
				},
				"date": "June 18th",
			},
		},
		{
			name: "inverted hours",
			args: map[string]interface{}{
				"participants": []interface{}{
					map[string]interface{}{"name": "Solo", "timezone": "UTC"},
				},
				"date":      "2025-06-18",
				"startHour": 17.0,
				"endHour":   9.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleFindMeetingSlots(request(tt.args), testEngine())
			if err != nil {
				t.Fatalf("handleFindMeetingSlots() error = %v", err)
			}
			if !result.IsError {
				t.Error("expected error result")
			}
		})
	}
}

func TestHandleBusinessDays(t *testing.T) {
	sc := server.NewServerContext(context.Background())
	defer sc.Shutdown()

	result, err := handleBusinessDays(context.Background(), request(map[string]interface{}{
		"startDate":       "2023-05-01",
		"endDate":         "2023-05-31",
		"excludeHolidays": true,
	}), sc, testParser())
	if err != nil {
		t.Fatalf("handleBusinessDays() error = %v", err)
	}

	payload := decodeResult(t, result)
	// May 2023 has 23 weekdays; Memorial Day (2023-05-29) is excluded
	if payload["businessDays"] != float64(22) {
		t.Errorf("businessDays = %v, want 22", payload["businessDays"])
	}
	if payload["calendarDays"] != float64(31) {
		t.Errorf("calendarDays = %v, want 31", payload["calendarDays"])
	}
}

func TestHandleBusinessDays_MissingArgs(t *testing.T) {
	sc := server.NewServerContext(context.Background())
	defer sc.Shutdown()

	result, err := handleBusinessDays(context.Background(), request(map[string]interface{}{
		"startDate": "2023-05-01",
	}), sc, testParser())
	if err != nil {
		t.Fatalf("handleBusinessDays() error = %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing endDate")
	}
}

func TestHandleHolidayCheck(t *testing.T) {
	sc := server.NewServerContext(context.Background())
	defer sc.Shutdown()

	result, err := handleHolidayCheck(request(map[string]interface{}{
		"date":    "2023-05-29",
		"country": "US",
	}), sc)
	if err != nil {
		t.Fatalf("handleHolidayCheck() error = %v", err)
	}

	payload := decodeResult(t, result)
	if payload["isHoliday"] != true {
		t.Errorf("isHoliday = %v, want true for Memorial Day", payload["isHoliday"])
	}
}

func TestHandleHolidayCheck_BadCountry(t *testing.T) {
	sc := server.NewServerContext(context.Background())
	defer sc.Shutdown()

	result, err := handleHolidayCheck(request(map[string]interface{}{
		"date":    "2023-05-29",
		"country": "ZZ",
	}), sc)
	if err != nil {
		t.Fatalf("handleHolidayCheck() error = %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for unknown country")
	}
}

func TestHandleCustomHolidays(t *testing.T) {
	sc := server.NewServerContext(context.Background())
	defer sc.Shutdown()

	result, err := handleAddCustomHoliday(request(map[string]interface{}{
		"name":      "Founding Day",
		"date":      "2020-03-15",
		"recurring": true,
	}), sc)
	if err != nil {
		t.Fatalf("handleAddCustomHoliday() error = %v", err)
	}
	added := decodeResult(t, result)
	if added["id"] == "" {
		t.Error("added holiday missing id")
	}

	result, err = handleListCustomHolidays(sc)
	if err != nil {
		t.Fatalf("handleListCustomHolidays() error = %v", err)
	}
	listed := decodeResult(t, result)
	holidays, ok := listed["holidays"].([]interface{})
	if !ok || len(holidays) != 1 {
		t.Fatalf("holidays = %v, want one entry", listed["holidays"])
	}

	// A recurring holiday matches the same month/day in any year
	result, err = handleHolidayCheck(request(map[string]interface{}{
		"date": "2025-03-15",
	}), sc)
	if err != nil {
		t.Fatalf("handleHolidayCheck() error = %v", err)
	}
	check := decodeResult(t, result)
	if check["isHoliday"] != true {
		t.Errorf("isHoliday = %v, want true for recurring custom holiday", check["isHoliday"])
	}
}

func TestHandleAddCustomHoliday_Validation(t *testing.T) {
	sc := server.NewServerContext(context.Background())
	defer sc.Shutdown()

	result, err := handleAddCustomHoliday(request(map[string]interface{}{
		"name": "Bad Date Day",
		"date": "15/03/2020",
	}), sc)
	if err != nil {
		t.Fatalf("handleAddCustomHoliday() error = %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for malformed date")
	}
}
