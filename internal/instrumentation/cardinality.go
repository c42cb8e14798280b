package instrumentation

import "strings"

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// The tz database holds several hundred identifiers; use ZoneArea when a
// per-zone label would be too fine-grained.

// ZoneArea extracts the area part of an IANA timezone identifier.
// This reduces cardinality from hundreds of zones to roughly a dozen areas.
//
// Example:
//
//	ZoneArea("America/New_York")  // "America"
//	ZoneArea("Europe/Paris")      // "Europe"
//	ZoneArea("UTC")               // "UTC"
//	ZoneArea("")                  // "unknown"
func ZoneArea(zone string) string {
	if zone == "" {
		return "unknown"
	}
	if i := strings.IndexByte(zone, '/'); i > 0 {
		return zone[:i]
	}
	return zone
}

// Core operation names used as metric and span labels.
// Status and Exporter constants are defined in config.go.
const (
	OperationParse        = "parse"
	OperationConvert      = "convert"
	OperationFormat       = "format"
	OperationDifference   = "difference"
	OperationOverlap      = "working_hours_overlap"
	OperationSlots        = "find_meeting_slots"
	OperationBusinessDays = "business_days"
	OperationHolidayCheck = "holiday_check"
	OperationSunTimes     = "sunrise_sunset"
	OperationMoonPhase    = "moon_phase"
)
