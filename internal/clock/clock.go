// Package clock provides the timezone-aware primitives shared by every
// toolkit computation: validated IANA zones, zone-anchored timestamps,
// half-open intervals, and the output format catalog.
//
// The package enforces two invariants from the toolkit's data model:
//   - every Timestamp carries an explicit, validated IANA zone; naive
//     timestamps never leave the constructors
//   - every Interval satisfies Start <= End
package clock

import (
	"time"
)

// LoadZone resolves an IANA timezone identifier (e.g. "America/New_York").
// Unknown identifiers are rejected with a structured validation error before
// any computation proceeds.
func LoadZone(zone string) (*time.Location, error) {
	if zone == "" {
		return nil, InvalidArgument("timezone", "timezone is required")
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, InvalidArgument("timezone", "unknown IANA timezone %q", zone)
	}
	return loc, nil
}

// Timestamp is an instant anchored to a specific IANA timezone. The embedded
// Time always has its Location set to the named zone.
type Timestamp struct {
	Time time.Time
	Zone string
}

// NewTimestamp anchors t to the given zone. The absolute instant is
// preserved; only the rendering zone changes.
func NewTimestamp(t time.Time, zone string) (Timestamp, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Time: t.In(loc), Zone: zone}, nil
}

// Now returns the current instant anchored to the given zone.
func Now(zone string) (Timestamp, error) {
	return NewTimestamp(time.Now(), zone)
}

// In re-expresses the timestamp in another zone without changing the
// absolute instant.
func (ts Timestamp) In(zone string) (Timestamp, error) {
	return NewTimestamp(ts.Time, zone)
}

// StartOfDay truncates the timestamp to midnight in its own zone.
func (ts Timestamp) StartOfDay() Timestamp {
	y, m, d := ts.Time.Date()
	return Timestamp{
		Time: time.Date(y, m, d, 0, 0, 0, 0, ts.Time.Location()),
		Zone: ts.Zone,
	}
}

// AddDays shifts the timestamp by whole calendar days in its own zone.
// Calendar arithmetic is used so DST transitions do not skew the local
// clock time.
func (ts Timestamp) AddDays(days int) Timestamp {
	return Timestamp{Time: ts.Time.AddDate(0, 0, days), Zone: ts.Zone}
}

// Interval is a half-open time range [Start, End). Both bounds carry the
// location they were constructed in; re-expressing them in another zone
// never changes the absolute instants.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval constructs an interval, enforcing Start <= End.
func NewInterval(start, end time.Time) (Interval, error) {
	if end.Before(start) {
		return Interval{}, InvalidArgument("interval", "interval end %s precedes start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// Duration returns the interval's length.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// IsEmpty reports whether the interval contains no instants.
func (iv Interval) IsEmpty() bool {
	return !iv.Start.Before(iv.End)
}

// Overlaps reports whether two half-open intervals share any instant.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Intersect returns the overlap of two intervals. The second return value is
// false when the intervals are disjoint.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
	if !iv.Overlaps(other) {
		return Interval{}, false
	}
	start := iv.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := iv.End
	if other.End.Before(end) {
		end = other.End
	}
	return Interval{Start: start, End: end}, true
}

// In re-expresses both bounds in the given location for display. The
// absolute instants are unchanged.
func (iv Interval) In(loc *time.Location) Interval {
	return Interval{Start: iv.Start.In(loc), End: iv.End.In(loc)}
}
