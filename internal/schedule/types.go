package schedule

import (
	"fmt"
	"time"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
)

// DayTime is a local wall-clock time of day.
type DayTime struct {
	Hour   int
	Minute int
}

// ParseDayTime parses a local time of day in HH:MM form. The whole
// input must be a valid wall-clock time; trailing text, signs and
// out-of-range components are rejected.
func ParseDayTime(s string) (DayTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return DayTime{}, clock.InvalidArgument("time", "expected HH:MM, got %q", s)
	}
	return DayTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (dt DayTime) String() string {
	return fmt.Sprintf("%02d:%02d", dt.Hour, dt.Minute)
}

// Hours returns the time of day as fractional hours since midnight.
func (dt DayTime) Hours() float64 {
	return float64(dt.Hour) + float64(dt.Minute)/60
}

// Date is a civil calendar date, independent of any timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a civil date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, clock.InvalidArgument("date", "expected YYYY-MM-DD, got %q", s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf extracts the civil date of t in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// At anchors a wall-clock time on this date in the given location.
func (d Date) At(dt DayTime, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, dt.Hour, dt.Minute, 0, 0, loc)
}

// Participant is one attendee of a working-hours overlap computation:
// a name, a home timezone, and a local daily working window.
type Participant struct {
	Name  string
	Zone  string
	Start DayTime
	End   DayTime
}

// window materializes the participant's working window on the given civil
// date as an absolute interval.
func (p Participant) window(date Date, loc *time.Location) (clock.Interval, error) {
	iv, err := clock.NewInterval(date.At(p.Start, loc), date.At(p.End, loc))
	if err != nil {
		return clock.Interval{}, clock.InvalidArgument("participants",
			"participant %q: working window end %s precedes start %s", p.Name, p.End, p.Start)
	}
	return iv, nil
}

// ParticipantWindow is a participant's materialized working window, with
// bounds in the participant's own zone.
type ParticipantWindow struct {
	Name   string         `json:"name"`
	Zone   string         `json:"timezone"`
	Window clock.Interval `json:"window"`
}

// PairOverlap records the intersection of two participants' windows.
// Bounds are re-expressed in the caller's reference zone; Minutes is the
// overlap duration. Records are order-independent: the pair is stored in
// input order but the interval and duration are identical either way.
type PairOverlap struct {
	Participants [2]string      `json:"participants"`
	Window       clock.Interval `json:"window"`
	Minutes      int            `json:"minutes"`
}

// AllWayOverlap records the simultaneous intersection of every participant's
// window. Emitted only when non-empty.
type AllWayOverlap struct {
	Participants []string       `json:"participants"`
	Window       clock.Interval `json:"window"`
	Minutes      int            `json:"minutes"`
}

// OverlapReport is the result of a working-hours overlap computation.
type OverlapReport struct {
	ReferenceZone string              `json:"referenceTimezone"`
	Date          string              `json:"date"`
	Windows       []ParticipantWindow `json:"windows"`
	Pairwise      []PairOverlap       `json:"pairwiseOverlaps"`
	// AllWay is nil when any fold step was empty or there are fewer than
	// three participants.
	AllWay *AllWayOverlap `json:"allWayOverlap,omitempty"`
}

// SlotParticipant is one attendee of a meeting slot scan.
type SlotParticipant struct {
	Name string
	Zone string
}

// SlotView is one participant's local rendering of a candidate slot.
type SlotView struct {
	Name  string    `json:"name"`
	Zone  string    `json:"timezone"`
	Start time.Time `json:"localStart"`
	End   time.Time `json:"localEnd"`
}

// Slot is an accepted meeting candidate, with bounds in the reference
// participant's zone and every participant's local view.
type Slot struct {
	Window clock.Interval `json:"window"`
	Views  []SlotView     `json:"views"`
	Score  float64        `json:"score"`
}

// SlotReport is the result of a meeting slot scan. Optimal is the
// lowest-scoring slot, nil when no candidate was accepted.
type SlotReport struct {
	Date            string `json:"date"`
	DurationMinutes int    `json:"durationMinutes"`
	ReferenceZone   string `json:"referenceTimezone"`
	Slots           []Slot `json:"slots"`
	Optimal         *Slot  `json:"optimal,omitempty"`
}
