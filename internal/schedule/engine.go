package schedule

import (
	"log/slog"
	"math"
	"time"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
)

// scanStep is the fixed slot-scan granularity.
const scanStep = 30 * time.Minute

// Engine computes working-hours overlaps and meeting slots. It is stateless
// apart from an injectable clock, so a single Engine is safe for unbounded
// concurrent use.
type Engine struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewEngine creates an Engine. A nil logger falls back to slog.Default().
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger, now: time.Now}
}

// NewEngineWithClock creates an Engine with an injected clock, for tests.
func NewEngineWithClock(logger *slog.Logger, now func() time.Time) *Engine {
	e := NewEngine(logger)
	e.now = now
	return e
}

// WorkingHoursOverlap materializes today's working window for each
// participant in that participant's own zone, computes every pairwise
// intersection, and folds all windows into an all-way intersection.
// Overlap bounds are re-expressed in referenceZone for display; the
// absolute instants are unchanged.
//
// An empty participant list is a precondition violation, not a zero-length
// result.
func (e *Engine) WorkingHoursOverlap(participants []Participant, referenceZone string) (*OverlapReport, error) {
	if len(participants) == 0 {
		return nil, clock.InvalidArgument("participants", "at least one participant is required")
	}
	refLoc, err := clock.LoadZone(referenceZone)
	if err != nil {
		return nil, err
	}

	now := e.now()
	windows := make([]clock.Interval, len(participants))
	report := &OverlapReport{
		ReferenceZone: referenceZone,
		Windows:       make([]ParticipantWindow, 0, len(participants)),
	}

	for i, p := range participants {
		loc, err := clock.LoadZone(p.Zone)
		if err != nil {
			return nil, clock.InvalidArgument("participants",
				"participant %q: unknown IANA timezone %q", p.Name, p.Zone)
		}
		date := DateOf(now.In(loc))
		if i == 0 {
			report.Date = date.String()
		}
		w, err := p.window(date, loc)
		if err != nil {
			return nil, err
		}
		windows[i] = w
		report.Windows = append(report.Windows, ParticipantWindow{
			Name:   p.Name,
			Zone:   p.Zone,
			Window: w.In(loc),
		})
	}

	for i := 0; i < len(participants); i++ {
		for j := i + 1; j < len(participants); j++ {
			inter, ok := windows[i].Intersect(windows[j])
			if !ok || inter.IsEmpty() {
				continue
			}
			report.Pairwise = append(report.Pairwise, PairOverlap{
				Participants: [2]string{participants[i].Name, participants[j].Name},
				Window:       inter.In(refLoc),
				Minutes:      int(inter.Duration() / time.Minute),
			})
		}
	}

	if len(participants) > 2 {
		all := windows[0]
		ok := true
		for _, w := range windows[1:] {
			all, ok = all.Intersect(w)
			if !ok || all.IsEmpty() {
				ok = false
				break
			}
		}
		// A partial pairwise overlap is not an error; the all-way record
		// is simply omitted.
		if ok {
			names := make([]string, len(participants))
			for i, p := range participants {
				names[i] = p.Name
			}
			report.AllWay = &AllWayOverlap{
				Participants: names,
				Window:       all.In(refLoc),
				Minutes:      int(all.Duration() / time.Minute),
			}
		}
	}

	return report, nil
}

// FindMeetingSlots scans the reference participant's working window on the
// given date in fixed 30-minute steps, accepting every candidate of the
// requested duration that overlaps each participant's local working window.
// Overlap, not containment: a candidate longer than a participant's window
// is still accepted as long as it intersects it. Candidates are anchored to
// the first participant's zone; each accepted slot carries every
// participant's local view.
//
// Each slot is scored by summing, per participant, the absolute hour
// distance between the slot's local start and the midpoint of that
// participant's window; the lowest total wins, earliest first on ties.
// Zero accepted slots is a valid result, not an error.
func (e *Engine) FindMeetingSlots(participants []SlotParticipant, date Date, durationMinutes, startHour, endHour int) (*SlotReport, error) {
	if len(participants) == 0 {
		return nil, clock.InvalidArgument("participants", "at least one participant is required")
	}
	if durationMinutes <= 0 {
		return nil, clock.InvalidArgument("durationMinutes", "duration must be positive, got %d", durationMinutes)
	}
	if startHour < 0 || endHour > 23 || startHour >= endHour {
		return nil, clock.InvalidArgument("hours",
			"hour range must satisfy 0 <= start < end <= 23, got %d..%d", startHour, endHour)
	}

	locs := make([]*time.Location, len(participants))
	for i, p := range participants {
		loc, err := clock.LoadZone(p.Zone)
		if err != nil {
			return nil, clock.InvalidArgument("participants",
				"participant %q: unknown IANA timezone %q", p.Name, p.Zone)
		}
		locs[i] = loc
	}

	refLoc := locs[0]
	duration := time.Duration(durationMinutes) * time.Minute
	dayStart := DayTime{Hour: startHour}
	dayEnd := DayTime{Hour: endHour}

	// Each participant works [startHour, endHour) on the scan date in
	// their own zone.
	windows := make([]clock.Interval, len(participants))
	for i := range participants {
		windows[i] = clock.Interval{
			Start: date.At(dayStart, locs[i]),
			End:   date.At(dayEnd, locs[i]),
		}
	}
	midpoint := (dayStart.Hours() + dayEnd.Hours()) / 2

	report := &SlotReport{
		Date:            date.String(),
		DurationMinutes: durationMinutes,
		ReferenceZone:   participants[0].Zone,
	}

	scanEnd := windows[0].End
	for t := windows[0].Start; !t.Add(duration).After(scanEnd); t = t.Add(scanStep) {
		candidate := clock.Interval{Start: t, End: t.Add(duration)}

		accepted := true
		for _, w := range windows {
			if !candidate.Overlaps(w) {
				accepted = false
				break
			}
		}
		if !accepted {
			continue
		}

		slot := Slot{
			Window: candidate.In(refLoc),
			Views:  make([]SlotView, len(participants)),
		}
		for i, p := range participants {
			localStart := candidate.Start.In(locs[i])
			slot.Views[i] = SlotView{
				Name:  p.Name,
				Zone:  p.Zone,
				Start: localStart,
				End:   candidate.End.In(locs[i]),
			}
			localHours := float64(localStart.Hour()) + float64(localStart.Minute())/60
			slot.Score += math.Abs(localHours - midpoint)
		}
		report.Slots = append(report.Slots, slot)
	}

	for i := range report.Slots {
		// Strict less-than keeps the earliest slot on ties.
		if report.Optimal == nil || report.Slots[i].Score < report.Optimal.Score {
			report.Optimal = &report.Slots[i]
		}
	}

	return report, nil
}
