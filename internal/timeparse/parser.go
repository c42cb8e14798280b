package timeparse

import (
	"log/slog"
	"strings"
	"time"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/logging"
)

// Source identifies which step of the resolution chain produced a result.
type Source string

const (
	// SourceNow means no input was supplied and the current instant was used.
	SourceNow Source = "now"
	// SourceISO means the input was strict ISO-8601.
	SourceISO Source = "iso_8601"
	// SourceRelative means the input was a relative keyword.
	SourceRelative Source = "relative"
	// SourceLayout means the input matched an entry of the fixed format table.
	SourceLayout Source = "layout"
	// SourceTimeOfDay means the input was a bare clock time combined with
	// today's date in the target zone.
	SourceTimeOfDay Source = "time_of_day"
	// SourceFallback means no interpretation succeeded and the parser
	// degraded to the current instant.
	SourceFallback Source = "fallback"
)

// Result is a parsed timestamp plus the provenance of its interpretation.
type Result struct {
	Timestamp clock.Timestamp
	Source    Source
	// Layout is the Go layout that matched, for SourceLayout and
	// SourceTimeOfDay results.
	Layout string
}

// Degraded reports whether the parser fell back to "now" because the input
// matched no known interpretation.
func (r Result) Degraded() bool {
	return r.Source == SourceFallback
}

// layoutEntry is one row of the fixed format table. Entries with hasOffset
// set are parsed without forcing the target zone; the offset embedded in the
// string is authoritative.
type layoutEntry struct {
	layout    string
	hasOffset bool
}

// The table order is load-bearing: the first structurally valid match wins.
// The canonical space-separated form leads because it is the toolkit's own
// round-trip output format and the most common upstream input. US-style
// month-first slash dates precede day-first ones, so ambiguous slash dates
// resolve month-first.
var layoutTable = []layoutEntry{
	{layout: "2006-01-02 15:04:05Z07:00", hasOffset: true},
	{layout: clock.DriveLayout},
	{layout: "2006-01-02 15:04"},
	{layout: "2006-01-02"},
	{layout: "01/02/2006 15:04:05"},
	{layout: "01/02/2006 15:04"},
	{layout: "01/02/2006"},
	{layout: "02/01/2006 15:04:05"},
	{layout: "02/01/2006 15:04"},
	{layout: "02/01/2006"},
	{layout: "2006/01/02"},
	{layout: "January 2, 2006"},
	{layout: "2 January 2006"},
}

// timeOfDayLayouts are bare clock times combined with today's date in the
// target zone.
var timeOfDayLayouts = []string{
	"15:04",
	"3:04 PM",
	"3:04 pm",
	"3:04PM",
	"3:04pm",
	"3 PM",
	"3 pm",
	"3PM",
	"3pm",
}

// isoLayouts are strict ISO-8601 forms. Offset-bearing layouts come first so
// an embedded offset is honored before zone-local interpretation is tried.
var isoLayouts = []layoutEntry{
	{layout: time.RFC3339Nano, hasOffset: true},
	{layout: time.RFC3339, hasOffset: true},
	{layout: "2006-01-02T15:04:05"},
	{layout: "2006-01-02T15:04"},
}

// Parser resolves free-form time input into zone-aware timestamps.
type Parser struct {
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Parser. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger, now: time.Now}
}

// NewWithClock creates a Parser with an injected clock, for tests.
func NewWithClock(logger *slog.Logger, now func() time.Time) *Parser {
	p := New(logger)
	p.now = now
	return p
}

// Parse resolves input against the target zone. The zone must be a valid
// IANA identifier; that is the only hard failure. Everything else degrades
// per the resolution chain.
func (p *Parser) Parse(input, zone string) (Result, error) {
	loc, err := clock.LoadZone(zone)
	if err != nil {
		return Result{}, err
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return Result{
			Timestamp: clock.Timestamp{Time: p.now().In(loc), Zone: zone},
			Source:    SourceNow,
		}, nil
	}

	if res, ok := p.parseISO(input, zone, loc); ok {
		return res, nil
	}
	if res, ok := p.parseRelative(input, zone, loc); ok {
		return res, nil
	}
	if res, ok := p.parseLayoutTable(input, zone, loc); ok {
		return res, nil
	}
	if res, ok := p.parseTimeOfDay(input, zone, loc); ok {
		return res, nil
	}

	p.logger.Warn("unparseable time input, degrading to current instant",
		slog.String("input", input),
		logging.Zone(zone),
	)
	return Result{
		Timestamp: clock.Timestamp{Time: p.now().In(loc), Zone: zone},
		Source:    SourceFallback,
	}, nil
}

func (p *Parser) parseISO(input, zone string, loc *time.Location) (Result, bool) {
	for _, entry := range isoLayouts {
		t, err := parseEntry(entry, input, loc)
		if err != nil {
			continue
		}
		return Result{
			Timestamp: clock.Timestamp{Time: t.In(loc), Zone: zone},
			Source:    SourceISO,
			Layout:    entry.layout,
		}, true
	}
	return Result{}, false
}

func (p *Parser) parseRelative(input, zone string, loc *time.Location) (Result, bool) {
	var days int
	switch strings.ToLower(input) {
	case "today":
		days = 0
	case "tomorrow":
		days = 1
	case "yesterday":
		days = -1
	default:
		return Result{}, false
	}

	ts := clock.Timestamp{Time: p.now().In(loc), Zone: zone}
	return Result{
		Timestamp: ts.StartOfDay().AddDays(days),
		Source:    SourceRelative,
	}, true
}

func (p *Parser) parseLayoutTable(input, zone string, loc *time.Location) (Result, bool) {
	for _, entry := range layoutTable {
		t, err := parseEntry(entry, input, loc)
		if err != nil {
			continue
		}
		return Result{
			Timestamp: clock.Timestamp{Time: t.In(loc), Zone: zone},
			Source:    SourceLayout,
			Layout:    entry.layout,
		}, true
	}
	return Result{}, false
}

func (p *Parser) parseTimeOfDay(input, zone string, loc *time.Location) (Result, bool) {
	for _, layout := range timeOfDayLayouts {
		t, err := time.ParseInLocation(layout, input, loc)
		if err != nil {
			continue
		}
		now := p.now().In(loc)
		y, m, d := now.Date()
		combined := time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
		return Result{
			Timestamp: clock.Timestamp{Time: combined, Zone: zone},
			Source:    SourceTimeOfDay,
			Layout:    layout,
		}, true
	}
	return Result{}, false
}

// parseEntry parses one table entry. Offset-bearing layouts use time.Parse
// so the embedded offset wins; zone-naive layouts are interpreted in the
// target location.
func parseEntry(entry layoutEntry, input string, loc *time.Location) (time.Time, error) {
	if entry.hasOffset {
		return time.Parse(entry.layout, input)
	}
	return time.ParseInLocation(entry.layout, input, loc)
}
