package clock

// OutputFormat selects how a Timestamp is rendered for display.
type OutputFormat string

const (
	// FormatShort is a compact locale-style rendering.
	FormatShort OutputFormat = "short"
	// FormatMedium is the default human-readable rendering.
	FormatMedium OutputFormat = "medium"
	// FormatFull spells out the weekday, date, time, and zone abbreviation.
	FormatFull OutputFormat = "full"
	// FormatDrive is the canonical zone-naive round-trip format
	// (YYYY-MM-DD HH:MM:SS). It carries no offset, so the parser interprets
	// it in whatever zone the caller supplies.
	FormatDrive OutputFormat = "drive"
	// FormatAppointment is strict ISO-8601 with the numeric offset.
	FormatAppointment OutputFormat = "appointment"
)

// DriveLayout is the Go layout for FormatDrive. The flexible parser tries
// this layout first among the structured formats so drive output round-trips
// losslessly.
const DriveLayout = "2006-01-02 15:04:05"

// AppointmentLayout is the Go layout for FormatAppointment.
const AppointmentLayout = "2006-01-02T15:04:05-07:00"

var formatLayouts = map[OutputFormat]string{
	FormatShort:       "1/2/06, 3:04 PM",
	FormatMedium:      "Jan 2, 2006, 3:04:05 PM",
	FormatFull:        "Monday, January 2, 2006 at 3:04:05 PM MST",
	FormatDrive:       DriveLayout,
	FormatAppointment: AppointmentLayout,
}

// ParseOutputFormat validates a format name. An empty string selects
// FormatMedium.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if s == "" {
		return FormatMedium, nil
	}
	f := OutputFormat(s)
	if _, ok := formatLayouts[f]; !ok {
		return "", InvalidArgument("format", "unknown output format %q (expected short, medium, full, drive, or appointment)", s)
	}
	return f, nil
}

// Format renders the timestamp in the given output format.
func (ts Timestamp) Format(f OutputFormat) string {
	layout, ok := formatLayouts[f]
	if !ok {
		layout = formatLayouts[FormatMedium]
	}
	return ts.Time.Format(layout)
}
