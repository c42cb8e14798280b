// Package astro computes sun and moon ephemeris for a coordinate and date,
// delegating the underlying astronomy to the suncalc library.
package astro

import (
	"fmt"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
)

// SunReport holds the sun event times of one civil date at a coordinate,
// rendered in the requested zone. Events that do not occur (polar day or
// night) are omitted.
type SunReport struct {
	Date      string  `json:"date"`
	Zone      string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Sunrise   string  `json:"sunrise,omitempty"`
	Sunset    string  `json:"sunset,omitempty"`
	Dawn      string  `json:"dawn,omitempty"`
	Dusk      string  `json:"dusk,omitempty"`
	SolarNoon string  `json:"solarNoon,omitempty"`
	DayLength string  `json:"dayLength,omitempty"`
}

// MoonReport describes the moon on one civil date. Phase runs 0..1 from new
// moon through full (0.5) and back; Illumination is the lit fraction.
type MoonReport struct {
	Date         string  `json:"date"`
	Phase        float64 `json:"phase"`
	Illumination float64 `json:"illumination"`
	PhaseName    string  `json:"phaseName"`
}

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return clock.InvalidArgument("latitude", "latitude must be within [-90, 90], got %v", lat)
	}
	if lng < -180 || lng > 180 {
		return clock.InvalidArgument("longitude", "longitude must be within [-180, 180], got %v", lng)
	}
	return nil
}

// SunriseSunset computes the sun event times for the civil date of the given
// instant at a coordinate, expressed in zone.
func SunriseSunset(date time.Time, lat, lng float64, zone string) (*SunReport, error) {
	if err := validateCoordinates(lat, lng); err != nil {
		return nil, err
	}
	loc, err := clock.LoadZone(zone)
	if err != nil {
		return nil, err
	}

	// Anchor the query at local noon so the library resolves events for
	// the intended civil date regardless of the zone's UTC offset.
	local := date.In(loc)
	noon := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, loc)
	times := suncalc.GetTimes(noon, lat, lng)

	report := &SunReport{
		Date:      local.Format("2006-01-02"),
		Zone:      zone,
		Latitude:  lat,
		Longitude: lng,
		Sunrise:   eventTime(times, suncalc.Sunrise, loc),
		Sunset:    eventTime(times, suncalc.Sunset, loc),
		Dawn:      eventTime(times, suncalc.Dawn, loc),
		Dusk:      eventTime(times, suncalc.Dusk, loc),
		SolarNoon: eventTime(times, suncalc.SolarNoon, loc),
	}

	sunrise, sunset := times[suncalc.Sunrise].Value, times[suncalc.Sunset].Value
	if !sunrise.IsZero() && !sunset.IsZero() && sunset.After(sunrise) {
		length := sunset.Sub(sunrise)
		report.DayLength = fmt.Sprintf("%dh %02dm",
			int(length.Hours()), int(length.Minutes())%60)
	}
	return report, nil
}

func eventTime(times map[suncalc.DayTimeName]suncalc.DayTime, name suncalc.DayTimeName, loc *time.Location) string {
	t := times[name].Value
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(clock.AppointmentLayout)
}

// MoonPhase computes the moon illumination and a named phase bucket for the
// given instant.
func MoonPhase(date time.Time, lat, lng float64) (*MoonReport, error) {
	if err := validateCoordinates(lat, lng); err != nil {
		return nil, err
	}
	illum := suncalc.GetMoonIllumination(date)
	return &MoonReport{
		Date:         date.Format("2006-01-02"),
		Phase:        illum.Phase,
		Illumination: illum.Fraction,
		PhaseName:    phaseName(illum.Phase),
	}, nil
}

// phaseName buckets the continuous 0..1 phase into the eight conventional
// names, with a small tolerance around the four principal phases.
func phaseName(phase float64) string {
	switch {
	case phase < 0.03 || phase >= 0.97:
		return "New Moon"
	case phase < 0.22:
		return "Waxing Crescent"
	case phase < 0.28:
		return "First Quarter"
	case phase < 0.47:
		return "Waxing Gibbous"
	case phase < 0.53:
		return "Full Moon"
	case phase < 0.72:
		return "Waning Gibbous"
	case phase < 0.78:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}
