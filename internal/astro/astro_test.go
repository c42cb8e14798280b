package astro

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
)

func TestSunriseSunsetLondonSummer(t *testing.T) {
	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	report, err := SunriseSunset(date, 51.5074, -0.1278, "Europe/London")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-21", report.Date)
	assert.Equal(t, "Europe/London", report.Zone)
	require.NotEmpty(t, report.Sunrise)
	require.NotEmpty(t, report.Sunset)
	require.NotEmpty(t, report.SolarNoon)

	sunrise, err := time.Parse(clock.AppointmentLayout, report.Sunrise)
	require.NoError(t, err)
	sunset, err := time.Parse(clock.AppointmentLayout, report.Sunset)
	require.NoError(t, err)

	// Solstice London: sun up before 06:00 BST, down after 21:00 BST,
	// sixteen-odd hours of daylight.
	assert.Less(t, sunrise.Hour(), 6)
	assert.GreaterOrEqual(t, sunset.Hour(), 21)
	assert.True(t, sunset.After(sunrise))
	assert.True(t, strings.HasPrefix(report.DayLength, "16h"), "got %q", report.DayLength)
}

func TestSunriseSunsetOrderingOfEvents(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	report, err := SunriseSunset(date, 40.7128, -74.0060, "America/New_York")
	require.NoError(t, err)

	parse := func(s string) time.Time {
		parsed, err := time.Parse(clock.AppointmentLayout, s)
		require.NoError(t, err)
		return parsed
	}

	dawn := parse(report.Dawn)
	sunrise := parse(report.Sunrise)
	noon := parse(report.SolarNoon)
	sunset := parse(report.Sunset)
	dusk := parse(report.Dusk)

	assert.True(t, dawn.Before(sunrise))
	assert.True(t, sunrise.Before(noon))
	assert.True(t, noon.Before(sunset))
	assert.True(t, sunset.Before(dusk))
}

func TestSunriseSunsetValidation(t *testing.T) {
	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		lat   float64
		lng   float64
		zone  string
		field string
	}{
		{name: "latitude too high", lat: 91, lng: 0, zone: "UTC", field: "latitude"},
		{name: "latitude too low", lat: -90.5, lng: 0, zone: "UTC", field: "latitude"},
		{name: "longitude out of range", lat: 0, lng: 181, zone: "UTC", field: "longitude"},
		{name: "bad zone", lat: 0, lng: 0, zone: "Nowhere/Here", field: "timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SunriseSunset(date, tt.lat, tt.lng, tt.zone)
			require.Error(t, err)
			verr, ok := clock.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestMoonPhaseKnownDates(t *testing.T) {
	// 2025-06-11 was a full moon; 2025-06-25 a new moon.
	full, err := MoonPhase(time.Date(2025, time.June, 11, 12, 0, 0, 0, time.UTC), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Full Moon", full.PhaseName)
	assert.Greater(t, full.Illumination, 0.97)

	newMoon, err := MoonPhase(time.Date(2025, time.June, 25, 12, 0, 0, 0, time.UTC), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "New Moon", newMoon.PhaseName)
	assert.Less(t, newMoon.Illumination, 0.03)
}

func TestMoonPhaseValidation(t *testing.T) {
	_, err := MoonPhase(time.Now(), -95, 0)
	require.Error(t, err)
	verr, ok := clock.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "latitude", verr.Field)
}

func TestPhaseNameBuckets(t *testing.T) {
	tests := []struct {
		phase float64
		want  string
	}{
		{phase: 0.0, want: "New Moon"},
		{phase: 0.99, want: "New Moon"},
		{phase: 0.12, want: "Waxing Crescent"},
		{phase: 0.25, want: "First Quarter"},
		{phase: 0.38, want: "Waxing Gibbous"},
		{phase: 0.5, want: "Full Moon"},
		{phase: 0.62, want: "Waning Gibbous"},
		{phase: 0.75, want: "Last Quarter"},
		{phase: 0.88, want: "Waning Crescent"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, phaseName(tt.phase), "phase %v", tt.phase)
	}
}
