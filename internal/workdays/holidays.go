package workdays

import (
	"sort"
	"strings"
	"time"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
)

// Country selects a public holiday rule table.
type Country string

const (
	CountryUS Country = "US"
	CountryGB Country = "GB"
	CountryCA Country = "CA"
)

// ParseCountry normalizes a country code. Empty input defaults to US; "UK"
// is accepted as an alias for GB.
func ParseCountry(s string) (Country, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "US", "USA":
		return CountryUS, nil
	case "GB", "UK":
		return CountryGB, nil
	case "CA":
		return CountryCA, nil
	default:
		return "", clock.InvalidArgument("country", "unsupported country %q, expected US, GB or CA", s)
	}
}

// Holiday is one computed public holiday occurrence.
type Holiday struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func civil(t time.Time) string {
	return t.Format("2006-01-02")
}

// nthWeekday returns the nth occurrence of a weekday in the given month,
// as a UTC midnight instant.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, offset+(n-1)*7)
}

// lastWeekday returns the final occurrence of a weekday in the given month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	t := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	offset := (int(t.Weekday()) - int(weekday) + 7) % 7
	return t.AddDate(0, 0, -offset)
}

// easterSunday computes Gregorian Easter via the Meeus/Jones/Butcher
// algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// usFederalHolidays is the fixed observance set consulted by the
// business-day counter.
func usFederalHolidays(year int) []Holiday {
	return []Holiday{
		{Name: "New Year's Day", Date: civil(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))},
		{Name: "Martin Luther King Jr. Day", Date: civil(nthWeekday(year, time.January, time.Monday, 3))},
		{Name: "Presidents' Day", Date: civil(nthWeekday(year, time.February, time.Monday, 3))},
		{Name: "Memorial Day", Date: civil(lastWeekday(year, time.May, time.Monday))},
		{Name: "Independence Day", Date: civil(time.Date(year, time.July, 4, 0, 0, 0, 0, time.UTC))},
		{Name: "Labor Day", Date: civil(nthWeekday(year, time.September, time.Monday, 1))},
		{Name: "Thanksgiving", Date: civil(nthWeekday(year, time.November, time.Thursday, 4))},
		{Name: "Christmas Day", Date: civil(time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC))},
	}
}

// HolidaysForYear computes the public holiday occurrences of a country for
// one calendar year, sorted by date.
func HolidaysForYear(country Country, year int) []Holiday {
	var holidays []Holiday
	switch country {
	case CountryUS:
		holidays = usFederalHolidays(year)
		holidays = append(holidays,
			Holiday{Name: "Juneteenth", Date: civil(time.Date(year, time.June, 19, 0, 0, 0, 0, time.UTC))},
			Holiday{Name: "Columbus Day", Date: civil(nthWeekday(year, time.October, time.Monday, 2))},
			Holiday{Name: "Veterans Day", Date: civil(time.Date(year, time.November, 11, 0, 0, 0, 0, time.UTC))},
		)
	case CountryGB:
		easter := easterSunday(year)
		holidays = []Holiday{
			{Name: "New Year's Day", Date: civil(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))},
			{Name: "Good Friday", Date: civil(easter.AddDate(0, 0, -2))},
			{Name: "Easter Monday", Date: civil(easter.AddDate(0, 0, 1))},
			{Name: "Early May Bank Holiday", Date: civil(nthWeekday(year, time.May, time.Monday, 1))},
			{Name: "Spring Bank Holiday", Date: civil(lastWeekday(year, time.May, time.Monday))},
			{Name: "Summer Bank Holiday", Date: civil(lastWeekday(year, time.August, time.Monday))},
			{Name: "Christmas Day", Date: civil(time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC))},
			{Name: "Boxing Day", Date: civil(time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC))},
		}
	case CountryCA:
		easter := easterSunday(year)
		// Victoria Day is the Monday on or before May 24.
		victoria := time.Date(year, time.May, 24, 0, 0, 0, 0, time.UTC)
		victoria = victoria.AddDate(0, 0, -((int(victoria.Weekday()) - int(time.Monday) + 7) % 7))
		holidays = []Holiday{
			{Name: "New Year's Day", Date: civil(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))},
			{Name: "Good Friday", Date: civil(easter.AddDate(0, 0, -2))},
			{Name: "Victoria Day", Date: civil(victoria)},
			{Name: "Canada Day", Date: civil(time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC))},
			{Name: "Labour Day", Date: civil(nthWeekday(year, time.September, time.Monday, 1))},
			{Name: "Thanksgiving", Date: civil(nthWeekday(year, time.October, time.Monday, 2))},
			{Name: "Remembrance Day", Date: civil(time.Date(year, time.November, 11, 0, 0, 0, 0, time.UTC))},
			{Name: "Christmas Day", Date: civil(time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC))},
			{Name: "Boxing Day", Date: civil(time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC))},
		}
	}
	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Date < holidays[j].Date })
	return holidays
}

// CheckResult reports whether a date is a holiday in a country, merged with
// any custom holidays matching that date.
type CheckResult struct {
	Date      string          `json:"date"`
	Country   Country         `json:"country"`
	IsHoliday bool            `json:"isHoliday"`
	Public    []Holiday       `json:"publicHolidays,omitempty"`
	Custom    []CustomHoliday `json:"customHolidays,omitempty"`
}

// Calendar answers holiday queries for one country, consulting an optional
// custom holiday store.
type Calendar struct {
	country Country
	store   Store
}

// NewCalendar creates a Calendar. A nil store means no custom holidays.
func NewCalendar(country Country, store Store) *Calendar {
	return &Calendar{country: country, store: store}
}

// Check evaluates one civil date against the country's computed rule table
// and the custom store.
func (c *Calendar) Check(date time.Time) CheckResult {
	day := civil(date)
	result := CheckResult{Date: day, Country: c.country}
	for _, h := range HolidaysForYear(c.country, date.Year()) {
		if h.Date == day {
			result.Public = append(result.Public, h)
		}
	}
	if c.store != nil {
		result.Custom = c.store.Matching(date)
	}
	result.IsHoliday = len(result.Public) > 0 || len(result.Custom) > 0
	return result
}
