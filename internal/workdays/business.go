package workdays

import (
	"time"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
)

// BusinessDayReport is the result of a business-day count. CalendarDays is
// inclusive of both bounds, matching the day-by-day iteration.
type BusinessDayReport struct {
	Start            string    `json:"startDate"`
	End              string    `json:"endDate"`
	Zone             string    `json:"timezone"`
	BusinessDays     int       `json:"businessDays"`
	CalendarDays     int       `json:"calendarDays"`
	IncludedDates    []string  `json:"includedDates"`
	ExcludedHolidays []Holiday `json:"excludedHolidays,omitempty"`
}

// CountBusinessDays counts Monday-to-Friday days between two instants,
// inclusive of both ends. Bounds are normalized to start-of-day in zone;
// inverted bounds are swapped silently. When excludeHolidays is set, days
// in the computed US federal observance set for their year do not count and
// are reported in ExcludedHolidays.
func CountBusinessDays(start, end time.Time, zone string, excludeHolidays bool) (*BusinessDayReport, error) {
	loc, err := clock.LoadZone(zone)
	if err != nil {
		return nil, err
	}

	from := startOfDay(start.In(loc))
	to := startOfDay(end.In(loc))
	if from.After(to) {
		from, to = to, from
	}

	report := &BusinessDayReport{
		Start: from.Format("2006-01-02"),
		End:   to.Format("2006-01-02"),
		Zone:  zone,
	}

	holidays := map[string]Holiday{}
	if excludeHolidays {
		for year := from.Year(); year <= to.Year(); year++ {
			for _, h := range usFederalHolidays(year) {
				holidays[h.Date] = h
			}
		}
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		report.CalendarDays++
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		key := day.Format("2006-01-02")
		if h, ok := holidays[key]; ok {
			report.ExcludedHolidays = append(report.ExcludedHolidays, h)
			continue
		}
		report.BusinessDays++
		report.IncludedDates = append(report.IncludedDates, key)
	}

	return report, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
