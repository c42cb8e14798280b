package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/astro"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/schedule"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/server"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/timeparse"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/workdays"
)

// handlers holds the shared collaborators of the REST endpoints.
type handlers struct {
	sc     *server.ServerContext
	parser *timeparse.Parser
	engine *schedule.Engine
	logger *slog.Logger
}

// errorPayload is the JSON error body. Field names the rejected
// argument for validation failures.
type errorPayload struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if verr, ok := clock.AsValidation(err); ok {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: verr.Message, Field: verr.Field})
		return
	}
	writeJSON(w, http.StatusBadRequest, errorPayload{Error: err.Error()})
}

func writeFieldError(w http.ResponseWriter, field, message string) {
	writeJSON(w, http.StatusBadRequest, errorPayload{Error: message, Field: field})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: fmt.Sprintf("invalid request body: %v", err)})
		return false
	}
	return true
}

func (h *handlers) recordParse(r *http.Request, res timeparse.Result) {
	if m := h.sc.Metrics(); m != nil {
		m.RecordParseResult(r.Context(), string(res.Source))
	}
}

func zoneOrUTC(zone string) string {
	if zone == "" {
		return "UTC"
	}
	return zone
}

type currentTimeRequest struct {
	Timezone string `json:"timezone"`
	Format   string `json:"format"`
}

func (h *handlers) currentTime(w http.ResponseWriter, r *http.Request) {
	var req currentTimeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	zone := zoneOrUTC(req.Timezone)

	format, err := clock.ParseOutputFormat(req.Format)
	if err != nil {
		writeError(w, err)
		return
	}
	ts, err := clock.Now(zone)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"timezone":  zone,
		"time":      ts.Format(format),
		"iso":       ts.Format(clock.FormatAppointment),
		"unix":      ts.Time.Unix(),
		"dayOfWeek": ts.Time.Weekday().String(),
	})
}

type convertTimeRequest struct {
	Time         string `json:"time"`
	FromTimezone string `json:"fromTimezone"`
	ToTimezone   string `json:"toTimezone"`
	Format       string `json:"format"`
}

func (h *handlers) convertTime(w http.ResponseWriter, r *http.Request) {
	var req convertTimeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ToTimezone == "" {
		writeFieldError(w, "toTimezone", "toTimezone is required")
		return
	}
	fromZone := zoneOrUTC(req.FromTimezone)

	format, err := clock.ParseOutputFormat(req.Format)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := h.parser.Parse(req.Time, fromZone)
	if err != nil {
		writeError(w, err)
		return
	}
	h.recordParse(r, res)

	converted, err := res.Timestamp.In(req.ToTimezone)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"fromTimezone": fromZone,
		"toTimezone":   req.ToTimezone,
		"sourceTime":   res.Timestamp.Format(format),
		"targetTime":   converted.Format(format),
		"iso":          converted.Format(clock.FormatAppointment),
		"parseSource":  string(res.Source),
	})
}

type parseRequest struct {
	Input    string `json:"input"`
	Timezone string `json:"timezone"`
}

func (h *handlers) parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	zone := zoneOrUTC(req.Timezone)

	res, err := h.parser.Parse(req.Input, zone)
	if err != nil {
		writeError(w, err)
		return
	}
	h.recordParse(r, res)

	payload := map[string]interface{}{
		"input":    req.Input,
		"timezone": zone,
		"parsed":   res.Timestamp.Format(clock.FormatAppointment),
		"source":   string(res.Source),
		"degraded": res.Degraded(),
	}
	if res.Layout != "" {
		payload["layout"] = res.Layout
	}
	writeJSON(w, http.StatusOK, payload)
}

type formatRequest struct {
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
	Format   string `json:"format"`
}

func (h *handlers) format(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	zone := zoneOrUTC(req.Timezone)

	format, err := clock.ParseOutputFormat(req.Format)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := h.parser.Parse(req.Time, zone)
	if err != nil {
		writeError(w, err)
		return
	}
	h.recordParse(r, res)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"timezone":  zone,
		"format":    string(format),
		"formatted": res.Timestamp.Format(format),
	})
}

type differenceRequest struct {
	FirstTime  string `json:"firstTime"`
	SecondTime string `json:"secondTime"`
	Timezone   string `json:"timezone"`
}

func (h *handlers) timeDifference(w http.ResponseWriter, r *http.Request) {
	var req differenceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.FirstTime == "" {
		writeFieldError(w, "firstTime", "firstTime is required")
		return
	}
	if req.SecondTime == "" {
		writeFieldError(w, "secondTime", "secondTime is required")
		return
	}
	zone := zoneOrUTC(req.Timezone)

	first, err := h.parser.Parse(req.FirstTime, zone)
	if err != nil {
		writeError(w, err)
		return
	}
	h.recordParse(r, first)

	second, err := h.parser.Parse(req.SecondTime, zone)
	if err != nil {
		writeError(w, err)
		return
	}
	h.recordParse(r, second)

	diff := second.Timestamp.Time.Sub(first.Timestamp.Time)
	sign := ""
	if diff < 0 {
		sign = "-"
	}
	abs := diff
	if abs < 0 {
		abs = -abs
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"firstTime":  first.Timestamp.Format(clock.FormatAppointment),
		"secondTime": second.Timestamp.Format(clock.FormatAppointment),
		"timezone":   zone,
		"difference": fmt.Sprintf("%s%dh %02dm", sign, int(abs.Hours()), int(abs.Minutes())%60),
		"seconds":    int64(diff.Seconds()),
	})
}

type overlapParticipant struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

type overlapRequest struct {
	Participants      []overlapParticipant `json:"participants"`
	ReferenceTimezone string               `json:"referenceTimezone"`
}

func (h *handlers) workingHoursOverlap(w http.ResponseWriter, r *http.Request) {
	var req overlapRequest
	if !decodeBody(w, r, &req) {
		return
	}

	participants := make([]schedule.Participant, 0, len(req.Participants))
	for _, p := range req.Participants {
		start, err := schedule.ParseDayTime(defaultString(p.Start, "09:00"))
		if err != nil {
			writeError(w, err)
			return
		}
		end, err := schedule.ParseDayTime(defaultString(p.End, "17:00"))
		if err != nil {
			writeError(w, err)
			return
		}
		participants = append(participants, schedule.Participant{
			Name:  p.Name,
			Zone:  p.Timezone,
			Start: start,
			End:   end,
		})
	}

	report, err := h.engine.WorkingHoursOverlap(participants, zoneOrUTC(req.ReferenceTimezone))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type slotParticipant struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

type slotsRequest struct {
	Participants    []slotParticipant `json:"participants"`
	Date            string            `json:"date"`
	DurationMinutes int               `json:"durationMinutes"`
	StartHour       *int              `json:"startHour"`
	EndHour         *int              `json:"endHour"`
}

func (h *handlers) meetingSlots(w http.ResponseWriter, r *http.Request) {
	var req slotsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Date == "" {
		writeFieldError(w, "date", "date is required")
		return
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	participants := make([]schedule.SlotParticipant, 0, len(req.Participants))
	for _, p := range req.Participants {
		participants = append(participants, schedule.SlotParticipant{Name: p.Name, Zone: p.Timezone})
	}

	durationMinutes := req.DurationMinutes
	if durationMinutes == 0 {
		durationMinutes = 60
	}
	startHour, endHour := 9, 17
	if req.StartHour != nil {
		startHour = *req.StartHour
	}
	if req.EndHour != nil {
		endHour = *req.EndHour
	}

	report, err := h.engine.FindMeetingSlots(participants, date, durationMinutes, startHour, endHour)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type businessDaysRequest struct {
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Timezone        string `json:"timezone"`
	ExcludeHolidays bool   `json:"excludeHolidays"`
}

func (h *handlers) businessDays(w http.ResponseWriter, r *http.Request) {
	var req businessDaysRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StartDate == "" {
		writeFieldError(w, "startDate", "startDate is required")
		return
	}
	if req.EndDate == "" {
		writeFieldError(w, "endDate", "endDate is required")
		return
	}
	zone := zoneOrUTC(req.Timezone)

	start, err := h.parser.Parse(req.StartDate, zone)
	if err != nil {
		writeError(w, err)
		return
	}
	h.recordParse(r, start)

	end, err := h.parser.Parse(req.EndDate, zone)
	if err != nil {
		writeError(w, err)
		return
	}
	h.recordParse(r, end)

	report, err := workdays.CountBusinessDays(start.Timestamp.Time, end.Timestamp.Time, zone, req.ExcludeHolidays)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type holidayCheckRequest struct {
	Date    string `json:"date"`
	Country string `json:"country"`
}

func (h *handlers) holidayCheck(w http.ResponseWriter, r *http.Request) {
	var req holidayCheckRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Date == "" {
		writeFieldError(w, "date", "date is required")
		return
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}
	country, err := workdays.ParseCountry(req.Country)
	if err != nil {
		writeError(w, err)
		return
	}

	calendar := workdays.NewCalendar(country, h.sc.HolidayStore())
	writeJSON(w, http.StatusOK, calendar.Check(date.At(schedule.DayTime{}, time.UTC)))
}

type customHolidayRequest struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	Recurring bool   `json:"recurring"`
}

func (h *handlers) addCustomHoliday(w http.ResponseWriter, r *http.Request) {
	var req customHolidayRequest
	if !decodeBody(w, r, &req) {
		return
	}

	holiday, err := h.sc.HolidayStore().Add(req.Name, req.Date, req.Recurring)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, holiday)
}

func (h *handlers) listCustomHolidays(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"holidays": h.sc.HolidayStore().List(),
	})
}

type sunriseSunsetRequest struct {
	Date      string   `json:"date"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Timezone  string   `json:"timezone"`
}

func (h *handlers) sunriseSunset(w http.ResponseWriter, r *http.Request) {
	var req sunriseSunsetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Latitude == nil {
		writeFieldError(w, "latitude", "latitude is required")
		return
	}
	if req.Longitude == nil {
		writeFieldError(w, "longitude", "longitude is required")
		return
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	report, err := astro.SunriseSunset(date, *req.Latitude, *req.Longitude, zoneOrUTC(req.Timezone))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type moonPhaseRequest struct {
	Date      string  `json:"date"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *handlers) moonPhase(w http.ResponseWriter, r *http.Request) {
	var req moonPhaseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	report, err := astro.MoonPhase(date, req.Latitude, req.Longitude)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func resolveDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, clock.InvalidArgument("date", "expected YYYY-MM-DD, got %q", s)
	}
	return t, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
