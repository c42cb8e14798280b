package schedule_tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/instrumentation"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/schedule"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/server"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/timeparse"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/tools/common"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/workdays"
)

// RegisterScheduleTools registers scheduling, business-day, and holiday
// tools with the MCP server
func RegisterScheduleTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	engine := schedule.NewEngine(slog.Default())
	parser := timeparse.New(slog.Default())

	overlapTool := mcp.NewTool("schedule_working_hours_overlap",
		mcp.WithDescription("Find overlapping working hours between participants in different timezones"),
		mcp.WithArray("participants",
			mcp.Required(),
			mcp.Description("Participants as objects with name, timezone, start ('HH:MM'), and end ('HH:MM')"),
		),
		mcp.WithString("referenceTimezone",
			mcp.Description("IANA timezone overlap bounds are expressed in (default: 'UTC')"),
		),
	)
	s.AddTool(overlapTool, common.InstrumentedToolHandlerWithOperation(
		"schedule_working_hours_overlap", instrumentation.OperationOverlap, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleWorkingHoursOverlap(request, engine)
		}))

	slotsTool := mcp.NewTool("schedule_find_meeting_slots",
		mcp.WithDescription("Find candidate meeting slots that fit every participant's working hours"),
		mcp.WithArray("participants",
			mcp.Required(),
			mcp.Description("Participants as objects with name and timezone; the first participant anchors the scan"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Calendar date to scan (YYYY-MM-DD)"),
		),
		mcp.WithNumber("durationMinutes",
			mcp.Description("Meeting duration in minutes (default: 60)"),
		),
		mcp.WithNumber("startHour",
			mcp.Description("Local working day start hour, 0-23 (default: 9)"),
		),
		mcp.WithNumber("endHour",
			mcp.Description("Local working day end hour, 0-23 (default: 17)"),
		),
	)
	s.AddTool(slotsTool, common.InstrumentedToolHandlerWithOperation(
		"schedule_find_meeting_slots", instrumentation.OperationSlots, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindMeetingSlots(request, engine)
		}))

	businessDaysTool := mcp.NewTool("schedule_business_days",
		mcp.WithDescription("Count business days between two dates, optionally excluding US federal holidays"),
		mcp.WithString("startDate",
			mcp.Required(),
			mcp.Description("Start date in any supported format"),
		),
		mcp.WithString("endDate",
			mcp.Required(),
			mcp.Description("End date in any supported format"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone the dates are interpreted in (default: 'UTC')"),
		),
		mcp.WithBoolean("excludeHolidays",
			mcp.Description("Exclude US federal holidays from the count (default: false)"),
		),
	)
	s.AddTool(businessDaysTool, common.InstrumentedToolHandlerWithOperation(
		"schedule_business_days", instrumentation.OperationBusinessDays, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleBusinessDays(ctx, request, sc, parser)
		}))

	checkTool := mcp.NewTool("holidays_check",
		mcp.WithDescription("Check whether a date is a public or custom holiday"),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date to check (YYYY-MM-DD)"),
		),
		mcp.WithString("country",
			mcp.Description("Country code: US, GB (alias UK), or CA (default: US)"),
		),
	)
	s.AddTool(checkTool, common.InstrumentedToolHandlerWithOperation(
		"holidays_check", instrumentation.OperationHolidayCheck, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleHolidayCheck(request, sc)
		}))

	addCustomTool := mcp.NewTool("holidays_add_custom",
		mcp.WithDescription("Add a custom holiday to the in-memory holiday store"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Holiday name"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Holiday date (YYYY-MM-DD)"),
		),
		mcp.WithBoolean("recurring",
			mcp.Description("Match the same month/day in every year (default: false)"),
		),
	)
	s.AddTool(addCustomTool, common.InstrumentedToolHandlerWithOperation(
		"holidays_add_custom", instrumentation.OperationHolidayCheck, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleAddCustomHoliday(request, sc)
		}))

	listCustomTool := mcp.NewTool("holidays_list_custom",
		mcp.WithDescription("List all custom holidays in the in-memory holiday store"),
	)
	s.AddTool(listCustomTool, common.InstrumentedToolHandlerWithOperation(
		"holidays_list_custom", instrumentation.OperationHolidayCheck, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListCustomHolidays(sc)
		}))

	return nil
}

// participantFields extracts one participant object from a raw argument
// element.
func participantFields(raw interface{}) (map[string]interface{}, error) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("each participant must be an object, got %T", raw)
	}
	return obj, nil
}

func handleWorkingHoursOverlap(request mcp.CallToolRequest, engine *schedule.Engine) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	rawList, ok := args["participants"].([]interface{})
	if !ok || len(rawList) == 0 {
		return mcp.NewToolResultError("participants is required and must be a non-empty array"), nil
	}

	participants := make([]schedule.Participant, 0, len(rawList))
	for _, raw := range rawList {
		obj, err := participantFields(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		name, _ := obj["name"].(string)
		zone, _ := obj["timezone"].(string)

		start, err := schedule.ParseDayTime(common.OptionalStringArg(obj, "start", "09:00"))
		if err != nil {
			return common.ErrorResult(err), nil
		}
		end, err := schedule.ParseDayTime(common.OptionalStringArg(obj, "end", "17:00"))
		if err != nil {
			return common.ErrorResult(err), nil
		}

		participants = append(participants, schedule.Participant{
			Name:  name,
			Zone:  zone,
			Start: start,
			End:   end,
		})
	}

	referenceZone := common.OptionalStringArg(args, "referenceTimezone", "UTC")

	report, err := engine.WorkingHoursOverlap(participants, referenceZone)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	return common.JSONResult(report)
}

func handleFindMeetingSlots(request mcp.CallToolRequest, engine *schedule.Engine) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	rawList, ok := args["participants"].([]interface{})
	if !ok || len(rawList) == 0 {
		return mcp.NewToolResultError("participants is required and must be a non-empty array"), nil
	}

	participants := make([]schedule.SlotParticipant, 0, len(rawList))
	for _, raw := range rawList {
		obj, err := participantFields(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name, _ := obj["name"].(string)
		zone, _ := obj["timezone"].(string)
		participants = append(participants, schedule.SlotParticipant{Name: name, Zone: zone})
	}

	dateStr, ok := common.RequiredStringArg(args, "date")
	if !ok {
		return mcp.NewToolResultError("date is required"), nil
	}
	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	durationMinutes := int(common.OptionalNumberArg(args, "durationMinutes", 60))
	startHour := int(common.OptionalNumberArg(args, "startHour", 9))
	endHour := int(common.OptionalNumberArg(args, "endHour", 17))

	report, err := engine.FindMeetingSlots(participants, date, durationMinutes, startHour, endHour)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	return common.JSONResult(report)
}

func handleBusinessDays(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, parser *timeparse.Parser) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	zone := common.GetZoneFromArgs(args)

	startStr, ok := common.RequiredStringArg(args, "startDate")
	if !ok {
		return mcp.NewToolResultError("startDate is required"), nil
	}
	endStr, ok := common.RequiredStringArg(args, "endDate")
	if !ok {
		return mcp.NewToolResultError("endDate is required"), nil
	}

	start, err := parser.Parse(startStr, zone)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	end, err := parser.Parse(endStr, zone)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	if m := sc.Metrics(); m != nil {
		m.RecordParseResult(ctx, string(start.Source))
		m.RecordParseResult(ctx, string(end.Source))
	}

	excludeHolidays := common.OptionalBoolArg(args, "excludeHolidays", false)

	report, err := workdays.CountBusinessDays(start.Timestamp.Time, end.Timestamp.Time, zone, excludeHolidays)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	return common.JSONResult(report)
}

func handleHolidayCheck(request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	dateStr, ok := common.RequiredStringArg(args, "date")
	if !ok {
		return mcp.NewToolResultError("date is required"), nil
	}
	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	country, err := workdays.ParseCountry(common.OptionalStringArg(args, "country", ""))
	if err != nil {
		return common.ErrorResult(err), nil
	}

	calendar := workdays.NewCalendar(country, sc.HolidayStore())
	result := calendar.Check(date.At(schedule.DayTime{}, time.UTC))
	return common.JSONResult(result)
}

func handleAddCustomHoliday(request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, ok := common.RequiredStringArg(args, "name")
	if !ok {
		return mcp.NewToolResultError("name is required"), nil
	}
	date, ok := common.RequiredStringArg(args, "date")
	if !ok {
		return mcp.NewToolResultError("date is required"), nil
	}
	recurring := common.OptionalBoolArg(args, "recurring", false)

	holiday, err := sc.HolidayStore().Add(name, date, recurring)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	return common.JSONResult(holiday)
}

func handleListCustomHolidays(sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return common.JSONResult(map[string]interface{}{
		"holidays": sc.HolidayStore().List(),
	})
}
