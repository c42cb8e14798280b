package time_tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/instrumentation"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/server"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/timeparse"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/tools/common"
)

// RegisterTimeTools registers all clock and parsing tools with the MCP server
func RegisterTimeTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	parser := timeparse.New(slog.Default())

	currentTool := mcp.NewTool("time_current",
		mcp.WithDescription("Get the current time in a timezone"),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone identifier (default: 'UTC', e.g., 'America/New_York')"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: short, medium, full, drive, or appointment (default: medium)"),
		),
	)
	s.AddTool(currentTool, common.InstrumentedToolHandlerWithOperation(
		"time_current", instrumentation.OperationFormat, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCurrent(request, sc)
		}))

	convertTool := mcp.NewTool("time_convert",
		mcp.WithDescription("Convert a time from one timezone to another"),
		mcp.WithString("time",
			mcp.Description("Time to convert in any supported format (default: current time)"),
		),
		mcp.WithString("fromTimezone",
			mcp.Description("Source IANA timezone identifier (default: 'UTC')"),
		),
		mcp.WithString("toTimezone",
			mcp.Required(),
			mcp.Description("Target IANA timezone identifier (e.g., 'Asia/Tokyo')"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: short, medium, full, drive, or appointment (default: medium)"),
		),
	)
	s.AddTool(convertTool, common.InstrumentedToolHandlerWithOperation(
		"time_convert", instrumentation.OperationConvert, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleConvert(ctx, request, sc, parser)
		}))

	parseTool := mcp.NewTool("time_parse",
		mcp.WithDescription("Parse a free-form time expression into a normalized timestamp"),
		mcp.WithString("input",
			mcp.Description("Time expression: ISO-8601, 'today'/'tomorrow'/'yesterday', common date formats, or a bare clock time (default: current time)"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone the input is interpreted in (default: 'UTC')"),
		),
	)
	s.AddTool(parseTool, common.InstrumentedToolHandlerWithOperation(
		"time_parse", instrumentation.OperationParse, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleParse(ctx, request, sc, parser)
		}))

	formatTool := mcp.NewTool("time_format",
		mcp.WithDescription("Format a time into a requested output format"),
		mcp.WithString("time",
			mcp.Description("Time to format in any supported format (default: current time)"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone identifier (default: 'UTC')"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: short, medium, full, drive, or appointment (default: medium)"),
		),
	)
	s.AddTool(formatTool, common.InstrumentedToolHandlerWithOperation(
		"time_format", instrumentation.OperationFormat, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFormat(ctx, request, sc, parser)
		}))

	differenceTool := mcp.NewTool("time_difference",
		mcp.WithDescription("Calculate the difference between two times"),
		mcp.WithString("firstTime",
			mcp.Required(),
			mcp.Description("First time in any supported format"),
		),
		mcp.WithString("secondTime",
			mcp.Required(),
			mcp.Description("Second time in any supported format"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone both inputs are interpreted in (default: 'UTC')"),
		),
	)
	s.AddTool(differenceTool, common.InstrumentedToolHandlerWithOperation(
		"time_difference", instrumentation.OperationDifference, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDifference(ctx, request, sc, parser)
		}))

	return nil
}

// recordParse surfaces the parser's provenance tag in metrics so fallback
// degradation stays observable.
func recordParse(ctx context.Context, sc *server.ServerContext, res timeparse.Result) {
	if m := sc.Metrics(); m != nil {
		m.RecordParseResult(ctx, string(res.Source))
	}
}

func handleCurrent(request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	zone := common.GetZoneFromArgs(args)

	format, err := clock.ParseOutputFormat(common.OptionalStringArg(args, "format", ""))
	if err != nil {
		return common.ErrorResult(err), nil
	}

	ts, err := clock.Now(zone)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	return common.JSONResult(map[string]interface{}{
		"timezone":  zone,
		"time":      ts.Format(format),
		"iso":       ts.Format(clock.FormatAppointment),
		"unix":      ts.Time.Unix(),
		"dayOfWeek": ts.Time.Weekday().String(),
	})
}

func handleConvert(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, parser *timeparse.Parser) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	toZone, ok := common.RequiredStringArg(args, "toTimezone")
	if !ok {
		return mcp.NewToolResultError("toTimezone is required"), nil
	}
	fromZone := common.OptionalStringArg(args, "fromTimezone", "UTC")

	format, err := clock.ParseOutputFormat(common.OptionalStringArg(args, "format", ""))
	if err != nil {
		return common.ErrorResult(err), nil
	}

	res, err := parser.Parse(common.OptionalStringArg(args, "time", ""), fromZone)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	recordParse(ctx, sc, res)

	converted, err := res.Timestamp.In(toZone)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	return common.JSONResult(map[string]interface{}{
		"fromTimezone": fromZone,
		"toTimezone":   toZone,
		"sourceTime":   res.Timestamp.Format(format),
		"targetTime":   converted.Format(format),
		"iso":          converted.Format(clock.FormatAppointment),
		"parseSource":  string(res.Source),
	})
}

func handleParse(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, parser *timeparse.Parser) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	zone := common.GetZoneFromArgs(args)

	res, err := parser.Parse(common.OptionalStringArg(args, "input", ""), zone)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	recordParse(ctx, sc, res)

	payload := map[string]interface{}{
		"input":    common.OptionalStringArg(args, "input", ""),
		"timezone": zone,
		"parsed":   res.Timestamp.Format(clock.FormatAppointment),
		"source":   string(res.Source),
		"degraded": res.Degraded(),
	}
	if res.Layout != "" {
		payload["layout"] = res.Layout
	}
	return common.JSONResult(payload)
}

func handleFormat(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, parser *timeparse.Parser) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	zone := common.GetZoneFromArgs(args)

	format, err := clock.ParseOutputFormat(common.OptionalStringArg(args, "format", ""))
	if err != nil {
		return common.ErrorResult(err), nil
	}

	res, err := parser.Parse(common.OptionalStringArg(args, "time", ""), zone)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	recordParse(ctx, sc, res)

	return common.JSONResult(map[string]interface{}{
		"timezone":  zone,
		"format":    string(format),
		"formatted": res.Timestamp.Format(format),
	})
}

func handleDifference(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, parser *timeparse.Parser) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	zone := common.GetZoneFromArgs(args)

	firstStr, ok := common.RequiredStringArg(args, "firstTime")
	if !ok {
		return mcp.NewToolResultError("firstTime is required"), nil
	}
	secondStr, ok := common.RequiredStringArg(args, "secondTime")
	if !ok {
		return mcp.NewToolResultError("secondTime is required"), nil
	}

	first, err := parser.Parse(firstStr, zone)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	recordParse(ctx, sc, first)

	second, err := parser.Parse(secondStr, zone)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	recordParse(ctx, sc, second)

	diff := second.Timestamp.Time.Sub(first.Timestamp.Time)

	return common.JSONResult(map[string]interface{}{
		"firstTime":  first.Timestamp.Format(clock.FormatAppointment),
		"secondTime": second.Timestamp.Format(clock.FormatAppointment),
		"timezone":   zone,
		"difference": formatDuration(diff),
		"seconds":    int64(diff.Seconds()),
	})
}

// formatDuration renders a signed duration as "[-]Nh MMm".
func formatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	return fmt.Sprintf("%s%dh %02dm", sign, int(d.Hours()), int(d.Minutes())%60)
}
