package astro_tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/astro"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/clock"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/instrumentation"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/server"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/tools/common"
)

// RegisterAstroTools registers sun and moon ephemeris tools with the MCP server
func RegisterAstroTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	sunTool := mcp.NewTool("astro_sunrise_sunset",
		mcp.WithDescription("Get sunrise, sunset, dawn, dusk, solar noon, and day length for a location"),
		mcp.WithString("date",
			mcp.Description("Date to compute (YYYY-MM-DD, default: today)"),
		),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude in degrees, -90 to 90"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude in degrees, -180 to 180"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone event times are expressed in (default: 'UTC')"),
		),
	)
	s.AddTool(sunTool, common.InstrumentedToolHandlerWithOperation(
		"astro_sunrise_sunset", instrumentation.OperationSunTimes, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSunriseSunset(request)
		}))

	moonTool := mcp.NewTool("astro_moon_phase",
		mcp.WithDescription("Get the moon phase and illumination for a date"),
		mcp.WithString("date",
			mcp.Description("Date to compute (YYYY-MM-DD, default: today)"),
		),
		mcp.WithNumber("latitude",
			mcp.Description("Latitude in degrees, -90 to 90 (default: 0)"),
		),
		mcp.WithNumber("longitude",
			mcp.Description("Longitude in degrees, -180 to 180 (default: 0)"),
		),
	)
	s.AddTool(moonTool, common.InstrumentedToolHandlerWithOperation(
		"astro_moon_phase", instrumentation.OperationMoonPhase, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleMoonPhase(request)
		}))

	return nil
}

// dateFromArgs resolves the optional date argument as a UTC instant on the
// requested civil date, defaulting to now.
func dateFromArgs(args map[string]interface{}) (time.Time, error) {
	dateStr := common.OptionalStringArg(args, "date", "")
	if dateStr == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, clock.InvalidArgument("date", "expected YYYY-MM-DD, got %q", dateStr)
	}
	return t, nil
}

func handleSunriseSunset(request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	lat, ok := args["latitude"].(float64)
	if !ok {
		return mcp.NewToolResultError("latitude is required"), nil
	}
	lng, ok := args["longitude"].(float64)
	if !ok {
		return mcp.NewToolResultError("longitude is required"), nil
	}
	zone := common.GetZoneFromArgs(args)

	date, err := dateFromArgs(args)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	report, err := astro.SunriseSunset(date, lat, lng, zone)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	return common.JSONResult(report)
}

func handleMoonPhase(request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	lat := common.OptionalNumberArg(args, "latitude", 0)
	lng := common.OptionalNumberArg(args, "longitude", 0)

	date, err := dateFromArgs(args)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	report, err := astro.MoonPhase(date, lat, lng)
	if err != nil {
		return common.ErrorResult(err), nil
	}
	return common.JSONResult(report)
}
