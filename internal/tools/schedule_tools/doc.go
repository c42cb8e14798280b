// Package schedule_tools provides MCP tools for cross-timezone
// scheduling: working-hours overlap, meeting slot scanning,
// business-day counting, and holiday queries.
package schedule_tools
