// Package time_tools provides MCP tools for clock queries, timezone
// conversion, flexible parsing, formatting, and time differences.
package time_tools
