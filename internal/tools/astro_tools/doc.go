// Package astro_tools provides MCP tools for sunrise/sunset times and
// moon phases.
package astro_tools
