// Package cmd implements the command-line interface for timezone-toolkit.
//
// This package provides the following commands:
//   - serve: Start the MCP server to provide tools for AI assistants
//   - rest: Start the REST API server exposing the same operations over JSON HTTP
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
