// Package common provides shared utilities for MCP tool implementations:
// argument extraction from tool requests, JSON result envelopes,
// validation-aware error results, and the instrumented handler wrapper
// that records metrics and audit logs around every tool call.
package common
