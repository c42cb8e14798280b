// Package server provides the MCP server context, HTTP transport,
// health endpoints, and metrics server for the timezone-toolkit
// application.
//
// # Key Components
//
// ServerContext holds the shared state tool handlers need: the custom
// holiday store, the instrumentation provider with its metrics
// recorder, and the audit logger. It also tracks shutdown state so
// health checks can report readiness accurately during graceful
// shutdown.
//
// HTTPServer wraps an MCP server with the streamable HTTP transport,
// serving the MCP endpoint alongside liveness and readiness probes on
// a single listener.
//
// MetricsServer serves Prometheus metrics on a dedicated port,
// isolating operational metrics from application traffic.
package server
