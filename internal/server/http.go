package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Supported HTTP transport types.
const (
	TransportSSE            = "sse"
	TransportStreamableHTTP = "streamable-http"
)

// HTTPServer wraps an MCP server with an HTTP transport. It serves the
// MCP endpoint alongside health check endpoints on a single listener.
type HTTPServer struct {
	mcpServer  *mcpserver.MCPServer
	health     *HealthChecker
	httpServer *http.Server
	serverType string
}

// NewHTTPServer creates a new HTTP server for MCP using the given
// transport type ("sse" or "streamable-http").
func NewHTTPServer(mcpServer *mcpserver.MCPServer, serverType string, sc *ServerContext) (*HTTPServer, error) {
	switch serverType {
	case TransportSSE, TransportStreamableHTTP:
	default:
		return nil, fmt.Errorf("unsupported server type: %s", serverType)
	}

	return &HTTPServer{
		mcpServer:  mcpServer,
		health:     NewHealthChecker(sc),
		serverType: serverType,
	}, nil
}

// Health returns the health checker so callers can flip readiness
// during startup and shutdown.
func (s *HTTPServer) Health() *HealthChecker {
	return s.health
}

// Start starts the HTTP server and blocks until it stops.
func (s *HTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	s.health.RegisterHealthEndpoints(mux)

	switch s.serverType {
	case TransportSSE:
		sseServer := mcpserver.NewSSEServer(s.mcpServer,
			mcpserver.WithSSEEndpoint("/sse"),
			mcpserver.WithMessageEndpoint("/message"),
		)
		mux.Handle("/sse", sseServer)
		mux.Handle("/message", sseServer)

	case TransportStreamableHTTP:
		streamServer := mcpserver.NewStreamableHTTPServer(s.mcpServer,
			mcpserver.WithEndpointPath("/mcp"),
		)
		mux.Handle("/mcp", streamServer)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server. The health checker is
// marked not ready first so load balancers stop routing new traffic.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.health.SetReady(false)
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
