package server

import (
	"context"
	"sync"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/instrumentation"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/workdays"
)

// ServerContext holds shared state for the MCP server, including the
// custom holiday store and observability plumbing.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	shutdown bool

	holidayStore workdays.Store

	provider *instrumentation.Provider
	metrics  *instrumentation.Metrics
	audit    *instrumentation.AuditLogger
}

// ServerContextOption is a functional option for configuring ServerContext
type ServerContextOption func(*ServerContext)

// WithHolidayStore sets the custom holiday store
func WithHolidayStore(store workdays.Store) ServerContextOption {
	return func(sc *ServerContext) {
		sc.holidayStore = store
	}
}

// WithInstrumentation sets the instrumentation provider and derives the
// metrics recorder from it
func WithInstrumentation(provider *instrumentation.Provider) ServerContextOption {
	return func(sc *ServerContext) {
		sc.provider = provider
		if provider != nil {
			sc.metrics = provider.Metrics()
		}
	}
}

// WithMetrics sets the metrics recorder directly
func WithMetrics(metrics *instrumentation.Metrics) ServerContextOption {
	return func(sc *ServerContext) {
		sc.metrics = metrics
	}
}

// WithAuditLogger sets the audit logger for tool invocations
func WithAuditLogger(audit *instrumentation.AuditLogger) ServerContextOption {
	return func(sc *ServerContext) {
		sc.audit = audit
	}
}

// NewServerContext creates a new server context with the given options.
// A memory-backed holiday store is used when none is provided.
func NewServerContext(ctx context.Context, opts ...ServerContextOption) *ServerContext {
	ctx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:    ctx,
		cancel: cancel,
	}

	for _, opt := range opts {
		opt(sc)
	}

	if sc.holidayStore == nil {
		sc.holidayStore = workdays.NewMemoryStore()
	}

	return sc
}

// Context returns the server's base context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// HolidayStore returns the custom holiday store
func (sc *ServerContext) HolidayStore() workdays.Store {
	return sc.holidayStore
}

// Metrics returns the metrics recorder, which may be nil when
// instrumentation is disabled
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	return sc.metrics
}

// Audit returns the audit logger, which may be nil when audit logging
// is disabled
func (sc *ServerContext) Audit() *instrumentation.AuditLogger {
	return sc.audit
}

// Provider returns the instrumentation provider, which may be nil
func (sc *ServerContext) Provider() *instrumentation.Provider {
	return sc.provider
}

// IsShutdown reports whether Shutdown has been called
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown cancels the server context and marks the context as shut down.
// It is safe to call multiple times.
func (sc *ServerContext) Shutdown() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return
	}
	sc.shutdown = true
	sc.cancel()
}
