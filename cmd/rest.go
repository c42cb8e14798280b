package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/instrumentation"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/rest"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/server"
)

func newRestCmd() *cobra.Command {
	var (
		debugMode bool
		addr      string
		rateLimit int
		// Metrics server configuration
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "rest",
		Short: "Start the REST API server",
		Long: `Start the REST API server that exposes the same timezone, scheduling,
business-day and astronomy operations as the MCP server over plain JSON HTTP.

Configuration is read from TOOLKIT_REST_* environment variables
(TOOLKIT_REST_ADDR, TOOLKIT_REST_RATE_LIMIT, TOOLKIT_REST_ALLOWED_ORIGINS)
and can be overridden with flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rest.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load REST config: %w", err)
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("rate-limit") {
				cfg.RateLimit = rateLimit
			}
			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			return runRest(cfg, debugMode, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "REST server address. Can also use TOOLKIT_REST_ADDR env var.")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", 120, "Requests per minute allowed per client IP. Can also use TOOLKIT_REST_RATE_LIMIT env var.")

	// Metrics server flags
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runRest(cfg *rest.Config, debugMode bool, metricsConfig MetricsConfig) error {
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled {
		if os.Getenv("METRICS_ENABLED") == "true" {
			metricsConfig.Enabled = true
		}
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == ":9090" {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	logger := newLogger(debugMode)
	slog.SetDefault(logger)

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during instrumentation shutdown: %v", err)
		}
	}()

	// Start metrics server if enabled
	var metricsServer *server.MetricsServer
	if metricsConfig.Enabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		// Wait for metrics server to be ready or fail
		select {
		case <-metricsReady:
			log.Printf("Metrics server started on %s", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	// Same observability wiring as the MCP server so REST handlers record
	// request metrics and audit entries.
	opts := []server.ServerContextOption{}
	if provider.Enabled() {
		opts = append(opts,
			server.WithInstrumentation(provider),
			server.WithAuditLogger(instrumentation.NewAuditLoggerWithConfig(logger, instrConfig.AuditLogging)),
		)
	}
	serverContext := server.NewServerContext(shutdownCtx, opts...)
	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}
		serverContext.Shutdown()
	}()

	srv := rest.NewServer(cfg, serverContext, logger)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Info("shutdown signal received, stopping REST server")
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer stopCancel()
		if err := srv.Shutdown(stopCtx); err != nil {
			return fmt.Errorf("error shutting down REST server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("REST server stopped with error: %w", err)
		}
	}

	return nil
}
