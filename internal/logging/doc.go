// Package logging provides structured logging utilities for the
// timezone-toolkit application.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "time_convert")
//	logger.Info("conversion complete",
//	    logging.Zone("Europe/Paris"),
//	    logging.Status(logging.StatusSuccess))
//
// Attach errors without nil checks:
//
//	logger.Warn("degraded parse", logging.Err(err))
package logging
