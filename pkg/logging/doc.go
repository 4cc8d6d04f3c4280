// Package logging provides structured logging utilities for hostinfo.
//
// # Overview
//
// This package wraps the standard library slog package with hostinfo defaults
// so the CLI, the HTTP server and the collectors log in one shape. It supports
// environment-based log level configuration, module/version context injection,
// and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-collector outcomes, including downgraded failures
//   - INFO: general informational messages (default)
//   - WARN/WARNING: sources that panicked or timed out
//   - ERROR: output or server failures
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("hostinfo", "v1.0.0")
//	    slog.Info("collecting", "platform", runtime.GOOS)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("hostinfo", "v1.0.0", "debug")
//
// Bridging to the standard library logger (used for http.Server.ErrorLog):
//
//	stdLogger := logging.NewLogLogger(slog.LevelError, false)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug hostinfo hardware
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format so descriptor output on
// stdout stays machine readable:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "collection complete",
//	    "module": "hostinfo",
//	    "version": "v1.0.0",
//	    "collectors": 6
//	}
package logging
