// Package logging provides structured logging for idev.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the tool. Logging is silent by default so CLI
// output stays clean; set IDEV_LOG_LEVEL to enable it.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (event decoding, raw output)
//   - Info: Normal operations (detection runs, benign empty results)
//   - Warn: Non-fatal issues
//   - Error: Fatal issues
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("device detected",
//	    zap.String("identifier", "00008110-000A512E3A88801E"),
//	    zap.String("arch", "arm64"),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Log output goes to stderr so it never mixes with machine-readable
// stdout formats.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
