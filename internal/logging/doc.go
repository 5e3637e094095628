// Package logging provides structured logging for the bridge driver.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the driver: lifecycle events at session open
// and close, and hex dumps of wire frames at debug level.
//
// # Silent By Default
//
// This is a library, so logging is off unless the host asks for it. When
// Initialize is called with an empty level and BUSBRIDGE_LOG_LEVEL is
// unset, the global logger is a no-op. A host application enables output
// with:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// or by exporting BUSBRIDGE_LOG_LEVEL=debug and calling
// logging.InitializeFromEnv().
//
// # Log Levels
//
//   - Debug: wire-level detail (frame hex dumps, per-exchange status)
//   - Info: normal operations (session open/close)
//   - Warn: non-fatal issues
//   - Error: failures worth operator attention
//
// # Wire Tracing
//
// LogRawBytes emits a frame as hex and printable ASCII at debug level,
// capped at 256 bytes:
//
//	logging.LogRawBytes("request frame", frame)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
