// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	logger := logging.NewLogger()
//	ctx := logging.WithLogger(ctx, logger)
//	// deeper in the call stack:
//	logging.FromContext(ctx).Info("article registered", "magazine", name)
package logging
