// Package log provides terminal-friendly logging for papercrawl, built on
// top of the standard slog package.
//
// This package extends slog to provide:
//   - Level-colored console output (cyan/green/yellow/red) for interactive use
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//   - A JSON handler variant for machine-readable logs
//
// # Usage
//
//	// Create a colored console logger
//	logger := log.NewConsoleLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("page fetched",
//	    "url", "https://example.com/",
//	    "attempt", 1,
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
//
// Colors are only applied by the console handler; the JSON variant emits
// plain structured records suitable for log aggregation.
package log
