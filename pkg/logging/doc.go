// Package logging provides structured logging configuration for xmlsmith.
//
// This package wraps log/slog to provide consistent logging across all
// xmlsmith components. It supports configurable log levels and output
// formats.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("parsed document", "path", path)
//	logger.Error("render failed", "error", err)
//
// # Integration
//
// Components should accept a *slog.Logger via a setter. If no logger is
// provided, use logging.Nop() for a no-op logger.
package logging
