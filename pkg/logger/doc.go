// Package logger provides structured logging for snapvault.
//
// It wraps the zerolog library behind a small Logger interface with
// support for:
// - Multiple log levels (Debug, Info, Warn, Error, Fatal)
// - Structured logging with fields
// - Pretty console output with colors
// - Optional file output
// - A global logger instance for easy access
//
// Basic usage:
//
//	cfg := &config.LoggingConfig{Level: "info"}
//	err := logger.Initialize(cfg)
//
//	logger.Info("Gallery build started")
//	logger.WithField("file", "20230501_100000_0000.jpg").Info("Saved")
//	logger.WithError(err).Error("Download failed")
package logger
