// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, and carries the per-request logger and trace ID
// through context.Context so handlers and study flows log with the same correlation data.
package logger
