// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, plus helpers that carry a request-scoped logger and
// trace ID through a context.Context.
package logger
