// Package logger builds slog loggers with the project's conventions:
// JSON to stdout, optional component tagging, and optional Sentry
// forwarding for warnings and errors.
package logger
