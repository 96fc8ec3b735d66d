// Package logger provides structured logging for devserve.
//
// The access log and operational messages go through an slog-backed
// Logger interface with a configurable minimum level and either a
// human-oriented text format (the default for a terminal tool) or
// JSON for machine consumption.
package logger
