// Package slogobs provides an [observability.Provider] implementation backed
// by the standard library's log/slog package. It emits span lifecycle events,
// span events, and structured log records through a single slog.Logger,
// giving lightweight tracing without external dependencies.
//
// Create an observer with [New]; configure it with [WithLogger], [WithLevel],
// and [WithOutput].
package slogobs
