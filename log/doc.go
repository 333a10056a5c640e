// Package log provides a concurrency-safe structured logging facade over
// [log/slog] with a Trace level below Debug, selectable text/JSON output, and
// an optional colorized pretty printer for terminals.
//
// A package-level default logger writes to stderr and is reconfigured by the
// CLI flag layer via [Config]. Library code accepts a [Logger] value instead
// of reaching for the default, so engine internals stay silent unless a
// caller hands them a logger.
package log
