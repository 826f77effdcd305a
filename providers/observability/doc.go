// Package observability provides a minimal span abstraction used by the tool
// runtime and HTTP helpers to report diagnostic events. Spans travel through
// context.Context; the slog-backed implementation writes to the process log,
// keeping operator diagnostics separate from user-visible tool output.
package observability
