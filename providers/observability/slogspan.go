package observability

import (
	"log/slog"
	"time"
)

// slogSpan routes span events to a structured slog.Logger. It is the default
// observability backend: lightweight, no external collector required, and the
// output never mixes into tool responses because it goes to the process log.
type slogSpan struct {
	logger *slog.Logger
	name   string
	start  time.Time
}

// NewSlogSpan creates a span that logs its events through logger at debug
// level and its errors at warn level. If logger is nil, slog.Default is used.
func NewSlogSpan(logger *slog.Logger, name string) Span {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogSpan{
		logger: logger.With("span", name),
		name:   name,
		start:  time.Now(),
	}
}

func (s *slogSpan) End() {
	s.logger.Debug("span end", "duration", time.Since(s.start))
}

func (s *slogSpan) SetAttributes(attrs ...Attribute) {
	s.logger.Debug("span attributes", slogArgs(attrs)...)
}

func (s *slogSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.logger.Warn("span error", "error", err.Error())
}

func (s *slogSpan) AddEvent(name string, attrs ...Attribute) {
	s.logger.Debug(name, slogArgs(attrs)...)
}

func slogArgs(attrs []Attribute) []any {
	args := make([]any, 0, len(attrs)*2)
	for _, attr := range attrs {
		args = append(args, attr.Key, attr.Value)
	}
	return args
}
