package utils

import (
	"io"
	"log/slog"
)

// CloseWithLog closes c and logs any close error instead of returning it, so
// deferred closes never override a function's primary error.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err.Error())
	}
}
