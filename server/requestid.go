package server

import "github.com/google/uuid"

// newRequestID returns a fresh UUIDv4 for correlating log lines of a single
// request.
func newRequestID() string {
	return uuid.NewString()
}
