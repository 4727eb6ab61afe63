// Package clients is the outbound HTTP stack: retries with jittered
// exponential backoff, a circuit breaker, OpenTelemetry spans and metrics,
// and request/correlation ID propagation.
package clients

import (
	"errors"
	"fmt"
)

// Infrastructure failures. The acl package translates them to domain errors.
var (
	// ErrCircuitOpen is returned without sending when the breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last attempt's error once every
	// attempt has failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

// StatusError records a 5xx status from the last failed attempt.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error: %d", e.StatusCode)
}
