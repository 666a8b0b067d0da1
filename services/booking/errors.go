package booking

import (
	"errors"
	"fmt"
)

// ErrNoBookingCode is returned when every resolution strategy failed.
// Callers surface it as "no booking code available" with an explicit retry
// action; a stale or fabricated code is never substituted.
var ErrNoBookingCode = errors.New("no booking code available")

// ErrHoldRejected marks a terminal hold rejection. The same booking code
// must not be re-held; a fresh one has to be resolved.
var ErrHoldRejected = errors.New("prebook hold rejected")

// ErrReferenceConsumed is returned when a finalize attempt reuses a booking
// reference already consumed by an earlier booking.
var ErrReferenceConsumed = errors.New("booking reference already consumed")

// LogicalFailureError reports a booking the provider accepted at the HTTP
// layer but marked failed in the payload. Any confirmation number returned
// alongside is kept for support purposes.
type LogicalFailureError struct {
	Description        string
	ConfirmationNumber string
}

func (e *LogicalFailureError) Error() string {
	confirmation := e.ConfirmationNumber
	if confirmation == "" {
		confirmation = "N/A"
	}
	return fmt.Sprintf("booking failed: %s (confirmation: %s)", e.Description, confirmation)
}
