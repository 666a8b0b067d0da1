// File: utils/constants.go
package utils

import "time"

// ResolveTimeout bounds booking-code resolution searches against the
// inventory provider. A search that exceeds it is treated as failed,
// not retried.
const ResolveTimeout = 30 * time.Second

// HoldExpiry is the provider-side lifetime of a confirmed prebook hold.
// It is communicated to the caller but not enforced locally; the provider
// rejects a stale finalize attempt on its own.
const HoldExpiry = 24 * time.Hour

// SessionTTL is the time-to-live for booking sessions in Redis.
const SessionTTL = 24 * time.Hour

// SessionKeyPrefix is the prefix used for Redis booking session keys.
const SessionKeyPrefix = "bsession:"
