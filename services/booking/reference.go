package booking

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// GenerateClientReferenceID produces a client reference id: a compact
// second-resolution timestamp and a random 3-digit suffix separated by "#".
// The suffix only needs to distinguish requests within the same clock
// second under interactive use; the 1/1000 same-second collision chance is
// an accepted limitation, not a uniqueness guarantee.
func GenerateClientReferenceID() string {
	timestamp := time.Now().UTC().Format("20060102150405")
	suffix := fmt.Sprintf("%03d", rand.Intn(1000))
	return timestamp + "#" + suffix
}

// NewBookingReferenceID mints a session-scoped booking reference for a
// customer. The reference is single-use: a finalized booking consumes it
// and the next attempt must mint a fresh one.
func NewBookingReferenceID(customerID string, now time.Time) string {
	return customerID + "#" + strconv.FormatInt(now.Unix(), 10)
}
