package models

import "time"

// BookingSession carries the per-customer booking state through the
// search → resolve → prebook → finalize chain. It replaces ambient global
// state: every stage reads and writes the session value explicitly, so two
// concurrent flows for different sessions can never race on a shared token.
//
// The session holds at most one live booking reference. The reference is
// minted when the session is created (or after the previous one is consumed)
// and invalidated by a successful finalize.
type BookingSession struct {
	SessionID          string         `json:"sessionId"`
	CustomerID         string         `json:"customerId"`
	BookingReferenceID string         `json:"bookingReferenceId"`
	ReferenceConsumed  bool           `json:"referenceConsumed"`
	Query              *SearchQuery   `json:"query,omitempty"`
	Allocation         RoomAllocation `json:"allocation,omitempty"`
	Hold               *PrebookHold   `json:"hold,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
}
