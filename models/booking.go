package models

import "time"

// HoldStatus is the state of a prebook hold.
type HoldStatus string

const (
	HoldPending   HoldStatus = "Pending"
	HoldConfirmed HoldStatus = "Confirmed"
	HoldRejected  HoldStatus = "Rejected"
)

// PrebookHold is a temporary reservation of inventory against a booking code.
// A confirmed hold expires 24 hours after placement; expiry is informational
// and enforced by the provider, not locally.
type PrebookHold struct {
	BookingCode      string     `json:"bookingCode"`
	BookingReference string     `json:"bookingReference,omitempty"`
	TotalAmount      float64    `json:"totalAmount"`
	Currency         string     `json:"currency,omitempty"`
	ExpiresAt        time.Time  `json:"expiresAt"`
	Status           HoldStatus `json:"status"`
	StatusReason     string     `json:"statusReason,omitempty"`
}

// GuestName is a single guest entry in a room manifest.
type GuestName struct {
	Title     string `json:"title"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Type      string `json:"type"` // "Adult" or "Child"
}

// RoomManifest lists the guests occupying one room, primary guest first.
type RoomManifest struct {
	Guests []GuestName `json:"guests"`
}

// BookingRecord is the persisted outcome of a successful finalize call.
// Immutable after creation except for the cancellation status.
type BookingRecord struct {
	ID                 string         `bson:"id" json:"id"`
	ConfirmationNumber string         `bson:"confirmation_number" json:"confirmationNumber"`
	BookingID          string         `bson:"booking_id" json:"bookingId"`
	ClientReferenceID  string         `bson:"client_reference_id" json:"clientReferenceId"`
	BookingReferenceID string         `bson:"booking_reference_id" json:"bookingReferenceId"`
	CustomerID         string         `bson:"customer_id" json:"customerId"`
	HotelCode          string         `bson:"hotel_code" json:"hotelCode"`
	CheckIn            string         `bson:"check_in" json:"checkIn"`
	CheckOut           string         `bson:"check_out" json:"checkOut"`
	Manifest           []RoomManifest `bson:"manifest" json:"manifest"`
	TotalFare          float64        `bson:"total_fare" json:"totalFare"`
	Currency           string         `bson:"currency" json:"currency"`
	Cancelled          bool           `bson:"cancelled" json:"cancelled"`
	CreatedAt          time.Time      `bson:"created_at" json:"createdAt"`
}
