package models

// ConfirmationEmail is the payload for a queued booking confirmation email.
type ConfirmationEmail struct {
	CustomerID         string `json:"customerId"`
	ConfirmationNumber string `json:"confirmationNumber"`
	BookingReferenceID string `json:"bookingReferenceId"`
	Email              string `json:"email"`
}
