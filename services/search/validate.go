package search

import (
	"fmt"
	"time"

	"stayhub/models"
)

// ValidationError reports invalid search input. It is surfaced directly to
// the caller before any provider call; no retry is offered.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// maxStayNights caps the stay length accepted by the provider.
const maxStayNights = 30

// maxAdvanceMonths caps how far out a check-in date may be.
const maxAdvanceMonths = 6

// ValidateQuery checks a search query's dates and guest counts. It must be
// called before any network I/O.
func ValidateQuery(q models.SearchQuery, now time.Time) error {
	checkIn, err := models.ParseDate(q.CheckIn)
	if err != nil {
		return &ValidationError{Field: "checkIn", Message: "invalid date format, expected YYYY-MM-DD"}
	}
	checkOut, err := models.ParseDate(q.CheckOut)
	if err != nil {
		return &ValidationError{Field: "checkOut", Message: "invalid date format, expected YYYY-MM-DD"}
	}

	if !checkOut.After(checkIn) {
		return &ValidationError{Field: "checkOut", Message: "check-out must be after check-in"}
	}
	if checkOut.Sub(checkIn) > maxStayNights*24*time.Hour {
		return &ValidationError{Field: "checkOut", Message: fmt.Sprintf("stay length exceeds %d nights", maxStayNights)}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return &ValidationError{Field: "checkIn", Message: "check-in date is in the past"}
	}
	if checkIn.After(today.AddDate(0, maxAdvanceMonths, 0)) {
		return &ValidationError{Field: "checkIn", Message: fmt.Sprintf("check-in date is more than %d months out", maxAdvanceMonths)}
	}

	if q.Rooms < 1 {
		return &ValidationError{Field: "rooms", Message: "at least one room is required"}
	}
	if q.Adults < 1 {
		return &ValidationError{Field: "adults", Message: "at least one adult is required"}
	}
	if q.Children < 0 {
		return &ValidationError{Field: "children", Message: "children cannot be negative"}
	}
	if len(q.ChildrenAges) != q.Children {
		return &ValidationError{Field: "childrenAges", Message: "one age per child is required"}
	}
	return nil
}
