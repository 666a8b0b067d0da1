package models

import "time"

// SearchQuery captures the traveler's search input before any provider call.
type SearchQuery struct {
	Destination  string       `json:"destination"`
	CheckIn      string       `json:"checkIn"`  // "YYYY-MM-DD"
	CheckOut     string       `json:"checkOut"` // "YYYY-MM-DD"
	Rooms        int          `json:"rooms"`
	Adults       int          `json:"adults"`
	Children     int          `json:"children"`
	ChildrenAges []int        `json:"childrenAges,omitempty"`
	RoomGuests   []RoomGuests `json:"roomGuests,omitempty"` // explicit per-room distribution from the guest editor
}

// RoomGuests is one room's guest manifest as supplied by the room-by-room
// guest editor.
type RoomGuests struct {
	Adults       int   `json:"adults"`
	Children     int   `json:"children"`
	ChildrenAges []int `json:"childrenAges"`
}

// RoomAllocation is the validated per-room guest manifest used in every
// downstream provider call.
type RoomAllocation []RoomGuests

// TotalAdults returns the number of adults across all rooms.
func (a RoomAllocation) TotalAdults() int {
	total := 0
	for _, r := range a {
		total += r.Adults
	}
	return total
}

// TotalChildren returns the number of children across all rooms.
func (a RoomAllocation) TotalChildren() int {
	total := 0
	for _, r := range a {
		total += r.Children
	}
	return total
}

// GeoCode is a resolved destination, valid for a single search.
type GeoCode struct {
	CountryCode string `json:"countryCode"`
	CityCode    string `json:"cityCode"`
}

// ParseDate parses a "YYYY-MM-DD" query date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
