package models

// HotelSource discriminates where a hotel offer came from. Static catalog
// records carry no live room offer; live records may. The discriminant is
// set once at the provider boundary so downstream code never probes field
// presence.
type HotelSource string

const (
	HotelSourceCatalog HotelSource = "catalog"
	HotelSourceLive    HotelSource = "live"
)

// RoomOffer is a single holdable room offer attached to a hotel.
type RoomOffer struct {
	BookingCode    string   `json:"bookingCode"`
	RoomType       string   `json:"roomType,omitempty"`
	TotalFare      float64  `json:"totalFare"`
	Currency       string   `json:"currency,omitempty"`
	MealType       string   `json:"mealType,omitempty"`
	Refundable     bool     `json:"refundable"`
	CancelPolicies []string `json:"cancelPolicies,omitempty"`
}

// HotelOffer is the canonical hotel shape all downstream logic works with,
// normalized once from the provider's inconsistent response variants.
type HotelOffer struct {
	Source     HotelSource `json:"source"`
	HotelCode  string      `json:"hotelCode"`
	HotelName  string      `json:"hotelName"`
	Address    string      `json:"address,omitempty"`
	StarRating string      `json:"starRating,omitempty"`
	FrontImage string      `json:"frontImage,omitempty"`
	Price      float64     `json:"price"`
	Currency   string      `json:"currency,omitempty"`
	Room       *RoomOffer  `json:"room,omitempty"`
}

// HasRoomOffer reports whether a live room offer with a booking code is
// attached.
func (h *HotelOffer) HasRoomOffer() bool {
	return h.Source == HotelSourceLive && h.Room != nil && h.Room.BookingCode != ""
}
