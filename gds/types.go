package gds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Provider status codes observed on search and booking responses.
const (
	CodeSuccess   = "200"
	CodeNoRooms   = "201"
	CodeNoResults = "204"
)

// StatusCode tolerates the provider returning codes as either a JSON string
// or a bare number.
type StatusCode string

func (c *StatusCode) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = StatusCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("status code is neither string nor number: %w", err)
	}
	*c = StatusCode(n.String())
	return nil
}

// Status is the provider's outer status envelope. List endpoints report the
// text under "Message", the rest under "Description".
type Status struct {
	Code        StatusCode `json:"Code"`
	Description string     `json:"Description,omitempty"`
	Message     string     `json:"Message,omitempty"`
}

// Text returns whichever status text field the endpoint populated.
func (s Status) Text() string {
	if s.Description != "" {
		return s.Description
	}
	return s.Message
}

// Fare tolerates fare values returned as either a number or a numeric
// string. A string that fails to parse is an unmarshal error, never a
// silent zero.
type Fare float64

func (f *Fare) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("unparseable fare %q: %w", s, err)
		}
		*f = Fare(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Fare(v)
	return nil
}

// FlexBool tolerates booleans returned as either JSON bools or the strings
// "true"/"false" (the provider mixes both on IsRefundable).
type FlexBool bool

func (fb *FlexBool) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*fb = FlexBool(s == "true")
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*fb = FlexBool(v)
	return nil
}

// Room is one room offer in a search or detail response.
type Room struct {
	BookingCode        string   `json:"BookingCode"`
	RoomType           string   `json:"RoomType,omitempty"`
	TotalFare          *Fare    `json:"TotalFare,omitempty"`
	Price              *Fare    `json:"Price,omitempty"`
	Currency           string   `json:"Currency,omitempty"`
	MealType           string   `json:"MealType,omitempty"`
	IsRefundable       FlexBool `json:"IsRefundable,omitempty"`
	CancellationPolicy string   `json:"CancellationPolicy,omitempty"`
}

// RoomList accepts the provider's room data as either a single object or an
// array; both shapes occur in live responses.
type RoomList []Room

func (r *RoomList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = nil
		return nil
	}
	if b[0] == '[' {
		var rooms []Room
		if err := json.Unmarshal(b, &rooms); err != nil {
			return err
		}
		*r = rooms
		return nil
	}
	var room Room
	if err := json.Unmarshal(b, &room); err != nil {
		return err
	}
	*r = RoomList{room}
	return nil
}

// Hotel is a single hotel entry in a search response.
type Hotel struct {
	HotelCode  string   `json:"HotelCode"`
	HotelName  string   `json:"HotelName,omitempty"`
	Address    string   `json:"Address,omitempty"`
	StarRating string   `json:"StarRating,omitempty"`
	FrontImage string   `json:"FrontImage,omitempty"`
	Price      *Fare    `json:"Price,omitempty"`
	Currency   string   `json:"Currency,omitempty"`
	Rooms      RoomList `json:"Rooms,omitempty"`
}

// HotelResultSet accepts HotelResult as an object, an array, or null.
type HotelResultSet []Hotel

func (h *HotelResultSet) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*h = nil
		return nil
	}
	if b[0] == '[' {
		var hotels []Hotel
		if err := json.Unmarshal(b, &hotels); err != nil {
			return err
		}
		*h = hotels
		return nil
	}
	var hotel Hotel
	if err := json.Unmarshal(b, &hotel); err != nil {
		return err
	}
	*h = HotelResultSet{hotel}
	return nil
}

// PaxRoom is the per-room guest manifest required on every search request.
type PaxRoom struct {
	Adults       int   `json:"Adults"`
	Children     int   `json:"Children"`
	ChildrenAges []int `json:"ChildrenAges"`
}

// SearchRequest is the hotel search request body.
type SearchRequest struct {
	CheckIn               string    `json:"CheckIn"`
	CheckOut              string    `json:"CheckOut"`
	HotelCodes            string    `json:"HotelCodes,omitempty"`
	CityCode              string    `json:"CityCode,omitempty"`
	GuestNationality      string    `json:"GuestNationality"`
	PreferredCurrencyCode string    `json:"PreferredCurrencyCode"`
	PaxRooms              []PaxRoom `json:"PaxRooms"`
	IsDetailResponse      bool      `json:"IsDetailResponse"`
	ResponseTime          int       `json:"ResponseTime"`
}

// SearchResponse is the hotel search response envelope.
type SearchResponse struct {
	Status      Status         `json:"Status"`
	HotelResult HotelResultSet `json:"HotelResult"`
}

// HotelDetailsResponse is the hotel-details response. A room offer with a
// booking code may already be embedded.
type HotelDetailsResponse struct {
	Status    *Status  `json:"Status,omitempty"`
	HotelCode string   `json:"HotelCode,omitempty"`
	HotelName string   `json:"HotelName,omitempty"`
	Address   string   `json:"Address,omitempty"`
	Rooms     RoomList `json:"Rooms,omitempty"`
}

// PrebookResponse is the prebook (hold) response.
type PrebookResponse struct {
	Status           Status `json:"Status"`
	BookingReference string `json:"BookingReference,omitempty"`
	TotalAmount      *Fare  `json:"TotalAmount,omitempty"`
	Currency         string `json:"Currency,omitempty"`
	ExpiryTime       string `json:"ExpiryTime,omitempty"`
}

// CustomerName is a single guest entry in a book request.
type CustomerName struct {
	Title     string `json:"Title"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Type      string `json:"Type"` // "Adult" or "Child"
}

// CustomerDetail lists the guests for one room.
type CustomerDetail struct {
	CustomerNames []CustomerName `json:"CustomerNames"`
}

// BookRequest is the final voucher booking request body.
type BookRequest struct {
	BookingCode        string           `json:"BookingCode"`
	CustomerDetails    []CustomerDetail `json:"CustomerDetails"`
	BookingType        string           `json:"BookingType"`
	ClientReferenceId  string           `json:"ClientReferenceId"`
	BookingReferenceId string           `json:"BookingReferenceId"`
	PaymentMode        string           `json:"PaymentMode"`
	GuestNationality   string           `json:"GuestNationality"`
	TotalFare          float64          `json:"TotalFare"`
	EmailId            string           `json:"EmailId"`
	PhoneNumber        int64            `json:"PhoneNumber"`
}

// BookResponse is the final booking response. The outer status can report
// success while BookingStatus is "Failed"; both layers must be checked.
type BookResponse struct {
	Status             Status `json:"Status"`
	BookingStatus      string `json:"BookingStatus,omitempty"`
	ConfirmationNumber string `json:"ConfirmationNumber,omitempty"`
	BookingId          string `json:"BookingId,omitempty"`
	ClientReferenceId  string `json:"ClientReferenceId,omitempty"`
}

// CancelResponse is the booking cancellation response.
type CancelResponse struct {
	Status             Status `json:"Status"`
	ConfirmationNumber string `json:"ConfirmationNumber,omitempty"`
	CancellationFee    *Fare  `json:"CancellationFee,omitempty"`
	RefundAmount       *Fare  `json:"RefundAmount,omitempty"`
	Currency           string `json:"Currency,omitempty"`
}

// Country is one entry of the provider's country list.
type Country struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// City is one entry of the provider's per-country city list.
type City struct {
	CityCode    string `json:"CityCode"`
	CityName    string `json:"CityName"`
	CountryCode string `json:"CountryCode"`
}

// HotelSummary is one entry of the provider's hotel code list.
type HotelSummary struct {
	HotelCode   string `json:"HotelCode"`
	HotelName   string `json:"HotelName"`
	CityCode    string `json:"CityCode"`
	CountryCode string `json:"CountryCode"`
}

// CountryListResponse wraps the country list.
type CountryListResponse struct {
	Status      Status    `json:"Status"`
	CountryList []Country `json:"CountryList"`
}

// CityListResponse wraps the city list.
type CityListResponse struct {
	Status   Status `json:"Status"`
	CityList []City `json:"CityList"`
}

// HotelCodeListResponse wraps the hotel code list.
type HotelCodeListResponse struct {
	Status    Status         `json:"Status"`
	HotelList []HotelSummary `json:"HotelList"`
}

// ConfirmationRequest is the confirmation-email dispatch request.
type ConfirmationRequest struct {
	CustomerID         string `json:"customer_id,omitempty"`
	ClientReferenceID  string `json:"client_reference_id,omitempty"`
	ConfirmationNumber string `json:"confirmation_number"`
	BookingReferenceID string `json:"booking_reference_id,omitempty"`
	Email              string `json:"email"`
}

// ConfirmationResponse reports confirmation-email dispatch.
type ConfirmationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CustomerUpdate is a partial-field customer profile update.
type CustomerUpdate struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	ProfileURL  *string `json:"profile_url,omitempty"`
}
