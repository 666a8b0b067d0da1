package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stayhub/config"
	"stayhub/gds"
	"stayhub/models"
	"stayhub/services/geo"

	"go.uber.org/zap"
)

// maxHotelCodes caps how many hotel codes of a city go into one live
// search request.
const maxHotelCodes = 20

// Outcome distinguishes an empty result set from a failed search. No-rooms
// and no-results render as empty states, never as error banners.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeNoRooms   Outcome = "no_rooms"
	OutcomeNoResults Outcome = "no_results"
)

// Result is the normalized output of a destination search. Bookable counts
// the hotels whose live room offer can go straight into booking-code
// resolution.
type Result struct {
	Outcome     Outcome               `json:"outcome"`
	Description string                `json:"description,omitempty"`
	Geo         models.GeoCode        `json:"geo"`
	Allocation  models.RoomAllocation `json:"allocation"`
	Hotels      []models.HotelOffer   `json:"hotels"`
	Bookable    int                   `json:"bookable"`
}

// Service runs destination searches against the inventory provider.
type Service interface {
	Search(ctx context.Context, query models.SearchQuery) (*Result, error)
}

// DefaultSearchService implements Service.
type DefaultSearchService struct {
	GDS    *gds.Client
	Geo    geo.Resolver
	Logger *zap.Logger
}

// Search validates the query, resolves the destination, collects the city's
// hotel codes and runs one live availability search over them. The guest
// allocation computed here is the same one later passed to booking-code
// resolution and finalize.
func (s *DefaultSearchService) Search(ctx context.Context, query models.SearchQuery) (*Result, error) {
	if err := ValidateQuery(query, time.Now()); err != nil {
		return nil, err
	}

	alloc, err := Allocate(query.Adults, query.Children, query.Rooms, query.ChildrenAges, query.RoomGuests)
	if err != nil {
		return nil, err
	}

	geoCode, err := s.Geo.Resolve(ctx, query.Destination)
	if err != nil {
		return nil, err
	}

	codes, err := s.GDS.HotelCodeList(ctx, geoCode.CountryCode, geoCode.CityCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hotel codes: %w", err)
	}

	// The code list can include nearby hotels; keep only exact city matches.
	var cityCodes []string
	for _, h := range codes.HotelList {
		if h.CityCode == geoCode.CityCode {
			cityCodes = append(cityCodes, h.HotelCode)
		}
		if len(cityCodes) == maxHotelCodes {
			break
		}
	}
	if len(cityCodes) == 0 {
		return &Result{
			Outcome:     OutcomeNoResults,
			Description: "No hotels found for the destination",
			Geo:         geoCode,
			Allocation:  alloc,
		}, nil
	}

	resp, err := s.GDS.SearchHotels(ctx, gds.SearchRequest{
		CheckIn:               query.CheckIn,
		CheckOut:              query.CheckOut,
		HotelCodes:            strings.Join(cityCodes, ","),
		GuestNationality:      config.AppConfig.GuestNationality,
		PreferredCurrencyCode: config.AppConfig.Currency,
		PaxRooms:              ToPaxRooms(alloc),
		IsDetailResponse:      true,
		ResponseTime:          30,
	})
	if err != nil {
		return nil, fmt.Errorf("hotel search failed: %w", err)
	}

	result := &Result{Geo: geoCode, Allocation: alloc}
	switch string(resp.Status.Code) {
	case gds.CodeSuccess:
		result.Outcome = OutcomeOK
		for _, h := range resp.HotelResult {
			offer := NormalizeHotel(h)
			if offer.HasRoomOffer() {
				result.Bookable++
			}
			result.Hotels = append(result.Hotels, offer)
		}
	case gds.CodeNoRooms:
		result.Outcome = OutcomeNoRooms
		result.Description = "No available rooms found for the search criteria"
	case gds.CodeNoResults:
		result.Outcome = OutcomeNoResults
		result.Description = "No hotels found for the search criteria"
	default:
		return nil, fmt.Errorf("provider search error %s: %s", resp.Status.Code, resp.Status.Text())
	}

	s.Logger.Info("destination search completed",
		zap.String("destination", query.Destination),
		zap.String("outcome", string(result.Outcome)),
		zap.Int("hotels", len(result.Hotels)),
		zap.Int("bookable", result.Bookable))
	return result, nil
}

// NormalizeHotel converts a provider hotel payload into the canonical offer
// shape. The source discriminant is fixed here, at the provider boundary:
// downstream logic switches on it and never probes raw field presence.
func NormalizeHotel(h gds.Hotel) models.HotelOffer {
	offer := models.HotelOffer{
		Source:     models.HotelSourceCatalog,
		HotelCode:  h.HotelCode,
		HotelName:  h.HotelName,
		Address:    h.Address,
		StarRating: h.StarRating,
		FrontImage: h.FrontImage,
		Price:      ExtractPrice(h),
		Currency:   h.Currency,
	}
	if len(h.Rooms) > 0 {
		room := h.Rooms[0]
		offer.Source = models.HotelSourceLive
		offer.Room = &models.RoomOffer{
			BookingCode: room.BookingCode,
			RoomType:    room.RoomType,
			TotalFare:   ExtractRoomPrice(room),
			Currency:    room.Currency,
			MealType:    room.MealType,
			Refundable:  bool(room.IsRefundable),
		}
		if room.CancellationPolicy != "" {
			offer.Room.CancelPolicies = []string{room.CancellationPolicy}
		}
		if offer.Currency == "" {
			offer.Currency = room.Currency
		}
	}
	return offer
}
