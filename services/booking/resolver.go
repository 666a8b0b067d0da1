package booking

import (
	"context"
	"fmt"
	"time"

	"stayhub/config"
	"stayhub/gds"
	"stayhub/models"
	"stayhub/services/search"
	"stayhub/utils"

	"go.uber.org/zap"
)

// CodeResolver discovers a holdable booking code for a hotel.
type CodeResolver interface {
	Resolve(ctx context.Context, hotelCode string, query *models.SearchQuery, alloc models.RoomAllocation) (string, error)
}

// DefaultCodeResolver implements CodeResolver with an ordered fallback
// chain. It performs no deduplication of identical in-flight requests;
// callers hold an in-flight guard released on every path.
type DefaultCodeResolver struct {
	GDS    *gds.Client
	Logger *zap.Logger
}

// Resolve tries, in order:
//
//  1. the hotel-details fast path — a room offer with a booking code may
//     already be embedded (no guest-manifest re-validation happens upstream
//     on this path);
//  2. a live search scoped to the single hotel with the caller's dates and
//     allocation, bounded to 30 seconds — a request over budget is a
//     failure, not retried;
//  3. when the caller had no usable date/guest context at all, the same
//     search with default dates (today/tomorrow) and a 1-room/2-adult
//     manifest, so a hotel detail page never becomes permanently
//     unbookable;
//  4. ErrNoBookingCode.
func (r *DefaultCodeResolver) Resolve(ctx context.Context, hotelCode string, query *models.SearchQuery, alloc models.RoomAllocation) (string, error) {
	if hotelCode == "" {
		return "", fmt.Errorf("hotel code is required")
	}

	if code := r.fromHotelDetails(ctx, hotelCode); code != "" {
		r.Logger.Debug("booking code resolved from hotel details",
			zap.String("hotelCode", hotelCode))
		return code, nil
	}

	hasContext := query != nil && query.CheckIn != "" && query.CheckOut != "" && len(alloc) > 0
	if hasContext {
		code, err := r.fromSearch(ctx, hotelCode, query.CheckIn, query.CheckOut, alloc)
		if err != nil {
			r.Logger.Warn("booking code search failed",
				zap.String("hotelCode", hotelCode), zap.Error(err))
			return "", ErrNoBookingCode
		}
		if code != "" {
			return code, nil
		}
		return "", ErrNoBookingCode
	}

	// No usable query context: fall back to system defaults.
	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	code, err := r.fromSearch(ctx, hotelCode, today, tomorrow, search.DefaultAllocation())
	if err != nil {
		r.Logger.Warn("default-date booking code search failed",
			zap.String("hotelCode", hotelCode), zap.Error(err))
		return "", ErrNoBookingCode
	}
	if code != "" {
		return code, nil
	}
	return "", ErrNoBookingCode
}

// fromHotelDetails is the fast path. Any failure here just moves resolution
// on to the search fallback.
func (r *DefaultCodeResolver) fromHotelDetails(ctx context.Context, hotelCode string) string {
	details, err := r.GDS.HotelDetails(ctx, hotelCode)
	if err != nil {
		return ""
	}
	for _, room := range details.Rooms {
		if room.BookingCode != "" {
			return room.BookingCode
		}
	}
	return ""
}

// fromSearch issues a single-hotel availability search under the resolve
// timeout. Cancelling the context aborts the upstream call at the transport
// level; the timeout is the only cancellation mechanism.
func (r *DefaultCodeResolver) fromSearch(ctx context.Context, hotelCode, checkIn, checkOut string, alloc models.RoomAllocation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.ResolveTimeout)
	defer cancel()

	resp, err := r.GDS.SearchHotels(ctx, gds.SearchRequest{
		CheckIn:               checkIn,
		CheckOut:              checkOut,
		HotelCodes:            hotelCode,
		GuestNationality:      config.AppConfig.GuestNationality,
		PreferredCurrencyCode: config.AppConfig.Currency,
		PaxRooms:              search.ToPaxRooms(alloc),
		IsDetailResponse:      true,
		ResponseTime:          30,
	})
	if err != nil {
		return "", err
	}
	return bookingCodeFromResults(resp.HotelResult, hotelCode), nil
}

// bookingCodeFromResults finds the requested hotel by exact code match and
// pulls the booking code from its room data. The wire layer has already
// normalized both the single-object and array shapes of Rooms.
func bookingCodeFromResults(results gds.HotelResultSet, hotelCode string) string {
	for _, h := range results {
		if h.HotelCode != hotelCode {
			continue
		}
		for _, room := range h.Rooms {
			if room.BookingCode != "" {
				return room.BookingCode
			}
		}
	}
	return ""
}
