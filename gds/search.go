package gds

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// SearchHotels runs a live availability search. A null response body from
// the provider means "no results" and is mapped to a synthetic 204 status
// rather than an error.
func (c *Client) SearchHotels(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	var resp SearchResponse
	err := c.do(ctx, http.MethodPost, "/hotel-search", req, &resp)
	if errors.Is(err, errNullBody) {
		return &SearchResponse{
			Status: Status{
				Code:        CodeNoResults,
				Description: "No results found for the requested search",
			},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	c.logger.Debug("hotel search completed",
		zap.String("status", string(resp.Status.Code)),
		zap.Int("hotels", len(resp.HotelResult)))
	return &resp, nil
}

// HotelDetails fetches the static detail record for one hotel. The provider
// expects the hotel code as a number.
func (c *Client) HotelDetails(ctx context.Context, hotelCode string) (*HotelDetailsResponse, error) {
	code, err := strconv.Atoi(hotelCode)
	if err != nil {
		return nil, errors.New("hotel code is not numeric: " + hotelCode)
	}
	req := struct {
		Hotelcodes int    `json:"Hotelcodes"`
		Language   string `json:"Language"`
	}{Hotelcodes: code, Language: "en"}

	var resp HotelDetailsResponse
	if err := c.do(ctx, http.MethodPost, "/hotel-details", req, &resp); err != nil {
		if errors.Is(err, errNullBody) {
			return &HotelDetailsResponse{}, nil
		}
		return nil, err
	}
	return &resp, nil
}

// RoomDetails fetches full room detail for a booking code. The payload is
// passed through untouched; only the room-details view renders it.
func (c *Client) RoomDetails(ctx context.Context, bookingCode string) (json.RawMessage, error) {
	req := struct {
		BookingCode string `json:"BookingCode"`
	}{BookingCode: bookingCode}

	var resp json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/hotel-room", req, &resp); err != nil {
		if errors.Is(err, errNullBody) {
			return nil, errors.New("no room details available for booking code")
		}
		return nil, err
	}
	return resp, nil
}
