package gds

import (
	"context"
	"errors"
	"net/http"
)

// Prebook places a temporary hold on a booking code. The code is consumed
// by this call regardless of the outcome.
func (c *Client) Prebook(ctx context.Context, bookingCode, paymentMode string) (*PrebookResponse, error) {
	req := struct {
		BookingCode string `json:"BookingCode"`
		PaymentMode string `json:"PaymentMode"`
	}{BookingCode: bookingCode, PaymentMode: paymentMode}

	var resp PrebookResponse
	err := c.do(ctx, http.MethodPost, "/hotel-prebook", req, &resp)
	if errors.Is(err, errNullBody) {
		return &PrebookResponse{
			Status: Status{Code: "400", Description: "No prebook response received"},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Book finalizes a held booking code into a confirmed reservation.
func (c *Client) Book(ctx context.Context, req BookRequest) (*BookResponse, error) {
	var resp BookResponse
	if err := c.do(ctx, http.MethodPost, "/hotel-book", req, &resp); err != nil {
		if errors.Is(err, errNullBody) {
			return nil, errors.New("no booking response received")
		}
		return nil, err
	}
	return &resp, nil
}

// Cancel cancels a confirmed booking by its confirmation number.
func (c *Client) Cancel(ctx context.Context, confirmationNumber string) (*CancelResponse, error) {
	req := struct {
		ConfirmationNumber string `json:"ConfirmationNumber"`
	}{ConfirmationNumber: confirmationNumber}

	var resp CancelResponse
	err := c.do(ctx, http.MethodPost, "/hotel-cancel", req, &resp)
	if errors.Is(err, errNullBody) {
		return &CancelResponse{
			Status: Status{Code: "400", Description: "No cancel response received"},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendConfirmation dispatches the booking confirmation email.
func (c *Client) SendConfirmation(ctx context.Context, req ConfirmationRequest) (*ConfirmationResponse, error) {
	var resp ConfirmationResponse
	if err := c.do(ctx, http.MethodPost, "/confirmation/send", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCustomer pushes a partial customer profile update upstream.
func (c *Client) UpdateCustomer(ctx context.Context, customerID string, update CustomerUpdate) error {
	return c.do(ctx, http.MethodPut, "/customer/"+customerID, update, nil)
}
