package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"stayhub/config"
	bookingsRepo "stayhub/database/repository/bookings"
	"stayhub/gds"
	"stayhub/models"
	"stayhub/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FinalizeInput is everything the finalize step needs beyond the session.
type FinalizeInput struct {
	BookingCode string
	TotalFare   float64
	Currency    string
	Email       string
	Phone       string
	HotelCode   string
	CheckIn     string
	CheckOut    string
	Manifest    []models.RoomManifest
}

// FinalizeResult is the outcome of a successful finalize. Warnings carry
// soft failures (email dispatch, local persistence) that never roll back
// the booking itself.
type FinalizeResult struct {
	Record      models.BookingRecord `json:"record"`
	EmailQueued bool                 `json:"emailQueued"`
	Warnings    []string             `json:"warnings,omitempty"`
}

// Finalizer converts a confirmed hold into a booked reservation.
type Finalizer interface {
	Finalize(ctx context.Context, session *models.BookingSession, input FinalizeInput) (*FinalizeResult, error)
}

// DefaultFinalizer implements Finalizer.
type DefaultFinalizer struct {
	GDS      *gds.Client
	Records  bookingsRepo.BookingRecordRepository
	Sessions SessionService
	Notifier notification.ConfirmationNotifier
	Logger   *zap.Logger
}

// Finalize submits the voucher booking and interprets both response layers:
// a non-success outer status is a hard failure, and an outer success whose
// BookingStatus is "Failed" is ALSO a failure — the provider returns
// HTTP-success with logically failed bookings. Provider descriptions are
// surfaced verbatim since they are often actionable. On success the
// session's booking reference is consumed, the confirmation email is
// enqueued best-effort and a local record is persisted; neither side effect
// can fail the booking.
func (f *DefaultFinalizer) Finalize(ctx context.Context, session *models.BookingSession, input FinalizeInput) (*FinalizeResult, error) {
	if session.BookingReferenceID == "" || session.ReferenceConsumed {
		return nil, ErrReferenceConsumed
	}
	if input.BookingCode == "" {
		return nil, fmt.Errorf("booking code is required")
	}
	if len(input.Manifest) == 0 {
		return nil, fmt.Errorf("guest manifest is required")
	}

	clientRef := GenerateClientReferenceID()
	phone, err := strconv.ParseInt(input.Phone, 10, 64)
	if err != nil && input.Phone != "" {
		f.Logger.Warn("discarding unparseable phone number",
			zap.String("sessionId", session.SessionID), zap.String("phone", input.Phone))
		phone = 0
	}

	req := gds.BookRequest{
		BookingCode:        input.BookingCode,
		CustomerDetails:    toCustomerDetails(input.Manifest),
		BookingType:        "Voucher",
		ClientReferenceId:  clientRef,
		BookingReferenceId: session.BookingReferenceID,
		PaymentMode:        "Limit",
		GuestNationality:   config.AppConfig.GuestNationality,
		TotalFare:          input.TotalFare,
		EmailId:            input.Email,
		PhoneNumber:        phone,
	}

	resp, err := f.GDS.Book(ctx, req)
	if err != nil {
		var statusErr *gds.StatusError
		if errors.As(err, &statusErr) {
			return nil, fmt.Errorf("booking failed: %s", statusErr.Body)
		}
		return nil, fmt.Errorf("booking request failed: %w", err)
	}

	code := string(resp.Status.Code)
	if code != "200" && code != "201" {
		return nil, fmt.Errorf("booking failed: %s", resp.Status.Text())
	}
	if resp.BookingStatus == "Failed" {
		return nil, &LogicalFailureError{
			Description:        resp.Status.Text(),
			ConfirmationNumber: resp.ConfirmationNumber,
		}
	}

	result := &FinalizeResult{
		Record: models.BookingRecord{
			ID:                 uuid.New().String(),
			ConfirmationNumber: resp.ConfirmationNumber,
			BookingID:          resp.BookingId,
			ClientReferenceID:  clientRef,
			BookingReferenceID: session.BookingReferenceID,
			CustomerID:         session.CustomerID,
			HotelCode:          input.HotelCode,
			CheckIn:            input.CheckIn,
			CheckOut:           input.CheckOut,
			Manifest:           input.Manifest,
			TotalFare:          input.TotalFare,
			Currency:           input.Currency,
			CreatedAt:          time.Now(),
		},
	}

	// The reference is spent the moment the provider confirms; the next
	// attempt mints a fresh one.
	if err := f.Sessions.ConsumeReference(ctx, session); err != nil {
		f.Logger.Error("failed to consume booking reference",
			zap.String("sessionId", session.SessionID), zap.Error(err))
		result.Warnings = append(result.Warnings, "booking reference could not be invalidated")
	}

	if resp.ConfirmationNumber != "" && input.Email != "" {
		err := f.Notifier.EnqueueConfirmation(ctx, models.ConfirmationEmail{
			CustomerID:         session.CustomerID,
			ConfirmationNumber: resp.ConfirmationNumber,
			BookingReferenceID: result.Record.BookingReferenceID,
			Email:              input.Email,
		})
		if err != nil {
			f.Logger.Warn("failed to enqueue confirmation email",
				zap.String("confirmationNumber", resp.ConfirmationNumber), zap.Error(err))
			result.Warnings = append(result.Warnings, "confirmation email could not be sent")
		} else {
			result.EmailQueued = true
		}
	} else {
		result.Warnings = append(result.Warnings, "confirmation email skipped, missing confirmation number or email")
	}

	if _, err := f.Records.Create(ctx, result.Record); err != nil {
		f.Logger.Error("failed to persist booking record",
			zap.String("confirmationNumber", resp.ConfirmationNumber), zap.Error(err))
		result.Warnings = append(result.Warnings, "booking record could not be persisted locally")
	}

	f.Logger.Info("booking finalized",
		zap.String("confirmationNumber", resp.ConfirmationNumber),
		zap.String("bookingId", resp.BookingId),
		zap.String("bookingReferenceId", result.Record.BookingReferenceID))
	return result, nil
}

// toCustomerDetails converts room manifests into the provider's wire shape,
// one CustomerDetails entry per room, guests in manifest order (primary
// guest first in room 1).
func toCustomerDetails(manifest []models.RoomManifest) []gds.CustomerDetail {
	details := make([]gds.CustomerDetail, 0, len(manifest))
	for _, room := range manifest {
		names := make([]gds.CustomerName, 0, len(room.Guests))
		for _, g := range room.Guests {
			names = append(names, gds.CustomerName{
				Title:     g.Title,
				FirstName: g.FirstName,
				LastName:  g.LastName,
				Type:      g.Type,
			})
		}
		details = append(details, gds.CustomerDetail{CustomerNames: names})
	}
	return details
}

// AllocationForGuests derives a single-room allocation covering the primary
// guest plus the supplied additional guests, for bookings made without prior
// search context. Ages are unknown at this point and the manifest only needs
// counts.
func AllocationForGuests(additional []models.GuestName) models.RoomAllocation {
	adults, children := 1, 0
	for _, g := range additional {
		if g.Type == "Child" {
			children++
		} else {
			adults++
		}
	}
	return models.RoomAllocation{{Adults: adults, Children: children, ChildrenAges: []int{}}}
}

// BuildRoomManifests distributes the primary guest and any additional
// guests across rooms following the allocation: adults fill each room's
// adult slots in order (primary first, room 1 first), children likewise.
// The allocation used here must be the same one the search and resolve
// steps used.
func BuildRoomManifests(primary models.GuestName, additional []models.GuestName, alloc models.RoomAllocation) []models.RoomManifest {
	var adults, children []models.GuestName
	adults = append(adults, primary)
	for _, g := range additional {
		if g.Type == "Child" {
			children = append(children, g)
		} else {
			adults = append(adults, g)
		}
	}

	manifests := make([]models.RoomManifest, 0, len(alloc))
	for _, room := range alloc {
		var guests []models.GuestName
		for i := 0; i < room.Adults && len(adults) > 0; i++ {
			guests = append(guests, adults[0])
			adults = adults[1:]
		}
		for i := 0; i < room.Children && len(children) > 0; i++ {
			guests = append(guests, children[0])
			children = children[1:]
		}
		manifests = append(manifests, models.RoomManifest{Guests: guests})
	}
	return manifests
}
