package handlers

import (
	"errors"
	"net/http"

	"stayhub/models"
	"stayhub/services/booking"
	"stayhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the resolve → hold → finalize chain for one
// booking session.
type BookingHandler struct {
	Sessions  booking.SessionService
	Resolver  booking.CodeResolver
	Prebook   booking.PrebookCoordinator
	Finalizer booking.Finalizer
	Logger    *zap.Logger

	resolveGuard *inflightGuard
}

func NewBookingHandler(
	sessions booking.SessionService,
	resolver booking.CodeResolver,
	prebook booking.PrebookCoordinator,
	finalizer booking.Finalizer,
	logger *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		Sessions:     sessions,
		Resolver:     resolver,
		Prebook:      prebook,
		Finalizer:    finalizer,
		Logger:       logger,
		resolveGuard: newInflightGuard(),
	}
}

// CreateSession starts a booking session for a customer and mints its
// booking reference.
func (h *BookingHandler) CreateSession(c *gin.Context) {
	var input struct {
		CustomerID string `json:"customerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Sessions.Create(c.Request.Context(), input.CustomerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// ResolveBookingCode discovers a holdable booking code for a hotel using
// the session's search context. Rapid repeated calls for the same
// session+hotel pair are rejected while one is in flight; the guard is
// released on every path.
func (h *BookingHandler) ResolveBookingCode(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		HotelCode string `json:"hotelCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	guardKey := sessionID + ":" + input.HotelCode
	if !h.resolveGuard.tryAcquire(guardKey) {
		c.JSON(http.StatusConflict, gin.H{"error": "booking code resolution already in progress"})
		return
	}
	defer h.resolveGuard.release(guardKey)

	session, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	code, err := h.Resolver.Resolve(c.Request.Context(), input.HotelCode, session.Query, session.Allocation)
	if err != nil {
		if errors.Is(err, booking.ErrNoBookingCode) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no booking code available", "retryable": true})
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "booking code resolution failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingCode": code})
}

// PlaceHold prebooks a resolved booking code. A rejected hold is terminal:
// the response tells the caller to resolve a fresh code.
func (h *BookingHandler) PlaceHold(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		BookingCode string `json:"bookingCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	hold, err := h.Prebook.Hold(c.Request.Context(), input.BookingCode)
	if err != nil {
		if errors.Is(err, booking.ErrHoldRejected) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "prebook hold rejected, resolve a fresh booking code",
				"hold":      hold,
				"retryable": false,
			})
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "prebook request failed", err.Error())
		return
	}

	session.Hold = hold
	if err := h.Sessions.Save(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, hold)
}

type confirmRequest struct {
	BookingCode string                `json:"bookingCode"`
	TotalFare   float64               `json:"totalFare"`
	Currency    string                `json:"currency"`
	Email       string                `json:"email" binding:"required"`
	Phone       string                `json:"phone"`
	HotelCode   string                `json:"hotelCode"`
	Primary     models.GuestName      `json:"primary" binding:"required"`
	Additional  []models.GuestName    `json:"additionalGuests"`
	Manifest    []models.RoomManifest `json:"manifest"`
}

// ConfirmBooking finalizes the session's hold into a confirmed
// reservation. The guest manifest follows the session's allocation; the
// provider's failure descriptions pass through verbatim.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input confirmRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	// A reference consumed by an earlier booking on this session is replaced
	// before the next attempt; a live one is kept as is.
	if _, err := h.Sessions.EnsureActiveReference(c.Request.Context(), session); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to refresh booking reference", err.Error())
		return
	}

	bookingCode := input.BookingCode
	totalFare := input.TotalFare
	currency := input.Currency
	if session.Hold != nil && session.Hold.Status == models.HoldConfirmed {
		if bookingCode == "" {
			bookingCode = session.Hold.BookingCode
		}
		if totalFare == 0 {
			totalFare = session.Hold.TotalAmount
		}
		if currency == "" {
			currency = session.Hold.Currency
		}
	}

	manifest := input.Manifest
	if len(manifest) == 0 {
		alloc := session.Allocation
		if len(alloc) == 0 {
			alloc = booking.AllocationForGuests(input.Additional)
		}
		manifest = booking.BuildRoomManifests(input.Primary, input.Additional, alloc)
		if got, want := manifestGuestCount(manifest), 1+len(input.Additional); got != want {
			utils.JSONError(c, http.StatusBadRequest, "invalid input",
				"guest list does not fit the session's room allocation")
			return
		}
	}

	finalizeInput := booking.FinalizeInput{
		BookingCode: bookingCode,
		TotalFare:   totalFare,
		Currency:    currency,
		Email:       input.Email,
		Phone:       input.Phone,
		HotelCode:   input.HotelCode,
		Manifest:    manifest,
	}
	if session.Query != nil {
		finalizeInput.CheckIn = session.Query.CheckIn
		finalizeInput.CheckOut = session.Query.CheckOut
	}

	result, err := h.Finalizer.Finalize(c.Request.Context(), session, finalizeInput)
	if err != nil {
		if errors.Is(err, booking.ErrReferenceConsumed) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "booking reference already consumed, start a new booking attempt",
			})
			return
		}
		var logical *booking.LogicalFailureError
		if errors.As(err, &logical) {
			// The confirmation number of a logically failed booking is
			// still useful to support staff.
			c.JSON(http.StatusBadGateway, gin.H{
				"error":              logical.Error(),
				"confirmationNumber": logical.ConfirmationNumber,
				"logicalFailure":     true,
			})
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "booking failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

func manifestGuestCount(manifest []models.RoomManifest) int {
	total := 0
	for _, room := range manifest {
		total += len(room.Guests)
	}
	return total
}

// CancelSession abandons a booking session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Sessions.Delete(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
