package handlers

import (
	"net/http"

	bookingsRepo "stayhub/database/repository/bookings"
	"stayhub/gds"
	"stayhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RecordsHandler serves persisted booking records and post-booking
// cancellation.
type RecordsHandler struct {
	Records bookingsRepo.BookingRecordRepository
	GDS     *gds.Client
	Logger  *zap.Logger
}

func NewRecordsHandler(records bookingsRepo.BookingRecordRepository, client *gds.Client, logger *zap.Logger) *RecordsHandler {
	return &RecordsHandler{Records: records, GDS: client, Logger: logger}
}

// GetBooking returns one booking record by its id.
func (h *RecordsHandler) GetBooking(c *gin.Context) {
	record, err := h.Records.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetBookingByReference returns the booking record for a booking
// reference id.
func (h *RecordsHandler) GetBookingByReference(c *gin.Context) {
	ref := c.Query("ref")
	if ref == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "query parameter 'ref' is required")
		return
	}
	record, err := h.Records.GetByReference(c.Request.Context(), ref)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListCustomerBookings returns every booking record for a customer,
// newest first.
func (h *RecordsHandler) ListCustomerBookings(c *gin.Context) {
	records, err := h.Records.GetByCustomerID(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// CancelBooking cancels a confirmed booking upstream. The local record is
// flagged afterwards; a flag failure is logged and does not undo the
// upstream cancellation.
func (h *RecordsHandler) CancelBooking(c *gin.Context) {
	confirmationNumber := c.Param("confirmationNumber")

	resp, err := h.GDS.Cancel(c.Request.Context(), confirmationNumber)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "cancellation request failed", err.Error())
		return
	}
	if string(resp.Status.Code) != gds.CodeSuccess {
		c.JSON(http.StatusConflict, gin.H{
			"error":  "cancellation rejected",
			"detail": resp.Status.Text(),
		})
		return
	}

	if err := h.Records.MarkCancelled(c.Request.Context(), confirmationNumber); err != nil {
		h.Logger.Warn("booking cancelled upstream but local record not flagged",
			zap.String("confirmationNumber", confirmationNumber), zap.Error(err))
	}

	c.JSON(http.StatusOK, resp)
}
