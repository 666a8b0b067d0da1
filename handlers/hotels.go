package handlers

import (
	"net/http"

	"stayhub/gds"
	"stayhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HotelsHandler serves hotel and room detail lookups.
type HotelsHandler struct {
	GDS    *gds.Client
	Logger *zap.Logger
}

func NewHotelsHandler(client *gds.Client, logger *zap.Logger) *HotelsHandler {
	return &HotelsHandler{GDS: client, Logger: logger}
}

// GetHotelDetails returns the static detail record for one hotel.
func (h *HotelsHandler) GetHotelDetails(c *gin.Context) {
	details, err := h.GDS.HotelDetails(c.Request.Context(), c.Param("hotelCode"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch hotel details", err.Error())
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetRoomDetails returns the full room detail for a booking code. The
// provider payload is passed through untouched.
func (h *HotelsHandler) GetRoomDetails(c *gin.Context) {
	var input struct {
		BookingCode string `json:"bookingCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	raw, err := h.GDS.RoomDetails(c.Request.Context(), input.BookingCode)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch room details", err.Error())
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}
