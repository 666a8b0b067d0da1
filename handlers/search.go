package handlers

import (
	"errors"
	"net/http"

	"stayhub/models"
	"stayhub/services/booking"
	"stayhub/services/geo"
	"stayhub/services/search"
	"stayhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves destination searches.
type SearchHandler struct {
	Search   search.Service
	Sessions booking.SessionService
	Logger   *zap.Logger
}

func NewSearchHandler(searchSvc search.Service, sessions booking.SessionService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{Search: searchSvc, Sessions: sessions, Logger: logger}
}

type searchRequest struct {
	SessionID string `json:"sessionId"`
	models.SearchQuery
}

// SearchHotels runs a destination search. Validation errors surface
// directly with no retry; an unresolvable destination gets an explicit
// retry action; empty result sets are empty states, not errors. When a
// booking session is supplied, the query and its allocation are attached
// to it so later resolution and finalize reuse the exact same manifest.
func (h *SearchHandler) SearchHotels(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Search.Search(c.Request.Context(), req.SearchQuery)
	if err != nil {
		var validationErr *search.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "retryable": false})
			return
		}
		if errors.Is(err, geo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "retryable": true})
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "hotel search failed", err.Error())
		return
	}

	if req.SessionID != "" {
		session, err := h.Sessions.Get(c.Request.Context(), req.SessionID)
		if err == nil {
			session.Query = &req.SearchQuery
			session.Allocation = result.Allocation
			if err := h.Sessions.Save(c.Request.Context(), session); err != nil {
				h.Logger.Warn("failed to attach query to session",
					zap.String("sessionId", req.SessionID), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, result)
}
