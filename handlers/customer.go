package handlers

import (
	"net/http"

	"stayhub/gds"
	"stayhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler forwards customer profile updates upstream.
type CustomerHandler struct {
	GDS    *gds.Client
	Logger *zap.Logger
}

func NewCustomerHandler(client *gds.Client, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{GDS: client, Logger: logger}
}

// UpdateCustomer pushes a partial profile update. Only fields present in
// the request body are sent upstream.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var update gds.CustomerUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	customerID := c.Param("customerID")
	if err := h.GDS.UpdateCustomer(c.Request.Context(), customerID, update); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "customer update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
