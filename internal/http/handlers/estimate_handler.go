// README: Delivery cost estimate handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier/internal/modules/estimate"
)

type EstimateHandler struct {
	estimate *estimate.Service
}

func NewEstimateHandler(svc *estimate.Service) *EstimateHandler {
	return &EstimateHandler{estimate: svc}
}

type calculateReq struct {
	PickupAddress    string `json:"pickup_address" binding:"required"`
	DeliveryAddress  string `json:"delivery_address" binding:"required"`
	VehicleType      string `json:"vehicle_type" binding:"required"`
	DeliveryCategory string `json:"delivery_category" binding:"required"`
}

// Root handles GET /.
func (h *EstimateHandler) Root(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"message": "Delivery Cost Calculator API"})
}

// Calculate handles POST /api/calculate.
func (h *EstimateHandler) Calculate(c *gin.Context) {
	var req calculateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.estimate.Compute(c.Request.Context(), estimate.Request{
		PickupAddress:    req.PickupAddress,
		DeliveryAddress:  req.DeliveryAddress,
		VehicleType:      req.VehicleType,
		DeliveryCategory: req.DeliveryCategory,
	})
	if err != nil {
		writeEstimateError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, result)
}
