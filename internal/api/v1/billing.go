package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guardbill/guardbill/internal/api/dto"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/service"
)

type BillingHandler struct {
	service service.BillingService
	log     *logger.Logger
}

func NewBillingHandler(service service.BillingService, log *logger.Logger) *BillingHandler {
	return &BillingHandler{service: service, log: log}
}

// @Summary Preview billing aggregation
// @Description Compute cost line items for a location and period without persisting them
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.RunAggregationRequest true "Aggregation parameters"
// @Success 200 {object} dto.AggregationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /billing/preview [post]
func (h *BillingHandler) PreviewAggregation(c *gin.Context) {
	var req dto.RunAggregationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	items, err := h.service.RunAggregation(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to run billing aggregation", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAggregationResponse(items))
}
