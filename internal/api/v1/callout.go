package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guardbill/guardbill/internal/api/dto"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/service"
)

type CalloutHandler struct {
	service service.CalloutService
	log     *logger.Logger
}

func NewCalloutHandler(service service.CalloutService, log *logger.Logger) *CalloutHandler {
	return &CalloutHandler{service: service, log: log}
}

// @Summary Create a new callout
// @Description Record an incident callout at a location
// @Tags Callouts
// @Accept json
// @Produce json
// @Param callout body dto.CreateCalloutRequest true "Callout"
// @Success 201 {object} dto.CalloutResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /callouts [post]
func (h *CalloutHandler) CreateCallout(c *gin.Context) {
	var req dto.CreateCalloutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCallout(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to create callout", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a callout by ID
// @Description Get a callout by ID
// @Tags Callouts
// @Produce json
// @Param id path string true "Callout ID"
// @Success 200 {object} dto.CalloutResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /callouts/{id} [get]
func (h *CalloutHandler) GetCallout(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Callout ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetCallout(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to get callout", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List callouts
// @Description List callouts for a location, optionally bounded by a date range
// @Tags Callouts
// @Produce json
// @Param location_id query string true "Location ID"
// @Param start_date query string false "Range start (RFC3339)"
// @Param end_date query string false "Range end (RFC3339)"
// @Success 200 {object} dto.ListCalloutsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /callouts [get]
func (h *CalloutHandler) ListCallouts(c *gin.Context) {
	var req dto.ListCalloutsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListCallouts(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to list callouts", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a callout's status
// @Description Append a status entry with optional response window timestamps
// @Tags Callouts
// @Accept json
// @Produce json
// @Param id path string true "Callout ID"
// @Param status body dto.UpdateCalloutStatusRequest true "Status update"
// @Success 200 {object} dto.CalloutResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /callouts/{id}/status [post]
func (h *CalloutHandler) UpdateCalloutStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Callout ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateCalloutStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCalloutStatus(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("Failed to update callout status", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a callout
// @Description Delete a callout
// @Tags Callouts
// @Param id path string true "Callout ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /callouts/{id} [delete]
func (h *CalloutHandler) DeleteCallout(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Callout ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.DeleteCallout(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to delete callout", "error", err)
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
