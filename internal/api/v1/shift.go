package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guardbill/guardbill/internal/api/dto"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/service"
)

type ShiftHandler struct {
	service service.ShiftService
	log     *logger.Logger
}

func NewShiftHandler(service service.ShiftService, log *logger.Logger) *ShiftHandler {
	return &ShiftHandler{service: service, log: log}
}

// @Summary Create a new shift
// @Description Schedule a shift at a location
// @Tags Shifts
// @Accept json
// @Produce json
// @Param shift body dto.CreateShiftRequest true "Shift"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateShift(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to create shift", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a shift by ID
// @Description Get a shift by ID
// @Tags Shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Shift ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetShift(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to get shift", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List shifts
// @Description List shifts for a location, optionally bounded by a date range
// @Tags Shifts
// @Produce json
// @Param location_id query string true "Location ID"
// @Param start_date query string false "Range start (RFC3339)"
// @Param end_date query string false "Range end (RFC3339)"
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	var req dto.ListShiftsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListShifts(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to list shifts", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a shift's status
// @Description Append a status entry and optionally record clock times
// @Tags Shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param status body dto.UpdateShiftStatusRequest true "Status update"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /shifts/{id}/status [post]
func (h *ShiftHandler) UpdateShiftStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Shift ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateShiftStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateShiftStatus(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("Failed to update shift status", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a shift
// @Description Delete a shift
// @Tags Shifts
// @Param id path string true "Shift ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Shift ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.DeleteShift(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to delete shift", "error", err)
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
