package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guardbill/guardbill/internal/api/dto"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/service"
)

type PatrolHandler struct {
	service service.PatrolService
	log     *logger.Logger
}

func NewPatrolHandler(service service.PatrolService, log *logger.Logger) *PatrolHandler {
	return &PatrolHandler{service: service, log: log}
}

// @Summary Create a new patrol route
// @Description Create a patrol route at a location
// @Tags Patrols
// @Accept json
// @Produce json
// @Param patrol body dto.CreatePatrolRequest true "Patrol"
// @Success 201 {object} dto.PatrolResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /patrols [post]
func (h *PatrolHandler) CreatePatrol(c *gin.Context) {
	var req dto.CreatePatrolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreatePatrol(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to create patrol", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a patrol by ID
// @Description Get a patrol route by ID
// @Tags Patrols
// @Produce json
// @Param id path string true "Patrol ID"
// @Success 200 {object} dto.PatrolResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /patrols/{id} [get]
func (h *PatrolHandler) GetPatrol(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Patrol ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetPatrol(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to get patrol", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List patrols
// @Description List patrol routes for a location
// @Tags Patrols
// @Produce json
// @Param location_id query string true "Location ID"
// @Success 200 {object} dto.ListPatrolsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /patrols [get]
func (h *PatrolHandler) ListPatrols(c *gin.Context) {
	resp, err := h.service.ListPatrols(c.Request.Context(), c.Query("location_id"))
	if err != nil {
		h.log.Error("Failed to list patrols", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a patrol
// @Description Delete a patrol route
// @Tags Patrols
// @Param id path string true "Patrol ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /patrols/{id} [delete]
func (h *PatrolHandler) DeletePatrol(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Patrol ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.DeletePatrol(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to delete patrol", "error", err)
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Record a patrol hit
// @Description Append a completed-round log entry to a patrol
// @Tags Patrols
// @Accept json
// @Produce json
// @Param id path string true "Patrol ID"
// @Param log body dto.AddPatrolLogRequest true "Log entry"
// @Success 201 {object} dto.PatrolLogResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /patrols/{id}/logs [post]
func (h *PatrolHandler) AddPatrolLog(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Patrol ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.AddPatrolLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.AddPatrolLog(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("Failed to add patrol log", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
