package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guardbill/guardbill/internal/api/dto"
	ierr "github.com/guardbill/guardbill/internal/errors"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/service"
)

type LocationHandler struct {
	service service.LocationService
	log     *logger.Logger
}

func NewLocationHandler(service service.LocationService, log *logger.Logger) *LocationHandler {
	return &LocationHandler{service: service, log: log}
}

// @Summary Create a new location
// @Description Create a guarded location with its billing rates
// @Tags Locations
// @Accept json
// @Produce json
// @Param location body dto.CreateLocationRequest true "Location"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateLocation(c.Request.Context(), &req)
	if err != nil {
		h.log.Error("Failed to create location", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a location by ID
// @Description Get a location by ID
// @Tags Locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Location ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetLocation(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to get location", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List locations
// @Description List all locations for the tenant
// @Tags Locations
// @Produce json
// @Success 200 {object} dto.ListLocationsResponse
// @Router /locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	resp, err := h.service.ListLocations(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list locations", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a location
// @Description Update a location's name, address or billing rates
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param location body dto.UpdateLocationRequest true "Location"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Location ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateLocation(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Error("Failed to update location", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a location
// @Description Delete a location
// @Tags Locations
// @Param id path string true "Location ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Location ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.DeleteLocation(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to delete location", "error", err)
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
