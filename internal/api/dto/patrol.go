package dto

import (
	"time"

	domainPatrol "github.com/guardbill/guardbill/internal/domain/patrol"
	"github.com/guardbill/guardbill/internal/types"
	"github.com/guardbill/guardbill/internal/validator"
)

// CreatePatrolRequest creates a new patrol route at a location.
type CreatePatrolRequest struct {
	LocationID      string `json:"location_id" validate:"required"`
	Name            string `json:"name" validate:"required"`
	CheckpointCount int    `json:"checkpoint_count" validate:"gte=0"`
}

func (r *CreatePatrolRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// AddPatrolLogRequest records a completed pass of a patrol route.
type AddPatrolLogRequest struct {
	GuardID  string    `json:"guard_id,omitempty"`
	LoggedAt time.Time `json:"logged_at" validate:"required"`
}

func (r *AddPatrolLogRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// PatrolResponse is the API shape of a patrol route.
type PatrolResponse struct {
	ID              string       `json:"id"`
	LocationID      string       `json:"location_id"`
	Name            string       `json:"name"`
	CheckpointCount int          `json:"checkpoint_count"`
	Status          types.Status `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// PatrolLogResponse is the API shape of a patrol log entry.
type PatrolLogResponse struct {
	ID       string    `json:"id"`
	PatrolID string    `json:"patrol_id"`
	GuardID  string    `json:"guard_id,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

// ListPatrolsResponse is the response for listing patrols.
type ListPatrolsResponse struct {
	Items []PatrolResponse `json:"items"`
	Total int              `json:"total"`
}

// NewPatrolResponse converts a domain patrol to its API shape.
func NewPatrolResponse(p *domainPatrol.Patrol) *PatrolResponse {
	return &PatrolResponse{
		ID:              p.ID,
		LocationID:      p.LocationID,
		Name:            p.Name,
		CheckpointCount: p.CheckpointCount,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// NewPatrolLogResponse converts a domain log entry to its API shape.
func NewPatrolLogResponse(e *domainPatrol.LogEntry) *PatrolLogResponse {
	return &PatrolLogResponse{
		ID:       e.ID,
		PatrolID: e.PatrolID,
		GuardID:  e.GuardID,
		LoggedAt: e.LoggedAt,
	}
}
