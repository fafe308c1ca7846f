package service

import (
	"github.com/guardbill/guardbill/internal/config"
	"github.com/guardbill/guardbill/internal/domain/callout"
	"github.com/guardbill/guardbill/internal/domain/invoice"
	"github.com/guardbill/guardbill/internal/domain/location"
	"github.com/guardbill/guardbill/internal/domain/patrol"
	"github.com/guardbill/guardbill/internal/domain/shift"
	"github.com/guardbill/guardbill/internal/logger"
)

// ServiceParams holds the common dependencies injected into every service.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	LocationRepo location.Repository
	ShiftRepo    shift.Repository
	PatrolRepo   patrol.Repository
	CalloutRepo  callout.Repository
	InvoiceRepo  invoice.Repository
}
