package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/guardbill/guardbill/internal/api/v1"
	"github.com/guardbill/guardbill/internal/config"
	"github.com/guardbill/guardbill/internal/logger"
	"github.com/guardbill/guardbill/internal/rest/middleware"
	"github.com/guardbill/guardbill/internal/service"
)

// Handlers groups the API handlers mounted by the router.
type Handlers struct {
	Location *v1.LocationHandler
	Shift    *v1.ShiftHandler
	Patrol   *v1.PatrolHandler
	Callout  *v1.CalloutHandler
	Invoice  *v1.InvoiceHandler
	Billing  *v1.BillingHandler
}

// NewHandlers builds the handler set from the service layer.
func NewHandlers(params service.ServiceParams) *Handlers {
	log := params.Logger
	billing := service.NewBillingService(params)
	return &Handlers{
		Location: v1.NewLocationHandler(service.NewLocationService(params), log),
		Shift:    v1.NewShiftHandler(service.NewShiftService(params), log),
		Patrol:   v1.NewPatrolHandler(service.NewPatrolService(params), log),
		Callout:  v1.NewCalloutHandler(service.NewCalloutService(params), log),
		Invoice:  v1.NewInvoiceHandler(service.NewInvoiceService(params, billing), log),
		Billing:  v1.NewBillingHandler(billing, log),
	}
}

// NewRouter builds the gin engine with the standard middleware chain and all
// API routes mounted.
func NewRouter(handlers *Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.ContextMiddleware(),
		middleware.LoggingMiddleware(log),
		middleware.MetricsMiddleware(),
		middleware.ErrorMiddleware(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/v1")

	locations := api.Group("/locations")
	{
		locations.POST("", handlers.Location.CreateLocation)
		locations.GET("", handlers.Location.ListLocations)
		locations.GET("/:id", handlers.Location.GetLocation)
		locations.PUT("/:id", handlers.Location.UpdateLocation)
		locations.DELETE("/:id", handlers.Location.DeleteLocation)
	}

	shifts := api.Group("/shifts")
	{
		shifts.POST("", handlers.Shift.CreateShift)
		shifts.GET("", handlers.Shift.ListShifts)
		shifts.GET("/:id", handlers.Shift.GetShift)
		shifts.POST("/:id/status", handlers.Shift.UpdateShiftStatus)
		shifts.DELETE("/:id", handlers.Shift.DeleteShift)
	}

	patrols := api.Group("/patrols")
	{
		patrols.POST("", handlers.Patrol.CreatePatrol)
		patrols.GET("", handlers.Patrol.ListPatrols)
		patrols.GET("/:id", handlers.Patrol.GetPatrol)
		patrols.DELETE("/:id", handlers.Patrol.DeletePatrol)
		patrols.POST("/:id/logs", handlers.Patrol.AddPatrolLog)
	}

	callouts := api.Group("/callouts")
	{
		callouts.POST("", handlers.Callout.CreateCallout)
		callouts.GET("", handlers.Callout.ListCallouts)
		callouts.GET("/:id", handlers.Callout.GetCallout)
		callouts.POST("/:id/status", handlers.Callout.UpdateCalloutStatus)
		callouts.DELETE("/:id", handlers.Callout.DeleteCallout)
	}

	invoices := api.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.PUT("/:id", handlers.Invoice.UpdateInvoice)
		invoices.DELETE("/:id", handlers.Invoice.DeleteInvoice)
		invoices.POST("/:id/recalculate", handlers.Invoice.RecalculateInvoice)
	}

	billing := api.Group("/billing")
	{
		billing.POST("/preview", handlers.Billing.PreviewAggregation)
	}

	return router
}
