package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibook/backend-go/internal/database/service"
	"github.com/medibook/backend-go/internal/middleware"
)

// AppointmentHandler handles appointment API requests
type AppointmentHandler struct {
	service service.AppointmentService
	logger  *slog.Logger
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service service.AppointmentService, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/v1/appointments - the admin overview of every
// appointment with user and doctor joined.
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// ListMine handles GET /api/v1/appointments/me - the caller's own
// appointments shaped for the dashboard.
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)
	externalID := ""
	if ident != nil {
		externalID = ident.ExternalID
	}

	appointments, err := h.service.UserAppointments(externalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// Stats handles GET /api/v1/appointments/me/stats
func (h *AppointmentHandler) Stats(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)
	externalID := ""
	if ident != nil {
		externalID = ident.ExternalID
	}

	stats, err := h.service.UserAppointmentStats(externalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
