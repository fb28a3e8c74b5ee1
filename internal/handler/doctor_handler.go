package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibook/backend-go/internal/database/service"
)

// DoctorHandler handles doctor API requests for the admin view
type DoctorHandler struct {
	service service.DoctorService
	logger  *slog.Logger
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(service service.DoctorService, logger *slog.Logger) *DoctorHandler {
	return &DoctorHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/v1/doctors
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// Create handles POST /api/v1/doctors
func (h *DoctorHandler) Create(c *gin.Context) {
	var input service.CreateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Error("❌ [DoctorHandler] Invalid create request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	doctor, err := h.service.CreateDoctor(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"doctor": doctor})
}

// Update handles PUT /api/v1/doctors/:id
func (h *DoctorHandler) Update(c *gin.Context) {
	var input service.UpdateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Error("❌ [DoctorHandler] Invalid update request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input.ID = c.Param("id")

	doctor, err := h.service.UpdateDoctor(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

// respondServiceError maps service error kinds to HTTP responses. Unknown
// failures surface only their generic message; the cause stays in logs.
func respondServiceError(c *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch svcErr.Kind {
	case service.KindValidation:
		status = http.StatusBadRequest
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindConflict:
		status = http.StatusConflict
	case service.KindUnauthorized:
		status = http.StatusUnauthorized
	}

	c.JSON(status, gin.H{"error": svcErr.Message})
}
