package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibook/backend-go/internal/database/service"
	"github.com/medibook/backend-go/internal/middleware"
)

// UserHandler handles user sync requests
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// Sync handles POST /api/v1/users/sync. The web client calls it once per
// sign-in so the local user table follows the identity provider.
func (h *UserHandler) Sync(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	user, err := h.service.SyncUser(ident)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
