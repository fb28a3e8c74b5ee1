package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibook/backend-go/internal/config"
	"github.com/medibook/backend-go/internal/gate"
	"github.com/medibook/backend-go/internal/middleware"
)

// PageHandler serves the page entry points. Each gated page runs its
// authorization check and either redirects (as the check decided) or
// renders the page payload the client hydrates from.
type PageHandler struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(cfg *config.Config, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// Landing handles GET / - the public marketing page, no business logic.
func (h *PageHandler) Landing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "landing",
		"tagline": "Book trusted doctors in minutes",
		"features": []string{
			"Verified specialists across every speciality",
			"Instant appointment booking",
			"Appointment history in one place",
		},
	})
}

// Dashboard handles GET /dashboard - the patient dashboard gate.
func (h *PageHandler) Dashboard(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	decision := gate.CheckDashboard(ident)
	if !decision.Allowed {
		h.redirect(c, decision)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page": "dashboard",
		"user": gin.H{
			"name":  ident.FullName(),
			"email": ident.Email,
		},
	})
}

// Admin handles GET /admin - the admin gate. Unauthenticated callers go
// home, non-admins go to the dashboard.
func (h *PageHandler) Admin(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	decision := gate.CheckAdmin(ident, h.cfg.AdminEmail)
	if !decision.Allowed {
		h.redirect(c, decision)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  "admin",
		"admin": gin.H{"email": ident.Email},
	})
}

// Pro handles GET /pro - the pricing/upgrade page. Renders for every
// authenticated caller; the access boolean is reported, not enforced.
func (h *PageHandler) Pro(c *gin.Context) {
	ident := middleware.IdentityFromContext(c)

	decision, access := gate.CheckPro(ident)
	if !decision.Allowed {
		h.redirect(c, decision)
		return
	}

	h.logger.Debug("💳 [PageHandler] Pro page rendered",
		"external_id", ident.ExternalID,
		"has_pro_access", access.HasProAccess,
	)

	c.JSON(http.StatusOK, gin.H{
		"page":   "pro",
		"access": access,
		"plans":  config.PricingPlans,
	})
}

func (h *PageHandler) redirect(c *gin.Context, decision gate.Decision) {
	h.logger.Debug("🔀 [PageHandler] Access denied, redirecting",
		"path", c.Request.URL.Path,
		"to", decision.RedirectTo,
		"reason", decision.Reason,
	)
	c.Redirect(http.StatusSeeOther, decision.RedirectTo)
}
