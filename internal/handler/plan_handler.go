package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibook/backend-go/internal/config"
)

// PlanHandler handles public plan information API requests
type PlanHandler struct{}

// NewPlanHandler creates a new plan handler
func NewPlanHandler() *PlanHandler {
	return &PlanHandler{}
}

// GetAllPlans handles GET /api/v1/plans - returns the pricing tiers the
// upgrade page renders. Subscription state itself lives at the billing
// provider.
func (h *PlanHandler) GetAllPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": config.PricingPlans})
}
