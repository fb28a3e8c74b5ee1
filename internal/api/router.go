package api

import (
	"github.com/gin-gonic/gin"

	"github.com/medibook/backend-go/internal/config"
	"github.com/medibook/backend-go/internal/handler"
	"github.com/medibook/backend-go/internal/middleware"
)

func SetupRouter(
	cfg *config.Config,
	pageHandler *handler.PageHandler,
	planHandler *handler.PlanHandler,
	userHandler *handler.UserHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Public routes
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/api/v1/plans", planHandler.GetAllPlans)

	// Page routes: identity resolved when present, gates decide redirects
	pages := r.Group("/")
	pages.Use(authMiddleware.ResolveIdentity())
	{
		pages.GET("/", pageHandler.Landing)
		pages.GET("/dashboard", pageHandler.Dashboard)
		pages.GET("/admin", pageHandler.Admin)
		pages.GET("/pro", pageHandler.Pro)
	}

	// Protected API routes
	api := r.Group("/api/v1")
	api.Use(authMiddleware.RequireIdentity())
	{
		api.POST("/users/sync", userHandler.Sync)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/me", appointmentHandler.ListMine)
		api.GET("/appointments/me/stats", appointmentHandler.Stats)
		api.GET("/doctors", doctorHandler.List)

		// Doctor management belongs to the admin view
		admin := api.Group("/")
		admin.Use(authMiddleware.RequireAdmin(cfg.AdminEmail))
		{
			admin.POST("/doctors", doctorHandler.Create)
			admin.PUT("/doctors/:id", doctorHandler.Update)
		}
	}

	return r
}
