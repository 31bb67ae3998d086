package router

import (
	"listed/internal/adapter/api/handler"
	"listed/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupEngagementRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {

	engagementHandler := handler.GetEngagementHandler()

	engagement := e.Group("/v1/engagement/:target/:id")
	engagement.Use(authMiddleware.Authenticate)

	engagement.POST("", engagementHandler.RecordEngagement, rateLimitMiddleware.Limit)
	engagement.GET("/:kind", engagementHandler.ListMembers)

	admin := e.Group("/v1/admin/engagement/:target/:id")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("/bulk", engagementHandler.RecordEngagementBulk, rateLimitMiddleware.Limit)
}
