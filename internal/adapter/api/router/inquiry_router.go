package router

import (
	"listed/internal/adapter/api/handler"
	"listed/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupInquiryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {

	inquiryHandler := handler.GetInquiryHandler()

	// Open contact form; uid is attached when a token happens to be present.
	e.POST("/v1/inquiries", inquiryHandler.CreateInquiry, authMiddleware.OptionalAuthenticate, rateLimitMiddleware.Limit)

	admin := e.Group("/v1/admin/inquiries")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", inquiryHandler.ListInquiries)
	admin.GET("/:id", inquiryHandler.GetInquiry)
	admin.POST("/:id/handled", inquiryHandler.MarkInquiryHandled)
}
