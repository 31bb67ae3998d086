package router

import (
	"listed/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupUserRouter(e, authMiddleware, adminMiddleware, rateLimitMiddleware)
	SetupPitchRouter(e, authMiddleware, adminMiddleware)
	SetupOfferRouter(e, authMiddleware, adminMiddleware)
	SetupEngagementRouter(e, authMiddleware, adminMiddleware, rateLimitMiddleware)
	SetupComplaintRouter(e, authMiddleware, adminMiddleware)
	SetupInquiryRouter(e, authMiddleware, adminMiddleware, rateLimitMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupRealtimeRouter(e)
	SetupHealthRouter(e)
}
