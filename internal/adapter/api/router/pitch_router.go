package router

import (
	"listed/internal/adapter/api/handler"
	"listed/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPitchRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {

	pitchHandler := handler.GetPitchHandler()

	pitches := e.Group("/v1/pitches")
	pitches.GET("", pitchHandler.ListPitches)
	pitches.GET("/:id", pitchHandler.GetPitch)

	myPitches := e.Group("/v1/my-pitches")
	myPitches.Use(authMiddleware.Authenticate)
	myPitches.GET("", pitchHandler.ListMyPitches)
	myPitches.POST("", pitchHandler.CreatePitch)
	myPitches.PUT("/:id", pitchHandler.UpdatePitch)
	myPitches.PATCH("/:id/status", pitchHandler.SetStatus)
	myPitches.POST("/:id/feature-request", pitchHandler.RequestFeature)

	assistant := e.Group("/v1/assistant")
	assistant.Use(authMiddleware.Authenticate)
	assistant.POST("/improve-summary", pitchHandler.ImproveSummary)

	admin := e.Group("/v1/admin/pitches")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", pitchHandler.ListAllPitches)
	admin.POST("/:id/soft-delete", pitchHandler.SoftDeletePitch)
	admin.POST("/:id/restore", pitchHandler.RestorePitch)
	admin.DELETE("/:id", pitchHandler.DeletePitch)
	admin.POST("/:id/feature/approve", pitchHandler.ApproveFeature)
	admin.POST("/:id/feature/reject", pitchHandler.RejectFeature)
}
