package router

import (
	"listed/internal/adapter/api/handler"
	"listed/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupComplaintRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {

	complaintHandler := handler.GetComplaintHandler()

	complaints := e.Group("/v1/complaints")
	complaints.Use(authMiddleware.Authenticate)

	complaints.POST("", complaintHandler.CreateComplaint)
	complaints.GET("/me", complaintHandler.ListMyComplaints)
	complaints.GET("/:id", complaintHandler.GetComplaint)

	admin := e.Group("/v1/admin/complaints")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", complaintHandler.ListComplaints)
	admin.PATCH("/:id", complaintHandler.UpdateComplaint)
}
