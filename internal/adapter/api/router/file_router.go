package router

import (
	"listed/internal/adapter/api/handler"
	"listed/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {

	fileHandler := handler.GetFileHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)

	files.POST("/upload/pitch-image", fileHandler.UploadPitchImage)
	files.POST("/upload/payment-proof", fileHandler.UploadPaymentProof)
	files.POST("/upload/offer-media", fileHandler.UploadOfferMedia)
}
