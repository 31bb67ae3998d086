package router

import (
	"listed/internal/adapter/api/handler"
	"listed/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOfferRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {

	offerHandler := handler.GetOfferHandler()

	platformOffers := e.Group("/v1/platform-offers")
	platformOffers.GET("", offerHandler.ListPlatformOffers)
	platformOffers.GET("/:id", offerHandler.GetPlatformOffer)

	salesOffers := e.Group("/v1/sales-offers")
	salesOffers.GET("", offerHandler.ListSalesOffers)
	salesOffers.GET("/:id", offerHandler.GetSalesOffer)

	mySalesOffers := e.Group("/v1/my-sales-offers")
	mySalesOffers.Use(authMiddleware.Authenticate)
	mySalesOffers.GET("", offerHandler.ListMySalesOffers)
	mySalesOffers.POST("", offerHandler.CreateSalesOffer)
	mySalesOffers.PUT("/:id", offerHandler.UpdateSalesOffer)
	mySalesOffers.PATCH("/:id/status", offerHandler.SetSalesOfferStatus)
	mySalesOffers.DELETE("/:id", offerHandler.DeleteSalesOffer)

	admin := e.Group("/v1/admin/platform-offers")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", offerHandler.CreatePlatformOffer)
	admin.PUT("/:id", offerHandler.UpdatePlatformOffer)
	admin.PATCH("/:id/status", offerHandler.SetPlatformOfferStatus)
	admin.DELETE("/:id", offerHandler.DeletePlatformOffer)
}
