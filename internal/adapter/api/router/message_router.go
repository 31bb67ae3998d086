package router

import (
	"listed/internal/adapter/api/handler"
	"listed/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {

	messageHandler := handler.GetMessageHandler()

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)

	messages.POST("", messageHandler.SendMessage)
	messages.GET("", messageHandler.ListMyMessages)
	messages.GET("/with/:userId", messageHandler.ListConversation)
}
