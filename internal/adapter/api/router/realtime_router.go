package router

import (
	"listed/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupRealtimeRouter(e *echo.Echo) {
	// Auth happens inside the handler; websocket dials cannot carry headers.
	e.GET("/ws", handler.GetRealtimeHandler().HandleWebSocket)
}
