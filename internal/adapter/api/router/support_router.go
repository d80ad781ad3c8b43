package router

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/handler"
	"campuskart/internal/adapter/api/middleware"
)

func SetupSupportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	supportHandler := handler.GetSupportHandler()

	e.GET("/v1/support-tickets/purposes", supportHandler.Purposes)

	tickets := e.Group("/v1/support-tickets")
	tickets.Use(authMiddleware.Authenticate)

	tickets.POST("", supportHandler.Submit)
	tickets.GET("", supportHandler.ListMine)
}
