package router

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/handler"
	"campuskart/internal/adapter/api/middleware"
)

func SetupItemRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	itemHandler := handler.GetItemHandler()

	items := e.Group("/v1/items")
	items.Use(authMiddleware.Authenticate)

	items.GET("", itemHandler.Browse)
	items.GET("/:id", itemHandler.GetItem)

	mine := e.Group("/v1/my-items")
	mine.Use(authMiddleware.Authenticate)

	mine.GET("", itemHandler.ListMyItems)
	mine.POST("", itemHandler.CreateItem)
	mine.PUT("/:id/sold", itemHandler.MarkSold)
	mine.DELETE("/:id", itemHandler.DeleteItem)
}
