package router

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/handler"
	"campuskart/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("/:id", userHandler.GetProfile)
	users.GET("/:id/items", userHandler.ListItems)
	users.GET("/:id/followers", userHandler.ListFollowers)
	users.POST("/:id/follow", userHandler.Follow)
	users.DELETE("/:id/follow", userHandler.Unfollow)

	me := e.Group("/v1/me")
	me.Use(authMiddleware.Authenticate)

	me.PUT("/profile", userHandler.UpdateProfile)
	me.PUT("/password", userHandler.ChangePassword)
	me.PUT("/holiday-mode", userHandler.SetHolidayMode)
}
