package router

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/handler"
	"campuskart/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	admin.GET("/items", adminHandler.ListItems)
	admin.DELETE("/items/:id", adminHandler.DeleteItem)

	admin.POST("/events", adminHandler.CreateEvent)
	admin.DELETE("/events/:id", adminHandler.DeleteEvent)

	admin.POST("/colleges", adminHandler.AddCollege)
	admin.DELETE("/colleges/:city/:id", adminHandler.RemoveCollege)

	admin.GET("/support-tickets/:number", adminHandler.FindTicket)
	admin.PUT("/support-tickets/:number/status", adminHandler.UpdateTicketStatus)
}
