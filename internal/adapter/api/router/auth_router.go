package router

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/handler"
	"campuskart/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes, throttled per client IP
	public := e.Group("/v1/auth", middleware.IPRateLimit(0.2, 10))
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)

	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
}
