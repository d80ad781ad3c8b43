package router

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/handler"
	"campuskart/internal/adapter/api/middleware"
	"campuskart/internal/infrastructure/ratelimit"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter middleware.Limiter) {
	fileHandler := handler.GetFileHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)

	files.POST("", fileHandler.UploadFile, middleware.UserRateLimit(limiter, ratelimit.ActionUploadFile))
	files.GET("", fileHandler.ListMyUploads)
	files.DELETE("/:id", fileHandler.DeleteUpload)
}
