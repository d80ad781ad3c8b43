package router

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter middleware.Limiter) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupItemRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupCommunityRouter(e, authMiddleware)
	SetupSupportRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware, limiter)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
}
