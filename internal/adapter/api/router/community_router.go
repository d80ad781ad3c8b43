package router

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/handler"
	"campuskart/internal/adapter/api/middleware"
)

// SetupCommunityRouter covers events, recruitment posts and the college directory.
func SetupCommunityRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	eventHandler := handler.GetEventHandler()
	recruitmentHandler := handler.GetRecruitmentHandler()
	collegeHandler := handler.GetCollegeHandler()
	chatHandler := handler.GetChatHandler()

	// The college directory feeds the registration form, so it is public.
	e.GET("/v1/colleges", collegeHandler.List)
	e.GET("/v1/colleges/search", collegeHandler.Search)

	events := e.Group("/v1/events")
	events.Use(authMiddleware.Authenticate)
	events.GET("", eventHandler.List)

	posts := e.Group("/v1/recruitment-posts")
	posts.Use(authMiddleware.Authenticate)

	posts.GET("", recruitmentHandler.List)
	posts.POST("", recruitmentHandler.Create)
	posts.PUT("/:id", recruitmentHandler.Update)
	posts.DELETE("/:id", recruitmentHandler.Delete)
	posts.POST("/:id/inquire", chatHandler.StartRecruitmentChat)
}
