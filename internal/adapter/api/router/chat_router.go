package router

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/handler"
	"campuskart/internal/adapter/api/middleware"
)

// SetupChatRouter sets up all chat-related routes (excluding WebSocket)
func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chatGroup := e.Group("/v1/chats")
	chatGroup.Use(authMiddleware.Authenticate)

	chatGroup.GET("", chatHandler.ListConversations)           // ?tab=buying|selling|recruitment
	chatGroup.POST("/messages", chatHandler.StartConversation) // by recipient and optional item
	chatGroup.GET("/:key", chatHandler.OpenRoom)               // messages, marks the room read
	chatGroup.POST("/:key/messages", chatHandler.SendMessage)  // into an existing room
}
