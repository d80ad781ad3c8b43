package handler

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/middleware"
	ws "campuskart/internal/infrastructure/websocket"
	"campuskart/pkg/errors"
	"campuskart/pkg/logger"
	"campuskart/pkg/response"
)

type WebSocketHandler struct {
	wsManager *ws.Manager
}

func NewWebSocketHandler(wsManager *ws.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
	}
}

// HandleWebSocket runs behind AuthMiddleware, which accepts ?token= for browsers.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	userID := middleware.UIDFrom(c)
	if userID == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	if err := h.wsManager.Serve(c.Response(), c.Request(), userID); err != nil {
		logger.Warn("WebSocket upgrade failed for %s: %v", userID, err)
	}
	return nil
}
