package handler

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/middleware"
	"campuskart/internal/usecase"
	"campuskart/pkg/response"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.notificationUseCase.List(c.Request().Context(), middleware.UIDFrom(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, notifications)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	counts, err := h.notificationUseCase.UnreadCounts(c.Request().Context(), middleware.UIDFrom(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, counts)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notificationUseCase.MarkRead(c.Request().Context(), middleware.UIDFrom(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"marked": 1})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	marked, err := h.notificationUseCase.MarkAllRead(c.Request().Context(), middleware.UIDFrom(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"marked": marked})
}

func (h *NotificationHandler) MarkRoomRead(c echo.Context) error {
	marked, err := h.notificationUseCase.MarkRoomRead(c.Request().Context(), middleware.UIDFrom(c), c.Param("key"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"marked": marked})
}
