package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"campuskart/internal/usecase"
	"campuskart/pkg/response"
)

type EventHandler struct {
	eventUseCase *usecase.EventUseCase
}

func NewEventHandler(eventUseCase *usecase.EventUseCase) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
	}
}

func (h *EventHandler) List(c echo.Context) error {
	upcoming, _ := strconv.ParseBool(c.QueryParam("upcoming"))

	events, err := h.eventUseCase.List(c.Request().Context(), usecase.EventFilter{
		Upcoming: upcoming,
		City:     c.QueryParam("city"),
		College:  c.QueryParam("college"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, events)
}
