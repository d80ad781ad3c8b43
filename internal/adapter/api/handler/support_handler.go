package handler

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/middleware"
	"campuskart/internal/domain/entity"
	"campuskart/internal/usecase"
	"campuskart/pkg/response"
)

type SupportHandler struct {
	supportUseCase *usecase.SupportUseCase
}

func NewSupportHandler(supportUseCase *usecase.SupportUseCase) *SupportHandler {
	return &SupportHandler{
		supportUseCase: supportUseCase,
	}
}

type submitTicketRequest struct {
	Purpose     string `json:"purpose" validate:"required"`
	Description string `json:"description" validate:"required,max=5000"`
}

func (h *SupportHandler) Submit(c echo.Context) error {
	var req submitTicketRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.supportUseCase.Submit(c.Request().Context(), middleware.SessionFrom(c), usecase.SubmitTicketInput{
		Purpose:     req.Purpose,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, ticket)
}

func (h *SupportHandler) ListMine(c echo.Context) error {
	tickets, err := h.supportUseCase.ListMine(c.Request().Context(), middleware.UIDFrom(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tickets)
}

func (h *SupportHandler) Purposes(c echo.Context) error {
	return response.Success(c, entity.TicketPurposes)
}
