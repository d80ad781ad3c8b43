package handler

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/middleware"
	"campuskart/internal/domain/entity"
	"campuskart/internal/usecase"
	"campuskart/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type messageRequest struct {
	Type       string `json:"type" validate:"omitempty,oneof=text offer recruitment_inquiry"`
	Text       string `json:"text" validate:"max=2000"`
	OfferPrice int64  `json:"offer_price" validate:"gte=0"`
}

type startMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	ItemID      string `json:"item_id"`
	messageRequest
}

// ListConversations serves GET /v1/chats?tab=buying|selling|recruitment.
func (h *ChatHandler) ListConversations(c echo.Context) error {
	conversations, err := h.chatUseCase.ListConversations(c.Request().Context(), middleware.UIDFrom(c), c.QueryParam("tab"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversations)
}

// StartConversation sends the first (or next) message to a user, optionally about an item.
func (h *ChatHandler) StartConversation(c echo.Context) error {
	var req startMessageRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.chatUseCase.SendMessage(c.Request().Context(), middleware.UIDFrom(c), usecase.SendMessageInput{
		RecipientID: req.RecipientID,
		ItemID:      req.ItemID,
		Type:        entity.MessageType(req.Type),
		Text:        req.Text,
		OfferPrice:  req.OfferPrice,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req messageRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.chatUseCase.SendMessage(c.Request().Context(), middleware.UIDFrom(c), usecase.SendMessageInput{
		RoomKey:    c.Param("key"),
		Type:       entity.MessageType(req.Type),
		Text:       req.Text,
		OfferPrice: req.OfferPrice,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *ChatHandler) OpenRoom(c echo.Context) error {
	view, err := h.chatUseCase.OpenRoom(c.Request().Context(), middleware.UIDFrom(c), c.Param("key"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, view)
}

func (h *ChatHandler) StartRecruitmentChat(c echo.Context) error {
	room, err := h.chatUseCase.StartRecruitmentChat(c.Request().Context(), middleware.UIDFrom(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, room)
}
