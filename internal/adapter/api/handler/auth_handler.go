package handler

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/middleware"
	"campuskart/internal/usecase"
	"campuskart/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	City            string `json:"city" validate:"required"`
	College         string `json:"college" validate:"required"`
	Mobile          string `json:"mobile" validate:"omitempty,numeric,len=10"`
	AcceptedTerms   bool   `json:"accepted_terms"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		City:            req.City,
		College:         req.College,
		Mobile:          req.Mobile,
		AcceptedTerms:   req.AcceptedTerms,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *AuthHandler) Me(c echo.Context) error {
	result, err := h.authUseCase.Me(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
