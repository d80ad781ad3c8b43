package handler

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/middleware"
	"campuskart/internal/usecase"
	"campuskart/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=100"`
	Bio          *string `json:"bio" validate:"omitempty,max=500"`
	Mobile       *string `json:"mobile" validate:"omitempty,numeric,len=10"`
	City         *string `json:"city"`
	College      *string `json:"college"`
	ProfilePhoto *string `json:"profile_photo" validate:"omitempty,url"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type holidayModeRequest struct {
	IsActive bool   `json:"is_active"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userUseCase.GetPublicProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), middleware.UIDFrom(c), usecase.UpdateProfileInput{
		Name:         req.Name,
		Bio:          req.Bio,
		Mobile:       req.Mobile,
		City:         req.City,
		College:      req.College,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	err := h.userUseCase.ChangePassword(c.Request().Context(), middleware.SessionFrom(c), usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Password updated successfully",
	})
}

func (h *UserHandler) SetHolidayMode(c echo.Context) error {
	var req holidayModeRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	mode, err := h.userUseCase.SetHolidayMode(c.Request().Context(), middleware.UIDFrom(c), usecase.HolidayModeInput{
		IsActive: req.IsActive,
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, mode)
}

func (h *UserHandler) Follow(c echo.Context) error {
	if err := h.userUseCase.Follow(c.Request().Context(), middleware.UIDFrom(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"following": true})
}

func (h *UserHandler) Unfollow(c echo.Context) error {
	if err := h.userUseCase.Unfollow(c.Request().Context(), middleware.UIDFrom(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"following": false})
}

func (h *UserHandler) ListFollowers(c echo.Context) error {
	followers, err := h.userUseCase.ListFollowers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, followers)
}

func (h *UserHandler) ListItems(c echo.Context) error {
	items, err := h.userUseCase.ListUserItems(c.Request().Context(), middleware.UIDFrom(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}
