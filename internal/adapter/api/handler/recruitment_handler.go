package handler

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/middleware"
	"campuskart/internal/usecase"
	"campuskart/pkg/response"
)

type RecruitmentHandler struct {
	recruitmentUseCase *usecase.RecruitmentUseCase
}

func NewRecruitmentHandler(recruitmentUseCase *usecase.RecruitmentUseCase) *RecruitmentHandler {
	return &RecruitmentHandler{
		recruitmentUseCase: recruitmentUseCase,
	}
}

type recruitmentPostRequest struct {
	Purpose     string   `json:"purpose" validate:"required,max=200"`
	MaxStudents int      `json:"max_students" validate:"required,gte=1"`
	Event       string   `json:"event" validate:"max=200"`
	Qualities   string   `json:"qualities" validate:"max=1000"`
	Years       []string `json:"years"`
	Description string   `json:"description" validate:"max=2000"`
}

func (r recruitmentPostRequest) input() usecase.RecruitmentPostInput {
	return usecase.RecruitmentPostInput{
		Purpose:     r.Purpose,
		MaxStudents: r.MaxStudents,
		Event:       r.Event,
		Qualities:   r.Qualities,
		Years:       r.Years,
		Description: r.Description,
	}
}

func (h *RecruitmentHandler) List(c echo.Context) error {
	posts, err := h.recruitmentUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, posts)
}

func (h *RecruitmentHandler) Create(c echo.Context) error {
	var req recruitmentPostRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.recruitmentUseCase.Create(c.Request().Context(), middleware.UIDFrom(c), req.input())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *RecruitmentHandler) Update(c echo.Context) error {
	var req recruitmentPostRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.recruitmentUseCase.Update(c.Request().Context(), middleware.UIDFrom(c), c.Param("id"), req.input())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *RecruitmentHandler) Delete(c echo.Context) error {
	if err := h.recruitmentUseCase.Delete(c.Request().Context(), middleware.UIDFrom(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Recruitment post deleted",
	})
}
