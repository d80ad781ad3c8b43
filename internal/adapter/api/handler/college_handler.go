package handler

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/usecase"
	"campuskart/pkg/response"
)

type CollegeHandler struct {
	collegeUseCase *usecase.CollegeUseCase
}

func NewCollegeHandler(collegeUseCase *usecase.CollegeUseCase) *CollegeHandler {
	return &CollegeHandler{
		collegeUseCase: collegeUseCase,
	}
}

// List returns every college grouped by city, or one city's colleges with ?city=.
func (h *CollegeHandler) List(c echo.Context) error {
	if city := c.QueryParam("city"); city != "" {
		colleges, err := h.collegeUseCase.ListForCity(c.Request().Context(), city)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, colleges)
	}

	grouped, err := h.collegeUseCase.ListByCity(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, grouped)
}

func (h *CollegeHandler) Search(c echo.Context) error {
	colleges, err := h.collegeUseCase.Search(c.Request().Context(), c.QueryParam("q"), c.QueryParam("city"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, colleges)
}
