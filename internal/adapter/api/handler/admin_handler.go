package handler

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/usecase"
	"campuskart/pkg/response"
)

type AdminHandler struct {
	adminUseCase   *usecase.AdminUseCase
	eventUseCase   *usecase.EventUseCase
	collegeUseCase *usecase.CollegeUseCase
	supportUseCase *usecase.SupportUseCase
}

func NewAdminHandler(
	adminUseCase *usecase.AdminUseCase,
	eventUseCase *usecase.EventUseCase,
	collegeUseCase *usecase.CollegeUseCase,
	supportUseCase *usecase.SupportUseCase,
) *AdminHandler {
	return &AdminHandler{
		adminUseCase:   adminUseCase,
		eventUseCase:   eventUseCase,
		collegeUseCase: collegeUseCase,
		supportUseCase: supportUseCase,
	}
}

type createEventRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description" validate:"max=5000"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time"`
	Venue           string `json:"venue" validate:"required"`
	City            string `json:"city" validate:"required"`
	College         string `json:"college"`
	Organizer       string `json:"organizer"`
	Image           string `json:"image" validate:"omitempty,url"`
	RegistrationURL string `json:"registration_url" validate:"omitempty,url"`
}

type addCollegeRequest struct {
	City string `json:"city" validate:"required"`
	Name string `json:"name" validate:"required,max=200"`
}

type ticketStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUseCase.ListUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, users)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminUseCase.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "User deleted"})
}

func (h *AdminHandler) ListItems(c echo.Context) error {
	items, err := h.adminUseCase.ListItems(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *AdminHandler) DeleteItem(c echo.Context) error {
	if err := h.adminUseCase.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Item removed and seller notified"})
}

func (h *AdminHandler) CreateEvent(c echo.Context) error {
	var req createEventRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	event, err := h.eventUseCase.Create(c.Request().Context(), usecase.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Venue:           req.Venue,
		City:            req.City,
		College:         req.College,
		Organizer:       req.Organizer,
		Image:           req.Image,
		RegistrationURL: req.RegistrationURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, event)
}

func (h *AdminHandler) DeleteEvent(c echo.Context) error {
	if err := h.eventUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Event deleted"})
}

func (h *AdminHandler) AddCollege(c echo.Context) error {
	var req addCollegeRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	college, err := h.collegeUseCase.Add(c.Request().Context(), req.City, req.Name)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, college)
}

func (h *AdminHandler) RemoveCollege(c echo.Context) error {
	if err := h.collegeUseCase.Remove(c.Request().Context(), c.Param("city"), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "College removed"})
}

func (h *AdminHandler) FindTicket(c echo.Context) error {
	ticket, err := h.supportUseCase.FindByNumber(c.Request().Context(), c.Param("number"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ticket)
}

func (h *AdminHandler) UpdateTicketStatus(c echo.Context) error {
	var req ticketStatusRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.supportUseCase.UpdateStatus(c.Request().Context(), c.Param("number"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ticket)
}
