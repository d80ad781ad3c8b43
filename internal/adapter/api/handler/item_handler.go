package handler

import (
	"github.com/labstack/echo/v4"

	"campuskart/internal/adapter/api/middleware"
	"campuskart/internal/domain/entity"
	"campuskart/internal/usecase"
	"campuskart/pkg/response"
	"campuskart/pkg/utils"
)

type ItemHandler struct {
	itemUseCase *usecase.ItemUseCase
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
	}
}

type createItemRequest struct {
	ProductName      string `json:"product_name" validate:"required,max=120"`
	ProductImage     string `json:"product_image" validate:"required,url"`
	Type             string `json:"type" validate:"max=60"`
	Price            int64  `json:"price" validate:"required,gt=0"`
	Category         string `json:"category" validate:"required,oneof=gadgets books stationary other"`
	Condition        string `json:"condition" validate:"required"`
	Description      string `json:"description" validate:"max=2000"`
	ShowMobileNumber bool   `json:"show_mobile_number"`
}

type browseResponse struct {
	Items      []*entity.Item `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
	Colleges   []string       `json:"colleges"`
}

func (h *ItemHandler) Browse(c echo.Context) error {
	page := utils.GetPaginationParams(c)
	filter := usecase.BrowseFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		College:  c.QueryParam("college"),
		Sort:     c.QueryParam("sort"),
	}

	result, err := h.itemUseCase.Browse(c.Request().Context(), middleware.UIDFrom(c), filter, page)
	if err != nil {
		return response.Error(c, err)
	}

	totalPages := (result.Total + page.PageSize - 1) / page.PageSize
	return response.Success(c, browseResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: totalPages,
		Colleges:   result.Colleges,
	})
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	item, err := h.itemUseCase.GetItem(c.Request().Context(), middleware.UIDFrom(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *ItemHandler) ListMyItems(c echo.Context) error {
	items, err := h.itemUseCase.ListMyItems(c.Request().Context(), middleware.UIDFrom(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req createItemRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.CreateItem(c.Request().Context(), middleware.UIDFrom(c), usecase.CreateItemInput{
		ProductName:      req.ProductName,
		ProductImage:     req.ProductImage,
		Type:             req.Type,
		Price:            req.Price,
		Category:         req.Category,
		Condition:        req.Condition,
		Description:      req.Description,
		ShowMobileNumber: req.ShowMobileNumber,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *ItemHandler) MarkSold(c echo.Context) error {
	item, err := h.itemUseCase.MarkSold(c.Request().Context(), middleware.UIDFrom(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	if err := h.itemUseCase.DeleteItem(c.Request().Context(), middleware.UIDFrom(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Item deleted",
	})
}
