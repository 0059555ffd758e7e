package httpserver

import (
	"net/http"
	"strconv"

	"github.com/Skotchmaster/food_delivery/internal/service"
	"github.com/Skotchmaster/food_delivery/internal/transport"
	"github.com/Skotchmaster/food_delivery/internal/util"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) CreateMenuItem(c echo.Context) error {
	var req transport.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.CreateMenuItem(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *CatalogHTTP) GetMenuItems(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.GetMenuItems(c.Request().Context(), offset, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "items": items})
}

func (h *CatalogHTTP) GetMenuItem(c echo.Context) error {
	foodID, err := uuid.Parse(c.Param("food_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid food id")
	}

	item, err := h.Svc.GetMenuItem(c.Request().Context(), foodID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) UpdateMenuItem(c echo.Context) error {
	foodID, err := uuid.Parse(c.Param("food_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid food id")
	}

	var req transport.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.UpdateMenuItem(c.Request().Context(), foodID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) DeleteMenuItem(c echo.Context) error {
	foodID, err := uuid.Parse(c.Param("food_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid food id")
	}

	if err := h.Svc.DeleteMenuItem(c.Request().Context(), foodID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Menu item deleted successfully"})
}

func (h *CatalogHTTP) GetCategories(c echo.Context) error {
	categories, err := h.Svc.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHTTP) CreateCategory(c echo.Context) error {
	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	category, err := h.Svc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, category)
}
