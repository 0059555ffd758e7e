package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/Skotchmaster/food_delivery/internal/logging"
	"github.com/Skotchmaster/food_delivery/internal/mykafka"
	"github.com/Skotchmaster/food_delivery/internal/service"
	"github.com/Skotchmaster/food_delivery/internal/transport"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "cart_events", c.Path(), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	items, err := h.Svc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	var req transport.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddToCart(c.Request().Context(), req.UserID, req.FoodID, req.Quantity, req.Price)
	if err != nil {
		return httpError(err)
	}

	h.publish(c, map[string]any{
		"type":     "cart_item_added",
		"userID":   req.UserID,
		"foodID":   req.FoodID,
		"quantity": req.Quantity,
	})
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	cartID, err := uuid.Parse(c.Param("cart_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.UpdateCartItem(c.Request().Context(), cartID, req.Quantity, req.Price)
	if err != nil {
		return httpError(err)
	}

	h.publish(c, map[string]any{
		"type":     "cart_item_updated",
		"cartID":   cartID,
		"quantity": req.Quantity,
	})
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) DeleteCartItem(c echo.Context) error {
	cartID, err := uuid.Parse(c.Param("cart_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	if err := h.Svc.DeleteCartItem(c.Request().Context(), cartID); err != nil {
		return httpError(err)
	}

	h.publish(c, map[string]any{
		"type":   "cart_item_deleted",
		"cartID": cartID,
	})
	return c.JSON(http.StatusOK, map[string]string{"message": "Cart item deleted successfully"})
}
