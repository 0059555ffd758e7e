package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Skotchmaster/food_delivery/internal/logging"
	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/Skotchmaster/food_delivery/internal/mykafka"
	"github.com/Skotchmaster/food_delivery/internal/service"
	"github.com/Skotchmaster/food_delivery/internal/transport"
	"github.com/Skotchmaster/food_delivery/internal/util"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", c.Path(), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place_order")

	var req transport.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("place_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	orderID, err := h.Svc.PlaceOrder(ctx, req.UserID, req.TotalPrice, req.Items)
	if err != nil {
		he := httpError(err)
		l.Warn("place_order_error", "status", he.Code, "error", err)
		return he
	}

	h.publish(c, map[string]any{
		"type":     "order_created",
		"userID":   req.UserID,
		"orderID":  orderID,
		"total":    req.TotalPrice,
		"itemCnt":  len(req.Items),
	})

	l.Info("place_order_success", "order_id", orderID)
	return c.JSON(http.StatusCreated, transport.PlaceOrderResponse{OrderID: orderID})
}

func (h *OrderHTTP) GetOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	status, err := h.Svc.GetOrderStatus(c.Request().Context(), orderID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.OrderStatusResponse{Status: status})
}

func (h *OrderHTTP) SetOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.set_status")

	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req transport.SetOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.SetOrderStatus(ctx, orderID, models.OrderStatus(req.Status))
	if err != nil {
		he := httpError(err)
		l.Warn("set_status_error", "status", he.Code, "error", err)
		return he
	}

	h.publish(c, map[string]any{
		"type":    "order_status_changed",
		"orderID": orderID,
		"status":  order.Status,
	})

	l.Info("set_status_success", "order_id", orderID, "order_status", order.Status)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) RedeemPoints(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.redeem_points")

	var req transport.RedeemPointsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	balance, err := h.Svc.RedeemPoints(ctx, req.UserID, req.Points)
	if err != nil {
		he := httpError(err)
		l.Warn("redeem_points_error", "status", he.Code, "error", err)
		return he
	}

	h.publish(c, map[string]any{
		"type":   "points_redeemed",
		"userID": req.UserID,
		"points": req.Points,
	})

	l.Info("redeem_points_success", "user_id", req.UserID, "points", req.Points)
	return c.JSON(http.StatusOK, transport.RedeemPointsResponse{Points: balance})
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	offset, limit := util.Calculate(page, size)

	orders, err := h.Svc.ListOrders(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrderItems(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	items, err := h.Svc.GetOrderItems(c.Request().Context(), orderID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}
