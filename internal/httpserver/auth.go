package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/Skotchmaster/food_delivery/internal/logging"
	"github.com/Skotchmaster/food_delivery/internal/mykafka"
	"github.com/Skotchmaster/food_delivery/internal/service"
	"github.com/Skotchmaster/food_delivery/internal/transport"
	"github.com/labstack/echo/v4"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *mykafka.Producer
}

func (h *AuthHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", c.Path(), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func createCookie(name, value, path string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  exp,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		he := httpError(err)
		l.Warn("register_error", "status", he.Code, "error", err)
		return he
	}

	h.publish(c, map[string]any{
		"type":   "user_registered",
		"userID": user.UserID,
	})

	l.Info("register_success", "user_id", user.UserID)
	return c.JSON(http.StatusCreated, echo.Map{"message": "User registered successfully", "user": user})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, token, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		he := httpError(err)
		l.Warn("login_error", "status", he.Code, "error", err)
		return he
	}

	c.SetCookie(createCookie("accessToken", token, "/", time.Now().Add(15*time.Minute)))

	l.Info("login_success", "user_id", user.UserID)
	return c.JSON(http.StatusOK, transport.LoginResponse{User: user, AccessToken: token})
}
