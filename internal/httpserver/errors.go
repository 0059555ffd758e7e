package httpserver

import (
	"errors"
	"net/http"

	"github.com/Skotchmaster/food_delivery/internal/service"
	"github.com/labstack/echo/v4"
)

func httpStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func httpError(err error) *echo.HTTPError {
	return echo.NewHTTPError(httpStatus(err), err.Error())
}
