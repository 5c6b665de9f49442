package handler

import (
	"errors"
	"net/http"
	"strconv"

	"aerocastle-backend/internal/service"

	"github.com/labstack/echo/v4"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a service error to the wire contract: 4xx carry the error
// text, internals stay opaque.
func respondError(c echo.Context, err error) error {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "error interno del servidor"
	}

	return c.JSON(status, echo.Map{"error": message})
}

func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return uint(id), nil
}
