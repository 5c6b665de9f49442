package handler

import (
	"net/http"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.authService.Register(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *AuthHandler) Confirm(c echo.Context) error {
	var req dto.ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.authService.Confirm(c.Request().Context(), req.UserID, req.Code); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Cuenta confirmada exitosamente"})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
