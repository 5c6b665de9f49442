package handler

import (
	"net/http"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/middleware"
	"aerocastle-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		middleware.RecordOrderOperation("create", false)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "el formato de productos es incorrecto"})
	}

	result, err := h.orderService.CreateOrder(ctx, &req)
	if err != nil {
		middleware.RecordOrderOperation("create", false)
		return respondError(c, err)
	}

	middleware.RecordOrderOperation("create", true)
	return c.JSON(http.StatusCreated, result)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderService.GetOrder(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := idParam(c, "userId")
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListUserOrders(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListOrders(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderService.CancelOrder(ctx, id); err != nil {
		middleware.RecordOrderOperation("cancel", false)
		return respondError(c, err)
	}

	middleware.RecordOrderOperation("cancel", true)
	return c.JSON(http.StatusOK, echo.Map{"message": "Pedido cancelado exitosamente"})
}

func (h *OrderHandler) ConfirmOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderService.ConfirmOrder(ctx, id); err != nil {
		middleware.RecordOrderOperation("confirm", false)
		return respondError(c, err)
	}

	middleware.RecordOrderOperation("confirm", true)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
