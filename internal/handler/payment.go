package handler

import (
	"net/http"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/middleware"
	"aerocastle-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) RegisterPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterPaymentRequest
	if err := c.Bind(&req); err != nil {
		middleware.RecordOrderOperation("payment", false)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "datos de pago invalidos"})
	}

	result, err := h.paymentService.RegisterPayment(ctx, &req)
	if err != nil {
		middleware.RecordOrderOperation("payment", false)
		return respondError(c, err)
	}

	middleware.RecordOrderOperation("payment", true)
	return c.JSON(http.StatusCreated, result)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	ctx := c.Request().Context()

	payment, err := h.paymentService.GetPayment(ctx, c.Param("paymentId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) ListOrderPayments(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := idParam(c, "orderId")
	if err != nil {
		return err
	}

	payments, err := h.paymentService.ListOrderPayments(ctx, orderID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, payments)
}
