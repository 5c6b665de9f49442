package handler

import (
	"net/http"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type EngagementHandler struct {
	engagementService service.EngagementService
}

func NewEngagementHandler(engagementService service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

func (h *EngagementHandler) ListProductReviews(c echo.Context) error {
	productID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.engagementService.ListProductReviews(c.Request().Context(), productID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *EngagementHandler) CreateReview(c echo.Context) error {
	var req dto.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	review, err := h.engagementService.CreateReview(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, review)
}

func (h *EngagementHandler) ApproveReview(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.engagementService.ApproveReview(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Resena aprobada"})
}

func (h *EngagementHandler) DeleteReview(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.engagementService.DeleteReview(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Resena eliminada"})
}

func (h *EngagementHandler) ListWishlist(c echo.Context) error {
	userID, err := idParam(c, "userId")
	if err != nil {
		return err
	}

	items, err := h.engagementService.ListWishlist(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *EngagementHandler) AddToWishlist(c echo.Context) error {
	var req dto.WishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.engagementService.AddToWishlist(c.Request().Context(), &req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Producto agregado a la lista de deseos"})
}

func (h *EngagementHandler) RemoveFromWishlist(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.engagementService.RemoveFromWishlist(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Producto eliminado de la lista de deseos"})
}
