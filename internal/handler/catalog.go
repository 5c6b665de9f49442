package handler

import (
	"net/http"

	"aerocastle-backend/internal/dto"
	"aerocastle-backend/internal/service"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves products, brands, categories and suppliers.
type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ---- products ----

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogService.ListProducts(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogService.GetProduct(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	product, err := h.catalogService.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	product, err := h.catalogService.UpdateProduct(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteProduct(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Producto eliminado correctamente"})
}

// ---- brands ----

func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalogService.ListBrands(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, brands)
}

func (h *CatalogHandler) GetBrand(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	brand, err := h.catalogService.GetBrand(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, brand)
}

func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	var req dto.BrandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	brand, err := h.catalogService.CreateBrand(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, brand)
}

func (h *CatalogHandler) UpdateBrand(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.BrandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	brand, err := h.catalogService.UpdateBrand(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, brand)
}

func (h *CatalogHandler) DeleteBrand(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteBrand(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Marca eliminada correctamente"})
}

// ---- categories ----

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogService.ListCategories(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	category, err := h.catalogService.GetCategory(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	category, err := h.catalogService.CreateCategory(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	category, err := h.catalogService.UpdateCategory(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteCategory(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Categoria eliminada correctamente"})
}

// ---- suppliers ----

func (h *CatalogHandler) ListSuppliers(c echo.Context) error {
	suppliers, err := h.catalogService.ListSuppliers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, suppliers)
}

func (h *CatalogHandler) GetSupplier(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	supplier, err := h.catalogService.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, supplier)
}

func (h *CatalogHandler) CreateSupplier(c echo.Context) error {
	var req dto.SupplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	supplier, err := h.catalogService.CreateSupplier(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, supplier)
}

func (h *CatalogHandler) UpdateSupplier(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.SupplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	supplier, err := h.catalogService.UpdateSupplier(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, supplier)
}

func (h *CatalogHandler) DeleteSupplier(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteSupplier(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Proveedor eliminado correctamente"})
}
