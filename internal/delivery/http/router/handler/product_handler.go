package handler

import (
	"log/slog"
	"net/http"

	"pristol/internal/delivery/http/response"
	"pristol/internal/domain/service"
	"pristol/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	sync    usecase.SyncUsecase
	catalog usecase.CatalogUsecase
	qrSvc   service.QRCodeService
	logger  *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(
	sync usecase.SyncUsecase,
	catalog usecase.CatalogUsecase,
	qrSvc service.QRCodeService,
	logger *slog.Logger,
) *ProductHandler {
	return &ProductHandler{
		sync:    sync,
		catalog: catalog,
		qrSvc:   qrSvc,
		logger:  logger,
	}
}

// ListProducts returns products filtered by search term and category.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	search := c.QueryParam("search")
	category := c.QueryParam("category")

	products := h.catalog.FilterProducts(search, category)

	return response.Success(c, http.StatusOK, products, "")
}

// ListCategories returns the distinct product categories.
func (h *ProductHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.Categories(), "")
}

// GetProduct returns a single product by ID.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.catalog.ProductByID(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// CreateProduct adds a new product to the catalog.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.AddProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.sync.AddProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct applies a partial update to an existing product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var patch *usecase.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product patch")
	}
	if err := c.Validate(patch); err != nil {
		return errors.WithStack(err)
	}

	if err := h.sync.UpdateProduct(c.Request().Context(), c.Param("id"), patch); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated successfully")
}

// DeleteProduct removes a product from the catalog.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.sync.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// ProductQRCode returns a PNG QR code linking to the storefront product page.
func (h *ProductHandler) ProductQRCode(c echo.Context) error {
	id := c.Param("id")

	// Only issue codes for products that exist
	if _, err := h.catalog.ProductByID(id); err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrSvc.GenerateProductQR(id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
