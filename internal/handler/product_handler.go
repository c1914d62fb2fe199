package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"xfood/internal/dto"
	"xfood/internal/repository"
	"xfood/internal/service"
)

// ProductHandler handles the JSON product API.
type ProductHandler struct {
	svc service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// searchFilter reads categoryId/q/page/size query parameters. Page and size
// default to 1 and 12; out-of-range values are echoed back as sent and only
// clamped inside the repository.
func searchFilter(c echo.Context, defaultSize int) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{Page: 1, Size: defaultSize, Query: c.QueryParam("q")}

	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, fieldProblem("categoryId", "must be a positive integer")
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fieldProblem("page", "must be an integer")
		}
		filter.Page = page
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fieldProblem("size", "must be an integer")
		}
		filter.Size = size
	}
	return filter, nil
}

// Search godoc
// @Summary Search products
// @Description Paginated product listing with optional category and text filters.
// @Tags products
// @Produce json
// @Param categoryId query int false "Restrict to a category"
// @Param q query string false "Substring matched against name and description"
// @Param page query int false "Page (default 1)"
// @Param size query int false "Page size (default 12, max 100)"
// @Success 200 {object} dto.ProductPage
// @Failure 400 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) Search(c echo.Context) error {
	filter, err := searchFilter(c, 12)
	if err != nil {
		return err
	}
	total, items, err := h.svc.Search(c.Request().Context(), filter)
	if err != nil {
		return domainProblem(err)
	}
	return c.JSON(http.StatusOK, dto.ProductPage{
		Total: total,
		Page:  filter.Page,
		Size:  filter.Size,
		Items: items,
	})
}

// Get godoc
// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ProductDTO
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	product, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return domainProblem(err)
	}
	return c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductInput true "Product payload"
// @Success 201 {object} dto.ProductDTO
// @Failure 400 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var in dto.ProductInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&in); err != nil {
		return validationProblem(err)
	}
	created, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return domainProblem(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update product
// @Tags products
// @Accept json
// @Param id path int true "Product ID"
// @Param product body dto.ProductInput true "Product payload"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.ProductInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&in); err != nil {
		return validationProblem(err)
	}
	if err := h.svc.Update(c.Request().Context(), id, in); err != nil {
		return domainProblem(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete product
// @Description Idempotent: deleting a missing product still answers 204.
// @Tags products
// @Param id path int true "Product ID"
// @Success 204
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return domainProblem(err)
	}
	return c.NoContent(http.StatusNoContent)
}
