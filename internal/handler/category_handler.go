package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"xfood/internal/dto"
	xerrors "xfood/internal/errors"
	"xfood/internal/service"
)

// CategoryHandler handles category endpoints, API and form side.
type CategoryHandler struct {
	svc service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} model.Category
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.svc.List(c.Request().Context())
	if err != nil {
		return domainProblem(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// Get godoc
// @Summary Get category by id, including its products
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} model.Category
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	category, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return domainProblem(err)
	}
	return c.JSON(http.StatusOK, category)
}

// Create godoc
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CategoryInput true "Category payload"
// @Success 201 {object} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var in dto.CategoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&in); err != nil {
		return validationProblem(err)
	}

	ctx := c.Request().Context()
	taken, err := h.svc.NameExists(ctx, in.Name)
	if err != nil {
		return domainProblem(err)
	}
	if taken {
		return domainProblem(xerrors.ErrCategoryNameTaken)
	}

	category, err := h.svc.Create(ctx, in)
	if err != nil {
		return domainProblem(err)
	}
	return c.JSON(http.StatusCreated, category)
}

// Update godoc
// @Summary Update category
// @Tags categories
// @Accept json
// @Param id path int true "Category ID"
// @Param category body dto.CategoryInput true "Category payload; id must match the path"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.CategoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if in.ID != id {
		return fieldProblem("id", "resource id differs from request body")
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
// @Summary Delete category
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	// The API contract reports 404 for a missing category even though the
	// repository delete itself is an idempotent no-op.
	if _, err := h.svc.Get(ctx, id); err != nil {
		return domainProblem(err)
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		return domainProblem(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// FormDelete is the form-side delete. Unlike the API it refuses to remove a
// category that still has products.
func (h *CategoryHandler) FormDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	hasProducts, err := h.svc.HasProducts(ctx, id)
	if err != nil {
		return domainProblem(err)
	}
	if hasProducts {
		return c.Redirect(http.StatusFound, "/api/categories?error=has-products")
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		return domainProblem(err)
	}
	return c.Redirect(http.StatusFound, "/api/categories")
}

// parseID reads the numeric :id path parameter.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fieldProblem("id", "must be a positive integer")
	}
	return uint(id), nil
}
