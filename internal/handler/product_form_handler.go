package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"xfood/internal/dto"
	"xfood/internal/service"
	"xfood/internal/storage"
)

// ProductFormHandler handles the form-post side of product management: the
// urlencoded/multipart submissions of the operator UI. These routes sit
// behind the session middleware and the per-action role gate.
type ProductFormHandler struct {
	svc   service.ProductService
	store storage.Store
}

// NewProductFormHandler creates a new form handler.
func NewProductFormHandler(svc service.ProductService, store storage.Store) *ProductFormHandler {
	return &ProductFormHandler{svc: svc, store: store}
}

// List backs the operator product screen: page 1, fifty rows, same filters
// as the API.
func (h *ProductFormHandler) List(c echo.Context) error {
	filter, err := searchFilter(c, 50)
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

// bindForm reads a ProductInput from form fields. The price field goes
// through NormalizePrice instead of generic binding so that locale-mixed
// entry ("1.234,56") survives; the normalized value wins over whatever a
// plain parse would have produced.
func (h *ProductFormHandler) bindForm(c echo.Context) (dto.ProductInput, *echo.HTTPError) {
	var in dto.ProductInput

	in.Name = c.FormValue("name")
	if desc := c.FormValue("description"); desc != "" {
		in.Description = &desc
	}

	rawPrice := c.FormValue("price")
	price, ok := NormalizePrice(rawPrice)
	if !ok {
		return in, fieldProblem("price", "must be a number")
	}
	in.Price = price

	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil {
		return in, fieldProblem("stock", "must be an integer")
	}
	in.Stock = stock

	categoryID, err := strconv.ParseUint(c.FormValue("categoryId"), 10, 32)
	if err != nil {
		return in, fieldProblem("categoryId", "must be a positive integer")
	}
	in.CategoryID = uint(categoryID)

	return in, nil
}

// saveImage stores an uploaded image part, if any, and returns its URL.
// nil means no file was submitted.
func (h *ProductFormHandler) saveImage(c echo.Context) (*string, error) {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil || fh.Size == 0 {
		return nil, nil
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	url, err := h.store.Put(fh.Filename, src)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

// Create handles the product creation form (Admin and Manager only).
func (h *ProductFormHandler) Create(c echo.Context) error {
	in, httpErr := h.bindForm(c)
	if httpErr != nil {
		return httpErr
	}
	if err := c.Validate(&in); err != nil {
		return validationProblem(err)
	}

	imageURL, err := h.saveImage(c)
	if err != nil {
		return domainProblem(err)
	}
	in.ImageURL = imageURL

	if _, err := h.svc.Create(c.Request().Context(), in); err != nil {
		return domainProblem(err)
	}
	return c.Redirect(http.StatusFound, "/products")
}

// Update handles the product edit form (Admin and Manager only). When no new
// image is submitted the previous one is kept.
func (h *ProductFormHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	in, httpErr := h.bindForm(c)
	if httpErr != nil {
		return httpErr
	}
	if err := c.Validate(&in); err != nil {
		return validationProblem(err)
	}

	ctx := c.Request().Context()
	imageURL, err := h.saveImage(c)
	if err != nil {
		return domainProblem(err)
	}
	if imageURL == nil {
		if existing, err := h.svc.Get(ctx, id); err == nil {
			imageURL = existing.ImageURL
		}
	}
	in.ImageURL = imageURL

	if err := h.svc.Update(ctx, id, in); err != nil {
		return domainProblem(err)
	}
	return c.Redirect(http.StatusFound, "/products")
}

// Delete handles the product delete form (Admin only).
func (h *ProductFormHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return domainProblem(err)
	}
	return c.Redirect(http.StatusFound, "/products")
}
