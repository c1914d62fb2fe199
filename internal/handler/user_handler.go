package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"xfood/internal/dto"
	"xfood/internal/service"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List godoc
// @Summary List users
// @Description Users ordered by name; status filters by the active flag.
// @Tags users
// @Produce json
// @Param status query string false "active, inactive or all (default all)"
// @Success 200 {array} dto.UserDTO
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var active *bool
	switch c.QueryParam("status") {
	case "active":
		t := true
		active = &t
	case "inactive":
		f := false
		active = &f
	case "", "all":
		// no filter
	default:
		return fieldProblem("status", "must be active, inactive or all")
	}

	users, err := h.svc.List(c.Request().Context(), active)
	if err != nil {
		return domainProblem(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserDTO
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return domainProblem(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Create godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UserInput true "User payload"
// @Success 201 {object} dto.UserDTO
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var in dto.UserInput
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
// @Summary Update user
// @Description Updating a missing user is a silent no-op and still answers 204.
// @Tags users
// @Accept json
// @Param id path int true "User ID"
// @Param user body dto.UserInput true "User payload"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.UserInput
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
// @Summary Delete user permanently
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return domainProblem(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Deactivate godoc
// @Summary Soft-delete a user
// @Description Marks the user inactive; the row stays in place.
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Router /users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Deactivate(c.Request().Context(), id); err != nil {
		return domainProblem(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Activate godoc
// @Summary Re-enable a soft-deleted user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Router /users/{id}/activate [post]
func (h *UserHandler) Activate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Activate(c.Request().Context(), id); err != nil {
		return domainProblem(err)
	}
	return c.NoContent(http.StatusNoContent)
}
