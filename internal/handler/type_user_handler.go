package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"xfood/internal/service"
)

// TypeUserHandler lists the user profile tiers.
type TypeUserHandler struct {
	svc service.TypeUserService
}

// NewTypeUserHandler creates a new type-user handler.
func NewTypeUserHandler(svc service.TypeUserService) *TypeUserHandler {
	return &TypeUserHandler{svc: svc}
}

// List godoc
// @Summary List user profiles
// @Tags type-users
// @Produce json
// @Success 200 {array} model.TypeUser
// @Router /type-users [get]
func (h *TypeUserHandler) List(c echo.Context) error {
	types, err := h.svc.List(c.Request().Context())
	if err != nil {
		return domainProblem(err)
	}
	return c.JSON(http.StatusOK, types)
}
