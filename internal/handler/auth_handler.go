package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"xfood/internal/auth"
	"xfood/internal/service"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	svc service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// LoginRequest carries credentials, from JSON or a form post.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse reports who logged in.
type LoginResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials, sets the session cookie and reports the resolved role.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return validationProblem(err)
	}

	token, sctx, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return domainProblem(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if wantsHTML(c) {
		return c.Redirect(http.StatusFound, "/products")
	}
	return c.JSON(http.StatusOK, LoginResponse{Name: sctx.Name, Role: string(sctx.Role)})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the current session and clears the cookie. Idempotent.
// @Tags auth
// @Success 204
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.SessionCookie); err == nil {
		if err := h.svc.Logout(c.Request().Context(), cookie.Value); err != nil {
			return domainProblem(err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	if wantsHTML(c) {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.NoContent(http.StatusNoContent)
}

// LoginForm answers GET /login, the target of unauthenticated redirects.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "POST email and password to /login",
	})
}

func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
