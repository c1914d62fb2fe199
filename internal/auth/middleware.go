package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	xerrors "xfood/internal/errors"
)

// contextKey is where the decoded Context is stored on the echo context.
const contextKey = "auth.context"

// ContextFrom returns the authentication context of the current request.
func ContextFrom(c echo.Context) (Context, bool) {
	sctx, ok := c.Get(contextKey).(Context)
	return sctx, ok
}

// LoginRedirect answers an unauthenticated request: browsers are sent to the
// login page, API clients get a 401.
func LoginRedirect(c echo.Context, err error) error {
	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML) {
		return c.Redirect(http.StatusFound, "/login")
	}
	return echo.NewHTTPError(http.StatusUnauthorized, xerrors.ErrorResponse{
		Error: "login required",
		Code:  "SESSION_REQUIRED",
	})
}

// LoadSession builds the authentication context from the token the jwt
// middleware already validated, rejecting revoked sessions. It must run after
// the echo-jwt middleware.
func LoadSession(store SessionStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return LoginRedirect(c, nil)
			}
			claims, ok := token.Claims.(*SessionClaims)
			if !ok {
				return LoginRedirect(c, nil)
			}
			if revoked, _ := store.IsRevoked(c.Request().Context(), claims.ID); revoked {
				return LoginRedirect(c, nil)
			}
			role, ok := ParseRole(claims.Role)
			if !ok {
				return LoginRedirect(c, nil)
			}
			c.Set(contextKey, Context{Name: claims.Name, Role: role})
			return next(c)
		}
	}
}

// RequireAction denies the request with 403 unless the session role is
// allowed to perform the action.
func RequireAction(action Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sctx, ok := ContextFrom(c)
			if !ok {
				return LoginRedirect(c, nil)
			}
			if !CanPerform(action, sctx.Role) {
				return echo.NewHTTPError(http.StatusForbidden, xerrors.ErrorResponse{
					Error: "insufficient permissions",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
