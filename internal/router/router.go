package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"xfood/internal/auth"
	"xfood/internal/config"
	xerrors "xfood/internal/errors"
	"xfood/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessionStore auth.SessionStoreInterface,
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	productFormHandler *handler.ProductFormHandler,
	userHandler *handler.UserHandler,
	typeUserHandler *handler.TypeUserHandler,
	authHandler *handler.AuthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.HTTPErrorHandler = errorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	// Session endpoints
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// JSON API. Unauthenticated: the catalog doubles as the public
	// storefront feed.
	api := e.Group("/api")

	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.Get)
	api.POST("/categories", categoryHandler.Create)
	api.PUT("/categories/:id", categoryHandler.Update)
	api.DELETE("/categories/:id", categoryHandler.Delete)

	api.GET("/products", productHandler.Search)
	api.GET("/products/:id", productHandler.Get)
	api.POST("/products", productHandler.Create)
	api.PUT("/products/:id", productHandler.Update)
	api.DELETE("/products/:id", productHandler.Delete)

	api.GET("/type-users", typeUserHandler.List)

	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.Get)
	api.POST("/users", userHandler.Create)
	api.PUT("/users/:id", userHandler.Update)
	api.DELETE("/users/:id", userHandler.Delete)
	api.POST("/users/:id/deactivate", userHandler.Deactivate)
	api.POST("/users/:id/activate", userHandler.Activate)

	// Operator category screen. The form-side delete refuses to orphan
	// products; the API delete above does not make that check.
	e.GET("/categories", categoryHandler.List)
	e.POST("/categories/:id/delete", categoryHandler.FormDelete)

	// Operator product area: every route needs a session, mutations are
	// role-gated on top.
	products := e.Group("/products")
	products.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SessionSecret),
		TokenLookup: "cookie:" + auth.SessionCookie,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return auth.LoginRedirect(c, err)
		},
	}))
	products.Use(auth.LoadSession(sessionStore))

	products.GET("", productFormHandler.List, auth.RequireAction(auth.ActionViewProduct))
	products.POST("", productFormHandler.Create, auth.RequireAction(auth.ActionCreateProduct))
	products.POST("/:id", productFormHandler.Update, auth.RequireAction(auth.ActionEditProduct))
	products.POST("/:id/delete", productFormHandler.Delete, auth.RequireAction(auth.ActionDeleteProduct))
}

// errorHandler renders every error as the standard ErrorResponse shape and
// attaches the request-correlation id.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	resp := xerrors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch m := he.Message.(type) {
		case xerrors.ErrorResponse:
			resp = m
		case string:
			resp = xerrors.ErrorResponse{Error: m, Code: statusCode(status)}
		default:
			resp = xerrors.ErrorResponse{Error: fmt.Sprint(m), Code: statusCode(status)}
		}
	}

	resp.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, resp)
}

// statusCode renders an HTTP status as an UPPER_SNAKE code string.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
