package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	xerrors "xfood/internal/errors"
)

// validationProblem turns a validator error into a 400 with per-field
// messages, so clients see which inputs failed and why.
func validationProblem(err error) *echo.HTTPError {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = "failed on the '" + fe.Tag() + "' rule"
		}
	}
	return echo.NewHTTPError(http.StatusBadRequest, xerrors.ErrorResponse{
		Error:  "validation failed",
		Code:   "VALIDATION_FAILURE",
		Fields: fields,
	})
}

// fieldProblem reports a single bad field without going through the
// validator, for values parsed by hand (ids, query params, form numbers).
func fieldProblem(field, message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, xerrors.ErrorResponse{
		Error:  "validation failed",
		Code:   "VALIDATION_FAILURE",
		Fields: map[string]string{field: message},
	})
}

// domainProblem maps a service error onto the HTTP error taxonomy.
func domainProblem(err error) *echo.HTTPError {
	httpErr := xerrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
