// Package httperr maps domain sentinel errors onto echo HTTP errors so
// every handler speaks the same status vocabulary.
package httperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinica/clinica/internal/platform/auth"
	"github.com/clinica/clinica/internal/platform/db"
	"github.com/clinica/clinica/internal/platform/validate"
)

// Map translates a service error into an *echo.HTTPError. Validation
// and conflict failures come back as 400, missing rows as 404 and
// credential problems as 401; anything unrecognized becomes an opaque
// 500 so internals never leak to clients.
func Map(err error) error {
	var he *echo.HTTPError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &he):
		return he
	case errors.Is(err, db.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, validate.ErrInvalid),
		errors.Is(err, db.ErrConflict),
		errors.Is(err, db.ErrBadField):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrBadCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
