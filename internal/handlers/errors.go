package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"instock/internal/services"
)

// httpError translates service errors to HTTP responses. Unexpected errors
// are logged with their detail and surface as a generic 500.
func httpError(err error, notFoundMessage string) *echo.HTTPError {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMessage)
	case services.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		log.Printf("unexpected error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
