package handler

import (
	"errors"
	"net/http"

	"github.com/gymdesk/gymdesk-backend/internal/apperrors"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps service error kinds to HTTP statuses.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrInvalid):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
