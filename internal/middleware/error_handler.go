package middleware

import (
	"errors"
	"net/http"

	"github.com/gymdesk/gymdesk-backend/internal/apperrors"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as the {success:false, error} envelope.
// Unexpected errors surface as a generic 500 so internals do not leak.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	switch he := err.(type) {
	case *echo.HTTPError:
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	default:
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			code, msg = http.StatusNotFound, err.Error()
		case errors.Is(err, apperrors.ErrForbidden):
			code, msg = http.StatusForbidden, err.Error()
		case errors.Is(err, apperrors.ErrInvalid):
			code, msg = http.StatusBadRequest, err.Error()
		}
	}

	_ = c.JSON(code, map[string]any{"success": false, "error": msg})
}
