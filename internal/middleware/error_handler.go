package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fairmed/internal/rest"
	"fairmed/pkg/logger"
)

// ErrorHandler turns every error that escapes a handler (including panics
// recovered by the Recover middleware and 404/405 routing errors) into a
// JSON response, so clients never see an HTML error page.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	} else if err != nil {
		message = err.Error()
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Request failed", "method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
	}

	if jsonErr := c.JSON(code, rest.ResponseError{Message: message}); jsonErr != nil {
		logger.Error("Failed to write error response", "error", jsonErr)
	}
}
