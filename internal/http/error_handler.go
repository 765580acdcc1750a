package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todolist-api.com/todolist-api/internal/data_models"
	apperrors "todolist-api.com/todolist-api/internal/errors"
)

// ErrorHandler renders every error as {statusCode, message, detail}.
// Uncategorized faults get a generic message; the real error text goes to
// the server log only.
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		statusCode := http.StatusInternalServerError
		message := "An error occurred while processing your request"
		detail := ""

		var httpErr *echo.HTTPError
		var appErr *apperrors.Exception

		switch {
		case errors.As(err, &appErr):
			statusCode = apperrors.StatusCode(err)
			message = appErr.Message
			detail = appErr.Message
		case errors.As(err, &httpErr):
			statusCode = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
				detail = msg
			}
		default:
			log.Printf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		}

		body := dto.ErrorResponse{
			StatusCode: statusCode,
			Message:    message,
			Detail:     detail,
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(statusCode)
			return
		}
		_ = c.JSON(statusCode, body)
	}
}
