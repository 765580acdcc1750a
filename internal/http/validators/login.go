package validators

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	dto "todolist-api.com/todolist-api/internal/data_models"
)

func ValidateLoginRequest(r *dto.LoginRequest) error {
	var errs []string

	if r.Email == "" {
		errs = append(errs, "Email is required")
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = append(errs, "Invalid email format")
	}

	if r.Password == "" {
		errs = append(errs, "Password is required")
	} else if len(r.Password) < 6 {
		errs = append(errs, "Password must be at least 6 characters")
	}

	if len(errs) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, strings.Join(errs, ", "))
	}
	return nil
}
