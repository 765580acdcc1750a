package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "todolist-api.com/todolist-api/internal/data_models"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	var errs []string

	if r.Title == "" {
		errs = append(errs, "Title is required")
	} else if len(r.Title) > maxTitleLength {
		errs = append(errs, "Title must not exceed 200 characters")
	}

	if len(r.Description) > maxDescriptionLength {
		errs = append(errs, "Description must not exceed 1000 characters")
	}

	if len(errs) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, strings.Join(errs, ", "))
	}
	return nil
}
