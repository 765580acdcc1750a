package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "todolist-api.com/todolist-api/internal/data_models"
	"todolist-api.com/todolist-api/pkg/constants"
)

// Length caps apply only to fields the client actually supplied; absent
// fields mean "leave unchanged".
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	var errs []string

	if r.Title != nil && len(*r.Title) > maxTitleLength {
		errs = append(errs, "Title must not exceed 200 characters")
	}

	if r.Description != nil && len(*r.Description) > maxDescriptionLength {
		errs = append(errs, "Description must not exceed 1000 characters")
	}

	if r.Status != nil {
		if _, err := constants.ParseTaskStatus(*r.Status); err != nil {
			errs = append(errs, "Status must be either Pending or Completed")
		}
	}

	if len(errs) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, strings.Join(errs, ", "))
	}
	return nil
}
