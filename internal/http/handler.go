package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todolist-api.com/todolist-api/internal/data_models"
	apperrors "todolist-api.com/todolist-api/internal/errors"
	middleware "todolist-api.com/todolist-api/internal/http/middlewares"
	"todolist-api.com/todolist-api/internal/http/validators"
	"todolist-api.com/todolist-api/internal/services"
	"todolist-api.com/todolist-api/pkg/constants"
)

type Handler struct {
	authService      *services.AuthService
	taskService      *services.TaskService
	dashboardService *services.DashboardService
}

func NewHandler(
	authService *services.AuthService,
	taskService *services.TaskService,
	dashboardService *services.DashboardService,
) *Handler {
	return &Handler{
		authService:      authService,
		taskService:      taskService,
		dashboardService: dashboardService,
	}
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if !res.IsSuccess {
		return apperrors.ErrInvalidCredentials
	}

	return c.JSON(http.StatusOK, res.Data)
}

func (h *Handler) ListTasks(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var status *constants.TaskStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := constants.ParseTaskStatus(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Status must be either Pending or Completed")
		}
		status = &parsed
	}

	res, err := h.taskService.ListTasks(c.Request().Context(), userID, status)
	if err != nil {
		return err
	}
	if !res.IsSuccess {
		return echo.NewHTTPError(http.StatusBadRequest, res.ErrorMessage)
	}

	return c.JSON(http.StatusOK, res.Data)
}

func (h *Handler) GetTask(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	res, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	if !res.IsSuccess {
		return apperrors.ErrTaskNotFound
	}

	return c.JSON(http.StatusOK, res.Data)
}

func (h *Handler) CreateTask(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	res, err := h.taskService.CreateTask(c.Request().Context(), userID, req.Title, req.Description)
	if err != nil {
		return err
	}
	if !res.IsSuccess {
		return echo.NewHTTPError(http.StatusBadRequest, res.ErrorMessage)
	}

	return c.JSON(http.StatusCreated, res.Data)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	res, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), userID, req)
	if err != nil {
		return err
	}
	if !res.IsSuccess {
		return apperrors.ErrTaskNotFound
	}

	return c.JSON(http.StatusOK, res.Data)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	res, err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	if !res.IsSuccess {
		return apperrors.ErrTaskNotFound
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ToggleStatus(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	res, err := h.taskService.ToggleStatus(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	if !res.IsSuccess {
		return apperrors.ErrTaskNotFound
	}

	return c.JSON(http.StatusOK, res.Data)
}

func (h *Handler) GetMetrics(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return apperrors.ErrUnauthenticated
	}

	res, err := h.dashboardService.GetMetrics(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if !res.IsSuccess {
		return echo.NewHTTPError(http.StatusBadRequest, res.ErrorMessage)
	}

	return c.JSON(http.StatusOK, res.Data)
}
