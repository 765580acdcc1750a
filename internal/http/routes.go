package http

import (
	"github.com/labstack/echo/v4"

	middleware "todolist-api.com/todolist-api/internal/http/middlewares"
	"todolist-api.com/todolist-api/internal/security"
)

func Register(e *echo.Echo, h *Handler, issuer *security.TokenIssuer) {
	e.HTTPErrorHandler = ErrorHandler()
	e.Use(middleware.RequestLogger())

	e.POST("/auth/login", h.Login)

	tasks := e.Group("/tasks", middleware.Auth(issuer))
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)
	tasks.PATCH("/:id/toggle-status", h.ToggleStatus)

	dashboard := e.Group("/dashboard", middleware.Auth(issuer))
	dashboard.GET("/metrics", h.GetMetrics)
}
