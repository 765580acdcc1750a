package services

import (
	"context"
	"math"

	dto "todolist-api.com/todolist-api/internal/data_models"
	repository "todolist-api.com/todolist-api/internal/repositories"
	"todolist-api.com/todolist-api/pkg/constants"
	"todolist-api.com/todolist-api/pkg/result"
)

type DashboardService struct {
	tasks *repository.TaskRepository
}

func NewDashboardService(tasks *repository.TaskRepository) *DashboardService {
	return &DashboardService{tasks: tasks}
}

// GetMetrics recomputes counts from the store on every call.
func (s *DashboardService) GetMetrics(
	ctx context.Context,
	userID string,
) (result.Result[dto.DashboardMetrics], error) {
	total, err := s.tasks.CountByUser(ctx, userID)
	if err != nil {
		return result.Result[dto.DashboardMetrics]{}, err
	}

	completed, err := s.tasks.CountByUserAndStatus(ctx, userID, constants.StatusCompleted)
	if err != nil {
		return result.Result[dto.DashboardMetrics]{}, err
	}

	pending, err := s.tasks.CountByUserAndStatus(ctx, userID, constants.StatusPending)
	if err != nil {
		return result.Result[dto.DashboardMetrics]{}, err
	}

	var percentage float64
	if total > 0 {
		percentage = math.Round(float64(completed)/float64(total)*100*100) / 100
	}

	return result.Success(dto.DashboardMetrics{
		TotalTasks:           total,
		CompletedTasks:       completed,
		PendingTasks:         pending,
		CompletionPercentage: percentage,
	}), nil
}
