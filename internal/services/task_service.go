package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	dto "todolist-api.com/todolist-api/internal/data_models"
	repository "todolist-api.com/todolist-api/internal/repositories"
	"todolist-api.com/todolist-api/pkg/constants"
	model "todolist-api.com/todolist-api/pkg/models"
	"todolist-api.com/todolist-api/pkg/result"
)

// taskNotFoundMessage is returned both when a task does not exist and when
// it belongs to another user, so non-owners learn nothing either way.
const taskNotFoundMessage = "Task not found"

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) ListTasks(
	ctx context.Context,
	userID string,
	status *constants.TaskStatus,
) (result.Result[[]model.Task], error) {
	var (
		tasks []model.Task
		err   error
	)

	if status != nil {
		tasks, err = s.repo.ListByUserAndStatus(ctx, userID, *status)
	} else {
		tasks, err = s.repo.ListByUser(ctx, userID)
	}
	if err != nil {
		return result.Result[[]model.Task]{}, err
	}

	if tasks == nil {
		tasks = []model.Task{}
	}

	return result.Success(tasks), nil
}

func (s *TaskService) GetTask(
	ctx context.Context,
	id, userID string,
) (result.Result[*model.Task], error) {
	task, found, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return result.Result[*model.Task]{}, err
	}
	if !found {
		return result.Failure[*model.Task](taskNotFoundMessage), nil
	}

	return result.Success(task), nil
}

func (s *TaskService) CreateTask(
	ctx context.Context,
	userID, title, description string,
) (result.Result[*model.Task], error) {
	task, err := s.repo.Create(ctx, userID, title, description)
	if err != nil {
		return result.Result[*model.Task]{}, err
	}

	return result.Success(task), nil
}

func (s *TaskService) UpdateTask(
	ctx context.Context,
	id, userID string,
	req dto.UpdateTaskRequest,
) (result.Result[*model.Task], error) {
	task, found, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return result.Result[*model.Task]{}, err
	}
	if !found {
		return result.Failure[*model.Task](taskNotFoundMessage), nil
	}

	if req.Title != nil && *req.Title != "" {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		status, err := constants.ParseTaskStatus(*req.Status)
		if err != nil {
			return result.Failure[*model.Task](err.Error()), nil
		}
		applyStatus(task, status)
	}

	now := time.Now().UTC()
	task.UpdatedAt = &now

	if err := s.repo.Update(ctx, task); err != nil {
		return result.Result[*model.Task]{}, err
	}

	return result.Success(task), nil
}

func (s *TaskService) DeleteTask(
	ctx context.Context,
	id, userID string,
) (result.Result[bool], error) {
	task, found, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return result.Result[bool]{}, err
	}
	if !found {
		return result.Failure[bool](taskNotFoundMessage), nil
	}

	if err := s.repo.Delete(ctx, task); err != nil {
		return result.Result[bool]{}, err
	}

	return result.Success(true), nil
}

func (s *TaskService) ToggleStatus(
	ctx context.Context,
	id, userID string,
) (result.Result[*model.Task], error) {
	task, found, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return result.Result[*model.Task]{}, err
	}
	if !found {
		return result.Failure[*model.Task](taskNotFoundMessage), nil
	}

	if task.Status == constants.StatusPending {
		task.MarkCompleted()
	} else {
		task.MarkPending()
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return result.Result[*model.Task]{}, err
	}

	return result.Success(task), nil
}

// findOwned loads a task and checks ownership in one place. A task owned by
// another user reports the same way as a missing one.
func (s *TaskService) findOwned(ctx context.Context, id, userID string) (*model.Task, bool, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if task.UserID != userID {
		return nil, false, nil
	}

	return task, true, nil
}

// Status changes go through the model transitions rather than assigning the
// enum directly, so CompletedAt stays consistent.
func applyStatus(task *model.Task, status constants.TaskStatus) {
	if status == constants.StatusCompleted {
		task.MarkCompleted()
	} else {
		task.MarkPending()
	}
}
