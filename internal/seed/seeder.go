package seed

import (
	"context"
	"log"

	repository "todolist-api.com/todolist-api/internal/repositories"
	"todolist-api.com/todolist-api/internal/security"
	model "todolist-api.com/todolist-api/pkg/models"
)

type Seeder struct {
	users  *repository.UserRepository
	tasks  *repository.TaskRepository
	hasher *security.PasswordHasher
}

func NewSeeder(
	users *repository.UserRepository,
	tasks *repository.TaskRepository,
	hasher *security.PasswordHasher,
) *Seeder {
	return &Seeder{
		users:  users,
		tasks:  tasks,
		hasher: hasher,
	}
}

// Run seeds two demo accounts with sample tasks. It is a no-op once any
// user exists.
func (s *Seeder) Run(ctx context.Context) error {
	seeded, err := s.users.Any(ctx)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	admin, err := s.createUser(ctx, "admin@todolist.com", "Admin123!", "Admin User")
	if err != nil {
		return err
	}

	regular, err := s.createUser(ctx, "user@todolist.com", "User123!", "Regular User")
	if err != nil {
		return err
	}

	adminTasks := []struct {
		title       string
		description string
		completed   bool
	}{
		{"Complete project documentation", "Write comprehensive documentation for the Todo List API", false},
		{"Review pull requests", "Review and merge pending pull requests", true},
		{"Update dependencies", "Update all packages to latest stable versions", false},
	}
	for _, t := range adminTasks {
		if err := s.createTask(ctx, admin, t.title, t.description, t.completed); err != nil {
			return err
		}
	}

	regularTasks := []struct {
		title       string
		description string
		completed   bool
	}{
		{"Buy groceries", "Milk, bread, eggs, and fruits", false},
		{"Morning exercise", "30 minutes cardio workout", true},
	}
	for _, t := range regularTasks {
		if err := s.createTask(ctx, regular, t.title, t.description, t.completed); err != nil {
			return err
		}
	}

	log.Println("database seeded with demo users and tasks")
	return nil
}

func (s *Seeder) createUser(ctx context.Context, email, password, fullName string) (*model.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return s.users.Create(ctx, email, hash, fullName)
}

func (s *Seeder) createTask(
	ctx context.Context,
	owner *model.User,
	title, description string,
	completed bool,
) error {
	task, err := s.tasks.Create(ctx, owner.ID, title, description)
	if err != nil {
		return err
	}

	if completed {
		task.MarkCompleted()
		return s.tasks.Update(ctx, task)
	}
	return nil
}
