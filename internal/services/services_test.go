package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	repository "todolist-api.com/todolist-api/internal/repositories"
	"todolist-api.com/todolist-api/internal/security"
	model "todolist-api.com/todolist-api/pkg/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Task{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, password, fullName string) *model.User {
	t.Helper()

	hasher := security.NewPasswordHasher()
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user, err := repository.NewUserRepository(db).Create(context.Background(), email, hash, fullName)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}
