package cmd

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "todolist-api.com/todolist-api/internal/configs"
	repository "todolist-api.com/todolist-api/internal/repositories"
	"todolist-api.com/todolist-api/internal/security"
	"todolist-api.com/todolist-api/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo users and tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		hasher := security.NewPasswordHasher()

		return seed.NewSeeder(userRepo, taskRepo, hasher).Run(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
