package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "todolist-api.com/todolist-api/internal/configs"
	httpapi "todolist-api.com/todolist-api/internal/http"
	repository "todolist-api.com/todolist-api/internal/repositories"
	"todolist-api.com/todolist-api/internal/security"
	"todolist-api.com/todolist-api/internal/seed"
	"todolist-api.com/todolist-api/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the todo list HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		hasher := security.NewPasswordHasher()
		issuer := security.NewTokenIssuer(security.TokenConfig{
			Secret:     cfg.JWTSecret,
			Issuer:     cfg.JWTIssuer,
			Audience:   cfg.JWTAudience,
			Expiration: time.Duration(cfg.TokenExpirationMinutes) * time.Minute,
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := seed.NewSeeder(userRepo, taskRepo, hasher).Run(ctx); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}

		authService := services.NewAuthService(userRepo, hasher, issuer)
		taskService := services.NewTaskService(taskRepo)
		dashboardService := services.NewDashboardService(taskRepo)

		e := echo.New()
		handler := httpapi.NewHandler(authService, taskService, dashboardService)
		httpapi.Register(e, handler, issuer)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
