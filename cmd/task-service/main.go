package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rohanvs/tasklink/internal/auth"
	"github.com/rohanvs/tasklink/internal/config"
	"github.com/rohanvs/tasklink/internal/database"
	"github.com/rohanvs/tasklink/internal/handlers"
	"github.com/rohanvs/tasklink/internal/logger"
	"github.com/rohanvs/tasklink/internal/middleware"
	"github.com/rohanvs/tasklink/internal/service"
	"github.com/rohanvs/tasklink/internal/storage"
)

func main() {
	log := logger.New("task-service")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	dbManager, err := database.NewDBManager(ctx, database.Config{
		PrimaryDSN:      cfg.Database.PrimaryDSN,
		ReplicaDSNs:     cfg.Database.ReplicaDSNs,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbManager.Close()

	if err := dbManager.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema: %v", err)
	}

	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
		log.Warn("JWT_SECRET not set, using default (insecure for production)")
	}

	jwtManager := auth.NewJWTManager(jwtSecret, cfg.Auth.TokenTTL)
	userStorage := storage.NewUserStorage(dbManager)
	taskStorage := storage.NewTaskStorage(dbManager)

	userService := service.NewUserService(userStorage, jwtManager)
	taskService := service.NewTaskService(userStorage, taskStorage)

	mux := handlers.NewRouter(
		handlers.NewUserHandler(userService),
		handlers.NewTaskHandler(taskService),
		middleware.NewAuthMiddleware(jwtManager),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: mux,
	}

	go func() {
		log.Info("Task service listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down task service...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("Task service stopped")
}
