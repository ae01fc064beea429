package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"levelup_backend/internal/api"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/scheduler"
	"levelup_backend/internal/service"
	"levelup_backend/pkg/auth"
	"levelup_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	if err := repo.Migrate(context.Background()); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	userService := service.NewUserService(repo, repo, cfg.Auth.SessionTTL)
	questService := service.NewQuestService(repo)
	taskService := service.NewTaskService(repo)
	studyLogService := service.NewStudyLogService(repo)
	assistantService := service.NewAssistantService()
	chatService := service.NewChatService(cfg.Chat)

	sessionAuth := auth.NewSessionAuth(userService)

	sweep := scheduler.New(repo, questService)
	if err := sweep.Start(cfg.Scheduler.SweepInterval); err != nil {
		zapLogger.Fatal("Failed to start quest sweep", zap.Error(err))
	}
	defer sweep.Stop()

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api/v1")
	api.NewUserRoutes(a, userService, sessionAuth)
	api.NewQuestRoutes(a, questService, sessionAuth)
	api.NewTaskRoutes(a, taskService, sessionAuth)
	api.NewStudyLogRoutes(a, studyLogService, sessionAuth)
	api.NewAssistantRoutes(a, assistantService, chatService, userService, sessionAuth)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
