package main

import (
	"context"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/mansi2425/punjab-alumni-connect/docs" // swagger docs

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/mansi2425/punjab-alumni-connect/internal/assistant"
	"github.com/mansi2425/punjab-alumni-connect/internal/auth"
	"github.com/mansi2425/punjab-alumni-connect/internal/cache"
	"github.com/mansi2425/punjab-alumni-connect/internal/config"
	"github.com/mansi2425/punjab-alumni-connect/internal/db"
	"github.com/mansi2425/punjab-alumni-connect/internal/handler"
	"github.com/mansi2425/punjab-alumni-connect/internal/logger"
	"github.com/mansi2425/punjab-alumni-connect/internal/repository"
	"github.com/mansi2425/punjab-alumni-connect/internal/router"
	"github.com/mansi2425/punjab-alumni-connect/internal/service"
)

// @title Alumni Connect API
// @version 1.0
// @description Institutions, alumni directory, mentorship requests and connections, job and event boards, and an assistant.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger(cfg.Env)
	defer func() { _ = log.Sync() }()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Warn("failed to drop tables", zap.Error(err))
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn("redis unreachable, caching and logout revocation are degraded", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	cancelPing()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	institutionRepo := repository.NewInstitutionRepository(gormDB)
	mentorshipRepo := repository.NewMentorshipRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)

	tokenStore := auth.NewTokenStore(cacheClient)

	var generator assistant.Generator
	if cfg.AssistantAPIKey != "" {
		gemini, err := assistant.NewGeminiGenerator(context.Background(), cfg.AssistantAPIKey, cfg.AssistantModel, cfg.AssistantBaseURL, cfg.AssistantTimeout)
		if err != nil {
			log.Fatal("assistant init", zap.Error(err))
		}
		generator = gemini
		log.Info("assistant enabled", zap.String("model", gemini.Model()))
	} else {
		log.Warn("GEMINI_API_KEY not set, chatbot queries will be rejected")
	}

	// Initialize services
	userService := service.NewUserService(userRepo, institutionRepo, cacheClient, cfg.RecommendationTTL, log)
	institutionService := service.NewInstitutionService(institutionRepo, userRepo, cacheClient, log)
	mentorshipService := service.NewMentorshipService(mentorshipRepo, userRepo, log)
	jobService := service.NewJobService(jobRepo, log)
	eventService := service.NewEventService(eventRepo, log)
	chatService := service.NewChatService(generator, userRepo, jobRepo, eventRepo, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	router.Register(e, cfg, log, userRepo, tokenStore, router.Handlers{
		User:        handler.NewUserHandler(userService),
		Institution: handler.NewInstitutionHandler(institutionService),
		Mentorship:  handler.NewMentorshipHandler(mentorshipService),
		Job:         handler.NewJobHandler(jobService),
		Event:       handler.NewEventHandler(eventService),
		Chat:        handler.NewChatHandler(chatService),
		Auth:        handler.NewAuthHandler(tokenStore),
	})

	log.Info("swagger documentation available", zap.String("url", swaggerURL(cfg.SwaggerHost, cfg.ServerPort)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
}

// swaggerURL builds the swagger UI address; host may already carry a scheme.
func swaggerURL(host, port string) string {
	if host == "" {
		return "http://localhost:" + port + "/swagger/index.html"
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimSuffix(host, "/") + "/swagger/index.html"
}
