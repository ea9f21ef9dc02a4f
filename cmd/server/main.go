package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newswire-apps/newsquiz-service/internal/cache"
	"github.com/newswire-apps/newsquiz-service/internal/config"
	"github.com/newswire-apps/newsquiz-service/internal/events"
	"github.com/newswire-apps/newsquiz-service/internal/generation"
	"github.com/newswire-apps/newsquiz-service/internal/handlers"
	"github.com/newswire-apps/newsquiz-service/internal/ingest"
	"github.com/newswire-apps/newsquiz-service/internal/models"
	"github.com/newswire-apps/newsquiz-service/internal/repositories/postgres"
	"github.com/newswire-apps/newsquiz-service/internal/services"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
	"github.com/newswire-apps/newsquiz-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Quiz{},
		&models.UserQuiz{},
		&models.Comment{},
	); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	repo := postgres.NewRepository(db)

	var cacheService cache.CacheService = cache.NoopCache{}
	if redisClient, err := pkg.NewRedisClient(cfg); err != nil {
		logger.Warn("redis unavailable, running without quiz cache", "error", err)
	} else {
		cacheService = cache.NewRedisCache(redisClient, logger)
	}

	var publisher events.EventPublisher
	kafkaPublisher, err := events.NewKafkaEventPublisher(events.PublisherConfig{
		KafkaBrokers: cfg.KafkaBrokers,
		TopicName:    cfg.EventTopic,
		Logger:       utils.ToSlogLogger(logger),
	})
	if err != nil {
		logger.Warn("kafka unavailable, events disabled", "error", err)
		publisher = events.NoopEventPublisher{}
	} else {
		publisher = kafkaPublisher
		defer publisher.Close()
	}

	chat, err := generation.NewOpenAIChat(cfg.OpenAIKey, cfg.OpenAIModel)
	if err != nil {
		logger.Error("openai client init failed", "error", err)
		os.Exit(1)
	}
	generator := generation.NewGenerator(chat, generation.GeneratorConfig{
		Retries: cfg.GenerationRetries,
		Delay:   cfg.GenerationDelay,
		Timeout: cfg.GenerationTimeout,
	}, logger)

	validator := utils.NewValidator()
	serviceManager := services.NewServiceManager(repo, generator, cacheService, publisher, logger, cfg.PassingScore)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher := ingest.NewFetcher(repo, cfg.FeedURLs, logger)
	go fetcher.Run(ctx, cfg.FetchInterval)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(serviceManager, validator, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
