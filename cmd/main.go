package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"golang.org/x/time/rate"

	"github.com/shenikar/shelter_dispatch_system/internal/config"
	v1 "github.com/shenikar/shelter_dispatch_system/internal/handler/http/v1"
	"github.com/shenikar/shelter_dispatch_system/internal/ledger"
	"github.com/shenikar/shelter_dispatch_system/internal/metrics"
	"github.com/shenikar/shelter_dispatch_system/internal/notify"
	"github.com/shenikar/shelter_dispatch_system/internal/repository"
	"github.com/shenikar/shelter_dispatch_system/internal/routecache"
	"github.com/shenikar/shelter_dispatch_system/internal/service"
	"github.com/shenikar/shelter_dispatch_system/pkg/logger"
	"github.com/shenikar/shelter_dispatch_system/pkg/postgres"
	redisclient "github.com/shenikar/shelter_dispatch_system/pkg/redis"
	"github.com/shenikar/shelter_dispatch_system/pkg/routing"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/shelter_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Shelter Dispatch System API
// @version 1.0
// @description Assigns people in alert zones to shelters and tracks them until arrival.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newRoutingProvider выбирает внешний провайдер маршрутов или оценку по прямой
func newRoutingProvider(cfg *config.Config, log *logrus.Logger) routing.Provider {
	if cfg.RoutingAPIKey == "" {
		log.Warn("ROUTING_API_KEY is not set, using straight-line distances")
		return routing.NewHaversineProvider(cfg.WalkingSpeedKmPerMin)
	}
	return routing.NewGoogleClient(routing.GoogleOptions{
		APIKey:      cfg.RoutingAPIKey,
		BaseURL:     cfg.RoutingBaseURL,
		Timeout:     cfg.RoutingTimeout,
		RateLimit:   rate.Limit(cfg.RoutingRateLimit),
		MaxElements: cfg.RoutingMaxElements,
	})
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPool,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	repo := repository.NewRepository(dbpool, redisClient, cfg.ZoneCacheTTL)

	// Учет занятости поднимается из базы до приема запросов
	seats := ledger.New(repo)
	shelters, err := repo.ListActiveShelters(ctx)
	if err != nil {
		log.Fatalf("Failed to load shelters: %v", err)
	}
	seats.Load(shelters)
	log.WithField("shelters", len(shelters)).Info("Occupancy ledger loaded")

	routes := routecache.New(routecache.NewRedisStore(redisClient), newRoutingProvider(cfg, log), log, routecache.Options{
		DistanceTTL:   cfg.DistanceCacheTTL,
		RouteTTL:      cfg.RouteCacheTTL,
		BatchInterval: cfg.RoutingBatchInterval,
		Concurrency:   cfg.RoutingConcurrency,
		WalkingSpeed:  cfg.WalkingSpeedKmPerMin,
	})

	// Очередь уведомлений и воркер доставки
	queue := notify.NewRedisQueue(redisClient)
	publisher := notify.NewQueuePublisher(queue)
	workerDone := notify.NewWorker(queue, log, cfg).Start(ctx)

	// Инициализация сервисов
	shelterService := service.NewShelterService(repo, seats, routes, publisher, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(shelterService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Воркер дочитывает текущее событие и завершается
	cancel()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Notification worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
