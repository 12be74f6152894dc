package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/tactical_dashboard/internal/config"
	v1 "github.com/shenikar/tactical_dashboard/internal/handler/http/v1"
	"github.com/shenikar/tactical_dashboard/internal/handler/ws"
	"github.com/shenikar/tactical_dashboard/internal/hub"
	"github.com/shenikar/tactical_dashboard/internal/repository"
	"github.com/shenikar/tactical_dashboard/internal/service"
	"github.com/shenikar/tactical_dashboard/internal/webhook"
	"github.com/shenikar/tactical_dashboard/pkg/logger"
	"github.com/shenikar/tactical_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/tactical_dashboard/pkg/redis"
	"github.com/shenikar/tactical_dashboard/pkg/sqlite"

	_ "github.com/shenikar/tactical_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Tactical Dashboard API
// @version 1.0
// @description Field officer situational-awareness dashboard: routes, alerts, incidents, emergency services and a live /ws event channel.
// @host localhost:5000
// @BasePath /api

// openStore выбирает хранилище по STORE_BACKEND. closeFn освобождает соединения.
func openStore(ctx context.Context, cfg *config.Config, redisClient *goredis.Client, log *logrus.Logger) (service.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		log.Info("Running database migrations...")
		if err := postgres.Migrate(cfg.DatabaseURL, "file://migrations"); err != nil {
			return nil, nil, err
		}
		log.Info("Database migrations applied successfully")

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewPostgresStore(dbpool, redisClient, cfg.RouteCacheTTL), dbpool.Close, nil

	case config.StoreSQLite:
		db, err := sqlite.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open SQLite: %w", err)
		}
		store, err := repository.NewSQLiteStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.WithField("path", cfg.SQLitePath).Info("Using SQLite store")
		return store, func() { _ = db.Close() }, nil

	default:
		log.Info("Using in-memory store")
		return repository.NewMemoryStore(), func() {}, nil
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis необязателен: без него нет кэша маршрутов и ретрансляции в диспетчерскую
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	var dispatch webhook.DispatchPublisher
	if redisClient != nil {
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		dispatch = webhook.NewRedisDispatchPublisher(redisClient)
		webhook.NewDispatchWorker(redisClient, log, cfg).Start(ctx)
	}

	store, closeStore, err := openStore(ctx, cfg, redisClient, log)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	if cfg.SeedData {
		if err := repository.Seed(ctx, store); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
	}

	// Хаб рассылки и периодический status_update
	eventHub := hub.New(log)
	go eventHub.RunHeartbeat(ctx, cfg.HeartbeatInterval)

	// Инициализация сервисов
	dashboardService := service.NewDashboardService(store, eventHub, dispatch, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboardService, log)
	wsHandler := ws.NewHandler(eventHub, dashboardService, log, cfg.WSWriteWait)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	router.GET("/ws", wsHandler.Serve)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
