package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant/api"
	"restaurant/cmd"
	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/broker"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

func main() {
	configs := getConfigs()

	appLogger := logger.New(logger.Options{
		Service: configs.ServiceName,
		Env:     configs.Env,
		Level:   configs.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(configs)
	mustAutoMigrate(gormDB)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	defer closeWithLog(appLogger, "redis", redisClient.Close)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("connection to redis failed: %v", err)
	}

	writer := broker.NewKafkaWriter(configs.KafkaBrokers, configs.KafkaOrderChangedTopic)
	defer closeWithLog(appLogger, "kafka writer", writer.Close)

	app := cmd.NewCompositionRoot(configs, appLogger, gormDB, redisClient, broker.NewKafkaPublisher(writer))

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("failed to create jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, appLogger)
}

func getConfigs() cmd.Config {
	// A missing .env is fine; the environment may be set by the platform.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return config
}

func mustGormOpen(config cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DSN:                  config.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gorm_logger.Default.LogMode(gorm_logger.Warn),
	})
	if err != nil {
		log.Fatalf("connection to postgres through gorm failed: %v", err)
	}
	return gormDB
}

func mustAutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(postgres.Models()...); err != nil {
		log.Fatalf("schema migration failed: %v", err)
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, appLogger *slog.Logger) {
	doc, err := api.Load(ctx)
	if err != nil {
		log.Fatalf("invalid OpenAPI document: %v", err)
	}
	router, err := httpin.NewRouter(app.CreateHTTPServer(), app.CreateAuthenticator(), doc, appLogger)
	if err != nil {
		log.Fatalf("failed to build http router: %v", err)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: configs.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort),
		Handler:           corsHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.HTTPShutdownPeriod)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("http shutdown failed", "error", err)
		}
	}()

	appLogger.Info("http server listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http server failed: %v", err)
	}
}

func closeWithLog(l *slog.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		l.Error("close failed", "resource", name, "error", err)
	}
}
