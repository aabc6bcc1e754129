package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/config"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/database"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/health"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/server"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/passenger/handler"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/passenger/repository"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/passenger/usecase"
)

func main() {
	appName := "passenger-service"
	configPath := "config/passenger.env"
	configs := config.InitConfig(configPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	shutdown := server.NewShutdownManager(zapLogger)

	postgresClient, err := database.NewPostgresClient(ctx, configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.RegisterCloser("postgres", postgresClient)

	// Redis only backs the login rate limiter
	redisClient, err := database.NewRedisClient(ctx, configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.RegisterCloser("redis", redisClient)

	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	passengerRepo := repository.NewPassengerRepository(postgresClient.GetDB())
	passengerUC := usecase.NewPassengerUC(configs, passengerRepo)
	passengerHandler := handler.NewHandler(passengerUC, configs, redisClient.GetClient())

	e := server.NewEcho(configs, appName, zapLogger, nrApp, map[string]health.Pinger{
		"postgres": postgresClient,
		"redis":    redisClient,
	})
	passengerHandler.RegisterRoutes(e)

	if err := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown).Run(ctx); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
