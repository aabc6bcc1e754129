package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/bus"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/config"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/database"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/health"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/server"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/transport/gateway"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/transport/handler"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/transport/repository"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/transport/usecase"
)

func main() {
	appName := "transport-service"
	configPath := "config/transport.env"
	configs := config.InitConfig(configPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
		logger.String("broker", configs.Broker.Driver))

	shutdown := server.NewShutdownManager(zapLogger)

	postgresClient, err := database.NewPostgresClient(ctx, configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.RegisterCloser("postgres", postgresClient)

	publisher, err := bus.NewPublisher(ctx, configs.Broker, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to message bus", logger.Err(err))
	}
	shutdown.RegisterCloser("bus publisher", publisher)

	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	transportRepo := repository.NewTransportRepository(postgresClient.GetDB())
	schedulePublisher := gateway.NewSchedulePublisher(publisher, configs.Broker.Topics.ScheduleUpdates)
	transportUC := usecase.NewTransportUC(configs, transportRepo, schedulePublisher)
	transportHandler := handler.NewHandler(transportUC, configs)

	e := server.NewEcho(configs, appName, zapLogger, nrApp, map[string]health.Pinger{
		"postgres": postgresClient,
	})
	transportHandler.RegisterRoutes(e)

	if err := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown).Run(ctx); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
