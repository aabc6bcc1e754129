package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/bus"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/config"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/database"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/health"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/server"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/notification/handler"
	busHandler "github.com/davidNdantsi/DSA-Assignment2-2025/services/notification/handler/bus"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/notification/repository"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/notification/usecase"
)

func main() {
	appName := "notification-service"
	configPath := "config/notification.env"
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
		logger.String("broker", configs.Broker.Driver),
		logger.Bool("storage_enabled", configs.Notification.StorageEnabled))

	shutdown := server.NewShutdownManager(zapLogger)

	postgresClient, err := database.NewPostgresClient(ctx, configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.RegisterCloser("postgres", postgresClient)

	redisClient, err := database.NewRedisClient(ctx, configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.RegisterCloser("redis", redisClient)

	group := configs.Broker.ConsumerGroup
	if group == "" {
		group = constants.DefaultConsumerGroup
	}
	subscriber, err := bus.NewSubscriber(ctx, configs.Broker, group, configs.Broker.Topics.All())
	if err != nil {
		zapLogger.Fatal("Failed to subscribe to message bus", logger.Err(err))
	}
	shutdown.RegisterCloser("bus subscriber", subscriber)

	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	notificationRepo := repository.NewNotificationRepository(postgresClient.GetDB())
	processed := repository.NewProcessedStore(redisClient.GetClient(), configs.Notification.DedupeTTL)
	notifier := usecase.NewNotifierUC(configs, notificationRepo)

	// The consumer stops before the subscriber it reads from is closed
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		consumer := busHandler.NewConsumer(subscriber, notifier, processed, configs.Broker, nrApp)
		if err := consumer.Run(consumerCtx); err != nil {
			zapLogger.Error("Notification consumer exited", logger.Err(err))
		}
	}()
	shutdown.Register("bus consumer", func(ctx context.Context) error {
		stopConsumer()
		select {
		case <-consumerDone:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	e := server.NewEcho(configs, appName, zapLogger, nrApp, map[string]health.Pinger{
		"postgres": postgresClient,
		"redis":    redisClient,
	})
	handler.NewHandler(notifier, configs).RegisterRoutes(e)

	if err := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown).Run(ctx); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
