package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/bus"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/circuitbreaker"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/config"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/database"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/health"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	nrpkg "github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/newrelic"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/server"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/ticketing/gateway"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/ticketing/handler"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/ticketing/repository"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/ticketing/usecase"
)

func main() {
	appName := "ticketing-service"
	configPath := "config/ticketing.env"
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

	redisClient, err := database.NewRedisClient(ctx, configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.RegisterCloser("redis", redisClient)

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

	// Upstream clients share one breaker per service
	breakers := circuitbreaker.NewManager(zapLogger)
	upstreams := gateway.NewHTTPGateway(configs, breakers, redisClient.GetClient())
	ticketPublisher := gateway.NewTicketPublisher(publisher, configs.Broker.Topics)

	ticketRepo := repository.NewTicketRepository(postgresClient.GetDB())
	ticketUC := usecase.NewTicketUC(configs, ticketRepo,
		upstreams.Passenger, upstreams.Transport, upstreams.Payment, ticketPublisher)
	ticketHandler := handler.NewHandler(ticketUC, configs)

	sweepCtx, stopSweep := context.WithCancel(ctx)
	go usecase.NewSweeper(ticketUC, configs.Ticketing.SweepInterval).Run(sweepCtx)
	shutdown.Register("ticket sweeper", func(context.Context) error {
		stopSweep()
		return nil
	})

	e := server.NewEcho(configs, appName, zapLogger, nrApp, map[string]health.Pinger{
		"postgres": postgresClient,
		"redis":    redisClient,
	})
	ticketHandler.RegisterRoutes(e)

	if err := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown).Run(ctx); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
