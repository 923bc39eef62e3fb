package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/config"
	"github.com/colisgo/colisgo/internal/pkg/database"
	"github.com/colisgo/colisgo/internal/pkg/health"
	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/middleware"
	"github.com/colisgo/colisgo/internal/pkg/nats"
	nrpkg "github.com/colisgo/colisgo/internal/pkg/newrelic"
	"github.com/colisgo/colisgo/services/billing/gateway"
	"github.com/colisgo/colisgo/services/billing/handler"
	"github.com/colisgo/colisgo/services/billing/repository"
	"github.com/colisgo/colisgo/services/billing/usecase"
)

func main() {
	appName := "billing-service"
	configs := config.InitConfig("config/billing.env")

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitFromConfig(configs, appName, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	billingRepo := repository.NewBillingRepository(configs, postgresClient.GetDB())
	billingGW := gateway.NewBillingGW(natsClient)
	commissionCache := gateway.NewCommissionCache(redisClient, configs)
	billingUC := usecase.NewBillingUC(configs, billingRepo, billingGW, commissionCache)

	billingHandler := handler.NewHandler(billingUC, configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecovery(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(logger.EchoMiddleware(zapLogger))

	healthService := health.NewService()
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	billingHandler.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to shut down HTTP server gracefully", logger.Err(err))
	}

	zapLogger.Info("Server stopped", logger.String("app", appName))
}
