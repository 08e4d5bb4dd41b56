package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gideonbanks/needed/internal/pkg/config"
	"github.com/gideonbanks/needed/internal/pkg/database"
	"github.com/gideonbanks/needed/internal/pkg/health"
	"github.com/gideonbanks/needed/internal/pkg/logger"
	"github.com/gideonbanks/needed/internal/pkg/middleware"
	natspkg "github.com/gideonbanks/needed/internal/pkg/nats"
	"github.com/gideonbanks/needed/internal/pkg/ratelimit"
	"github.com/gideonbanks/needed/internal/pkg/retry"
	"github.com/gideonbanks/needed/internal/pkg/server"
	"github.com/gideonbanks/needed/internal/pkg/session"

	notifyHandler "github.com/gideonbanks/needed/services/notify/handler"
	notifyRepository "github.com/gideonbanks/needed/services/notify/repository"
	notifyUsecase "github.com/gideonbanks/needed/services/notify/usecase"
	providerGateway "github.com/gideonbanks/needed/services/provider/gateway"
	providerHandler "github.com/gideonbanks/needed/services/provider/handler"
	providerRepository "github.com/gideonbanks/needed/services/provider/repository"
	providerUsecase "github.com/gideonbanks/needed/services/provider/usecase"
	requestGateway "github.com/gideonbanks/needed/services/request/gateway"
	requestHandler "github.com/gideonbanks/needed/services/request/handler"
	requestRepository "github.com/gideonbanks/needed/services/request/repository"
	requestUsecase "github.com/gideonbanks/needed/services/request/usecase"
)

const appName = "needed-api"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

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

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	sessions := session.NewStore(
		configs.Token.Secret,
		time.Duration(configs.Token.SessionTTLMinutes)*time.Minute,
		configs.App.IsProduction(),
	)

	limiter := ratelimit.NewLimiter(
		time.Duration(configs.RateLimit.WindowSeconds)*time.Second,
		configs.RateLimit.Max,
	)
	defer limiter.Stop()

	// Request service
	requestRepo := requestRepository.NewRequestRepo(configs, db)
	matchGW := requestGateway.NewMatchGW(db)
	eventGW := requestGateway.NewEventGW(natsClient)
	requestUC := requestUsecase.NewRequestUC(configs, requestRepo, matchGW, eventGW)
	reqHandler := requestHandler.NewHandler(requestUC, limiter, configs)

	// Provider service. OTP delivery retries transient gateway failures.
	providerRepo := providerRepository.NewProviderRepo(configs, db, redisClient)
	otpSMSGW := providerGateway.NewSMSGWWithRetry(configs.SMS, retry.NewWithDefaults())
	providerUC := providerUsecase.NewProviderUC(configs, providerRepo, otpSMSGW)
	provHandler := providerHandler.NewHandler(providerUC, sessions, configs)

	// Notify service. Alerts get a single delivery attempt.
	notifyRepo := notifyRepository.NewNotifyRepo(configs, db)
	alertSMSGW := providerGateway.NewSMSGW(configs.SMS)
	notifyUC := notifyUsecase.NewNotifyUC(configs, notifyRepo, alertSMSGW)
	notHandler := notifyHandler.NewHandler(notifyUC, natsClient)
	if err := notHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer notHandler.Close()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	reqHandler.RegisterRoutes(e)
	provHandler.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})

	gracefulServer := server.NewGracefulServer(
		e,
		zapLogger,
		configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second,
	)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	shutdownManager.Shutdown(shutdownCtx)
}
