package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freightbid/cmd"
	httpin "freightbid/internal/adapters/in/http"
	"freightbid/internal/adapters/out/cloudinary"
	"freightbid/internal/adapters/out/gateway"
	"freightbid/internal/adapters/out/notify"
	"freightbid/internal/adapters/out/postgres/bidrepo"
	"freightbid/internal/adapters/out/postgres/identityrepo"
	"freightbid/internal/adapters/out/postgres/paymentrepo"
	"freightbid/internal/adapters/out/postgres/shipmentrepo"
	"freightbid/internal/core/ports"
	"freightbid/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := getConfigs()
	if err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	db, err := openDatabase(configs)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	sink, closeSink, err := buildNotificationSink(configs, logger)
	if err != nil {
		logger.Error("notification sink failed", "error", err)
		os.Exit(1)
	}
	defer closeSink()

	imageStore := cloudinary.NewImageStore(
		configs.CloudinaryCloudName,
		configs.CloudinaryAPIKey,
		configs.CloudinaryAPISecret,
		configs.CloudinaryFolder,
	)
	paymentGateway := gateway.NewSimulatedGateway(logger)

	root := cmd.NewCompositionRoot(configs, db, imageStore, sink, paymentGateway, logger)

	jobManager := jobs.NewJobManager(
		root.CreateReconcilePaymentsCommandHandler(),
		configs.PaymentPendingCutoff,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("job startup failed", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs, logger)
}

func getConfigs() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		// Environment variables may come from the process environment.
		slog.Warn("no .env file loaded", "error", err)
	}

	cutoff := 30 * time.Minute
	if raw := os.Getenv("PAYMENT_PENDING_CUTOFF"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return cmd.Config{}, fmt.Errorf("invalid PAYMENT_PENDING_CUTOFF: %w", err)
		}
		cutoff = parsed
	}

	config := cmd.Config{
		HTTPPort:             os.Getenv("HTTP_PORT"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            os.Getenv("DB_SSLMODE"),
		RabbitURL:            os.Getenv("RABBITMQ_URL"),
		NotificationQueue:    os.Getenv("NOTIFICATION_QUEUE"),
		CloudinaryCloudName:  os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:     os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:  os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:     os.Getenv("CLOUDINARY_FOLDER"),
		PaymentPendingCutoff: cutoff,
	}

	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.NotificationQueue == "" {
		config.NotificationQueue = "notifications"
	}
	if config.CloudinaryFolder == "" {
		config.CloudinaryFolder = "freightbid"
	}
	if config.JWTSecret == "" {
		return cmd.Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError surfaces unique index violations as
	// gorm.ErrDuplicatedKey, which the bid repository relies on.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&bidrepo.BidDTO{},
		&paymentrepo.PaymentDTO{},
		&identityrepo.UserDTO{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func buildNotificationSink(configs cmd.Config, logger *slog.Logger) (ports.NotificationSink, func(), error) {
	if configs.RabbitURL == "" {
		logger.Warn("RABBITMQ_URL not set, logging notifications instead")
		return notify.NewSlogSink(logger), func() {}, nil
	}

	sink, err := notify.NewRabbitSink(configs.RabbitURL, configs.NotificationQueue)
	if err != nil {
		return nil, nil, err
	}
	return sink, func() { _ = sink.Close() }, nil
}

func startWebServer(root cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		root.CreateCreateShipmentCommandHandler(),
		root.CreateUpdateShipmentCommandHandler(),
		root.CreatePublishShipmentCommandHandler(),
		root.CreateAddShipmentPhotoCommandHandler(),
		root.CreateCancelShipmentCommandHandler(),
		root.CreateSubmitBidCommandHandler(),
		root.CreateAcceptBidCommandHandler(),
		root.CreateRejectBidCommandHandler(),
		root.CreateInitiatePaymentCommandHandler(),
		root.CreateHandlePaymentCallbackCommandHandler(),
		root.CreateStartTransitCommandHandler(),
		root.CreateConfirmDeliveryCommandHandler(),
		root.CreateGetShipmentQueryHandler(),
		root.CreateGetCustomerShipmentsQueryHandler(),
		root.CreateGetAvailableShipmentsQueryHandler(),
		root.CreateGetShipmentBidsQueryHandler(),
		root.CreateGetDriverBidsQueryHandler(),
		root.CreateGetPaymentStatusQueryHandler(),
	)
	server.RegisterRoutes(e, []byte(configs.JWTSecret))

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			logger.Error("web server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
