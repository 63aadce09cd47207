package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/saboracademico/backend/internal/api"
	"github.com/saboracademico/backend/internal/config"
	"github.com/saboracademico/backend/internal/domain"
	"github.com/saboracademico/backend/internal/fcm"
	"github.com/saboracademico/backend/internal/mailer"
	"github.com/saboracademico/backend/internal/repository"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	logger, err := initLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration; this also verifies the service account file,
	// so a broken deployment dies here rather than on the first request.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Starting notification relay",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	ctx := context.Background()

	// Initialize Firebase: one app shared by messaging and Firestore.
	app, err := firebase.NewApp(ctx,
		&firebase.Config{DatabaseURL: cfg.Firebase.DatabaseURL},
		option.WithCredentialsFile(cfg.Firebase.CredentialsFile),
	)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase app", zap.Error(err))
	}

	fcmClient, err := fcm.NewClient(ctx, app, logger)
	if err != nil {
		logger.Fatal("Failed to initialize FCM client", zap.Error(err))
	}
	logger.Info("FCM client initialized")

	userStore, err := repository.NewFirestoreUserStore(ctx, app, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Firestore client", zap.Error(err))
	}
	defer userStore.Close()
	logger.Info("Firestore client initialized")

	// Initialize mail transport
	mailTransport := mailer.New(cfg.Mail, logger)

	// Initialize services
	notificationService := domain.NewNotificationService(fcmClient, userStore, logger)
	mailService := domain.NewMailService(mailTransport, logger)

	// Initialize handlers
	notifyHandler := api.NewNotifyHandler(notificationService, logger)
	mailHandler := api.NewMailHandler(mailService, logger)
	healthHandler := api.NewHealthHandler()

	// Initialize router
	router := api.NewRouter(notifyHandler, mailHandler, healthHandler, cfg.CORS.AllowedOrigin, logger)
	r := router.Setup()

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func initLogger() (*zap.Logger, error) {
	env := os.Getenv("ENV")
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
