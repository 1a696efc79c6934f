package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/creditbridge/credit-service/internal/cache"
	"github.com/creditbridge/credit-service/internal/config"
	"github.com/creditbridge/credit-service/internal/handler"
	"github.com/creditbridge/credit-service/internal/integrations/rates"
	"github.com/creditbridge/credit-service/internal/repository"
	"github.com/creditbridge/credit-service/internal/service"
	"github.com/creditbridge/credit-service/internal/utils/email"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize offer cache
	offerCache := cache.NewOfferCache(cfg)
	defer offerCache.Close()
	if err := offerCache.Ping(context.Background()); err != nil {
		logger.Fatalf("Failed to ping redis: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	var notifier service.Notifier
	if cfg.SMTPHost != "" {
		notifier = email.NewSender(cfg, logger)
	}
	svc := service.NewService(repo, offerCache, notifier, logger)
	ratesClient := rates.NewClient(cfg, logger)
	h := handler.NewHandler(svc, ratesClient, logger)

	// Setup router
	r := handler.NewRouter(h, logger)

	// Nightly system stats snapshot
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := svc.SnapshotSystemStats(ctx); err != nil {
			logger.Errorf("System stats snapshot failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule stats snapshot: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
