package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/rigparts/storefront/internal/api"
	"github.com/rigparts/storefront/internal/auth"
	"github.com/rigparts/storefront/internal/config"
	"github.com/rigparts/storefront/internal/pkg/logger"
	"github.com/rigparts/storefront/internal/repository/postgres"
	"github.com/rigparts/storefront/internal/service/catalog"
	"github.com/rigparts/storefront/internal/service/tracking"
	"github.com/rigparts/storefront/internal/sms"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if os.Getenv("LOG_LEVEL") == "debug" {
		logger.SetLevel(logger.DEBUG)
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		logger.Error("database unreachable", "error", err)
		os.Exit(1)
	}
	cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	trackingRepo := postgres.NewTrackingRepo(db)
	catalogRepo := postgres.NewCatalogRepo(db)
	accountRepo := postgres.NewAccountRepo(db)

	trackingSvc := tracking.NewService(trackingRepo, cfg.Site.BaseURL)
	catalogSvc := catalog.NewService(catalogRepo)

	smsClient := sms.NewClient(cfg.SMS)
	notifier := sms.NewNotifier(smsClient, cfg.SMS.FromNumber, cfg.SMS.NotifyNumber)

	sessions := auth.NewRedisSessionStore(rdb, cfg.Auth.SessionTTL())
	gate := auth.NewGate(sessions, accountRepo, cfg.Auth.CookieName, cfg.Site.BaseURL)

	// The OAuth callback needs this service's public origin, which is
	// not the storefront origin when the API runs on its own host.
	backendURL := os.Getenv("SERVER_BASE_URL")
	if backendURL == "" {
		backendURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}

	var authMgr *auth.Manager
	if cfg.Auth.GoogleClientID != "" {
		authMgr = auth.NewManager(cfg.Auth, sessions, accountRepo, backendURL, cfg.Site.BaseURL)
	} else {
		logger.Warn("google oauth not configured, auth routes disabled")
	}

	server := api.NewServer(trackingSvc, catalogSvc, notifier, gate, authMgr, cfg.Site.BaseURL)
	server.SetHealthProbes(db, rdb)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("storefront backend listening", "addr", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
