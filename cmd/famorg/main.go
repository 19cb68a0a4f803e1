package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"famorg/internal/config"
	"famorg/internal/database"
	"famorg/internal/geocode"
	"famorg/internal/logging"
	"famorg/internal/server"
	"famorg/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info").Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sessions, err := session.NewManager(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		logger.Error("session manager", "error", err)
		os.Exit(1)
	}

	geocoder := geocode.NewClient(geocode.Config{
		BaseURL:   cfg.GeocoderBaseURL,
		UserAgent: cfg.GeocoderUserAgent,
	})

	srv := server.New(db, sessions, geocoder, logger)

	// Periodic cleanup of lockout and rate-limit bookkeeping.
	sched := cron.New()
	if _, err := sched.AddFunc("@every 10m", func() {
		srv.LoginGuard().Cleanup()
		srv.RateLimiter().Cleanup()
	}); err != nil {
		logger.Error("schedule cleanup", "error", err)
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("famorg listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
