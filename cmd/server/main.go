package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/api"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/config"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/mailer"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/pkg/logger"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/repository/postgres"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/service/dispatch"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/tracking"

	_ "github.com/lib/pq" // PostgreSQL driver
)

func main() {
	logger.SetLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL")))

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}
	cfg, err := config.LoadFromEnv(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	cancelPing()

	composer, err := mailer.NewComposer(cfg.Mail.Subject, cfg.Mail.TemplatePath, cfg.Mail.BaseURL)
	if err != nil {
		log.Fatalf("welcome template: %v", err)
	}

	transport := mailer.NewSMTPTransport(mailer.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
		Timeout:  cfg.SMTP.Timeout(),
	})

	repo := postgres.NewContactRepo(db)
	engine := dispatch.NewService(repo, composer, transport, cfg.SMTP.Timeout())

	var dedup *tracking.Deduper
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		dedup = tracking.NewDeduper(rdb, cfg.Redis.DedupTTL())
		logger.Info("open dedup enabled", "redis", cfg.Redis.Addr)
	}

	forwarder := tracking.NewForwarder(cfg.Analytics.WebhookURL, nil, cfg.Analytics.Timeout())
	beacon := tracking.NewHandler(forwarder, dedup)

	srv := api.NewServer(cfg.Server, engine, beacon)

	go func() {
		logger.Info("server listening", "addr", cfg.Server.Addr())
		if err := srv.ListenAndServe(cfg.Server.Addr()); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown incomplete", "error", err)
	}
}
