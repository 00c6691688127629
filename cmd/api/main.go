package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receiptpro/internal/client"
	"receiptpro/internal/config"
	"receiptpro/internal/handler"
	"receiptpro/internal/mailer"
	"receiptpro/internal/middleware"
	"receiptpro/internal/repository"
	"receiptpro/internal/server"
	"receiptpro/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		log.WithError(err).Fatal("Failed to parse config")
	}

	setupLogger(cfg.Log)

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db, err := client.InitDB(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	userRepo := repository.NewUserRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	dispatcher := mailer.NewSMTPDispatcher(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		Timeout:  cfg.SMTP.Timeout,
	})

	userService := service.NewUserService(userRepo)
	receiptService := service.NewReceiptService(db, userRepo, receiptRepo, dispatcher)
	adminService := service.NewAdminService(adminRepo, userRepo, receiptRepo)

	// First-run operator provisioning. Without a configured password there
	// is no admin account at all; that is fatal in production and merely
	// inconvenient in development.
	bootstrapCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = adminService.EnsureBootstrapAdmin(bootstrapCtx, cfg.Auth.AdminBootstrapUsername, cfg.Auth.AdminBootstrapPassword)
	cancel()
	if err != nil {
		if errors.Is(err, service.ErrBootstrapPasswordMissing) && !cfg.Environment.IsProduction() {
			log.Warn("No admin account provisioned; set ADMIN_BOOTSTRAP_PASSWORD to create one")
		} else {
			log.WithError(err).Fatal("Failed to provision admin account")
		}
	}

	sessions := middleware.NewSessions(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, cfg.Environment.IsProduction())

	authHandler := handler.NewAuthHandler(userService, sessions)
	receiptHandler := handler.NewReceiptHandler(receiptService)
	adminHandler := handler.NewAdminHandler(adminService, receiptService, sessions)

	srv := server.NewServer(sessions, authHandler, receiptHandler, adminHandler)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.WithField("addr", serverAddr).Info("Starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.WithError(err).Fatal("HTTP server shutdown error")
	}
}

func setupLogger(cfg config.Log) {
	log.SetOutput(os.Stdout)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
