package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sutbazar/config"
	"sutbazar/internal/database"
	"sutbazar/internal/repository"
	"sutbazar/internal/router"
	"sutbazar/internal/service"
	"sutbazar/internal/worker"
	"sutbazar/pkg/cloudinary"
	"sutbazar/pkg/logger"
	"sutbazar/pkg/sms"
	"sutbazar/pkg/telegram"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	if err := logger.InitLogger(cfg.Server.LogLevel); err != nil {
		log.Fatalf("logger: %v", err)
	}

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		zap.S().Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		zap.S().Fatalf("migrate: %v", err)
	}

	cloud, err := cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		zap.S().Fatalf("cloudinary: %v", err)
	}

	smsClient := sms.NewClient(cfg.SMS.BaseURL, cfg.SMS.Token)

	var notifier service.Notifier = telegram.Noop{}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		bot, err := telegram.New(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			zap.S().Fatalf("telegram: %v", err)
		}
		notifier = bot
		zap.S().Info("telegram alerts enabled")
	} else {
		zap.S().Info("telegram alerts disabled: set TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID to enable")
	}

	sweeper := worker.NewOtpSweeper(repository.NewOtpRepository(db))
	go sweeper.Start()

	engine := router.Setup(cfg, db, cloud, smsClient, notifier)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		zap.S().Infof("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Fatalf("server shutdown: %v", err)
	}
	zap.S().Info("server stopped")
}
