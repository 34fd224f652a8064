package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/baharkarakas/airdrop-scanner/internal/airdrop"
	"github.com/baharkarakas/airdrop-scanner/internal/api"
	"github.com/baharkarakas/airdrop-scanner/internal/auth"
	"github.com/baharkarakas/airdrop-scanner/internal/config"
	"github.com/baharkarakas/airdrop-scanner/internal/logger"
	"github.com/baharkarakas/airdrop-scanner/internal/metrics"
	"github.com/baharkarakas/airdrop-scanner/internal/services"
	"github.com/baharkarakas/airdrop-scanner/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, level := logger.New(cfg.Env, cfg.Log)
	defer func() { _ = log.Sync() }()

	tp := logger.InitTrace("airdrop-scanner")
	defer func() { _ = tp.Shutdown(context.Background()) }()

	config.Watch(func(next config.Config) {
		if logger.SetLevel(level, next.Log.Level) {
			log.Info("log level reloaded", zap.String("level", next.Log.Level))
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := airdrop.NewClient(cfg.Airdrop, log.Named("airdrop"))
	defer func() { _ = client.Close() }()
	wp := worker.NewPool(cfg.Worker.Concurrency)
	walletSvc := services.NewWalletService(client, wp, log.Named("wallets"))

	var tm *auth.TokenManager
	if cfg.Auth.Secret != "" {
		tm = auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TTL)
	}

	metrics.Init()
	r, err := api.NewRouter(cfg, walletSvc, tm, log)
	if err != nil {
		log.Error("router", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("port", cfg.HTTPPort),
			zap.String("env", cfg.Env),
			zap.String("upstream", cfg.Airdrop.BaseURL),
			zap.Int("worker_concurrency", wp.Size()),
			zap.Bool("auth", tm != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
