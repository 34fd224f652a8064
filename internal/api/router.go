package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/baharkarakas/airdrop-scanner/internal/api/handlers"
	"github.com/baharkarakas/airdrop-scanner/internal/auth"
	"github.com/baharkarakas/airdrop-scanner/internal/config"
	"github.com/baharkarakas/airdrop-scanner/internal/metrics"
	"github.com/baharkarakas/airdrop-scanner/internal/middleware"
)

const ProcessWalletsPath = "/api/process-wallets"

// NewRouter wires the HTTP surface. tm may be nil to leave /api open.
func NewRouter(cfg config.Config, svc handlers.WalletProcessor, tm *auth.TokenManager, log *zap.Logger) (http.Handler, error) {
	page, err := handlers.NewPageHandler(ProcessWalletsPath, log)
	if err != nil {
		return nil, err
	}
	wh := handlers.NewWalletHandler(svc, cfg.MaxWallets, cfg.MaxBodyBytes, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(log), middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS, cfg.RateBurst))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Get("/", page.Index)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tm))
		r.Post(ProcessWalletsPath, wh.Process)
	})

	return r, nil
}
