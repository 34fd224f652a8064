package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/baharkarakas/airdrop-scanner/internal/api/httpx"
	"github.com/baharkarakas/airdrop-scanner/internal/api/validate"
	"github.com/baharkarakas/airdrop-scanner/internal/logger"
	"github.com/baharkarakas/airdrop-scanner/internal/middleware"
	"github.com/baharkarakas/airdrop-scanner/internal/models"
	"github.com/baharkarakas/airdrop-scanner/internal/services"
	"github.com/baharkarakas/airdrop-scanner/internal/wallet"
)

const (
	msgInvalidInput  = "Invalid input format"
	msgNoValid       = "No valid wallets provided"
	msgTooMany       = "Too many wallets"
	msgTooLarge      = "Request body too large"
	msgInternalError = "Internal server error"
)

type WalletProcessor interface {
	Process(ctx context.Context, wallets []string) (models.ProcessedResponse, error)
}

type WalletHandler struct {
	svc          WalletProcessor
	maxWallets   int
	maxBodyBytes int64
	log          *zap.Logger
}

// NewWalletHandler builds the handler. maxWallets and maxBodyBytes <= 0 mean unlimited.
func NewWalletHandler(svc WalletProcessor, maxWallets int, maxBodyBytes int64, log *zap.Logger) *WalletHandler {
	return &WalletHandler{svc: svc, maxWallets: maxWallets, maxBodyBytes: maxBodyBytes, log: log}
}

// Process handles POST /api/process-wallets.
func (h *WalletHandler) Process(w http.ResponseWriter, r *http.Request) {
	ctx, span := logger.StartSpanWithRequest(r, "process-wallets")
	defer span.End()
	log := logger.WithTrace(ctx, h.log).With(zap.String("request_id", middleware.RequestIDFrom(ctx)))
	if sub := middleware.FromCtx(ctx).Subject; sub != "" {
		log = log.With(zap.String("subject", sub))
	}

	body, err := httpx.DecodeAny(r, h.maxBodyBytes)
	if errors.Is(err, httpx.ErrBodyTooLarge) {
		httpx.WriteMessage(w, http.StatusRequestEntityTooLarge, msgTooLarge)
		return
	}
	if err != nil {
		h.fail(w, span, log, err)
		return
	}

	raw, err := validate.Array("wallets", body)
	if errors.Is(err, validate.ErrNullBody) {
		h.fail(w, span, log, err)
		return
	}
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidInput)
		return
	}

	wallets := wallet.Filter(raw)
	if len(wallets) == 0 {
		httpx.WriteMessage(w, http.StatusBadRequest, msgNoValid)
		return
	}
	if err := validate.MaxLen("wallets", len(wallets), h.maxWallets); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgTooMany)
		return
	}

	resp, err := h.svc.Process(ctx, wallets)
	if errors.Is(err, services.ErrNoValidWallets) {
		httpx.WriteMessage(w, http.StatusBadRequest, msgNoValid)
		return
	}
	if err != nil {
		h.fail(w, span, log, err)
		return
	}

	log.Info("wallets processed",
		zap.Int("submitted", len(raw)),
		zap.Int("valid", len(wallets)),
		zap.Int("eligible", len(resp.FilteredWallets)),
		zap.Float64("total_balance", resp.TotalBalance),
	)
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *WalletHandler) fail(w http.ResponseWriter, span trace.Span, log *zap.Logger, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, "process wallets")
	log.Error("error processing wallets", zap.Error(err))
	httpx.WriteMessage(w, http.StatusInternalServerError, msgInternalError)
}
