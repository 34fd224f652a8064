package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/baharkarakas/airdrop-scanner/internal/logger"
	"github.com/baharkarakas/airdrop-scanner/internal/metrics"
	"github.com/baharkarakas/airdrop-scanner/internal/models"
	"github.com/baharkarakas/airdrop-scanner/internal/worker"
)

var ErrNoValidWallets = errors.New("no valid wallets provided")

// BalanceFetcher looks up the airdrop balance of a single address.
type BalanceFetcher interface {
	FetchBalance(ctx context.Context, address string) (models.WalletResult, error)
}

type WalletService struct {
	fetcher BalanceFetcher
	wp      *worker.Pool
	log     *zap.Logger
}

func NewWalletService(f BalanceFetcher, wp *worker.Pool, log *zap.Logger) *WalletService {
	if log == nil {
		log = zap.NewNop()
	}
	return &WalletService{fetcher: f, wp: wp, log: log}
}

// Process looks up every address, drops failed lookups and keeps the wallets
// whose balance is above 1 and not yet claimed. Addresses must already be
// validated. Output follows input order.
func (s *WalletService) Process(ctx context.Context, wallets []string) (models.ProcessedResponse, error) {
	if len(wallets) == 0 {
		return models.ProcessedResponse{}, ErrNoValidWallets
	}
	ctx, span := logger.StartSpan(ctx, "wallets.process")
	defer span.End()
	span.SetAttributes(attribute.Int("wallets.count", len(wallets)))
	metrics.BatchSize.Observe(float64(len(wallets)))

	results := make([]*models.WalletResult, len(wallets))
	s.wp.Run(len(wallets), func(i int) {
		results[i] = s.lookup(ctx, wallets[i])
	})

	resp := models.ProcessedResponse{FilteredWallets: []models.WalletResult{}}
	total := decimal.Zero
	for _, r := range results {
		if r == nil || !r.Eligible() {
			continue
		}
		resp.FilteredWallets = append(resp.FilteredWallets, *r)
		total = total.Add(decimal.NewFromFloat(r.Balance))
	}
	resp.TotalBalance = total.InexactFloat64()

	metrics.EligibleWallets.Add(float64(len(resp.FilteredWallets)))
	span.SetAttributes(attribute.Int("wallets.eligible", len(resp.FilteredWallets)))
	return resp, nil
}

// lookup returns nil when the address could not be resolved.
func (s *WalletService) lookup(ctx context.Context, address string) *models.WalletResult {
	ctx, span := logger.StartSpan(ctx, "wallets.lookup")
	defer span.End()
	span.SetAttributes(attribute.String("wallet.address", address))

	r, err := s.fetcher.FetchBalance(ctx, address)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		metrics.LookupsTotal.WithLabelValues("error").Inc()
		logger.WithTrace(ctx, s.log).Warn("fetch airdrop balance",
			zap.String("wallet", address), zap.Error(err))
		return nil
	}
	metrics.LookupsTotal.WithLabelValues("ok").Inc()
	r.WalletAddress = address
	return &r
}
