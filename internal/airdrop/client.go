// Package airdrop talks to the upstream airdrop balance API.
package airdrop

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"resty.dev/v3"

	"github.com/baharkarakas/airdrop-scanner/internal/config"
	"github.com/baharkarakas/airdrop-scanner/internal/models"
)

var (
	ErrUnexpectedStatus = errors.New("airdrop: unexpected status")
	ErrInvalidPayload   = errors.New("airdrop: invalid data structure")
	ErrRejectedCode     = errors.New("airdrop: rejected response code")
)

type Client struct {
	http   *resty.Client
	cfg    config.AirdropConfig
	logger *zap.Logger
}

func NewClient(cfg config.AirdropConfig, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.QueryParam == "" {
		cfg.QueryParam = "user"
	}

	limit := rate.Inf
	burst := 1
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
		burst = int(math.Max(1, math.Ceil(cfg.RatePerSecond)))
	}
	limiter := rate.NewLimiter(limit, burst)

	c := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		SetHeader("Accept", "application/json").
		AddRequestMiddleware(func(_ *resty.Client, r *resty.Request) error {
			if err := limiter.Wait(r.Context()); err != nil {
				return fmt.Errorf("rate limiter: %w", err)
			}
			if cfg.UserAgent != "" {
				r.SetHeader("User-Agent", cfg.UserAgent)
			}
			logger.Debug("outgoing request", zap.String("url", r.URL))
			return nil
		})

	return &Client{http: c, cfg: cfg, logger: logger}
}

// FetchBalance asks the upstream API for one address. Any transport failure,
// non-2xx answer or payload without data.balance and data.claim comes back as
// an error. The body is decoded as JSON whatever its Content-Type says.
func (c *Client) FetchBalance(ctx context.Context, address string) (models.WalletResult, error) {
	var out models.AirdropResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam(c.cfg.QueryParam, address).
		SetResult(&out).
		SetForceResponseContentType("application/json").
		Get(c.cfg.BaseURL)
	if err != nil {
		return models.WalletResult{}, fmt.Errorf("get balance for %s: %w", address, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return models.WalletResult{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}
	if out.Data == nil || out.Data.Balance == nil || out.Data.Claim == nil {
		return models.WalletResult{}, ErrInvalidPayload
	}
	if c.cfg.StrictCode && out.Code != c.cfg.SuccessCode {
		return models.WalletResult{}, fmt.Errorf("%w: %d %s", ErrRejectedCode, out.Code, out.Message)
	}

	return models.WalletResult{
		WalletAddress: address,
		Balance:       *out.Data.Balance,
		Claim:         *out.Data.Claim,
	}, nil
}

// Close releases idle upstream connections.
func (c *Client) Close() error {
	return c.http.Close()
}
