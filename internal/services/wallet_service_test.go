package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/baharkarakas/airdrop-scanner/internal/models"
	"github.com/baharkarakas/airdrop-scanner/internal/worker"
)

const (
	w1 = "0x1111111111111111111111111111111111111111"
	w2 = "0x2222222222222222222222222222222222222222"
	w3 = "0x3333333333333333333333333333333333333333"
	w4 = "0x4444444444444444444444444444444444444444"
	w5 = "0x5555555555555555555555555555555555555555"
)

type fakeFetcher struct {
	mu      sync.Mutex
	answers map[string]models.WalletResult
	fail    map[string]error
	calls   []string
}

func (f *fakeFetcher) FetchBalance(_ context.Context, address string) (models.WalletResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, address)
	f.mu.Unlock()
	if err, ok := f.fail[address]; ok {
		return models.WalletResult{}, err
	}
	if r, ok := f.answers[address]; ok {
		return r, nil
	}
	return models.WalletResult{}, errors.New("unknown wallet")
}

type panicFetcher struct{}

func (panicFetcher) FetchBalance(context.Context, string) (models.WalletResult, error) {
	panic("upstream exploded")
}

func newService(f BalanceFetcher, log *zap.Logger) *WalletService {
	return NewWalletService(f, worker.NewPool(2), log)
}

func TestProcessFiltersAndSums(t *testing.T) {
	f := &fakeFetcher{answers: map[string]models.WalletResult{
		w1: {Balance: 5, Claim: false},
		w2: {Balance: 1, Claim: false},
		w3: {Balance: 40, Claim: true},
		w4: {Balance: 2.5, Claim: false},
		w5: {Balance: 0.3, Claim: false},
	}}

	got, err := newService(f, nil).Process(context.Background(), []string{w1, w2, w3, w4, w5})
	require.NoError(t, err)

	assert.Equal(t, []models.WalletResult{
		{WalletAddress: w1, Balance: 5},
		{WalletAddress: w4, Balance: 2.5},
	}, got.FilteredWallets)
	assert.Equal(t, 7.5, got.TotalBalance)
	assert.ElementsMatch(t, []string{w1, w2, w3, w4, w5}, f.calls)
}

func TestProcessDropsFailedLookups(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	f := &fakeFetcher{
		answers: map[string]models.WalletResult{w1: {Balance: 5}},
		fail:    map[string]error{w2: errors.New("timeout"), w3: errors.New("bad shape")},
	}

	got, err := newService(f, zap.New(core)).Process(context.Background(), []string{w1, w2, w3})
	require.NoError(t, err)

	assert.Equal(t, []models.WalletResult{{WalletAddress: w1, Balance: 5}}, got.FilteredWallets)
	assert.Equal(t, 5.0, got.TotalBalance)

	failed := logs.FilterMessage("fetch airdrop balance").All()
	require.Len(t, failed, 2)
	var wallets []string
	for _, e := range failed {
		wallets = append(wallets, e.ContextMap()["wallet"].(string))
	}
	assert.ElementsMatch(t, []string{w2, w3}, wallets)
}

func TestProcessAllLookupsFail(t *testing.T) {
	f := &fakeFetcher{fail: map[string]error{w1: errors.New("down"), w2: errors.New("down")}}

	got, err := newService(f, nil).Process(context.Background(), []string{w1, w2})
	require.NoError(t, err)

	assert.NotNil(t, got.FilteredWallets)
	assert.Empty(t, got.FilteredWallets)
	assert.Equal(t, 0.0, got.TotalBalance)
}

func TestProcessNoWallets(t *testing.T) {
	f := &fakeFetcher{}
	_, err := newService(f, nil).Process(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoValidWallets)
	assert.Empty(t, f.calls)
}

func TestProcessTotalIsExactSum(t *testing.T) {
	f := &fakeFetcher{answers: map[string]models.WalletResult{
		w1: {Balance: 1.1},
		w2: {Balance: 1.2},
		w3: {Balance: 100.7},
	}}

	got, err := newService(f, nil).Process(context.Background(), []string{w1, w2, w3})
	require.NoError(t, err)
	assert.Equal(t, 103.0, got.TotalBalance)
}

func TestProcessTotalAvoidsFloatDrift(t *testing.T) {
	f := &fakeFetcher{answers: map[string]models.WalletResult{
		w1: {Balance: 1.1},
		w2: {Balance: 2.2},
	}}

	got, err := newService(f, nil).Process(context.Background(), []string{w1, w2})
	require.NoError(t, err)
	// A plain float64 sum gives 3.3000000000000003.
	assert.Equal(t, 3.3, got.TotalBalance)
	assert.NotEqual(t, got.FilteredWallets[0].Balance+got.FilteredWallets[1].Balance, got.TotalBalance)
}

func TestProcessKeepsCallerAddress(t *testing.T) {
	// Upstream may echo a different casing or nothing at all.
	f := &fakeFetcher{answers: map[string]models.WalletResult{
		w1: {WalletAddress: "", Balance: 3},
	}}

	got, err := newService(f, nil).Process(context.Background(), []string{w1})
	require.NoError(t, err)
	require.Len(t, got.FilteredWallets, 1)
	assert.Equal(t, w1, got.FilteredWallets[0].WalletAddress)
}

func TestProcessIsIdempotent(t *testing.T) {
	f := &fakeFetcher{answers: map[string]models.WalletResult{
		w1: {Balance: 5}, w2: {Balance: 7, Claim: true}, w3: {Balance: 9},
	}}
	svc := NewWalletService(f, worker.NewPool(0), nil)
	in := []string{w1, w2, w3}

	first, err := svc.Process(context.Background(), in)
	require.NoError(t, err)
	second, err := svc.Process(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProcessDuplicateAddresses(t *testing.T) {
	f := &fakeFetcher{answers: map[string]models.WalletResult{w1: {Balance: 2}}}

	got, err := newService(f, nil).Process(context.Background(), []string{w1, w1})
	require.NoError(t, err)
	assert.Len(t, got.FilteredWallets, 2)
	assert.Equal(t, 4.0, got.TotalBalance)
	assert.Len(t, f.calls, 2)
}

func TestProcessPanicPropagates(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = newService(panicFetcher{}, nil).Process(context.Background(), []string{w1})
	})
}
