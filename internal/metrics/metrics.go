package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Aggregation
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_lookups_total",
			Help: "Upstream airdrop balance lookups",
		},
		[]string{"result"}, // ok|error
	)
	EligibleWallets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wallets_eligible_total",
			Help: "Wallets returned with an unclaimed balance above the threshold",
		},
	)
	BatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wallet_batch_size",
			Help:    "Valid addresses per aggregation request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	// Lookups submitted to the worker pool and not yet finished.
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// Handler serves /metrics.
var Handler = promhttp.Handler

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(LookupsTotal)
		prometheus.MustRegister(EligibleWallets)
		prometheus.MustRegister(BatchSize)
		prometheus.MustRegister(WorkerQueueDepth)
	})
}
