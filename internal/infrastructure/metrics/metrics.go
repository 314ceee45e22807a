package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Metrics holds all Prometheus metrics. A nil *Metrics is valid and records
// nothing, which keeps tests free of registry setup.
type Metrics struct {
	// Ingestion metrics
	TransactionsIngested prometheus.Counter
	UnparsedAmounts      prometheus.Counter
	IngestedAmount       prometheus.Histogram
	StoreSize            prometheus.Gauge

	// Validation metrics
	ValidationResults *prometheus.CounterVec

	// Provider metrics
	ProviderRequests *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TransactionsIngested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pesaboard_transactions_ingested_total",
			Help: "Total number of confirmation webhooks stored",
		}),
		UnparsedAmounts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pesaboard_unparsed_amounts_total",
			Help: "Total number of confirmations with a non-numeric amount",
		}),
		IngestedAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pesaboard_ingested_amount_kes",
			Help:    "Ingested transaction amounts in KES",
			Buckets: []float64{-100000, -10000, -1000, -100, 0, 100, 1000, 10000, 100000, 1000000},
		}),
		StoreSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pesaboard_store_size",
			Help: "Current number of stored transactions",
		}),
		ValidationResults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pesaboard_validation_results_total",
				Help: "Validation webhook outcomes",
			},
			[]string{"result"},
		),
		ProviderRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pesaboard_provider_requests_total",
				Help: "Outbound provider API calls by operation and status",
			},
			[]string{"operation", "status"},
		),
	}
}

// ObserveIngestion records one stored confirmation.
func (m *Metrics) ObserveIngestion(amount decimal.Decimal, parsed bool) {
	if m == nil {
		return
	}
	m.TransactionsIngested.Inc()
	if !parsed {
		m.UnparsedAmounts.Inc()
	}
	f, _ := amount.Float64()
	m.IngestedAmount.Observe(f)
}

// IncValidation records one validation webhook outcome.
func (m *Metrics) IncValidation(accepted bool) {
	if m == nil {
		return
	}
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.ValidationResults.WithLabelValues(result).Inc()
}

// IncProviderRequest records one outbound provider call.
func (m *Metrics) IncProviderRequest(operation string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.ProviderRequests.WithLabelValues(operation, status).Inc()
}

// SetStoreSize updates the store size gauge.
func (m *Metrics) SetStoreSize(n int) {
	if m == nil {
		return
	}
	m.StoreSize.Set(float64(n))
}
