package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is a
// valid no-op receiver so tests can skip registration entirely.
type Metrics struct {
	depositsInitiated   *prometheus.CounterVec
	depositsReconciled  *prometheus.CounterVec
	transfersTotal      *prometheus.CounterVec
	webhookEventsTotal  *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New registers the wallet service collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		depositsInitiated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet",
				Subsystem: "ledger",
				Name:      "deposits_initiated_total",
				Help:      "Total deposit initiations partitioned by result.",
			},
			[]string{"result"},
		),
		depositsReconciled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet",
				Subsystem: "ledger",
				Name:      "deposits_reconciled_total",
				Help:      "Total deposit reconcile outcomes partitioned by result.",
			},
			[]string{"result"},
		),
		transfersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet",
				Subsystem: "ledger",
				Name:      "transfers_total",
				Help:      "Total wallet-to-wallet transfers partitioned by result.",
			},
			[]string{"result"},
		),
		webhookEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet",
				Subsystem: "ledger",
				Name:      "webhook_events_total",
				Help:      "Total inbound webhook events partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests partitioned by method, path and status.",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wallet",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency partitioned by method and path.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// ObserveDepositInitiated records one deposit initiation outcome.
func (m *Metrics) ObserveDepositInitiated(result string) {
	if m == nil {
		return
	}
	m.depositsInitiated.WithLabelValues(result).Inc()
}

// ObserveDepositReconciled records one reconcile outcome.
func (m *Metrics) ObserveDepositReconciled(result string) {
	if m == nil {
		return
	}
	m.depositsReconciled.WithLabelValues(result).Inc()
}

// ObserveTransfer records one transfer outcome.
func (m *Metrics) ObserveTransfer(result string) {
	if m == nil {
		return
	}
	m.transfersTotal.WithLabelValues(result).Inc()
}

// ObserveWebhookEvent records one inbound webhook outcome.
func (m *Metrics) ObserveWebhookEvent(outcome string) {
	if m == nil {
		return
	}
	m.webhookEventsTotal.WithLabelValues(outcome).Inc()
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, statusLabel(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func statusLabel(status int) string {
	switch {
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
