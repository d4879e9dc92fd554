package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// New registers on the default registry, so it runs once for the package.
var testMetrics = New()

func TestObserveDepositInitiated(t *testing.T) {
	before := testutil.ToFloat64(testMetrics.depositsInitiated.WithLabelValues("success"))
	testMetrics.ObserveDepositInitiated("success")
	after := testutil.ToFloat64(testMetrics.depositsInitiated.WithLabelValues("success"))
	assert.Equal(t, before+1, after)
}

func TestObserveDepositReconciled(t *testing.T) {
	before := testutil.ToFloat64(testMetrics.depositsReconciled.WithLabelValues("duplicate"))
	testMetrics.ObserveDepositReconciled("duplicate")
	testMetrics.ObserveDepositReconciled("duplicate")
	after := testutil.ToFloat64(testMetrics.depositsReconciled.WithLabelValues("duplicate"))
	assert.Equal(t, before+2, after)
}

func TestObserveTransfer_SeparateResultSeries(t *testing.T) {
	okBefore := testutil.ToFloat64(testMetrics.transfersTotal.WithLabelValues("success"))
	failBefore := testutil.ToFloat64(testMetrics.transfersTotal.WithLabelValues("insufficient_funds"))

	testMetrics.ObserveTransfer("success")
	testMetrics.ObserveTransfer("insufficient_funds")
	testMetrics.ObserveTransfer("insufficient_funds")

	assert.Equal(t, okBefore+1, testutil.ToFloat64(testMetrics.transfersTotal.WithLabelValues("success")))
	assert.Equal(t, failBefore+2, testutil.ToFloat64(testMetrics.transfersTotal.WithLabelValues("insufficient_funds")))
}

func TestObserveWebhookEvent(t *testing.T) {
	before := testutil.ToFloat64(testMetrics.webhookEventsTotal.WithLabelValues("processed"))
	testMetrics.ObserveWebhookEvent("processed")
	after := testutil.ToFloat64(testMetrics.webhookEventsTotal.WithLabelValues("processed"))
	assert.Equal(t, before+1, after)
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(testMetrics.httpRequestsTotal.WithLabelValues("POST", "/wallet/transfer", "2xx"))
	testMetrics.ObserveHTTPRequest("POST", "/wallet/transfer", 201, 35*time.Millisecond)
	after := testutil.ToFloat64(testMetrics.httpRequestsTotal.WithLabelValues("POST", "/wallet/transfer", "2xx"))
	assert.Equal(t, before+1, after)
}

func TestNilReceiverIsNoOp(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveDepositInitiated("success")
		m.ObserveDepositReconciled("success")
		m.ObserveTransfer("success")
		m.ObserveWebhookEvent("processed")
		m.ObserveHTTPRequest("GET", "/health", 200, time.Millisecond)
	})
}

func TestStatusLabel(t *testing.T) {
	cases := map[int]string{
		102: "1xx",
		200: "2xx",
		201: "2xx",
		301: "3xx",
		404: "4xx",
		429: "4xx",
		500: "5xx",
		502: "5xx",
	}
	for status, want := range cases {
		assert.Equal(t, want, statusLabel(status), "status %d", status)
	}
}
