package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCountsRequests(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/api/v1/catalog", 200, 25*time.Millisecond)
	m.Observe("GET", "/api/v1/catalog", 200, 10*time.Millisecond)
	m.Observe("POST", "/api/v1/cart/items", 201, 5*time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/catalog", "200")); got != 2 {
		t.Fatalf("expected 2 catalog requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/v1/cart/items", "201")); got != 1 {
		t.Fatalf("expected 1 cart request, got %v", got)
	}
}

func TestObserveNormalizesEmptyRoute(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
}

func TestObserveTolerateNilReceiver(t *testing.T) {
	t.Parallel()

	var m *HTTPMetrics
	m.Observe("GET", "/health/live", 200, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.Observe("GET", "/health/live", 200, time.Millisecond)
}
