package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestMetricsMiddleware_UsesRoutePattern ensures requests through the mux are
// labelled by the chi route pattern, and unknown paths collapse to one label.
func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	h := NewMux(&mockService{}, Options{})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/health", "GET", "200"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/health", "GET", "200")); after != before+1 {
		t.Fatalf("expected /health counter to grow by 1: before=%v after=%v", before, after)
	}

	before = testutil.ToFloat64(httpRequestsTotal.WithLabelValues("unmatched", "GET", "404"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/random/abc123", nil))
	if after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("unmatched", "GET", "404")); after != before+1 {
		t.Fatalf("expected unmatched counter to grow by 1: before=%v after=%v", before, after)
	}
}
