package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewarePathLabels(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /widgets/{id}", func(w http.ResponseWriter, r *http.Request) {})
	handler := metricsMiddleware(mux)

	t.Run("matched requests are labeled by route pattern", func(t *testing.T) {
		counter := requestsTotal.WithLabelValues("GET", "GET /widgets/{id}", "200")
		before := testutil.ToFloat64(counter)

		req := httptest.NewRequest(http.MethodGet, "/widgets/42", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if got := testutil.ToFloat64(counter); got != before+1 {
			t.Errorf("expected pattern-labeled count %v, got %v", before+1, got)
		}
	})

	t.Run("unknown paths collapse to a single label", func(t *testing.T) {
		counter := requestsTotal.WithLabelValues("GET", "unmatched", "404")
		before := testutil.ToFloat64(counter)

		for _, path := range []string{"/nope", "/nope/deeper", "/widgets/42/extra"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			handler.ServeHTTP(httptest.NewRecorder(), req)
		}

		if got := testutil.ToFloat64(counter); got != before+3 {
			t.Errorf("expected collapsed count %v, got %v", before+3, got)
		}
		stray := requestsTotal.WithLabelValues("GET", "/nope", "404")
		if got := testutil.ToFloat64(stray); got != 0 {
			t.Errorf("raw path leaked into labels: %v", got)
		}
	})
}
