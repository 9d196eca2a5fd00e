package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersAndPathFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "hello")
	})

	// Baselines in case other tests touched the same collectors.
	baseOK := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/ok", "200"))
	base404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/does-not-exist", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /ok -> %d", w.Code)
	}

	// Unmatched route: the path label falls back to the raw URL path.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /does-not-exist -> %d", w.Code)
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/ok", "200")); got != baseOK+1 {
		t.Fatalf("counter /ok 200 = %v; want %v", got, baseOK+1)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/does-not-exist", "404")); got != base404+1 {
		t.Fatalf("counter 404 fallback = %v; want %v", got, base404+1)
	}
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0", inFlight)
	}
}
