package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nitinpratap/folio/internal/app/system/metrics"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	c := metrics.NewCollector()

	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/api/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/projects/abc123", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	out := rec.Body.String()
	if !strings.Contains(out, "folio_http_requests_total") {
		t.Fatalf("metric missing from exposition:\n%s", out)
	}
	// The label must be the route pattern, not the concrete path.
	if !strings.Contains(out, `route="/api/projects/{id}"`) {
		t.Errorf("route pattern label missing:\n%s", out)
	}
	if strings.Contains(out, "abc123") {
		t.Error("concrete path leaked into metric labels")
	}
	if !strings.Contains(out, `status="200"`) {
		t.Errorf("status label missing:\n%s", out)
	}
}

func TestCollectors_AreIsolated(t *testing.T) {
	a := metrics.NewCollector()
	b := metrics.NewCollector()

	a.RecordRequest("/api/skills", http.MethodGet, http.StatusOK)

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if strings.Contains(rec.Body.String(), `route="/api/skills"`) {
		t.Error("counter recorded on one collector appeared on another")
	}
}
