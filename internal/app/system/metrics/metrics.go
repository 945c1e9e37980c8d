// Package metrics collects and exposes Prometheus metrics for the API.
//
// The collector uses its own registry rather than the process-global
// default, so tests can create isolated instances.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records HTTP request metrics.
type Collector struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_http_requests_total",
			Help: "HTTP requests served, by route pattern, method, and status code.",
		},
		[]string{"route", "method", "status"},
	)
	reg.MustRegister(requests)

	return &Collector{
		registry: reg,
		requests: requests,
	}
}

// RecordRequest increments the request counter for one served request.
func (c *Collector) RecordRequest(route, method string, status int) {
	c.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// Handler returns the /metrics endpoint handler for this collector's
// registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware returns a chi middleware that records every served
// request against the matched route pattern.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		c.RecordRequest(route, r.Method, ww.Status())
	})
}
