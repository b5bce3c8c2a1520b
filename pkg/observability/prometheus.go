package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements RenderHooks, CacheHooks and HTTPHooks on top of
// Prometheus collectors.
type Prometheus struct {
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderBytes    *prometheus.GaugeVec
	cacheEvents    *prometheus.CounterVec
	requests       *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "musicmap_renders_total",
				Help: "Total number of diagram renders",
			},
			[]string{"engine", "format", "result"},
		),
		renderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "musicmap_render_duration_seconds",
				Help:    "Time spent in the Graphviz engine",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"engine", "format"},
		),
		renderBytes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "musicmap_render_bytes",
				Help: "Size of the most recent rendered artifact",
			},
			[]string{"format"},
		),
		cacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "musicmap_cache_events_total",
				Help: "Artifact cache hits, misses and writes",
			},
			[]string{"event", "format"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "musicmap_http_requests_total",
				Help: "Requests served by the preview server",
			},
			[]string{"method", "route", "code"},
		),
	}
	reg.MustRegister(p.renders, p.renderDuration, p.renderBytes, p.cacheEvents, p.requests)
	return p
}

// Install registers p as the render, cache and HTTP hooks.
func (p *Prometheus) Install() {
	SetRenderHooks(p)
	SetCacheHooks(p)
	SetHTTPHooks(p)
}

func (p *Prometheus) OnRenderStart(context.Context, string, string) {}

func (p *Prometheus) OnRenderComplete(_ context.Context, engine, format string, size int, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.renders.WithLabelValues(engine, format, result).Inc()
	p.renderDuration.WithLabelValues(engine, format).Observe(d.Seconds())
	if err == nil {
		p.renderBytes.WithLabelValues(format).Set(float64(size))
	}
}

func (p *Prometheus) OnCacheHit(_ context.Context, format string) {
	p.cacheEvents.WithLabelValues("hit", format).Inc()
}

func (p *Prometheus) OnCacheMiss(_ context.Context, format string) {
	p.cacheEvents.WithLabelValues("miss", format).Inc()
}

func (p *Prometheus) OnCacheSet(_ context.Context, format string, _ int) {
	p.cacheEvents.WithLabelValues("set", format).Inc()
}

func (p *Prometheus) OnResponse(_ context.Context, method, route string, code int, _ time.Duration) {
	p.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

var (
	_ RenderHooks = (*Prometheus)(nil)
	_ CacheHooks  = (*Prometheus)(nil)
	_ HTTPHooks   = (*Prometheus)(nil)
)
