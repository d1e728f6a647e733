package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
)

type Metrics struct {
	registry             *prometheus.Registry
	RequestsTotal        *prometheus.CounterVec
	TransportErrorsTotal prometheus.Counter
	PhaseSeconds         *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	r := prometheus.NewRegistry()
	m := &Metrics{
		registry: r,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ahc",
			Name:      "requests_total",
			Help:      "Requests executed by method and status category",
		}, []string{"method", "category"}),
		TransportErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ahc",
			Name:      "transport_errors_total",
			Help:      "Requests that failed at the transport level",
		}),
		PhaseSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ahc",
			Name:      "phase_seconds",
			Help:      "Estimated per-phase durations",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"phase"}),
	}
	r.MustRegister(m.RequestsTotal, m.TransportErrorsTotal, m.PhaseSeconds)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// IncTransportError counts a request that failed at the transport level.
func (m *Metrics) IncTransportError() { m.TransportErrorsTotal.Inc() }

// Observe records one completed request.
func (m *Metrics) Observe(method string, category domain.StatusCategory, snap domain.TimingSnapshot) {
	m.RequestsTotal.WithLabelValues(method, string(category)).Inc()
	for phase, ms := range snap.Phases {
		m.PhaseSeconds.WithLabelValues(string(phase)).Observe(ms / 1000)
	}
}

// Serve exposes /metrics on addr in the background. Useful when the tool is
// scripted in a loop and scraped externally.
func (m *Metrics) Serve(addr string, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info().Str("addr", addr).Msg("metrics listener started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("metrics listener error")
		}
	}()
}
