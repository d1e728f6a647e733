package usecase

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
)

// Fixed-ratio shares used to derive sub-phase estimates from the single
// measured request duration. These are approximations, not instrumented
// values; the renderer labels them as estimated.
const (
	firstByteShare   = 0.7
	downloadShare    = 0.3
	waitingDeduction = 0.1
)

// Prober measures connection-setup cost with disposable connections that are
// separate from the one used for the real request.
type Prober interface {
	MeasureDNS(ctx context.Context, host string) float64
	MeasureTCP(ctx context.Context, host, port string) float64
	MeasureTLS(ctx context.Context, host, port string) float64
}

// Doer performs the real HTTP request. It must not fail on 4xx/5xx statuses;
// only transport-level failures are errors. When a response was obtained on
// the error path (e.g. the redirect limit tripped), a partial record is
// returned alongside the error.
type Doer interface {
	Do(ctx context.Context, cfg domain.RequestConfig) (*domain.ResponseRecord, error)
}

// Recorder records request outcomes for observability.
type Recorder interface {
	Observe(method string, category domain.StatusCategory, snap domain.TimingSnapshot)
	IncTransportError()
}

// Executor runs the probe-then-request pipeline: DNS probe, TCP probe, TLS
// probe (https only), then the actual HTTP request, deriving the remaining
// phases from the measured request duration.
type Executor struct {
	probe   Prober
	client  Doer
	logger  *zerolog.Logger
	metrics Recorder
}

func NewExecutor(probe Prober, client Doer, logger *zerolog.Logger, metrics Recorder) *Executor {
	return &Executor{probe: probe, client: client, logger: logger, metrics: metrics}
}

// Execute performs one request attempt. On success the returned record
// carries a complete TimingSnapshot; on transport failure the error is a
// *domain.TransportError carrying the partial snapshot (probe phases only).
func (e *Executor) Execute(ctx context.Context, cfg domain.RequestConfig) (*domain.ResponseRecord, error) {
	host, port, secure, err := splitTarget(cfg.URL)
	if err != nil {
		return nil, err
	}

	timer := NewRequestTimer()
	timer.Start()

	dns := e.probe.MeasureDNS(ctx, host)
	timer.SetPhase(domain.PhaseDNS, dns)
	tcp := e.probe.MeasureTCP(ctx, host, port)
	timer.SetPhase(domain.PhaseTCP, tcp)
	if secure {
		timer.SetPhase(domain.PhaseTLS, e.probe.MeasureTLS(ctx, host, port))
	} else {
		timer.SetPhase(domain.PhaseTLS, 0)
	}
	e.logger.Debug().Str("host", host).Str("port", port).
		Float64("dnsMs", dns).Float64("tcpMs", tcp).Msg("probes done")

	reqStart := time.Now()
	rec, err := e.client.Do(ctx, cfg)
	requestMs := float64(time.Since(reqStart)) / float64(time.Millisecond)
	if err != nil {
		_ = timer.End()
		e.metrics.IncTransportError()
		terr := &domain.TransportError{Err: err, Timing: timer.Snapshot()}
		if rec != nil {
			terr.Status = rec.Status
			terr.Data = rec.Data
		}
		e.logger.Debug().Err(err).Float64("elapsedMs", requestMs).Msg("transport failure")
		return nil, terr
	}

	firstByte := requestMs * firstByteShare
	download := requestMs * downloadShare
	waiting := firstByte - requestMs*waitingDeduction
	timer.SetPhase(domain.PhaseRequest, requestMs)
	timer.SetPhase(domain.PhaseFirstByte, firstByte)
	timer.SetPhase(domain.PhaseDownload, download)
	timer.SetPhase(domain.PhaseWaiting, waiting)
	_ = timer.End()

	rec.Timing = timer.Snapshot()
	e.metrics.Observe(cfg.Method, domain.CategoryOf(rec.Status), rec.Timing)
	e.logger.Debug().Int("status", rec.Status).Float64("totalMs", rec.Timing.TotalMs).Msg("request done")
	return rec, nil
}

// splitTarget extracts hostname, port (defaulted by scheme), and whether the
// scheme is secure. Anything unusable is an InvalidURLError.
func splitTarget(raw string) (host, port string, secure bool, err error) {
	u, perr := url.Parse(raw)
	if perr != nil {
		return "", "", false, &domain.InvalidURLError{URL: raw, Err: perr}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", false, &domain.InvalidURLError{URL: raw, Err: errUnsupportedScheme(u.Scheme)}
	}
	host = u.Hostname()
	if host == "" {
		return "", "", false, &domain.InvalidURLError{URL: raw, Err: errMissingHost}
	}
	port = u.Port()
	if port == "" {
		if u.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}
	return host, port, u.Scheme == "https", nil
}

var errMissingHost = net.InvalidAddrError("missing host")

type errUnsupportedScheme string

func (e errUnsupportedScheme) Error() string { return "unsupported scheme " + string(e) }
