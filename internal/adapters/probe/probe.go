// Package probe estimates connection-setup cost with standalone, disposable
// network operations. Each probe opens its own connection, separate from the
// one the real request will use, so the numbers approximate setup cost
// rather than measure the request that follows.
package probe

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"github.com/rs/zerolog"
)

const DefaultTimeout = 5 * time.Second

type Probe struct {
	timeout  time.Duration
	resolver *net.Resolver
	logger   *zerolog.Logger
}

func New(timeout time.Duration, logger *zerolog.Logger) *Probe {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Probe{timeout: timeout, resolver: net.DefaultResolver, logger: logger}
}

// MeasureDNS resolves host with the system resolver and returns the elapsed
// wall-clock milliseconds. Failure is not an error: the time spent until the
// failure is the measurement.
func (p *Probe) MeasureDNS(ctx context.Context, host string) float64 {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	start := time.Now()
	if _, err := p.resolver.LookupHost(ctx, host); err != nil {
		p.logger.Debug().Err(err).Str("host", host).Msg("dns probe failed")
	}
	return msSince(start)
}

// MeasureTCP opens and closes a raw TCP connection to host:port, returning
// elapsed milliseconds to connect, to time out, or to fail, whichever comes
// first.
func (p *Probe) MeasureTCP(ctx context.Context, host, port string) float64 {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	d := net.Dialer{Timeout: p.timeout}
	start := time.Now()
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	elapsed := msSince(start)
	if err != nil {
		p.logger.Debug().Err(err).Str("host", host).Str("port", port).Msg("tcp probe failed")
		return elapsed
	}
	_ = conn.Close()
	return elapsed
}

// MeasureTLS opens and closes a TLS session to host:port, returning elapsed
// milliseconds to the completed handshake, timeout, or failure. Certificate
// validation is disabled: the probe measures handshake cost, not trust.
func (p *Probe) MeasureTLS(ctx context.Context, host, port string) float64 {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	d := tls.Dialer{
		NetDialer: &net.Dialer{Timeout: p.timeout},
		Config:    &tls.Config{InsecureSkipVerify: true, ServerName: host},
	}
	start := time.Now()
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	elapsed := msSince(start)
	if err != nil {
		p.logger.Debug().Err(err).Str("host", host).Str("port", port).Msg("tls probe failed")
		return elapsed
	}
	_ = conn.Close()
	return elapsed
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t)) / float64(time.Millisecond)
}
