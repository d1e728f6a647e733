package usecase

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/adapters/httpclient"
	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
	obs "github.com/rahulbhooteshwar/awesome-http-cli/internal/infrastructure/observability"
)

type stubProber struct{ dns, tcp, tls float64 }

func (s stubProber) MeasureDNS(context.Context, string) float64         { return s.dns }
func (s stubProber) MeasureTCP(context.Context, string, string) float64 { return s.tcp }
func (s stubProber) MeasureTLS(context.Context, string, string) float64 { return s.tls }

var _ Recorder = (*obs.Metrics)(nil)

type stubDoer struct {
	rec *domain.ResponseRecord
	err error
}

func (s stubDoer) Do(context.Context, domain.RequestConfig) (*domain.ResponseRecord, error) {
	return s.rec, s.err
}

func newTestExecutor(t *testing.T, client Doer) *Executor {
	t.Helper()
	logger := zerolog.Nop()
	return NewExecutor(stubProber{dns: 3, tcp: 7, tls: 11}, client, &logger, obs.NewMetrics())
}

func TestExecuteSuccessPhases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	logger := zerolog.Nop()
	client := httpclient.New(5*time.Second, false, &logger)
	e := newTestExecutor(t, client)

	rec, err := e.Execute(context.Background(), domain.RequestConfig{URL: srv.URL, Method: "GET"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	snap := rec.Timing
	if snap.TotalMs < 0 {
		t.Fatalf("negative total %v", snap.TotalMs)
	}
	for _, p := range domain.PhaseOrder {
		if _, ok := snap.Phase(p); !ok {
			t.Fatalf("phase %s missing", p)
		}
	}
	if v, _ := snap.Phase(domain.PhaseTLS); v != 0 {
		t.Fatalf("plain http should record tls=0, got %v", v)
	}
}

func TestExecuteDerivedRatios(t *testing.T) {
	e := newTestExecutor(t, stubDoer{rec: &domain.ResponseRecord{Status: 200, StatusText: "OK"}})
	rec, err := e.Execute(context.Background(), domain.RequestConfig{URL: "http://example.com/", Method: "GET"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	snap := rec.Timing
	req, _ := snap.Phase(domain.PhaseRequest)
	fb, _ := snap.Phase(domain.PhaseFirstByte)
	dl, _ := snap.Phase(domain.PhaseDownload)
	wait, _ := snap.Phase(domain.PhaseWaiting)
	const eps = 1e-9
	if math.Abs(fb-req*0.7) > eps {
		t.Fatalf("firstByte = %v, want 0.7*%v", fb, req)
	}
	if math.Abs(dl-req*0.3) > eps {
		t.Fatalf("download = %v, want 0.3*%v", dl, req)
	}
	if math.Abs(wait-(fb-req*0.1)) > eps {
		t.Fatalf("waiting = %v, want %v", wait, fb-req*0.1)
	}
}

func TestExecuteStatus4xxIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	logger := zerolog.Nop()
	e := newTestExecutor(t, httpclient.New(5*time.Second, false, &logger))
	rec, err := e.Execute(context.Background(), domain.RequestConfig{URL: srv.URL, Method: "GET"})
	if err != nil {
		t.Fatalf("4xx must be a completed response, got error %v", err)
	}
	if rec.Status != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Status)
	}
}

func TestExecuteTransportFailureCarriesPartialTiming(t *testing.T) {
	e := newTestExecutor(t, stubDoer{err: errors.New("connection refused")})
	_, err := e.Execute(context.Background(), domain.RequestConfig{URL: "http://example.invalid/", Method: "GET"})
	var terr *domain.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("want TransportError, got %v", err)
	}
	for _, p := range []domain.Phase{domain.PhaseDNS, domain.PhaseTCP, domain.PhaseTLS} {
		if _, ok := terr.Timing.Phase(p); !ok {
			t.Fatalf("probe phase %s should be in the partial snapshot", p)
		}
	}
	for _, p := range []domain.Phase{domain.PhaseRequest, domain.PhaseFirstByte, domain.PhaseDownload, domain.PhaseWaiting} {
		if _, ok := terr.Timing.Phase(p); ok {
			t.Fatalf("request-derived phase %s must be absent on failure", p)
		}
	}
	if terr.Timing.TotalMs < 0 {
		t.Fatalf("negative total in partial snapshot")
	}
}

func TestExecuteErrorPathResponseSurfaced(t *testing.T) {
	partial := &domain.ResponseRecord{Status: 302, StatusText: "Found", Data: "loop"}
	e := newTestExecutor(t, stubDoer{rec: partial, err: errors.New("stopped after 10 redirects")})
	_, err := e.Execute(context.Background(), domain.RequestConfig{URL: "http://example.com/", Method: "GET"})
	var terr *domain.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("want TransportError, got %v", err)
	}
	if terr.Status != 302 {
		t.Fatalf("status obtained on the error path not surfaced: %d", terr.Status)
	}
	if terr.Data != "loop" {
		t.Fatalf("body obtained on the error path not surfaced: %#v", terr.Data)
	}
}

func TestExecuteInvalidURL(t *testing.T) {
	e := newTestExecutor(t, stubDoer{})
	_, err := e.Execute(context.Background(), domain.RequestConfig{URL: "ftp://example.com/", Method: "GET"})
	var ierr *domain.InvalidURLError
	if !errors.As(err, &ierr) {
		t.Fatalf("want InvalidURLError, got %v", err)
	}
}
