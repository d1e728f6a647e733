package termui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
)

func snapshot(phases map[domain.Phase]float64, total float64) domain.TimingSnapshot {
	return domain.TimingSnapshot{TotalMs: total, Phases: phases}
}

func TestBuildWaterfallOmitsZeroPhases(t *testing.T) {
	snap := snapshot(map[domain.Phase]float64{
		domain.PhaseDNS:      10,
		domain.PhaseTCP:      20,
		domain.PhaseTLS:      0,
		domain.PhaseWaiting:  50,
		domain.PhaseDownload: 20,
	}, 100)
	lines := BuildWaterfall(snap, 40)
	if len(lines) != 4 {
		t.Fatalf("tls=0 must be omitted, got %d lines", len(lines))
	}
	for _, l := range lines {
		if l.Label == "TLS" {
			t.Fatalf("zero-duration TLS bar rendered")
		}
	}
}

func TestBuildWaterfallProportionsAndOffsets(t *testing.T) {
	snap := snapshot(map[domain.Phase]float64{
		domain.PhaseDNS:      10,
		domain.PhaseTCP:      20,
		domain.PhaseWaiting:  50,
		domain.PhaseDownload: 20,
	}, 100)
	const width = 40
	lines := BuildWaterfall(snap, width)

	sum := 0
	prevOffset := -1
	for _, l := range lines {
		if l.Width < 1 {
			t.Fatalf("%s: nonzero phase must have width >= 1", l.Label)
		}
		if l.Offset < prevOffset {
			t.Fatalf("offsets must not decrease: %s at %d after %d", l.Label, l.Offset, prevOffset)
		}
		prevOffset = l.Offset
		sum += l.Width
	}
	if sum > width {
		t.Fatalf("bar widths sum to %d > max %d", sum, width)
	}
	// dns is 10% of total: 4 cells of 40
	if lines[0].Label != "DNS" || lines[0].Width != 4 || lines[0].Offset != 0 {
		t.Fatalf("dns bar = %+v", lines[0])
	}
	// tcp starts after dns (10% offset = 4 cells)
	if lines[1].Label != "TCP" || lines[1].Offset != 4 {
		t.Fatalf("tcp bar = %+v", lines[1])
	}
}

func TestBuildWaterfallTinyPhaseGetsMinWidth(t *testing.T) {
	snap := snapshot(map[domain.Phase]float64{
		domain.PhaseDNS:     0.5,
		domain.PhaseWaiting: 999.5,
	}, 1000)
	lines := BuildWaterfall(snap, 40)
	if lines[0].Width != 1 {
		t.Fatalf("tiny nonzero phase should render one cell, got %d", lines[0].Width)
	}
}

func TestBuildWaterfallManyTinyPhasesStayWithinBudget(t *testing.T) {
	// four sub-cell phases each get bumped to one cell; the dominant bar
	// must give those cells back so the chart never exceeds its width
	snap := snapshot(map[domain.Phase]float64{
		domain.PhaseDNS:      98,
		domain.PhaseTCP:      0.5,
		domain.PhaseTLS:      0.5,
		domain.PhaseWaiting:  0.5,
		domain.PhaseDownload: 0.5,
	}, 100)
	const width = 40
	lines := BuildWaterfall(snap, width)

	sum := 0
	for _, l := range lines {
		if l.Width < 1 {
			t.Fatalf("%s: nonzero phase must have width >= 1", l.Label)
		}
		sum += l.Width
	}
	if sum > width {
		t.Fatalf("bar widths sum to %d > max %d", sum, width)
	}
}

func newTestRenderer(buf *bytes.Buffer, previewMax int) *Renderer {
	return NewRenderer(buf, Options{PreviewMaxBytes: previewMax, WaterfallWidth: 40, NoColor: true})
}

func TestBodyPreviewTruncation(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, 50)
	rec := &domain.ResponseRecord{Data: strings.Repeat("x", 200)}
	r.renderBodyPreview(rec)
	out := buf.String()
	if !strings.Contains(out, truncationMarker) {
		t.Fatalf("long body must carry the truncation marker: %q", out)
	}
	if strings.Contains(out, strings.Repeat("x", 51)) {
		t.Fatalf("body not cut at the limit")
	}
}

func TestBodyPreviewShortBodyVerbatim(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, 500)
	rec := &domain.ResponseRecord{Data: "short body"}
	r.renderBodyPreview(rec)
	out := buf.String()
	if strings.Contains(out, truncationMarker) {
		t.Fatalf("short body must not be truncated: %q", out)
	}
	if !strings.Contains(out, "short body") {
		t.Fatalf("body missing: %q", out)
	}
}

func TestBodyPreviewNoBody(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, 500)
	r.renderBodyPreview(&domain.ResponseRecord{})
	if !strings.Contains(buf.String(), "(no body)") {
		t.Fatalf("missing no-body placeholder: %q", buf.String())
	}
}

func TestHeadersSectionAllowListAndMasking(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, 500)
	rec := &domain.ResponseRecord{Headers: map[string]string{
		"content-type":    "application/json",
		"set-cookie":      "session=secretvalue",
		"x-irrelevant":    "hidden",
		"cache-control":   "no-store",
		"location":        "/next",
		"content-length":  "42",
	}}
	r.renderHeaders(rec)
	out := buf.String()
	if strings.Contains(out, "x-irrelevant") {
		t.Fatalf("header outside the allow-list rendered: %q", out)
	}
	if strings.Contains(out, "secretvalue") {
		t.Fatalf("set-cookie value must be masked: %q", out)
	}
	for _, want := range []string{"content-type", "cache-control", "location", "content-length"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s: %q", want, out)
		}
	}
}

func TestPerformanceTableFlagsSlowPhases(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, 500)
	r.renderPerformanceTable(snapshot(map[domain.Phase]float64{
		domain.PhaseDNS: 150, // over the 100ms threshold
		domain.PhaseTCP: 50,
	}, 200))
	out := buf.String()
	if !strings.Contains(out, "slow") {
		t.Fatalf("dns over threshold must be flagged: %q", out)
	}
	if !strings.Contains(out, "N/A") {
		t.Fatalf("unmeasured phases must show N/A: %q", out)
	}
}

func TestOverallRatingLabels(t *testing.T) {
	cases := map[float64]string{
		100:  "Excellent",
		300:  "Good",
		700:  "Moderate",
		1500: "Slow",
		2500: "Very Slow",
	}
	for total, want := range cases {
		if got := overallRating(total); got != want {
			t.Fatalf("total %v: rating = %q, want %q", total, got, want)
		}
	}
}

func TestRenderFailureShowsPartialTiming(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, 500)
	terr := &domain.TransportError{
		Err: errors.New("connection refused"),
		Timing: snapshot(map[domain.Phase]float64{
			domain.PhaseDNS: 5,
			domain.PhaseTCP: 9,
			domain.PhaseTLS: 0,
		}, 14),
	}
	r.RenderFailure(domain.RequestConfig{URL: "http://example.com", Method: "GET"}, terr)
	out := buf.String()
	if !strings.Contains(out, "connection refused") {
		t.Fatalf("error not rendered: %q", out)
	}
	if !strings.Contains(out, "DNS") {
		t.Fatalf("partial timing table missing: %q", out)
	}
}
