// Package termui renders a completed (or failed) exchange into the terminal
// breakdown: request overview, performance table, waterfall chart, status,
// selected headers, body preview, and a one-line summary. Pure formatting;
// no network access and no mutation of its inputs.
package termui

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
	"github.com/rahulbhooteshwar/awesome-http-cli/pkg/shared/redact"
)

const truncationMarker = "... (truncated)"

type Options struct {
	PreviewMaxBytes        int
	WaterfallWidth         int
	ExposeSensitiveHeaders bool
	NoColor                bool
}

type Renderer struct {
	out             io.Writer
	previewMax      int
	waterfallWidth  int
	exposeSensitive bool

	section *color.Color
	good    *color.Color
	slow    *color.Color
	warn    *color.Color
	dim     *color.Color
}

func NewRenderer(out io.Writer, opts Options) *Renderer {
	if opts.PreviewMaxBytes <= 0 {
		opts.PreviewMaxBytes = 1000
	}
	if opts.WaterfallWidth <= 0 {
		opts.WaterfallWidth = 40
	}
	if opts.NoColor {
		color.NoColor = true
	}
	return &Renderer{
		out:             out,
		previewMax:      opts.PreviewMaxBytes,
		waterfallWidth:  opts.WaterfallWidth,
		exposeSensitive: opts.ExposeSensitiveHeaders,
		section:         color.New(color.FgCyan, color.Bold),
		good:            color.New(color.FgGreen),
		slow:            color.New(color.FgRed),
		warn:            color.New(color.FgYellow),
		dim:             color.New(color.Faint),
	}
}

// RenderBreakdown prints every section for a completed exchange.
func (r *Renderer) RenderBreakdown(cfg domain.RequestConfig, rec *domain.ResponseRecord, analysis domain.AnalysisResult) {
	r.renderOverview(cfg)
	r.renderPerformanceTable(rec.Timing)
	r.renderWaterfall(rec.Timing)
	r.renderStatus(rec, analysis)
	r.renderHeaders(rec)
	r.renderBodyPreview(rec)
	r.renderAnalysis(analysis)
	r.renderSummary(cfg, rec)
}

// RenderFailure prints the best-effort breakdown for a transport failure:
// overview, whatever timing was accumulated, and the error itself.
func (r *Renderer) RenderFailure(cfg domain.RequestConfig, terr *domain.TransportError) {
	r.renderOverview(cfg)
	r.renderPerformanceTable(terr.Timing)
	r.renderWaterfall(terr.Timing)
	r.sectionTitle("Error")
	fmt.Fprintln(r.out, r.slow.Sprint(terr.Err.Error()))
	if terr.Status != 0 {
		fmt.Fprintf(r.out, "Status obtained on error path: %d\n", terr.Status)
	}
	if terr.Data != nil {
		fmt.Fprintln(r.out, r.truncate(stringify(terr.Data)))
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) sectionTitle(name string) {
	fmt.Fprintf(r.out, "\n%s\n", r.section.Sprintf("── %s %s", name, strings.Repeat("─", max(0, 40-len(name)))))
}

func (r *Renderer) renderOverview(cfg domain.RequestConfig) {
	r.sectionTitle("Request")
	fmt.Fprintf(r.out, "%s %s\n", cfg.Method, cfg.DisplayURL())
	body := "no"
	if cfg.HasBody() {
		body = "yes"
	}
	fmt.Fprintf(r.out, "Headers: %d  Body: %s\n", len(cfg.Headers), body)
}

func (r *Renderer) renderPerformanceTable(snap domain.TimingSnapshot) {
	r.sectionTitle("Performance")
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Phase", "Time", "% of Total", "Status"})
	table.SetBorder(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	for _, row := range perfTableRows {
		ms, ok := snap.Phase(row.Phase)
		if !ok {
			table.Append([]string{row.Label, "N/A", "N/A", "N/A"})
			continue
		}
		pct := 0.0
		if snap.TotalMs > 0 {
			pct = ms / snap.TotalMs * 100
		}
		table.Append([]string{row.Label, fmtMs(ms), fmt.Sprintf("%.1f%%", pct), r.phaseStatus(row.Phase, ms)})
	}
	table.SetFooter([]string{"Total", fmtMs(snap.TotalMs), "100%", overallRating(snap.TotalMs)})
	table.Render()
}

func (r *Renderer) phaseStatus(p domain.Phase, ms float64) string {
	if limit, ok := slowPhaseThresholdMs[p]; ok && ms > limit {
		return r.slow.Sprint("slow")
	}
	return r.good.Sprint("good")
}

func (r *Renderer) renderWaterfall(snap domain.TimingSnapshot) {
	lines := BuildWaterfall(snap, r.waterfallWidth)
	if len(lines) == 0 {
		return
	}
	r.sectionTitle("Waterfall")
	for _, l := range lines {
		fmt.Fprintln(r.out, l.String())
	}
	fmt.Fprintln(r.out, r.dim.Sprint("phase times are estimates; bars are proportional to total"))
}

func (r *Renderer) renderStatus(rec *domain.ResponseRecord, analysis domain.AnalysisResult) {
	r.sectionTitle("Status")
	line := fmt.Sprintf("%d %s (%s)", rec.Status, rec.StatusText, analysis.StatusCategory)
	switch analysis.StatusCategory {
	case domain.CategorySuccess:
		line = r.good.Sprint(line)
	case domain.CategoryRedirect, domain.CategoryInformational:
		line = r.warn.Sprint(line)
	default:
		line = r.slow.Sprint(line)
	}
	fmt.Fprintln(r.out, line)
	sizeNote := ""
	if analysis.Size.Estimated {
		sizeNote = " (estimated)"
	}
	fmt.Fprintf(r.out, "Type: %s  Size: %s%s\n", analysis.DataType, analysis.Size.Formatted, sizeNote)
	if rec.TLS != nil {
		fmt.Fprintf(r.out, "TLS: %s, %s", rec.TLS.Version, rec.TLS.CipherSuite)
		if rec.TLS.ALPN != "" {
			fmt.Fprintf(r.out, ", ALPN %s", rec.TLS.ALPN)
		}
		fmt.Fprintln(r.out)
		for _, c := range rec.TLS.PeerCerts {
			fmt.Fprintf(r.out, "  cert: %s\n", c)
		}
	}
}

func (r *Renderer) renderHeaders(rec *domain.ResponseRecord) {
	r.sectionTitle("Headers")
	shown := 0
	for _, name := range importantHeaders {
		if shown >= maxHeaderRows {
			break
		}
		v, ok := rec.Header(name)
		if !ok {
			continue
		}
		if !r.exposeSensitive {
			v = redact.HeaderValue(name, v)
		}
		fmt.Fprintf(r.out, "%s: %s\n", name, v)
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(r.out, r.dim.Sprint("(none of the tracked headers present)"))
	}
}

func (r *Renderer) renderBodyPreview(rec *domain.ResponseRecord) {
	r.sectionTitle("Body")
	if rec.Data == nil {
		fmt.Fprintln(r.out, r.dim.Sprint("(no body)"))
		return
	}
	text := stringify(rec.Data)
	if !r.exposeSensitive {
		text = redact.JSON(text)
	}
	fmt.Fprintln(r.out, r.truncate(text))
}

func (r *Renderer) renderAnalysis(analysis domain.AnalysisResult) {
	r.sectionTitle("Analysis")
	fmt.Fprintf(r.out, "Performance: %s\n", analysis.Performance.Rating)
	for _, rec := range analysis.Performance.Recommendations {
		fmt.Fprintf(r.out, "  • %s\n", rec)
	}
	if analysis.Structure.Type != "empty" {
		fmt.Fprintf(r.out, "Structure: %s", analysis.Structure.Type)
		switch analysis.Structure.Type {
		case "array":
			fmt.Fprintf(r.out, " of %d (first: %s)", analysis.Structure.Length, analysis.Structure.FirstItemType)
		case "object":
			fmt.Fprintf(r.out, " with %d keys: %s", analysis.Structure.Keys, strings.Join(analysis.Structure.TopLevelKeys, ", "))
		default:
			fmt.Fprintf(r.out, ", length %d", analysis.Structure.Length)
		}
		fmt.Fprintln(r.out)
	}
	if len(analysis.Security.Missing) > 0 {
		fmt.Fprintf(r.out, "Security headers missing: %s\n", strings.Join(analysis.Security.Missing, ", "))
	}
	if len(analysis.Security.Present) > 0 {
		fmt.Fprintf(r.out, "Security headers present: %s\n", strings.Join(analysis.Security.Present, ", "))
	}
	cacheable := "no"
	if analysis.Caching.Cacheable {
		cacheable = "yes"
	}
	fmt.Fprintf(r.out, "Caching: cache-control=%s etag=%s cacheable=%s\n",
		analysis.Caching.CacheControl, analysis.Caching.ETag, cacheable)
}

func (r *Renderer) renderSummary(cfg domain.RequestConfig, rec *domain.ResponseRecord) {
	host := cfg.URL
	if u, err := url.Parse(cfg.URL); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	dns, _ := rec.Timing.Phase(domain.PhaseDNS)
	tcp, _ := rec.Timing.Phase(domain.PhaseTCP)
	tlsMs, _ := rec.Timing.Phase(domain.PhaseTLS)
	fmt.Fprintf(r.out, "\n%s %s → %d %s in %s (dns %s · tcp %s · tls %s)\n",
		cfg.Method, host, rec.Status, rec.StatusText, fmtMs(rec.Timing.TotalMs),
		fmtMs(dns), fmtMs(tcp), fmtMs(tlsMs))
}

// truncate cuts s at the preview limit and appends an explicit marker.
func (r *Renderer) truncate(s string) string {
	if len(s) <= r.previewMax {
		return s
	}
	return s[:r.previewMax] + truncationMarker
}

// stringify serializes structured bodies with indentation; strings that are
// valid JSON are re-indented too.
func stringify(data any) string {
	switch d := data.(type) {
	case string:
		var v any
		if err := json.Unmarshal([]byte(d), &v); err == nil {
			if b, err := json.MarshalIndent(v, "", "  "); err == nil {
				return string(b)
			}
		}
		return d
	default:
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", d)
		}
		return string(b)
	}
}

func fmtMs(v float64) string {
	if v >= 100 {
		return fmt.Sprintf("%.0fms", v)
	}
	return fmt.Sprintf("%.1fms", v)
}
