package termui

import "github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"

// Static display configuration. Kept as tables rather than scattered
// literals so thresholds stay adjustable and testable.

// slowPhaseThresholdMs flags a phase as slow in the performance table when
// its duration exceeds the listed value. Phases without an entry are never
// flagged.
var slowPhaseThresholdMs = map[domain.Phase]float64{
	domain.PhaseDNS:      100,
	domain.PhaseTCP:      200,
	domain.PhaseTLS:      300,
	domain.PhaseWaiting:  1000,
	domain.PhaseDownload: 500,
}

// overallRatings labels the totals row, first match on total < BelowMs wins.
var overallRatings = []struct {
	BelowMs float64
	Label   string
}{
	{200, "Excellent"},
	{500, "Good"},
	{1000, "Moderate"},
	{2000, "Slow"},
}

const overallVerySlow = "Very Slow"

func overallRating(totalMs float64) string {
	for _, r := range overallRatings {
		if totalMs < r.BelowMs {
			return r.Label
		}
	}
	return overallVerySlow
}

// perfTableRows is the fixed row order of the performance table.
var perfTableRows = []struct {
	Label string
	Phase domain.Phase
}{
	{"DNS", domain.PhaseDNS},
	{"TCP", domain.PhaseTCP},
	{"TLS", domain.PhaseTLS},
	{"Request Sent", domain.PhaseRequest},
	{"Waiting (TTFB)", domain.PhaseWaiting},
	{"First Byte", domain.PhaseFirstByte},
	{"Download", domain.PhaseDownload},
}

// waterfallRows is the subset of phases drawn in the waterfall chart, in
// timeline order.
var waterfallRows = []struct {
	Label string
	Phase domain.Phase
}{
	{"DNS", domain.PhaseDNS},
	{"TCP", domain.PhaseTCP},
	{"TLS", domain.PhaseTLS},
	{"Wait", domain.PhaseWaiting},
	{"Download", domain.PhaseDownload},
}

// importantHeaders is the allow-list shown in the headers section.
var importantHeaders = []string{"content-type", "content-length", "cache-control", "set-cookie", "location"}

const maxHeaderRows = 10
