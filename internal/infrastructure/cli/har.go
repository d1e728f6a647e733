package cli

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
)

// Minimal HAR 1.2 structs for exporting a single exchange.
type harLog struct {
	Version string     `json:"version"`
	Creator harName    `json:"creator"`
	Entries []harEntry `json:"entries"`
}
type harName struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
type harEntry struct {
	StartedDateTime time.Time   `json:"startedDateTime"`
	Time            float64     `json:"time"`
	Request         harRequest  `json:"request"`
	Response        harResponse `json:"response"`
	Timings         harTimings  `json:"timings"`
}
type harRequest struct {
	Method      string `json:"method"`
	URL         string `json:"url"`
	HeadersSize int    `json:"headersSize"`
	BodySize    int    `json:"bodySize"`
}
type harResponse struct {
	Status      int    `json:"status"`
	StatusText  string `json:"statusText"`
	HeadersSize int    `json:"headersSize"`
	BodySize    int    `json:"bodySize"`
}
type harTimings struct {
	Blocked float64 `json:"blocked"`
	DNS     float64 `json:"dns"`
	Connect float64 `json:"connect"`
	SSL     float64 `json:"ssl"`
	Send    float64 `json:"send"`
	Wait    float64 `json:"wait"`
	Receive float64 `json:"receive"`
}

// WriteHAR writes the exchange to path as a one-entry HAR log. Unmeasured
// phases are exported as -1 per the HAR convention.
func WriteHAR(path string, cfg domain.RequestConfig, rec *domain.ResponseRecord) error {
	snap := rec.Timing
	phase := func(p domain.Phase) float64 {
		if v, ok := snap.Phase(p); ok {
			return v
		}
		return -1
	}
	entry := harEntry{
		StartedDateTime: snap.Start.UTC(),
		Time:            snap.TotalMs,
		Request:         harRequest{Method: cfg.Method, URL: cfg.URL, HeadersSize: -1, BodySize: -1},
		Response:        harResponse{Status: rec.Status, StatusText: rec.StatusText, HeadersSize: -1, BodySize: len(rec.RawBody)},
		Timings: harTimings{
			Blocked: -1,
			DNS:     phase(domain.PhaseDNS),
			Connect: phase(domain.PhaseTCP),
			SSL:     phase(domain.PhaseTLS),
			Send:    phase(domain.PhaseRequest),
			Wait:    phase(domain.PhaseWaiting),
			Receive: phase(domain.PhaseDownload),
		},
	}
	har := struct {
		Log harLog `json:"log"`
	}{Log: harLog{Version: "1.2", Creator: harName{Name: "ahc", Version: "1.0.0"}, Entries: []harEntry{entry}}}
	b, err := json.MarshalIndent(har, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
