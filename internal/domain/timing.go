package domain

import "time"

// Phase names a segment of the request lifecycle.
type Phase string

const (
	PhaseDNS       Phase = "dns"
	PhaseTCP       Phase = "tcp"
	PhaseTLS       Phase = "tls"
	PhaseRequest   Phase = "request"
	PhaseWaiting   Phase = "waiting"
	PhaseFirstByte Phase = "firstByte"
	PhaseDownload  Phase = "download"
)

// PhaseOrder is the canonical display order of phases.
var PhaseOrder = []Phase{PhaseDNS, PhaseTCP, PhaseTLS, PhaseRequest, PhaseWaiting, PhaseFirstByte, PhaseDownload}

// TimingSnapshot captures wall-clock bounds of one request attempt plus
// per-phase durations in milliseconds. A missing phase key means the phase
// was not measured. The probe-derived values (dns/tcp/tls) come from separate
// disposable connections and the request-derived values (waiting/firstByte/
// download) are fixed-ratio estimates, so phases are NOT guaranteed to sum
// to TotalMs.
type TimingSnapshot struct {
	Start   time.Time         `json:"start"`
	End     time.Time         `json:"end"`
	TotalMs float64           `json:"totalMs"`
	Phases  map[Phase]float64 `json:"phases"`
}

// Phase returns the duration for p and whether it was measured.
func (s TimingSnapshot) Phase(p Phase) (float64, bool) {
	v, ok := s.Phases[p]
	return v, ok
}
