package usecase

import (
	"time"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
)

// RequestTimer accumulates wall-clock bounds and named phase durations for a
// single request attempt. Not safe for concurrent use; the pipeline is
// strictly sequential so it never needs to be.
type RequestTimer struct {
	start   time.Time
	end     time.Time
	started bool
	ended   bool
	phases  map[domain.Phase]float64
}

func NewRequestTimer() *RequestTimer {
	return &RequestTimer{phases: make(map[domain.Phase]float64, len(domain.PhaseOrder))}
}

// Start records the beginning of the operation.
func (t *RequestTimer) Start() {
	t.start = time.Now()
	t.started = true
}

// End records the end of the operation. Calling End before Start is a
// programming defect and yields InvalidStateError.
func (t *RequestTimer) End() error {
	if !t.started {
		return &domain.InvalidStateError{Op: "End"}
	}
	t.end = time.Now()
	t.ended = true
	return nil
}

// SetPhase stores a phase duration in milliseconds. Negative values are
// clamped to zero so clock oddities never produce negative phases.
func (t *RequestTimer) SetPhase(p domain.Phase, ms float64) {
	if ms < 0 {
		ms = 0
	}
	t.phases[p] = ms
}

// Snapshot returns an immutable copy of the accumulated timings. Total is
// computed from the monotonic clock, so it is never negative.
func (t *RequestTimer) Snapshot() domain.TimingSnapshot {
	phases := make(map[domain.Phase]float64, len(t.phases))
	for k, v := range t.phases {
		phases[k] = v
	}
	snap := domain.TimingSnapshot{Start: t.start, End: t.end, Phases: phases}
	if t.started && t.ended {
		snap.TotalMs = float64(t.end.Sub(t.start)) / float64(time.Millisecond)
		if snap.TotalMs < 0 {
			snap.TotalMs = 0
		}
	}
	return snap
}
