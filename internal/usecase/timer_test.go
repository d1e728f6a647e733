package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
)

func TestTimerTotalNonNegative(t *testing.T) {
	tm := NewRequestTimer()
	tm.Start()
	time.Sleep(5 * time.Millisecond)
	if err := tm.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	snap := tm.Snapshot()
	if snap.TotalMs <= 0 {
		t.Fatalf("total should be positive, got %v", snap.TotalMs)
	}
	if snap.End.Before(snap.Start) {
		t.Fatalf("end before start")
	}
}

func TestTimerEndBeforeStart(t *testing.T) {
	tm := NewRequestTimer()
	err := tm.End()
	var ise *domain.InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("want InvalidStateError, got %v", err)
	}
}

func TestTimerPhaseClamping(t *testing.T) {
	tm := NewRequestTimer()
	tm.Start()
	tm.SetPhase(domain.PhaseDNS, -3)
	_ = tm.End()
	v, ok := tm.Snapshot().Phase(domain.PhaseDNS)
	if !ok || v != 0 {
		t.Fatalf("negative phase should clamp to 0, got %v (ok=%v)", v, ok)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	tm := NewRequestTimer()
	tm.Start()
	tm.SetPhase(domain.PhaseDNS, 10)
	_ = tm.End()
	snap := tm.Snapshot()
	tm.SetPhase(domain.PhaseDNS, 99)
	if v, _ := snap.Phase(domain.PhaseDNS); v != 10 {
		t.Fatalf("snapshot mutated after SetPhase, got %v", v)
	}
}
