package mouse

import (
	"sync"
	"testing"
)

func TestTrackerLivePosition(t *testing.T) {
	tr := NewTracker()
	if got := tr.Get(); got != (Position{}) {
		t.Errorf("initial position = %+v, want origin", got)
	}

	tr.Set(100, 200)
	if got := tr.Get(); got != (Position{X: 100, Y: 200}) {
		t.Errorf("position = %+v, want (100, 200)", got)
	}
}

func TestTrackerOverridePriority(t *testing.T) {
	tr := NewTracker()
	tr.Set(100, 200)
	tr.SetOverride(500, 600)

	if !tr.Overridden() {
		t.Error("Overridden() = false, want true")
	}
	if got := tr.Get(); got != (Position{X: 500, Y: 600}) {
		t.Errorf("position = %+v, want override (500, 600)", got)
	}

	// Live updates must not disturb the override.
	tr.Set(1, 2)
	if got := tr.Get(); got != (Position{X: 500, Y: 600}) {
		t.Errorf("position = %+v, override should win", got)
	}

	tr.ClearOverride()
	if tr.Overridden() {
		t.Error("Overridden() = true after clear")
	}
	if got := tr.Get(); got != (Position{X: 1, Y: 2}) {
		t.Errorf("position = %+v, want live (1, 2)", got)
	}
}

func TestTrackerConcurrentFeeders(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				tr.Set(float64(n), float64(j))
				_ = tr.Get()
			}
		}(i)
	}
	wg.Wait()

	// Whatever won the race, the snapshot must be one writer's pair.
	got := tr.Get()
	if got.X < 0 || got.X > 7 || got.Y < 0 || got.Y > 999 {
		t.Errorf("torn snapshot: %+v", got)
	}
}
