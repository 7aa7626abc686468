package difficulty

import "testing"

func newTestTracker() (*Tracker, *Tracking) {
	cfg := DefaultConfig()
	return NewTracker(cfg), NewTracking("test-user", cfg)
}

func TestClassify(t *testing.T) {
	tracker, _ := newTestTracker()

	tests := []struct {
		accuracy float64
		want     OutcomeClass
	}{
		{100, ClassSuccess},
		{95, ClassSuccess},
		{90, ClassSuccess},
		{89.9, ClassNeutral},
		{70, ClassNeutral},
		{50, ClassNeutral},
		{49.9, ClassFailure},
		{30, ClassFailure},
		{0, ClassFailure},
	}

	for _, tt := range tests {
		if got := tracker.Classify(tt.accuracy); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.accuracy, got, tt.want)
		}
	}
}

func TestApply_ThreeSuccessesLevelsUp(t *testing.T) {
	tracker, tr := newTestTracker()
	tr.Level = 2

	for i := 0; i < 2; i++ {
		if change := tracker.Apply(tr, 95); change != nil {
			t.Fatalf("unexpected change on result %d: %+v", i+1, change)
		}
	}

	change := tracker.Apply(tr, 95)
	if change == nil {
		t.Fatal("expected level change after third success")
	}
	if change.OldLevel != 2 || change.NewLevel != 3 || change.Direction != DirectionUp {
		t.Errorf("change = %+v, want 2→3 up", change)
	}
	if tr.Level != 3 {
		t.Errorf("Level = %d, want 3", tr.Level)
	}
	if tr.ConsecutiveSuccesses != 0 || tr.ConsecutiveFailures != 0 {
		t.Errorf("counters not reset: %d/%d", tr.ConsecutiveSuccesses, tr.ConsecutiveFailures)
	}
}

func TestApply_ThreeFailuresLevelsDown(t *testing.T) {
	tracker, tr := newTestTracker()
	tr.Level = 4

	tracker.Apply(tr, 30)
	tracker.Apply(tr, 30)
	change := tracker.Apply(tr, 30)

	if change == nil {
		t.Fatal("expected level change after third failure")
	}
	if change.OldLevel != 4 || change.NewLevel != 3 || change.Direction != DirectionDown {
		t.Errorf("change = %+v, want 4→3 down", change)
	}
	if tr.ConsecutiveSuccesses != 0 || tr.ConsecutiveFailures != 0 {
		t.Errorf("counters not reset: %d/%d", tr.ConsecutiveSuccesses, tr.ConsecutiveFailures)
	}
}

func TestApply_NeutralHoldsStreak(t *testing.T) {
	tracker, tr := newTestTracker()

	// [95, 70, 95, 95] from level 1 must reach level 2 on the fourth
	// result: the neutral 70 holds the streak rather than resetting it.
	if change := tracker.Apply(tr, 95); change != nil {
		t.Fatalf("unexpected change: %+v", change)
	}
	if change := tracker.Apply(tr, 70); change != nil {
		t.Fatalf("unexpected change on neutral: %+v", change)
	}
	if tr.ConsecutiveSuccesses != 1 {
		t.Errorf("ConsecutiveSuccesses after neutral = %d, want 1", tr.ConsecutiveSuccesses)
	}
	if change := tracker.Apply(tr, 95); change != nil {
		t.Fatalf("unexpected change: %+v", change)
	}
	change := tracker.Apply(tr, 95)
	if change == nil {
		t.Fatal("expected level change on fourth result")
	}
	if tr.Level != 2 {
		t.Errorf("Level = %d, want 2", tr.Level)
	}
}

func TestApply_CounterExclusivity(t *testing.T) {
	tracker, tr := newTestTracker()
	tr.Level = 3

	// Alternating and mixed sequences must never leave both counters
	// non-zero at the same time.
	seq := []float64{95, 30, 95, 95, 70, 30, 30, 70, 95, 30, 95, 95, 95, 30, 70, 70, 95}
	for i, acc := range seq {
		tracker.Apply(tr, acc)
		if tr.ConsecutiveSuccesses != 0 && tr.ConsecutiveFailures != 0 {
			t.Fatalf("after result %d (%.0f): both counters non-zero (%d/%d)",
				i+1, acc, tr.ConsecutiveSuccesses, tr.ConsecutiveFailures)
		}
	}
}

func TestApply_LevelClampedAtBounds(t *testing.T) {
	tracker, tr := newTestTracker()
	tr.Level = 5

	// Nine successes at max level: no change emitted, level stays at 5,
	// and each completed streak resets so the counter never exceeds the
	// threshold.
	for i := 0; i < 9; i++ {
		if change := tracker.Apply(tr, 100); change != nil {
			t.Fatalf("unexpected change at max level: %+v", change)
		}
		if tr.Level != 5 {
			t.Fatalf("Level = %d, want 5", tr.Level)
		}
		if tr.ConsecutiveSuccesses >= 3 {
			t.Fatalf("streak not reset at boundary: %d", tr.ConsecutiveSuccesses)
		}
	}

	tr.Level = 1
	for i := 0; i < 9; i++ {
		if change := tracker.Apply(tr, 0); change != nil {
			t.Fatalf("unexpected change at min level: %+v", change)
		}
		if tr.Level != 1 {
			t.Fatalf("Level = %d, want 1", tr.Level)
		}
	}
}

func TestApply_BoundaryStreakStillResets(t *testing.T) {
	tracker, tr := newTestTracker()
	tr.Level = 5

	tracker.Apply(tr, 95)
	tracker.Apply(tr, 95)
	tracker.Apply(tr, 95)

	if tr.ConsecutiveSuccesses != 0 {
		t.Errorf("ConsecutiveSuccesses = %d, want 0 (reset despite suppressed change)", tr.ConsecutiveSuccesses)
	}
}

func TestSetLevel(t *testing.T) {
	tracker, tr := newTestTracker()
	tr.Level = 3
	tr.ConsecutiveSuccesses = 2

	change := tracker.SetLevel(tr, 5, "")
	if change.OldLevel != 3 || change.NewLevel != 5 {
		t.Errorf("change = %+v, want 3→5", change)
	}
	if tr.ConsecutiveSuccesses != 0 || tr.ConsecutiveFailures != 0 {
		t.Error("override must zero both counters")
	}

	// Clamping.
	tracker.SetLevel(tr, 99, "")
	if tr.Level != 5 {
		t.Errorf("Level = %d, want 5 (clamped)", tr.Level)
	}
	tracker.SetLevel(tr, -2, "")
	if tr.Level != 1 {
		t.Errorf("Level = %d, want 1 (clamped)", tr.Level)
	}
}

func TestProgress(t *testing.T) {
	tracker, tr := newTestTracker()
	tr.Level = 2

	tracker.Apply(tr, 95)
	p := tracker.Progress(tr)
	if p.CurrentStreak != 1 || p.Remaining != 2 || p.Direction != DirectionUp {
		t.Errorf("Progress = %+v, want streak 1, remaining 2, up", p)
	}

	// At max level an active success streak has no reachable adjustment.
	tr.Level = 5
	p = tracker.Progress(tr)
	if p.Direction != "" {
		t.Errorf("Direction = %q, want empty at max level", p.Direction)
	}
}
