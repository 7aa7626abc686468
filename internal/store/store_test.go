package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestTrackingRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.TrackingRepo()
	ctx := context.Background()

	// No state yet.
	rec, err := repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record for unknown user")
	}

	// Create.
	err = repo.Save(ctx, &TrackingRecord{
		UserID:               "u1",
		Level:                3,
		ConsecutiveSuccesses: 2,
		LastOutcome:          "success",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err = repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec == nil || rec.Level != 3 || rec.ConsecutiveSuccesses != 2 || rec.LastOutcome != "success" {
		t.Fatalf("loaded record = %+v", rec)
	}

	// Update in place.
	rec.Level = 4
	rec.ConsecutiveSuccesses = 0
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	rec, err = repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if rec.Level != 4 || rec.ConsecutiveSuccesses != 0 {
		t.Errorf("updated record = %+v", rec)
	}

	count, err := s.Client().DifficultyTracking.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("tracking rows = %d, want 1 (upsert, not insert)", count)
	}
}

func TestTrackingReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.TrackingRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, &TrackingRecord{UserID: "u1", Level: 5}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Reset(ctx, "u1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	rec, err := repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec != nil {
		t.Error("expected nil record after reset")
	}
}

func TestOutcomeHistoryMergesInSequenceOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Interleave exercise and scenario outcomes.
	err := repo.AppendExerciseEvent(ctx, ExerciseEventData{
		SessionID: "s1", UserID: "u1", ExerciseID: "e1",
		Category: "memory", Difficulty: 2, Score: 80, IsCorrect: true,
	})
	if err != nil {
		t.Fatalf("append exercise: %v", err)
	}
	err = repo.AppendScenarioEvent(ctx, ScenarioEventData{
		SessionID: "s1", UserID: "u1", ScenarioID: "sc1",
		ScenarioType: "negotiation", Difficulty: 2, AverageScore: 60, TotalTurns: 6,
	})
	if err != nil {
		t.Fatalf("append scenario: %v", err)
	}
	err = repo.AppendExerciseEvent(ctx, ExerciseEventData{
		SessionID: "s2", UserID: "u1", ExerciseID: "e2",
		Category: "logic", Difficulty: 3, Score: 100, IsCorrect: true,
	})
	if err != nil {
		t.Fatalf("append exercise 2: %v", err)
	}
	// Different user, must not appear.
	err = repo.AppendExerciseEvent(ctx, ExerciseEventData{
		SessionID: "s3", UserID: "u2", ExerciseID: "e3",
		Category: "memory", Difficulty: 1, Score: 50,
	})
	if err != nil {
		t.Fatalf("append exercise 3: %v", err)
	}

	records, err := repo.OutcomeHistory(ctx, "u1", time.Time{})
	if err != nil {
		t.Fatalf("outcome history: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	wantKinds := []OutcomeKind{OutcomeExercise, OutcomeScenario, OutcomeExercise}
	wantScores := []float64{80, 60, 100}
	for i, r := range records {
		if r.Kind != wantKinds[i] || r.Score != wantScores[i] {
			t.Errorf("record %d = %+v, want kind %s score %v", i, r, wantKinds[i], wantScores[i])
		}
		if i > 0 && records[i-1].Sequence >= r.Sequence {
			t.Errorf("records out of sequence order at %d", i)
		}
	}
}

func TestSessionOutcomes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendExerciseEvent(ctx, ExerciseEventData{
		SessionID: "s1", UserID: "u1", ExerciseID: "e1",
		Category: "attention", Difficulty: 1, Score: 90, IsCorrect: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendScenarioEvent(ctx, ScenarioEventData{
		SessionID: "s2", UserID: "u1", ScenarioID: "sc1",
		ScenarioType: "leadership", Difficulty: 1, AverageScore: 75,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.SessionOutcomes(ctx, "s1")
	if err != nil {
		t.Fatalf("session outcomes: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Kind != OutcomeExercise || records[0].Score != 90 {
		t.Errorf("record = %+v", records[0])
	}
}

func TestSessionEventNilAverage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", UserID: "u1", Action: "end",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	ev, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if ev.AverageScore != nil {
		t.Errorf("average score = %v, want NULL", *ev.AverageScore)
	}

	avg := 82.5
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s2", UserID: "u1", Action: "end", AverageScore: &avg,
	})
	if err != nil {
		t.Fatalf("append with average: %v", err)
	}
}

func TestLLMEventQueryAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "openrouter", Model: "m1", Purpose: "scenario-turn", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "req", ResponseBody: "resp"},
		{Provider: "openrouter", Model: "m1", Purpose: "scenario-turn", InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "openrouter", Model: "m2", Purpose: "decision-evaluation", InputTokens: 30, OutputTokens: 2, LatencyMs: 100, Success: false, ErrorMessage: "boom"},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "decision-evaluation" {
		t.Errorf("first event purpose = %q", events[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "scenario-turn" {
		t.Errorf("get event = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "scenario-turn" {
			if u.Calls != 2 || u.InputTokens != 220 || u.OutputTokens != 110 || u.AvgLatencyMs != 300 {
				t.Errorf("scenario-turn usage = %+v", u)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
}
