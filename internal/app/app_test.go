package app

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/cogniplay/internal/difficulty"
	"github.com/abhisek/cogniplay/internal/exercise"
	"github.com/abhisek/cogniplay/internal/report"
	"github.com/abhisek/cogniplay/internal/store"
	"github.com/abhisek/cogniplay/internal/training"
)

// stubEvents satisfies store.EventRepo in memory.
type stubEvents struct {
	exercises []store.ExerciseEventData
	sessions  []store.SessionEventData
}

func (s *stubEvents) AppendExerciseEvent(_ context.Context, d store.ExerciseEventData) error {
	s.exercises = append(s.exercises, d)
	return nil
}

func (s *stubEvents) AppendScenarioEvent(context.Context, store.ScenarioEventData) error {
	return nil
}

func (s *stubEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	s.sessions = append(s.sessions, d)
	return nil
}

func (s *stubEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (s *stubEvents) OutcomeHistory(context.Context, string, time.Time) ([]store.OutcomeRecord, error) {
	return nil, nil
}

func (s *stubEvents) SessionOutcomes(context.Context, string) ([]store.OutcomeRecord, error) {
	return nil, nil
}

func (s *stubEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (s *stubEvents) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (s *stubEvents) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (s *stubEvents) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

type stubTracking struct {
	records map[string]store.TrackingRecord
}

func (s *stubTracking) Load(_ context.Context, userID string) (*store.TrackingRecord, error) {
	rec, ok := s.records[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *stubTracking) Save(_ context.Context, rec *store.TrackingRecord) error {
	s.records[rec.UserID] = *rec
	return nil
}

func (s *stubTracking) Reset(_ context.Context, userID string) error {
	delete(s.records, userID)
	return nil
}

func newTestApp(t *testing.T, input string) (*App, *stubEvents, *bytes.Buffer) {
	t.Helper()

	events := &stubEvents{}
	tracking := &stubTracking{records: map[string]store.TrackingRecord{}}
	manager := training.NewManager(difficulty.DefaultConfig(), events, tracking)

	engine := exercise.New(exercise.DefaultConfig(), rand.New(rand.NewPCG(7, 11)))
	reporter := report.NewReporter(events, report.DefaultConfig())

	out := &bytes.Buffer{}
	a := New("u1", engine, nil, manager, reporter, strings.NewReader(input), out)
	a.now = func() time.Time { return time.Unix(0, 0) }
	return a, events, out
}

func TestRunQuitImmediately(t *testing.T) {
	a, events, out := newTestApp(t, "q\n")

	if err := a.Run(context.Background(), training.SessionFull); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	if !strings.Contains(text, "Session summary") {
		t.Errorf("output missing summary:\n%s", text)
	}
	if !strings.Contains(text, "No activities completed") {
		t.Errorf("empty session should use the nil-average recommendation:\n%s", text)
	}

	if len(events.sessions) != 2 {
		t.Fatalf("session events = %d, want start+end", len(events.sessions))
	}
	if events.sessions[1].Action != "end" || events.sessions[1].AverageScore != nil {
		t.Errorf("end event = %+v", events.sessions[1])
	}
}

func TestRunExerciseFlow(t *testing.T) {
	// Pick category 1 (memory), give a wrong answer, then quit.
	a, events, out := newTestApp(t, "1\n1\ndefinitely wrong\nq\n")

	if err := a.Run(context.Background(), training.SessionFull); err != nil {
		t.Fatal(err)
	}

	if len(events.exercises) != 1 {
		t.Fatalf("exercise events = %d, want 1", len(events.exercises))
	}
	ev := events.exercises[0]
	if ev.Category != string(exercise.CategoryMemory) {
		t.Errorf("category = %q", ev.Category)
	}
	if ev.IsCorrect {
		t.Error("a nonsense answer should not be correct")
	}

	text := out.String()
	if !strings.Contains(text, "The answer was:") {
		t.Errorf("wrong answer should reveal the solution:\n%s", text)
	}
	if !strings.Contains(text, "Exercises: 1") {
		t.Errorf("summary should count the exercise:\n%s", text)
	}
}

func TestRunEndOfInputClosesSession(t *testing.T) {
	a, events, _ := newTestApp(t, "")

	err := a.Run(context.Background(), training.SessionFull)
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("err = %v, want ErrInterrupted", err)
	}
	if len(events.sessions) != 2 || events.sessions[1].Action != "end" {
		t.Errorf("interrupted session should still close: %+v", events.sessions)
	}
}

func TestResolveDecision(t *testing.T) {
	actions := []string{"Make an offer", "Walk away"}
	tests := []struct {
		in   string
		want string
	}{
		{"1", "Make an offer"},
		{"2", "Walk away"},
		{"3", "3"}, // out of range: treated as free text
		{"  push for a discount  ", "push for a discount"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := resolveDecision(tt.in, actions); got != tt.want {
			t.Errorf("resolveDecision(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
