package training

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/cogniplay/internal/difficulty"
	"github.com/abhisek/cogniplay/internal/exercise"
	"github.com/abhisek/cogniplay/internal/scenario"
	"github.com/abhisek/cogniplay/internal/store"
)

// fakeEventRepo records appended events in memory and can be told to fail.
type fakeEventRepo struct {
	exercises []store.ExerciseEventData
	scenarios []store.ScenarioEventData
	sessions  []store.SessionEventData
	llm       []store.LLMRequestEventData

	failAppends bool
}

var errBoom = errors.New("boom")

func (f *fakeEventRepo) AppendExerciseEvent(_ context.Context, d store.ExerciseEventData) error {
	if f.failAppends {
		return errBoom
	}
	f.exercises = append(f.exercises, d)
	return nil
}

func (f *fakeEventRepo) AppendScenarioEvent(_ context.Context, d store.ScenarioEventData) error {
	if f.failAppends {
		return errBoom
	}
	f.scenarios = append(f.scenarios, d)
	return nil
}

func (f *fakeEventRepo) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	if f.failAppends {
		return errBoom
	}
	f.sessions = append(f.sessions, d)
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	f.llm = append(f.llm, d)
	return nil
}

func (f *fakeEventRepo) OutcomeHistory(context.Context, string, time.Time) ([]store.OutcomeRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) SessionOutcomes(context.Context, string) ([]store.OutcomeRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

// fakeTrackingRepo keeps tracking records in a map.
type fakeTrackingRepo struct {
	records map[string]store.TrackingRecord
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{records: map[string]store.TrackingRecord{}}
}

func (f *fakeTrackingRepo) Load(_ context.Context, userID string) (*store.TrackingRecord, error) {
	rec, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeTrackingRepo) Save(_ context.Context, rec *store.TrackingRecord) error {
	f.records[rec.UserID] = *rec
	return nil
}

func (f *fakeTrackingRepo) Reset(_ context.Context, userID string) error {
	delete(f.records, userID)
	return nil
}

func newTestManager() (*Manager, *fakeEventRepo, *fakeTrackingRepo) {
	events := &fakeEventRepo{}
	tracking := newFakeTrackingRepo()
	return NewManager(difficulty.DefaultConfig(), events, tracking), events, tracking
}

func exerciseOutcome(score float64) ExerciseOutcome {
	return ExerciseOutcome{
		Exercise: &exercise.Exercise{
			ID:       "ex-1",
			Category: exercise.CategoryMemory,
			Type:     "word_list",
		},
		Result: &exercise.Result{
			ExerciseID: "ex-1",
			Score:      score,
			Accuracy:   score,
			IsCorrect:  score >= 50,
		},
	}
}

func scenarioOutcome(avg float64) ScenarioOutcome {
	return ScenarioOutcome{
		Scenario: &scenario.Scenario{
			ID:         "sc-1",
			Type:       scenario.TypeNegotiation,
			Difficulty: 2,
		},
		Conclusion: &scenario.Conclusion{
			ScenarioID:       "sc-1",
			AverageScore:     avg,
			TotalTurns:       6,
			PerformanceGrade: scenario.Grade(avg),
		},
	}
}

// hintedOutcome is a correct answer whose adjusted score was dragged down
// by hint penalties.
func hintedOutcome() ExerciseOutcome {
	return ExerciseOutcome{
		Exercise: &exercise.Exercise{
			ID:       "ex-2",
			Category: exercise.CategoryLogic,
			Type:     "syllogism",
		},
		Result: &exercise.Result{
			ExerciseID: "ex-2",
			Score:      85,
			Accuracy:   100,
			IsCorrect:  true,
			HintsUsed:  3,
		},
	}
}

func TestStartSessionCapturesLevel(t *testing.T) {
	m, events, tracking := newTestManager()
	ctx := context.Background()

	tracking.records["u1"] = store.TrackingRecord{UserID: "u1", Level: 3}

	sess, err := m.StartSession(ctx, "u1", SessionFull)
	if err != nil {
		t.Fatal(err)
	}
	if sess.StartingLevel != 3 {
		t.Errorf("starting level = %d, want 3", sess.StartingLevel)
	}
	if len(events.sessions) != 1 || events.sessions[0].Action != "start" {
		t.Fatalf("session events = %+v", events.sessions)
	}
	if events.sessions[0].StartingLevel != 3 {
		t.Errorf("recorded starting level = %d", events.sessions[0].StartingLevel)
	}
}

func TestStartSessionFreshUser(t *testing.T) {
	m, _, _ := newTestManager()

	sess, err := m.StartSession(context.Background(), "new", SessionExerciseOnly)
	if err != nil {
		t.Fatal(err)
	}
	if sess.StartingLevel != 1 {
		t.Errorf("fresh user level = %d, want 1", sess.StartingLevel)
	}
}

func TestSessionAverage(t *testing.T) {
	m, events, _ := newTestManager()
	ctx := context.Background()

	sess, err := m.StartSession(ctx, "u1", SessionFull)
	if err != nil {
		t.Fatal(err)
	}

	for _, score := range []float64{80, 60} {
		if _, err := m.RecordOutcome(ctx, sess, exerciseOutcome(score)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := m.RecordOutcome(ctx, sess, scenarioOutcome(100)); err != nil {
		t.Fatal(err)
	}

	if sess.Exercises != 2 || sess.Scenarios != 1 {
		t.Errorf("counts = %d exercises, %d scenarios", sess.Exercises, sess.Scenarios)
	}

	summary, err := m.CompleteSession(ctx, sess)
	if err != nil {
		t.Fatal(err)
	}
	if summary.AverageScore == nil || *summary.AverageScore != 80.0 {
		t.Fatalf("average = %v, want 80.0", summary.AverageScore)
	}
	if len(events.exercises) != 2 || len(events.scenarios) != 1 {
		t.Errorf("persisted %d exercises, %d scenarios", len(events.exercises), len(events.scenarios))
	}
}

func TestEmptySessionNilAverage(t *testing.T) {
	m, events, _ := newTestManager()
	ctx := context.Background()

	sess, err := m.StartSession(ctx, "u1", SessionFull)
	if err != nil {
		t.Fatal(err)
	}

	summary, err := m.CompleteSession(ctx, sess)
	if err != nil {
		t.Fatal(err)
	}
	if summary.AverageScore != nil {
		t.Errorf("average = %v, want nil", *summary.AverageScore)
	}

	end := events.sessions[len(events.sessions)-1]
	if end.Action != "end" {
		t.Fatalf("last event action = %q", end.Action)
	}
	if end.AverageScore != nil {
		t.Errorf("persisted average = %v, want nil", *end.AverageScore)
	}
}

func TestRecordOutcomePersistsBeforeAdvance(t *testing.T) {
	m, events, tracking := newTestManager()
	ctx := context.Background()

	sess, err := m.StartSession(ctx, "u1", SessionFull)
	if err != nil {
		t.Fatal(err)
	}

	// Build a 2-success streak.
	for i := 0; i < 2; i++ {
		if _, err := m.RecordOutcome(ctx, sess, exerciseOutcome(95)); err != nil {
			t.Fatal(err)
		}
	}

	// Persistence fails on the third: nothing may advance.
	events.failAppends = true
	_, err = m.RecordOutcome(ctx, sess, exerciseOutcome(95))
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want errBoom", err)
	}
	if len(sess.Scores) != 2 {
		t.Errorf("session scores advanced to %d on failure", len(sess.Scores))
	}
	rec := tracking.records["u1"]
	if rec.ConsecutiveSuccesses != 2 || rec.Level != 1 {
		t.Errorf("tracking advanced on failure: %+v", rec)
	}

	// Retry succeeds and triggers the level change.
	events.failAppends = false
	change, err := m.RecordOutcome(ctx, sess, exerciseOutcome(95))
	if err != nil {
		t.Fatal(err)
	}
	if change == nil || change.NewLevel != 2 {
		t.Fatalf("change = %+v, want level 2", change)
	}
	if tracking.records["u1"].Level != 2 {
		t.Errorf("persisted level = %d, want 2", tracking.records["u1"].Level)
	}
}

func TestDifficultyTracksAccuracyNotAdjustedScore(t *testing.T) {
	m, _, tracking := newTestManager()
	ctx := context.Background()

	sess, err := m.StartSession(ctx, "u1", SessionFull)
	if err != nil {
		t.Fatal(err)
	}

	// Three correct answers, each dragged to an adjusted 85 by hints.
	// Raw accuracy is 100, so the streak must still level up.
	var change *difficulty.LevelChange
	for i := 0; i < 3; i++ {
		change, err = m.RecordOutcome(ctx, sess, hintedOutcome())
		if err != nil {
			t.Fatal(err)
		}
	}
	if change == nil || change.NewLevel != 2 {
		t.Fatalf("change = %+v, want level up to 2", change)
	}
	if tracking.records["u1"].Level != 2 {
		t.Errorf("persisted level = %d, want 2", tracking.records["u1"].Level)
	}

	// The session average still uses the adjusted score.
	if avg := sess.AverageScore(); avg == nil || *avg != 85 {
		t.Errorf("session average = %v, want 85", avg)
	}
}

func TestRecordOutcomeLevelDown(t *testing.T) {
	m, _, tracking := newTestManager()
	ctx := context.Background()

	tracking.records["u1"] = store.TrackingRecord{UserID: "u1", Level: 3}

	sess, err := m.StartSession(ctx, "u1", SessionFull)
	if err != nil {
		t.Fatal(err)
	}

	var change *difficulty.LevelChange
	for i := 0; i < 3; i++ {
		change, err = m.RecordOutcome(ctx, sess, exerciseOutcome(30))
		if err != nil {
			t.Fatal(err)
		}
	}
	if change == nil || change.Direction != difficulty.DirectionDown || change.NewLevel != 2 {
		t.Fatalf("change = %+v, want down to 2", change)
	}
	// Starting level is a session-start snapshot, not live state.
	if sess.StartingLevel != 3 {
		t.Errorf("starting level mutated to %d", sess.StartingLevel)
	}
}

func TestSetLevelClampsAndPersists(t *testing.T) {
	m, _, tracking := newTestManager()
	ctx := context.Background()

	change, err := m.SetLevel(ctx, "u1", 9)
	if err != nil {
		t.Fatal(err)
	}
	if change.NewLevel != 5 {
		t.Errorf("level = %d, want clamp to 5", change.NewLevel)
	}
	if tracking.records["u1"].Level != 5 {
		t.Errorf("persisted level = %d", tracking.records["u1"].Level)
	}
}

func TestCancelSession(t *testing.T) {
	m, events, _ := newTestManager()
	ctx := context.Background()

	sess, err := m.StartSession(ctx, "u1", SessionScenarioOnly)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.CancelSession(ctx, sess); err != nil {
		t.Fatal(err)
	}

	last := events.sessions[len(events.sessions)-1]
	if last.Action != "cancel" {
		t.Errorf("last action = %q, want cancel", last.Action)
	}
}

func TestRecommendationBands(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	tests := []struct {
		avg  *float64
		want string
	}{
		{f(95), "Excellent session! You're performing at a high level. Try increasing difficulty for more challenge."},
		{f(85), "Great work! Your performance is strong. Keep up the consistent practice."},
		{f(75), "Good session! You're making progress. Focus on accuracy in your next session."},
		{f(65), "Decent performance. Review the areas where you struggled and practice more."},
		{f(40), "This session was challenging. Consider starting with easier exercises to build confidence."},
		{nil, "No activities completed this session. Try a short exercise-only session to get started."},
	}
	for _, tt := range tests {
		if got := Recommendation(tt.avg); got != tt.want {
			t.Errorf("Recommendation(%v) = %q", tt.avg, got)
		}
	}
}
