package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/cogniplay/internal/character"
	"github.com/abhisek/cogniplay/internal/llm"
)

const setupJSON = `{
	"title": "The Vendor Contract",
	"context": "Your company is renewing a key supplier contract.",
	"initial_situation": "The vendor opens with a 20% price increase.",
	"initial_options": ["Push back on the increase", "Ask for justification", "Propose a longer term"]
}`

func turnJSON(options ...string) json.RawMessage {
	out := map[string]any{
		"response":  "That's our final position.",
		"narrative": "The vendor folds their arms and waits.",
		"options":   options,
	}
	b, _ := json.Marshal(out)
	return b
}

// newTestEngine wires separate mocks for turns and evaluation, mirroring
// the two provider routes the engine is built with.
func newTestEngine(turns *llm.MockProvider, evals *llm.MockProvider) *Engine {
	chargen := character.NewGenerator(rand.New(rand.NewPCG(1, 1)))
	ev := NewEvaluator(evals, DefaultEvaluatorConfig())
	return NewEngine(turns, ev, chargen, DefaultConfig())
}

func TestCreate(t *testing.T) {
	turns := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(setupJSON)})
	e := newTestEngine(turns, llm.NewMockProvider())

	s, err := e.Create(context.Background(), TypeNegotiation, 2)
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "The Vendor Contract" {
		t.Errorf("title = %q", s.Title)
	}
	if s.CurrentSituation != s.InitialSituation {
		t.Error("current situation should start at initial situation")
	}
	if len(s.AvailableActions) != 3 {
		t.Errorf("actions = %d, want 3", len(s.AvailableActions))
	}
	if len(s.Characters) != 1 {
		t.Fatalf("characters = %d, want 1", len(s.Characters))
	}
	if s.TurnCount != 0 || s.IsComplete {
		t.Error("new scenario should be at turn 0 and incomplete")
	}

	got, ok := e.Get(s.ID)
	if !ok || got != s {
		t.Error("created scenario should be registered as active")
	}
}

func TestCreateClampsDifficulty(t *testing.T) {
	turns := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(setupJSON)},
		llm.MockResponse{Content: json.RawMessage(setupJSON)},
	)
	e := newTestEngine(turns, llm.NewMockProvider())

	s, err := e.Create(context.Background(), TypeLeadership, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Difficulty != 1 {
		t.Errorf("difficulty = %d, want 1", s.Difficulty)
	}

	s, err = e.Create(context.Background(), TypeLeadership, 99)
	if err != nil {
		t.Fatal(err)
	}
	if s.Difficulty != 5 {
		t.Errorf("difficulty = %d, want 5", s.Difficulty)
	}
}

func TestSubmitDecisionAdvancesState(t *testing.T) {
	turns := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(setupJSON)},
		llm.MockResponse{Content: turnJSON("Hold firm", "Offer a concession")},
	)
	evals := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`85`)})
	e := newTestEngine(turns, evals)

	s, err := e.Create(context.Background(), TypeNegotiation, 3)
	if err != nil {
		t.Fatal(err)
	}

	out, err := e.SubmitDecision(context.Background(), s.ID, "Push back on the increase")
	if err != nil {
		t.Fatal(err)
	}

	if out.DecisionQuality != 85 {
		t.Errorf("quality = %v, want 85", out.DecisionQuality)
	}
	if out.TurnCount != 1 {
		t.Errorf("turn count = %d, want 1", out.TurnCount)
	}
	if out.IsComplete {
		t.Error("scenario should not be complete after one turn with options remaining")
	}
	if s.CurrentSituation != "The vendor folds their arms and waits." {
		t.Errorf("situation not advanced: %q", s.CurrentSituation)
	}
	if len(s.DecisionHistory) != s.TurnCount {
		t.Errorf("decision history length %d != turn count %d", len(s.DecisionHistory), s.TurnCount)
	}
	if got := len(s.Primary().History); got != 1 {
		t.Errorf("character history = %d, want 1", got)
	}
}

func TestSubmitDecisionUnknownScenario(t *testing.T) {
	e := newTestEngine(llm.NewMockProvider(), llm.NewMockProvider())

	_, err := e.SubmitDecision(context.Background(), "nope", "do something")
	if !errors.Is(err, ErrScenarioNotFound) {
		t.Errorf("err = %v, want ErrScenarioNotFound", err)
	}
}

func TestSubmitDecisionCompleteScenario(t *testing.T) {
	turns := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(setupJSON)})
	e := newTestEngine(turns, llm.NewMockProvider())

	s, err := e.Create(context.Background(), TypeNegotiation, 1)
	if err != nil {
		t.Fatal(err)
	}
	s.IsComplete = true

	_, err = e.SubmitDecision(context.Background(), s.ID, "one more thing")
	if !errors.Is(err, ErrScenarioComplete) {
		t.Errorf("err = %v, want ErrScenarioComplete", err)
	}
}

func TestSubmitDecisionFailureLeavesStateUntouched(t *testing.T) {
	turns := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(setupJSON)},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	evals := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`90`)})
	e := newTestEngine(turns, evals)

	s, err := e.Create(context.Background(), TypeProblemSolving, 2)
	if err != nil {
		t.Fatal(err)
	}
	situation := s.CurrentSituation

	_, err = e.SubmitDecision(context.Background(), s.ID, "try something")
	if err == nil {
		t.Fatal("expected turn failure")
	}

	if s.TurnCount != 0 {
		t.Errorf("turn count mutated to %d on failure", s.TurnCount)
	}
	if len(s.DecisionHistory) != 0 {
		t.Errorf("decision history mutated on failure: %d entries", len(s.DecisionHistory))
	}
	if s.CurrentSituation != situation {
		t.Error("situation mutated on failure")
	}
	if len(s.Primary().History) != 0 {
		t.Error("character history mutated on failure")
	}

	// The same turn is retryable.
	turns.AddResponse(llm.MockResponse{Content: turnJSON("Continue")})
	evals.AddResponse(llm.MockResponse{Content: json.RawMessage(`75`)})

	out, err := e.SubmitDecision(context.Background(), s.ID, "try something")
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if out.TurnCount != 1 {
		t.Errorf("retry turn count = %d, want 1", out.TurnCount)
	}
}

func TestSubmitDecisionEmptyOptionsConcludes(t *testing.T) {
	turns := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(setupJSON)},
		llm.MockResponse{Content: turnJSON()},
		llm.MockResponse{Content: json.RawMessage(`{"summary": "You closed the deal with a balanced compromise."}`)},
	)
	evals := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`80`)})
	e := newTestEngine(turns, evals)

	s, err := e.Create(context.Background(), TypeNegotiation, 3)
	if err != nil {
		t.Fatal(err)
	}

	out, err := e.SubmitDecision(context.Background(), s.ID, "Accept the final offer")
	if err != nil {
		t.Fatal(err)
	}
	if !out.IsComplete {
		t.Fatal("empty options should conclude the scenario")
	}
	if out.Conclusion == nil {
		t.Fatal("completed outcome should carry a conclusion")
	}
	if out.Conclusion.AverageScore != 80 {
		t.Errorf("average = %v, want 80", out.Conclusion.AverageScore)
	}
	if out.Conclusion.PerformanceGrade != "B" {
		t.Errorf("grade = %q, want B", out.Conclusion.PerformanceGrade)
	}
	if out.Conclusion.Summary != "You closed the deal with a balanced compromise." {
		t.Errorf("summary = %q", out.Conclusion.Summary)
	}
	if !s.IsComplete {
		t.Error("scenario should be marked complete")
	}
}

func TestTurnCapConcludes(t *testing.T) {
	turns := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(setupJSON)})
	evals := llm.NewMockProvider()
	e := newTestEngine(turns, evals)

	s, err := e.Create(context.Background(), TypeNegotiation, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Cap is BaseTurns + difficulty = 6 turns. Every turn keeps options
	// open; the cap alone must end it. Summary call fails, exercising the
	// templated fallback.
	limit := DefaultConfig().BaseTurns + s.Difficulty
	for i := 0; i < limit; i++ {
		turns.AddResponse(llm.MockResponse{Content: turnJSON("Keep going")})
		evals.AddResponse(llm.MockResponse{Content: json.RawMessage(`70`)})
	}
	turns.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	var out *Outcome
	for i := 0; i < limit; i++ {
		out, err = e.SubmitDecision(context.Background(), s.ID, fmt.Sprintf("decision %d", i+1))
		if err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
		if len(s.DecisionHistory) != s.TurnCount {
			t.Fatalf("turn %d: history %d != turns %d", i+1, len(s.DecisionHistory), s.TurnCount)
		}
	}

	if !out.IsComplete {
		t.Fatal("scenario should complete at the turn cap")
	}
	if out.Conclusion == nil {
		t.Fatal("missing conclusion")
	}
	if out.Conclusion.TotalTurns != limit {
		t.Errorf("total turns = %d, want %d", out.Conclusion.TotalTurns, limit)
	}
	want := "Scenario completed with an average decision quality of 70.0/100."
	if out.Conclusion.Summary != want {
		t.Errorf("fallback summary = %q, want %q", out.Conclusion.Summary, want)
	}
}

func TestTurnCapConfigurable(t *testing.T) {
	turns := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(setupJSON)},
		llm.MockResponse{Content: turnJSON("Keep going")},
		llm.MockResponse{Content: turnJSON("Still going")},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	evals := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`60`)},
		llm.MockResponse{Content: json.RawMessage(`60`)},
	)
	chargen := character.NewGenerator(rand.New(rand.NewPCG(1, 1)))
	cfg := DefaultConfig()
	cfg.BaseTurns = 1
	e := NewEngine(turns, NewEvaluator(evals, DefaultEvaluatorConfig()), chargen, cfg)

	s, err := e.Create(context.Background(), TypeNegotiation, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Cap is BaseTurns + difficulty = 2 turns.
	out, err := e.SubmitDecision(context.Background(), s.ID, "first move")
	if err != nil {
		t.Fatal(err)
	}
	if out.IsComplete {
		t.Fatal("scenario complete after one turn with a cap of two")
	}

	out, err = e.SubmitDecision(context.Background(), s.ID, "second move")
	if err != nil {
		t.Fatal(err)
	}
	if !out.IsComplete {
		t.Error("scenario should complete at the configured cap")
	}
}

func TestEvaluationSeesNarrativeOutcome(t *testing.T) {
	turns := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(setupJSON)},
		llm.MockResponse{Content: turnJSON("Hold firm")},
	)
	evals := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`80`)})
	e := newTestEngine(turns, evals)

	s, err := e.Create(context.Background(), TypeNegotiation, 2)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := e.SubmitDecision(context.Background(), s.ID, "Push back on the increase"); err != nil {
		t.Fatal(err)
	}

	if len(evals.Calls) != 1 {
		t.Fatalf("evaluation calls = %d, want 1", len(evals.Calls))
	}
	prompt := evals.Calls[0].Messages[0].Content
	// The score must weigh the situation the decision was made in, the
	// decision itself, and the narrative it produced.
	for _, want := range []string{
		"The vendor opens with a 20% price increase.",
		"Push back on the increase",
		"The vendor folds their arms and waits.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("evaluation prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "A"}, {90, "A"}, {89.9, "B"}, {80, "B"},
		{75, "C"}, {70, "C"}, {65, "D"}, {60, "D"}, {59.9, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.want {
			t.Errorf("Grade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCleanup(t *testing.T) {
	turns := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(setupJSON)})
	e := newTestEngine(turns, llm.NewMockProvider())

	s, err := e.Create(context.Background(), TypeSocialInteraction, 2)
	if err != nil {
		t.Fatal(err)
	}

	e.Cleanup(s.ID)
	if _, ok := e.Get(s.ID); ok {
		t.Error("scenario should be removed from the active set")
	}
}
