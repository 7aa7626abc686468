package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/cogniplay/internal/character"
	"github.com/abhisek/cogniplay/internal/llm"
)

// Config holds engine generation parameters.
type Config struct {
	SetupMaxTokens      int
	TurnMaxTokens       int
	ConclusionMaxTokens int
	Temperature         float64

	// HistoryWindow is how many past exchanges are replayed into each
	// turn prompt.
	HistoryWindow int

	// BaseTurns plus the difficulty level caps a scenario's length.
	BaseTurns int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		SetupMaxTokens:      600,
		TurnMaxTokens:       600,
		ConclusionMaxTokens: 400,
		Temperature:         0.7,
		HistoryWindow:       3,
		BaseTurns:           5,
	}
}

// Engine manages role-playing scenarios with AI characters. Scenarios live
// in memory for the duration of a session; persistence of their outcomes
// is the caller's concern.
type Engine struct {
	provider  llm.Provider
	evaluator *Evaluator
	chargen   *character.Generator
	cfg       Config

	mu     sync.Mutex
	active map[string]*Scenario
}

// NewEngine creates a scenario engine.
func NewEngine(provider llm.Provider, evaluator *Evaluator, chargen *character.Generator, cfg Config) *Engine {
	return &Engine{
		provider:  provider,
		evaluator: evaluator,
		chargen:   chargen,
		cfg:       cfg,
		active:    make(map[string]*Scenario),
	}
}

type setupOutput struct {
	Title            string   `json:"title"`
	Context          string   `json:"context"`
	InitialSituation string   `json:"initial_situation"`
	InitialOptions   []string `json:"initial_options"`
}

// Create generates a new scenario of the given type and difficulty
// (1-5, clamped) and registers it as active.
func (e *Engine) Create(ctx context.Context, typ Type, difficulty int) (*Scenario, error) {
	ctx = llm.WithPurpose(ctx, "scenario-setup")

	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 5 {
		difficulty = 5
	}

	persona := e.chargen.Generate(string(typ), difficulty)

	userMsg, err := buildGenerationMessage(generationInput{
		Type:       typ,
		Difficulty: difficulty,
		Character:  persona,
	})
	if err != nil {
		return nil, fmt.Errorf("build scenario prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: generationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      GenerationSchema,
		MaxTokens:   e.cfg.SetupMaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("scenario generation failed: %w", err)
	}

	var setup setupOutput
	if err := json.Unmarshal(resp.Content, &setup); err != nil {
		return nil, fmt.Errorf("failed to parse scenario setup: %w", err)
	}

	s := &Scenario{
		ID:               uuid.NewString(),
		Type:             typ,
		Difficulty:       difficulty,
		Title:            setup.Title,
		Context:          setup.Context,
		Characters:       []*character.Character{persona},
		InitialSituation: setup.InitialSituation,
		CurrentSituation: setup.InitialSituation,
		AvailableActions: setup.InitialOptions,
		StartTime:        time.Now(),
	}

	e.mu.Lock()
	e.active[s.ID] = s
	e.mu.Unlock()

	return s, nil
}

type turnOutput struct {
	Response  string   `json:"response"`
	Narrative string   `json:"narrative"`
	Options   []string `json:"options"`
}

// SubmitDecision processes one trainee decision: the primary character
// responds, the decision is scored against the situation and the narrative
// it produced, and the scenario state advances.
//
// On a generation failure no scenario state is mutated, so the same turn
// can be retried.
func (e *Engine) SubmitDecision(ctx context.Context, scenarioID, decision string) (*Outcome, error) {
	e.mu.Lock()
	s, ok := e.active[scenarioID]
	e.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScenarioNotFound, scenarioID)
	}
	if s.IsComplete {
		return nil, fmt.Errorf("%w: %s", ErrScenarioComplete, scenarioID)
	}

	persona := s.Primary()

	userMsg, err := buildTurnMessage(turnInput{
		Character:  persona,
		Type:       s.Type,
		Difficulty: s.Difficulty,
		Situation:  s.CurrentSituation,
		History:    persona.RecentHistory(e.cfg.HistoryWindow),
		Decision:   decision,
	})
	if err != nil {
		return nil, fmt.Errorf("build turn prompt: %w", err)
	}

	resp, err := e.provider.Generate(llm.WithPurpose(ctx, "scenario-turn"), llm.Request{
		System: turnSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      TurnSchema,
		MaxTokens:   e.cfg.TurnMaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("character response failed: %w", err)
	}

	var turn turnOutput
	if err := json.Unmarshal(resp.Content, &turn); err != nil {
		return nil, fmt.Errorf("failed to parse turn response: %w", err)
	}

	// Score with the pre-turn situation and the narrative the decision
	// produced. The evaluator cannot fail, so from here the turn happened.
	score := e.evaluator.Evaluate(ctx, s.Type, s.CurrentSituation, decision, turn.Narrative)

	// Advance state.
	persona.Remember(character.Interaction{
		UserInput: decision,
		Response:  turn.Response,
		Timestamp: time.Now(),
	})

	s.TurnCount++
	s.CurrentSituation = turn.Narrative
	s.AvailableActions = turn.Options
	s.DecisionHistory = append(s.DecisionHistory, Decision{
		Text:    decision,
		Quality: score,
		Impact:  turn.Narrative,
	})

	complete := s.TurnCount >= e.cfg.BaseTurns+s.Difficulty || len(turn.Options) == 0

	outcome := &Outcome{
		ScenarioID:      s.ID,
		UserDecision:    decision,
		AIResponse:      turn.Response,
		NarrativeUpdate: turn.Narrative,
		DecisionQuality: score,
		NextActions:     turn.Options,
		TurnCount:       s.TurnCount,
		IsComplete:      complete,
	}

	if complete {
		s.IsComplete = true
		outcome.Conclusion = e.Conclude(ctx, s)
	}

	return outcome, nil
}

// Conclude builds the final assessment for a scenario. The numeric parts
// are computed locally; the narrative summary comes from the LLM with a
// templated fallback, so concluding never fails.
func (e *Engine) Conclude(ctx context.Context, s *Scenario) *Conclusion {
	var avg float64
	if n := len(s.DecisionHistory); n > 0 {
		for _, d := range s.DecisionHistory {
			avg += d.Quality
		}
		avg /= float64(n)
	}

	summary := e.summarize(ctx, s, avg)

	return &Conclusion{
		ScenarioID:       s.ID,
		TotalTurns:       s.TurnCount,
		DecisionCount:    len(s.DecisionHistory),
		AverageScore:     avg,
		Summary:          summary,
		PerformanceGrade: Grade(avg),
	}
}

func (e *Engine) summarize(ctx context.Context, s *Scenario, avg float64) string {
	fallback := fmt.Sprintf("Scenario completed with an average decision quality of %.1f/100.", avg)

	userMsg, err := buildConclusionMessage(conclusionInput{
		Type:          s.Type,
		Title:         s.Title,
		TurnCount:     s.TurnCount,
		DecisionCount: len(s.DecisionHistory),
		AverageScore:  avg,
	})
	if err != nil {
		return fallback
	}

	resp, err := e.provider.Generate(llm.WithPurpose(ctx, "scenario-conclusion"), llm.Request{
		System: conclusionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ConclusionSchema,
		MaxTokens:   e.cfg.ConclusionMaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return fallback
	}

	var out struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil || out.Summary == "" {
		return fallback
	}
	return out.Summary
}

// Get returns an active scenario by ID.
func (e *Engine) Get(scenarioID string) (*Scenario, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.active[scenarioID]
	return s, ok
}

// Cleanup removes a scenario from the active set.
func (e *Engine) Cleanup(scenarioID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.active, scenarioID)
}
