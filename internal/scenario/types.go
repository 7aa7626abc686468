// Package scenario runs interactive role-playing scenarios: LLM-generated
// situations the trainee steers by making decisions, each decision scored
// for quality and folded into a final assessment.
package scenario

import (
	"errors"
	"time"

	"github.com/abhisek/cogniplay/internal/character"
)

// Type identifies a scenario category.
type Type string

const (
	TypeNegotiation       Type = "negotiation"
	TypeProblemSolving    Type = "problem_solving"
	TypeSocialInteraction Type = "social_interaction"
	TypeLeadership        Type = "leadership"
	TypeCreativeThinking  Type = "creative_thinking"
)

// Types returns all scenario types in display order.
func Types() []Type {
	return []Type{
		TypeNegotiation,
		TypeProblemSolving,
		TypeSocialInteraction,
		TypeLeadership,
		TypeCreativeThinking,
	}
}

var (
	// ErrScenarioNotFound is returned when the scenario ID is not in the
	// active set.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrScenarioComplete is returned when a decision is submitted to a
	// scenario that has already concluded.
	ErrScenarioComplete = errors.New("scenario already complete")
)

// Decision is one scored entry in a scenario's decision history.
type Decision struct {
	Text    string  `json:"decision"`
	Quality float64 `json:"quality"` // 0-100
	Impact  string  `json:"impact"`  // resulting narrative
}

// Scenario is an in-progress or completed role-playing scenario.
type Scenario struct {
	ID         string `json:"id"`
	Type       Type   `json:"type"`
	Difficulty int    `json:"difficulty"`
	Title      string `json:"title"`
	Context    string `json:"context"`

	// Characters participating; the first is the primary responder.
	Characters []*character.Character `json:"characters"`

	InitialSituation string   `json:"initial_situation"`
	CurrentSituation string   `json:"current_situation"`
	AvailableActions []string `json:"available_actions"`

	DecisionHistory []Decision `json:"decision_history"`
	TurnCount       int        `json:"turn_count"`
	IsComplete      bool       `json:"is_complete"`

	StartTime time.Time `json:"start_time"`
}

// Primary returns the scenario's primary responding character.
func (s *Scenario) Primary() *character.Character {
	if len(s.Characters) == 0 {
		return nil
	}
	return s.Characters[0]
}

// Outcome is the result of processing one decision.
type Outcome struct {
	ScenarioID      string   `json:"scenario_id"`
	UserDecision    string   `json:"user_decision"`
	AIResponse      string   `json:"ai_response"`
	NarrativeUpdate string   `json:"narrative_update"`
	DecisionQuality float64  `json:"decision_quality"`
	NextActions     []string `json:"next_actions"`
	TurnCount       int      `json:"turn_count"`
	IsComplete      bool     `json:"is_complete"`

	// Conclusion is set when this decision completed the scenario.
	Conclusion *Conclusion `json:"conclusion,omitempty"`
}

// Conclusion is the final assessment of a completed scenario.
type Conclusion struct {
	ScenarioID       string  `json:"scenario_id"`
	TotalTurns       int     `json:"total_turns"`
	DecisionCount    int     `json:"decision_count"`
	AverageScore     float64 `json:"average_score"`
	Summary          string  `json:"summary"`
	PerformanceGrade string  `json:"performance_grade"`
}

// Grade converts a 0-100 score to a letter grade.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
