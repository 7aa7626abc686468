package training

import (
	"github.com/abhisek/cogniplay/internal/exercise"
	"github.com/abhisek/cogniplay/internal/scenario"
)

// Outcome is one completed activity. Score feeds the session average;
// Accuracy feeds the difficulty tracker. The two concrete types are
// ExerciseOutcome and ScenarioOutcome.
type Outcome interface {
	Score() float64
	Accuracy() float64
}

// ExerciseOutcome wraps a validated exercise result.
type ExerciseOutcome struct {
	Exercise *exercise.Exercise
	Result   *exercise.Result
}

// Score returns the adjusted exercise score (0-100): time bonus and
// penalties applied.
func (o ExerciseOutcome) Score() float64 { return o.Result.Score }

// Accuracy returns the raw correctness measure (0-100). Difficulty
// progression tracks whether the answer was right, not how quickly or with
// how many hints it arrived.
func (o ExerciseOutcome) Accuracy() float64 { return o.Result.Accuracy }

// ScenarioOutcome wraps a concluded scenario.
type ScenarioOutcome struct {
	Scenario   *scenario.Scenario
	Conclusion *scenario.Conclusion
}

// Score returns the scenario's mean decision quality (0-100).
func (o ScenarioOutcome) Score() float64 { return o.Conclusion.AverageScore }

// Accuracy equals Score for scenarios; decision quality is the only
// correctness measure they have.
func (o ScenarioOutcome) Accuracy() float64 { return o.Conclusion.AverageScore }
