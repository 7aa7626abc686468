package training

import (
	"time"
)

// SessionType selects which activities a session serves.
type SessionType string

const (
	SessionFull         SessionType = "full"
	SessionExerciseOnly SessionType = "exercise_only"
	SessionScenarioOnly SessionType = "scenario_only"
)

// Session is one training session in progress.
type Session struct {
	ID     string
	UserID string
	Type   SessionType

	// StartingLevel is the difficulty level when the session began. The
	// level may move during the session; reports compare against this.
	StartingLevel int

	StartTime time.Time

	Scores    []float64
	Exercises int
	Scenarios int
}

// Completed returns the total number of recorded outcomes.
func (s *Session) Completed() int {
	return s.Exercises + s.Scenarios
}

// AverageScore returns the mean outcome score, or nil when the session
// has no outcomes — an empty session has no average, not a zero one.
func (s *Session) AverageScore() *float64 {
	if len(s.Scores) == 0 {
		return nil
	}
	var sum float64
	for _, sc := range s.Scores {
		sum += sc
	}
	avg := sum / float64(len(s.Scores))
	return &avg
}

// Duration returns the elapsed time since the session started.
func (s *Session) Duration() time.Duration {
	return time.Since(s.StartTime)
}
