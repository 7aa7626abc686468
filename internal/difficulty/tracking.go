package difficulty

import "time"

// OutcomeClass is the classification of a single result.
type OutcomeClass string

const (
	ClassSuccess OutcomeClass = "success"
	ClassFailure OutcomeClass = "failure"
	ClassNeutral OutcomeClass = "neutral"
)

// Tracking holds the per-user difficulty state.
// At most one of ConsecutiveSuccesses/ConsecutiveFailures is non-zero:
// a success zeroes the failure counter and vice versa, while a neutral
// result holds both counters where they are.
type Tracking struct {
	UserID               string
	Level                int
	ConsecutiveSuccesses int
	ConsecutiveFailures  int
	LastOutcome          OutcomeClass
	UpdatedAt            time.Time
}

// NewTracking returns tracking state for a fresh user at the entry level.
func NewTracking(userID string, cfg Config) *Tracking {
	return &Tracking{
		UserID:      userID,
		Level:       cfg.MinLevel,
		LastOutcome: ClassNeutral,
		UpdatedAt:   time.Now(),
	}
}

// Direction indicates which way a level change moved.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// LevelChange describes a difficulty adjustment.
type LevelChange struct {
	OldLevel  int
	NewLevel  int
	Direction Direction
	Reason    string
	Message   string
}

// Progress reports how close the user is to the next adjustment.
type Progress struct {
	Level         int
	CurrentStreak int
	Required      int
	Remaining     int
	// Direction is set when a streak is active and a change is reachable
	// from the current level; empty otherwise.
	Direction Direction
}
