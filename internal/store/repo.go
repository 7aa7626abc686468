package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// OutcomeKind distinguishes the two outcome event types.
type OutcomeKind string

const (
	OutcomeExercise OutcomeKind = "exercise"
	OutcomeScenario OutcomeKind = "scenario"
)

// OutcomeRecord is the unified read-side view of one completed activity,
// merged across the exercise and scenario event tables.
type OutcomeRecord struct {
	Kind       OutcomeKind
	Sequence   int64
	SessionID  string
	Category   string // exercise category or scenario type
	Difficulty int
	Score      float64 // 0-100
	Timestamp  time.Time
}

// ExerciseEventData captures one completed exercise for persistence.
type ExerciseEventData struct {
	SessionID          string
	UserID             string
	ExerciseID         string
	Category           string
	ExerciseType       string
	Difficulty         int
	Score              float64
	Accuracy           float64
	IsCorrect          bool
	CompletionTimeSecs int
	HintsUsed          int
}

// ScenarioEventData captures one completed scenario for persistence.
type ScenarioEventData struct {
	SessionID        string
	UserID           string
	ScenarioID       string
	ScenarioType     string
	Difficulty       int
	AverageScore     float64
	TotalTurns       int
	PerformanceGrade string
}

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	SessionID          string
	UserID             string
	Action             string // start, end or cancel
	SessionType        string
	StartingLevel      int
	ExercisesCompleted int
	ScenariosCompleted int
	AverageScore       *float64 // nil when the session ended with no outcomes
	DurationSecs       int
	Recommendation     string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the read-side view of one recorded LLM request.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendExerciseEvent records a completed exercise.
	AppendExerciseEvent(ctx context.Context, data ExerciseEventData) error

	// AppendScenarioEvent records a completed scenario.
	AppendScenarioEvent(ctx context.Context, data ScenarioEventData) error

	// AppendSessionEvent records a session lifecycle transition.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// OutcomeHistory returns the user's outcomes with timestamp >= from,
	// merged across both outcome tables in sequence order.
	OutcomeHistory(ctx context.Context, userID string, from time.Time) ([]OutcomeRecord, error)

	// SessionOutcomes returns all outcomes recorded in one session in
	// sequence order.
	SessionOutcomes(ctx context.Context, sessionID string) ([]OutcomeRecord, error)

	// QueryLLMEvents returns recorded LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// TrackingRecord is the persisted adaptive-difficulty state for one user.
type TrackingRecord struct {
	UserID               string
	Level                int
	ConsecutiveSuccesses int
	ConsecutiveFailures  int
	LastOutcome          string
	UpdatedAt            time.Time
}

// TrackingRepo manages per-user difficulty tracking state.
type TrackingRepo interface {
	// Load returns the user's tracking state, or nil if none exists yet.
	Load(ctx context.Context, userID string) (*TrackingRecord, error)

	// Save upserts the user's tracking state.
	Save(ctx context.Context, rec *TrackingRecord) error

	// Reset deletes the user's tracking state.
	Reset(ctx context.Context, userID string) error
}
