// Package training orchestrates sessions: it hands outcomes to the
// difficulty tracker, persists everything through the event log, and
// produces the end-of-session summary.
package training

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/cogniplay/internal/difficulty"
	"github.com/abhisek/cogniplay/internal/store"
)

// Manager coordinates sessions, outcomes and difficulty state.
type Manager struct {
	cfg      difficulty.Config
	tracker  *difficulty.Tracker
	events   store.EventRepo
	tracking store.TrackingRepo
}

// NewManager creates a training manager.
func NewManager(cfg difficulty.Config, events store.EventRepo, tracking store.TrackingRepo) *Manager {
	return &Manager{
		cfg:      cfg,
		tracker:  difficulty.NewTracker(cfg),
		events:   events,
		tracking: tracking,
	}
}

// CurrentTracking loads the user's difficulty state, creating fresh state
// at the entry level for a first-time user.
func (m *Manager) CurrentTracking(ctx context.Context, userID string) (*difficulty.Tracking, error) {
	rec, err := m.tracking.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return difficulty.NewTracking(userID, m.cfg), nil
	}
	return &difficulty.Tracking{
		UserID:               rec.UserID,
		Level:                rec.Level,
		ConsecutiveSuccesses: rec.ConsecutiveSuccesses,
		ConsecutiveFailures:  rec.ConsecutiveFailures,
		LastOutcome:          difficulty.OutcomeClass(rec.LastOutcome),
		UpdatedAt:            rec.UpdatedAt,
	}, nil
}

func (m *Manager) saveTracking(ctx context.Context, tr *difficulty.Tracking) error {
	return m.tracking.Save(ctx, &store.TrackingRecord{
		UserID:               tr.UserID,
		Level:                tr.Level,
		ConsecutiveSuccesses: tr.ConsecutiveSuccesses,
		ConsecutiveFailures:  tr.ConsecutiveFailures,
		LastOutcome:          string(tr.LastOutcome),
		UpdatedAt:            tr.UpdatedAt,
	})
}

// StartSession begins a session at the user's current difficulty level.
func (m *Manager) StartSession(ctx context.Context, userID string, typ SessionType) (*Session, error) {
	tr, err := m.CurrentTracking(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load tracking: %w", err)
	}

	sess := &Session{
		ID:            uuid.NewString(),
		UserID:        userID,
		Type:          typ,
		StartingLevel: tr.Level,
		StartTime:     time.Now(),
	}

	err = m.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     sess.ID,
		UserID:        userID,
		Action:        "start",
		SessionType:   string(typ),
		StartingLevel: tr.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("record session start: %w", err)
	}

	return sess, nil
}

// RecordOutcome persists one completed activity and advances the
// difficulty state. The outcome is written to the event log BEFORE any
// in-memory state moves: if the append fails, the session and tracking
// are left exactly as they were and the caller may retry.
func (m *Manager) RecordOutcome(ctx context.Context, sess *Session, out Outcome) (*difficulty.LevelChange, error) {
	switch o := out.(type) {
	case ExerciseOutcome:
		err := m.events.AppendExerciseEvent(ctx, store.ExerciseEventData{
			SessionID:          sess.ID,
			UserID:             sess.UserID,
			ExerciseID:         o.Exercise.ID,
			Category:           string(o.Exercise.Category),
			ExerciseType:       o.Exercise.Type,
			Difficulty:         o.Exercise.Difficulty,
			Score:              o.Result.Score,
			Accuracy:           o.Result.Accuracy,
			IsCorrect:          o.Result.IsCorrect,
			CompletionTimeSecs: o.Result.CompletionTimeSecs,
			HintsUsed:          o.Result.HintsUsed,
		})
		if err != nil {
			return nil, fmt.Errorf("persist exercise outcome: %w", err)
		}
	case ScenarioOutcome:
		err := m.events.AppendScenarioEvent(ctx, store.ScenarioEventData{
			SessionID:        sess.ID,
			UserID:           sess.UserID,
			ScenarioID:       o.Scenario.ID,
			ScenarioType:     string(o.Scenario.Type),
			Difficulty:       o.Scenario.Difficulty,
			AverageScore:     o.Conclusion.AverageScore,
			TotalTurns:       o.Conclusion.TotalTurns,
			PerformanceGrade: o.Conclusion.PerformanceGrade,
		})
		if err != nil {
			return nil, fmt.Errorf("persist scenario outcome: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown outcome type %T", out)
	}

	tr, err := m.CurrentTracking(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("load tracking: %w", err)
	}

	change := m.tracker.Apply(tr, out.Accuracy())

	if err := m.saveTracking(ctx, tr); err != nil {
		return nil, fmt.Errorf("save tracking: %w", err)
	}

	sess.Scores = append(sess.Scores, out.Score())
	switch out.(type) {
	case ExerciseOutcome:
		sess.Exercises++
	case ScenarioOutcome:
		sess.Scenarios++
	}

	return change, nil
}

// CompleteSession closes the session and returns its summary. A session
// with no recorded outcomes closes with a nil average.
func (m *Manager) CompleteSession(ctx context.Context, sess *Session) (*Summary, error) {
	avg := sess.AverageScore()
	rec := Recommendation(avg)
	duration := int(sess.Duration().Seconds())

	err := m.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:          sess.ID,
		UserID:             sess.UserID,
		Action:             "end",
		SessionType:        string(sess.Type),
		ExercisesCompleted: sess.Exercises,
		ScenariosCompleted: sess.Scenarios,
		AverageScore:       avg,
		DurationSecs:       duration,
		Recommendation:     rec,
	})
	if err != nil {
		return nil, fmt.Errorf("record session end: %w", err)
	}

	return &Summary{
		SessionID:      sess.ID,
		SessionType:    sess.Type,
		DurationSecs:   duration,
		Exercises:      sess.Exercises,
		Scenarios:      sess.Scenarios,
		AverageScore:   avg,
		Recommendation: rec,
	}, nil
}

// CancelSession abandons a session without computing a summary.
func (m *Manager) CancelSession(ctx context.Context, sess *Session) error {
	err := m.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    sess.ID,
		UserID:       sess.UserID,
		Action:       "cancel",
		SessionType:  string(sess.Type),
		DurationSecs: int(sess.Duration().Seconds()),
	})
	if err != nil {
		return fmt.Errorf("record session cancel: %w", err)
	}
	return nil
}

// SetLevel manually overrides the user's difficulty level.
func (m *Manager) SetLevel(ctx context.Context, userID string, level int) (*difficulty.LevelChange, error) {
	tr, err := m.CurrentTracking(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load tracking: %w", err)
	}

	change := m.tracker.SetLevel(tr, level, "manual adjustment")

	if err := m.saveTracking(ctx, tr); err != nil {
		return nil, fmt.Errorf("save tracking: %w", err)
	}
	return change, nil
}

// Progress reports how close the user is to the next level adjustment.
func (m *Manager) Progress(ctx context.Context, userID string) (difficulty.Progress, error) {
	tr, err := m.CurrentTracking(ctx, userID)
	if err != nil {
		return difficulty.Progress{}, fmt.Errorf("load tracking: %w", err)
	}
	return m.tracker.Progress(tr), nil
}

// ResetTracking deletes the user's difficulty state, returning them to
// the entry level.
func (m *Manager) ResetTracking(ctx context.Context, userID string) error {
	return m.tracking.Reset(ctx, userID)
}
