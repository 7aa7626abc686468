package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/cogniplay/ent"
	"github.com/abhisek/cogniplay/ent/exerciseevent"
	"github.com/abhisek/cogniplay/ent/scenarioevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendExerciseEvent(ctx context.Context, data ExerciseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExerciseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetExerciseID(data.ExerciseID).
		SetCategory(data.Category).
		SetExerciseType(data.ExerciseType).
		SetDifficulty(data.Difficulty).
		SetScore(data.Score).
		SetAccuracy(data.Accuracy).
		SetIsCorrect(data.IsCorrect).
		SetCompletionTimeSecs(data.CompletionTimeSecs).
		SetHintsUsed(data.HintsUsed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exercise event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendScenarioEvent(ctx context.Context, data ScenarioEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ScenarioEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetScenarioID(data.ScenarioID).
		SetScenarioType(data.ScenarioType).
		SetDifficulty(data.Difficulty).
		SetAverageScore(data.AverageScore).
		SetTotalTurns(data.TotalTurns).
		SetPerformanceGrade(data.PerformanceGrade).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save scenario event: %w", err)
	}
	return nil
}

func (r *eventRepo) OutcomeHistory(ctx context.Context, userID string, from time.Time) ([]OutcomeRecord, error) {
	exQuery := r.client.ExerciseEvent.Query().
		Where(exerciseevent.UserID(userID))
	scQuery := r.client.ScenarioEvent.Query().
		Where(scenarioevent.UserID(userID))
	if !from.IsZero() {
		exQuery = exQuery.Where(exerciseevent.TimestampGTE(from))
		scQuery = scQuery.Where(scenarioevent.TimestampGTE(from))
	}

	exEvents, err := exQuery.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exercise events: %w", err)
	}
	scEvents, err := scQuery.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query scenario events: %w", err)
	}

	return mergeOutcomes(exEvents, scEvents), nil
}

func (r *eventRepo) SessionOutcomes(ctx context.Context, sessionID string) ([]OutcomeRecord, error) {
	exEvents, err := r.client.ExerciseEvent.Query().
		Where(exerciseevent.SessionID(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exercise events: %w", err)
	}
	scEvents, err := r.client.ScenarioEvent.Query().
		Where(scenarioevent.SessionID(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query scenario events: %w", err)
	}

	return mergeOutcomes(exEvents, scEvents), nil
}

// mergeOutcomes combines the two event types into one sequence-ordered list.
func mergeOutcomes(exEvents []*ent.ExerciseEvent, scEvents []*ent.ScenarioEvent) []OutcomeRecord {
	records := make([]OutcomeRecord, 0, len(exEvents)+len(scEvents))
	for _, e := range exEvents {
		records = append(records, OutcomeRecord{
			Kind:       OutcomeExercise,
			Sequence:   e.Sequence,
			SessionID:  e.SessionID,
			Category:   e.Category,
			Difficulty: e.Difficulty,
			Score:      e.Score,
			Timestamp:  e.Timestamp,
		})
	}
	for _, e := range scEvents {
		records = append(records, OutcomeRecord{
			Kind:       OutcomeScenario,
			Sequence:   e.Sequence,
			SessionID:  e.SessionID,
			Category:   e.ScenarioType,
			Difficulty: e.Difficulty,
			Score:      e.AverageScore,
			Timestamp:  e.Timestamp,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Sequence < records[j].Sequence
	})
	return records
}
