package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetAction(data.Action).
		SetSessionType(data.SessionType).
		SetStartingLevel(data.StartingLevel).
		SetExercisesCompleted(data.ExercisesCompleted).
		SetScenariosCompleted(data.ScenariosCompleted).
		SetDurationSecs(data.DurationSecs).
		SetRecommendation(data.Recommendation)

	// A session with no outcomes ends with no average at all; the column
	// stays NULL rather than recording a misleading zero.
	if data.AverageScore != nil {
		builder = builder.SetAverageScore(*data.AverageScore)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
