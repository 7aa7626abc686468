package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cogniplay/ent"
	"github.com/abhisek/cogniplay/ent/difficultytracking"
)

// trackingRepo implements TrackingRepo backed by ent.
type trackingRepo struct {
	client *ent.Client
}

func (r *trackingRepo) Load(ctx context.Context, userID string) (*TrackingRecord, error) {
	dt, err := r.client.DifficultyTracking.Query().
		Where(difficultytracking.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load tracking: %w", err)
	}

	return &TrackingRecord{
		UserID:               dt.UserID,
		Level:                dt.Level,
		ConsecutiveSuccesses: dt.ConsecutiveSuccesses,
		ConsecutiveFailures:  dt.ConsecutiveFailures,
		LastOutcome:          dt.LastOutcome,
		UpdatedAt:            dt.UpdatedAt,
	}, nil
}

func (r *trackingRepo) Save(ctx context.Context, rec *TrackingRecord) error {
	existing, err := r.client.DifficultyTracking.Query().
		Where(difficultytracking.UserID(rec.UserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query tracking: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.DifficultyTracking.Create().
			SetUserID(rec.UserID).
			SetLevel(rec.Level).
			SetConsecutiveSuccesses(rec.ConsecutiveSuccesses).
			SetConsecutiveFailures(rec.ConsecutiveFailures).
			SetLastOutcome(rec.LastOutcome).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create tracking: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetLevel(rec.Level).
		SetConsecutiveSuccesses(rec.ConsecutiveSuccesses).
		SetConsecutiveFailures(rec.ConsecutiveFailures).
		SetLastOutcome(rec.LastOutcome).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update tracking: %w", err)
	}
	return nil
}

func (r *trackingRepo) Reset(ctx context.Context, userID string) error {
	_, err := r.client.DifficultyTracking.Delete().
		Where(difficultytracking.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset tracking: %w", err)
	}
	return nil
}
