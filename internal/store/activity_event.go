package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendActivity(ctx context.Context, data ActivityEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetActivityType(data.ActivityType).
		SetBasePoints(data.BasePoints).
		SetPointsAwarded(data.PointsAwarded).
		SetQuestionID(data.QuestionID).
		SetVariant(data.Variant).
		SetCorrect(data.Correct).
		SetElapsedMs(data.ElapsedMs).
		SetAttemptsUsed(data.AttemptsUsed).
		SetHintsUsed(data.HintsUsed).
		SetFirstAttempt(data.FirstAttempt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

// TotalPoints sums every activity award.
func (r *eventRepo) TotalPoints(ctx context.Context) (int, error) {
	events, err := r.client.ActivityEvent.Query().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query activity events: %w", err)
	}
	total := 0
	for _, e := range events {
		total += e.PointsAwarded
	}
	return total, nil
}
