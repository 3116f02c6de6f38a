package store

import (
	"context"
	"fmt"

	"github.com/meera/lingua/ent"
	"github.com/meera/lingua/ent/submissionevent"
)

func (r *eventRepo) AppendSubmission(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetQuestionID(data.QuestionID).
		SetVariant(data.Variant).
		SetCorrect(data.Correct).
		SetMatchRatio(data.MatchRatio).
		SetScore(data.Score).
		SetElapsedMs(data.ElapsedMs).
		SetAttemptsUsed(data.AttemptsUsed).
		SetHintsUsed(data.HintsUsed).
		SetTimedOut(data.TimedOut).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

// VariantBreakdown aggregates all submissions by question variant.
func (r *eventRepo) VariantBreakdown(ctx context.Context) ([]VariantStats, error) {
	events, err := r.client.SubmissionEvent.Query().
		Order(ent.Asc(submissionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	byVariant := make(map[string]*VariantStats)
	var order []string
	for _, e := range events {
		vs := byVariant[e.Variant]
		if vs == nil {
			vs = &VariantStats{Variant: e.Variant}
			byVariant[e.Variant] = vs
			order = append(order, e.Variant)
		}
		vs.Attempted++
		if e.Correct {
			vs.Correct++
		}
		vs.Points += e.Score
	}

	out := make([]VariantStats, 0, len(order))
	for _, v := range order {
		out = append(out, *byVariant[v])
	}
	return out, nil
}
