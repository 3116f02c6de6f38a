package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent records one graded answer submission.
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Links to the practice run (SessionEvent)"),
		field.String("question_id").
			NotEmpty(),
		field.String("variant").
			NotEmpty().
			Comment("One of the five question variants"),
		field.Bool("correct"),
		field.Float("match_ratio").
			Comment("Matched units over total units, 0..1"),
		field.Int("score"),
		field.Int64("elapsed_ms"),
		field.Int("attempts_used"),
		field.Int("hints_used"),
		field.Bool("timed_out").
			Default(false),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("question_id"),
		index.Fields("variant"),
		index.Fields("correct"),
	}
}
