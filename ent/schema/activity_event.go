package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent records an activity-completion award emitted to the
// gamification ledger whenever a submission earns points.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").NotEmpty(),
		field.String("activity_type").
			NotEmpty().
			Comment("Derived from the question variant, e.g. grammar_exercise"),
		field.Int("base_points"),
		field.Int("points_awarded"),
		field.String("question_id").NotEmpty(),
		field.String("variant").NotEmpty(),
		field.Bool("correct"),
		field.Int64("elapsed_ms"),
		field.Int("attempts_used"),
		field.Int("hints_used"),
		field.Bool("first_attempt"),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("activity_type"),
	}
}
