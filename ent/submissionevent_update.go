// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meera/lingua/ent/predicate"
	"github.com/meera/lingua/ent/submissionevent"
)

// SubmissionEventUpdate is the builder for updating SubmissionEvent entities.
type SubmissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdate) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *SubmissionEventUpdate) SetRunID(v string) *SubmissionEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableRunID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SubmissionEventUpdate) SetQuestionID(v string) *SubmissionEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableQuestionID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *SubmissionEventUpdate) SetVariant(v string) *SubmissionEventUpdate {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableVariant(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SubmissionEventUpdate) SetCorrect(v bool) *SubmissionEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableCorrect(v *bool) *SubmissionEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMatchRatio sets the "match_ratio" field.
func (_u *SubmissionEventUpdate) SetMatchRatio(v float64) *SubmissionEventUpdate {
	_u.mutation.ResetMatchRatio()
	_u.mutation.SetMatchRatio(v)
	return _u
}

// SetNillableMatchRatio sets the "match_ratio" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableMatchRatio(v *float64) *SubmissionEventUpdate {
	if v != nil {
		_u.SetMatchRatio(*v)
	}
	return _u
}

// AddMatchRatio adds value to the "match_ratio" field.
func (_u *SubmissionEventUpdate) AddMatchRatio(v float64) *SubmissionEventUpdate {
	_u.mutation.AddMatchRatio(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SubmissionEventUpdate) SetScore(v int) *SubmissionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableScore(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SubmissionEventUpdate) AddScore(v int) *SubmissionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *SubmissionEventUpdate) SetElapsedMs(v int64) *SubmissionEventUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableElapsedMs(v *int64) *SubmissionEventUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *SubmissionEventUpdate) AddElapsedMs(v int64) *SubmissionEventUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetAttemptsUsed sets the "attempts_used" field.
func (_u *SubmissionEventUpdate) SetAttemptsUsed(v int) *SubmissionEventUpdate {
	_u.mutation.ResetAttemptsUsed()
	_u.mutation.SetAttemptsUsed(v)
	return _u
}

// SetNillableAttemptsUsed sets the "attempts_used" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableAttemptsUsed(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetAttemptsUsed(*v)
	}
	return _u
}

// AddAttemptsUsed adds value to the "attempts_used" field.
func (_u *SubmissionEventUpdate) AddAttemptsUsed(v int) *SubmissionEventUpdate {
	_u.mutation.AddAttemptsUsed(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *SubmissionEventUpdate) SetHintsUsed(v int) *SubmissionEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableHintsUsed(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *SubmissionEventUpdate) AddHintsUsed(v int) *SubmissionEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *SubmissionEventUpdate) SetTimedOut(v bool) *SubmissionEventUpdate {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableTimedOut(v *bool) *SubmissionEventUpdate {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdate) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := submissionevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := submissionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Variant(); ok {
		if err := submissionevent.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.variant": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(submissionevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(submissionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(submissionevent.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(submissionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchRatio(); ok {
		_spec.SetField(submissionevent.FieldMatchRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchRatio(); ok {
		_spec.AddField(submissionevent.FieldMatchRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(submissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(submissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(submissionevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(submissionevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AttemptsUsed(); ok {
		_spec.SetField(submissionevent.FieldAttemptsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsUsed(); ok {
		_spec.AddField(submissionevent.FieldAttemptsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(submissionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(submissionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(submissionevent.FieldTimedOut, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionEventUpdateOne is the builder for updating a single SubmissionEvent entity.
type SubmissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *SubmissionEventUpdateOne) SetRunID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableRunID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SubmissionEventUpdateOne) SetQuestionID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableQuestionID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *SubmissionEventUpdateOne) SetVariant(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableVariant(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SubmissionEventUpdateOne) SetCorrect(v bool) *SubmissionEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableCorrect(v *bool) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMatchRatio sets the "match_ratio" field.
func (_u *SubmissionEventUpdateOne) SetMatchRatio(v float64) *SubmissionEventUpdateOne {
	_u.mutation.ResetMatchRatio()
	_u.mutation.SetMatchRatio(v)
	return _u
}

// SetNillableMatchRatio sets the "match_ratio" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableMatchRatio(v *float64) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetMatchRatio(*v)
	}
	return _u
}

// AddMatchRatio adds value to the "match_ratio" field.
func (_u *SubmissionEventUpdateOne) AddMatchRatio(v float64) *SubmissionEventUpdateOne {
	_u.mutation.AddMatchRatio(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SubmissionEventUpdateOne) SetScore(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableScore(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SubmissionEventUpdateOne) AddScore(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *SubmissionEventUpdateOne) SetElapsedMs(v int64) *SubmissionEventUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableElapsedMs(v *int64) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *SubmissionEventUpdateOne) AddElapsedMs(v int64) *SubmissionEventUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetAttemptsUsed sets the "attempts_used" field.
func (_u *SubmissionEventUpdateOne) SetAttemptsUsed(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetAttemptsUsed()
	_u.mutation.SetAttemptsUsed(v)
	return _u
}

// SetNillableAttemptsUsed sets the "attempts_used" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableAttemptsUsed(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetAttemptsUsed(*v)
	}
	return _u
}

// AddAttemptsUsed adds value to the "attempts_used" field.
func (_u *SubmissionEventUpdateOne) AddAttemptsUsed(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddAttemptsUsed(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *SubmissionEventUpdateOne) SetHintsUsed(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableHintsUsed(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *SubmissionEventUpdateOne) AddHintsUsed(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *SubmissionEventUpdateOne) SetTimedOut(v bool) *SubmissionEventUpdateOne {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableTimedOut(v *bool) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdateOne) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdateOne) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionEventUpdateOne) Select(field string, fields ...string) *SubmissionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmissionEvent entity.
func (_u *SubmissionEventUpdateOne) Save(ctx context.Context) (*SubmissionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) SaveX(ctx context.Context) *SubmissionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := submissionevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := submissionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Variant(); ok {
		if err := submissionevent.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.variant": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionevent.FieldID)
		for _, f := range fields {
			if !submissionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(submissionevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(submissionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(submissionevent.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(submissionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchRatio(); ok {
		_spec.SetField(submissionevent.FieldMatchRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchRatio(); ok {
		_spec.AddField(submissionevent.FieldMatchRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(submissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(submissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(submissionevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(submissionevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AttemptsUsed(); ok {
		_spec.SetField(submissionevent.FieldAttemptsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsUsed(); ok {
		_spec.AddField(submissionevent.FieldAttemptsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(submissionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(submissionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(submissionevent.FieldTimedOut, field.TypeBool, value)
	}
	_node = &SubmissionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
