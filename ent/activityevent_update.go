// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meera/lingua/ent/activityevent"
	"github.com/meera/lingua/ent/predicate"
)

// ActivityEventUpdate is the builder for updating ActivityEvent entities.
type ActivityEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEventMutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdate) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ActivityEventUpdate) SetRunID(v string) *ActivityEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableRunID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivityEventUpdate) SetActivityType(v string) *ActivityEventUpdate {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableActivityType(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetBasePoints sets the "base_points" field.
func (_u *ActivityEventUpdate) SetBasePoints(v int) *ActivityEventUpdate {
	_u.mutation.ResetBasePoints()
	_u.mutation.SetBasePoints(v)
	return _u
}

// SetNillableBasePoints sets the "base_points" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableBasePoints(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetBasePoints(*v)
	}
	return _u
}

// AddBasePoints adds value to the "base_points" field.
func (_u *ActivityEventUpdate) AddBasePoints(v int) *ActivityEventUpdate {
	_u.mutation.AddBasePoints(v)
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *ActivityEventUpdate) SetPointsAwarded(v int) *ActivityEventUpdate {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillablePointsAwarded(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *ActivityEventUpdate) AddPointsAwarded(v int) *ActivityEventUpdate {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ActivityEventUpdate) SetQuestionID(v string) *ActivityEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableQuestionID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *ActivityEventUpdate) SetVariant(v string) *ActivityEventUpdate {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableVariant(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ActivityEventUpdate) SetCorrect(v bool) *ActivityEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableCorrect(v *bool) *ActivityEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ActivityEventUpdate) SetElapsedMs(v int64) *ActivityEventUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableElapsedMs(v *int64) *ActivityEventUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ActivityEventUpdate) AddElapsedMs(v int64) *ActivityEventUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetAttemptsUsed sets the "attempts_used" field.
func (_u *ActivityEventUpdate) SetAttemptsUsed(v int) *ActivityEventUpdate {
	_u.mutation.ResetAttemptsUsed()
	_u.mutation.SetAttemptsUsed(v)
	return _u
}

// SetNillableAttemptsUsed sets the "attempts_used" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableAttemptsUsed(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetAttemptsUsed(*v)
	}
	return _u
}

// AddAttemptsUsed adds value to the "attempts_used" field.
func (_u *ActivityEventUpdate) AddAttemptsUsed(v int) *ActivityEventUpdate {
	_u.mutation.AddAttemptsUsed(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *ActivityEventUpdate) SetHintsUsed(v int) *ActivityEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableHintsUsed(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *ActivityEventUpdate) AddHintsUsed(v int) *ActivityEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetFirstAttempt sets the "first_attempt" field.
func (_u *ActivityEventUpdate) SetFirstAttempt(v bool) *ActivityEventUpdate {
	_u.mutation.SetFirstAttempt(v)
	return _u
}

// SetNillableFirstAttempt sets the "first_attempt" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableFirstAttempt(v *bool) *ActivityEventUpdate {
	if v != nil {
		_u.SetFirstAttempt(*v)
	}
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdate) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := activityevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activityevent.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.activity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := activityevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Variant(); ok {
		if err := activityevent.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.variant": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(activityevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activityevent.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BasePoints(); ok {
		_spec.SetField(activityevent.FieldBasePoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBasePoints(); ok {
		_spec.AddField(activityevent.FieldBasePoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(activityevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(activityevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(activityevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(activityevent.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(activityevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(activityevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(activityevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AttemptsUsed(); ok {
		_spec.SetField(activityevent.FieldAttemptsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsUsed(); ok {
		_spec.AddField(activityevent.FieldAttemptsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(activityevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(activityevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstAttempt(); ok {
		_spec.SetField(activityevent.FieldFirstAttempt, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityEventUpdateOne is the builder for updating a single ActivityEvent entity.
type ActivityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *ActivityEventUpdateOne) SetRunID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableRunID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivityEventUpdateOne) SetActivityType(v string) *ActivityEventUpdateOne {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableActivityType(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetBasePoints sets the "base_points" field.
func (_u *ActivityEventUpdateOne) SetBasePoints(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetBasePoints()
	_u.mutation.SetBasePoints(v)
	return _u
}

// SetNillableBasePoints sets the "base_points" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableBasePoints(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetBasePoints(*v)
	}
	return _u
}

// AddBasePoints adds value to the "base_points" field.
func (_u *ActivityEventUpdateOne) AddBasePoints(v int) *ActivityEventUpdateOne {
	_u.mutation.AddBasePoints(v)
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *ActivityEventUpdateOne) SetPointsAwarded(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillablePointsAwarded(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *ActivityEventUpdateOne) AddPointsAwarded(v int) *ActivityEventUpdateOne {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ActivityEventUpdateOne) SetQuestionID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableQuestionID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *ActivityEventUpdateOne) SetVariant(v string) *ActivityEventUpdateOne {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableVariant(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ActivityEventUpdateOne) SetCorrect(v bool) *ActivityEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableCorrect(v *bool) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ActivityEventUpdateOne) SetElapsedMs(v int64) *ActivityEventUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableElapsedMs(v *int64) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ActivityEventUpdateOne) AddElapsedMs(v int64) *ActivityEventUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetAttemptsUsed sets the "attempts_used" field.
func (_u *ActivityEventUpdateOne) SetAttemptsUsed(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetAttemptsUsed()
	_u.mutation.SetAttemptsUsed(v)
	return _u
}

// SetNillableAttemptsUsed sets the "attempts_used" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableAttemptsUsed(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetAttemptsUsed(*v)
	}
	return _u
}

// AddAttemptsUsed adds value to the "attempts_used" field.
func (_u *ActivityEventUpdateOne) AddAttemptsUsed(v int) *ActivityEventUpdateOne {
	_u.mutation.AddAttemptsUsed(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *ActivityEventUpdateOne) SetHintsUsed(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableHintsUsed(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *ActivityEventUpdateOne) AddHintsUsed(v int) *ActivityEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetFirstAttempt sets the "first_attempt" field.
func (_u *ActivityEventUpdateOne) SetFirstAttempt(v bool) *ActivityEventUpdateOne {
	_u.mutation.SetFirstAttempt(v)
	return _u
}

// SetNillableFirstAttempt sets the "first_attempt" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableFirstAttempt(v *bool) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetFirstAttempt(*v)
	}
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdateOne) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdateOne) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityEventUpdateOne) Select(field string, fields ...string) *ActivityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityEvent entity.
func (_u *ActivityEventUpdateOne) Save(ctx context.Context) (*ActivityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) SaveX(ctx context.Context) *ActivityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := activityevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activityevent.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.activity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := activityevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Variant(); ok {
		if err := activityevent.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.variant": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityevent.FieldID)
		for _, f := range fields {
			if !activityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityevent.FieldID {
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
		_spec.SetField(activityevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activityevent.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BasePoints(); ok {
		_spec.SetField(activityevent.FieldBasePoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBasePoints(); ok {
		_spec.AddField(activityevent.FieldBasePoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(activityevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(activityevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(activityevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(activityevent.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(activityevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(activityevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(activityevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AttemptsUsed(); ok {
		_spec.SetField(activityevent.FieldAttemptsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsUsed(); ok {
		_spec.AddField(activityevent.FieldAttemptsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(activityevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(activityevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstAttempt(); ok {
		_spec.SetField(activityevent.FieldFirstAttempt, field.TypeBool, value)
	}
	_node = &ActivityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
