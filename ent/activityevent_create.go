// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meera/lingua/ent/activityevent"
)

// ActivityEventCreate is the builder for creating a ActivityEvent entity.
type ActivityEventCreate struct {
	config
	mutation *ActivityEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ActivityEventCreate) SetSequence(v int64) *ActivityEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ActivityEventCreate) SetTimestamp(v time.Time) *ActivityEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ActivityEventCreate) SetNillableTimestamp(v *time.Time) *ActivityEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ActivityEventCreate) SetRunID(v string) *ActivityEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetActivityType sets the "activity_type" field.
func (_c *ActivityEventCreate) SetActivityType(v string) *ActivityEventCreate {
	_c.mutation.SetActivityType(v)
	return _c
}

// SetBasePoints sets the "base_points" field.
func (_c *ActivityEventCreate) SetBasePoints(v int) *ActivityEventCreate {
	_c.mutation.SetBasePoints(v)
	return _c
}

// SetPointsAwarded sets the "points_awarded" field.
func (_c *ActivityEventCreate) SetPointsAwarded(v int) *ActivityEventCreate {
	_c.mutation.SetPointsAwarded(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ActivityEventCreate) SetQuestionID(v string) *ActivityEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetVariant sets the "variant" field.
func (_c *ActivityEventCreate) SetVariant(v string) *ActivityEventCreate {
	_c.mutation.SetVariant(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ActivityEventCreate) SetCorrect(v bool) *ActivityEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *ActivityEventCreate) SetElapsedMs(v int64) *ActivityEventCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// SetAttemptsUsed sets the "attempts_used" field.
func (_c *ActivityEventCreate) SetAttemptsUsed(v int) *ActivityEventCreate {
	_c.mutation.SetAttemptsUsed(v)
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *ActivityEventCreate) SetHintsUsed(v int) *ActivityEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetFirstAttempt sets the "first_attempt" field.
func (_c *ActivityEventCreate) SetFirstAttempt(v bool) *ActivityEventCreate {
	_c.mutation.SetFirstAttempt(v)
	return _c
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_c *ActivityEventCreate) Mutation() *ActivityEventMutation {
	return _c.mutation
}

// Save creates the ActivityEvent in the database.
func (_c *ActivityEventCreate) Save(ctx context.Context) (*ActivityEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityEventCreate) SaveX(ctx context.Context) *ActivityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := activityevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ActivityEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ActivityEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ActivityEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := activityevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityType(); !ok {
		return &ValidationError{Name: "activity_type", err: errors.New(`ent: missing required field "ActivityEvent.activity_type"`)}
	}
	if v, ok := _c.mutation.ActivityType(); ok {
		if err := activityevent.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.activity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BasePoints(); !ok {
		return &ValidationError{Name: "base_points", err: errors.New(`ent: missing required field "ActivityEvent.base_points"`)}
	}
	if _, ok := _c.mutation.PointsAwarded(); !ok {
		return &ValidationError{Name: "points_awarded", err: errors.New(`ent: missing required field "ActivityEvent.points_awarded"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ActivityEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := activityevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Variant(); !ok {
		return &ValidationError{Name: "variant", err: errors.New(`ent: missing required field "ActivityEvent.variant"`)}
	}
	if v, ok := _c.mutation.Variant(); ok {
		if err := activityevent.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.variant": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ActivityEvent.correct"`)}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "ActivityEvent.elapsed_ms"`)}
	}
	if _, ok := _c.mutation.AttemptsUsed(); !ok {
		return &ValidationError{Name: "attempts_used", err: errors.New(`ent: missing required field "ActivityEvent.attempts_used"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "ActivityEvent.hints_used"`)}
	}
	if _, ok := _c.mutation.FirstAttempt(); !ok {
		return &ValidationError{Name: "first_attempt", err: errors.New(`ent: missing required field "ActivityEvent.first_attempt"`)}
	}
	return nil
}

func (_c *ActivityEventCreate) sqlSave(ctx context.Context) (*ActivityEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActivityEventCreate) createSpec() (*ActivityEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityevent.Table, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(activityevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(activityevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(activityevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ActivityType(); ok {
		_spec.SetField(activityevent.FieldActivityType, field.TypeString, value)
		_node.ActivityType = value
	}
	if value, ok := _c.mutation.BasePoints(); ok {
		_spec.SetField(activityevent.FieldBasePoints, field.TypeInt, value)
		_node.BasePoints = value
	}
	if value, ok := _c.mutation.PointsAwarded(); ok {
		_spec.SetField(activityevent.FieldPointsAwarded, field.TypeInt, value)
		_node.PointsAwarded = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(activityevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Variant(); ok {
		_spec.SetField(activityevent.FieldVariant, field.TypeString, value)
		_node.Variant = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(activityevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(activityevent.FieldElapsedMs, field.TypeInt64, value)
		_node.ElapsedMs = value
	}
	if value, ok := _c.mutation.AttemptsUsed(); ok {
		_spec.SetField(activityevent.FieldAttemptsUsed, field.TypeInt, value)
		_node.AttemptsUsed = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(activityevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.FirstAttempt(); ok {
		_spec.SetField(activityevent.FieldFirstAttempt, field.TypeBool, value)
		_node.FirstAttempt = value
	}
	return _node, _spec
}

// ActivityEventCreateBulk is the builder for creating many ActivityEvent entities in bulk.
type ActivityEventCreateBulk struct {
	config
	err      error
	builders []*ActivityEventCreate
}

// Save creates the ActivityEvent entities in the database.
func (_c *ActivityEventCreateBulk) Save(ctx context.Context) ([]*ActivityEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActivityEventCreateBulk) SaveX(ctx context.Context) []*ActivityEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
