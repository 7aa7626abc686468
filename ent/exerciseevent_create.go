// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniplay/ent/exerciseevent"
)

// ExerciseEventCreate is the builder for creating a ExerciseEvent entity.
type ExerciseEventCreate struct {
	config
	mutation *ExerciseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ExerciseEventCreate) SetSequence(v int64) *ExerciseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExerciseEventCreate) SetTimestamp(v time.Time) *ExerciseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExerciseEventCreate) SetNillableTimestamp(v *time.Time) *ExerciseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExerciseEventCreate) SetSessionID(v string) *ExerciseEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExerciseEventCreate) SetUserID(v string) *ExerciseEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExerciseID sets the "exercise_id" field.
func (_c *ExerciseEventCreate) SetExerciseID(v string) *ExerciseEventCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ExerciseEventCreate) SetCategory(v string) *ExerciseEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetExerciseType sets the "exercise_type" field.
func (_c *ExerciseEventCreate) SetExerciseType(v string) *ExerciseEventCreate {
	_c.mutation.SetExerciseType(v)
	return _c
}

// SetNillableExerciseType sets the "exercise_type" field if the given value is not nil.
func (_c *ExerciseEventCreate) SetNillableExerciseType(v *string) *ExerciseEventCreate {
	if v != nil {
		_c.SetExerciseType(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ExerciseEventCreate) SetDifficulty(v int) *ExerciseEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ExerciseEventCreate) SetScore(v float64) *ExerciseEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *ExerciseEventCreate) SetAccuracy(v float64) *ExerciseEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *ExerciseEventCreate) SetNillableAccuracy(v *float64) *ExerciseEventCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *ExerciseEventCreate) SetIsCorrect(v bool) *ExerciseEventCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetCompletionTimeSecs sets the "completion_time_secs" field.
func (_c *ExerciseEventCreate) SetCompletionTimeSecs(v int) *ExerciseEventCreate {
	_c.mutation.SetCompletionTimeSecs(v)
	return _c
}

// SetNillableCompletionTimeSecs sets the "completion_time_secs" field if the given value is not nil.
func (_c *ExerciseEventCreate) SetNillableCompletionTimeSecs(v *int) *ExerciseEventCreate {
	if v != nil {
		_c.SetCompletionTimeSecs(*v)
	}
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *ExerciseEventCreate) SetHintsUsed(v int) *ExerciseEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *ExerciseEventCreate) SetNillableHintsUsed(v *int) *ExerciseEventCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// Mutation returns the ExerciseEventMutation object of the builder.
func (_c *ExerciseEventCreate) Mutation() *ExerciseEventMutation {
	return _c.mutation
}

// Save creates the ExerciseEvent in the database.
func (_c *ExerciseEventCreate) Save(ctx context.Context) (*ExerciseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExerciseEventCreate) SaveX(ctx context.Context) *ExerciseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExerciseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := exerciseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ExerciseType(); !ok {
		v := exerciseevent.DefaultExerciseType
		_c.mutation.SetExerciseType(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := exerciseevent.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.CompletionTimeSecs(); !ok {
		v := exerciseevent.DefaultCompletionTimeSecs
		_c.mutation.SetCompletionTimeSecs(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := exerciseevent.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExerciseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExerciseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExerciseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExerciseEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := exerciseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExerciseEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := exerciseevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "ExerciseEvent.exercise_id"`)}
	}
	if v, ok := _c.mutation.ExerciseID(); ok {
		if err := exerciseevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.exercise_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ExerciseEvent.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := exerciseevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseType(); !ok {
		return &ValidationError{Name: "exercise_type", err: errors.New(`ent: missing required field "ExerciseEvent.exercise_type"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ExerciseEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ExerciseEvent.score"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "ExerciseEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "ExerciseEvent.is_correct"`)}
	}
	if _, ok := _c.mutation.CompletionTimeSecs(); !ok {
		return &ValidationError{Name: "completion_time_secs", err: errors.New(`ent: missing required field "ExerciseEvent.completion_time_secs"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "ExerciseEvent.hints_used"`)}
	}
	return nil
}

func (_c *ExerciseEventCreate) sqlSave(ctx context.Context) (*ExerciseEvent, error) {
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

func (_c *ExerciseEventCreate) createSpec() (*ExerciseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExerciseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exerciseevent.Table, sqlgraph.NewFieldSpec(exerciseevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(exerciseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(exerciseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(exerciseevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(exerciseevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(exerciseevent.FieldExerciseID, field.TypeString, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(exerciseevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ExerciseType(); ok {
		_spec.SetField(exerciseevent.FieldExerciseType, field.TypeString, value)
		_node.ExerciseType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(exerciseevent.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(exerciseevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(exerciseevent.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(exerciseevent.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.CompletionTimeSecs(); ok {
		_spec.SetField(exerciseevent.FieldCompletionTimeSecs, field.TypeInt, value)
		_node.CompletionTimeSecs = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(exerciseevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	return _node, _spec
}

// ExerciseEventCreateBulk is the builder for creating many ExerciseEvent entities in bulk.
type ExerciseEventCreateBulk struct {
	config
	err      error
	builders []*ExerciseEventCreate
}

// Save creates the ExerciseEvent entities in the database.
func (_c *ExerciseEventCreateBulk) Save(ctx context.Context) ([]*ExerciseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExerciseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExerciseEventMutation)
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
func (_c *ExerciseEventCreateBulk) SaveX(ctx context.Context) []*ExerciseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
