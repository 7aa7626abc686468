// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniplay/ent/scenarioevent"
)

// ScenarioEventCreate is the builder for creating a ScenarioEvent entity.
type ScenarioEventCreate struct {
	config
	mutation *ScenarioEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ScenarioEventCreate) SetSequence(v int64) *ScenarioEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ScenarioEventCreate) SetTimestamp(v time.Time) *ScenarioEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableTimestamp(v *time.Time) *ScenarioEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ScenarioEventCreate) SetSessionID(v string) *ScenarioEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ScenarioEventCreate) SetUserID(v string) *ScenarioEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *ScenarioEventCreate) SetScenarioID(v string) *ScenarioEventCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetScenarioType sets the "scenario_type" field.
func (_c *ScenarioEventCreate) SetScenarioType(v string) *ScenarioEventCreate {
	_c.mutation.SetScenarioType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ScenarioEventCreate) SetDifficulty(v int) *ScenarioEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetAverageScore sets the "average_score" field.
func (_c *ScenarioEventCreate) SetAverageScore(v float64) *ScenarioEventCreate {
	_c.mutation.SetAverageScore(v)
	return _c
}

// SetTotalTurns sets the "total_turns" field.
func (_c *ScenarioEventCreate) SetTotalTurns(v int) *ScenarioEventCreate {
	_c.mutation.SetTotalTurns(v)
	return _c
}

// SetNillableTotalTurns sets the "total_turns" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableTotalTurns(v *int) *ScenarioEventCreate {
	if v != nil {
		_c.SetTotalTurns(*v)
	}
	return _c
}

// SetPerformanceGrade sets the "performance_grade" field.
func (_c *ScenarioEventCreate) SetPerformanceGrade(v string) *ScenarioEventCreate {
	_c.mutation.SetPerformanceGrade(v)
	return _c
}

// SetNillablePerformanceGrade sets the "performance_grade" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillablePerformanceGrade(v *string) *ScenarioEventCreate {
	if v != nil {
		_c.SetPerformanceGrade(*v)
	}
	return _c
}

// Mutation returns the ScenarioEventMutation object of the builder.
func (_c *ScenarioEventCreate) Mutation() *ScenarioEventMutation {
	return _c.mutation
}

// Save creates the ScenarioEvent in the database.
func (_c *ScenarioEventCreate) Save(ctx context.Context) (*ScenarioEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScenarioEventCreate) SaveX(ctx context.Context) *ScenarioEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScenarioEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := scenarioevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TotalTurns(); !ok {
		v := scenarioevent.DefaultTotalTurns
		_c.mutation.SetTotalTurns(v)
	}
	if _, ok := _c.mutation.PerformanceGrade(); !ok {
		v := scenarioevent.DefaultPerformanceGrade
		_c.mutation.SetPerformanceGrade(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScenarioEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ScenarioEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScenarioEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ScenarioEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := scenarioevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ScenarioEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := scenarioevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "ScenarioEvent.scenario_id"`)}
	}
	if v, ok := _c.mutation.ScenarioID(); ok {
		if err := scenarioevent.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScenarioType(); !ok {
		return &ValidationError{Name: "scenario_type", err: errors.New(`ent: missing required field "ScenarioEvent.scenario_type"`)}
	}
	if v, ok := _c.mutation.ScenarioType(); ok {
		if err := scenarioevent.ScenarioTypeValidator(v); err != nil {
			return &ValidationError{Name: "scenario_type", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ScenarioEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "ScenarioEvent.average_score"`)}
	}
	if _, ok := _c.mutation.TotalTurns(); !ok {
		return &ValidationError{Name: "total_turns", err: errors.New(`ent: missing required field "ScenarioEvent.total_turns"`)}
	}
	if _, ok := _c.mutation.PerformanceGrade(); !ok {
		return &ValidationError{Name: "performance_grade", err: errors.New(`ent: missing required field "ScenarioEvent.performance_grade"`)}
	}
	return nil
}

func (_c *ScenarioEventCreate) sqlSave(ctx context.Context) (*ScenarioEvent, error) {
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

func (_c *ScenarioEventCreate) createSpec() (*ScenarioEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScenarioEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scenarioevent.Table, sqlgraph.NewFieldSpec(scenarioevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(scenarioevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(scenarioevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(scenarioevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(scenarioevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(scenarioevent.FieldScenarioID, field.TypeString, value)
		_node.ScenarioID = value
	}
	if value, ok := _c.mutation.ScenarioType(); ok {
		_spec.SetField(scenarioevent.FieldScenarioType, field.TypeString, value)
		_node.ScenarioType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(scenarioevent.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.AverageScore(); ok {
		_spec.SetField(scenarioevent.FieldAverageScore, field.TypeFloat64, value)
		_node.AverageScore = value
	}
	if value, ok := _c.mutation.TotalTurns(); ok {
		_spec.SetField(scenarioevent.FieldTotalTurns, field.TypeInt, value)
		_node.TotalTurns = value
	}
	if value, ok := _c.mutation.PerformanceGrade(); ok {
		_spec.SetField(scenarioevent.FieldPerformanceGrade, field.TypeString, value)
		_node.PerformanceGrade = value
	}
	return _node, _spec
}

// ScenarioEventCreateBulk is the builder for creating many ScenarioEvent entities in bulk.
type ScenarioEventCreateBulk struct {
	config
	err      error
	builders []*ScenarioEventCreate
}

// Save creates the ScenarioEvent entities in the database.
func (_c *ScenarioEventCreateBulk) Save(ctx context.Context) ([]*ScenarioEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScenarioEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScenarioEventMutation)
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
func (_c *ScenarioEventCreateBulk) SaveX(ctx context.Context) []*ScenarioEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
