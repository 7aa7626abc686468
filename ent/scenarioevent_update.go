// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniplay/ent/predicate"
	"github.com/abhisek/cogniplay/ent/scenarioevent"
)

// ScenarioEventUpdate is the builder for updating ScenarioEvent entities.
type ScenarioEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScenarioEventMutation
}

// Where appends a list predicates to the ScenarioEventUpdate builder.
func (_u *ScenarioEventUpdate) Where(ps ...predicate.ScenarioEvent) *ScenarioEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ScenarioEventUpdate) SetSessionID(v string) *ScenarioEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableSessionID(v *string) *ScenarioEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ScenarioEventUpdate) SetUserID(v string) *ScenarioEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableUserID(v *string) *ScenarioEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *ScenarioEventUpdate) SetScenarioID(v string) *ScenarioEventUpdate {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableScenarioID(v *string) *ScenarioEventUpdate {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetScenarioType sets the "scenario_type" field.
func (_u *ScenarioEventUpdate) SetScenarioType(v string) *ScenarioEventUpdate {
	_u.mutation.SetScenarioType(v)
	return _u
}

// SetNillableScenarioType sets the "scenario_type" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableScenarioType(v *string) *ScenarioEventUpdate {
	if v != nil {
		_u.SetScenarioType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ScenarioEventUpdate) SetDifficulty(v int) *ScenarioEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableDifficulty(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ScenarioEventUpdate) AddDifficulty(v int) *ScenarioEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *ScenarioEventUpdate) SetAverageScore(v float64) *ScenarioEventUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableAverageScore(v *float64) *ScenarioEventUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *ScenarioEventUpdate) AddAverageScore(v float64) *ScenarioEventUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetTotalTurns sets the "total_turns" field.
func (_u *ScenarioEventUpdate) SetTotalTurns(v int) *ScenarioEventUpdate {
	_u.mutation.ResetTotalTurns()
	_u.mutation.SetTotalTurns(v)
	return _u
}

// SetNillableTotalTurns sets the "total_turns" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableTotalTurns(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetTotalTurns(*v)
	}
	return _u
}

// AddTotalTurns adds value to the "total_turns" field.
func (_u *ScenarioEventUpdate) AddTotalTurns(v int) *ScenarioEventUpdate {
	_u.mutation.AddTotalTurns(v)
	return _u
}

// SetPerformanceGrade sets the "performance_grade" field.
func (_u *ScenarioEventUpdate) SetPerformanceGrade(v string) *ScenarioEventUpdate {
	_u.mutation.SetPerformanceGrade(v)
	return _u
}

// SetNillablePerformanceGrade sets the "performance_grade" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillablePerformanceGrade(v *string) *ScenarioEventUpdate {
	if v != nil {
		_u.SetPerformanceGrade(*v)
	}
	return _u
}

// Mutation returns the ScenarioEventMutation object of the builder.
func (_u *ScenarioEventUpdate) Mutation() *ScenarioEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScenarioEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScenarioEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scenarioevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := scenarioevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioID(); ok {
		if err := scenarioevent.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioType(); ok {
		if err := scenarioevent.ScenarioTypeValidator(v); err != nil {
			return &ValidationError{Name: "scenario_type", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenarioevent.Table, scenarioevent.Columns, sqlgraph.NewFieldSpec(scenarioevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scenarioevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(scenarioevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(scenarioevent.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioType(); ok {
		_spec.SetField(scenarioevent.FieldScenarioType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(scenarioevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(scenarioevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(scenarioevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(scenarioevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalTurns(); ok {
		_spec.SetField(scenarioevent.FieldTotalTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTurns(); ok {
		_spec.AddField(scenarioevent.FieldTotalTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PerformanceGrade(); ok {
		_spec.SetField(scenarioevent.FieldPerformanceGrade, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenarioevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScenarioEventUpdateOne is the builder for updating a single ScenarioEvent entity.
type ScenarioEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScenarioEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ScenarioEventUpdateOne) SetSessionID(v string) *ScenarioEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableSessionID(v *string) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ScenarioEventUpdateOne) SetUserID(v string) *ScenarioEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableUserID(v *string) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *ScenarioEventUpdateOne) SetScenarioID(v string) *ScenarioEventUpdateOne {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableScenarioID(v *string) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetScenarioType sets the "scenario_type" field.
func (_u *ScenarioEventUpdateOne) SetScenarioType(v string) *ScenarioEventUpdateOne {
	_u.mutation.SetScenarioType(v)
	return _u
}

// SetNillableScenarioType sets the "scenario_type" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableScenarioType(v *string) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetScenarioType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ScenarioEventUpdateOne) SetDifficulty(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableDifficulty(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ScenarioEventUpdateOne) AddDifficulty(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *ScenarioEventUpdateOne) SetAverageScore(v float64) *ScenarioEventUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableAverageScore(v *float64) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *ScenarioEventUpdateOne) AddAverageScore(v float64) *ScenarioEventUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetTotalTurns sets the "total_turns" field.
func (_u *ScenarioEventUpdateOne) SetTotalTurns(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetTotalTurns()
	_u.mutation.SetTotalTurns(v)
	return _u
}

// SetNillableTotalTurns sets the "total_turns" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableTotalTurns(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetTotalTurns(*v)
	}
	return _u
}

// AddTotalTurns adds value to the "total_turns" field.
func (_u *ScenarioEventUpdateOne) AddTotalTurns(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddTotalTurns(v)
	return _u
}

// SetPerformanceGrade sets the "performance_grade" field.
func (_u *ScenarioEventUpdateOne) SetPerformanceGrade(v string) *ScenarioEventUpdateOne {
	_u.mutation.SetPerformanceGrade(v)
	return _u
}

// SetNillablePerformanceGrade sets the "performance_grade" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillablePerformanceGrade(v *string) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetPerformanceGrade(*v)
	}
	return _u
}

// Mutation returns the ScenarioEventMutation object of the builder.
func (_u *ScenarioEventUpdateOne) Mutation() *ScenarioEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScenarioEventUpdate builder.
func (_u *ScenarioEventUpdateOne) Where(ps ...predicate.ScenarioEvent) *ScenarioEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScenarioEventUpdateOne) Select(field string, fields ...string) *ScenarioEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScenarioEvent entity.
func (_u *ScenarioEventUpdateOne) Save(ctx context.Context) (*ScenarioEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioEventUpdateOne) SaveX(ctx context.Context) *ScenarioEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScenarioEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scenarioevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := scenarioevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioID(); ok {
		if err := scenarioevent.ScenarioIDValidator(v); err != nil {
			return &ValidationError{Name: "scenario_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioType(); ok {
		if err := scenarioevent.ScenarioTypeValidator(v); err != nil {
			return &ValidationError{Name: "scenario_type", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioEventUpdateOne) sqlSave(ctx context.Context) (_node *ScenarioEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenarioevent.Table, scenarioevent.Columns, sqlgraph.NewFieldSpec(scenarioevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScenarioEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scenarioevent.FieldID)
		for _, f := range fields {
			if !scenarioevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scenarioevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scenarioevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(scenarioevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(scenarioevent.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioType(); ok {
		_spec.SetField(scenarioevent.FieldScenarioType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(scenarioevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(scenarioevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(scenarioevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(scenarioevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalTurns(); ok {
		_spec.SetField(scenarioevent.FieldTotalTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTurns(); ok {
		_spec.AddField(scenarioevent.FieldTotalTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PerformanceGrade(); ok {
		_spec.SetField(scenarioevent.FieldPerformanceGrade, field.TypeString, value)
	}
	_node = &ScenarioEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenarioevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
