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
	"github.com/abhisek/cogniplay/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionEventUpdate) SetUserID(v string) *SessionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableUserID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *SessionEventUpdate) SetSessionType(v string) *SessionEventUpdate {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionType(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetStartingLevel sets the "starting_level" field.
func (_u *SessionEventUpdate) SetStartingLevel(v int) *SessionEventUpdate {
	_u.mutation.ResetStartingLevel()
	_u.mutation.SetStartingLevel(v)
	return _u
}

// SetNillableStartingLevel sets the "starting_level" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStartingLevel(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetStartingLevel(*v)
	}
	return _u
}

// AddStartingLevel adds value to the "starting_level" field.
func (_u *SessionEventUpdate) AddStartingLevel(v int) *SessionEventUpdate {
	_u.mutation.AddStartingLevel(v)
	return _u
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (_u *SessionEventUpdate) SetExercisesCompleted(v int) *SessionEventUpdate {
	_u.mutation.ResetExercisesCompleted()
	_u.mutation.SetExercisesCompleted(v)
	return _u
}

// SetNillableExercisesCompleted sets the "exercises_completed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableExercisesCompleted(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetExercisesCompleted(*v)
	}
	return _u
}

// AddExercisesCompleted adds value to the "exercises_completed" field.
func (_u *SessionEventUpdate) AddExercisesCompleted(v int) *SessionEventUpdate {
	_u.mutation.AddExercisesCompleted(v)
	return _u
}

// SetScenariosCompleted sets the "scenarios_completed" field.
func (_u *SessionEventUpdate) SetScenariosCompleted(v int) *SessionEventUpdate {
	_u.mutation.ResetScenariosCompleted()
	_u.mutation.SetScenariosCompleted(v)
	return _u
}

// SetNillableScenariosCompleted sets the "scenarios_completed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableScenariosCompleted(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetScenariosCompleted(*v)
	}
	return _u
}

// AddScenariosCompleted adds value to the "scenarios_completed" field.
func (_u *SessionEventUpdate) AddScenariosCompleted(v int) *SessionEventUpdate {
	_u.mutation.AddScenariosCompleted(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *SessionEventUpdate) SetAverageScore(v float64) *SessionEventUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAverageScore(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *SessionEventUpdate) AddAverageScore(v float64) *SessionEventUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// ClearAverageScore clears the value of the "average_score" field.
func (_u *SessionEventUpdate) ClearAverageScore() *SessionEventUpdate {
	_u.mutation.ClearAverageScore()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *SessionEventUpdate) SetRecommendation(v string) *SessionEventUpdate {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableRecommendation(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(sessionevent.FieldSessionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartingLevel(); ok {
		_spec.SetField(sessionevent.FieldStartingLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartingLevel(); ok {
		_spec.AddField(sessionevent.FieldStartingLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExercisesCompleted(); ok {
		_spec.SetField(sessionevent.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesCompleted(); ok {
		_spec.AddField(sessionevent.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScenariosCompleted(); ok {
		_spec.SetField(sessionevent.FieldScenariosCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenariosCompleted(); ok {
		_spec.AddField(sessionevent.FieldScenariosCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(sessionevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(sessionevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if _u.mutation.AverageScoreCleared() {
		_spec.ClearField(sessionevent.FieldAverageScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(sessionevent.FieldRecommendation, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionEventUpdateOne) SetUserID(v string) *SessionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableUserID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *SessionEventUpdateOne) SetSessionType(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionType(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetStartingLevel sets the "starting_level" field.
func (_u *SessionEventUpdateOne) SetStartingLevel(v int) *SessionEventUpdateOne {
	_u.mutation.ResetStartingLevel()
	_u.mutation.SetStartingLevel(v)
	return _u
}

// SetNillableStartingLevel sets the "starting_level" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStartingLevel(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStartingLevel(*v)
	}
	return _u
}

// AddStartingLevel adds value to the "starting_level" field.
func (_u *SessionEventUpdateOne) AddStartingLevel(v int) *SessionEventUpdateOne {
	_u.mutation.AddStartingLevel(v)
	return _u
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (_u *SessionEventUpdateOne) SetExercisesCompleted(v int) *SessionEventUpdateOne {
	_u.mutation.ResetExercisesCompleted()
	_u.mutation.SetExercisesCompleted(v)
	return _u
}

// SetNillableExercisesCompleted sets the "exercises_completed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableExercisesCompleted(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetExercisesCompleted(*v)
	}
	return _u
}

// AddExercisesCompleted adds value to the "exercises_completed" field.
func (_u *SessionEventUpdateOne) AddExercisesCompleted(v int) *SessionEventUpdateOne {
	_u.mutation.AddExercisesCompleted(v)
	return _u
}

// SetScenariosCompleted sets the "scenarios_completed" field.
func (_u *SessionEventUpdateOne) SetScenariosCompleted(v int) *SessionEventUpdateOne {
	_u.mutation.ResetScenariosCompleted()
	_u.mutation.SetScenariosCompleted(v)
	return _u
}

// SetNillableScenariosCompleted sets the "scenarios_completed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableScenariosCompleted(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetScenariosCompleted(*v)
	}
	return _u
}

// AddScenariosCompleted adds value to the "scenarios_completed" field.
func (_u *SessionEventUpdateOne) AddScenariosCompleted(v int) *SessionEventUpdateOne {
	_u.mutation.AddScenariosCompleted(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *SessionEventUpdateOne) SetAverageScore(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAverageScore(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *SessionEventUpdateOne) AddAverageScore(v float64) *SessionEventUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// ClearAverageScore clears the value of the "average_score" field.
func (_u *SessionEventUpdateOne) ClearAverageScore() *SessionEventUpdateOne {
	_u.mutation.ClearAverageScore()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *SessionEventUpdateOne) SetRecommendation(v string) *SessionEventUpdateOne {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableRecommendation(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(sessionevent.FieldSessionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartingLevel(); ok {
		_spec.SetField(sessionevent.FieldStartingLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartingLevel(); ok {
		_spec.AddField(sessionevent.FieldStartingLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExercisesCompleted(); ok {
		_spec.SetField(sessionevent.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesCompleted(); ok {
		_spec.AddField(sessionevent.FieldExercisesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScenariosCompleted(); ok {
		_spec.SetField(sessionevent.FieldScenariosCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenariosCompleted(); ok {
		_spec.AddField(sessionevent.FieldScenariosCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(sessionevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(sessionevent.FieldAverageScore, field.TypeFloat64, value)
	}
	if _u.mutation.AverageScoreCleared() {
		_spec.ClearField(sessionevent.FieldAverageScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(sessionevent.FieldRecommendation, field.TypeString, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
