// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniplay/ent/exerciseevent"
	"github.com/abhisek/cogniplay/ent/predicate"
)

// ExerciseEventUpdate is the builder for updating ExerciseEvent entities.
type ExerciseEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExerciseEventMutation
}

// Where appends a list predicates to the ExerciseEventUpdate builder.
func (_u *ExerciseEventUpdate) Where(ps ...predicate.ExerciseEvent) *ExerciseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExerciseEventUpdate) SetSessionID(v string) *ExerciseEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExerciseEventUpdate) SetNillableSessionID(v *string) *ExerciseEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExerciseEventUpdate) SetUserID(v string) *ExerciseEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExerciseEventUpdate) SetNillableUserID(v *string) *ExerciseEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *ExerciseEventUpdate) SetExerciseID(v string) *ExerciseEventUpdate {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *ExerciseEventUpdate) SetNillableExerciseID(v *string) *ExerciseEventUpdate {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExerciseEventUpdate) SetCategory(v string) *ExerciseEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExerciseEventUpdate) SetNillableCategory(v *string) *ExerciseEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetExerciseType sets the "exercise_type" field.
func (_u *ExerciseEventUpdate) SetExerciseType(v string) *ExerciseEventUpdate {
	_u.mutation.SetExerciseType(v)
	return _u
}

// SetNillableExerciseType sets the "exercise_type" field if the given value is not nil.
func (_u *ExerciseEventUpdate) SetNillableExerciseType(v *string) *ExerciseEventUpdate {
	if v != nil {
		_u.SetExerciseType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ExerciseEventUpdate) SetDifficulty(v int) *ExerciseEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ExerciseEventUpdate) SetNillableDifficulty(v *int) *ExerciseEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ExerciseEventUpdate) AddDifficulty(v int) *ExerciseEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ExerciseEventUpdate) SetScore(v float64) *ExerciseEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExerciseEventUpdate) SetNillableScore(v *float64) *ExerciseEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExerciseEventUpdate) AddScore(v float64) *ExerciseEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *ExerciseEventUpdate) SetAccuracy(v float64) *ExerciseEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *ExerciseEventUpdate) SetNillableAccuracy(v *float64) *ExerciseEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *ExerciseEventUpdate) AddAccuracy(v float64) *ExerciseEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *ExerciseEventUpdate) SetIsCorrect(v bool) *ExerciseEventUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *ExerciseEventUpdate) SetNillableIsCorrect(v *bool) *ExerciseEventUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetCompletionTimeSecs sets the "completion_time_secs" field.
func (_u *ExerciseEventUpdate) SetCompletionTimeSecs(v int) *ExerciseEventUpdate {
	_u.mutation.ResetCompletionTimeSecs()
	_u.mutation.SetCompletionTimeSecs(v)
	return _u
}

// SetNillableCompletionTimeSecs sets the "completion_time_secs" field if the given value is not nil.
func (_u *ExerciseEventUpdate) SetNillableCompletionTimeSecs(v *int) *ExerciseEventUpdate {
	if v != nil {
		_u.SetCompletionTimeSecs(*v)
	}
	return _u
}

// AddCompletionTimeSecs adds value to the "completion_time_secs" field.
func (_u *ExerciseEventUpdate) AddCompletionTimeSecs(v int) *ExerciseEventUpdate {
	_u.mutation.AddCompletionTimeSecs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *ExerciseEventUpdate) SetHintsUsed(v int) *ExerciseEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *ExerciseEventUpdate) SetNillableHintsUsed(v *int) *ExerciseEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *ExerciseEventUpdate) AddHintsUsed(v int) *ExerciseEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// Mutation returns the ExerciseEventMutation object of the builder.
func (_u *ExerciseEventUpdate) Mutation() *ExerciseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExerciseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExerciseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := exerciseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := exerciseevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := exerciseevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.exercise_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := exerciseevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.category": %w`, err)}
		}
	}
	return nil
}

func (_u *ExerciseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exerciseevent.Table, exerciseevent.Columns, sqlgraph.NewFieldSpec(exerciseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(exerciseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(exerciseevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(exerciseevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(exerciseevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseType(); ok {
		_spec.SetField(exerciseevent.FieldExerciseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(exerciseevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(exerciseevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(exerciseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(exerciseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(exerciseevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(exerciseevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(exerciseevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletionTimeSecs(); ok {
		_spec.SetField(exerciseevent.FieldCompletionTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTimeSecs(); ok {
		_spec.AddField(exerciseevent.FieldCompletionTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(exerciseevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(exerciseevent.FieldHintsUsed, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exerciseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExerciseEventUpdateOne is the builder for updating a single ExerciseEvent entity.
type ExerciseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExerciseEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ExerciseEventUpdateOne) SetSessionID(v string) *ExerciseEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExerciseEventUpdateOne) SetNillableSessionID(v *string) *ExerciseEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExerciseEventUpdateOne) SetUserID(v string) *ExerciseEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExerciseEventUpdateOne) SetNillableUserID(v *string) *ExerciseEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *ExerciseEventUpdateOne) SetExerciseID(v string) *ExerciseEventUpdateOne {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *ExerciseEventUpdateOne) SetNillableExerciseID(v *string) *ExerciseEventUpdateOne {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExerciseEventUpdateOne) SetCategory(v string) *ExerciseEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExerciseEventUpdateOne) SetNillableCategory(v *string) *ExerciseEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetExerciseType sets the "exercise_type" field.
func (_u *ExerciseEventUpdateOne) SetExerciseType(v string) *ExerciseEventUpdateOne {
	_u.mutation.SetExerciseType(v)
	return _u
}

// SetNillableExerciseType sets the "exercise_type" field if the given value is not nil.
func (_u *ExerciseEventUpdateOne) SetNillableExerciseType(v *string) *ExerciseEventUpdateOne {
	if v != nil {
		_u.SetExerciseType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ExerciseEventUpdateOne) SetDifficulty(v int) *ExerciseEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ExerciseEventUpdateOne) SetNillableDifficulty(v *int) *ExerciseEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ExerciseEventUpdateOne) AddDifficulty(v int) *ExerciseEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ExerciseEventUpdateOne) SetScore(v float64) *ExerciseEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExerciseEventUpdateOne) SetNillableScore(v *float64) *ExerciseEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExerciseEventUpdateOne) AddScore(v float64) *ExerciseEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *ExerciseEventUpdateOne) SetAccuracy(v float64) *ExerciseEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *ExerciseEventUpdateOne) SetNillableAccuracy(v *float64) *ExerciseEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *ExerciseEventUpdateOne) AddAccuracy(v float64) *ExerciseEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *ExerciseEventUpdateOne) SetIsCorrect(v bool) *ExerciseEventUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *ExerciseEventUpdateOne) SetNillableIsCorrect(v *bool) *ExerciseEventUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetCompletionTimeSecs sets the "completion_time_secs" field.
func (_u *ExerciseEventUpdateOne) SetCompletionTimeSecs(v int) *ExerciseEventUpdateOne {
	_u.mutation.ResetCompletionTimeSecs()
	_u.mutation.SetCompletionTimeSecs(v)
	return _u
}

// SetNillableCompletionTimeSecs sets the "completion_time_secs" field if the given value is not nil.
func (_u *ExerciseEventUpdateOne) SetNillableCompletionTimeSecs(v *int) *ExerciseEventUpdateOne {
	if v != nil {
		_u.SetCompletionTimeSecs(*v)
	}
	return _u
}

// AddCompletionTimeSecs adds value to the "completion_time_secs" field.
func (_u *ExerciseEventUpdateOne) AddCompletionTimeSecs(v int) *ExerciseEventUpdateOne {
	_u.mutation.AddCompletionTimeSecs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *ExerciseEventUpdateOne) SetHintsUsed(v int) *ExerciseEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *ExerciseEventUpdateOne) SetNillableHintsUsed(v *int) *ExerciseEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *ExerciseEventUpdateOne) AddHintsUsed(v int) *ExerciseEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// Mutation returns the ExerciseEventMutation object of the builder.
func (_u *ExerciseEventUpdateOne) Mutation() *ExerciseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExerciseEventUpdate builder.
func (_u *ExerciseEventUpdateOne) Where(ps ...predicate.ExerciseEvent) *ExerciseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExerciseEventUpdateOne) Select(field string, fields ...string) *ExerciseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExerciseEvent entity.
func (_u *ExerciseEventUpdateOne) Save(ctx context.Context) (*ExerciseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseEventUpdateOne) SaveX(ctx context.Context) *ExerciseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExerciseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := exerciseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := exerciseevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := exerciseevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.exercise_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := exerciseevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExerciseEvent.category": %w`, err)}
		}
	}
	return nil
}

func (_u *ExerciseEventUpdateOne) sqlSave(ctx context.Context) (_node *ExerciseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exerciseevent.Table, exerciseevent.Columns, sqlgraph.NewFieldSpec(exerciseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExerciseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exerciseevent.FieldID)
		for _, f := range fields {
			if !exerciseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exerciseevent.FieldID {
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
		_spec.SetField(exerciseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(exerciseevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(exerciseevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(exerciseevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseType(); ok {
		_spec.SetField(exerciseevent.FieldExerciseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(exerciseevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(exerciseevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(exerciseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(exerciseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(exerciseevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(exerciseevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(exerciseevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletionTimeSecs(); ok {
		_spec.SetField(exerciseevent.FieldCompletionTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTimeSecs(); ok {
		_spec.AddField(exerciseevent.FieldCompletionTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(exerciseevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(exerciseevent.FieldHintsUsed, field.TypeInt, value)
	}
	_node = &ExerciseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exerciseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
