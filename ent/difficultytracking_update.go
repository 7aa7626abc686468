// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniplay/ent/difficultytracking"
	"github.com/abhisek/cogniplay/ent/predicate"
)

// DifficultyTrackingUpdate is the builder for updating DifficultyTracking entities.
type DifficultyTrackingUpdate struct {
	config
	hooks    []Hook
	mutation *DifficultyTrackingMutation
}

// Where appends a list predicates to the DifficultyTrackingUpdate builder.
func (_u *DifficultyTrackingUpdate) Where(ps ...predicate.DifficultyTracking) *DifficultyTrackingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DifficultyTrackingUpdate) SetUserID(v string) *DifficultyTrackingUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DifficultyTrackingUpdate) SetNillableUserID(v *string) *DifficultyTrackingUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *DifficultyTrackingUpdate) SetLevel(v int) *DifficultyTrackingUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *DifficultyTrackingUpdate) SetNillableLevel(v *int) *DifficultyTrackingUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *DifficultyTrackingUpdate) AddLevel(v int) *DifficultyTrackingUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetConsecutiveSuccesses sets the "consecutive_successes" field.
func (_u *DifficultyTrackingUpdate) SetConsecutiveSuccesses(v int) *DifficultyTrackingUpdate {
	_u.mutation.ResetConsecutiveSuccesses()
	_u.mutation.SetConsecutiveSuccesses(v)
	return _u
}

// SetNillableConsecutiveSuccesses sets the "consecutive_successes" field if the given value is not nil.
func (_u *DifficultyTrackingUpdate) SetNillableConsecutiveSuccesses(v *int) *DifficultyTrackingUpdate {
	if v != nil {
		_u.SetConsecutiveSuccesses(*v)
	}
	return _u
}

// AddConsecutiveSuccesses adds value to the "consecutive_successes" field.
func (_u *DifficultyTrackingUpdate) AddConsecutiveSuccesses(v int) *DifficultyTrackingUpdate {
	_u.mutation.AddConsecutiveSuccesses(v)
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *DifficultyTrackingUpdate) SetConsecutiveFailures(v int) *DifficultyTrackingUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *DifficultyTrackingUpdate) SetNillableConsecutiveFailures(v *int) *DifficultyTrackingUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *DifficultyTrackingUpdate) AddConsecutiveFailures(v int) *DifficultyTrackingUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetLastOutcome sets the "last_outcome" field.
func (_u *DifficultyTrackingUpdate) SetLastOutcome(v string) *DifficultyTrackingUpdate {
	_u.mutation.SetLastOutcome(v)
	return _u
}

// SetNillableLastOutcome sets the "last_outcome" field if the given value is not nil.
func (_u *DifficultyTrackingUpdate) SetNillableLastOutcome(v *string) *DifficultyTrackingUpdate {
	if v != nil {
		_u.SetLastOutcome(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DifficultyTrackingUpdate) SetUpdatedAt(v time.Time) *DifficultyTrackingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DifficultyTrackingMutation object of the builder.
func (_u *DifficultyTrackingUpdate) Mutation() *DifficultyTrackingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DifficultyTrackingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DifficultyTrackingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DifficultyTrackingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DifficultyTrackingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DifficultyTrackingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := difficultytracking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DifficultyTrackingUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := difficultytracking.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DifficultyTracking.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DifficultyTrackingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(difficultytracking.Table, difficultytracking.Columns, sqlgraph.NewFieldSpec(difficultytracking.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(difficultytracking.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(difficultytracking.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(difficultytracking.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveSuccesses(); ok {
		_spec.SetField(difficultytracking.FieldConsecutiveSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveSuccesses(); ok {
		_spec.AddField(difficultytracking.FieldConsecutiveSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(difficultytracking.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(difficultytracking.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastOutcome(); ok {
		_spec.SetField(difficultytracking.FieldLastOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(difficultytracking.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{difficultytracking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DifficultyTrackingUpdateOne is the builder for updating a single DifficultyTracking entity.
type DifficultyTrackingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DifficultyTrackingMutation
}

// SetUserID sets the "user_id" field.
func (_u *DifficultyTrackingUpdateOne) SetUserID(v string) *DifficultyTrackingUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DifficultyTrackingUpdateOne) SetNillableUserID(v *string) *DifficultyTrackingUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *DifficultyTrackingUpdateOne) SetLevel(v int) *DifficultyTrackingUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *DifficultyTrackingUpdateOne) SetNillableLevel(v *int) *DifficultyTrackingUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *DifficultyTrackingUpdateOne) AddLevel(v int) *DifficultyTrackingUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetConsecutiveSuccesses sets the "consecutive_successes" field.
func (_u *DifficultyTrackingUpdateOne) SetConsecutiveSuccesses(v int) *DifficultyTrackingUpdateOne {
	_u.mutation.ResetConsecutiveSuccesses()
	_u.mutation.SetConsecutiveSuccesses(v)
	return _u
}

// SetNillableConsecutiveSuccesses sets the "consecutive_successes" field if the given value is not nil.
func (_u *DifficultyTrackingUpdateOne) SetNillableConsecutiveSuccesses(v *int) *DifficultyTrackingUpdateOne {
	if v != nil {
		_u.SetConsecutiveSuccesses(*v)
	}
	return _u
}

// AddConsecutiveSuccesses adds value to the "consecutive_successes" field.
func (_u *DifficultyTrackingUpdateOne) AddConsecutiveSuccesses(v int) *DifficultyTrackingUpdateOne {
	_u.mutation.AddConsecutiveSuccesses(v)
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *DifficultyTrackingUpdateOne) SetConsecutiveFailures(v int) *DifficultyTrackingUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *DifficultyTrackingUpdateOne) SetNillableConsecutiveFailures(v *int) *DifficultyTrackingUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *DifficultyTrackingUpdateOne) AddConsecutiveFailures(v int) *DifficultyTrackingUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetLastOutcome sets the "last_outcome" field.
func (_u *DifficultyTrackingUpdateOne) SetLastOutcome(v string) *DifficultyTrackingUpdateOne {
	_u.mutation.SetLastOutcome(v)
	return _u
}

// SetNillableLastOutcome sets the "last_outcome" field if the given value is not nil.
func (_u *DifficultyTrackingUpdateOne) SetNillableLastOutcome(v *string) *DifficultyTrackingUpdateOne {
	if v != nil {
		_u.SetLastOutcome(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DifficultyTrackingUpdateOne) SetUpdatedAt(v time.Time) *DifficultyTrackingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DifficultyTrackingMutation object of the builder.
func (_u *DifficultyTrackingUpdateOne) Mutation() *DifficultyTrackingMutation {
	return _u.mutation
}

// Where appends a list predicates to the DifficultyTrackingUpdate builder.
func (_u *DifficultyTrackingUpdateOne) Where(ps ...predicate.DifficultyTracking) *DifficultyTrackingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DifficultyTrackingUpdateOne) Select(field string, fields ...string) *DifficultyTrackingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DifficultyTracking entity.
func (_u *DifficultyTrackingUpdateOne) Save(ctx context.Context) (*DifficultyTracking, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DifficultyTrackingUpdateOne) SaveX(ctx context.Context) *DifficultyTracking {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DifficultyTrackingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DifficultyTrackingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DifficultyTrackingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := difficultytracking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DifficultyTrackingUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := difficultytracking.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DifficultyTracking.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DifficultyTrackingUpdateOne) sqlSave(ctx context.Context) (_node *DifficultyTracking, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(difficultytracking.Table, difficultytracking.Columns, sqlgraph.NewFieldSpec(difficultytracking.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DifficultyTracking.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, difficultytracking.FieldID)
		for _, f := range fields {
			if !difficultytracking.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != difficultytracking.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(difficultytracking.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(difficultytracking.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(difficultytracking.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveSuccesses(); ok {
		_spec.SetField(difficultytracking.FieldConsecutiveSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveSuccesses(); ok {
		_spec.AddField(difficultytracking.FieldConsecutiveSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(difficultytracking.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(difficultytracking.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastOutcome(); ok {
		_spec.SetField(difficultytracking.FieldLastOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(difficultytracking.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DifficultyTracking{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{difficultytracking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
