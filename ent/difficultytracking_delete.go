// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniplay/ent/difficultytracking"
	"github.com/abhisek/cogniplay/ent/predicate"
)

// DifficultyTrackingDelete is the builder for deleting a DifficultyTracking entity.
type DifficultyTrackingDelete struct {
	config
	hooks    []Hook
	mutation *DifficultyTrackingMutation
}

// Where appends a list predicates to the DifficultyTrackingDelete builder.
func (_d *DifficultyTrackingDelete) Where(ps ...predicate.DifficultyTracking) *DifficultyTrackingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DifficultyTrackingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DifficultyTrackingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DifficultyTrackingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(difficultytracking.Table, sqlgraph.NewFieldSpec(difficultytracking.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DifficultyTrackingDeleteOne is the builder for deleting a single DifficultyTracking entity.
type DifficultyTrackingDeleteOne struct {
	_d *DifficultyTrackingDelete
}

// Where appends a list predicates to the DifficultyTrackingDelete builder.
func (_d *DifficultyTrackingDeleteOne) Where(ps ...predicate.DifficultyTracking) *DifficultyTrackingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DifficultyTrackingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{difficultytracking.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DifficultyTrackingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
