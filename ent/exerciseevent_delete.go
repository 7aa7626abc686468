// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniplay/ent/exerciseevent"
	"github.com/abhisek/cogniplay/ent/predicate"
)

// ExerciseEventDelete is the builder for deleting a ExerciseEvent entity.
type ExerciseEventDelete struct {
	config
	hooks    []Hook
	mutation *ExerciseEventMutation
}

// Where appends a list predicates to the ExerciseEventDelete builder.
func (_d *ExerciseEventDelete) Where(ps ...predicate.ExerciseEvent) *ExerciseEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExerciseEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExerciseEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExerciseEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(exerciseevent.Table, sqlgraph.NewFieldSpec(exerciseevent.FieldID, field.TypeInt))
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

// ExerciseEventDeleteOne is the builder for deleting a single ExerciseEvent entity.
type ExerciseEventDeleteOne struct {
	_d *ExerciseEventDelete
}

// Where appends a list predicates to the ExerciseEventDelete builder.
func (_d *ExerciseEventDeleteOne) Where(ps ...predicate.ExerciseEvent) *ExerciseEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExerciseEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{exerciseevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExerciseEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
