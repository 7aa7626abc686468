// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cogniplay/ent/predicate"
	"github.com/abhisek/cogniplay/ent/scenarioevent"
)

// ScenarioEventDelete is the builder for deleting a ScenarioEvent entity.
type ScenarioEventDelete struct {
	config
	hooks    []Hook
	mutation *ScenarioEventMutation
}

// Where appends a list predicates to the ScenarioEventDelete builder.
func (_d *ScenarioEventDelete) Where(ps ...predicate.ScenarioEvent) *ScenarioEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScenarioEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScenarioEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScenarioEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scenarioevent.Table, sqlgraph.NewFieldSpec(scenarioevent.FieldID, field.TypeInt))
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

// ScenarioEventDeleteOne is the builder for deleting a single ScenarioEvent entity.
type ScenarioEventDeleteOne struct {
	_d *ScenarioEventDelete
}

// Where appends a list predicates to the ScenarioEventDelete builder.
func (_d *ScenarioEventDeleteOne) Where(ps ...predicate.ScenarioEvent) *ScenarioEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScenarioEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scenarioevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScenarioEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
