// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prasetyadi/contracts-tracker/gen/ent/predicate"
	"github.com/prasetyadi/contracts-tracker/gen/ent/terminpayment"
)

// TerminPaymentDelete is the builder for deleting a TerminPayment entity.
type TerminPaymentDelete struct {
	config
	hooks    []Hook
	mutation *TerminPaymentMutation
}

// Where appends a list predicates to the TerminPaymentDelete builder.
func (_d *TerminPaymentDelete) Where(ps ...predicate.TerminPayment) *TerminPaymentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TerminPaymentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TerminPaymentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TerminPaymentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(terminpayment.Table, sqlgraph.NewFieldSpec(terminpayment.FieldID, field.TypeUUID))
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

// TerminPaymentDeleteOne is the builder for deleting a single TerminPayment entity.
type TerminPaymentDeleteOne struct {
	_d *TerminPaymentDelete
}

// Where appends a list predicates to the TerminPaymentDelete builder.
func (_d *TerminPaymentDeleteOne) Where(ps ...predicate.TerminPayment) *TerminPaymentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TerminPaymentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{terminpayment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TerminPaymentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
