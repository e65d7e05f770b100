// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/gen/ent/contract"
	"github.com/prasetyadi/contracts-tracker/gen/ent/terminpayment"
)

// TerminPaymentCreate is the builder for creating a TerminPayment entity.
type TerminPaymentCreate struct {
	config
	mutation *TerminPaymentMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *TerminPaymentCreate) SetContractID(v uuid.UUID) *TerminPaymentCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *TerminPaymentCreate) SetSequence(v int) *TerminPaymentCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetPeriodLabel sets the "period_label" field.
func (_c *TerminPaymentCreate) SetPeriodLabel(v string) *TerminPaymentCreate {
	_c.mutation.SetPeriodLabel(v)
	return _c
}

// SetNillablePeriodLabel sets the "period_label" field if the given value is not nil.
func (_c *TerminPaymentCreate) SetNillablePeriodLabel(v *string) *TerminPaymentCreate {
	if v != nil {
		_c.SetPeriodLabel(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *TerminPaymentCreate) SetAmount(v string) *TerminPaymentCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetSourceText sets the "source_text" field.
func (_c *TerminPaymentCreate) SetSourceText(v string) *TerminPaymentCreate {
	_c.mutation.SetSourceText(v)
	return _c
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_c *TerminPaymentCreate) SetNillableSourceText(v *string) *TerminPaymentCreate {
	if v != nil {
		_c.SetSourceText(*v)
	}
	return _c
}

// SetSynthesized sets the "synthesized" field.
func (_c *TerminPaymentCreate) SetSynthesized(v bool) *TerminPaymentCreate {
	_c.mutation.SetSynthesized(v)
	return _c
}

// SetNillableSynthesized sets the "synthesized" field if the given value is not nil.
func (_c *TerminPaymentCreate) SetNillableSynthesized(v *bool) *TerminPaymentCreate {
	if v != nil {
		_c.SetSynthesized(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TerminPaymentCreate) SetID(v uuid.UUID) *TerminPaymentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TerminPaymentCreate) SetNillableID(v *uuid.UUID) *TerminPaymentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *TerminPaymentCreate) SetContract(v *Contract) *TerminPaymentCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the TerminPaymentMutation object of the builder.
func (_c *TerminPaymentCreate) Mutation() *TerminPaymentMutation {
	return _c.mutation
}

// Save creates the TerminPayment in the database.
func (_c *TerminPaymentCreate) Save(ctx context.Context) (*TerminPayment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TerminPaymentCreate) SaveX(ctx context.Context) *TerminPayment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TerminPaymentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TerminPaymentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TerminPaymentCreate) defaults() {
	if _, ok := _c.mutation.Synthesized(); !ok {
		v := terminpayment.DefaultSynthesized
		_c.mutation.SetSynthesized(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := terminpayment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TerminPaymentCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "TerminPayment.contract_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TerminPayment.sequence"`)}
	}
	if v, ok := _c.mutation.Sequence(); ok {
		if err := terminpayment.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "TerminPayment.sequence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "TerminPayment.amount"`)}
	}
	if _, ok := _c.mutation.Synthesized(); !ok {
		return &ValidationError{Name: "synthesized", err: errors.New(`ent: missing required field "TerminPayment.synthesized"`)}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "TerminPayment.contract"`)}
	}
	return nil
}

func (_c *TerminPaymentCreate) sqlSave(ctx context.Context) (*TerminPayment, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TerminPaymentCreate) createSpec() (*TerminPayment, *sqlgraph.CreateSpec) {
	var (
		_node = &TerminPayment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(terminpayment.Table, sqlgraph.NewFieldSpec(terminpayment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(terminpayment.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.PeriodLabel(); ok {
		_spec.SetField(terminpayment.FieldPeriodLabel, field.TypeString, value)
		_node.PeriodLabel = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(terminpayment.FieldAmount, field.TypeString, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.SourceText(); ok {
		_spec.SetField(terminpayment.FieldSourceText, field.TypeString, value)
		_node.SourceText = &value
	}
	if value, ok := _c.mutation.Synthesized(); ok {
		_spec.SetField(terminpayment.FieldSynthesized, field.TypeBool, value)
		_node.Synthesized = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   terminpayment.ContractTable,
			Columns: []string{terminpayment.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContractID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TerminPaymentCreateBulk is the builder for creating many TerminPayment entities in bulk.
type TerminPaymentCreateBulk struct {
	config
	err      error
	builders []*TerminPaymentCreate
}

// Save creates the TerminPayment entities in the database.
func (_c *TerminPaymentCreateBulk) Save(ctx context.Context) ([]*TerminPayment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TerminPayment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TerminPaymentMutation)
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
func (_c *TerminPaymentCreateBulk) SaveX(ctx context.Context) []*TerminPayment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TerminPaymentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TerminPaymentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
