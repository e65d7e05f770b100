// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/gen/ent/contract"
	"github.com/prasetyadi/contracts-tracker/gen/ent/predicate"
	"github.com/prasetyadi/contracts-tracker/gen/ent/terminpayment"
)

// TerminPaymentUpdate is the builder for updating TerminPayment entities.
type TerminPaymentUpdate struct {
	config
	hooks    []Hook
	mutation *TerminPaymentMutation
}

// Where appends a list predicates to the TerminPaymentUpdate builder.
func (_u *TerminPaymentUpdate) Where(ps ...predicate.TerminPayment) *TerminPaymentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *TerminPaymentUpdate) SetContractID(v uuid.UUID) *TerminPaymentUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *TerminPaymentUpdate) SetNillableContractID(v *uuid.UUID) *TerminPaymentUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *TerminPaymentUpdate) SetSequence(v int) *TerminPaymentUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *TerminPaymentUpdate) SetNillableSequence(v *int) *TerminPaymentUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *TerminPaymentUpdate) AddSequence(v int) *TerminPaymentUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetPeriodLabel sets the "period_label" field.
func (_u *TerminPaymentUpdate) SetPeriodLabel(v string) *TerminPaymentUpdate {
	_u.mutation.SetPeriodLabel(v)
	return _u
}

// SetNillablePeriodLabel sets the "period_label" field if the given value is not nil.
func (_u *TerminPaymentUpdate) SetNillablePeriodLabel(v *string) *TerminPaymentUpdate {
	if v != nil {
		_u.SetPeriodLabel(*v)
	}
	return _u
}

// ClearPeriodLabel clears the value of the "period_label" field.
func (_u *TerminPaymentUpdate) ClearPeriodLabel() *TerminPaymentUpdate {
	_u.mutation.ClearPeriodLabel()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TerminPaymentUpdate) SetAmount(v string) *TerminPaymentUpdate {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TerminPaymentUpdate) SetNillableAmount(v *string) *TerminPaymentUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *TerminPaymentUpdate) SetSourceText(v string) *TerminPaymentUpdate {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *TerminPaymentUpdate) SetNillableSourceText(v *string) *TerminPaymentUpdate {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// ClearSourceText clears the value of the "source_text" field.
func (_u *TerminPaymentUpdate) ClearSourceText() *TerminPaymentUpdate {
	_u.mutation.ClearSourceText()
	return _u
}

// SetSynthesized sets the "synthesized" field.
func (_u *TerminPaymentUpdate) SetSynthesized(v bool) *TerminPaymentUpdate {
	_u.mutation.SetSynthesized(v)
	return _u
}

// SetNillableSynthesized sets the "synthesized" field if the given value is not nil.
func (_u *TerminPaymentUpdate) SetNillableSynthesized(v *bool) *TerminPaymentUpdate {
	if v != nil {
		_u.SetSynthesized(*v)
	}
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *TerminPaymentUpdate) SetContract(v *Contract) *TerminPaymentUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the TerminPaymentMutation object of the builder.
func (_u *TerminPaymentUpdate) Mutation() *TerminPaymentMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *TerminPaymentUpdate) ClearContract() *TerminPaymentUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TerminPaymentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TerminPaymentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TerminPaymentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TerminPaymentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TerminPaymentUpdate) check() error {
	if v, ok := _u.mutation.Sequence(); ok {
		if err := terminpayment.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "TerminPayment.sequence": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TerminPayment.contract"`)
	}
	return nil
}

func (_u *TerminPaymentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(terminpayment.Table, terminpayment.Columns, sqlgraph.NewFieldSpec(terminpayment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(terminpayment.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(terminpayment.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PeriodLabel(); ok {
		_spec.SetField(terminpayment.FieldPeriodLabel, field.TypeString, value)
	}
	if _u.mutation.PeriodLabelCleared() {
		_spec.ClearField(terminpayment.FieldPeriodLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(terminpayment.FieldAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(terminpayment.FieldSourceText, field.TypeString, value)
	}
	if _u.mutation.SourceTextCleared() {
		_spec.ClearField(terminpayment.FieldSourceText, field.TypeString)
	}
	if value, ok := _u.mutation.Synthesized(); ok {
		_spec.SetField(terminpayment.FieldSynthesized, field.TypeBool, value)
	}
	if _u.mutation.ContractCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{terminpayment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TerminPaymentUpdateOne is the builder for updating a single TerminPayment entity.
type TerminPaymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TerminPaymentMutation
}

// SetContractID sets the "contract_id" field.
func (_u *TerminPaymentUpdateOne) SetContractID(v uuid.UUID) *TerminPaymentUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *TerminPaymentUpdateOne) SetNillableContractID(v *uuid.UUID) *TerminPaymentUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *TerminPaymentUpdateOne) SetSequence(v int) *TerminPaymentUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *TerminPaymentUpdateOne) SetNillableSequence(v *int) *TerminPaymentUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *TerminPaymentUpdateOne) AddSequence(v int) *TerminPaymentUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetPeriodLabel sets the "period_label" field.
func (_u *TerminPaymentUpdateOne) SetPeriodLabel(v string) *TerminPaymentUpdateOne {
	_u.mutation.SetPeriodLabel(v)
	return _u
}

// SetNillablePeriodLabel sets the "period_label" field if the given value is not nil.
func (_u *TerminPaymentUpdateOne) SetNillablePeriodLabel(v *string) *TerminPaymentUpdateOne {
	if v != nil {
		_u.SetPeriodLabel(*v)
	}
	return _u
}

// ClearPeriodLabel clears the value of the "period_label" field.
func (_u *TerminPaymentUpdateOne) ClearPeriodLabel() *TerminPaymentUpdateOne {
	_u.mutation.ClearPeriodLabel()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TerminPaymentUpdateOne) SetAmount(v string) *TerminPaymentUpdateOne {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TerminPaymentUpdateOne) SetNillableAmount(v *string) *TerminPaymentUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *TerminPaymentUpdateOne) SetSourceText(v string) *TerminPaymentUpdateOne {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *TerminPaymentUpdateOne) SetNillableSourceText(v *string) *TerminPaymentUpdateOne {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// ClearSourceText clears the value of the "source_text" field.
func (_u *TerminPaymentUpdateOne) ClearSourceText() *TerminPaymentUpdateOne {
	_u.mutation.ClearSourceText()
	return _u
}

// SetSynthesized sets the "synthesized" field.
func (_u *TerminPaymentUpdateOne) SetSynthesized(v bool) *TerminPaymentUpdateOne {
	_u.mutation.SetSynthesized(v)
	return _u
}

// SetNillableSynthesized sets the "synthesized" field if the given value is not nil.
func (_u *TerminPaymentUpdateOne) SetNillableSynthesized(v *bool) *TerminPaymentUpdateOne {
	if v != nil {
		_u.SetSynthesized(*v)
	}
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *TerminPaymentUpdateOne) SetContract(v *Contract) *TerminPaymentUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the TerminPaymentMutation object of the builder.
func (_u *TerminPaymentUpdateOne) Mutation() *TerminPaymentMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *TerminPaymentUpdateOne) ClearContract() *TerminPaymentUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the TerminPaymentUpdate builder.
func (_u *TerminPaymentUpdateOne) Where(ps ...predicate.TerminPayment) *TerminPaymentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TerminPaymentUpdateOne) Select(field string, fields ...string) *TerminPaymentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TerminPayment entity.
func (_u *TerminPaymentUpdateOne) Save(ctx context.Context) (*TerminPayment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TerminPaymentUpdateOne) SaveX(ctx context.Context) *TerminPayment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TerminPaymentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TerminPaymentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TerminPaymentUpdateOne) check() error {
	if v, ok := _u.mutation.Sequence(); ok {
		if err := terminpayment.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "TerminPayment.sequence": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TerminPayment.contract"`)
	}
	return nil
}

func (_u *TerminPaymentUpdateOne) sqlSave(ctx context.Context) (_node *TerminPayment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(terminpayment.Table, terminpayment.Columns, sqlgraph.NewFieldSpec(terminpayment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TerminPayment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, terminpayment.FieldID)
		for _, f := range fields {
			if !terminpayment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != terminpayment.FieldID {
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
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(terminpayment.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(terminpayment.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PeriodLabel(); ok {
		_spec.SetField(terminpayment.FieldPeriodLabel, field.TypeString, value)
	}
	if _u.mutation.PeriodLabelCleared() {
		_spec.ClearField(terminpayment.FieldPeriodLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(terminpayment.FieldAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(terminpayment.FieldSourceText, field.TypeString, value)
	}
	if _u.mutation.SourceTextCleared() {
		_spec.ClearField(terminpayment.FieldSourceText, field.TypeString)
	}
	if value, ok := _u.mutation.Synthesized(); ok {
		_spec.SetField(terminpayment.FieldSynthesized, field.TypeBool, value)
	}
	if _u.mutation.ContractCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TerminPayment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{terminpayment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
