// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/gen/ent/contract"
	"github.com/prasetyadi/contracts-tracker/gen/ent/extractjob"
	"github.com/prasetyadi/contracts-tracker/gen/ent/terminpayment"
)

// ContractCreate is the builder for creating a Contract entity.
type ContractCreate struct {
	config
	mutation *ContractMutation
	hooks    []Hook
}

// SetCustomerName sets the "customer_name" field.
func (_c *ContractCreate) SetCustomerName(v string) *ContractCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetCustomerAddress sets the "customer_address" field.
func (_c *ContractCreate) SetCustomerAddress(v string) *ContractCreate {
	_c.mutation.SetCustomerAddress(v)
	return _c
}

// SetNillableCustomerAddress sets the "customer_address" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCustomerAddress(v *string) *ContractCreate {
	if v != nil {
		_c.SetCustomerAddress(*v)
	}
	return _c
}

// SetCustomerNpwp sets the "customer_npwp" field.
func (_c *ContractCreate) SetCustomerNpwp(v string) *ContractCreate {
	_c.mutation.SetCustomerNpwp(v)
	return _c
}

// SetNillableCustomerNpwp sets the "customer_npwp" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCustomerNpwp(v *string) *ContractCreate {
	if v != nil {
		_c.SetCustomerNpwp(*v)
	}
	return _c
}

// SetRepresentativeName sets the "representative_name" field.
func (_c *ContractCreate) SetRepresentativeName(v string) *ContractCreate {
	_c.mutation.SetRepresentativeName(v)
	return _c
}

// SetNillableRepresentativeName sets the "representative_name" field if the given value is not nil.
func (_c *ContractCreate) SetNillableRepresentativeName(v *string) *ContractCreate {
	if v != nil {
		_c.SetRepresentativeName(*v)
	}
	return _c
}

// SetRepresentativeTitle sets the "representative_title" field.
func (_c *ContractCreate) SetRepresentativeTitle(v string) *ContractCreate {
	_c.mutation.SetRepresentativeTitle(v)
	return _c
}

// SetNillableRepresentativeTitle sets the "representative_title" field if the given value is not nil.
func (_c *ContractCreate) SetNillableRepresentativeTitle(v *string) *ContractCreate {
	if v != nil {
		_c.SetRepresentativeTitle(*v)
	}
	return _c
}

// SetConnectivityCount sets the "connectivity_count" field.
func (_c *ContractCreate) SetConnectivityCount(v int) *ContractCreate {
	_c.mutation.SetConnectivityCount(v)
	return _c
}

// SetNillableConnectivityCount sets the "connectivity_count" field if the given value is not nil.
func (_c *ContractCreate) SetNillableConnectivityCount(v *int) *ContractCreate {
	if v != nil {
		_c.SetConnectivityCount(*v)
	}
	return _c
}

// SetNonConnectivityCount sets the "non_connectivity_count" field.
func (_c *ContractCreate) SetNonConnectivityCount(v int) *ContractCreate {
	_c.mutation.SetNonConnectivityCount(v)
	return _c
}

// SetNillableNonConnectivityCount sets the "non_connectivity_count" field if the given value is not nil.
func (_c *ContractCreate) SetNillableNonConnectivityCount(v *int) *ContractCreate {
	if v != nil {
		_c.SetNonConnectivityCount(*v)
	}
	return _c
}

// SetBundlingCount sets the "bundling_count" field.
func (_c *ContractCreate) SetBundlingCount(v int) *ContractCreate {
	_c.mutation.SetBundlingCount(v)
	return _c
}

// SetNillableBundlingCount sets the "bundling_count" field if the given value is not nil.
func (_c *ContractCreate) SetNillableBundlingCount(v *int) *ContractCreate {
	if v != nil {
		_c.SetBundlingCount(*v)
	}
	return _c
}

// SetInstallationCost sets the "installation_cost" field.
func (_c *ContractCreate) SetInstallationCost(v string) *ContractCreate {
	_c.mutation.SetInstallationCost(v)
	return _c
}

// SetNillableInstallationCost sets the "installation_cost" field if the given value is not nil.
func (_c *ContractCreate) SetNillableInstallationCost(v *string) *ContractCreate {
	if v != nil {
		_c.SetInstallationCost(*v)
	}
	return _c
}

// SetSubscriptionCost sets the "subscription_cost" field.
func (_c *ContractCreate) SetSubscriptionCost(v string) *ContractCreate {
	_c.mutation.SetSubscriptionCost(v)
	return _c
}

// SetNillableSubscriptionCost sets the "subscription_cost" field if the given value is not nil.
func (_c *ContractCreate) SetNillableSubscriptionCost(v *string) *ContractCreate {
	if v != nil {
		_c.SetSubscriptionCost(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *ContractCreate) SetPaymentMethod(v string) *ContractCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetPaymentDescription sets the "payment_description" field.
func (_c *ContractCreate) SetPaymentDescription(v string) *ContractCreate {
	_c.mutation.SetPaymentDescription(v)
	return _c
}

// SetNillablePaymentDescription sets the "payment_description" field if the given value is not nil.
func (_c *ContractCreate) SetNillablePaymentDescription(v *string) *ContractCreate {
	if v != nil {
		_c.SetPaymentDescription(*v)
	}
	return _c
}

// SetPaymentConfidence sets the "payment_confidence" field.
func (_c *ContractCreate) SetPaymentConfidence(v string) *ContractCreate {
	_c.mutation.SetPaymentConfidence(v)
	return _c
}

// SetValidFrom sets the "valid_from" field.
func (_c *ContractCreate) SetValidFrom(v time.Time) *ContractCreate {
	_c.mutation.SetValidFrom(v)
	return _c
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_c *ContractCreate) SetNillableValidFrom(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetValidFrom(*v)
	}
	return _c
}

// SetValidUntil sets the "valid_until" field.
func (_c *ContractCreate) SetValidUntil(v time.Time) *ContractCreate {
	_c.mutation.SetValidUntil(v)
	return _c
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_c *ContractCreate) SetNillableValidUntil(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetValidUntil(*v)
	}
	return _c
}

// SetCustomerContactName sets the "customer_contact_name" field.
func (_c *ContractCreate) SetCustomerContactName(v string) *ContractCreate {
	_c.mutation.SetCustomerContactName(v)
	return _c
}

// SetNillableCustomerContactName sets the "customer_contact_name" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCustomerContactName(v *string) *ContractCreate {
	if v != nil {
		_c.SetCustomerContactName(*v)
	}
	return _c
}

// SetCustomerContactEmail sets the "customer_contact_email" field.
func (_c *ContractCreate) SetCustomerContactEmail(v string) *ContractCreate {
	_c.mutation.SetCustomerContactEmail(v)
	return _c
}

// SetNillableCustomerContactEmail sets the "customer_contact_email" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCustomerContactEmail(v *string) *ContractCreate {
	if v != nil {
		_c.SetCustomerContactEmail(*v)
	}
	return _c
}

// SetCustomerContactPhone sets the "customer_contact_phone" field.
func (_c *ContractCreate) SetCustomerContactPhone(v string) *ContractCreate {
	_c.mutation.SetCustomerContactPhone(v)
	return _c
}

// SetNillableCustomerContactPhone sets the "customer_contact_phone" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCustomerContactPhone(v *string) *ContractCreate {
	if v != nil {
		_c.SetCustomerContactPhone(*v)
	}
	return _c
}

// SetTelkomContactName sets the "telkom_contact_name" field.
func (_c *ContractCreate) SetTelkomContactName(v string) *ContractCreate {
	_c.mutation.SetTelkomContactName(v)
	return _c
}

// SetNillableTelkomContactName sets the "telkom_contact_name" field if the given value is not nil.
func (_c *ContractCreate) SetNillableTelkomContactName(v *string) *ContractCreate {
	if v != nil {
		_c.SetTelkomContactName(*v)
	}
	return _c
}

// SetTelkomContactEmail sets the "telkom_contact_email" field.
func (_c *ContractCreate) SetTelkomContactEmail(v string) *ContractCreate {
	_c.mutation.SetTelkomContactEmail(v)
	return _c
}

// SetNillableTelkomContactEmail sets the "telkom_contact_email" field if the given value is not nil.
func (_c *ContractCreate) SetNillableTelkomContactEmail(v *string) *ContractCreate {
	if v != nil {
		_c.SetTelkomContactEmail(*v)
	}
	return _c
}

// SetTelkomContactPhone sets the "telkom_contact_phone" field.
func (_c *ContractCreate) SetTelkomContactPhone(v string) *ContractCreate {
	_c.mutation.SetTelkomContactPhone(v)
	return _c
}

// SetNillableTelkomContactPhone sets the "telkom_contact_phone" field if the given value is not nil.
func (_c *ContractCreate) SetNillableTelkomContactPhone(v *string) *ContractCreate {
	if v != nil {
		_c.SetTelkomContactPhone(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractCreate) SetCreatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCreatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractCreate) SetUpdatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableUpdatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractCreate) SetID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableID(v *uuid.UUID) *ContractCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddTerminPaymentIDs adds the "termin_payments" edge to the TerminPayment entity by IDs.
func (_c *ContractCreate) AddTerminPaymentIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddTerminPaymentIDs(ids...)
	return _c
}

// AddTerminPayments adds the "termin_payments" edges to the TerminPayment entity.
func (_c *ContractCreate) AddTerminPayments(v ...*TerminPayment) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTerminPaymentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *ContractCreate) AddJobIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *ContractCreate) AddJobs(v ...*ExtractJob) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_c *ContractCreate) Mutation() *ContractMutation {
	return _c.mutation
}

// Save creates the Contract in the database.
func (_c *ContractCreate) Save(ctx context.Context) (*Contract, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractCreate) SaveX(ctx context.Context) *Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractCreate) defaults() {
	if _, ok := _c.mutation.ConnectivityCount(); !ok {
		v := contract.DefaultConnectivityCount
		_c.mutation.SetConnectivityCount(v)
	}
	if _, ok := _c.mutation.NonConnectivityCount(); !ok {
		v := contract.DefaultNonConnectivityCount
		_c.mutation.SetNonConnectivityCount(v)
	}
	if _, ok := _c.mutation.BundlingCount(); !ok {
		v := contract.DefaultBundlingCount
		_c.mutation.SetBundlingCount(v)
	}
	if _, ok := _c.mutation.InstallationCost(); !ok {
		v := contract.DefaultInstallationCost
		_c.mutation.SetInstallationCost(v)
	}
	if _, ok := _c.mutation.SubscriptionCost(); !ok {
		v := contract.DefaultSubscriptionCost
		_c.mutation.SetSubscriptionCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contract.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contract.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contract.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractCreate) check() error {
	if _, ok := _c.mutation.CustomerName(); !ok {
		return &ValidationError{Name: "customer_name", err: errors.New(`ent: missing required field "Contract.customer_name"`)}
	}
	if v, ok := _c.mutation.CustomerName(); ok {
		if err := contract.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Contract.customer_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConnectivityCount(); !ok {
		return &ValidationError{Name: "connectivity_count", err: errors.New(`ent: missing required field "Contract.connectivity_count"`)}
	}
	if v, ok := _c.mutation.ConnectivityCount(); ok {
		if err := contract.ConnectivityCountValidator(v); err != nil {
			return &ValidationError{Name: "connectivity_count", err: fmt.Errorf(`ent: validator failed for field "Contract.connectivity_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NonConnectivityCount(); !ok {
		return &ValidationError{Name: "non_connectivity_count", err: errors.New(`ent: missing required field "Contract.non_connectivity_count"`)}
	}
	if v, ok := _c.mutation.NonConnectivityCount(); ok {
		if err := contract.NonConnectivityCountValidator(v); err != nil {
			return &ValidationError{Name: "non_connectivity_count", err: fmt.Errorf(`ent: validator failed for field "Contract.non_connectivity_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BundlingCount(); !ok {
		return &ValidationError{Name: "bundling_count", err: errors.New(`ent: missing required field "Contract.bundling_count"`)}
	}
	if v, ok := _c.mutation.BundlingCount(); ok {
		if err := contract.BundlingCountValidator(v); err != nil {
			return &ValidationError{Name: "bundling_count", err: fmt.Errorf(`ent: validator failed for field "Contract.bundling_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InstallationCost(); !ok {
		return &ValidationError{Name: "installation_cost", err: errors.New(`ent: missing required field "Contract.installation_cost"`)}
	}
	if _, ok := _c.mutation.SubscriptionCost(); !ok {
		return &ValidationError{Name: "subscription_cost", err: errors.New(`ent: missing required field "Contract.subscription_cost"`)}
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		return &ValidationError{Name: "payment_method", err: errors.New(`ent: missing required field "Contract.payment_method"`)}
	}
	if v, ok := _c.mutation.PaymentMethod(); ok {
		if err := contract.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Contract.payment_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentConfidence(); !ok {
		return &ValidationError{Name: "payment_confidence", err: errors.New(`ent: missing required field "Contract.payment_confidence"`)}
	}
	if v, ok := _c.mutation.PaymentConfidence(); ok {
		if err := contract.PaymentConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "payment_confidence", err: fmt.Errorf(`ent: validator failed for field "Contract.payment_confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contract.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contract.updated_at"`)}
	}
	return nil
}

func (_c *ContractCreate) sqlSave(ctx context.Context) (*Contract, error) {
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

func (_c *ContractCreate) createSpec() (*Contract, *sqlgraph.CreateSpec) {
	var (
		_node = &Contract{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contract.Table, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(contract.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.CustomerAddress(); ok {
		_spec.SetField(contract.FieldCustomerAddress, field.TypeString, value)
		_node.CustomerAddress = &value
	}
	if value, ok := _c.mutation.CustomerNpwp(); ok {
		_spec.SetField(contract.FieldCustomerNpwp, field.TypeString, value)
		_node.CustomerNpwp = &value
	}
	if value, ok := _c.mutation.RepresentativeName(); ok {
		_spec.SetField(contract.FieldRepresentativeName, field.TypeString, value)
		_node.RepresentativeName = &value
	}
	if value, ok := _c.mutation.RepresentativeTitle(); ok {
		_spec.SetField(contract.FieldRepresentativeTitle, field.TypeString, value)
		_node.RepresentativeTitle = &value
	}
	if value, ok := _c.mutation.ConnectivityCount(); ok {
		_spec.SetField(contract.FieldConnectivityCount, field.TypeInt, value)
		_node.ConnectivityCount = value
	}
	if value, ok := _c.mutation.NonConnectivityCount(); ok {
		_spec.SetField(contract.FieldNonConnectivityCount, field.TypeInt, value)
		_node.NonConnectivityCount = value
	}
	if value, ok := _c.mutation.BundlingCount(); ok {
		_spec.SetField(contract.FieldBundlingCount, field.TypeInt, value)
		_node.BundlingCount = value
	}
	if value, ok := _c.mutation.InstallationCost(); ok {
		_spec.SetField(contract.FieldInstallationCost, field.TypeString, value)
		_node.InstallationCost = value
	}
	if value, ok := _c.mutation.SubscriptionCost(); ok {
		_spec.SetField(contract.FieldSubscriptionCost, field.TypeString, value)
		_node.SubscriptionCost = value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(contract.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = value
	}
	if value, ok := _c.mutation.PaymentDescription(); ok {
		_spec.SetField(contract.FieldPaymentDescription, field.TypeString, value)
		_node.PaymentDescription = &value
	}
	if value, ok := _c.mutation.PaymentConfidence(); ok {
		_spec.SetField(contract.FieldPaymentConfidence, field.TypeString, value)
		_node.PaymentConfidence = value
	}
	if value, ok := _c.mutation.ValidFrom(); ok {
		_spec.SetField(contract.FieldValidFrom, field.TypeTime, value)
		_node.ValidFrom = &value
	}
	if value, ok := _c.mutation.ValidUntil(); ok {
		_spec.SetField(contract.FieldValidUntil, field.TypeTime, value)
		_node.ValidUntil = &value
	}
	if value, ok := _c.mutation.CustomerContactName(); ok {
		_spec.SetField(contract.FieldCustomerContactName, field.TypeString, value)
		_node.CustomerContactName = &value
	}
	if value, ok := _c.mutation.CustomerContactEmail(); ok {
		_spec.SetField(contract.FieldCustomerContactEmail, field.TypeString, value)
		_node.CustomerContactEmail = &value
	}
	if value, ok := _c.mutation.CustomerContactPhone(); ok {
		_spec.SetField(contract.FieldCustomerContactPhone, field.TypeString, value)
		_node.CustomerContactPhone = &value
	}
	if value, ok := _c.mutation.TelkomContactName(); ok {
		_spec.SetField(contract.FieldTelkomContactName, field.TypeString, value)
		_node.TelkomContactName = &value
	}
	if value, ok := _c.mutation.TelkomContactEmail(); ok {
		_spec.SetField(contract.FieldTelkomContactEmail, field.TypeString, value)
		_node.TelkomContactEmail = &value
	}
	if value, ok := _c.mutation.TelkomContactPhone(); ok {
		_spec.SetField(contract.FieldTelkomContactPhone, field.TypeString, value)
		_node.TelkomContactPhone = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TerminPaymentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.TerminPaymentsTable,
			Columns: []string{contract.TerminPaymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(terminpayment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContractCreateBulk is the builder for creating many Contract entities in bulk.
type ContractCreateBulk struct {
	config
	err      error
	builders []*ContractCreate
}

// Save creates the Contract entities in the database.
func (_c *ContractCreateBulk) Save(ctx context.Context) ([]*Contract, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contract, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractMutation)
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
func (_c *ContractCreateBulk) SaveX(ctx context.Context) []*Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
