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
	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/gen/ent/contract"
	"github.com/prasetyadi/contracts-tracker/gen/ent/extractjob"
	"github.com/prasetyadi/contracts-tracker/gen/ent/predicate"
	"github.com/prasetyadi/contracts-tracker/gen/ent/terminpayment"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *ContractUpdate) SetCustomerName(v string) *ContractUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCustomerName(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetCustomerAddress sets the "customer_address" field.
func (_u *ContractUpdate) SetCustomerAddress(v string) *ContractUpdate {
	_u.mutation.SetCustomerAddress(v)
	return _u
}

// SetNillableCustomerAddress sets the "customer_address" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCustomerAddress(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCustomerAddress(*v)
	}
	return _u
}

// ClearCustomerAddress clears the value of the "customer_address" field.
func (_u *ContractUpdate) ClearCustomerAddress() *ContractUpdate {
	_u.mutation.ClearCustomerAddress()
	return _u
}

// SetCustomerNpwp sets the "customer_npwp" field.
func (_u *ContractUpdate) SetCustomerNpwp(v string) *ContractUpdate {
	_u.mutation.SetCustomerNpwp(v)
	return _u
}

// SetNillableCustomerNpwp sets the "customer_npwp" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCustomerNpwp(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCustomerNpwp(*v)
	}
	return _u
}

// ClearCustomerNpwp clears the value of the "customer_npwp" field.
func (_u *ContractUpdate) ClearCustomerNpwp() *ContractUpdate {
	_u.mutation.ClearCustomerNpwp()
	return _u
}

// SetRepresentativeName sets the "representative_name" field.
func (_u *ContractUpdate) SetRepresentativeName(v string) *ContractUpdate {
	_u.mutation.SetRepresentativeName(v)
	return _u
}

// SetNillableRepresentativeName sets the "representative_name" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableRepresentativeName(v *string) *ContractUpdate {
	if v != nil {
		_u.SetRepresentativeName(*v)
	}
	return _u
}

// ClearRepresentativeName clears the value of the "representative_name" field.
func (_u *ContractUpdate) ClearRepresentativeName() *ContractUpdate {
	_u.mutation.ClearRepresentativeName()
	return _u
}

// SetRepresentativeTitle sets the "representative_title" field.
func (_u *ContractUpdate) SetRepresentativeTitle(v string) *ContractUpdate {
	_u.mutation.SetRepresentativeTitle(v)
	return _u
}

// SetNillableRepresentativeTitle sets the "representative_title" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableRepresentativeTitle(v *string) *ContractUpdate {
	if v != nil {
		_u.SetRepresentativeTitle(*v)
	}
	return _u
}

// ClearRepresentativeTitle clears the value of the "representative_title" field.
func (_u *ContractUpdate) ClearRepresentativeTitle() *ContractUpdate {
	_u.mutation.ClearRepresentativeTitle()
	return _u
}

// SetConnectivityCount sets the "connectivity_count" field.
func (_u *ContractUpdate) SetConnectivityCount(v int) *ContractUpdate {
	_u.mutation.ResetConnectivityCount()
	_u.mutation.SetConnectivityCount(v)
	return _u
}

// SetNillableConnectivityCount sets the "connectivity_count" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableConnectivityCount(v *int) *ContractUpdate {
	if v != nil {
		_u.SetConnectivityCount(*v)
	}
	return _u
}

// AddConnectivityCount adds value to the "connectivity_count" field.
func (_u *ContractUpdate) AddConnectivityCount(v int) *ContractUpdate {
	_u.mutation.AddConnectivityCount(v)
	return _u
}

// SetNonConnectivityCount sets the "non_connectivity_count" field.
func (_u *ContractUpdate) SetNonConnectivityCount(v int) *ContractUpdate {
	_u.mutation.ResetNonConnectivityCount()
	_u.mutation.SetNonConnectivityCount(v)
	return _u
}

// SetNillableNonConnectivityCount sets the "non_connectivity_count" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableNonConnectivityCount(v *int) *ContractUpdate {
	if v != nil {
		_u.SetNonConnectivityCount(*v)
	}
	return _u
}

// AddNonConnectivityCount adds value to the "non_connectivity_count" field.
func (_u *ContractUpdate) AddNonConnectivityCount(v int) *ContractUpdate {
	_u.mutation.AddNonConnectivityCount(v)
	return _u
}

// SetBundlingCount sets the "bundling_count" field.
func (_u *ContractUpdate) SetBundlingCount(v int) *ContractUpdate {
	_u.mutation.ResetBundlingCount()
	_u.mutation.SetBundlingCount(v)
	return _u
}

// SetNillableBundlingCount sets the "bundling_count" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableBundlingCount(v *int) *ContractUpdate {
	if v != nil {
		_u.SetBundlingCount(*v)
	}
	return _u
}

// AddBundlingCount adds value to the "bundling_count" field.
func (_u *ContractUpdate) AddBundlingCount(v int) *ContractUpdate {
	_u.mutation.AddBundlingCount(v)
	return _u
}

// SetInstallationCost sets the "installation_cost" field.
func (_u *ContractUpdate) SetInstallationCost(v string) *ContractUpdate {
	_u.mutation.SetInstallationCost(v)
	return _u
}

// SetNillableInstallationCost sets the "installation_cost" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableInstallationCost(v *string) *ContractUpdate {
	if v != nil {
		_u.SetInstallationCost(*v)
	}
	return _u
}

// SetSubscriptionCost sets the "subscription_cost" field.
func (_u *ContractUpdate) SetSubscriptionCost(v string) *ContractUpdate {
	_u.mutation.SetSubscriptionCost(v)
	return _u
}

// SetNillableSubscriptionCost sets the "subscription_cost" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableSubscriptionCost(v *string) *ContractUpdate {
	if v != nil {
		_u.SetSubscriptionCost(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ContractUpdate) SetPaymentMethod(v string) *ContractUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ContractUpdate) SetNillablePaymentMethod(v *string) *ContractUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPaymentDescription sets the "payment_description" field.
func (_u *ContractUpdate) SetPaymentDescription(v string) *ContractUpdate {
	_u.mutation.SetPaymentDescription(v)
	return _u
}

// SetNillablePaymentDescription sets the "payment_description" field if the given value is not nil.
func (_u *ContractUpdate) SetNillablePaymentDescription(v *string) *ContractUpdate {
	if v != nil {
		_u.SetPaymentDescription(*v)
	}
	return _u
}

// ClearPaymentDescription clears the value of the "payment_description" field.
func (_u *ContractUpdate) ClearPaymentDescription() *ContractUpdate {
	_u.mutation.ClearPaymentDescription()
	return _u
}

// SetPaymentConfidence sets the "payment_confidence" field.
func (_u *ContractUpdate) SetPaymentConfidence(v string) *ContractUpdate {
	_u.mutation.SetPaymentConfidence(v)
	return _u
}

// SetNillablePaymentConfidence sets the "payment_confidence" field if the given value is not nil.
func (_u *ContractUpdate) SetNillablePaymentConfidence(v *string) *ContractUpdate {
	if v != nil {
		_u.SetPaymentConfidence(*v)
	}
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *ContractUpdate) SetValidFrom(v time.Time) *ContractUpdate {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableValidFrom(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// ClearValidFrom clears the value of the "valid_from" field.
func (_u *ContractUpdate) ClearValidFrom() *ContractUpdate {
	_u.mutation.ClearValidFrom()
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *ContractUpdate) SetValidUntil(v time.Time) *ContractUpdate {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableValidUntil(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *ContractUpdate) ClearValidUntil() *ContractUpdate {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetCustomerContactName sets the "customer_contact_name" field.
func (_u *ContractUpdate) SetCustomerContactName(v string) *ContractUpdate {
	_u.mutation.SetCustomerContactName(v)
	return _u
}

// SetNillableCustomerContactName sets the "customer_contact_name" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCustomerContactName(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCustomerContactName(*v)
	}
	return _u
}

// ClearCustomerContactName clears the value of the "customer_contact_name" field.
func (_u *ContractUpdate) ClearCustomerContactName() *ContractUpdate {
	_u.mutation.ClearCustomerContactName()
	return _u
}

// SetCustomerContactEmail sets the "customer_contact_email" field.
func (_u *ContractUpdate) SetCustomerContactEmail(v string) *ContractUpdate {
	_u.mutation.SetCustomerContactEmail(v)
	return _u
}

// SetNillableCustomerContactEmail sets the "customer_contact_email" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCustomerContactEmail(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCustomerContactEmail(*v)
	}
	return _u
}

// ClearCustomerContactEmail clears the value of the "customer_contact_email" field.
func (_u *ContractUpdate) ClearCustomerContactEmail() *ContractUpdate {
	_u.mutation.ClearCustomerContactEmail()
	return _u
}

// SetCustomerContactPhone sets the "customer_contact_phone" field.
func (_u *ContractUpdate) SetCustomerContactPhone(v string) *ContractUpdate {
	_u.mutation.SetCustomerContactPhone(v)
	return _u
}

// SetNillableCustomerContactPhone sets the "customer_contact_phone" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCustomerContactPhone(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCustomerContactPhone(*v)
	}
	return _u
}

// ClearCustomerContactPhone clears the value of the "customer_contact_phone" field.
func (_u *ContractUpdate) ClearCustomerContactPhone() *ContractUpdate {
	_u.mutation.ClearCustomerContactPhone()
	return _u
}

// SetTelkomContactName sets the "telkom_contact_name" field.
func (_u *ContractUpdate) SetTelkomContactName(v string) *ContractUpdate {
	_u.mutation.SetTelkomContactName(v)
	return _u
}

// SetNillableTelkomContactName sets the "telkom_contact_name" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableTelkomContactName(v *string) *ContractUpdate {
	if v != nil {
		_u.SetTelkomContactName(*v)
	}
	return _u
}

// ClearTelkomContactName clears the value of the "telkom_contact_name" field.
func (_u *ContractUpdate) ClearTelkomContactName() *ContractUpdate {
	_u.mutation.ClearTelkomContactName()
	return _u
}

// SetTelkomContactEmail sets the "telkom_contact_email" field.
func (_u *ContractUpdate) SetTelkomContactEmail(v string) *ContractUpdate {
	_u.mutation.SetTelkomContactEmail(v)
	return _u
}

// SetNillableTelkomContactEmail sets the "telkom_contact_email" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableTelkomContactEmail(v *string) *ContractUpdate {
	if v != nil {
		_u.SetTelkomContactEmail(*v)
	}
	return _u
}

// ClearTelkomContactEmail clears the value of the "telkom_contact_email" field.
func (_u *ContractUpdate) ClearTelkomContactEmail() *ContractUpdate {
	_u.mutation.ClearTelkomContactEmail()
	return _u
}

// SetTelkomContactPhone sets the "telkom_contact_phone" field.
func (_u *ContractUpdate) SetTelkomContactPhone(v string) *ContractUpdate {
	_u.mutation.SetTelkomContactPhone(v)
	return _u
}

// SetNillableTelkomContactPhone sets the "telkom_contact_phone" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableTelkomContactPhone(v *string) *ContractUpdate {
	if v != nil {
		_u.SetTelkomContactPhone(*v)
	}
	return _u
}

// ClearTelkomContactPhone clears the value of the "telkom_contact_phone" field.
func (_u *ContractUpdate) ClearTelkomContactPhone() *ContractUpdate {
	_u.mutation.ClearTelkomContactPhone()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdate) SetCreatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCreatedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTerminPaymentIDs adds the "termin_payments" edge to the TerminPayment entity by IDs.
func (_u *ContractUpdate) AddTerminPaymentIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddTerminPaymentIDs(ids...)
	return _u
}

// AddTerminPayments adds the "termin_payments" edges to the TerminPayment entity.
func (_u *ContractUpdate) AddTerminPayments(v ...*TerminPayment) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTerminPaymentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ContractUpdate) AddJobIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdate) AddJobs(v ...*ExtractJob) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearTerminPayments clears all "termin_payments" edges to the TerminPayment entity.
func (_u *ContractUpdate) ClearTerminPayments() *ContractUpdate {
	_u.mutation.ClearTerminPayments()
	return _u
}

// RemoveTerminPaymentIDs removes the "termin_payments" edge to TerminPayment entities by IDs.
func (_u *ContractUpdate) RemoveTerminPaymentIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveTerminPaymentIDs(ids...)
	return _u
}

// RemoveTerminPayments removes "termin_payments" edges to TerminPayment entities.
func (_u *ContractUpdate) RemoveTerminPayments(v ...*TerminPayment) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTerminPaymentIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdate) ClearJobs() *ContractUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ContractUpdate) RemoveJobIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ContractUpdate) RemoveJobs(v ...*ExtractJob) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.CustomerName(); ok {
		if err := contract.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Contract.customer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConnectivityCount(); ok {
		if err := contract.ConnectivityCountValidator(v); err != nil {
			return &ValidationError{Name: "connectivity_count", err: fmt.Errorf(`ent: validator failed for field "Contract.connectivity_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NonConnectivityCount(); ok {
		if err := contract.NonConnectivityCountValidator(v); err != nil {
			return &ValidationError{Name: "non_connectivity_count", err: fmt.Errorf(`ent: validator failed for field "Contract.non_connectivity_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BundlingCount(); ok {
		if err := contract.BundlingCountValidator(v); err != nil {
			return &ValidationError{Name: "bundling_count", err: fmt.Errorf(`ent: validator failed for field "Contract.bundling_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := contract.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Contract.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentConfidence(); ok {
		if err := contract.PaymentConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "payment_confidence", err: fmt.Errorf(`ent: validator failed for field "Contract.payment_confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(contract.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerAddress(); ok {
		_spec.SetField(contract.FieldCustomerAddress, field.TypeString, value)
	}
	if _u.mutation.CustomerAddressCleared() {
		_spec.ClearField(contract.FieldCustomerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerNpwp(); ok {
		_spec.SetField(contract.FieldCustomerNpwp, field.TypeString, value)
	}
	if _u.mutation.CustomerNpwpCleared() {
		_spec.ClearField(contract.FieldCustomerNpwp, field.TypeString)
	}
	if value, ok := _u.mutation.RepresentativeName(); ok {
		_spec.SetField(contract.FieldRepresentativeName, field.TypeString, value)
	}
	if _u.mutation.RepresentativeNameCleared() {
		_spec.ClearField(contract.FieldRepresentativeName, field.TypeString)
	}
	if value, ok := _u.mutation.RepresentativeTitle(); ok {
		_spec.SetField(contract.FieldRepresentativeTitle, field.TypeString, value)
	}
	if _u.mutation.RepresentativeTitleCleared() {
		_spec.ClearField(contract.FieldRepresentativeTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ConnectivityCount(); ok {
		_spec.SetField(contract.FieldConnectivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConnectivityCount(); ok {
		_spec.AddField(contract.FieldConnectivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NonConnectivityCount(); ok {
		_spec.SetField(contract.FieldNonConnectivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNonConnectivityCount(); ok {
		_spec.AddField(contract.FieldNonConnectivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BundlingCount(); ok {
		_spec.SetField(contract.FieldBundlingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBundlingCount(); ok {
		_spec.AddField(contract.FieldBundlingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InstallationCost(); ok {
		_spec.SetField(contract.FieldInstallationCost, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubscriptionCost(); ok {
		_spec.SetField(contract.FieldSubscriptionCost, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(contract.FieldPaymentMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentDescription(); ok {
		_spec.SetField(contract.FieldPaymentDescription, field.TypeString, value)
	}
	if _u.mutation.PaymentDescriptionCleared() {
		_spec.ClearField(contract.FieldPaymentDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentConfidence(); ok {
		_spec.SetField(contract.FieldPaymentConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(contract.FieldValidFrom, field.TypeTime, value)
	}
	if _u.mutation.ValidFromCleared() {
		_spec.ClearField(contract.FieldValidFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(contract.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(contract.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CustomerContactName(); ok {
		_spec.SetField(contract.FieldCustomerContactName, field.TypeString, value)
	}
	if _u.mutation.CustomerContactNameCleared() {
		_spec.ClearField(contract.FieldCustomerContactName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerContactEmail(); ok {
		_spec.SetField(contract.FieldCustomerContactEmail, field.TypeString, value)
	}
	if _u.mutation.CustomerContactEmailCleared() {
		_spec.ClearField(contract.FieldCustomerContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerContactPhone(); ok {
		_spec.SetField(contract.FieldCustomerContactPhone, field.TypeString, value)
	}
	if _u.mutation.CustomerContactPhoneCleared() {
		_spec.ClearField(contract.FieldCustomerContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.TelkomContactName(); ok {
		_spec.SetField(contract.FieldTelkomContactName, field.TypeString, value)
	}
	if _u.mutation.TelkomContactNameCleared() {
		_spec.ClearField(contract.FieldTelkomContactName, field.TypeString)
	}
	if value, ok := _u.mutation.TelkomContactEmail(); ok {
		_spec.SetField(contract.FieldTelkomContactEmail, field.TypeString, value)
	}
	if _u.mutation.TelkomContactEmailCleared() {
		_spec.ClearField(contract.FieldTelkomContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.TelkomContactPhone(); ok {
		_spec.SetField(contract.FieldTelkomContactPhone, field.TypeString, value)
	}
	if _u.mutation.TelkomContactPhoneCleared() {
		_spec.ClearField(contract.FieldTelkomContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerminPaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTerminPaymentsIDs(); len(nodes) > 0 && !_u.mutation.TerminPaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TerminPaymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetCustomerName sets the "customer_name" field.
func (_u *ContractUpdateOne) SetCustomerName(v string) *ContractUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCustomerName(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetCustomerAddress sets the "customer_address" field.
func (_u *ContractUpdateOne) SetCustomerAddress(v string) *ContractUpdateOne {
	_u.mutation.SetCustomerAddress(v)
	return _u
}

// SetNillableCustomerAddress sets the "customer_address" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCustomerAddress(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCustomerAddress(*v)
	}
	return _u
}

// ClearCustomerAddress clears the value of the "customer_address" field.
func (_u *ContractUpdateOne) ClearCustomerAddress() *ContractUpdateOne {
	_u.mutation.ClearCustomerAddress()
	return _u
}

// SetCustomerNpwp sets the "customer_npwp" field.
func (_u *ContractUpdateOne) SetCustomerNpwp(v string) *ContractUpdateOne {
	_u.mutation.SetCustomerNpwp(v)
	return _u
}

// SetNillableCustomerNpwp sets the "customer_npwp" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCustomerNpwp(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCustomerNpwp(*v)
	}
	return _u
}

// ClearCustomerNpwp clears the value of the "customer_npwp" field.
func (_u *ContractUpdateOne) ClearCustomerNpwp() *ContractUpdateOne {
	_u.mutation.ClearCustomerNpwp()
	return _u
}

// SetRepresentativeName sets the "representative_name" field.
func (_u *ContractUpdateOne) SetRepresentativeName(v string) *ContractUpdateOne {
	_u.mutation.SetRepresentativeName(v)
	return _u
}

// SetNillableRepresentativeName sets the "representative_name" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableRepresentativeName(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetRepresentativeName(*v)
	}
	return _u
}

// ClearRepresentativeName clears the value of the "representative_name" field.
func (_u *ContractUpdateOne) ClearRepresentativeName() *ContractUpdateOne {
	_u.mutation.ClearRepresentativeName()
	return _u
}

// SetRepresentativeTitle sets the "representative_title" field.
func (_u *ContractUpdateOne) SetRepresentativeTitle(v string) *ContractUpdateOne {
	_u.mutation.SetRepresentativeTitle(v)
	return _u
}

// SetNillableRepresentativeTitle sets the "representative_title" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableRepresentativeTitle(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetRepresentativeTitle(*v)
	}
	return _u
}

// ClearRepresentativeTitle clears the value of the "representative_title" field.
func (_u *ContractUpdateOne) ClearRepresentativeTitle() *ContractUpdateOne {
	_u.mutation.ClearRepresentativeTitle()
	return _u
}

// SetConnectivityCount sets the "connectivity_count" field.
func (_u *ContractUpdateOne) SetConnectivityCount(v int) *ContractUpdateOne {
	_u.mutation.ResetConnectivityCount()
	_u.mutation.SetConnectivityCount(v)
	return _u
}

// SetNillableConnectivityCount sets the "connectivity_count" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableConnectivityCount(v *int) *ContractUpdateOne {
	if v != nil {
		_u.SetConnectivityCount(*v)
	}
	return _u
}

// AddConnectivityCount adds value to the "connectivity_count" field.
func (_u *ContractUpdateOne) AddConnectivityCount(v int) *ContractUpdateOne {
	_u.mutation.AddConnectivityCount(v)
	return _u
}

// SetNonConnectivityCount sets the "non_connectivity_count" field.
func (_u *ContractUpdateOne) SetNonConnectivityCount(v int) *ContractUpdateOne {
	_u.mutation.ResetNonConnectivityCount()
	_u.mutation.SetNonConnectivityCount(v)
	return _u
}

// SetNillableNonConnectivityCount sets the "non_connectivity_count" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableNonConnectivityCount(v *int) *ContractUpdateOne {
	if v != nil {
		_u.SetNonConnectivityCount(*v)
	}
	return _u
}

// AddNonConnectivityCount adds value to the "non_connectivity_count" field.
func (_u *ContractUpdateOne) AddNonConnectivityCount(v int) *ContractUpdateOne {
	_u.mutation.AddNonConnectivityCount(v)
	return _u
}

// SetBundlingCount sets the "bundling_count" field.
func (_u *ContractUpdateOne) SetBundlingCount(v int) *ContractUpdateOne {
	_u.mutation.ResetBundlingCount()
	_u.mutation.SetBundlingCount(v)
	return _u
}

// SetNillableBundlingCount sets the "bundling_count" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableBundlingCount(v *int) *ContractUpdateOne {
	if v != nil {
		_u.SetBundlingCount(*v)
	}
	return _u
}

// AddBundlingCount adds value to the "bundling_count" field.
func (_u *ContractUpdateOne) AddBundlingCount(v int) *ContractUpdateOne {
	_u.mutation.AddBundlingCount(v)
	return _u
}

// SetInstallationCost sets the "installation_cost" field.
func (_u *ContractUpdateOne) SetInstallationCost(v string) *ContractUpdateOne {
	_u.mutation.SetInstallationCost(v)
	return _u
}

// SetNillableInstallationCost sets the "installation_cost" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableInstallationCost(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetInstallationCost(*v)
	}
	return _u
}

// SetSubscriptionCost sets the "subscription_cost" field.
func (_u *ContractUpdateOne) SetSubscriptionCost(v string) *ContractUpdateOne {
	_u.mutation.SetSubscriptionCost(v)
	return _u
}

// SetNillableSubscriptionCost sets the "subscription_cost" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableSubscriptionCost(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetSubscriptionCost(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ContractUpdateOne) SetPaymentMethod(v string) *ContractUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePaymentMethod(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPaymentDescription sets the "payment_description" field.
func (_u *ContractUpdateOne) SetPaymentDescription(v string) *ContractUpdateOne {
	_u.mutation.SetPaymentDescription(v)
	return _u
}

// SetNillablePaymentDescription sets the "payment_description" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePaymentDescription(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetPaymentDescription(*v)
	}
	return _u
}

// ClearPaymentDescription clears the value of the "payment_description" field.
func (_u *ContractUpdateOne) ClearPaymentDescription() *ContractUpdateOne {
	_u.mutation.ClearPaymentDescription()
	return _u
}

// SetPaymentConfidence sets the "payment_confidence" field.
func (_u *ContractUpdateOne) SetPaymentConfidence(v string) *ContractUpdateOne {
	_u.mutation.SetPaymentConfidence(v)
	return _u
}

// SetNillablePaymentConfidence sets the "payment_confidence" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePaymentConfidence(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetPaymentConfidence(*v)
	}
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *ContractUpdateOne) SetValidFrom(v time.Time) *ContractUpdateOne {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableValidFrom(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// ClearValidFrom clears the value of the "valid_from" field.
func (_u *ContractUpdateOne) ClearValidFrom() *ContractUpdateOne {
	_u.mutation.ClearValidFrom()
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *ContractUpdateOne) SetValidUntil(v time.Time) *ContractUpdateOne {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableValidUntil(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *ContractUpdateOne) ClearValidUntil() *ContractUpdateOne {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetCustomerContactName sets the "customer_contact_name" field.
func (_u *ContractUpdateOne) SetCustomerContactName(v string) *ContractUpdateOne {
	_u.mutation.SetCustomerContactName(v)
	return _u
}

// SetNillableCustomerContactName sets the "customer_contact_name" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCustomerContactName(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCustomerContactName(*v)
	}
	return _u
}

// ClearCustomerContactName clears the value of the "customer_contact_name" field.
func (_u *ContractUpdateOne) ClearCustomerContactName() *ContractUpdateOne {
	_u.mutation.ClearCustomerContactName()
	return _u
}

// SetCustomerContactEmail sets the "customer_contact_email" field.
func (_u *ContractUpdateOne) SetCustomerContactEmail(v string) *ContractUpdateOne {
	_u.mutation.SetCustomerContactEmail(v)
	return _u
}

// SetNillableCustomerContactEmail sets the "customer_contact_email" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCustomerContactEmail(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCustomerContactEmail(*v)
	}
	return _u
}

// ClearCustomerContactEmail clears the value of the "customer_contact_email" field.
func (_u *ContractUpdateOne) ClearCustomerContactEmail() *ContractUpdateOne {
	_u.mutation.ClearCustomerContactEmail()
	return _u
}

// SetCustomerContactPhone sets the "customer_contact_phone" field.
func (_u *ContractUpdateOne) SetCustomerContactPhone(v string) *ContractUpdateOne {
	_u.mutation.SetCustomerContactPhone(v)
	return _u
}

// SetNillableCustomerContactPhone sets the "customer_contact_phone" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCustomerContactPhone(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCustomerContactPhone(*v)
	}
	return _u
}

// ClearCustomerContactPhone clears the value of the "customer_contact_phone" field.
func (_u *ContractUpdateOne) ClearCustomerContactPhone() *ContractUpdateOne {
	_u.mutation.ClearCustomerContactPhone()
	return _u
}

// SetTelkomContactName sets the "telkom_contact_name" field.
func (_u *ContractUpdateOne) SetTelkomContactName(v string) *ContractUpdateOne {
	_u.mutation.SetTelkomContactName(v)
	return _u
}

// SetNillableTelkomContactName sets the "telkom_contact_name" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableTelkomContactName(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetTelkomContactName(*v)
	}
	return _u
}

// ClearTelkomContactName clears the value of the "telkom_contact_name" field.
func (_u *ContractUpdateOne) ClearTelkomContactName() *ContractUpdateOne {
	_u.mutation.ClearTelkomContactName()
	return _u
}

// SetTelkomContactEmail sets the "telkom_contact_email" field.
func (_u *ContractUpdateOne) SetTelkomContactEmail(v string) *ContractUpdateOne {
	_u.mutation.SetTelkomContactEmail(v)
	return _u
}

// SetNillableTelkomContactEmail sets the "telkom_contact_email" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableTelkomContactEmail(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetTelkomContactEmail(*v)
	}
	return _u
}

// ClearTelkomContactEmail clears the value of the "telkom_contact_email" field.
func (_u *ContractUpdateOne) ClearTelkomContactEmail() *ContractUpdateOne {
	_u.mutation.ClearTelkomContactEmail()
	return _u
}

// SetTelkomContactPhone sets the "telkom_contact_phone" field.
func (_u *ContractUpdateOne) SetTelkomContactPhone(v string) *ContractUpdateOne {
	_u.mutation.SetTelkomContactPhone(v)
	return _u
}

// SetNillableTelkomContactPhone sets the "telkom_contact_phone" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableTelkomContactPhone(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetTelkomContactPhone(*v)
	}
	return _u
}

// ClearTelkomContactPhone clears the value of the "telkom_contact_phone" field.
func (_u *ContractUpdateOne) ClearTelkomContactPhone() *ContractUpdateOne {
	_u.mutation.ClearTelkomContactPhone()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdateOne) SetCreatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTerminPaymentIDs adds the "termin_payments" edge to the TerminPayment entity by IDs.
func (_u *ContractUpdateOne) AddTerminPaymentIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddTerminPaymentIDs(ids...)
	return _u
}

// AddTerminPayments adds the "termin_payments" edges to the TerminPayment entity.
func (_u *ContractUpdateOne) AddTerminPayments(v ...*TerminPayment) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTerminPaymentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ContractUpdateOne) AddJobIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdateOne) AddJobs(v ...*ExtractJob) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearTerminPayments clears all "termin_payments" edges to the TerminPayment entity.
func (_u *ContractUpdateOne) ClearTerminPayments() *ContractUpdateOne {
	_u.mutation.ClearTerminPayments()
	return _u
}

// RemoveTerminPaymentIDs removes the "termin_payments" edge to TerminPayment entities by IDs.
func (_u *ContractUpdateOne) RemoveTerminPaymentIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveTerminPaymentIDs(ids...)
	return _u
}

// RemoveTerminPayments removes "termin_payments" edges to TerminPayment entities.
func (_u *ContractUpdateOne) RemoveTerminPayments(v ...*TerminPayment) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTerminPaymentIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdateOne) ClearJobs() *ContractUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ContractUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ContractUpdateOne) RemoveJobs(v ...*ExtractJob) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.CustomerName(); ok {
		if err := contract.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Contract.customer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConnectivityCount(); ok {
		if err := contract.ConnectivityCountValidator(v); err != nil {
			return &ValidationError{Name: "connectivity_count", err: fmt.Errorf(`ent: validator failed for field "Contract.connectivity_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NonConnectivityCount(); ok {
		if err := contract.NonConnectivityCountValidator(v); err != nil {
			return &ValidationError{Name: "non_connectivity_count", err: fmt.Errorf(`ent: validator failed for field "Contract.non_connectivity_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BundlingCount(); ok {
		if err := contract.BundlingCountValidator(v); err != nil {
			return &ValidationError{Name: "bundling_count", err: fmt.Errorf(`ent: validator failed for field "Contract.bundling_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := contract.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Contract.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentConfidence(); ok {
		if err := contract.PaymentConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "payment_confidence", err: fmt.Errorf(`ent: validator failed for field "Contract.payment_confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(contract.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerAddress(); ok {
		_spec.SetField(contract.FieldCustomerAddress, field.TypeString, value)
	}
	if _u.mutation.CustomerAddressCleared() {
		_spec.ClearField(contract.FieldCustomerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerNpwp(); ok {
		_spec.SetField(contract.FieldCustomerNpwp, field.TypeString, value)
	}
	if _u.mutation.CustomerNpwpCleared() {
		_spec.ClearField(contract.FieldCustomerNpwp, field.TypeString)
	}
	if value, ok := _u.mutation.RepresentativeName(); ok {
		_spec.SetField(contract.FieldRepresentativeName, field.TypeString, value)
	}
	if _u.mutation.RepresentativeNameCleared() {
		_spec.ClearField(contract.FieldRepresentativeName, field.TypeString)
	}
	if value, ok := _u.mutation.RepresentativeTitle(); ok {
		_spec.SetField(contract.FieldRepresentativeTitle, field.TypeString, value)
	}
	if _u.mutation.RepresentativeTitleCleared() {
		_spec.ClearField(contract.FieldRepresentativeTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ConnectivityCount(); ok {
		_spec.SetField(contract.FieldConnectivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConnectivityCount(); ok {
		_spec.AddField(contract.FieldConnectivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NonConnectivityCount(); ok {
		_spec.SetField(contract.FieldNonConnectivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNonConnectivityCount(); ok {
		_spec.AddField(contract.FieldNonConnectivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BundlingCount(); ok {
		_spec.SetField(contract.FieldBundlingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBundlingCount(); ok {
		_spec.AddField(contract.FieldBundlingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InstallationCost(); ok {
		_spec.SetField(contract.FieldInstallationCost, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubscriptionCost(); ok {
		_spec.SetField(contract.FieldSubscriptionCost, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(contract.FieldPaymentMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentDescription(); ok {
		_spec.SetField(contract.FieldPaymentDescription, field.TypeString, value)
	}
	if _u.mutation.PaymentDescriptionCleared() {
		_spec.ClearField(contract.FieldPaymentDescription, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentConfidence(); ok {
		_spec.SetField(contract.FieldPaymentConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(contract.FieldValidFrom, field.TypeTime, value)
	}
	if _u.mutation.ValidFromCleared() {
		_spec.ClearField(contract.FieldValidFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(contract.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(contract.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CustomerContactName(); ok {
		_spec.SetField(contract.FieldCustomerContactName, field.TypeString, value)
	}
	if _u.mutation.CustomerContactNameCleared() {
		_spec.ClearField(contract.FieldCustomerContactName, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerContactEmail(); ok {
		_spec.SetField(contract.FieldCustomerContactEmail, field.TypeString, value)
	}
	if _u.mutation.CustomerContactEmailCleared() {
		_spec.ClearField(contract.FieldCustomerContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerContactPhone(); ok {
		_spec.SetField(contract.FieldCustomerContactPhone, field.TypeString, value)
	}
	if _u.mutation.CustomerContactPhoneCleared() {
		_spec.ClearField(contract.FieldCustomerContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.TelkomContactName(); ok {
		_spec.SetField(contract.FieldTelkomContactName, field.TypeString, value)
	}
	if _u.mutation.TelkomContactNameCleared() {
		_spec.ClearField(contract.FieldTelkomContactName, field.TypeString)
	}
	if value, ok := _u.mutation.TelkomContactEmail(); ok {
		_spec.SetField(contract.FieldTelkomContactEmail, field.TypeString, value)
	}
	if _u.mutation.TelkomContactEmailCleared() {
		_spec.ClearField(contract.FieldTelkomContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.TelkomContactPhone(); ok {
		_spec.SetField(contract.FieldTelkomContactPhone, field.TypeString, value)
	}
	if _u.mutation.TelkomContactPhoneCleared() {
		_spec.ClearField(contract.FieldTelkomContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerminPaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTerminPaymentsIDs(); len(nodes) > 0 && !_u.mutation.TerminPaymentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TerminPaymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
