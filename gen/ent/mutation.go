// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/gen/ent/contract"
	"github.com/prasetyadi/contracts-tracker/gen/ent/contractfile"
	"github.com/prasetyadi/contracts-tracker/gen/ent/extractjob"
	"github.com/prasetyadi/contracts-tracker/gen/ent/predicate"
	"github.com/prasetyadi/contracts-tracker/gen/ent/terminpayment"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContract      = "Contract"
	TypeContractFile  = "ContractFile"
	TypeExtractJob    = "ExtractJob"
	TypeTerminPayment = "TerminPayment"
)

// ContractMutation represents an operation that mutates the Contract nodes in the graph.
type ContractMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	customer_name             *string
	customer_address          *string
	customer_npwp             *string
	representative_name       *string
	representative_title      *string
	connectivity_count        *int
	addconnectivity_count     *int
	non_connectivity_count    *int
	addnon_connectivity_count *int
	bundling_count            *int
	addbundling_count         *int
	installation_cost         *string
	subscription_cost         *string
	payment_method            *string
	payment_description       *string
	payment_confidence        *string
	valid_from                *time.Time
	valid_until               *time.Time
	customer_contact_name     *string
	customer_contact_email    *string
	customer_contact_phone    *string
	telkom_contact_name       *string
	telkom_contact_email      *string
	telkom_contact_phone      *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	termin_payments           map[uuid.UUID]struct{}
	removedtermin_payments    map[uuid.UUID]struct{}
	clearedtermin_payments    bool
	jobs                      map[uuid.UUID]struct{}
	removedjobs               map[uuid.UUID]struct{}
	clearedjobs               bool
	done                      bool
	oldValue                  func(context.Context) (*Contract, error)
	predicates                []predicate.Contract
}

var _ ent.Mutation = (*ContractMutation)(nil)

// contractOption allows management of the mutation configuration using functional options.
type contractOption func(*ContractMutation)

// newContractMutation creates new mutation for the Contract entity.
func newContractMutation(c config, op Op, opts ...contractOption) *ContractMutation {
	m := &ContractMutation{
		config:        c,
		op:            op,
		typ:           TypeContract,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractID sets the ID field of the mutation.
func withContractID(id uuid.UUID) contractOption {
	return func(m *ContractMutation) {
		var (
			err   error
			once  sync.Once
			value *Contract
		)
		m.oldValue = func(ctx context.Context) (*Contract, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contract.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContract sets the old Contract of the mutation.
func withContract(node *Contract) contractOption {
	return func(m *ContractMutation) {
		m.oldValue = func(context.Context) (*Contract, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contract entities.
func (m *ContractMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contract.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCustomerName sets the "customer_name" field.
func (m *ContractMutation) SetCustomerName(s string) {
	m.customer_name = &s
}

// CustomerName returns the value of the "customer_name" field in the mutation.
func (m *ContractMutation) CustomerName() (r string, exists bool) {
	v := m.customer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerName returns the old "customer_name" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCustomerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerName: %w", err)
	}
	return oldValue.CustomerName, nil
}

// ResetCustomerName resets all changes to the "customer_name" field.
func (m *ContractMutation) ResetCustomerName() {
	m.customer_name = nil
}

// SetCustomerAddress sets the "customer_address" field.
func (m *ContractMutation) SetCustomerAddress(s string) {
	m.customer_address = &s
}

// CustomerAddress returns the value of the "customer_address" field in the mutation.
func (m *ContractMutation) CustomerAddress() (r string, exists bool) {
	v := m.customer_address
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerAddress returns the old "customer_address" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCustomerAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerAddress: %w", err)
	}
	return oldValue.CustomerAddress, nil
}

// ClearCustomerAddress clears the value of the "customer_address" field.
func (m *ContractMutation) ClearCustomerAddress() {
	m.customer_address = nil
	m.clearedFields[contract.FieldCustomerAddress] = struct{}{}
}

// CustomerAddressCleared returns if the "customer_address" field was cleared in this mutation.
func (m *ContractMutation) CustomerAddressCleared() bool {
	_, ok := m.clearedFields[contract.FieldCustomerAddress]
	return ok
}

// ResetCustomerAddress resets all changes to the "customer_address" field.
func (m *ContractMutation) ResetCustomerAddress() {
	m.customer_address = nil
	delete(m.clearedFields, contract.FieldCustomerAddress)
}

// SetCustomerNpwp sets the "customer_npwp" field.
func (m *ContractMutation) SetCustomerNpwp(s string) {
	m.customer_npwp = &s
}

// CustomerNpwp returns the value of the "customer_npwp" field in the mutation.
func (m *ContractMutation) CustomerNpwp() (r string, exists bool) {
	v := m.customer_npwp
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerNpwp returns the old "customer_npwp" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCustomerNpwp(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerNpwp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerNpwp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerNpwp: %w", err)
	}
	return oldValue.CustomerNpwp, nil
}

// ClearCustomerNpwp clears the value of the "customer_npwp" field.
func (m *ContractMutation) ClearCustomerNpwp() {
	m.customer_npwp = nil
	m.clearedFields[contract.FieldCustomerNpwp] = struct{}{}
}

// CustomerNpwpCleared returns if the "customer_npwp" field was cleared in this mutation.
func (m *ContractMutation) CustomerNpwpCleared() bool {
	_, ok := m.clearedFields[contract.FieldCustomerNpwp]
	return ok
}

// ResetCustomerNpwp resets all changes to the "customer_npwp" field.
func (m *ContractMutation) ResetCustomerNpwp() {
	m.customer_npwp = nil
	delete(m.clearedFields, contract.FieldCustomerNpwp)
}

// SetRepresentativeName sets the "representative_name" field.
func (m *ContractMutation) SetRepresentativeName(s string) {
	m.representative_name = &s
}

// RepresentativeName returns the value of the "representative_name" field in the mutation.
func (m *ContractMutation) RepresentativeName() (r string, exists bool) {
	v := m.representative_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRepresentativeName returns the old "representative_name" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldRepresentativeName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepresentativeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepresentativeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepresentativeName: %w", err)
	}
	return oldValue.RepresentativeName, nil
}

// ClearRepresentativeName clears the value of the "representative_name" field.
func (m *ContractMutation) ClearRepresentativeName() {
	m.representative_name = nil
	m.clearedFields[contract.FieldRepresentativeName] = struct{}{}
}

// RepresentativeNameCleared returns if the "representative_name" field was cleared in this mutation.
func (m *ContractMutation) RepresentativeNameCleared() bool {
	_, ok := m.clearedFields[contract.FieldRepresentativeName]
	return ok
}

// ResetRepresentativeName resets all changes to the "representative_name" field.
func (m *ContractMutation) ResetRepresentativeName() {
	m.representative_name = nil
	delete(m.clearedFields, contract.FieldRepresentativeName)
}

// SetRepresentativeTitle sets the "representative_title" field.
func (m *ContractMutation) SetRepresentativeTitle(s string) {
	m.representative_title = &s
}

// RepresentativeTitle returns the value of the "representative_title" field in the mutation.
func (m *ContractMutation) RepresentativeTitle() (r string, exists bool) {
	v := m.representative_title
	if v == nil {
		return
	}
	return *v, true
}

// OldRepresentativeTitle returns the old "representative_title" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldRepresentativeTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepresentativeTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepresentativeTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepresentativeTitle: %w", err)
	}
	return oldValue.RepresentativeTitle, nil
}

// ClearRepresentativeTitle clears the value of the "representative_title" field.
func (m *ContractMutation) ClearRepresentativeTitle() {
	m.representative_title = nil
	m.clearedFields[contract.FieldRepresentativeTitle] = struct{}{}
}

// RepresentativeTitleCleared returns if the "representative_title" field was cleared in this mutation.
func (m *ContractMutation) RepresentativeTitleCleared() bool {
	_, ok := m.clearedFields[contract.FieldRepresentativeTitle]
	return ok
}

// ResetRepresentativeTitle resets all changes to the "representative_title" field.
func (m *ContractMutation) ResetRepresentativeTitle() {
	m.representative_title = nil
	delete(m.clearedFields, contract.FieldRepresentativeTitle)
}

// SetConnectivityCount sets the "connectivity_count" field.
func (m *ContractMutation) SetConnectivityCount(i int) {
	m.connectivity_count = &i
	m.addconnectivity_count = nil
}

// ConnectivityCount returns the value of the "connectivity_count" field in the mutation.
func (m *ContractMutation) ConnectivityCount() (r int, exists bool) {
	v := m.connectivity_count
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectivityCount returns the old "connectivity_count" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldConnectivityCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectivityCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectivityCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectivityCount: %w", err)
	}
	return oldValue.ConnectivityCount, nil
}

// AddConnectivityCount adds i to the "connectivity_count" field.
func (m *ContractMutation) AddConnectivityCount(i int) {
	if m.addconnectivity_count != nil {
		*m.addconnectivity_count += i
	} else {
		m.addconnectivity_count = &i
	}
}

// AddedConnectivityCount returns the value that was added to the "connectivity_count" field in this mutation.
func (m *ContractMutation) AddedConnectivityCount() (r int, exists bool) {
	v := m.addconnectivity_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetConnectivityCount resets all changes to the "connectivity_count" field.
func (m *ContractMutation) ResetConnectivityCount() {
	m.connectivity_count = nil
	m.addconnectivity_count = nil
}

// SetNonConnectivityCount sets the "non_connectivity_count" field.
func (m *ContractMutation) SetNonConnectivityCount(i int) {
	m.non_connectivity_count = &i
	m.addnon_connectivity_count = nil
}

// NonConnectivityCount returns the value of the "non_connectivity_count" field in the mutation.
func (m *ContractMutation) NonConnectivityCount() (r int, exists bool) {
	v := m.non_connectivity_count
	if v == nil {
		return
	}
	return *v, true
}

// OldNonConnectivityCount returns the old "non_connectivity_count" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldNonConnectivityCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNonConnectivityCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNonConnectivityCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNonConnectivityCount: %w", err)
	}
	return oldValue.NonConnectivityCount, nil
}

// AddNonConnectivityCount adds i to the "non_connectivity_count" field.
func (m *ContractMutation) AddNonConnectivityCount(i int) {
	if m.addnon_connectivity_count != nil {
		*m.addnon_connectivity_count += i
	} else {
		m.addnon_connectivity_count = &i
	}
}

// AddedNonConnectivityCount returns the value that was added to the "non_connectivity_count" field in this mutation.
func (m *ContractMutation) AddedNonConnectivityCount() (r int, exists bool) {
	v := m.addnon_connectivity_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetNonConnectivityCount resets all changes to the "non_connectivity_count" field.
func (m *ContractMutation) ResetNonConnectivityCount() {
	m.non_connectivity_count = nil
	m.addnon_connectivity_count = nil
}

// SetBundlingCount sets the "bundling_count" field.
func (m *ContractMutation) SetBundlingCount(i int) {
	m.bundling_count = &i
	m.addbundling_count = nil
}

// BundlingCount returns the value of the "bundling_count" field in the mutation.
func (m *ContractMutation) BundlingCount() (r int, exists bool) {
	v := m.bundling_count
	if v == nil {
		return
	}
	return *v, true
}

// OldBundlingCount returns the old "bundling_count" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldBundlingCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBundlingCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBundlingCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBundlingCount: %w", err)
	}
	return oldValue.BundlingCount, nil
}

// AddBundlingCount adds i to the "bundling_count" field.
func (m *ContractMutation) AddBundlingCount(i int) {
	if m.addbundling_count != nil {
		*m.addbundling_count += i
	} else {
		m.addbundling_count = &i
	}
}

// AddedBundlingCount returns the value that was added to the "bundling_count" field in this mutation.
func (m *ContractMutation) AddedBundlingCount() (r int, exists bool) {
	v := m.addbundling_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetBundlingCount resets all changes to the "bundling_count" field.
func (m *ContractMutation) ResetBundlingCount() {
	m.bundling_count = nil
	m.addbundling_count = nil
}

// SetInstallationCost sets the "installation_cost" field.
func (m *ContractMutation) SetInstallationCost(s string) {
	m.installation_cost = &s
}

// InstallationCost returns the value of the "installation_cost" field in the mutation.
func (m *ContractMutation) InstallationCost() (r string, exists bool) {
	v := m.installation_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldInstallationCost returns the old "installation_cost" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldInstallationCost(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstallationCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstallationCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstallationCost: %w", err)
	}
	return oldValue.InstallationCost, nil
}

// ResetInstallationCost resets all changes to the "installation_cost" field.
func (m *ContractMutation) ResetInstallationCost() {
	m.installation_cost = nil
}

// SetSubscriptionCost sets the "subscription_cost" field.
func (m *ContractMutation) SetSubscriptionCost(s string) {
	m.subscription_cost = &s
}

// SubscriptionCost returns the value of the "subscription_cost" field in the mutation.
func (m *ContractMutation) SubscriptionCost() (r string, exists bool) {
	v := m.subscription_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionCost returns the old "subscription_cost" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldSubscriptionCost(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionCost: %w", err)
	}
	return oldValue.SubscriptionCost, nil
}

// ResetSubscriptionCost resets all changes to the "subscription_cost" field.
func (m *ContractMutation) ResetSubscriptionCost() {
	m.subscription_cost = nil
}

// SetPaymentMethod sets the "payment_method" field.
func (m *ContractMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *ContractMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldPaymentMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *ContractMutation) ResetPaymentMethod() {
	m.payment_method = nil
}

// SetPaymentDescription sets the "payment_description" field.
func (m *ContractMutation) SetPaymentDescription(s string) {
	m.payment_description = &s
}

// PaymentDescription returns the value of the "payment_description" field in the mutation.
func (m *ContractMutation) PaymentDescription() (r string, exists bool) {
	v := m.payment_description
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentDescription returns the old "payment_description" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldPaymentDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentDescription: %w", err)
	}
	return oldValue.PaymentDescription, nil
}

// ClearPaymentDescription clears the value of the "payment_description" field.
func (m *ContractMutation) ClearPaymentDescription() {
	m.payment_description = nil
	m.clearedFields[contract.FieldPaymentDescription] = struct{}{}
}

// PaymentDescriptionCleared returns if the "payment_description" field was cleared in this mutation.
func (m *ContractMutation) PaymentDescriptionCleared() bool {
	_, ok := m.clearedFields[contract.FieldPaymentDescription]
	return ok
}

// ResetPaymentDescription resets all changes to the "payment_description" field.
func (m *ContractMutation) ResetPaymentDescription() {
	m.payment_description = nil
	delete(m.clearedFields, contract.FieldPaymentDescription)
}

// SetPaymentConfidence sets the "payment_confidence" field.
func (m *ContractMutation) SetPaymentConfidence(s string) {
	m.payment_confidence = &s
}

// PaymentConfidence returns the value of the "payment_confidence" field in the mutation.
func (m *ContractMutation) PaymentConfidence() (r string, exists bool) {
	v := m.payment_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentConfidence returns the old "payment_confidence" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldPaymentConfidence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentConfidence: %w", err)
	}
	return oldValue.PaymentConfidence, nil
}

// ResetPaymentConfidence resets all changes to the "payment_confidence" field.
func (m *ContractMutation) ResetPaymentConfidence() {
	m.payment_confidence = nil
}

// SetValidFrom sets the "valid_from" field.
func (m *ContractMutation) SetValidFrom(t time.Time) {
	m.valid_from = &t
}

// ValidFrom returns the value of the "valid_from" field in the mutation.
func (m *ContractMutation) ValidFrom() (r time.Time, exists bool) {
	v := m.valid_from
	if v == nil {
		return
	}
	return *v, true
}

// OldValidFrom returns the old "valid_from" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldValidFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidFrom: %w", err)
	}
	return oldValue.ValidFrom, nil
}

// ClearValidFrom clears the value of the "valid_from" field.
func (m *ContractMutation) ClearValidFrom() {
	m.valid_from = nil
	m.clearedFields[contract.FieldValidFrom] = struct{}{}
}

// ValidFromCleared returns if the "valid_from" field was cleared in this mutation.
func (m *ContractMutation) ValidFromCleared() bool {
	_, ok := m.clearedFields[contract.FieldValidFrom]
	return ok
}

// ResetValidFrom resets all changes to the "valid_from" field.
func (m *ContractMutation) ResetValidFrom() {
	m.valid_from = nil
	delete(m.clearedFields, contract.FieldValidFrom)
}

// SetValidUntil sets the "valid_until" field.
func (m *ContractMutation) SetValidUntil(t time.Time) {
	m.valid_until = &t
}

// ValidUntil returns the value of the "valid_until" field in the mutation.
func (m *ContractMutation) ValidUntil() (r time.Time, exists bool) {
	v := m.valid_until
	if v == nil {
		return
	}
	return *v, true
}

// OldValidUntil returns the old "valid_until" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldValidUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidUntil: %w", err)
	}
	return oldValue.ValidUntil, nil
}

// ClearValidUntil clears the value of the "valid_until" field.
func (m *ContractMutation) ClearValidUntil() {
	m.valid_until = nil
	m.clearedFields[contract.FieldValidUntil] = struct{}{}
}

// ValidUntilCleared returns if the "valid_until" field was cleared in this mutation.
func (m *ContractMutation) ValidUntilCleared() bool {
	_, ok := m.clearedFields[contract.FieldValidUntil]
	return ok
}

// ResetValidUntil resets all changes to the "valid_until" field.
func (m *ContractMutation) ResetValidUntil() {
	m.valid_until = nil
	delete(m.clearedFields, contract.FieldValidUntil)
}

// SetCustomerContactName sets the "customer_contact_name" field.
func (m *ContractMutation) SetCustomerContactName(s string) {
	m.customer_contact_name = &s
}

// CustomerContactName returns the value of the "customer_contact_name" field in the mutation.
func (m *ContractMutation) CustomerContactName() (r string, exists bool) {
	v := m.customer_contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerContactName returns the old "customer_contact_name" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCustomerContactName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerContactName: %w", err)
	}
	return oldValue.CustomerContactName, nil
}

// ClearCustomerContactName clears the value of the "customer_contact_name" field.
func (m *ContractMutation) ClearCustomerContactName() {
	m.customer_contact_name = nil
	m.clearedFields[contract.FieldCustomerContactName] = struct{}{}
}

// CustomerContactNameCleared returns if the "customer_contact_name" field was cleared in this mutation.
func (m *ContractMutation) CustomerContactNameCleared() bool {
	_, ok := m.clearedFields[contract.FieldCustomerContactName]
	return ok
}

// ResetCustomerContactName resets all changes to the "customer_contact_name" field.
func (m *ContractMutation) ResetCustomerContactName() {
	m.customer_contact_name = nil
	delete(m.clearedFields, contract.FieldCustomerContactName)
}

// SetCustomerContactEmail sets the "customer_contact_email" field.
func (m *ContractMutation) SetCustomerContactEmail(s string) {
	m.customer_contact_email = &s
}

// CustomerContactEmail returns the value of the "customer_contact_email" field in the mutation.
func (m *ContractMutation) CustomerContactEmail() (r string, exists bool) {
	v := m.customer_contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerContactEmail returns the old "customer_contact_email" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCustomerContactEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerContactEmail: %w", err)
	}
	return oldValue.CustomerContactEmail, nil
}

// ClearCustomerContactEmail clears the value of the "customer_contact_email" field.
func (m *ContractMutation) ClearCustomerContactEmail() {
	m.customer_contact_email = nil
	m.clearedFields[contract.FieldCustomerContactEmail] = struct{}{}
}

// CustomerContactEmailCleared returns if the "customer_contact_email" field was cleared in this mutation.
func (m *ContractMutation) CustomerContactEmailCleared() bool {
	_, ok := m.clearedFields[contract.FieldCustomerContactEmail]
	return ok
}

// ResetCustomerContactEmail resets all changes to the "customer_contact_email" field.
func (m *ContractMutation) ResetCustomerContactEmail() {
	m.customer_contact_email = nil
	delete(m.clearedFields, contract.FieldCustomerContactEmail)
}

// SetCustomerContactPhone sets the "customer_contact_phone" field.
func (m *ContractMutation) SetCustomerContactPhone(s string) {
	m.customer_contact_phone = &s
}

// CustomerContactPhone returns the value of the "customer_contact_phone" field in the mutation.
func (m *ContractMutation) CustomerContactPhone() (r string, exists bool) {
	v := m.customer_contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerContactPhone returns the old "customer_contact_phone" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCustomerContactPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerContactPhone: %w", err)
	}
	return oldValue.CustomerContactPhone, nil
}

// ClearCustomerContactPhone clears the value of the "customer_contact_phone" field.
func (m *ContractMutation) ClearCustomerContactPhone() {
	m.customer_contact_phone = nil
	m.clearedFields[contract.FieldCustomerContactPhone] = struct{}{}
}

// CustomerContactPhoneCleared returns if the "customer_contact_phone" field was cleared in this mutation.
func (m *ContractMutation) CustomerContactPhoneCleared() bool {
	_, ok := m.clearedFields[contract.FieldCustomerContactPhone]
	return ok
}

// ResetCustomerContactPhone resets all changes to the "customer_contact_phone" field.
func (m *ContractMutation) ResetCustomerContactPhone() {
	m.customer_contact_phone = nil
	delete(m.clearedFields, contract.FieldCustomerContactPhone)
}

// SetTelkomContactName sets the "telkom_contact_name" field.
func (m *ContractMutation) SetTelkomContactName(s string) {
	m.telkom_contact_name = &s
}

// TelkomContactName returns the value of the "telkom_contact_name" field in the mutation.
func (m *ContractMutation) TelkomContactName() (r string, exists bool) {
	v := m.telkom_contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTelkomContactName returns the old "telkom_contact_name" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldTelkomContactName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelkomContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelkomContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelkomContactName: %w", err)
	}
	return oldValue.TelkomContactName, nil
}

// ClearTelkomContactName clears the value of the "telkom_contact_name" field.
func (m *ContractMutation) ClearTelkomContactName() {
	m.telkom_contact_name = nil
	m.clearedFields[contract.FieldTelkomContactName] = struct{}{}
}

// TelkomContactNameCleared returns if the "telkom_contact_name" field was cleared in this mutation.
func (m *ContractMutation) TelkomContactNameCleared() bool {
	_, ok := m.clearedFields[contract.FieldTelkomContactName]
	return ok
}

// ResetTelkomContactName resets all changes to the "telkom_contact_name" field.
func (m *ContractMutation) ResetTelkomContactName() {
	m.telkom_contact_name = nil
	delete(m.clearedFields, contract.FieldTelkomContactName)
}

// SetTelkomContactEmail sets the "telkom_contact_email" field.
func (m *ContractMutation) SetTelkomContactEmail(s string) {
	m.telkom_contact_email = &s
}

// TelkomContactEmail returns the value of the "telkom_contact_email" field in the mutation.
func (m *ContractMutation) TelkomContactEmail() (r string, exists bool) {
	v := m.telkom_contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldTelkomContactEmail returns the old "telkom_contact_email" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldTelkomContactEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelkomContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelkomContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelkomContactEmail: %w", err)
	}
	return oldValue.TelkomContactEmail, nil
}

// ClearTelkomContactEmail clears the value of the "telkom_contact_email" field.
func (m *ContractMutation) ClearTelkomContactEmail() {
	m.telkom_contact_email = nil
	m.clearedFields[contract.FieldTelkomContactEmail] = struct{}{}
}

// TelkomContactEmailCleared returns if the "telkom_contact_email" field was cleared in this mutation.
func (m *ContractMutation) TelkomContactEmailCleared() bool {
	_, ok := m.clearedFields[contract.FieldTelkomContactEmail]
	return ok
}

// ResetTelkomContactEmail resets all changes to the "telkom_contact_email" field.
func (m *ContractMutation) ResetTelkomContactEmail() {
	m.telkom_contact_email = nil
	delete(m.clearedFields, contract.FieldTelkomContactEmail)
}

// SetTelkomContactPhone sets the "telkom_contact_phone" field.
func (m *ContractMutation) SetTelkomContactPhone(s string) {
	m.telkom_contact_phone = &s
}

// TelkomContactPhone returns the value of the "telkom_contact_phone" field in the mutation.
func (m *ContractMutation) TelkomContactPhone() (r string, exists bool) {
	v := m.telkom_contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldTelkomContactPhone returns the old "telkom_contact_phone" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldTelkomContactPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelkomContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelkomContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelkomContactPhone: %w", err)
	}
	return oldValue.TelkomContactPhone, nil
}

// ClearTelkomContactPhone clears the value of the "telkom_contact_phone" field.
func (m *ContractMutation) ClearTelkomContactPhone() {
	m.telkom_contact_phone = nil
	m.clearedFields[contract.FieldTelkomContactPhone] = struct{}{}
}

// TelkomContactPhoneCleared returns if the "telkom_contact_phone" field was cleared in this mutation.
func (m *ContractMutation) TelkomContactPhoneCleared() bool {
	_, ok := m.clearedFields[contract.FieldTelkomContactPhone]
	return ok
}

// ResetTelkomContactPhone resets all changes to the "telkom_contact_phone" field.
func (m *ContractMutation) ResetTelkomContactPhone() {
	m.telkom_contact_phone = nil
	delete(m.clearedFields, contract.FieldTelkomContactPhone)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContractMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContractMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContractMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTerminPaymentIDs adds the "termin_payments" edge to the TerminPayment entity by ids.
func (m *ContractMutation) AddTerminPaymentIDs(ids ...uuid.UUID) {
	if m.termin_payments == nil {
		m.termin_payments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.termin_payments[ids[i]] = struct{}{}
	}
}

// ClearTerminPayments clears the "termin_payments" edge to the TerminPayment entity.
func (m *ContractMutation) ClearTerminPayments() {
	m.clearedtermin_payments = true
}

// TerminPaymentsCleared reports if the "termin_payments" edge to the TerminPayment entity was cleared.
func (m *ContractMutation) TerminPaymentsCleared() bool {
	return m.clearedtermin_payments
}

// RemoveTerminPaymentIDs removes the "termin_payments" edge to the TerminPayment entity by IDs.
func (m *ContractMutation) RemoveTerminPaymentIDs(ids ...uuid.UUID) {
	if m.removedtermin_payments == nil {
		m.removedtermin_payments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.termin_payments, ids[i])
		m.removedtermin_payments[ids[i]] = struct{}{}
	}
}

// RemovedTerminPayments returns the removed IDs of the "termin_payments" edge to the TerminPayment entity.
func (m *ContractMutation) RemovedTerminPaymentsIDs() (ids []uuid.UUID) {
	for id := range m.removedtermin_payments {
		ids = append(ids, id)
	}
	return
}

// TerminPaymentsIDs returns the "termin_payments" edge IDs in the mutation.
func (m *ContractMutation) TerminPaymentsIDs() (ids []uuid.UUID) {
	for id := range m.termin_payments {
		ids = append(ids, id)
	}
	return
}

// ResetTerminPayments resets all changes to the "termin_payments" edge.
func (m *ContractMutation) ResetTerminPayments() {
	m.termin_payments = nil
	m.clearedtermin_payments = false
	m.removedtermin_payments = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *ContractMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *ContractMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *ContractMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *ContractMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *ContractMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ContractMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ContractMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ContractMutation builder.
func (m *ContractMutation) Where(ps ...predicate.Contract) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contract, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contract).
func (m *ContractMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.customer_name != nil {
		fields = append(fields, contract.FieldCustomerName)
	}
	if m.customer_address != nil {
		fields = append(fields, contract.FieldCustomerAddress)
	}
	if m.customer_npwp != nil {
		fields = append(fields, contract.FieldCustomerNpwp)
	}
	if m.representative_name != nil {
		fields = append(fields, contract.FieldRepresentativeName)
	}
	if m.representative_title != nil {
		fields = append(fields, contract.FieldRepresentativeTitle)
	}
	if m.connectivity_count != nil {
		fields = append(fields, contract.FieldConnectivityCount)
	}
	if m.non_connectivity_count != nil {
		fields = append(fields, contract.FieldNonConnectivityCount)
	}
	if m.bundling_count != nil {
		fields = append(fields, contract.FieldBundlingCount)
	}
	if m.installation_cost != nil {
		fields = append(fields, contract.FieldInstallationCost)
	}
	if m.subscription_cost != nil {
		fields = append(fields, contract.FieldSubscriptionCost)
	}
	if m.payment_method != nil {
		fields = append(fields, contract.FieldPaymentMethod)
	}
	if m.payment_description != nil {
		fields = append(fields, contract.FieldPaymentDescription)
	}
	if m.payment_confidence != nil {
		fields = append(fields, contract.FieldPaymentConfidence)
	}
	if m.valid_from != nil {
		fields = append(fields, contract.FieldValidFrom)
	}
	if m.valid_until != nil {
		fields = append(fields, contract.FieldValidUntil)
	}
	if m.customer_contact_name != nil {
		fields = append(fields, contract.FieldCustomerContactName)
	}
	if m.customer_contact_email != nil {
		fields = append(fields, contract.FieldCustomerContactEmail)
	}
	if m.customer_contact_phone != nil {
		fields = append(fields, contract.FieldCustomerContactPhone)
	}
	if m.telkom_contact_name != nil {
		fields = append(fields, contract.FieldTelkomContactName)
	}
	if m.telkom_contact_email != nil {
		fields = append(fields, contract.FieldTelkomContactEmail)
	}
	if m.telkom_contact_phone != nil {
		fields = append(fields, contract.FieldTelkomContactPhone)
	}
	if m.created_at != nil {
		fields = append(fields, contract.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contract.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldCustomerName:
		return m.CustomerName()
	case contract.FieldCustomerAddress:
		return m.CustomerAddress()
	case contract.FieldCustomerNpwp:
		return m.CustomerNpwp()
	case contract.FieldRepresentativeName:
		return m.RepresentativeName()
	case contract.FieldRepresentativeTitle:
		return m.RepresentativeTitle()
	case contract.FieldConnectivityCount:
		return m.ConnectivityCount()
	case contract.FieldNonConnectivityCount:
		return m.NonConnectivityCount()
	case contract.FieldBundlingCount:
		return m.BundlingCount()
	case contract.FieldInstallationCost:
		return m.InstallationCost()
	case contract.FieldSubscriptionCost:
		return m.SubscriptionCost()
	case contract.FieldPaymentMethod:
		return m.PaymentMethod()
	case contract.FieldPaymentDescription:
		return m.PaymentDescription()
	case contract.FieldPaymentConfidence:
		return m.PaymentConfidence()
	case contract.FieldValidFrom:
		return m.ValidFrom()
	case contract.FieldValidUntil:
		return m.ValidUntil()
	case contract.FieldCustomerContactName:
		return m.CustomerContactName()
	case contract.FieldCustomerContactEmail:
		return m.CustomerContactEmail()
	case contract.FieldCustomerContactPhone:
		return m.CustomerContactPhone()
	case contract.FieldTelkomContactName:
		return m.TelkomContactName()
	case contract.FieldTelkomContactEmail:
		return m.TelkomContactEmail()
	case contract.FieldTelkomContactPhone:
		return m.TelkomContactPhone()
	case contract.FieldCreatedAt:
		return m.CreatedAt()
	case contract.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contract.FieldCustomerName:
		return m.OldCustomerName(ctx)
	case contract.FieldCustomerAddress:
		return m.OldCustomerAddress(ctx)
	case contract.FieldCustomerNpwp:
		return m.OldCustomerNpwp(ctx)
	case contract.FieldRepresentativeName:
		return m.OldRepresentativeName(ctx)
	case contract.FieldRepresentativeTitle:
		return m.OldRepresentativeTitle(ctx)
	case contract.FieldConnectivityCount:
		return m.OldConnectivityCount(ctx)
	case contract.FieldNonConnectivityCount:
		return m.OldNonConnectivityCount(ctx)
	case contract.FieldBundlingCount:
		return m.OldBundlingCount(ctx)
	case contract.FieldInstallationCost:
		return m.OldInstallationCost(ctx)
	case contract.FieldSubscriptionCost:
		return m.OldSubscriptionCost(ctx)
	case contract.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case contract.FieldPaymentDescription:
		return m.OldPaymentDescription(ctx)
	case contract.FieldPaymentConfidence:
		return m.OldPaymentConfidence(ctx)
	case contract.FieldValidFrom:
		return m.OldValidFrom(ctx)
	case contract.FieldValidUntil:
		return m.OldValidUntil(ctx)
	case contract.FieldCustomerContactName:
		return m.OldCustomerContactName(ctx)
	case contract.FieldCustomerContactEmail:
		return m.OldCustomerContactEmail(ctx)
	case contract.FieldCustomerContactPhone:
		return m.OldCustomerContactPhone(ctx)
	case contract.FieldTelkomContactName:
		return m.OldTelkomContactName(ctx)
	case contract.FieldTelkomContactEmail:
		return m.OldTelkomContactEmail(ctx)
	case contract.FieldTelkomContactPhone:
		return m.OldTelkomContactPhone(ctx)
	case contract.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contract.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contract field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contract.FieldCustomerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerName(v)
		return nil
	case contract.FieldCustomerAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerAddress(v)
		return nil
	case contract.FieldCustomerNpwp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerNpwp(v)
		return nil
	case contract.FieldRepresentativeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepresentativeName(v)
		return nil
	case contract.FieldRepresentativeTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepresentativeTitle(v)
		return nil
	case contract.FieldConnectivityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectivityCount(v)
		return nil
	case contract.FieldNonConnectivityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNonConnectivityCount(v)
		return nil
	case contract.FieldBundlingCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBundlingCount(v)
		return nil
	case contract.FieldInstallationCost:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstallationCost(v)
		return nil
	case contract.FieldSubscriptionCost:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionCost(v)
		return nil
	case contract.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case contract.FieldPaymentDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentDescription(v)
		return nil
	case contract.FieldPaymentConfidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentConfidence(v)
		return nil
	case contract.FieldValidFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidFrom(v)
		return nil
	case contract.FieldValidUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidUntil(v)
		return nil
	case contract.FieldCustomerContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerContactName(v)
		return nil
	case contract.FieldCustomerContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerContactEmail(v)
		return nil
	case contract.FieldCustomerContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerContactPhone(v)
		return nil
	case contract.FieldTelkomContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelkomContactName(v)
		return nil
	case contract.FieldTelkomContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelkomContactEmail(v)
		return nil
	case contract.FieldTelkomContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelkomContactPhone(v)
		return nil
	case contract.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contract.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractMutation) AddedFields() []string {
	var fields []string
	if m.addconnectivity_count != nil {
		fields = append(fields, contract.FieldConnectivityCount)
	}
	if m.addnon_connectivity_count != nil {
		fields = append(fields, contract.FieldNonConnectivityCount)
	}
	if m.addbundling_count != nil {
		fields = append(fields, contract.FieldBundlingCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldConnectivityCount:
		return m.AddedConnectivityCount()
	case contract.FieldNonConnectivityCount:
		return m.AddedNonConnectivityCount()
	case contract.FieldBundlingCount:
		return m.AddedBundlingCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contract.FieldConnectivityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConnectivityCount(v)
		return nil
	case contract.FieldNonConnectivityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNonConnectivityCount(v)
		return nil
	case contract.FieldBundlingCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBundlingCount(v)
		return nil
	}
	return fmt.Errorf("unknown Contract numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contract.FieldCustomerAddress) {
		fields = append(fields, contract.FieldCustomerAddress)
	}
	if m.FieldCleared(contract.FieldCustomerNpwp) {
		fields = append(fields, contract.FieldCustomerNpwp)
	}
	if m.FieldCleared(contract.FieldRepresentativeName) {
		fields = append(fields, contract.FieldRepresentativeName)
	}
	if m.FieldCleared(contract.FieldRepresentativeTitle) {
		fields = append(fields, contract.FieldRepresentativeTitle)
	}
	if m.FieldCleared(contract.FieldPaymentDescription) {
		fields = append(fields, contract.FieldPaymentDescription)
	}
	if m.FieldCleared(contract.FieldValidFrom) {
		fields = append(fields, contract.FieldValidFrom)
	}
	if m.FieldCleared(contract.FieldValidUntil) {
		fields = append(fields, contract.FieldValidUntil)
	}
	if m.FieldCleared(contract.FieldCustomerContactName) {
		fields = append(fields, contract.FieldCustomerContactName)
	}
	if m.FieldCleared(contract.FieldCustomerContactEmail) {
		fields = append(fields, contract.FieldCustomerContactEmail)
	}
	if m.FieldCleared(contract.FieldCustomerContactPhone) {
		fields = append(fields, contract.FieldCustomerContactPhone)
	}
	if m.FieldCleared(contract.FieldTelkomContactName) {
		fields = append(fields, contract.FieldTelkomContactName)
	}
	if m.FieldCleared(contract.FieldTelkomContactEmail) {
		fields = append(fields, contract.FieldTelkomContactEmail)
	}
	if m.FieldCleared(contract.FieldTelkomContactPhone) {
		fields = append(fields, contract.FieldTelkomContactPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractMutation) ClearField(name string) error {
	switch name {
	case contract.FieldCustomerAddress:
		m.ClearCustomerAddress()
		return nil
	case contract.FieldCustomerNpwp:
		m.ClearCustomerNpwp()
		return nil
	case contract.FieldRepresentativeName:
		m.ClearRepresentativeName()
		return nil
	case contract.FieldRepresentativeTitle:
		m.ClearRepresentativeTitle()
		return nil
	case contract.FieldPaymentDescription:
		m.ClearPaymentDescription()
		return nil
	case contract.FieldValidFrom:
		m.ClearValidFrom()
		return nil
	case contract.FieldValidUntil:
		m.ClearValidUntil()
		return nil
	case contract.FieldCustomerContactName:
		m.ClearCustomerContactName()
		return nil
	case contract.FieldCustomerContactEmail:
		m.ClearCustomerContactEmail()
		return nil
	case contract.FieldCustomerContactPhone:
		m.ClearCustomerContactPhone()
		return nil
	case contract.FieldTelkomContactName:
		m.ClearTelkomContactName()
		return nil
	case contract.FieldTelkomContactEmail:
		m.ClearTelkomContactEmail()
		return nil
	case contract.FieldTelkomContactPhone:
		m.ClearTelkomContactPhone()
		return nil
	}
	return fmt.Errorf("unknown Contract nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractMutation) ResetField(name string) error {
	switch name {
	case contract.FieldCustomerName:
		m.ResetCustomerName()
		return nil
	case contract.FieldCustomerAddress:
		m.ResetCustomerAddress()
		return nil
	case contract.FieldCustomerNpwp:
		m.ResetCustomerNpwp()
		return nil
	case contract.FieldRepresentativeName:
		m.ResetRepresentativeName()
		return nil
	case contract.FieldRepresentativeTitle:
		m.ResetRepresentativeTitle()
		return nil
	case contract.FieldConnectivityCount:
		m.ResetConnectivityCount()
		return nil
	case contract.FieldNonConnectivityCount:
		m.ResetNonConnectivityCount()
		return nil
	case contract.FieldBundlingCount:
		m.ResetBundlingCount()
		return nil
	case contract.FieldInstallationCost:
		m.ResetInstallationCost()
		return nil
	case contract.FieldSubscriptionCost:
		m.ResetSubscriptionCost()
		return nil
	case contract.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case contract.FieldPaymentDescription:
		m.ResetPaymentDescription()
		return nil
	case contract.FieldPaymentConfidence:
		m.ResetPaymentConfidence()
		return nil
	case contract.FieldValidFrom:
		m.ResetValidFrom()
		return nil
	case contract.FieldValidUntil:
		m.ResetValidUntil()
		return nil
	case contract.FieldCustomerContactName:
		m.ResetCustomerContactName()
		return nil
	case contract.FieldCustomerContactEmail:
		m.ResetCustomerContactEmail()
		return nil
	case contract.FieldCustomerContactPhone:
		m.ResetCustomerContactPhone()
		return nil
	case contract.FieldTelkomContactName:
		m.ResetTelkomContactName()
		return nil
	case contract.FieldTelkomContactEmail:
		m.ResetTelkomContactEmail()
		return nil
	case contract.FieldTelkomContactPhone:
		m.ResetTelkomContactPhone()
		return nil
	case contract.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contract.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.termin_payments != nil {
		edges = append(edges, contract.EdgeTerminPayments)
	}
	if m.jobs != nil {
		edges = append(edges, contract.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeTerminPayments:
		ids := make([]ent.Value, 0, len(m.termin_payments))
		for id := range m.termin_payments {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtermin_payments != nil {
		edges = append(edges, contract.EdgeTerminPayments)
	}
	if m.removedjobs != nil {
		edges = append(edges, contract.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeTerminPayments:
		ids := make([]ent.Value, 0, len(m.removedtermin_payments))
		for id := range m.removedtermin_payments {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtermin_payments {
		edges = append(edges, contract.EdgeTerminPayments)
	}
	if m.clearedjobs {
		edges = append(edges, contract.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractMutation) EdgeCleared(name string) bool {
	switch name {
	case contract.EdgeTerminPayments:
		return m.clearedtermin_payments
	case contract.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Contract unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractMutation) ResetEdge(name string) error {
	switch name {
	case contract.EdgeTerminPayments:
		m.ResetTerminPayments()
		return nil
	case contract.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Contract edge %s", name)
}

// ContractFileMutation represents an operation that mutates the ContractFile nodes in the graph.
type ContractFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	filename      *string
	file_path     *string
	page_count    *int
	addpage_count *int
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*ContractFile, error)
	predicates    []predicate.ContractFile
}

var _ ent.Mutation = (*ContractFileMutation)(nil)

// contractfileOption allows management of the mutation configuration using functional options.
type contractfileOption func(*ContractFileMutation)

// newContractFileMutation creates new mutation for the ContractFile entity.
func newContractFileMutation(c config, op Op, opts ...contractfileOption) *ContractFileMutation {
	m := &ContractFileMutation{
		config:        c,
		op:            op,
		typ:           TypeContractFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractFileID sets the ID field of the mutation.
func withContractFileID(id uuid.UUID) contractfileOption {
	return func(m *ContractFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ContractFile
		)
		m.oldValue = func(ctx context.Context) (*ContractFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContractFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContractFile sets the old ContractFile of the mutation.
func withContractFile(node *ContractFile) contractfileOption {
	return func(m *ContractFileMutation) {
		m.oldValue = func(context.Context) (*ContractFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContractFile entities.
func (m *ContractFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContractFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *ContractFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ContractFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ContractFile entity.
// If the ContractFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ContractFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFilePath sets the "file_path" field.
func (m *ContractFileMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *ContractFileMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the ContractFile entity.
// If the ContractFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractFileMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *ContractFileMutation) ResetFilePath() {
	m.file_path = nil
}

// SetPageCount sets the "page_count" field.
func (m *ContractFileMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *ContractFileMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the ContractFile entity.
// If the ContractFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractFileMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *ContractFileMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *ContractFileMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *ContractFileMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ContractFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ContractFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the ContractFile entity.
// If the ContractFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ContractFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *ContractFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *ContractFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *ContractFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *ContractFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *ContractFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ContractFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ContractFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ContractFileMutation builder.
func (m *ContractFileMutation) Where(ps ...predicate.ContractFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContractFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContractFile).
func (m *ContractFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractFileMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.filename != nil {
		fields = append(fields, contractfile.FieldFilename)
	}
	if m.file_path != nil {
		fields = append(fields, contractfile.FieldFilePath)
	}
	if m.page_count != nil {
		fields = append(fields, contractfile.FieldPageCount)
	}
	if m.uploaded_at != nil {
		fields = append(fields, contractfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contractfile.FieldFilename:
		return m.Filename()
	case contractfile.FieldFilePath:
		return m.FilePath()
	case contractfile.FieldPageCount:
		return m.PageCount()
	case contractfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contractfile.FieldFilename:
		return m.OldFilename(ctx)
	case contractfile.FieldFilePath:
		return m.OldFilePath(ctx)
	case contractfile.FieldPageCount:
		return m.OldPageCount(ctx)
	case contractfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContractFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contractfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case contractfile.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case contractfile.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case contractfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContractFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractFileMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, contractfile.FieldPageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contractfile.FieldPageCount:
		return m.AddedPageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contractfile.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	}
	return fmt.Errorf("unknown ContractFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ContractFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractFileMutation) ResetField(name string) error {
	switch name {
	case contractfile.FieldFilename:
		m.ResetFilename()
		return nil
	case contractfile.FieldFilePath:
		m.ResetFilePath()
		return nil
	case contractfile.FieldPageCount:
		m.ResetPageCount()
		return nil
	case contractfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown ContractFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, contractfile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contractfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, contractfile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contractfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, contractfile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractFileMutation) EdgeCleared(name string) bool {
	switch name {
	case contractfile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ContractFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractFileMutation) ResetEdge(name string) error {
	switch name {
	case contractfile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown ContractFile edge %s", name)
}

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	format               *string
	started_at           *time.Time
	finished_at          *time.Time
	status               *string
	error_message        *string
	needs_review         *bool
	page_tokens          *json.RawMessage
	appendpage_tokens    json.RawMessage
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	ocr_text             *string
	clearedFields        map[string]struct{}
	file                 *uuid.UUID
	clearedfile          bool
	contract             *uuid.UUID
	clearedcontract      bool
	done                 bool
	oldValue             func(context.Context) (*ExtractJob, error)
	predicates           []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ExtractJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ExtractJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ExtractJobMutation) ResetFileID() {
	m.file = nil
}

// SetContractID sets the "contract_id" field.
func (m *ExtractJobMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *ExtractJobMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldContractID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ClearContractID clears the value of the "contract_id" field.
func (m *ExtractJobMutation) ClearContractID() {
	m.contract = nil
	m.clearedFields[extractjob.FieldContractID] = struct{}{}
}

// ContractIDCleared returns if the "contract_id" field was cleared in this mutation.
func (m *ExtractJobMutation) ContractIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldContractID]
	return ok
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *ExtractJobMutation) ResetContractID() {
	m.contract = nil
	delete(m.clearedFields, extractjob.FieldContractID)
}

// SetFormat sets the "format" field.
func (m *ExtractJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ExtractJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[extractjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ExtractJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, extractjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetPageTokens sets the "page_tokens" field.
func (m *ExtractJobMutation) SetPageTokens(jm json.RawMessage) {
	m.page_tokens = &jm
	m.appendpage_tokens = nil
}

// PageTokens returns the value of the "page_tokens" field in the mutation.
func (m *ExtractJobMutation) PageTokens() (r json.RawMessage, exists bool) {
	v := m.page_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPageTokens returns the old "page_tokens" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldPageTokens(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageTokens: %w", err)
	}
	return oldValue.PageTokens, nil
}

// AppendPageTokens adds jm to the "page_tokens" field.
func (m *ExtractJobMutation) AppendPageTokens(jm json.RawMessage) {
	m.appendpage_tokens = append(m.appendpage_tokens, jm...)
}

// AppendedPageTokens returns the list of values that were appended to the "page_tokens" field in this mutation.
func (m *ExtractJobMutation) AppendedPageTokens() (json.RawMessage, bool) {
	if len(m.appendpage_tokens) == 0 {
		return nil, false
	}
	return m.appendpage_tokens, true
}

// ClearPageTokens clears the value of the "page_tokens" field.
func (m *ExtractJobMutation) ClearPageTokens() {
	m.page_tokens = nil
	m.appendpage_tokens = nil
	m.clearedFields[extractjob.FieldPageTokens] = struct{}{}
}

// PageTokensCleared returns if the "page_tokens" field was cleared in this mutation.
func (m *ExtractJobMutation) PageTokensCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldPageTokens]
	return ok
}

// ResetPageTokens resets all changes to the "page_tokens" field.
func (m *ExtractJobMutation) ResetPageTokens() {
	m.page_tokens = nil
	m.appendpage_tokens = nil
	delete(m.clearedFields, extractjob.FieldPageTokens)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ExtractJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ExtractJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ExtractJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ExtractJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ExtractJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[extractjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ExtractJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, extractjob.FieldExtractedJSON)
}

// SetOcrText sets the "ocr_text" field.
func (m *ExtractJobMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ExtractJobMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ExtractJobMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[extractjob.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ExtractJobMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ExtractJobMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, extractjob.FieldOcrText)
}

// ClearFile clears the "file" edge to the ContractFile entity.
func (m *ExtractJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extractjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the ContractFile entity was cleared.
func (m *ExtractJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *ExtractJobMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[extractjob.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *ExtractJobMutation) ContractCleared() bool {
	return m.ContractIDCleared() || m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *ExtractJobMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.file != nil {
		fields = append(fields, extractjob.FieldFileID)
	}
	if m.contract != nil {
		fields = append(fields, extractjob.FieldContractID)
	}
	if m.format != nil {
		fields = append(fields, extractjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.needs_review != nil {
		fields = append(fields, extractjob.FieldNeedsReview)
	}
	if m.page_tokens != nil {
		fields = append(fields, extractjob.FieldPageTokens)
	}
	if m.extracted_json != nil {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.ocr_text != nil {
		fields = append(fields, extractjob.FieldOcrText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldFileID:
		return m.FileID()
	case extractjob.FieldContractID:
		return m.ContractID()
	case extractjob.FieldFormat:
		return m.Format()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldNeedsReview:
		return m.NeedsReview()
	case extractjob.FieldPageTokens:
		return m.PageTokens()
	case extractjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case extractjob.FieldOcrText:
		return m.OcrText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldFileID:
		return m.OldFileID(ctx)
	case extractjob.FieldContractID:
		return m.OldContractID(ctx)
	case extractjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extractjob.FieldPageTokens:
		return m.OldPageTokens(ctx)
	case extractjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case extractjob.FieldOcrText:
		return m.OldOcrText(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case extractjob.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case extractjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extractjob.FieldPageTokens:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageTokens(v)
		return nil
	case extractjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case extractjob.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldContractID) {
		fields = append(fields, extractjob.FieldContractID)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldStatus) {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldPageTokens) {
		fields = append(fields, extractjob.FieldPageTokens)
	}
	if m.FieldCleared(extractjob.FieldExtractedJSON) {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.FieldCleared(extractjob.FieldOcrText) {
		fields = append(fields, extractjob.FieldOcrText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldContractID:
		m.ClearContractID()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ClearStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldPageTokens:
		m.ClearPageTokens()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case extractjob.FieldOcrText:
		m.ClearOcrText()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldFileID:
		m.ResetFileID()
		return nil
	case extractjob.FieldContractID:
		m.ResetContractID()
		return nil
	case extractjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extractjob.FieldPageTokens:
		m.ResetPageTokens()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case extractjob.FieldOcrText:
		m.ResetOcrText()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.contract != nil {
		edges = append(edges, extractjob.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.clearedcontract {
		edges = append(edges, extractjob.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeFile:
		return m.clearedfile
	case extractjob.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ClearFile()
		return nil
	case extractjob.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ResetFile()
		return nil
	case extractjob.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// TerminPaymentMutation represents an operation that mutates the TerminPayment nodes in the graph.
type TerminPaymentMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	sequence        *int
	addsequence     *int
	period_label    *string
	amount          *string
	source_text     *string
	synthesized     *bool
	clearedFields   map[string]struct{}
	contract        *uuid.UUID
	clearedcontract bool
	done            bool
	oldValue        func(context.Context) (*TerminPayment, error)
	predicates      []predicate.TerminPayment
}

var _ ent.Mutation = (*TerminPaymentMutation)(nil)

// terminpaymentOption allows management of the mutation configuration using functional options.
type terminpaymentOption func(*TerminPaymentMutation)

// newTerminPaymentMutation creates new mutation for the TerminPayment entity.
func newTerminPaymentMutation(c config, op Op, opts ...terminpaymentOption) *TerminPaymentMutation {
	m := &TerminPaymentMutation{
		config:        c,
		op:            op,
		typ:           TypeTerminPayment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTerminPaymentID sets the ID field of the mutation.
func withTerminPaymentID(id uuid.UUID) terminpaymentOption {
	return func(m *TerminPaymentMutation) {
		var (
			err   error
			once  sync.Once
			value *TerminPayment
		)
		m.oldValue = func(ctx context.Context) (*TerminPayment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TerminPayment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTerminPayment sets the old TerminPayment of the mutation.
func withTerminPayment(node *TerminPayment) terminpaymentOption {
	return func(m *TerminPaymentMutation) {
		m.oldValue = func(context.Context) (*TerminPayment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TerminPaymentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TerminPaymentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TerminPayment entities.
func (m *TerminPaymentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TerminPaymentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TerminPaymentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TerminPayment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *TerminPaymentMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *TerminPaymentMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the TerminPayment entity.
// If the TerminPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TerminPaymentMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *TerminPaymentMutation) ResetContractID() {
	m.contract = nil
}

// SetSequence sets the "sequence" field.
func (m *TerminPaymentMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TerminPaymentMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TerminPayment entity.
// If the TerminPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TerminPaymentMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TerminPaymentMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TerminPaymentMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TerminPaymentMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetPeriodLabel sets the "period_label" field.
func (m *TerminPaymentMutation) SetPeriodLabel(s string) {
	m.period_label = &s
}

// PeriodLabel returns the value of the "period_label" field in the mutation.
func (m *TerminPaymentMutation) PeriodLabel() (r string, exists bool) {
	v := m.period_label
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodLabel returns the old "period_label" field's value of the TerminPayment entity.
// If the TerminPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TerminPaymentMutation) OldPeriodLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodLabel: %w", err)
	}
	return oldValue.PeriodLabel, nil
}

// ClearPeriodLabel clears the value of the "period_label" field.
func (m *TerminPaymentMutation) ClearPeriodLabel() {
	m.period_label = nil
	m.clearedFields[terminpayment.FieldPeriodLabel] = struct{}{}
}

// PeriodLabelCleared returns if the "period_label" field was cleared in this mutation.
func (m *TerminPaymentMutation) PeriodLabelCleared() bool {
	_, ok := m.clearedFields[terminpayment.FieldPeriodLabel]
	return ok
}

// ResetPeriodLabel resets all changes to the "period_label" field.
func (m *TerminPaymentMutation) ResetPeriodLabel() {
	m.period_label = nil
	delete(m.clearedFields, terminpayment.FieldPeriodLabel)
}

// SetAmount sets the "amount" field.
func (m *TerminPaymentMutation) SetAmount(s string) {
	m.amount = &s
}

// Amount returns the value of the "amount" field in the mutation.
func (m *TerminPaymentMutation) Amount() (r string, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the TerminPayment entity.
// If the TerminPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TerminPaymentMutation) OldAmount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ResetAmount resets all changes to the "amount" field.
func (m *TerminPaymentMutation) ResetAmount() {
	m.amount = nil
}

// SetSourceText sets the "source_text" field.
func (m *TerminPaymentMutation) SetSourceText(s string) {
	m.source_text = &s
}

// SourceText returns the value of the "source_text" field in the mutation.
func (m *TerminPaymentMutation) SourceText() (r string, exists bool) {
	v := m.source_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceText returns the old "source_text" field's value of the TerminPayment entity.
// If the TerminPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TerminPaymentMutation) OldSourceText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceText: %w", err)
	}
	return oldValue.SourceText, nil
}

// ClearSourceText clears the value of the "source_text" field.
func (m *TerminPaymentMutation) ClearSourceText() {
	m.source_text = nil
	m.clearedFields[terminpayment.FieldSourceText] = struct{}{}
}

// SourceTextCleared returns if the "source_text" field was cleared in this mutation.
func (m *TerminPaymentMutation) SourceTextCleared() bool {
	_, ok := m.clearedFields[terminpayment.FieldSourceText]
	return ok
}

// ResetSourceText resets all changes to the "source_text" field.
func (m *TerminPaymentMutation) ResetSourceText() {
	m.source_text = nil
	delete(m.clearedFields, terminpayment.FieldSourceText)
}

// SetSynthesized sets the "synthesized" field.
func (m *TerminPaymentMutation) SetSynthesized(b bool) {
	m.synthesized = &b
}

// Synthesized returns the value of the "synthesized" field in the mutation.
func (m *TerminPaymentMutation) Synthesized() (r bool, exists bool) {
	v := m.synthesized
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesized returns the old "synthesized" field's value of the TerminPayment entity.
// If the TerminPayment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TerminPaymentMutation) OldSynthesized(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesized: %w", err)
	}
	return oldValue.Synthesized, nil
}

// ResetSynthesized resets all changes to the "synthesized" field.
func (m *TerminPaymentMutation) ResetSynthesized() {
	m.synthesized = nil
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *TerminPaymentMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[terminpayment.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *TerminPaymentMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *TerminPaymentMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *TerminPaymentMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the TerminPaymentMutation builder.
func (m *TerminPaymentMutation) Where(ps ...predicate.TerminPayment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TerminPaymentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TerminPaymentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TerminPayment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TerminPaymentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TerminPaymentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TerminPayment).
func (m *TerminPaymentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TerminPaymentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.contract != nil {
		fields = append(fields, terminpayment.FieldContractID)
	}
	if m.sequence != nil {
		fields = append(fields, terminpayment.FieldSequence)
	}
	if m.period_label != nil {
		fields = append(fields, terminpayment.FieldPeriodLabel)
	}
	if m.amount != nil {
		fields = append(fields, terminpayment.FieldAmount)
	}
	if m.source_text != nil {
		fields = append(fields, terminpayment.FieldSourceText)
	}
	if m.synthesized != nil {
		fields = append(fields, terminpayment.FieldSynthesized)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TerminPaymentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case terminpayment.FieldContractID:
		return m.ContractID()
	case terminpayment.FieldSequence:
		return m.Sequence()
	case terminpayment.FieldPeriodLabel:
		return m.PeriodLabel()
	case terminpayment.FieldAmount:
		return m.Amount()
	case terminpayment.FieldSourceText:
		return m.SourceText()
	case terminpayment.FieldSynthesized:
		return m.Synthesized()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TerminPaymentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case terminpayment.FieldContractID:
		return m.OldContractID(ctx)
	case terminpayment.FieldSequence:
		return m.OldSequence(ctx)
	case terminpayment.FieldPeriodLabel:
		return m.OldPeriodLabel(ctx)
	case terminpayment.FieldAmount:
		return m.OldAmount(ctx)
	case terminpayment.FieldSourceText:
		return m.OldSourceText(ctx)
	case terminpayment.FieldSynthesized:
		return m.OldSynthesized(ctx)
	}
	return nil, fmt.Errorf("unknown TerminPayment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TerminPaymentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case terminpayment.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case terminpayment.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case terminpayment.FieldPeriodLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodLabel(v)
		return nil
	case terminpayment.FieldAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case terminpayment.FieldSourceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceText(v)
		return nil
	case terminpayment.FieldSynthesized:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesized(v)
		return nil
	}
	return fmt.Errorf("unknown TerminPayment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TerminPaymentMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, terminpayment.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TerminPaymentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case terminpayment.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TerminPaymentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case terminpayment.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown TerminPayment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TerminPaymentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(terminpayment.FieldPeriodLabel) {
		fields = append(fields, terminpayment.FieldPeriodLabel)
	}
	if m.FieldCleared(terminpayment.FieldSourceText) {
		fields = append(fields, terminpayment.FieldSourceText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TerminPaymentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TerminPaymentMutation) ClearField(name string) error {
	switch name {
	case terminpayment.FieldPeriodLabel:
		m.ClearPeriodLabel()
		return nil
	case terminpayment.FieldSourceText:
		m.ClearSourceText()
		return nil
	}
	return fmt.Errorf("unknown TerminPayment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TerminPaymentMutation) ResetField(name string) error {
	switch name {
	case terminpayment.FieldContractID:
		m.ResetContractID()
		return nil
	case terminpayment.FieldSequence:
		m.ResetSequence()
		return nil
	case terminpayment.FieldPeriodLabel:
		m.ResetPeriodLabel()
		return nil
	case terminpayment.FieldAmount:
		m.ResetAmount()
		return nil
	case terminpayment.FieldSourceText:
		m.ResetSourceText()
		return nil
	case terminpayment.FieldSynthesized:
		m.ResetSynthesized()
		return nil
	}
	return fmt.Errorf("unknown TerminPayment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TerminPaymentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, terminpayment.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TerminPaymentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case terminpayment.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TerminPaymentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TerminPaymentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TerminPaymentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, terminpayment.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TerminPaymentMutation) EdgeCleared(name string) bool {
	switch name {
	case terminpayment.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TerminPaymentMutation) ClearEdge(name string) error {
	switch name {
	case terminpayment.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown TerminPayment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TerminPaymentMutation) ResetEdge(name string) error {
	switch name {
	case terminpayment.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown TerminPayment edge %s", name)
}
