// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/gen/ent/contract"
)

// Contract is the model entity for the Contract schema.
type Contract struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CustomerName holds the value of the "customer_name" field.
	CustomerName string `json:"customer_name,omitempty"`
	// CustomerAddress holds the value of the "customer_address" field.
	CustomerAddress *string `json:"customer_address,omitempty"`
	// CustomerNpwp holds the value of the "customer_npwp" field.
	CustomerNpwp *string `json:"customer_npwp,omitempty"`
	// RepresentativeName holds the value of the "representative_name" field.
	RepresentativeName *string `json:"representative_name,omitempty"`
	// RepresentativeTitle holds the value of the "representative_title" field.
	RepresentativeTitle *string `json:"representative_title,omitempty"`
	// ConnectivityCount holds the value of the "connectivity_count" field.
	ConnectivityCount int `json:"connectivity_count,omitempty"`
	// NonConnectivityCount holds the value of the "non_connectivity_count" field.
	NonConnectivityCount int `json:"non_connectivity_count,omitempty"`
	// BundlingCount holds the value of the "bundling_count" field.
	BundlingCount int `json:"bundling_count,omitempty"`
	// InstallationCost holds the value of the "installation_cost" field.
	InstallationCost string `json:"installation_cost,omitempty"`
	// SubscriptionCost holds the value of the "subscription_cost" field.
	SubscriptionCost string `json:"subscription_cost,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod string `json:"payment_method,omitempty"`
	// PaymentDescription holds the value of the "payment_description" field.
	PaymentDescription *string `json:"payment_description,omitempty"`
	// PaymentConfidence holds the value of the "payment_confidence" field.
	PaymentConfidence string `json:"payment_confidence,omitempty"`
	// ValidFrom holds the value of the "valid_from" field.
	ValidFrom *time.Time `json:"valid_from,omitempty"`
	// ValidUntil holds the value of the "valid_until" field.
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	// CustomerContactName holds the value of the "customer_contact_name" field.
	CustomerContactName *string `json:"customer_contact_name,omitempty"`
	// CustomerContactEmail holds the value of the "customer_contact_email" field.
	CustomerContactEmail *string `json:"customer_contact_email,omitempty"`
	// CustomerContactPhone holds the value of the "customer_contact_phone" field.
	CustomerContactPhone *string `json:"customer_contact_phone,omitempty"`
	// TelkomContactName holds the value of the "telkom_contact_name" field.
	TelkomContactName *string `json:"telkom_contact_name,omitempty"`
	// TelkomContactEmail holds the value of the "telkom_contact_email" field.
	TelkomContactEmail *string `json:"telkom_contact_email,omitempty"`
	// TelkomContactPhone holds the value of the "telkom_contact_phone" field.
	TelkomContactPhone *string `json:"telkom_contact_phone,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractQuery when eager-loading is set.
	Edges        ContractEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContractEdges holds the relations/edges for other nodes in the graph.
type ContractEdges struct {
	// TerminPayments holds the value of the termin_payments edge.
	TerminPayments []*TerminPayment `json:"termin_payments,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TerminPaymentsOrErr returns the TerminPayments value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) TerminPaymentsOrErr() ([]*TerminPayment, error) {
	if e.loadedTypes[0] {
		return e.TerminPayments, nil
	}
	return nil, &NotLoadedError{edge: "termin_payments"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contract) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contract.FieldConnectivityCount, contract.FieldNonConnectivityCount, contract.FieldBundlingCount:
			values[i] = new(sql.NullInt64)
		case contract.FieldCustomerName, contract.FieldCustomerAddress, contract.FieldCustomerNpwp, contract.FieldRepresentativeName, contract.FieldRepresentativeTitle, contract.FieldInstallationCost, contract.FieldSubscriptionCost, contract.FieldPaymentMethod, contract.FieldPaymentDescription, contract.FieldPaymentConfidence, contract.FieldCustomerContactName, contract.FieldCustomerContactEmail, contract.FieldCustomerContactPhone, contract.FieldTelkomContactName, contract.FieldTelkomContactEmail, contract.FieldTelkomContactPhone:
			values[i] = new(sql.NullString)
		case contract.FieldValidFrom, contract.FieldValidUntil, contract.FieldCreatedAt, contract.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contract.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contract fields.
func (_m *Contract) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contract.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contract.FieldCustomerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_name", values[i])
			} else if value.Valid {
				_m.CustomerName = value.String
			}
		case contract.FieldCustomerAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_address", values[i])
			} else if value.Valid {
				_m.CustomerAddress = new(string)
				*_m.CustomerAddress = value.String
			}
		case contract.FieldCustomerNpwp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_npwp", values[i])
			} else if value.Valid {
				_m.CustomerNpwp = new(string)
				*_m.CustomerNpwp = value.String
			}
		case contract.FieldRepresentativeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field representative_name", values[i])
			} else if value.Valid {
				_m.RepresentativeName = new(string)
				*_m.RepresentativeName = value.String
			}
		case contract.FieldRepresentativeTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field representative_title", values[i])
			} else if value.Valid {
				_m.RepresentativeTitle = new(string)
				*_m.RepresentativeTitle = value.String
			}
		case contract.FieldConnectivityCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field connectivity_count", values[i])
			} else if value.Valid {
				_m.ConnectivityCount = int(value.Int64)
			}
		case contract.FieldNonConnectivityCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field non_connectivity_count", values[i])
			} else if value.Valid {
				_m.NonConnectivityCount = int(value.Int64)
			}
		case contract.FieldBundlingCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bundling_count", values[i])
			} else if value.Valid {
				_m.BundlingCount = int(value.Int64)
			}
		case contract.FieldInstallationCost:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field installation_cost", values[i])
			} else if value.Valid {
				_m.InstallationCost = value.String
			}
		case contract.FieldSubscriptionCost:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_cost", values[i])
			} else if value.Valid {
				_m.SubscriptionCost = value.String
			}
		case contract.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = value.String
			}
		case contract.FieldPaymentDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_description", values[i])
			} else if value.Valid {
				_m.PaymentDescription = new(string)
				*_m.PaymentDescription = value.String
			}
		case contract.FieldPaymentConfidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_confidence", values[i])
			} else if value.Valid {
				_m.PaymentConfidence = value.String
			}
		case contract.FieldValidFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_from", values[i])
			} else if value.Valid {
				_m.ValidFrom = new(time.Time)
				*_m.ValidFrom = value.Time
			}
		case contract.FieldValidUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_until", values[i])
			} else if value.Valid {
				_m.ValidUntil = new(time.Time)
				*_m.ValidUntil = value.Time
			}
		case contract.FieldCustomerContactName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_contact_name", values[i])
			} else if value.Valid {
				_m.CustomerContactName = new(string)
				*_m.CustomerContactName = value.String
			}
		case contract.FieldCustomerContactEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_contact_email", values[i])
			} else if value.Valid {
				_m.CustomerContactEmail = new(string)
				*_m.CustomerContactEmail = value.String
			}
		case contract.FieldCustomerContactPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_contact_phone", values[i])
			} else if value.Valid {
				_m.CustomerContactPhone = new(string)
				*_m.CustomerContactPhone = value.String
			}
		case contract.FieldTelkomContactName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telkom_contact_name", values[i])
			} else if value.Valid {
				_m.TelkomContactName = new(string)
				*_m.TelkomContactName = value.String
			}
		case contract.FieldTelkomContactEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telkom_contact_email", values[i])
			} else if value.Valid {
				_m.TelkomContactEmail = new(string)
				*_m.TelkomContactEmail = value.String
			}
		case contract.FieldTelkomContactPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telkom_contact_phone", values[i])
			} else if value.Valid {
				_m.TelkomContactPhone = new(string)
				*_m.TelkomContactPhone = value.String
			}
		case contract.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contract.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Contract.
// This includes values selected through modifiers, order, etc.
func (_m *Contract) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTerminPayments queries the "termin_payments" edge of the Contract entity.
func (_m *Contract) QueryTerminPayments() *TerminPaymentQuery {
	return NewContractClient(_m.config).QueryTerminPayments(_m)
}

// QueryJobs queries the "jobs" edge of the Contract entity.
func (_m *Contract) QueryJobs() *ExtractJobQuery {
	return NewContractClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Contract.
// Note that you need to call Contract.Unwrap() before calling this method if this Contract
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contract) Update() *ContractUpdateOne {
	return NewContractClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contract entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contract) Unwrap() *Contract {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contract is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contract) String() string {
	var builder strings.Builder
	builder.WriteString("Contract(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("customer_name=")
	builder.WriteString(_m.CustomerName)
	builder.WriteString(", ")
	if v := _m.CustomerAddress; v != nil {
		builder.WriteString("customer_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CustomerNpwp; v != nil {
		builder.WriteString("customer_npwp=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RepresentativeName; v != nil {
		builder.WriteString("representative_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RepresentativeTitle; v != nil {
		builder.WriteString("representative_title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("connectivity_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConnectivityCount))
	builder.WriteString(", ")
	builder.WriteString("non_connectivity_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.NonConnectivityCount))
	builder.WriteString(", ")
	builder.WriteString("bundling_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.BundlingCount))
	builder.WriteString(", ")
	builder.WriteString("installation_cost=")
	builder.WriteString(_m.InstallationCost)
	builder.WriteString(", ")
	builder.WriteString("subscription_cost=")
	builder.WriteString(_m.SubscriptionCost)
	builder.WriteString(", ")
	builder.WriteString("payment_method=")
	builder.WriteString(_m.PaymentMethod)
	builder.WriteString(", ")
	if v := _m.PaymentDescription; v != nil {
		builder.WriteString("payment_description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("payment_confidence=")
	builder.WriteString(_m.PaymentConfidence)
	builder.WriteString(", ")
	if v := _m.ValidFrom; v != nil {
		builder.WriteString("valid_from=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ValidUntil; v != nil {
		builder.WriteString("valid_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CustomerContactName; v != nil {
		builder.WriteString("customer_contact_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CustomerContactEmail; v != nil {
		builder.WriteString("customer_contact_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CustomerContactPhone; v != nil {
		builder.WriteString("customer_contact_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TelkomContactName; v != nil {
		builder.WriteString("telkom_contact_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TelkomContactEmail; v != nil {
		builder.WriteString("telkom_contact_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TelkomContactPhone; v != nil {
		builder.WriteString("telkom_contact_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contracts is a parsable slice of Contract.
type Contracts []*Contract
