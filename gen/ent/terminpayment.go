// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/gen/ent/contract"
	"github.com/prasetyadi/contracts-tracker/gen/ent/terminpayment"
)

// TerminPayment is the model entity for the TerminPayment schema.
type TerminPayment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// Sequence holds the value of the "sequence" field.
	Sequence int `json:"sequence,omitempty"`
	// PeriodLabel holds the value of the "period_label" field.
	PeriodLabel *string `json:"period_label,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount string `json:"amount,omitempty"`
	// SourceText holds the value of the "source_text" field.
	SourceText *string `json:"source_text,omitempty"`
	// Synthesized holds the value of the "synthesized" field.
	Synthesized bool `json:"synthesized,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TerminPaymentQuery when eager-loading is set.
	Edges        TerminPaymentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TerminPaymentEdges holds the relations/edges for other nodes in the graph.
type TerminPaymentEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TerminPaymentEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TerminPayment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case terminpayment.FieldSynthesized:
			values[i] = new(sql.NullBool)
		case terminpayment.FieldSequence:
			values[i] = new(sql.NullInt64)
		case terminpayment.FieldPeriodLabel, terminpayment.FieldAmount, terminpayment.FieldSourceText:
			values[i] = new(sql.NullString)
		case terminpayment.FieldID, terminpayment.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TerminPayment fields.
func (_m *TerminPayment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case terminpayment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case terminpayment.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case terminpayment.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		case terminpayment.FieldPeriodLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period_label", values[i])
			} else if value.Valid {
				_m.PeriodLabel = new(string)
				*_m.PeriodLabel = value.String
			}
		case terminpayment.FieldAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.String
			}
		case terminpayment.FieldSourceText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_text", values[i])
			} else if value.Valid {
				_m.SourceText = new(string)
				*_m.SourceText = value.String
			}
		case terminpayment.FieldSynthesized:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field synthesized", values[i])
			} else if value.Valid {
				_m.Synthesized = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TerminPayment.
// This includes values selected through modifiers, order, etc.
func (_m *TerminPayment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the TerminPayment entity.
func (_m *TerminPayment) QueryContract() *ContractQuery {
	return NewTerminPaymentClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this TerminPayment.
// Note that you need to call TerminPayment.Unwrap() before calling this method if this TerminPayment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TerminPayment) Update() *TerminPaymentUpdateOne {
	return NewTerminPaymentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TerminPayment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TerminPayment) Unwrap() *TerminPayment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TerminPayment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TerminPayment) String() string {
	var builder strings.Builder
	builder.WriteString("TerminPayment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	if v := _m.PeriodLabel; v != nil {
		builder.WriteString("period_label=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(_m.Amount)
	builder.WriteString(", ")
	if v := _m.SourceText; v != nil {
		builder.WriteString("source_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("synthesized=")
	builder.WriteString(fmt.Sprintf("%v", _m.Synthesized))
	builder.WriteByte(')')
	return builder.String()
}

// TerminPayments is a parsable slice of TerminPayment.
type TerminPayments []*TerminPayment
