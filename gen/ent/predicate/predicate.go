// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// ContractFile is the predicate function for contractfile builders.
type ContractFile func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// TerminPayment is the predicate function for terminpayment builders.
type TerminPayment func(*sql.Selector)
