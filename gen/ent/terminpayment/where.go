// Code generated by ent, DO NOT EDIT.

package terminpayment

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldContractID, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldSequence, v))
}

// PeriodLabel applies equality check predicate on the "period_label" field. It's identical to PeriodLabelEQ.
func PeriodLabel(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldPeriodLabel, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldAmount, v))
}

// SourceText applies equality check predicate on the "source_text" field. It's identical to SourceTextEQ.
func SourceText(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldSourceText, v))
}

// Synthesized applies equality check predicate on the "synthesized" field. It's identical to SynthesizedEQ.
func Synthesized(v bool) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldSynthesized, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNotIn(FieldContractID, vs...))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldLTE(FieldSequence, v))
}

// PeriodLabelEQ applies the EQ predicate on the "period_label" field.
func PeriodLabelEQ(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldPeriodLabel, v))
}

// PeriodLabelNEQ applies the NEQ predicate on the "period_label" field.
func PeriodLabelNEQ(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNEQ(FieldPeriodLabel, v))
}

// PeriodLabelIn applies the In predicate on the "period_label" field.
func PeriodLabelIn(vs ...string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldIn(FieldPeriodLabel, vs...))
}

// PeriodLabelNotIn applies the NotIn predicate on the "period_label" field.
func PeriodLabelNotIn(vs ...string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNotIn(FieldPeriodLabel, vs...))
}

// PeriodLabelGT applies the GT predicate on the "period_label" field.
func PeriodLabelGT(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldGT(FieldPeriodLabel, v))
}

// PeriodLabelGTE applies the GTE predicate on the "period_label" field.
func PeriodLabelGTE(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldGTE(FieldPeriodLabel, v))
}

// PeriodLabelLT applies the LT predicate on the "period_label" field.
func PeriodLabelLT(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldLT(FieldPeriodLabel, v))
}

// PeriodLabelLTE applies the LTE predicate on the "period_label" field.
func PeriodLabelLTE(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldLTE(FieldPeriodLabel, v))
}

// PeriodLabelContains applies the Contains predicate on the "period_label" field.
func PeriodLabelContains(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldContains(FieldPeriodLabel, v))
}

// PeriodLabelHasPrefix applies the HasPrefix predicate on the "period_label" field.
func PeriodLabelHasPrefix(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldHasPrefix(FieldPeriodLabel, v))
}

// PeriodLabelHasSuffix applies the HasSuffix predicate on the "period_label" field.
func PeriodLabelHasSuffix(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldHasSuffix(FieldPeriodLabel, v))
}

// PeriodLabelIsNil applies the IsNil predicate on the "period_label" field.
func PeriodLabelIsNil() predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldIsNull(FieldPeriodLabel))
}

// PeriodLabelNotNil applies the NotNil predicate on the "period_label" field.
func PeriodLabelNotNil() predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNotNull(FieldPeriodLabel))
}

// PeriodLabelEqualFold applies the EqualFold predicate on the "period_label" field.
func PeriodLabelEqualFold(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEqualFold(FieldPeriodLabel, v))
}

// PeriodLabelContainsFold applies the ContainsFold predicate on the "period_label" field.
func PeriodLabelContainsFold(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldContainsFold(FieldPeriodLabel, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldLTE(FieldAmount, v))
}

// AmountContains applies the Contains predicate on the "amount" field.
func AmountContains(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldContains(FieldAmount, v))
}

// AmountHasPrefix applies the HasPrefix predicate on the "amount" field.
func AmountHasPrefix(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldHasPrefix(FieldAmount, v))
}

// AmountHasSuffix applies the HasSuffix predicate on the "amount" field.
func AmountHasSuffix(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldHasSuffix(FieldAmount, v))
}

// AmountEqualFold applies the EqualFold predicate on the "amount" field.
func AmountEqualFold(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEqualFold(FieldAmount, v))
}

// AmountContainsFold applies the ContainsFold predicate on the "amount" field.
func AmountContainsFold(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldContainsFold(FieldAmount, v))
}

// SourceTextEQ applies the EQ predicate on the "source_text" field.
func SourceTextEQ(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldSourceText, v))
}

// SourceTextNEQ applies the NEQ predicate on the "source_text" field.
func SourceTextNEQ(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNEQ(FieldSourceText, v))
}

// SourceTextIn applies the In predicate on the "source_text" field.
func SourceTextIn(vs ...string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldIn(FieldSourceText, vs...))
}

// SourceTextNotIn applies the NotIn predicate on the "source_text" field.
func SourceTextNotIn(vs ...string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNotIn(FieldSourceText, vs...))
}

// SourceTextGT applies the GT predicate on the "source_text" field.
func SourceTextGT(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldGT(FieldSourceText, v))
}

// SourceTextGTE applies the GTE predicate on the "source_text" field.
func SourceTextGTE(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldGTE(FieldSourceText, v))
}

// SourceTextLT applies the LT predicate on the "source_text" field.
func SourceTextLT(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldLT(FieldSourceText, v))
}

// SourceTextLTE applies the LTE predicate on the "source_text" field.
func SourceTextLTE(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldLTE(FieldSourceText, v))
}

// SourceTextContains applies the Contains predicate on the "source_text" field.
func SourceTextContains(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldContains(FieldSourceText, v))
}

// SourceTextHasPrefix applies the HasPrefix predicate on the "source_text" field.
func SourceTextHasPrefix(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldHasPrefix(FieldSourceText, v))
}

// SourceTextHasSuffix applies the HasSuffix predicate on the "source_text" field.
func SourceTextHasSuffix(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldHasSuffix(FieldSourceText, v))
}

// SourceTextIsNil applies the IsNil predicate on the "source_text" field.
func SourceTextIsNil() predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldIsNull(FieldSourceText))
}

// SourceTextNotNil applies the NotNil predicate on the "source_text" field.
func SourceTextNotNil() predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNotNull(FieldSourceText))
}

// SourceTextEqualFold applies the EqualFold predicate on the "source_text" field.
func SourceTextEqualFold(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEqualFold(FieldSourceText, v))
}

// SourceTextContainsFold applies the ContainsFold predicate on the "source_text" field.
func SourceTextContainsFold(v string) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldContainsFold(FieldSourceText, v))
}

// SynthesizedEQ applies the EQ predicate on the "synthesized" field.
func SynthesizedEQ(v bool) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldEQ(FieldSynthesized, v))
}

// SynthesizedNEQ applies the NEQ predicate on the "synthesized" field.
func SynthesizedNEQ(v bool) predicate.TerminPayment {
	return predicate.TerminPayment(sql.FieldNEQ(FieldSynthesized, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.TerminPayment {
	return predicate.TerminPayment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.TerminPayment {
	return predicate.TerminPayment(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TerminPayment) predicate.TerminPayment {
	return predicate.TerminPayment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TerminPayment) predicate.TerminPayment {
	return predicate.TerminPayment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TerminPayment) predicate.TerminPayment {
	return predicate.TerminPayment(sql.NotPredicates(p))
}
