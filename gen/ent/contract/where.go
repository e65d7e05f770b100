// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerAddress applies equality check predicate on the "customer_address" field. It's identical to CustomerAddressEQ.
func CustomerAddress(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerAddress, v))
}

// CustomerNpwp applies equality check predicate on the "customer_npwp" field. It's identical to CustomerNpwpEQ.
func CustomerNpwp(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerNpwp, v))
}

// RepresentativeName applies equality check predicate on the "representative_name" field. It's identical to RepresentativeNameEQ.
func RepresentativeName(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRepresentativeName, v))
}

// RepresentativeTitle applies equality check predicate on the "representative_title" field. It's identical to RepresentativeTitleEQ.
func RepresentativeTitle(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRepresentativeTitle, v))
}

// ConnectivityCount applies equality check predicate on the "connectivity_count" field. It's identical to ConnectivityCountEQ.
func ConnectivityCount(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldConnectivityCount, v))
}

// NonConnectivityCount applies equality check predicate on the "non_connectivity_count" field. It's identical to NonConnectivityCountEQ.
func NonConnectivityCount(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldNonConnectivityCount, v))
}

// BundlingCount applies equality check predicate on the "bundling_count" field. It's identical to BundlingCountEQ.
func BundlingCount(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldBundlingCount, v))
}

// InstallationCost applies equality check predicate on the "installation_cost" field. It's identical to InstallationCostEQ.
func InstallationCost(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldInstallationCost, v))
}

// SubscriptionCost applies equality check predicate on the "subscription_cost" field. It's identical to SubscriptionCostEQ.
func SubscriptionCost(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSubscriptionCost, v))
}

// PaymentMethod applies equality check predicate on the "payment_method" field. It's identical to PaymentMethodEQ.
func PaymentMethod(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentDescription applies equality check predicate on the "payment_description" field. It's identical to PaymentDescriptionEQ.
func PaymentDescription(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPaymentDescription, v))
}

// PaymentConfidence applies equality check predicate on the "payment_confidence" field. It's identical to PaymentConfidenceEQ.
func PaymentConfidence(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPaymentConfidence, v))
}

// ValidFrom applies equality check predicate on the "valid_from" field. It's identical to ValidFromEQ.
func ValidFrom(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldValidFrom, v))
}

// ValidUntil applies equality check predicate on the "valid_until" field. It's identical to ValidUntilEQ.
func ValidUntil(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldValidUntil, v))
}

// CustomerContactName applies equality check predicate on the "customer_contact_name" field. It's identical to CustomerContactNameEQ.
func CustomerContactName(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerContactName, v))
}

// CustomerContactEmail applies equality check predicate on the "customer_contact_email" field. It's identical to CustomerContactEmailEQ.
func CustomerContactEmail(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerContactEmail, v))
}

// CustomerContactPhone applies equality check predicate on the "customer_contact_phone" field. It's identical to CustomerContactPhoneEQ.
func CustomerContactPhone(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerContactPhone, v))
}

// TelkomContactName applies equality check predicate on the "telkom_contact_name" field. It's identical to TelkomContactNameEQ.
func TelkomContactName(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTelkomContactName, v))
}

// TelkomContactEmail applies equality check predicate on the "telkom_contact_email" field. It's identical to TelkomContactEmailEQ.
func TelkomContactEmail(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTelkomContactEmail, v))
}

// TelkomContactPhone applies equality check predicate on the "telkom_contact_phone" field. It's identical to TelkomContactPhoneEQ.
func TelkomContactPhone(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTelkomContactPhone, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCustomerName, v))
}

// CustomerAddressEQ applies the EQ predicate on the "customer_address" field.
func CustomerAddressEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerAddress, v))
}

// CustomerAddressNEQ applies the NEQ predicate on the "customer_address" field.
func CustomerAddressNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCustomerAddress, v))
}

// CustomerAddressIn applies the In predicate on the "customer_address" field.
func CustomerAddressIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCustomerAddress, vs...))
}

// CustomerAddressNotIn applies the NotIn predicate on the "customer_address" field.
func CustomerAddressNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCustomerAddress, vs...))
}

// CustomerAddressGT applies the GT predicate on the "customer_address" field.
func CustomerAddressGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCustomerAddress, v))
}

// CustomerAddressGTE applies the GTE predicate on the "customer_address" field.
func CustomerAddressGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCustomerAddress, v))
}

// CustomerAddressLT applies the LT predicate on the "customer_address" field.
func CustomerAddressLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCustomerAddress, v))
}

// CustomerAddressLTE applies the LTE predicate on the "customer_address" field.
func CustomerAddressLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCustomerAddress, v))
}

// CustomerAddressContains applies the Contains predicate on the "customer_address" field.
func CustomerAddressContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCustomerAddress, v))
}

// CustomerAddressHasPrefix applies the HasPrefix predicate on the "customer_address" field.
func CustomerAddressHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCustomerAddress, v))
}

// CustomerAddressHasSuffix applies the HasSuffix predicate on the "customer_address" field.
func CustomerAddressHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCustomerAddress, v))
}

// CustomerAddressIsNil applies the IsNil predicate on the "customer_address" field.
func CustomerAddressIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCustomerAddress))
}

// CustomerAddressNotNil applies the NotNil predicate on the "customer_address" field.
func CustomerAddressNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCustomerAddress))
}

// CustomerAddressEqualFold applies the EqualFold predicate on the "customer_address" field.
func CustomerAddressEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCustomerAddress, v))
}

// CustomerAddressContainsFold applies the ContainsFold predicate on the "customer_address" field.
func CustomerAddressContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCustomerAddress, v))
}

// CustomerNpwpEQ applies the EQ predicate on the "customer_npwp" field.
func CustomerNpwpEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerNpwp, v))
}

// CustomerNpwpNEQ applies the NEQ predicate on the "customer_npwp" field.
func CustomerNpwpNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCustomerNpwp, v))
}

// CustomerNpwpIn applies the In predicate on the "customer_npwp" field.
func CustomerNpwpIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCustomerNpwp, vs...))
}

// CustomerNpwpNotIn applies the NotIn predicate on the "customer_npwp" field.
func CustomerNpwpNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCustomerNpwp, vs...))
}

// CustomerNpwpGT applies the GT predicate on the "customer_npwp" field.
func CustomerNpwpGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCustomerNpwp, v))
}

// CustomerNpwpGTE applies the GTE predicate on the "customer_npwp" field.
func CustomerNpwpGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCustomerNpwp, v))
}

// CustomerNpwpLT applies the LT predicate on the "customer_npwp" field.
func CustomerNpwpLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCustomerNpwp, v))
}

// CustomerNpwpLTE applies the LTE predicate on the "customer_npwp" field.
func CustomerNpwpLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCustomerNpwp, v))
}

// CustomerNpwpContains applies the Contains predicate on the "customer_npwp" field.
func CustomerNpwpContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCustomerNpwp, v))
}

// CustomerNpwpHasPrefix applies the HasPrefix predicate on the "customer_npwp" field.
func CustomerNpwpHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCustomerNpwp, v))
}

// CustomerNpwpHasSuffix applies the HasSuffix predicate on the "customer_npwp" field.
func CustomerNpwpHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCustomerNpwp, v))
}

// CustomerNpwpIsNil applies the IsNil predicate on the "customer_npwp" field.
func CustomerNpwpIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCustomerNpwp))
}

// CustomerNpwpNotNil applies the NotNil predicate on the "customer_npwp" field.
func CustomerNpwpNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCustomerNpwp))
}

// CustomerNpwpEqualFold applies the EqualFold predicate on the "customer_npwp" field.
func CustomerNpwpEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCustomerNpwp, v))
}

// CustomerNpwpContainsFold applies the ContainsFold predicate on the "customer_npwp" field.
func CustomerNpwpContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCustomerNpwp, v))
}

// RepresentativeNameEQ applies the EQ predicate on the "representative_name" field.
func RepresentativeNameEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRepresentativeName, v))
}

// RepresentativeNameNEQ applies the NEQ predicate on the "representative_name" field.
func RepresentativeNameNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldRepresentativeName, v))
}

// RepresentativeNameIn applies the In predicate on the "representative_name" field.
func RepresentativeNameIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldRepresentativeName, vs...))
}

// RepresentativeNameNotIn applies the NotIn predicate on the "representative_name" field.
func RepresentativeNameNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldRepresentativeName, vs...))
}

// RepresentativeNameGT applies the GT predicate on the "representative_name" field.
func RepresentativeNameGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldRepresentativeName, v))
}

// RepresentativeNameGTE applies the GTE predicate on the "representative_name" field.
func RepresentativeNameGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldRepresentativeName, v))
}

// RepresentativeNameLT applies the LT predicate on the "representative_name" field.
func RepresentativeNameLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldRepresentativeName, v))
}

// RepresentativeNameLTE applies the LTE predicate on the "representative_name" field.
func RepresentativeNameLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldRepresentativeName, v))
}

// RepresentativeNameContains applies the Contains predicate on the "representative_name" field.
func RepresentativeNameContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldRepresentativeName, v))
}

// RepresentativeNameHasPrefix applies the HasPrefix predicate on the "representative_name" field.
func RepresentativeNameHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldRepresentativeName, v))
}

// RepresentativeNameHasSuffix applies the HasSuffix predicate on the "representative_name" field.
func RepresentativeNameHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldRepresentativeName, v))
}

// RepresentativeNameIsNil applies the IsNil predicate on the "representative_name" field.
func RepresentativeNameIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldRepresentativeName))
}

// RepresentativeNameNotNil applies the NotNil predicate on the "representative_name" field.
func RepresentativeNameNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldRepresentativeName))
}

// RepresentativeNameEqualFold applies the EqualFold predicate on the "representative_name" field.
func RepresentativeNameEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldRepresentativeName, v))
}

// RepresentativeNameContainsFold applies the ContainsFold predicate on the "representative_name" field.
func RepresentativeNameContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldRepresentativeName, v))
}

// RepresentativeTitleEQ applies the EQ predicate on the "representative_title" field.
func RepresentativeTitleEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRepresentativeTitle, v))
}

// RepresentativeTitleNEQ applies the NEQ predicate on the "representative_title" field.
func RepresentativeTitleNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldRepresentativeTitle, v))
}

// RepresentativeTitleIn applies the In predicate on the "representative_title" field.
func RepresentativeTitleIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldRepresentativeTitle, vs...))
}

// RepresentativeTitleNotIn applies the NotIn predicate on the "representative_title" field.
func RepresentativeTitleNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldRepresentativeTitle, vs...))
}

// RepresentativeTitleGT applies the GT predicate on the "representative_title" field.
func RepresentativeTitleGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldRepresentativeTitle, v))
}

// RepresentativeTitleGTE applies the GTE predicate on the "representative_title" field.
func RepresentativeTitleGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldRepresentativeTitle, v))
}

// RepresentativeTitleLT applies the LT predicate on the "representative_title" field.
func RepresentativeTitleLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldRepresentativeTitle, v))
}

// RepresentativeTitleLTE applies the LTE predicate on the "representative_title" field.
func RepresentativeTitleLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldRepresentativeTitle, v))
}

// RepresentativeTitleContains applies the Contains predicate on the "representative_title" field.
func RepresentativeTitleContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldRepresentativeTitle, v))
}

// RepresentativeTitleHasPrefix applies the HasPrefix predicate on the "representative_title" field.
func RepresentativeTitleHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldRepresentativeTitle, v))
}

// RepresentativeTitleHasSuffix applies the HasSuffix predicate on the "representative_title" field.
func RepresentativeTitleHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldRepresentativeTitle, v))
}

// RepresentativeTitleIsNil applies the IsNil predicate on the "representative_title" field.
func RepresentativeTitleIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldRepresentativeTitle))
}

// RepresentativeTitleNotNil applies the NotNil predicate on the "representative_title" field.
func RepresentativeTitleNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldRepresentativeTitle))
}

// RepresentativeTitleEqualFold applies the EqualFold predicate on the "representative_title" field.
func RepresentativeTitleEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldRepresentativeTitle, v))
}

// RepresentativeTitleContainsFold applies the ContainsFold predicate on the "representative_title" field.
func RepresentativeTitleContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldRepresentativeTitle, v))
}

// ConnectivityCountEQ applies the EQ predicate on the "connectivity_count" field.
func ConnectivityCountEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldConnectivityCount, v))
}

// ConnectivityCountNEQ applies the NEQ predicate on the "connectivity_count" field.
func ConnectivityCountNEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldConnectivityCount, v))
}

// ConnectivityCountIn applies the In predicate on the "connectivity_count" field.
func ConnectivityCountIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldConnectivityCount, vs...))
}

// ConnectivityCountNotIn applies the NotIn predicate on the "connectivity_count" field.
func ConnectivityCountNotIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldConnectivityCount, vs...))
}

// ConnectivityCountGT applies the GT predicate on the "connectivity_count" field.
func ConnectivityCountGT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldConnectivityCount, v))
}

// ConnectivityCountGTE applies the GTE predicate on the "connectivity_count" field.
func ConnectivityCountGTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldConnectivityCount, v))
}

// ConnectivityCountLT applies the LT predicate on the "connectivity_count" field.
func ConnectivityCountLT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldConnectivityCount, v))
}

// ConnectivityCountLTE applies the LTE predicate on the "connectivity_count" field.
func ConnectivityCountLTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldConnectivityCount, v))
}

// NonConnectivityCountEQ applies the EQ predicate on the "non_connectivity_count" field.
func NonConnectivityCountEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldNonConnectivityCount, v))
}

// NonConnectivityCountNEQ applies the NEQ predicate on the "non_connectivity_count" field.
func NonConnectivityCountNEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldNonConnectivityCount, v))
}

// NonConnectivityCountIn applies the In predicate on the "non_connectivity_count" field.
func NonConnectivityCountIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldNonConnectivityCount, vs...))
}

// NonConnectivityCountNotIn applies the NotIn predicate on the "non_connectivity_count" field.
func NonConnectivityCountNotIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldNonConnectivityCount, vs...))
}

// NonConnectivityCountGT applies the GT predicate on the "non_connectivity_count" field.
func NonConnectivityCountGT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldNonConnectivityCount, v))
}

// NonConnectivityCountGTE applies the GTE predicate on the "non_connectivity_count" field.
func NonConnectivityCountGTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldNonConnectivityCount, v))
}

// NonConnectivityCountLT applies the LT predicate on the "non_connectivity_count" field.
func NonConnectivityCountLT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldNonConnectivityCount, v))
}

// NonConnectivityCountLTE applies the LTE predicate on the "non_connectivity_count" field.
func NonConnectivityCountLTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldNonConnectivityCount, v))
}

// BundlingCountEQ applies the EQ predicate on the "bundling_count" field.
func BundlingCountEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldBundlingCount, v))
}

// BundlingCountNEQ applies the NEQ predicate on the "bundling_count" field.
func BundlingCountNEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldBundlingCount, v))
}

// BundlingCountIn applies the In predicate on the "bundling_count" field.
func BundlingCountIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldBundlingCount, vs...))
}

// BundlingCountNotIn applies the NotIn predicate on the "bundling_count" field.
func BundlingCountNotIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldBundlingCount, vs...))
}

// BundlingCountGT applies the GT predicate on the "bundling_count" field.
func BundlingCountGT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldBundlingCount, v))
}

// BundlingCountGTE applies the GTE predicate on the "bundling_count" field.
func BundlingCountGTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldBundlingCount, v))
}

// BundlingCountLT applies the LT predicate on the "bundling_count" field.
func BundlingCountLT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldBundlingCount, v))
}

// BundlingCountLTE applies the LTE predicate on the "bundling_count" field.
func BundlingCountLTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldBundlingCount, v))
}

// InstallationCostEQ applies the EQ predicate on the "installation_cost" field.
func InstallationCostEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldInstallationCost, v))
}

// InstallationCostNEQ applies the NEQ predicate on the "installation_cost" field.
func InstallationCostNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldInstallationCost, v))
}

// InstallationCostIn applies the In predicate on the "installation_cost" field.
func InstallationCostIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldInstallationCost, vs...))
}

// InstallationCostNotIn applies the NotIn predicate on the "installation_cost" field.
func InstallationCostNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldInstallationCost, vs...))
}

// InstallationCostGT applies the GT predicate on the "installation_cost" field.
func InstallationCostGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldInstallationCost, v))
}

// InstallationCostGTE applies the GTE predicate on the "installation_cost" field.
func InstallationCostGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldInstallationCost, v))
}

// InstallationCostLT applies the LT predicate on the "installation_cost" field.
func InstallationCostLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldInstallationCost, v))
}

// InstallationCostLTE applies the LTE predicate on the "installation_cost" field.
func InstallationCostLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldInstallationCost, v))
}

// InstallationCostContains applies the Contains predicate on the "installation_cost" field.
func InstallationCostContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldInstallationCost, v))
}

// InstallationCostHasPrefix applies the HasPrefix predicate on the "installation_cost" field.
func InstallationCostHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldInstallationCost, v))
}

// InstallationCostHasSuffix applies the HasSuffix predicate on the "installation_cost" field.
func InstallationCostHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldInstallationCost, v))
}

// InstallationCostEqualFold applies the EqualFold predicate on the "installation_cost" field.
func InstallationCostEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldInstallationCost, v))
}

// InstallationCostContainsFold applies the ContainsFold predicate on the "installation_cost" field.
func InstallationCostContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldInstallationCost, v))
}

// SubscriptionCostEQ applies the EQ predicate on the "subscription_cost" field.
func SubscriptionCostEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldSubscriptionCost, v))
}

// SubscriptionCostNEQ applies the NEQ predicate on the "subscription_cost" field.
func SubscriptionCostNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldSubscriptionCost, v))
}

// SubscriptionCostIn applies the In predicate on the "subscription_cost" field.
func SubscriptionCostIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldSubscriptionCost, vs...))
}

// SubscriptionCostNotIn applies the NotIn predicate on the "subscription_cost" field.
func SubscriptionCostNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldSubscriptionCost, vs...))
}

// SubscriptionCostGT applies the GT predicate on the "subscription_cost" field.
func SubscriptionCostGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldSubscriptionCost, v))
}

// SubscriptionCostGTE applies the GTE predicate on the "subscription_cost" field.
func SubscriptionCostGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldSubscriptionCost, v))
}

// SubscriptionCostLT applies the LT predicate on the "subscription_cost" field.
func SubscriptionCostLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldSubscriptionCost, v))
}

// SubscriptionCostLTE applies the LTE predicate on the "subscription_cost" field.
func SubscriptionCostLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldSubscriptionCost, v))
}

// SubscriptionCostContains applies the Contains predicate on the "subscription_cost" field.
func SubscriptionCostContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldSubscriptionCost, v))
}

// SubscriptionCostHasPrefix applies the HasPrefix predicate on the "subscription_cost" field.
func SubscriptionCostHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldSubscriptionCost, v))
}

// SubscriptionCostHasSuffix applies the HasSuffix predicate on the "subscription_cost" field.
func SubscriptionCostHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldSubscriptionCost, v))
}

// SubscriptionCostEqualFold applies the EqualFold predicate on the "subscription_cost" field.
func SubscriptionCostEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldSubscriptionCost, v))
}

// SubscriptionCostContainsFold applies the ContainsFold predicate on the "subscription_cost" field.
func SubscriptionCostContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldSubscriptionCost, v))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentMethodGT applies the GT predicate on the "payment_method" field.
func PaymentMethodGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldPaymentMethod, v))
}

// PaymentMethodGTE applies the GTE predicate on the "payment_method" field.
func PaymentMethodGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldPaymentMethod, v))
}

// PaymentMethodLT applies the LT predicate on the "payment_method" field.
func PaymentMethodLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldPaymentMethod, v))
}

// PaymentMethodLTE applies the LTE predicate on the "payment_method" field.
func PaymentMethodLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldPaymentMethod, v))
}

// PaymentMethodContains applies the Contains predicate on the "payment_method" field.
func PaymentMethodContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldPaymentMethod, v))
}

// PaymentMethodHasPrefix applies the HasPrefix predicate on the "payment_method" field.
func PaymentMethodHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldPaymentMethod, v))
}

// PaymentMethodHasSuffix applies the HasSuffix predicate on the "payment_method" field.
func PaymentMethodHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldPaymentMethod, v))
}

// PaymentMethodEqualFold applies the EqualFold predicate on the "payment_method" field.
func PaymentMethodEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldPaymentMethod, v))
}

// PaymentMethodContainsFold applies the ContainsFold predicate on the "payment_method" field.
func PaymentMethodContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldPaymentMethod, v))
}

// PaymentDescriptionEQ applies the EQ predicate on the "payment_description" field.
func PaymentDescriptionEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPaymentDescription, v))
}

// PaymentDescriptionNEQ applies the NEQ predicate on the "payment_description" field.
func PaymentDescriptionNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldPaymentDescription, v))
}

// PaymentDescriptionIn applies the In predicate on the "payment_description" field.
func PaymentDescriptionIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldPaymentDescription, vs...))
}

// PaymentDescriptionNotIn applies the NotIn predicate on the "payment_description" field.
func PaymentDescriptionNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldPaymentDescription, vs...))
}

// PaymentDescriptionGT applies the GT predicate on the "payment_description" field.
func PaymentDescriptionGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldPaymentDescription, v))
}

// PaymentDescriptionGTE applies the GTE predicate on the "payment_description" field.
func PaymentDescriptionGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldPaymentDescription, v))
}

// PaymentDescriptionLT applies the LT predicate on the "payment_description" field.
func PaymentDescriptionLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldPaymentDescription, v))
}

// PaymentDescriptionLTE applies the LTE predicate on the "payment_description" field.
func PaymentDescriptionLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldPaymentDescription, v))
}

// PaymentDescriptionContains applies the Contains predicate on the "payment_description" field.
func PaymentDescriptionContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldPaymentDescription, v))
}

// PaymentDescriptionHasPrefix applies the HasPrefix predicate on the "payment_description" field.
func PaymentDescriptionHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldPaymentDescription, v))
}

// PaymentDescriptionHasSuffix applies the HasSuffix predicate on the "payment_description" field.
func PaymentDescriptionHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldPaymentDescription, v))
}

// PaymentDescriptionIsNil applies the IsNil predicate on the "payment_description" field.
func PaymentDescriptionIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldPaymentDescription))
}

// PaymentDescriptionNotNil applies the NotNil predicate on the "payment_description" field.
func PaymentDescriptionNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldPaymentDescription))
}

// PaymentDescriptionEqualFold applies the EqualFold predicate on the "payment_description" field.
func PaymentDescriptionEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldPaymentDescription, v))
}

// PaymentDescriptionContainsFold applies the ContainsFold predicate on the "payment_description" field.
func PaymentDescriptionContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldPaymentDescription, v))
}

// PaymentConfidenceEQ applies the EQ predicate on the "payment_confidence" field.
func PaymentConfidenceEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldPaymentConfidence, v))
}

// PaymentConfidenceNEQ applies the NEQ predicate on the "payment_confidence" field.
func PaymentConfidenceNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldPaymentConfidence, v))
}

// PaymentConfidenceIn applies the In predicate on the "payment_confidence" field.
func PaymentConfidenceIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldPaymentConfidence, vs...))
}

// PaymentConfidenceNotIn applies the NotIn predicate on the "payment_confidence" field.
func PaymentConfidenceNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldPaymentConfidence, vs...))
}

// PaymentConfidenceGT applies the GT predicate on the "payment_confidence" field.
func PaymentConfidenceGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldPaymentConfidence, v))
}

// PaymentConfidenceGTE applies the GTE predicate on the "payment_confidence" field.
func PaymentConfidenceGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldPaymentConfidence, v))
}

// PaymentConfidenceLT applies the LT predicate on the "payment_confidence" field.
func PaymentConfidenceLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldPaymentConfidence, v))
}

// PaymentConfidenceLTE applies the LTE predicate on the "payment_confidence" field.
func PaymentConfidenceLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldPaymentConfidence, v))
}

// PaymentConfidenceContains applies the Contains predicate on the "payment_confidence" field.
func PaymentConfidenceContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldPaymentConfidence, v))
}

// PaymentConfidenceHasPrefix applies the HasPrefix predicate on the "payment_confidence" field.
func PaymentConfidenceHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldPaymentConfidence, v))
}

// PaymentConfidenceHasSuffix applies the HasSuffix predicate on the "payment_confidence" field.
func PaymentConfidenceHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldPaymentConfidence, v))
}

// PaymentConfidenceEqualFold applies the EqualFold predicate on the "payment_confidence" field.
func PaymentConfidenceEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldPaymentConfidence, v))
}

// PaymentConfidenceContainsFold applies the ContainsFold predicate on the "payment_confidence" field.
func PaymentConfidenceContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldPaymentConfidence, v))
}

// ValidFromEQ applies the EQ predicate on the "valid_from" field.
func ValidFromEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldValidFrom, v))
}

// ValidFromNEQ applies the NEQ predicate on the "valid_from" field.
func ValidFromNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldValidFrom, v))
}

// ValidFromIn applies the In predicate on the "valid_from" field.
func ValidFromIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldValidFrom, vs...))
}

// ValidFromNotIn applies the NotIn predicate on the "valid_from" field.
func ValidFromNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldValidFrom, vs...))
}

// ValidFromGT applies the GT predicate on the "valid_from" field.
func ValidFromGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldValidFrom, v))
}

// ValidFromGTE applies the GTE predicate on the "valid_from" field.
func ValidFromGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldValidFrom, v))
}

// ValidFromLT applies the LT predicate on the "valid_from" field.
func ValidFromLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldValidFrom, v))
}

// ValidFromLTE applies the LTE predicate on the "valid_from" field.
func ValidFromLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldValidFrom, v))
}

// ValidFromIsNil applies the IsNil predicate on the "valid_from" field.
func ValidFromIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldValidFrom))
}

// ValidFromNotNil applies the NotNil predicate on the "valid_from" field.
func ValidFromNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldValidFrom))
}

// ValidUntilEQ applies the EQ predicate on the "valid_until" field.
func ValidUntilEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldValidUntil, v))
}

// ValidUntilNEQ applies the NEQ predicate on the "valid_until" field.
func ValidUntilNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldValidUntil, v))
}

// ValidUntilIn applies the In predicate on the "valid_until" field.
func ValidUntilIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldValidUntil, vs...))
}

// ValidUntilNotIn applies the NotIn predicate on the "valid_until" field.
func ValidUntilNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldValidUntil, vs...))
}

// ValidUntilGT applies the GT predicate on the "valid_until" field.
func ValidUntilGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldValidUntil, v))
}

// ValidUntilGTE applies the GTE predicate on the "valid_until" field.
func ValidUntilGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldValidUntil, v))
}

// ValidUntilLT applies the LT predicate on the "valid_until" field.
func ValidUntilLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldValidUntil, v))
}

// ValidUntilLTE applies the LTE predicate on the "valid_until" field.
func ValidUntilLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldValidUntil, v))
}

// ValidUntilIsNil applies the IsNil predicate on the "valid_until" field.
func ValidUntilIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldValidUntil))
}

// ValidUntilNotNil applies the NotNil predicate on the "valid_until" field.
func ValidUntilNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldValidUntil))
}

// CustomerContactNameEQ applies the EQ predicate on the "customer_contact_name" field.
func CustomerContactNameEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerContactName, v))
}

// CustomerContactNameNEQ applies the NEQ predicate on the "customer_contact_name" field.
func CustomerContactNameNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCustomerContactName, v))
}

// CustomerContactNameIn applies the In predicate on the "customer_contact_name" field.
func CustomerContactNameIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCustomerContactName, vs...))
}

// CustomerContactNameNotIn applies the NotIn predicate on the "customer_contact_name" field.
func CustomerContactNameNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCustomerContactName, vs...))
}

// CustomerContactNameGT applies the GT predicate on the "customer_contact_name" field.
func CustomerContactNameGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCustomerContactName, v))
}

// CustomerContactNameGTE applies the GTE predicate on the "customer_contact_name" field.
func CustomerContactNameGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCustomerContactName, v))
}

// CustomerContactNameLT applies the LT predicate on the "customer_contact_name" field.
func CustomerContactNameLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCustomerContactName, v))
}

// CustomerContactNameLTE applies the LTE predicate on the "customer_contact_name" field.
func CustomerContactNameLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCustomerContactName, v))
}

// CustomerContactNameContains applies the Contains predicate on the "customer_contact_name" field.
func CustomerContactNameContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCustomerContactName, v))
}

// CustomerContactNameHasPrefix applies the HasPrefix predicate on the "customer_contact_name" field.
func CustomerContactNameHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCustomerContactName, v))
}

// CustomerContactNameHasSuffix applies the HasSuffix predicate on the "customer_contact_name" field.
func CustomerContactNameHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCustomerContactName, v))
}

// CustomerContactNameIsNil applies the IsNil predicate on the "customer_contact_name" field.
func CustomerContactNameIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCustomerContactName))
}

// CustomerContactNameNotNil applies the NotNil predicate on the "customer_contact_name" field.
func CustomerContactNameNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCustomerContactName))
}

// CustomerContactNameEqualFold applies the EqualFold predicate on the "customer_contact_name" field.
func CustomerContactNameEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCustomerContactName, v))
}

// CustomerContactNameContainsFold applies the ContainsFold predicate on the "customer_contact_name" field.
func CustomerContactNameContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCustomerContactName, v))
}

// CustomerContactEmailEQ applies the EQ predicate on the "customer_contact_email" field.
func CustomerContactEmailEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerContactEmail, v))
}

// CustomerContactEmailNEQ applies the NEQ predicate on the "customer_contact_email" field.
func CustomerContactEmailNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCustomerContactEmail, v))
}

// CustomerContactEmailIn applies the In predicate on the "customer_contact_email" field.
func CustomerContactEmailIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCustomerContactEmail, vs...))
}

// CustomerContactEmailNotIn applies the NotIn predicate on the "customer_contact_email" field.
func CustomerContactEmailNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCustomerContactEmail, vs...))
}

// CustomerContactEmailGT applies the GT predicate on the "customer_contact_email" field.
func CustomerContactEmailGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCustomerContactEmail, v))
}

// CustomerContactEmailGTE applies the GTE predicate on the "customer_contact_email" field.
func CustomerContactEmailGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCustomerContactEmail, v))
}

// CustomerContactEmailLT applies the LT predicate on the "customer_contact_email" field.
func CustomerContactEmailLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCustomerContactEmail, v))
}

// CustomerContactEmailLTE applies the LTE predicate on the "customer_contact_email" field.
func CustomerContactEmailLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCustomerContactEmail, v))
}

// CustomerContactEmailContains applies the Contains predicate on the "customer_contact_email" field.
func CustomerContactEmailContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCustomerContactEmail, v))
}

// CustomerContactEmailHasPrefix applies the HasPrefix predicate on the "customer_contact_email" field.
func CustomerContactEmailHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCustomerContactEmail, v))
}

// CustomerContactEmailHasSuffix applies the HasSuffix predicate on the "customer_contact_email" field.
func CustomerContactEmailHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCustomerContactEmail, v))
}

// CustomerContactEmailIsNil applies the IsNil predicate on the "customer_contact_email" field.
func CustomerContactEmailIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCustomerContactEmail))
}

// CustomerContactEmailNotNil applies the NotNil predicate on the "customer_contact_email" field.
func CustomerContactEmailNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCustomerContactEmail))
}

// CustomerContactEmailEqualFold applies the EqualFold predicate on the "customer_contact_email" field.
func CustomerContactEmailEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCustomerContactEmail, v))
}

// CustomerContactEmailContainsFold applies the ContainsFold predicate on the "customer_contact_email" field.
func CustomerContactEmailContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCustomerContactEmail, v))
}

// CustomerContactPhoneEQ applies the EQ predicate on the "customer_contact_phone" field.
func CustomerContactPhoneEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomerContactPhone, v))
}

// CustomerContactPhoneNEQ applies the NEQ predicate on the "customer_contact_phone" field.
func CustomerContactPhoneNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCustomerContactPhone, v))
}

// CustomerContactPhoneIn applies the In predicate on the "customer_contact_phone" field.
func CustomerContactPhoneIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCustomerContactPhone, vs...))
}

// CustomerContactPhoneNotIn applies the NotIn predicate on the "customer_contact_phone" field.
func CustomerContactPhoneNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCustomerContactPhone, vs...))
}

// CustomerContactPhoneGT applies the GT predicate on the "customer_contact_phone" field.
func CustomerContactPhoneGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCustomerContactPhone, v))
}

// CustomerContactPhoneGTE applies the GTE predicate on the "customer_contact_phone" field.
func CustomerContactPhoneGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCustomerContactPhone, v))
}

// CustomerContactPhoneLT applies the LT predicate on the "customer_contact_phone" field.
func CustomerContactPhoneLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCustomerContactPhone, v))
}

// CustomerContactPhoneLTE applies the LTE predicate on the "customer_contact_phone" field.
func CustomerContactPhoneLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCustomerContactPhone, v))
}

// CustomerContactPhoneContains applies the Contains predicate on the "customer_contact_phone" field.
func CustomerContactPhoneContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCustomerContactPhone, v))
}

// CustomerContactPhoneHasPrefix applies the HasPrefix predicate on the "customer_contact_phone" field.
func CustomerContactPhoneHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCustomerContactPhone, v))
}

// CustomerContactPhoneHasSuffix applies the HasSuffix predicate on the "customer_contact_phone" field.
func CustomerContactPhoneHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCustomerContactPhone, v))
}

// CustomerContactPhoneIsNil applies the IsNil predicate on the "customer_contact_phone" field.
func CustomerContactPhoneIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCustomerContactPhone))
}

// CustomerContactPhoneNotNil applies the NotNil predicate on the "customer_contact_phone" field.
func CustomerContactPhoneNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCustomerContactPhone))
}

// CustomerContactPhoneEqualFold applies the EqualFold predicate on the "customer_contact_phone" field.
func CustomerContactPhoneEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCustomerContactPhone, v))
}

// CustomerContactPhoneContainsFold applies the ContainsFold predicate on the "customer_contact_phone" field.
func CustomerContactPhoneContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCustomerContactPhone, v))
}

// TelkomContactNameEQ applies the EQ predicate on the "telkom_contact_name" field.
func TelkomContactNameEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTelkomContactName, v))
}

// TelkomContactNameNEQ applies the NEQ predicate on the "telkom_contact_name" field.
func TelkomContactNameNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldTelkomContactName, v))
}

// TelkomContactNameIn applies the In predicate on the "telkom_contact_name" field.
func TelkomContactNameIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldTelkomContactName, vs...))
}

// TelkomContactNameNotIn applies the NotIn predicate on the "telkom_contact_name" field.
func TelkomContactNameNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldTelkomContactName, vs...))
}

// TelkomContactNameGT applies the GT predicate on the "telkom_contact_name" field.
func TelkomContactNameGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldTelkomContactName, v))
}

// TelkomContactNameGTE applies the GTE predicate on the "telkom_contact_name" field.
func TelkomContactNameGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldTelkomContactName, v))
}

// TelkomContactNameLT applies the LT predicate on the "telkom_contact_name" field.
func TelkomContactNameLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldTelkomContactName, v))
}

// TelkomContactNameLTE applies the LTE predicate on the "telkom_contact_name" field.
func TelkomContactNameLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldTelkomContactName, v))
}

// TelkomContactNameContains applies the Contains predicate on the "telkom_contact_name" field.
func TelkomContactNameContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldTelkomContactName, v))
}

// TelkomContactNameHasPrefix applies the HasPrefix predicate on the "telkom_contact_name" field.
func TelkomContactNameHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldTelkomContactName, v))
}

// TelkomContactNameHasSuffix applies the HasSuffix predicate on the "telkom_contact_name" field.
func TelkomContactNameHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldTelkomContactName, v))
}

// TelkomContactNameIsNil applies the IsNil predicate on the "telkom_contact_name" field.
func TelkomContactNameIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldTelkomContactName))
}

// TelkomContactNameNotNil applies the NotNil predicate on the "telkom_contact_name" field.
func TelkomContactNameNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldTelkomContactName))
}

// TelkomContactNameEqualFold applies the EqualFold predicate on the "telkom_contact_name" field.
func TelkomContactNameEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldTelkomContactName, v))
}

// TelkomContactNameContainsFold applies the ContainsFold predicate on the "telkom_contact_name" field.
func TelkomContactNameContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldTelkomContactName, v))
}

// TelkomContactEmailEQ applies the EQ predicate on the "telkom_contact_email" field.
func TelkomContactEmailEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTelkomContactEmail, v))
}

// TelkomContactEmailNEQ applies the NEQ predicate on the "telkom_contact_email" field.
func TelkomContactEmailNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldTelkomContactEmail, v))
}

// TelkomContactEmailIn applies the In predicate on the "telkom_contact_email" field.
func TelkomContactEmailIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldTelkomContactEmail, vs...))
}

// TelkomContactEmailNotIn applies the NotIn predicate on the "telkom_contact_email" field.
func TelkomContactEmailNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldTelkomContactEmail, vs...))
}

// TelkomContactEmailGT applies the GT predicate on the "telkom_contact_email" field.
func TelkomContactEmailGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldTelkomContactEmail, v))
}

// TelkomContactEmailGTE applies the GTE predicate on the "telkom_contact_email" field.
func TelkomContactEmailGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldTelkomContactEmail, v))
}

// TelkomContactEmailLT applies the LT predicate on the "telkom_contact_email" field.
func TelkomContactEmailLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldTelkomContactEmail, v))
}

// TelkomContactEmailLTE applies the LTE predicate on the "telkom_contact_email" field.
func TelkomContactEmailLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldTelkomContactEmail, v))
}

// TelkomContactEmailContains applies the Contains predicate on the "telkom_contact_email" field.
func TelkomContactEmailContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldTelkomContactEmail, v))
}

// TelkomContactEmailHasPrefix applies the HasPrefix predicate on the "telkom_contact_email" field.
func TelkomContactEmailHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldTelkomContactEmail, v))
}

// TelkomContactEmailHasSuffix applies the HasSuffix predicate on the "telkom_contact_email" field.
func TelkomContactEmailHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldTelkomContactEmail, v))
}

// TelkomContactEmailIsNil applies the IsNil predicate on the "telkom_contact_email" field.
func TelkomContactEmailIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldTelkomContactEmail))
}

// TelkomContactEmailNotNil applies the NotNil predicate on the "telkom_contact_email" field.
func TelkomContactEmailNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldTelkomContactEmail))
}

// TelkomContactEmailEqualFold applies the EqualFold predicate on the "telkom_contact_email" field.
func TelkomContactEmailEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldTelkomContactEmail, v))
}

// TelkomContactEmailContainsFold applies the ContainsFold predicate on the "telkom_contact_email" field.
func TelkomContactEmailContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldTelkomContactEmail, v))
}

// TelkomContactPhoneEQ applies the EQ predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldTelkomContactPhone, v))
}

// TelkomContactPhoneNEQ applies the NEQ predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldTelkomContactPhone, v))
}

// TelkomContactPhoneIn applies the In predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldTelkomContactPhone, vs...))
}

// TelkomContactPhoneNotIn applies the NotIn predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldTelkomContactPhone, vs...))
}

// TelkomContactPhoneGT applies the GT predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldTelkomContactPhone, v))
}

// TelkomContactPhoneGTE applies the GTE predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldTelkomContactPhone, v))
}

// TelkomContactPhoneLT applies the LT predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldTelkomContactPhone, v))
}

// TelkomContactPhoneLTE applies the LTE predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldTelkomContactPhone, v))
}

// TelkomContactPhoneContains applies the Contains predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldTelkomContactPhone, v))
}

// TelkomContactPhoneHasPrefix applies the HasPrefix predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldTelkomContactPhone, v))
}

// TelkomContactPhoneHasSuffix applies the HasSuffix predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldTelkomContactPhone, v))
}

// TelkomContactPhoneIsNil applies the IsNil predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldTelkomContactPhone))
}

// TelkomContactPhoneNotNil applies the NotNil predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldTelkomContactPhone))
}

// TelkomContactPhoneEqualFold applies the EqualFold predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldTelkomContactPhone, v))
}

// TelkomContactPhoneContainsFold applies the ContainsFold predicate on the "telkom_contact_phone" field.
func TelkomContactPhoneContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldTelkomContactPhone, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTerminPayments applies the HasEdge predicate on the "termin_payments" edge.
func HasTerminPayments() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TerminPaymentsTable, TerminPaymentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTerminPaymentsWith applies the HasEdge predicate on the "termin_payments" edge with a given conditions (other predicates).
func HasTerminPaymentsWith(preds ...predicate.TerminPayment) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newTerminPaymentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
