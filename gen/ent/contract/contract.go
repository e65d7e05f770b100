// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the contract type in the database.
	Label = "contract"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCustomerName holds the string denoting the customer_name field in the database.
	FieldCustomerName = "customer_name"
	// FieldCustomerAddress holds the string denoting the customer_address field in the database.
	FieldCustomerAddress = "customer_address"
	// FieldCustomerNpwp holds the string denoting the customer_npwp field in the database.
	FieldCustomerNpwp = "customer_npwp"
	// FieldRepresentativeName holds the string denoting the representative_name field in the database.
	FieldRepresentativeName = "representative_name"
	// FieldRepresentativeTitle holds the string denoting the representative_title field in the database.
	FieldRepresentativeTitle = "representative_title"
	// FieldConnectivityCount holds the string denoting the connectivity_count field in the database.
	FieldConnectivityCount = "connectivity_count"
	// FieldNonConnectivityCount holds the string denoting the non_connectivity_count field in the database.
	FieldNonConnectivityCount = "non_connectivity_count"
	// FieldBundlingCount holds the string denoting the bundling_count field in the database.
	FieldBundlingCount = "bundling_count"
	// FieldInstallationCost holds the string denoting the installation_cost field in the database.
	FieldInstallationCost = "installation_cost"
	// FieldSubscriptionCost holds the string denoting the subscription_cost field in the database.
	FieldSubscriptionCost = "subscription_cost"
	// FieldPaymentMethod holds the string denoting the payment_method field in the database.
	FieldPaymentMethod = "payment_method"
	// FieldPaymentDescription holds the string denoting the payment_description field in the database.
	FieldPaymentDescription = "payment_description"
	// FieldPaymentConfidence holds the string denoting the payment_confidence field in the database.
	FieldPaymentConfidence = "payment_confidence"
	// FieldValidFrom holds the string denoting the valid_from field in the database.
	FieldValidFrom = "valid_from"
	// FieldValidUntil holds the string denoting the valid_until field in the database.
	FieldValidUntil = "valid_until"
	// FieldCustomerContactName holds the string denoting the customer_contact_name field in the database.
	FieldCustomerContactName = "customer_contact_name"
	// FieldCustomerContactEmail holds the string denoting the customer_contact_email field in the database.
	FieldCustomerContactEmail = "customer_contact_email"
	// FieldCustomerContactPhone holds the string denoting the customer_contact_phone field in the database.
	FieldCustomerContactPhone = "customer_contact_phone"
	// FieldTelkomContactName holds the string denoting the telkom_contact_name field in the database.
	FieldTelkomContactName = "telkom_contact_name"
	// FieldTelkomContactEmail holds the string denoting the telkom_contact_email field in the database.
	FieldTelkomContactEmail = "telkom_contact_email"
	// FieldTelkomContactPhone holds the string denoting the telkom_contact_phone field in the database.
	FieldTelkomContactPhone = "telkom_contact_phone"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTerminPayments holds the string denoting the termin_payments edge name in mutations.
	EdgeTerminPayments = "termin_payments"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the contract in the database.
	Table = "contracts"
	// TerminPaymentsTable is the table that holds the termin_payments relation/edge.
	TerminPaymentsTable = "termin_payments"
	// TerminPaymentsInverseTable is the table name for the TerminPayment entity.
	// It exists in this package in order to avoid circular dependency with the "terminpayment" package.
	TerminPaymentsInverseTable = "termin_payments"
	// TerminPaymentsColumn is the table column denoting the termin_payments relation/edge.
	TerminPaymentsColumn = "contract_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extract_job"
	// JobsInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobsInverseTable = "extract_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "contract_id"
)

// Columns holds all SQL columns for contract fields.
var Columns = []string{
	FieldID,
	FieldCustomerName,
	FieldCustomerAddress,
	FieldCustomerNpwp,
	FieldRepresentativeName,
	FieldRepresentativeTitle,
	FieldConnectivityCount,
	FieldNonConnectivityCount,
	FieldBundlingCount,
	FieldInstallationCost,
	FieldSubscriptionCost,
	FieldPaymentMethod,
	FieldPaymentDescription,
	FieldPaymentConfidence,
	FieldValidFrom,
	FieldValidUntil,
	FieldCustomerContactName,
	FieldCustomerContactEmail,
	FieldCustomerContactPhone,
	FieldTelkomContactName,
	FieldTelkomContactEmail,
	FieldTelkomContactPhone,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CustomerNameValidator is a validator for the "customer_name" field. It is called by the builders before save.
	CustomerNameValidator func(string) error
	// DefaultConnectivityCount holds the default value on creation for the "connectivity_count" field.
	DefaultConnectivityCount int
	// ConnectivityCountValidator is a validator for the "connectivity_count" field. It is called by the builders before save.
	ConnectivityCountValidator func(int) error
	// DefaultNonConnectivityCount holds the default value on creation for the "non_connectivity_count" field.
	DefaultNonConnectivityCount int
	// NonConnectivityCountValidator is a validator for the "non_connectivity_count" field. It is called by the builders before save.
	NonConnectivityCountValidator func(int) error
	// DefaultBundlingCount holds the default value on creation for the "bundling_count" field.
	DefaultBundlingCount int
	// BundlingCountValidator is a validator for the "bundling_count" field. It is called by the builders before save.
	BundlingCountValidator func(int) error
	// DefaultInstallationCost holds the default value on creation for the "installation_cost" field.
	DefaultInstallationCost string
	// DefaultSubscriptionCost holds the default value on creation for the "subscription_cost" field.
	DefaultSubscriptionCost string
	// PaymentMethodValidator is a validator for the "payment_method" field. It is called by the builders before save.
	PaymentMethodValidator func(string) error
	// PaymentConfidenceValidator is a validator for the "payment_confidence" field. It is called by the builders before save.
	PaymentConfidenceValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Contract queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCustomerName orders the results by the customer_name field.
func ByCustomerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerName, opts...).ToFunc()
}

// ByCustomerAddress orders the results by the customer_address field.
func ByCustomerAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerAddress, opts...).ToFunc()
}

// ByCustomerNpwp orders the results by the customer_npwp field.
func ByCustomerNpwp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerNpwp, opts...).ToFunc()
}

// ByRepresentativeName orders the results by the representative_name field.
func ByRepresentativeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepresentativeName, opts...).ToFunc()
}

// ByRepresentativeTitle orders the results by the representative_title field.
func ByRepresentativeTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepresentativeTitle, opts...).ToFunc()
}

// ByConnectivityCount orders the results by the connectivity_count field.
func ByConnectivityCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectivityCount, opts...).ToFunc()
}

// ByNonConnectivityCount orders the results by the non_connectivity_count field.
func ByNonConnectivityCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNonConnectivityCount, opts...).ToFunc()
}

// ByBundlingCount orders the results by the bundling_count field.
func ByBundlingCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBundlingCount, opts...).ToFunc()
}

// ByInstallationCost orders the results by the installation_cost field.
func ByInstallationCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstallationCost, opts...).ToFunc()
}

// BySubscriptionCost orders the results by the subscription_cost field.
func BySubscriptionCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionCost, opts...).ToFunc()
}

// ByPaymentMethod orders the results by the payment_method field.
func ByPaymentMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMethod, opts...).ToFunc()
}

// ByPaymentDescription orders the results by the payment_description field.
func ByPaymentDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentDescription, opts...).ToFunc()
}

// ByPaymentConfidence orders the results by the payment_confidence field.
func ByPaymentConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentConfidence, opts...).ToFunc()
}

// ByValidFrom orders the results by the valid_from field.
func ByValidFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidFrom, opts...).ToFunc()
}

// ByValidUntil orders the results by the valid_until field.
func ByValidUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidUntil, opts...).ToFunc()
}

// ByCustomerContactName orders the results by the customer_contact_name field.
func ByCustomerContactName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerContactName, opts...).ToFunc()
}

// ByCustomerContactEmail orders the results by the customer_contact_email field.
func ByCustomerContactEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerContactEmail, opts...).ToFunc()
}

// ByCustomerContactPhone orders the results by the customer_contact_phone field.
func ByCustomerContactPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerContactPhone, opts...).ToFunc()
}

// ByTelkomContactName orders the results by the telkom_contact_name field.
func ByTelkomContactName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelkomContactName, opts...).ToFunc()
}

// ByTelkomContactEmail orders the results by the telkom_contact_email field.
func ByTelkomContactEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelkomContactEmail, opts...).ToFunc()
}

// ByTelkomContactPhone orders the results by the telkom_contact_phone field.
func ByTelkomContactPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelkomContactPhone, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTerminPaymentsCount orders the results by termin_payments count.
func ByTerminPaymentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTerminPaymentsStep(), opts...)
	}
}

// ByTerminPayments orders the results by termin_payments terms.
func ByTerminPayments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTerminPaymentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTerminPaymentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TerminPaymentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TerminPaymentsTable, TerminPaymentsColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
