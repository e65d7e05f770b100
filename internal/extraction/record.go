package extraction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Confidence is a coarse trust indicator attached to a classification so
// downstream consumers can route uncertain results to human review.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// PaymentMethod is the classified payment scheme of a contract.
type PaymentMethod string

// Stable values (store these exact strings in DB).
const (
	PaymentOneTime   PaymentMethod = "one_time_charge"
	PaymentRecurring PaymentMethod = "recurring"
	PaymentTermin    PaymentMethod = "termin"
	PaymentUnknown   PaymentMethod = "unknown"
)

// Representative is the person signing on behalf of the customer.
type Representative struct {
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}

// ContactPerson holds a named contact; every field is independently optional.
type ContactPerson struct {
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// IsEmpty reports whether no field of the contact was recovered.
func (c *ContactPerson) IsEmpty() bool {
	return c == nil || (c.Name == "" && c.Title == "" && c.Email == "" && c.Phone == "")
}

// CustomerInfo is the customer identity block of page 1.
type CustomerInfo struct {
	Name           string          `json:"name,omitempty"`
	Address        string          `json:"address,omitempty"`
	TaxID          string          `json:"tax_id,omitempty"` // NPWP
	Representative *Representative `json:"representative,omitempty"`
	Contact        *ContactPerson  `json:"contact,omitempty"`
}

// ServiceCounts are per-category service counters. Values are bounded to
// 0..MaxServiceCount by extractor policy, not by schema.
type ServiceCounts struct {
	Connectivity    int `json:"connectivity"`
	NonConnectivity int `json:"non_connectivity"`
	Bundling        int `json:"bundling"`
}

// CostItem is one installation/subscription cost pair. A single page-1
// extraction always yields exactly one item; downstream code may sum several.
type CostItem struct {
	InstallationCost decimal.Decimal `json:"installation_cost"`
	SubscriptionCost decimal.Decimal `json:"subscription_cost"`
}

// TerminInstallment is one discrete payment of a termin plan.
type TerminInstallment struct {
	Sequence   int             `json:"sequence"` // >= 1
	Period     string          `json:"period,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	SourceText string          `json:"source_text,omitempty"`
}

// PaymentPlan is the classified payment scheme plus, for termin plans, the
// recovered installment schedule. SourceText keeps the raw matched fragment
// for audit.
type PaymentPlan struct {
	Method       PaymentMethod       `json:"method"`
	Description  string              `json:"description,omitempty"`
	Confidence   Confidence          `json:"confidence"`
	SourceText   string              `json:"source_text,omitempty"`
	Installments []TerminInstallment `json:"installments,omitempty"`
	TotalCount   int                 `json:"total_count,omitempty"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
}

// ValidityPeriod is the contract validity window; either bound may be absent.
type ValidityPeriod struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// ExtractionMetadata records when and how long an extraction ran.
type ExtractionMetadata struct {
	ExtractedAt time.Time     `json:"extracted_at"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// ContractRecord is the output aggregate of the extraction engine. Absence of
// any field is a first-class, expected state, never an error.
type ContractRecord struct {
	Customer      CustomerInfo       `json:"customer"`
	Services      ServiceCounts      `json:"services"`
	CostItems     []CostItem         `json:"cost_items,omitempty"`
	Payment       *PaymentPlan       `json:"payment,omitempty"`
	TelkomContact *ContactPerson     `json:"telkom_contact,omitempty"`
	Validity      *ValidityPeriod    `json:"validity,omitempty"`
	Metadata      ExtractionMetadata `json:"metadata"`
}

// TotalCost sums installation and subscription cost over all cost items.
func (r *ContractRecord) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.CostItems {
		total = total.Add(it.InstallationCost).Add(it.SubscriptionCost)
	}
	return total
}
