package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contract represents an extracted contract for data transfer between layers.
type Contract struct {
	ID                   uuid.UUID       `json:"id"`
	CustomerName         string          `json:"customer_name"`
	CustomerAddress      *string         `json:"customer_address,omitempty"`
	CustomerNPWP         *string         `json:"customer_npwp,omitempty"`
	RepresentativeName   *string         `json:"representative_name,omitempty"`
	RepresentativeTitle  *string         `json:"representative_title,omitempty"`
	ConnectivityCount    int             `json:"connectivity_count"`
	NonConnectivity      int             `json:"non_connectivity_count"`
	BundlingCount        int             `json:"bundling_count"`
	InstallationCost     decimal.Decimal `json:"installation_cost"`
	SubscriptionCost     decimal.Decimal `json:"subscription_cost"`
	PaymentMethod        string          `json:"payment_method"`
	PaymentDescription   *string         `json:"payment_description,omitempty"`
	PaymentConfidence    string          `json:"payment_confidence"`
	ValidFrom            *time.Time      `json:"valid_from,omitempty"`
	ValidUntil           *time.Time      `json:"valid_until,omitempty"`
	CustomerContactName  *string         `json:"customer_contact_name,omitempty"`
	CustomerContactEmail *string         `json:"customer_contact_email,omitempty"`
	CustomerContactPhone *string         `json:"customer_contact_phone,omitempty"`
	TelkomContactName    *string         `json:"telkom_contact_name,omitempty"`
	TelkomContactEmail   *string         `json:"telkom_contact_email,omitempty"`
	TelkomContactPhone   *string         `json:"telkom_contact_phone,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// TerminPayment represents one installment row of a termin schedule.
type TerminPayment struct {
	ID          uuid.UUID       `json:"id"`
	ContractID  uuid.UUID       `json:"contract_id"`
	Sequence    int             `json:"sequence"`
	PeriodLabel string          `json:"period_label"`
	Amount      decimal.Decimal `json:"amount"`
	SourceText  *string         `json:"source_text,omitempty"`
	Synthesized bool            `json:"synthesized"`
}
