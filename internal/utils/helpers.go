package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/prasetyadi/contracts-tracker/gen/ent"
	contractspb "github.com/prasetyadi/contracts-tracker/gen/proto/contracts/v1"
	"github.com/prasetyadi/contracts-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func dateOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format("2006-01-02")
}

// decOrZero parses a numeric column value, falling back to zero. Amounts are
// stored as strings so SQLite and Postgres round-trip them identically.
func decOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToContract(e *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:                   e.ID,
		CustomerName:         e.CustomerName,
		CustomerAddress:      e.CustomerAddress,
		CustomerNPWP:         e.CustomerNpwp,
		RepresentativeName:   e.RepresentativeName,
		RepresentativeTitle:  e.RepresentativeTitle,
		ConnectivityCount:    e.ConnectivityCount,
		NonConnectivity:      e.NonConnectivityCount,
		BundlingCount:        e.BundlingCount,
		InstallationCost:     decOrZero(e.InstallationCost),
		SubscriptionCost:     decOrZero(e.SubscriptionCost),
		PaymentMethod:        e.PaymentMethod,
		PaymentDescription:   e.PaymentDescription,
		PaymentConfidence:    e.PaymentConfidence,
		ValidFrom:            e.ValidFrom,
		ValidUntil:           e.ValidUntil,
		CustomerContactName:  e.CustomerContactName,
		CustomerContactEmail: e.CustomerContactEmail,
		CustomerContactPhone: e.CustomerContactPhone,
		TelkomContactName:    e.TelkomContactName,
		TelkomContactEmail:   e.TelkomContactEmail,
		TelkomContactPhone:   e.TelkomContactPhone,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func ToTerminPayment(e *ent.TerminPayment) *entity.TerminPayment {
	return &entity.TerminPayment{
		ID:          e.ID,
		ContractID:  e.ContractID,
		Sequence:    e.Sequence,
		PeriodLabel: strOrEmpty(e.PeriodLabel),
		Amount:      decOrZero(e.Amount),
		SourceText:  e.SourceText,
		Synthesized: e.Synthesized,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:            e.ID,
		FileID:        e.FileID,
		ContractID:    e.ContractID,
		Format:        e.Format,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
		Status:        e.Status,
		ErrorMessage:  e.ErrorMessage,
		NeedsReview:   e.NeedsReview,
		PageTokens:    e.PageTokens,
		ExtractedJSON: e.ExtractedJSON,
	}
}

func ToContractFile(e *ent.ContractFile) *entity.ContractFile {
	return &entity.ContractFile{
		ID:         e.ID,
		Filename:   e.Filename,
		FilePath:   e.FilePath,
		PageCount:  e.PageCount,
		UploadedAt: e.UploadedAt,
	}
}

func ToPBContract(c *entity.Contract) *contractspb.Contract {
	return &contractspb.Contract{
		Id:                   c.ID.String(),
		CustomerName:         c.CustomerName,
		CustomerAddress:      strOrEmpty(c.CustomerAddress),
		CustomerNpwp:         strOrEmpty(c.CustomerNPWP),
		RepresentativeName:   strOrEmpty(c.RepresentativeName),
		RepresentativeTitle:  strOrEmpty(c.RepresentativeTitle),
		ConnectivityCount:    int32(c.ConnectivityCount),
		NonConnectivityCount: int32(c.NonConnectivity),
		BundlingCount:        int32(c.BundlingCount),
		InstallationCost:     c.InstallationCost.StringFixed(2),
		SubscriptionCost:     c.SubscriptionCost.StringFixed(2),
		PaymentMethod:        c.PaymentMethod,
		PaymentDescription:   strOrEmpty(c.PaymentDescription),
		PaymentConfidence:    c.PaymentConfidence,
		ValidFrom:            dateOrEmpty(c.ValidFrom),
		ValidUntil:           dateOrEmpty(c.ValidUntil),
		CustomerContactName:  strOrEmpty(c.CustomerContactName),
		CustomerContactEmail: strOrEmpty(c.CustomerContactEmail),
		CustomerContactPhone: strOrEmpty(c.CustomerContactPhone),
		TelkomContactName:    strOrEmpty(c.TelkomContactName),
		TelkomContactEmail:   strOrEmpty(c.TelkomContactEmail),
		TelkomContactPhone:   strOrEmpty(c.TelkomContactPhone),
		CreatedAt:            c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:            c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBTerminPayment(t *entity.TerminPayment) *contractspb.TerminPayment {
	return &contractspb.TerminPayment{
		Id:          t.ID.String(),
		ContractId:  t.ContractID.String(),
		Sequence:    int32(t.Sequence),
		PeriodLabel: t.PeriodLabel,
		Amount:      t.Amount.StringFixed(2),
		SourceText:  strOrEmpty(t.SourceText),
		Synthesized: t.Synthesized,
	}
}

func ToPBExtractJob(j *entity.ExtractJob) *contractspb.ExtractJob {
	pb := &contractspb.ExtractJob{
		Id:           j.ID.String(),
		FileId:       j.FileID.String(),
		Format:       j.Format,
		StartedAt:    j.StartedAt.UTC().Format(time.RFC3339),
		Status:       strOrEmpty(j.Status),
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		NeedsReview:  j.NeedsReview,
	}
	if j.ContractID != nil {
		pb.ContractId = j.ContractID.String()
	}
	if j.FinishedAt != nil {
		pb.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return pb
}
