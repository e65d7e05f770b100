package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/prasetyadi/contracts-tracker/gen/ent"
	entcontract "github.com/prasetyadi/contracts-tracker/gen/ent/contract"
	enttermin "github.com/prasetyadi/contracts-tracker/gen/ent/terminpayment"
	"github.com/prasetyadi/contracts-tracker/internal/entity"
	"github.com/prasetyadi/contracts-tracker/internal/extraction"
	"github.com/prasetyadi/contracts-tracker/internal/utils"
)

// SaveRecordRequest wraps parameters for persisting an extracted record.
type SaveRecordRequest struct {
	ContractID *uuid.UUID // update when set, create otherwise
	Record     *extraction.ContractRecord
}

type ContractRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	ListContracts(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Contract, error)
	ListTerminPayments(ctx context.Context, contractID uuid.UUID) ([]*entity.TerminPayment, error)
	UpsertFromRecord(ctx context.Context, request *SaveRecordRequest) (*entity.Contract, error)
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	return &contractRepository{
		client: client,
		logger: logger,
	}
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	row, err := r.client.Contract.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get contract", "contract_id", id, "error", err)
		return nil, err
	}
	return utils.ToContract(row), nil
}

func (r *contractRepository) ListContracts(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Contract, error) {
	q := r.client.Contract.Query()
	if fromDate != nil {
		q = q.Where(entcontract.ValidFromGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entcontract.ValidFromLTE(*toDate))
	}
	rows, err := q.Order(entcontract.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list contracts", "error", err)
		return nil, err
	}

	result := make([]*entity.Contract, len(rows))
	for i, row := range rows {
		result[i] = utils.ToContract(row)
	}
	return result, nil
}

func (r *contractRepository) ListTerminPayments(ctx context.Context, contractID uuid.UUID) ([]*entity.TerminPayment, error) {
	rows, err := r.client.TerminPayment.Query().
		Where(enttermin.ContractID(contractID)).
		Order(enttermin.BySequence()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list termin payments", "contract_id", contractID, "error", err)
		return nil, err
	}
	result := make([]*entity.TerminPayment, len(rows))
	for i, row := range rows {
		result[i] = utils.ToTerminPayment(row)
	}
	return result, nil
}

// UpsertFromRecord persists an extracted record. Termin installments are
// replaced wholesale so re-running extraction never duplicates rows.
func (r *contractRepository) UpsertFromRecord(ctx context.Context, request *SaveRecordRequest) (*entity.Contract, error) {
	rec := request.Record

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var row *ent.Contract
	if request.ContractID != nil {
		builder := tx.Contract.UpdateOneID(*request.ContractID)
		applyRecord(builder.Mutation(), rec)
		row, err = builder.Save(ctx)
	} else {
		builder := tx.Contract.Create()
		applyRecord(builder.Mutation(), rec)
		row, err = builder.Save(ctx)
	}
	if err != nil {
		r.logger.Error("failed to save contract", "error", err)
		return nil, err
	}

	if _, err = tx.TerminPayment.Delete().
		Where(enttermin.ContractID(row.ID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to clear termin payments", "contract_id", row.ID, "error", err)
		return nil, err
	}
	var installments []extraction.TerminInstallment
	if rec.Payment != nil {
		installments = rec.Payment.Installments
	}
	for _, inst := range installments {
		builder := tx.TerminPayment.Create().
			SetContractID(row.ID).
			SetSequence(inst.Sequence).
			SetAmount(inst.Amount.String()).
			SetSynthesized(inst.Synthesized())
		if inst.Period != "" {
			builder = builder.SetPeriodLabel(inst.Period)
		}
		if inst.SourceText != "" {
			builder = builder.SetSourceText(inst.SourceText)
		}
		if _, err = builder.Save(ctx); err != nil {
			r.logger.Error("failed to save termin payment", "contract_id", row.ID, "sequence", inst.Sequence, "error", err)
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("contract saved", "contract_id", row.ID, "customer", rec.Customer.Name, "termin_count", len(installments))
	return utils.ToContract(row), nil
}

// applyRecord copies extracted fields onto a contract mutation. Costs are
// summed across cost items; optional fields are set only when recovered.
func applyRecord(m *ent.ContractMutation, rec *extraction.ContractRecord) {
	name := rec.Customer.Name
	if name == "" {
		name = "UNKNOWN"
	}
	m.SetCustomerName(name)
	if rec.Customer.Address != "" {
		m.SetCustomerAddress(rec.Customer.Address)
	}
	if rec.Customer.TaxID != "" {
		m.SetCustomerNpwp(rec.Customer.TaxID)
	}
	if rep := rec.Customer.Representative; rep != nil {
		if rep.Name != "" {
			m.SetRepresentativeName(rep.Name)
		}
		if rep.Title != "" {
			m.SetRepresentativeTitle(rep.Title)
		}
	}

	m.SetConnectivityCount(rec.Services.Connectivity)
	m.SetNonConnectivityCount(rec.Services.NonConnectivity)
	m.SetBundlingCount(rec.Services.Bundling)

	inst, sub := decimal.Zero, decimal.Zero
	for _, it := range rec.CostItems {
		inst = inst.Add(it.InstallationCost)
		sub = sub.Add(it.SubscriptionCost)
	}
	m.SetInstallationCost(inst.String())
	m.SetSubscriptionCost(sub.String())

	method, confidence := extraction.PaymentUnknown, extraction.ConfidenceLow
	if rec.Payment != nil {
		method, confidence = rec.Payment.Method, rec.Payment.Confidence
		if rec.Payment.Description != "" {
			m.SetPaymentDescription(rec.Payment.Description)
		}
	}
	m.SetPaymentMethod(string(method))
	m.SetPaymentConfidence(string(confidence))

	if v := rec.Validity; v != nil {
		if v.StartDate != nil {
			m.SetValidFrom(*v.StartDate)
		}
		if v.EndDate != nil {
			m.SetValidUntil(*v.EndDate)
		}
	}

	if c := rec.Customer.Contact; !c.IsEmpty() {
		if c.Name != "" {
			m.SetCustomerContactName(c.Name)
		}
		if c.Email != "" {
			m.SetCustomerContactEmail(c.Email)
		}
		if c.Phone != "" {
			m.SetCustomerContactPhone(c.Phone)
		}
	}
	if c := rec.TelkomContact; !c.IsEmpty() {
		if c.Name != "" {
			m.SetTelkomContactName(c.Name)
		}
		if c.Email != "" {
			m.SetTelkomContactEmail(c.Email)
		}
		if c.Phone != "" {
			m.SetTelkomContactPhone(c.Phone)
		}
	}
}
