package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prasetyadi/contracts-tracker/internal/extraction"
	"github.com/prasetyadi/contracts-tracker/internal/repository"
)

// PageTokens is the JSON shape stored on extract_job.page_tokens. Each page
// holds the raw OCR dump, in whatever shape the OCR service produced.
type PageTokens struct {
	Page1 json.RawMessage `json:"page_1"`
	Page2 json.RawMessage `json:"page_2,omitempty"`
}

type ParseStage struct {
	Logger       *slog.Logger
	JobsRepo     repository.ExtractJobRepository
	ContractRepo repository.ContractRepository
}

func NewParseStage(
	logger *slog.Logger,
	jobs repository.ExtractJobRepository,
	contracts repository.ContractRepository,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{
		Logger:       logger,
		JobsRepo:     jobs,
		ContractRepo: contracts,
	}
}

// Run executes the parse stage for an existing job (jobID).
// Preconditions: job is RUNNING with non-empty page_tokens.
// Effects: writes extracted_json and needs_review, upserts the contract row
// with its termin schedule, and links job -> contract.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, err := p.JobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if len(job.PageTokens) == 0 {
		msg := "job has no page tokens"
		_ = p.JobsRepo.FinishParseFailure(ctx, job.ID, msg)
		return job.ID, fmt.Errorf("%s: %s", msg, job.ID)
	}

	var pages PageTokens
	if err := json.Unmarshal(job.PageTokens, &pages); err != nil {
		_ = p.JobsRepo.FinishParseFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("decode page tokens: %w", err)
	}

	page1 := decodeTokens(pages.Page1)
	page2 := decodeTokens(pages.Page2)

	p.Logger.Info("parse start",
		"job_id", job.ID, "file_id", job.FileID,
		"page1_tokens", len(page1), "page2_tokens", len(page2),
	)

	rec := extraction.ExtractPage(page1)
	if len(page2) > 0 {
		rec = extraction.MergeSecondPage(rec, page2)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		_ = p.JobsRepo.FinishParseFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("encode record: %w", err)
	}
	if err := extraction.ValidateRecordJSON(raw); err != nil {
		_ = p.JobsRepo.FinishParseFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("validate record: %w", err)
	}

	review := needsReview(rec)

	contract, err := p.ContractRepo.UpsertFromRecord(ctx, &repository.SaveRecordRequest{
		ContractID: job.ContractID,
		Record:     rec,
	})
	if err != nil {
		_ = p.JobsRepo.FinishParseFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("upsert contract: %w", err)
	}

	if err := p.JobsRepo.FinishParseSuccess(ctx, job.ID, contract.ID, raw, review); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parse ok",
		"job_id", job.ID, "contract_id", contract.ID,
		"customer", rec.Customer.Name,
		"payment_method", contract.PaymentMethod,
		"needs_review", review,
	)
	return job.ID, nil
}

// decodeTokens turns a raw page dump into a flat token stream. Malformed
// input yields an empty stream rather than an error; extraction degrades.
func decodeTokens(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return extraction.NormalizeTokens(v)
}

// needsReview flags records a human should double-check before billing.
func needsReview(rec *extraction.ContractRecord) bool {
	if rec.Customer.Name == "" || rec.Customer.TaxID == "" {
		return true
	}
	if rec.Payment == nil || rec.Payment.Confidence == extraction.ConfidenceLow {
		return true
	}
	for _, inst := range rec.Payment.Installments {
		if inst.Synthesized() {
			return true
		}
	}
	return false
}
