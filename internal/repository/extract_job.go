package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/constants"
	"github.com/prasetyadi/contracts-tracker/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string, pageTokens json.RawMessage) (*ent.ExtractJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error)
	FinishParseSuccess(ctx context.Context, jobID, contractID uuid.UUID, extracted json.RawMessage, needsReview bool) error
	FinishParseFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string, pageTokens json.RawMessage) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		SetPageTokens(pageTokens).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *extractJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error) {
	return r.ent.ExtractJob.Get(ctx, jobID)
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID, contractID uuid.UUID, extracted json.RawMessage, needsReview bool) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetContractID(contractID).
		SetExtractedJSON(extracted).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParseOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSE_OK)", "job_id", jobID, "contract_id", contractID, "needs_review", needsReview)
	return nil
}

func (r *extractJobRepo) FinishParseFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParseFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(PARSE_FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (PARSE_FAILED)", "job_id", jobID, "error", message)
	return nil
}
