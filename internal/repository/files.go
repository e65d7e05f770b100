package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/gen/ent"
	entfile "github.com/prasetyadi/contracts-tracker/gen/ent/contractfile"
)

type ContractFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ContractFile, error)
	GetByPath(ctx context.Context, path string) (*ent.ContractFile, error)
	Create(ctx context.Context, filename, filePath string, pageCount int, uploadedAt time.Time) (*ent.ContractFile, error)
	UpsertByPath(ctx context.Context, filename, filePath string, pageCount int, uploadedAt time.Time) (*ent.ContractFile, bool, error)
}

type contractFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewContractFileRepository(entc *ent.Client, logger *slog.Logger) ContractFileRepository {
	return &contractFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *contractFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ContractFile, error) {
	return r.ent.ContractFile.Get(ctx, id)
}

func (r *contractFileRepo) GetByPath(ctx context.Context, path string) (*ent.ContractFile, error) {
	row, err := r.ent.ContractFile.Query().
		Where(entfile.FilePath(path)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *contractFileRepo) Create(ctx context.Context, filename, filePath string, pageCount int, uploadedAt time.Time) (*ent.ContractFile, error) {
	row, err := r.ent.ContractFile.Create().
		SetFilename(filename).
		SetFilePath(filePath).
		SetPageCount(pageCount).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contract file", "file_path", filePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *contractFileRepo) UpsertByPath(ctx context.Context, filename, filePath string, pageCount int, uploadedAt time.Time) (*ent.ContractFile, bool, error) {
	if existing, err := r.GetByPath(ctx, filePath); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, filename, filePath, pageCount, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert contract file by path", "file_path", filePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
