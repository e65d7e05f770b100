package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/prasetyadi/contracts-tracker/constants"
	contractspb "github.com/prasetyadi/contracts-tracker/gen/proto/contracts/v1"
	"github.com/prasetyadi/contracts-tracker/internal/async"
	processor "github.com/prasetyadi/contracts-tracker/internal/pipeline"
	"github.com/prasetyadi/contracts-tracker/internal/repository"
	"github.com/prasetyadi/contracts-tracker/internal/utils"
)

type ExtractionService struct {
	contractspb.UnimplementedExtractionServiceServer
	filesRepo repository.ContractFileRepository
	jobsRepo  repository.ExtractJobRepository
	queue     async.Queue
	logger    *slog.Logger
}

func NewExtractionService(files repository.ContractFileRepository, jobs repository.ExtractJobRepository, queue async.Queue, logger *slog.Logger) *ExtractionService {
	return &ExtractionService{
		filesRepo: files,
		jobsRepo:  jobs,
		queue:     queue,
		logger:    logger,
	}
}

// ExtractContract registers the scan, stores the page token dumps on a new
// job, and queues the parse. Extraction itself runs on the worker pool; the
// caller polls GetExtractJob for completion.
func (s *ExtractionService) ExtractContract(ctx context.Context, req *contractspb.ExtractContractRequest) (*contractspb.ExtractContractResponse, error) {
	path := strings.TrimSpace(req.GetFilePath())
	if path == "" {
		s.logger.Error("extract request missing file_path")
		return nil, status.Error(codes.InvalidArgument, "file_path is required")
	}
	if len(req.GetPage1Tokens()) == 0 {
		s.logger.Error("extract request missing page1_tokens", "file_path", path)
		return nil, status.Error(codes.InvalidArgument, "page1_tokens is required")
	}
	if !json.Valid(req.GetPage1Tokens()) {
		return nil, status.Error(codes.InvalidArgument, "page1_tokens must be valid JSON")
	}
	if len(req.GetPage2Tokens()) > 0 && !json.Valid(req.GetPage2Tokens()) {
		return nil, status.Error(codes.InvalidArgument, "page2_tokens must be valid JSON")
	}

	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		filename = filepath.Base(path)
	}

	pageCount := 1
	if len(req.GetPage2Tokens()) > 0 {
		pageCount = 2
	}
	format := jobFormat(pageCount)

	file, deduplicated, err := s.filesRepo.UpsertByPath(ctx, filename, path, pageCount, time.Now().UTC())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "register file: %v", err)
	}
	s.logger.Info("file registered", "file_id", file.ID, "file_path", path, "deduplicated", deduplicated)

	pages, err := json.Marshal(processor.PageTokens{
		Page1: req.GetPage1Tokens(),
		Page2: req.GetPage2Tokens(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode page tokens: %v", err)
	}

	job, err := s.jobsRepo.Start(ctx, file.ID, string(format), pages)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "start job: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{JobID: job.ID}); err != nil {
		_ = s.jobsRepo.FinishParseFailure(ctx, job.ID, err.Error())
		return nil, status.Errorf(codes.Unavailable, "enqueue job: %v", err)
	}
	s.logger.Info("extract job queued", "job_id", job.ID, "file_id", file.ID)

	return &contractspb.ExtractContractResponse{
		Job: utils.ToPBExtractJob(utils.ToExtractJob(job)),
	}, nil
}

// jobFormat records which page dumps a job carries. A single-page request is
// always page 1; the standalone page-2 format is reserved for re-parses of an
// already registered scan.
func jobFormat(pageCount int) constants.PageFormat {
	if pageCount >= 2 {
		return constants.PageFormatBoth
	}
	return constants.PageFormatFirst
}

func (s *ExtractionService) GetExtractJob(ctx context.Context, req *contractspb.GetExtractJobRequest) (*contractspb.GetExtractJobResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		s.logger.Error("invalid job_id format", "job_id", req.GetJobId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	job, err := s.jobsRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get job", "job_id", id, "error", err)
		return nil, status.Errorf(codes.NotFound, "job %s not found", id)
	}
	return &contractspb.GetExtractJobResponse{Job: utils.ToPBExtractJob(utils.ToExtractJob(job))}, nil
}
