package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contractspb "github.com/prasetyadi/contracts-tracker/gen/proto/contracts/v1"
	"github.com/prasetyadi/contracts-tracker/internal/export"
	"github.com/prasetyadi/contracts-tracker/internal/repository"
	"github.com/prasetyadi/contracts-tracker/internal/utils"
)

type ContractsService struct {
	contractspb.UnimplementedContractsServiceServer
	contractRepo repository.ContractRepository
	exportSvc    *export.Service
	logger       *slog.Logger
}

func NewContractsService(contractRepo repository.ContractRepository, exportSvc *export.Service, logger *slog.Logger) *ContractsService {
	return &ContractsService{
		contractRepo: contractRepo,
		exportSvc:    exportSvc,
		logger:       logger,
	}
}

func (s *ContractsService) GetContract(ctx context.Context, req *contractspb.GetContractRequest) (*contractspb.GetContractResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetContractId()))
	if err != nil {
		s.logger.Error("invalid contract_id format", "contract_id", req.GetContractId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "contract_id must be a UUID")
	}

	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get contract", "contract_id", id, "error", err)
		return nil, status.Errorf(codes.NotFound, "contract %s not found", id)
	}
	installments, err := s.contractRepo.ListTerminPayments(ctx, id)
	if err != nil {
		s.logger.Error("failed to list termin payments", "contract_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "list termin payments: %v", err)
	}

	out := make([]*contractspb.TerminPayment, 0, len(installments))
	for _, inst := range installments {
		out = append(out, utils.ToPBTerminPayment(inst))
	}
	return &contractspb.GetContractResponse{
		Contract:       utils.ToPBContract(contract),
		TerminPayments: out,
	}, nil
}

func (s *ContractsService) ListContracts(ctx context.Context, req *contractspb.ListContractsRequest) (*contractspb.ListContractsResponse, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	s.logger.Info("listing contracts", "from_date", fromDate, "to_date", toDate)
	contracts, err := s.contractRepo.ListContracts(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list contracts", "error", err)
		return nil, status.Errorf(codes.Internal, "list contracts: %v", err)
	}
	s.logger.Info("contracts listed successfully", "count", len(contracts))

	out := make([]*contractspb.Contract, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, utils.ToPBContract(c))
	}
	return &contractspb.ListContractsResponse{Contracts: out}, nil
}

