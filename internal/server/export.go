package server

import (
	"context"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contractspb "github.com/prasetyadi/contracts-tracker/gen/proto/contracts/v1"
)

// ExportContracts writes an XLSX workbook server-side and returns its path.
// Date semantics:
//   - only from -> from..today (inclusive)
//   - only to   -> beginning..to (inclusive)
//   - none      -> all contracts.
func (s *ContractsService) ExportContracts(ctx context.Context, req *contractspb.ExportContractsRequest) (*contractspb.ExportContractsResponse, error) {
	outPath := strings.TrimSpace(req.GetOutputPath())
	if outPath == "" {
		return nil, status.Error(codes.InvalidArgument, "output_path is required")
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, count, err := s.exportSvc.ExportContractsXLSX(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	if err := os.WriteFile(outPath, xlsx, 0o644); err != nil {
		s.logger.Error("export.write.failed", "path", outPath, "err", err)
		return nil, status.Errorf(codes.Internal, "write workbook: %v", err)
	}
	s.logger.Info("export.ok", "path", outPath, "contracts", count)

	return &contractspb.ExportContractsResponse{
		FilePath:      outPath,
		ContractCount: int32(count),
	}, nil
}
