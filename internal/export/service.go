package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/prasetyadi/contracts-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	contractsRepo repository.ContractRepository
	logger        *slog.Logger
}

func NewService(repo repository.ContractRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contractsRepo: repo, logger: logger}
}

// ExportContractsXLSX returns an XLSX workbook (as bytes) for the given date
// window, one sheet of contracts plus one sheet of termin installments.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all contracts.
func (s *Service) ExportContractsXLSX(ctx context.Context, from, to *time.Time) ([]byte, int, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	contracts, err := s.contractsRepo.ListContracts(ctx, fromDate, toDate)
	if err != nil {
		return nil, 0, fmt.Errorf("query contracts: %w", err)
	}

	f := excelize.NewFile()
	const contractsSheet = "Contracts"
	const terminSheet = "Termin Schedule"
	if index, _ := f.GetSheetIndex(contractsSheet); index == -1 {
		if _, err := f.NewSheet(contractsSheet); err != nil {
			return nil, 0, err
		}
	}
	if index, _ := f.GetSheetIndex(terminSheet); index == -1 {
		if _, err := f.NewSheet(terminSheet); err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(contractsSheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Customer",
		"NPWP",
		"Connectivity",
		"Non-Connectivity",
		"Bundling",
		"Installation Cost",
		"Subscription Cost",
		"Payment Method",
		"Confidence",
		"Valid From",
		"Valid Until",
		"Customer Contact",
		"Telkom Contact",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(contractsSheet, cell, h)
	}

	terminHeaders := []string{"Customer", "Sequence", "Period", "Amount", "Auto-Generated"}
	for i, h := range terminHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(terminSheet, cell, h)
	}

	row := 2
	terminRow := 2
	for _, c := range contracts {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(contractsSheet, cell, v)
		}

		write(1, c.CustomerName)
		write(2, orDash(c.CustomerNPWP))
		write(3, c.ConnectivityCount)
		write(4, c.NonConnectivity)
		write(5, c.BundlingCount)
		write(6, c.InstallationCost.StringFixed(2))
		write(7, c.SubscriptionCost.StringFixed(2))
		write(8, c.PaymentMethod)
		write(9, c.PaymentConfidence)
		write(10, formatDate(c.ValidFrom))
		write(11, formatDate(c.ValidUntil))
		write(12, contactCell(c.CustomerContactName, c.CustomerContactEmail))
		write(13, contactCell(c.TelkomContactName, c.TelkomContactEmail))
		row++

		installments, err := s.contractsRepo.ListTerminPayments(ctx, c.ID)
		if err != nil {
			s.logger.Warn("export.termin.skip", "contract_id", c.ID, "error", err)
			continue
		}
		for _, inst := range installments {
			writeTermin := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, terminRow)
				_ = f.SetCellValue(terminSheet, cell, v)
			}
			writeTermin(1, c.CustomerName)
			writeTermin(2, inst.Sequence)
			writeTermin(3, inst.PeriodLabel)
			writeTermin(4, inst.Amount.StringFixed(2))
			writeTermin(5, inst.Synthesized)
			terminRow++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(contractsSheet, "A", "A", 36) // customer
	_ = f.SetColWidth(contractsSheet, "B", "B", 20) // npwp
	_ = f.SetColWidth(contractsSheet, "F", "G", 18) // costs
	_ = f.SetColWidth(contractsSheet, "H", "I", 16) // payment
	_ = f.SetColWidth(contractsSheet, "J", "K", 12) // dates
	_ = f.SetColWidth(contractsSheet, "L", "M", 32) // contacts
	_ = f.SetColWidth(terminSheet, "A", "A", 36)
	_ = f.SetColWidth(terminSheet, "C", "D", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(contracts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(contracts), nil
}

func orDash(p *string) string {
	if p == nil || *p == "" {
		return "—"
	}
	return *p
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func contactCell(name, email *string) string {
	n, e := "", ""
	if name != nil {
		n = *name
	}
	if email != nil {
		e = *email
	}
	switch {
	case n != "" && e != "":
		return fmt.Sprintf("%s <%s>", n, e)
	case n != "":
		return n
	default:
		return e
	}
}
