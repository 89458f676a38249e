package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"scalehouse/internal/application/ticket/dto"
	"scalehouse/internal/shared/logger"
)

// csvHeader matches the spreadsheet layout the billing office works with.
var csvHeader = []string{
	"Ticket #", "Direction", "Date", "Job #", "Job Name", "Customer",
	"Truck #", "Material", "Quantity", "Unit", "Notes",
}

// ExportReportCSVUseCase streams the report listing as CSV.
type ExportReportCSVUseCase struct {
	report *GetReportUseCase
	logger logger.Interface
}

func NewExportReportCSVUseCase(report *GetReportUseCase, logger logger.Interface) *ExportReportCSVUseCase {
	return &ExportReportCSVUseCase{report: report, logger: logger}
}

func (uc *ExportReportCSVUseCase) Execute(ctx context.Context, request dto.ReportRequest, w io.Writer) error {
	report, err := uc.report.Execute(ctx, request)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range report.Tickets {
		record := []string{
			t.TicketNumber,
			t.Direction,
			t.CreatedAt.Format("01/02/2006 3:04 PM"),
			t.JobCode,
			t.JobName,
			t.Customer,
			t.TruckNumber,
			t.MaterialName,
			strconv.FormatFloat(t.Quantity, 'f', 2, 64),
			t.Unit,
			t.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	if err := writeTotalsSections(writer, report); err != nil {
		return err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	uc.logger.Infow("report exported to CSV",
		"tickets", len(report.Tickets), "from", report.DateFrom, "to", report.DateTo)
	return nil
}

// writeTotalsSections appends the aggregate sections the billing office
// reconciles against, each separated by a blank row.
func writeTotalsSections(writer *csv.Writer, report *dto.ReportResponse) error {
	rows := [][]string{
		{},
		{"Totals by Unit"},
		{"Unit", "Total Quantity"},
	}
	for _, ut := range report.UnitTotals {
		rows = append(rows, []string{ut.Unit, strconv.FormatFloat(ut.TotalQuantity, 'f', 2, 64)})
	}

	rows = append(rows,
		[]string{},
		[]string{"Totals by Material"},
		[]string{"Material", "Unit", "Total Quantity"},
	)
	for _, mt := range report.MaterialTotals {
		rows = append(rows, []string{mt.MaterialName, mt.Unit, strconv.FormatFloat(mt.TotalQuantity, 'f', 2, 64)})
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV totals: %w", err)
		}
	}
	return nil
}
