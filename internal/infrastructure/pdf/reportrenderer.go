package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"scalehouse/internal/domain/ticket"
	"scalehouse/internal/shared/config"
)

// ReportRenderer produces the ticket activity report.
type ReportRenderer struct {
	headerLines []string
}

func NewReportRenderer(cfg *config.CompanyConfig) *ReportRenderer {
	return &ReportRenderer{headerLines: cfg.HeaderLines}
}

func (r *ReportRenderer) Render(data ticket.ReportData) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCreationDate(data.GeneratedAt)
	doc.SetModificationDate(data.GeneratedAt)
	doc.SetTitle("Ticket Activity Report", false)
	doc.SetAutoPageBreak(true, 54)

	doc.AddPage()

	const left = 54.0
	const width = 504.0

	doc.SetFont("Helvetica", "B", 14)
	if len(r.headerLines) > 0 {
		doc.CellFormat(width, 16, r.headerLines[0], "", 1, "C", false, 0, "")
	}

	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(width, 18, "Ticket Activity Report", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(width, 14, fmt.Sprintf("%s through %s",
		data.From.Format("01/02/2006"), data.To.Format("01/02/2006")), "", 1, "C", false, 0, "")
	doc.Ln(10)

	colWidths := []float64{84, 36, 84, 60, 120, 66, 54}
	headers := []string{"Ticket #", "Dir", "Date", "Truck", "Material", "Qty", "Unit"}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 230, 230)
	doc.SetX(left)
	for i, h := range headers {
		doc.CellFormat(colWidths[i], 16, h, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	for _, t := range data.Tickets {
		doc.SetX(left)
		cells := []string{
			t.Number(),
			t.Direction().String(),
			t.CreatedAt().Format("01/02/2006"),
			t.TruckNumber(),
			t.MaterialName(),
			fmt.Sprintf("%.2f", t.Quantity()),
			t.Unit(),
		}
		for i, c := range cells {
			doc.CellFormat(colWidths[i], 14, c, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}
	doc.Ln(14)

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(width, 14, "Totals by Unit", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for _, ut := range data.UnitTotals {
		doc.CellFormat(width, 13, fmt.Sprintf("%s: %.2f", ut.Unit, ut.TotalQuantity), "", 1, "L", false, 0, "")
	}
	doc.Ln(8)

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(width, 14, "Totals by Material", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for _, mt := range data.MaterialTotals {
		doc.CellFormat(width, 13, fmt.Sprintf("%s (%s): %.2f",
			mt.MaterialName, mt.Unit, mt.TotalQuantity), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
