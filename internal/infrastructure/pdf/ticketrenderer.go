package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"scalehouse/internal/domain/ticket"
	vo "scalehouse/internal/domain/ticket/valueobjects"
	"scalehouse/internal/shared/config"
	sharederrors "scalehouse/internal/shared/errors"
)

const maxNotesLength = 200

// TicketRenderer produces the two-page ticket document: a driver copy
// with signature lines and an internal billing copy. Output is
// deterministic for a given ticket; the embedded creation date is the
// ticket's own timestamp, not the wall clock.
type TicketRenderer struct {
	headerLines []string
}

func NewTicketRenderer(cfg *config.CompanyConfig) *TicketRenderer {
	return &TicketRenderer{headerLines: cfg.HeaderLines}
}

func (r *TicketRenderer) Render(t *ticket.Ticket) ([]byte, error) {
	if err := validateForRender(t); err != nil {
		return nil, &sharederrors.RenderError{TicketNumber: t.Number(), Err: err}
	}

	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCreationDate(t.CreatedAt())
	doc.SetModificationDate(t.CreatedAt())
	doc.SetTitle("Dump Ticket "+t.Number(), false)
	doc.SetAutoPageBreak(false, 36)

	r.renderCopy(doc, t, "Driver Copy - Signature Required", true)
	r.renderCopy(doc, t, "Internal Billing Copy", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &sharederrors.RenderError{TicketNumber: t.Number(), Err: err}
	}
	return buf.Bytes(), nil
}

func validateForRender(t *ticket.Ticket) error {
	switch {
	case t.Number() == "":
		return fmt.Errorf("ticket number is not assigned")
	case t.JobCode() == "":
		return fmt.Errorf("job code is empty")
	case t.TruckNumber() == "":
		return fmt.Errorf("truck number is empty")
	case t.MaterialName() == "":
		return fmt.Errorf("material name is empty")
	case t.Unit() == "":
		return fmt.Errorf("unit is empty")
	}
	return nil
}

func (r *TicketRenderer) renderCopy(doc *fpdf.Fpdf, t *ticket.Ticket, copyLabel string, withSignature bool) {
	doc.AddPage()

	const (
		left  = 54.0
		width = 504.0
	)
	y := 54.0

	doc.SetFont("Helvetica", "B", 14)
	for i, line := range r.headerLines {
		if i > 0 {
			doc.SetFont("Helvetica", "", 10)
		}
		doc.SetXY(left, y)
		doc.CellFormat(width, 14, line, "", 0, "C", false, 0, "")
		y += 16
	}
	y += 6

	doc.SetFont("Helvetica", "B", 16)
	doc.SetXY(left, y)
	doc.CellFormat(width, 20, "DUMP TICKET", "", 0, "C", false, 0, "")
	y += 22

	doc.SetFont("Helvetica", "I", 10)
	doc.SetXY(left, y)
	doc.CellFormat(width, 12, copyLabel, "", 0, "C", false, 0, "")
	y += 22

	doc.SetFont("Helvetica", "B", 12)
	doc.SetXY(left, y)
	doc.CellFormat(width/2, 16, "Ticket #: "+t.Number(), "", 0, "L", false, 0, "")
	doc.SetXY(left+width/2, y)
	doc.CellFormat(width/2, 16, "Date: "+t.CreatedAt().Format("01/02/2006 3:04 PM"), "", 0, "R", false, 0, "")
	y += 24

	doc.SetFont("Helvetica", "", 11)
	doc.SetXY(left, y)
	doc.CellFormat(width, 14, directionLine(t.Direction()), "", 0, "L", false, 0, "")
	y += 24

	y = r.drawField(doc, left, y, width, "Job", fmt.Sprintf("%s - %s", t.JobCode(), t.JobName()))
	if t.Customer() != "" {
		y = r.drawField(doc, left, y, width, "Customer", t.Customer())
	}
	y = r.drawField(doc, left, y, width, "Truck", t.TruckNumber())
	y = r.drawField(doc, left, y, width, "Material", t.MaterialName())
	y = r.drawField(doc, left, y, width, "Quantity", fmt.Sprintf("%.2f %s", t.Quantity(), t.Unit()))

	if notes := truncateNotes(t.Notes()); notes != "" {
		y = r.drawField(doc, left, y, width, "Notes", notes)
	}

	if withSignature {
		y += 40
		doc.SetFont("Helvetica", "", 10)
		half := width/2 - 18

		doc.Line(left, y, left+half, y)
		doc.SetXY(left, y+4)
		doc.CellFormat(half, 12, "Driver Signature", "", 0, "L", false, 0, "")

		doc.Line(left+width/2+18, y, left+width, y)
		doc.SetXY(left+width/2+18, y+4)
		doc.CellFormat(half, 12, "Received By", "", 0, "L", false, 0, "")
	}

	doc.SetFont("Helvetica", "", 8)
	doc.SetXY(left, 724)
	doc.CellFormat(width, 10,
		"Printed "+t.CreatedAt().Format("01/02/2006 3:04 PM"), "", 0, "C", false, 0, "")
}

func (r *TicketRenderer) drawField(doc *fpdf.Fpdf, left, y, width float64, label, value string) float64 {
	const rowHeight = 24.0

	doc.SetFont("Helvetica", "B", 10)
	doc.SetXY(left, y)
	doc.CellFormat(110, rowHeight, label, "1", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.SetXY(left+110, y)
	doc.CellFormat(width-110, rowHeight, value, "1", 0, "L", false, 0, "")

	return y + rowHeight
}

func directionLine(d vo.Direction) string {
	if d == vo.DirectionIn {
		return "Direction:   IN [X]    OUT [ ]"
	}
	return "Direction:   IN [ ]    OUT [X]"
}

func truncateNotes(notes string) string {
	if len(notes) <= maxNotesLength {
		return notes
	}
	return notes[:maxNotesLength]
}
