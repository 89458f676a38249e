package usecases

import (
	"context"

	"scalehouse/internal/domain/ticket"
)

// TicketRenderer renders the printable document for a numbered ticket.
type TicketRenderer interface {
	Render(t *ticket.Ticket) ([]byte, error)
}

// ReportRenderer renders the printable activity report.
type ReportRenderer interface {
	Render(data ticket.ReportData) ([]byte, error)
}

// DocumentStore persists rendered documents on disk.
type DocumentStore interface {
	PathFor(year int, number string) string
	ReportPathFor(name string) string
	Write(path string, data []byte) error
	Read(path string) ([]byte, error)
	Remove(path string) error
}

// Printer dispatches a stored document to the physical printer.
type Printer interface {
	Print(ctx context.Context, path string) error
	Enabled() bool
}
