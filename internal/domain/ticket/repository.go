package ticket

import (
	"context"
	"time"

	vo "scalehouse/internal/domain/ticket/valueobjects"
)

// TicketFilter narrows a ticket search. String fields match the snapshot
// columns by prefix; zero values are ignored. DateFrom/DateTo bound
// created_at inclusively.
type TicketFilter struct {
	Number       string
	JobCode      string
	TruckNumber  string
	MaterialName string
	Direction    *vo.Direction
	JobID        *uint
	MaterialID   *uint
	DateFrom     *time.Time
	DateTo       *time.Time
	Limit        int
	Offset       int
}

// UnitTotal is an aggregate of ticket quantity per unit.
type UnitTotal struct {
	Unit          string
	TotalQuantity float64
}

// MaterialTotal is an aggregate of ticket quantity per material and unit.
type MaterialTotal struct {
	MaterialName  string
	Unit          string
	TotalQuantity float64
}

type TicketRepository interface {
	// Save inserts the ticket row, including the document blob. Committed
	// tickets are immutable; there is no update path.
	Save(ctx context.Context, t *Ticket) error
	FindByNumber(ctx context.Context, number string) (*Ticket, error)
	// Search returns matching tickets most recent first, without document
	// blobs.
	Search(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	// Document returns the stored blob and recorded path for a ticket.
	// The blob may be empty; callers fall back to reading the path.
	Document(ctx context.Context, number string) (blob []byte, path string, err error)
	TotalsByUnit(ctx context.Context, filter TicketFilter) ([]UnitTotal, error)
	TotalsByMaterial(ctx context.Context, filter TicketFilter) ([]MaterialTotal, error)
}

// SequenceRepository allocates ticket sequence numbers. Next must be a
// single atomic read-modify-write against the store so that concurrent
// callers for the same year never receive the same value, and the counter
// survives process restarts.
type SequenceRepository interface {
	Next(ctx context.Context, year int) (int, error)
}
