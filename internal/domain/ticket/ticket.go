package ticket

import (
	"fmt"
	"time"

	vo "scalehouse/internal/domain/ticket/valueobjects"
)

// Snapshot carries the reference data copied onto a ticket at creation
// time. The *_ID fields point back at the reference rows when the operator
// picked one; the display fields are what the ticket permanently records,
// immune to later edits or deletions of the source rows.
type Snapshot struct {
	JobID        *uint
	JobCode      string
	JobName      string
	Customer     string
	TruckID      *uint
	TruckNumber  string
	MaterialID   *uint
	MaterialName string
}

// Ticket is an immutable record of one IN/OUT weighing event. Once
// committed it is never updated or deleted by the application.
type Ticket struct {
	id           uint
	number       string
	year         int
	sequence     int
	direction    vo.Direction
	createdAt    time.Time
	jobID        *uint
	jobCode      string
	jobName      string
	customer     string
	truckID      *uint
	truckNumber  string
	materialID   *uint
	materialName string
	quantity     float64
	unit         string
	notes        string
	documentPath string
	document     []byte
}

func NewTicket(
	direction vo.Direction,
	createdAt time.Time,
	snapshot Snapshot,
	quantity float64,
	unit string,
	notes string,
) (*Ticket, error) {
	if !direction.IsValid() {
		return nil, fmt.Errorf("direction must be IN or OUT")
	}
	if createdAt.IsZero() {
		return nil, fmt.Errorf("created time is required")
	}
	if len(snapshot.JobCode) == 0 {
		return nil, fmt.Errorf("job code snapshot is required")
	}
	if len(snapshot.TruckNumber) == 0 {
		return nil, fmt.Errorf("truck number snapshot is required")
	}
	if len(snapshot.MaterialName) == 0 {
		return nil, fmt.Errorf("material name snapshot is required")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if len(unit) == 0 {
		return nil, fmt.Errorf("unit is required")
	}

	return &Ticket{
		direction:    direction,
		createdAt:    createdAt,
		jobID:        snapshot.JobID,
		jobCode:      snapshot.JobCode,
		jobName:      snapshot.JobName,
		customer:     snapshot.Customer,
		truckID:      snapshot.TruckID,
		truckNumber:  snapshot.TruckNumber,
		materialID:   snapshot.MaterialID,
		materialName: snapshot.MaterialName,
		quantity:     quantity,
		unit:         unit,
		notes:        notes,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	year int,
	sequence int,
	direction vo.Direction,
	createdAt time.Time,
	snapshot Snapshot,
	quantity float64,
	unit string,
	notes string,
	documentPath string,
	document []byte,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !direction.IsValid() {
		return nil, fmt.Errorf("invalid direction")
	}

	return &Ticket{
		id:           id,
		number:       number,
		year:         year,
		sequence:     sequence,
		direction:    direction,
		createdAt:    createdAt,
		jobID:        snapshot.JobID,
		jobCode:      snapshot.JobCode,
		jobName:      snapshot.JobName,
		customer:     snapshot.Customer,
		truckID:      snapshot.TruckID,
		truckNumber:  snapshot.TruckNumber,
		materialID:   snapshot.MaterialID,
		materialName: snapshot.MaterialName,
		quantity:     quantity,
		unit:         unit,
		notes:        notes,
		documentPath: documentPath,
		document:     document,
	}, nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) Number() string           { return t.number }
func (t *Ticket) Year() int                { return t.year }
func (t *Ticket) Sequence() int            { return t.sequence }
func (t *Ticket) Direction() vo.Direction  { return t.direction }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) JobID() *uint             { return t.jobID }
func (t *Ticket) JobCode() string          { return t.jobCode }
func (t *Ticket) JobName() string          { return t.jobName }
func (t *Ticket) Customer() string         { return t.customer }
func (t *Ticket) TruckID() *uint           { return t.truckID }
func (t *Ticket) TruckNumber() string      { return t.truckNumber }
func (t *Ticket) MaterialID() *uint        { return t.materialID }
func (t *Ticket) MaterialName() string     { return t.materialName }
func (t *Ticket) Quantity() float64        { return t.quantity }
func (t *Ticket) Unit() string             { return t.unit }
func (t *Ticket) Notes() string            { return t.notes }
func (t *Ticket) DocumentPath() string     { return t.documentPath }

// Document returns the stored document bytes. May be nil on tickets loaded
// by a search query, which omits the blob.
func (t *Ticket) Document() []byte { return t.document }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetNumber assigns the allocated (year, sequence) pair and the derived
// ticket number. A number can be assigned only once; numbers are never
// reassigned or reused.
func (t *Ticket) SetNumber(year, sequence int) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if year <= 0 || sequence <= 0 {
		return fmt.Errorf("year and sequence must be positive")
	}
	t.year = year
	t.sequence = sequence
	t.number = FormatNumber(year, sequence)
	return nil
}

// SetDocument attaches the rendered document and its storage path.
func (t *Ticket) SetDocument(path string, document []byte) error {
	if len(t.documentPath) > 0 {
		return fmt.Errorf("ticket document is already set")
	}
	if len(path) == 0 {
		return fmt.Errorf("document path cannot be empty")
	}
	if len(document) == 0 {
		return fmt.Errorf("document cannot be empty")
	}
	t.documentPath = path
	t.document = document
	return nil
}
