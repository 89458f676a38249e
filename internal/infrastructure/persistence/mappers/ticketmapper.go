package mappers

import (
	"time"

	"scalehouse/internal/domain/ticket"
	vo "scalehouse/internal/domain/ticket/valueobjects"
	"scalehouse/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(m *models.TicketModel) (*ticket.Ticket, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (mp *ticketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                   t.ID(),
		TicketNumber:         t.Number(),
		TicketYear:           t.Year(),
		TicketSequence:       t.Sequence(),
		Direction:            t.Direction().String(),
		CreatedAt:            t.CreatedAt().UnixMilli(),
		JobID:                t.JobID(),
		JobCodeSnapshot:      t.JobCode(),
		JobNameSnapshot:      t.JobName(),
		CustomerSnapshot:     t.Customer(),
		TruckID:              t.TruckID(),
		TruckNumberSnapshot:  t.TruckNumber(),
		MaterialID:           t.MaterialID(),
		MaterialNameSnapshot: t.MaterialName(),
		Quantity:             t.Quantity(),
		Unit:                 t.Unit(),
		Notes:                t.Notes(),
		PDFPath:              t.DocumentPath(),
		PDFBlob:              t.Document(),
	}
}

func (mp *ticketMapper) ToDomain(m *models.TicketModel) (*ticket.Ticket, error) {
	direction, err := vo.NewDirection(m.Direction)
	if err != nil {
		return nil, err
	}

	snapshot := ticket.Snapshot{
		JobID:        m.JobID,
		JobCode:      m.JobCodeSnapshot,
		JobName:      m.JobNameSnapshot,
		Customer:     m.CustomerSnapshot,
		TruckID:      m.TruckID,
		TruckNumber:  m.TruckNumberSnapshot,
		MaterialID:   m.MaterialID,
		MaterialName: m.MaterialNameSnapshot,
	}

	return ticket.ReconstructTicket(
		m.ID,
		m.TicketNumber,
		m.TicketYear,
		m.TicketSequence,
		direction,
		time.UnixMilli(m.CreatedAt),
		snapshot,
		m.Quantity,
		m.Unit,
		m.Notes,
		m.PDFPath,
		m.PDFBlob,
	)
}
