package usecases

import (
	"context"
	"fmt"

	"scalehouse/internal/application/ticket/dto"
	"scalehouse/internal/domain/catalog"
	"scalehouse/internal/domain/jobs"
	"scalehouse/internal/domain/ticket"
	vo "scalehouse/internal/domain/ticket/valueobjects"
	"scalehouse/internal/shared/biztime"
	"scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
)

// IssueTicketUseCase commits a new ticket: allocates the next number for
// the year, renders the document, writes it to disk, and inserts the row
// with the embedded blob. The sequence is advanced in its own transaction
// before rendering, so a render or commit failure leaves an auditable gap
// rather than a reused number.
type IssueTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	sequenceRepo ticket.SequenceRepository
	jobRepo      jobs.Repository
	truckRepo    catalog.TruckRepository
	materialRepo catalog.MaterialRepository
	renderer     TicketRenderer
	store        DocumentStore
	printer      Printer
	logger       logger.Interface
}

func NewIssueTicketUseCase(
	ticketRepo ticket.TicketRepository,
	sequenceRepo ticket.SequenceRepository,
	jobRepo jobs.Repository,
	truckRepo catalog.TruckRepository,
	materialRepo catalog.MaterialRepository,
	renderer TicketRenderer,
	store DocumentStore,
	printer Printer,
	logger logger.Interface,
) *IssueTicketUseCase {
	return &IssueTicketUseCase{
		ticketRepo:   ticketRepo,
		sequenceRepo: sequenceRepo,
		jobRepo:      jobRepo,
		truckRepo:    truckRepo,
		materialRepo: materialRepo,
		renderer:     renderer,
		store:        store,
		printer:      printer,
		logger:       logger,
	}
}

func (uc *IssueTicketUseCase) Execute(ctx context.Context, request dto.IssueTicketRequest) (*dto.TicketResponse, error) {
	direction, err := vo.NewDirection(request.Direction)
	if err != nil {
		return nil, errors.NewValidationError("direction must be IN or OUT", request.Direction)
	}

	snapshot, err := uc.resolveSnapshot(ctx, request)
	if err != nil {
		return nil, err
	}

	createdAt := biztime.Now()
	if request.CreatedAt != nil {
		createdAt = request.CreatedAt.In(biztime.Location())
	}
	t, err := ticket.NewTicket(direction, createdAt, snapshot, request.Quantity, request.Unit, request.Notes)
	if err != nil {
		return nil, errors.NewValidationError("invalid ticket", err.Error())
	}

	year := biztime.TicketYear(createdAt)
	sequence, err := uc.sequenceRepo.Next(ctx, year)
	if err != nil {
		uc.logger.Errorw("failed to allocate ticket number", "year", year, "error", err)
		return nil, fmt.Errorf("failed to allocate ticket number: %w", err)
	}
	if err := t.SetNumber(year, sequence); err != nil {
		return nil, fmt.Errorf("failed to assign ticket number: %w", err)
	}

	uc.logger.Infow("ticket number allocated", "number", t.Number())

	// The number is consumed from here on. Any failure below surfaces
	// it so the gap can be audited.
	blob, err := uc.renderer.Render(t)
	if err != nil {
		uc.logger.Errorw("ticket render failed", "number", t.Number(), "error", err)
		return nil, err
	}

	path := uc.store.PathFor(year, t.Number())
	if err := uc.store.Write(path, blob); err != nil {
		uc.logger.Errorw("ticket document write failed", "number", t.Number(), "error", err)
		return nil, errors.NewCommitError(t.Number(), "", err, nil)
	}

	if err := t.SetDocument(path, blob); err != nil {
		return nil, fmt.Errorf("failed to attach ticket document: %w", err)
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		cleanupErr := uc.store.Remove(path)
		if cleanupErr != nil {
			uc.logger.Errorw("orphan document left on disk",
				"number", t.Number(), "path", path, "error", cleanupErr)
		}
		uc.logger.Errorw("ticket commit failed", "number", t.Number(), "error", err)
		return nil, errors.NewCommitError(t.Number(), path, err, cleanupErr)
	}

	uc.logger.Infow("ticket committed", "number", t.Number(), "direction", t.Direction().String())

	response := ToTicketResponse(t)

	if request.Print && uc.printer.Enabled() {
		if err := uc.printer.Print(ctx, path); err != nil {
			uc.logger.Warnw("ticket print dispatch failed", "number", t.Number(), "error", err)
			response.PrintWarning = fmt.Sprintf("ticket committed but printing failed: %v", err)
		}
	}

	return response, nil
}

// resolveSnapshot builds the snapshot from catalog IDs where given and
// free text otherwise. An ID always wins over text for its fields.
func (uc *IssueTicketUseCase) resolveSnapshot(ctx context.Context, request dto.IssueTicketRequest) (ticket.Snapshot, error) {
	snapshot := ticket.Snapshot{
		JobCode:      request.JobCode,
		JobName:      request.JobName,
		Customer:     request.Customer,
		TruckNumber:  request.TruckNumber,
		MaterialName: request.MaterialName,
	}

	if request.JobID != nil {
		job, err := uc.jobRepo.FindByID(ctx, *request.JobID)
		if err != nil {
			return ticket.Snapshot{}, err
		}
		snapshot.JobID = &job.ID
		snapshot.JobCode = job.JobCode
		snapshot.JobName = job.JobName
		if job.Customer != "" {
			snapshot.Customer = job.Customer
		}
	}

	if request.TruckID != nil {
		truck, err := uc.truckRepo.FindByID(ctx, *request.TruckID)
		if err != nil {
			return ticket.Snapshot{}, err
		}
		snapshot.TruckID = &truck.ID
		snapshot.TruckNumber = truck.TruckNumber
	}

	if request.MaterialID != nil {
		material, err := uc.materialRepo.FindByID(ctx, *request.MaterialID)
		if err != nil {
			return ticket.Snapshot{}, err
		}
		snapshot.MaterialID = &material.ID
		snapshot.MaterialName = material.MaterialName
	}

	return snapshot, nil
}

// ToTicketResponse maps a ticket entity to its external view.
func ToTicketResponse(t *ticket.Ticket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:           t.ID(),
		TicketNumber: t.Number(),
		Year:         t.Year(),
		Sequence:     t.Sequence(),
		Direction:    t.Direction().String(),
		CreatedAt:    t.CreatedAt(),
		JobID:        t.JobID(),
		JobCode:      t.JobCode(),
		JobName:      t.JobName(),
		Customer:     t.Customer(),
		TruckID:      t.TruckID(),
		TruckNumber:  t.TruckNumber(),
		MaterialID:   t.MaterialID(),
		MaterialName: t.MaterialName(),
		Quantity:     t.Quantity(),
		Unit:         t.Unit(),
		Notes:        t.Notes(),
		DocumentPath: t.DocumentPath(),
	}
}
