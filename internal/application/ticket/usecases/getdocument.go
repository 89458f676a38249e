package usecases

import (
	"context"

	"scalehouse/internal/domain/ticket"
	"scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
)

// GetDocumentUseCase returns the stored document for a ticket. The blob
// in the database is authoritative; the file on disk is a fallback for
// rows written before blobs were stored.
type GetDocumentUseCase struct {
	ticketRepo ticket.TicketRepository
	store      DocumentStore
	logger     logger.Interface
}

func NewGetDocumentUseCase(ticketRepo ticket.TicketRepository, store DocumentStore, logger logger.Interface) *GetDocumentUseCase {
	return &GetDocumentUseCase{ticketRepo: ticketRepo, store: store, logger: logger}
}

func (uc *GetDocumentUseCase) Execute(ctx context.Context, number string) ([]byte, error) {
	if _, _, err := ticket.ParseNumber(number); err != nil {
		return nil, errors.NewValidationError("invalid ticket number", err.Error())
	}

	blob, path, err := uc.ticketRepo.Document(ctx, number)
	if err != nil {
		return nil, err
	}
	if len(blob) > 0 {
		return blob, nil
	}

	uc.logger.Warnw("ticket has no stored blob, reading from disk", "number", number, "path", path)
	data, err := uc.store.Read(path)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket document is missing", number)
	}
	return data, nil
}
