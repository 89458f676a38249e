package usecases

import (
	"context"

	"scalehouse/internal/domain/ticket"
	"scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
)

// PrintTicketUseCase re-sends a committed ticket's document to the
// printer. The file on disk is refreshed from the stored blob when
// missing.
type PrintTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	store      DocumentStore
	printer    Printer
	logger     logger.Interface
}

func NewPrintTicketUseCase(
	ticketRepo ticket.TicketRepository,
	store DocumentStore,
	printer Printer,
	logger logger.Interface,
) *PrintTicketUseCase {
	return &PrintTicketUseCase{
		ticketRepo: ticketRepo,
		store:      store,
		printer:    printer,
		logger:     logger,
	}
}

func (uc *PrintTicketUseCase) Execute(ctx context.Context, number string) error {
	if !uc.printer.Enabled() {
		return errors.NewValidationError("printing is disabled")
	}
	if _, _, err := ticket.ParseNumber(number); err != nil {
		return errors.NewValidationError("invalid ticket number", err.Error())
	}

	blob, path, err := uc.ticketRepo.Document(ctx, number)
	if err != nil {
		return err
	}

	if _, err := uc.store.Read(path); err != nil {
		if len(blob) == 0 {
			return errors.NewNotFoundError("ticket document is missing", number)
		}
		uc.logger.Warnw("restoring ticket document from stored blob", "number", number, "path", path)
		if err := uc.store.Write(path, blob); err != nil {
			return err
		}
	}

	if err := uc.printer.Print(ctx, path); err != nil {
		uc.logger.Errorw("ticket print dispatch failed", "number", number, "error", err)
		return errors.NewInternalError("print dispatch failed", err.Error())
	}
	return nil
}
