package usecases

import (
	"context"

	"scalehouse/internal/application/ticket/dto"
	"scalehouse/internal/domain/ticket"
	"scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
)

// GetTicketUseCase retrieves one ticket by its number.
type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, number string) (*dto.TicketResponse, error) {
	if _, _, err := ticket.ParseNumber(number); err != nil {
		return nil, errors.NewValidationError("invalid ticket number", err.Error())
	}

	t, err := uc.ticketRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return ToTicketResponse(t), nil
}
