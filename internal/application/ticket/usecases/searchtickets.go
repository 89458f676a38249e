package usecases

import (
	"context"
	"fmt"
	"time"

	"scalehouse/internal/application/ticket/dto"
	"scalehouse/internal/domain/ticket"
	vo "scalehouse/internal/domain/ticket/valueobjects"
	"scalehouse/internal/shared/biztime"
	"scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
)

const (
	defaultSearchLimit = 100
	maxSearchLimit     = 500
)

// SearchTicketsUseCase lists tickets matching a filter, most recent first.
type SearchTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewSearchTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *SearchTicketsUseCase {
	return &SearchTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *SearchTicketsUseCase) Execute(ctx context.Context, request dto.SearchTicketsRequest) ([]dto.TicketResponse, error) {
	filter, err := buildFilter(request)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Errorw("ticket search failed", "error", err)
		return nil, fmt.Errorf("failed to search tickets: %w", err)
	}

	responses := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, *ToTicketResponse(t))
	}
	return responses, nil
}

func buildFilter(request dto.SearchTicketsRequest) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		Number:       request.Number,
		JobCode:      request.JobCode,
		TruckNumber:  request.TruckNumber,
		MaterialName: request.MaterialName,
		Limit:        request.Limit,
		Offset:       request.Offset,
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultSearchLimit
	}
	if filter.Limit > maxSearchLimit {
		filter.Limit = maxSearchLimit
	}

	if request.Direction != "" {
		direction, err := vo.NewDirection(request.Direction)
		if err != nil {
			return ticket.TicketFilter{}, errors.NewValidationError(
				"direction must be IN or OUT", request.Direction)
		}
		filter.Direction = &direction
	}

	from, to, err := parseDateRange(request.DateFrom, request.DateTo)
	if err != nil {
		return ticket.TicketFilter{}, err
	}
	filter.DateFrom = from
	filter.DateTo = to

	return filter, nil
}

// parseDateRange converts inclusive YYYY-MM-DD business-day bounds to UTC
// instants.
func parseDateRange(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if fromStr != "" {
		day, err := time.ParseInLocation("2006-01-02", fromStr, biztime.Location())
		if err != nil {
			return nil, nil, errors.NewValidationError("invalid date_from", fromStr)
		}
		start := biztime.StartOfDay(day)
		from = &start
	}
	if toStr != "" {
		day, err := time.ParseInLocation("2006-01-02", toStr, biztime.Location())
		if err != nil {
			return nil, nil, errors.NewValidationError("invalid date_to", toStr)
		}
		end := biztime.EndOfDay(day)
		to = &end
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, errors.NewValidationError("date_from is after date_to")
	}
	return from, to, nil
}
