package usecases

import (
	"context"
	"fmt"
	"sort"
	"time"

	"scalehouse/internal/application/ticket/dto"
	"scalehouse/internal/domain/ticket"
	vo "scalehouse/internal/domain/ticket/valueobjects"
	"scalehouse/internal/shared/biztime"
	"scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
)

// defaultReportDays is the range used when neither bound is given.
const defaultReportDays = 14

// GetReportUseCase builds the activity report: the ticket listing for a
// date range plus quantity totals by unit and by material.
type GetReportUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetReportUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetReportUseCase {
	return &GetReportUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetReportUseCase) Execute(ctx context.Context, request dto.ReportRequest) (*dto.ReportResponse, error) {
	filter, from, to, err := buildReportFilter(request)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Errorw("report listing failed", "error", err)
		return nil, fmt.Errorf("failed to list report tickets: %w", err)
	}
	sortReportTickets(tickets)

	unitTotals, err := uc.ticketRepo.TotalsByUnit(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to total by unit: %w", err)
	}
	materialTotals, err := uc.ticketRepo.TotalsByMaterial(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to total by material: %w", err)
	}

	response := &dto.ReportResponse{
		DateFrom:       from.In(biztime.Location()).Format("2006-01-02"),
		DateTo:         to.In(biztime.Location()).Format("2006-01-02"),
		Tickets:        make([]dto.TicketResponse, 0, len(tickets)),
		UnitTotals:     make([]dto.UnitTotalResponse, 0, len(unitTotals)),
		MaterialTotals: make([]dto.MaterialTotalResponse, 0, len(materialTotals)),
	}
	for _, t := range tickets {
		response.Tickets = append(response.Tickets, *ToTicketResponse(t))
	}
	for _, ut := range unitTotals {
		response.UnitTotals = append(response.UnitTotals, dto.UnitTotalResponse{
			Unit:          ut.Unit,
			TotalQuantity: ut.TotalQuantity,
		})
	}
	for _, mt := range materialTotals {
		response.MaterialTotals = append(response.MaterialTotals, dto.MaterialTotalResponse{
			MaterialName:  mt.MaterialName,
			Unit:          mt.Unit,
			TotalQuantity: mt.TotalQuantity,
		})
	}
	return response, nil
}

// sortReportTickets orders the listing the way the printed report reads:
// grouped by customer, then direction, newest ticket first within a group.
func sortReportTickets(tickets []*ticket.Ticket) {
	sort.SliceStable(tickets, func(i, j int) bool {
		if tickets[i].Customer() != tickets[j].Customer() {
			return tickets[i].Customer() < tickets[j].Customer()
		}
		if tickets[i].Direction() != tickets[j].Direction() {
			return tickets[i].Direction() < tickets[j].Direction()
		}
		return tickets[i].ID() > tickets[j].ID()
	})
}

// buildReportFilter resolves the report bounds, defaulting to the last
// two weeks, and returns the resolved instants alongside the filter.
func buildReportFilter(request dto.ReportRequest) (ticket.TicketFilter, time.Time, time.Time, error) {
	from, to, err := parseDateRange(request.DateFrom, request.DateTo)
	if err != nil {
		return ticket.TicketFilter{}, time.Time{}, time.Time{}, err
	}
	if to == nil {
		end := biztime.EndOfDay(biztime.Now())
		to = &end
	}
	if from == nil {
		start := biztime.StartOfDay(to.AddDate(0, 0, -(defaultReportDays - 1)))
		from = &start
	}
	if from.After(*to) {
		return ticket.TicketFilter{}, time.Time{}, time.Time{}, errors.NewValidationError("date_from is after date_to")
	}

	filter := ticket.TicketFilter{
		JobCode:      request.JobCode,
		MaterialName: request.MaterialName,
		DateFrom:     from,
		DateTo:       to,
	}
	if request.Direction != "" {
		direction, err := vo.NewDirection(request.Direction)
		if err != nil {
			return ticket.TicketFilter{}, time.Time{}, time.Time{}, errors.NewValidationError(
				"direction must be IN or OUT", request.Direction)
		}
		filter.Direction = &direction
	}
	return filter, *from, *to, nil
}
