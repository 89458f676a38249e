package usecases

import (
	"context"
	"fmt"

	"scalehouse/internal/application/ticket/dto"
	"scalehouse/internal/domain/ticket"
	"scalehouse/internal/shared/biztime"
	"scalehouse/internal/shared/logger"
)

// ReportDocumentUseCase renders the activity report as a printable
// document and archives a copy in the reports directory.
type ReportDocumentUseCase struct {
	ticketRepo ticket.TicketRepository
	renderer   ReportRenderer
	store      DocumentStore
	printer    Printer
	logger     logger.Interface
}

func NewReportDocumentUseCase(
	ticketRepo ticket.TicketRepository,
	renderer ReportRenderer,
	store DocumentStore,
	printer Printer,
	logger logger.Interface,
) *ReportDocumentUseCase {
	return &ReportDocumentUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		store:      store,
		printer:    printer,
		logger:     logger,
	}
}

func (uc *ReportDocumentUseCase) Execute(ctx context.Context, request dto.ReportRequest) ([]byte, error) {
	filter, from, to, err := buildReportFilter(request)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list report tickets: %w", err)
	}
	unitTotals, err := uc.ticketRepo.TotalsByUnit(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to total by unit: %w", err)
	}
	materialTotals, err := uc.ticketRepo.TotalsByMaterial(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to total by material: %w", err)
	}

	generatedAt := biztime.Now()
	blob, err := uc.renderer.Render(ticket.ReportData{
		From:           from,
		To:             to,
		GeneratedAt:    generatedAt,
		Tickets:        tickets,
		UnitTotals:     unitTotals,
		MaterialTotals: materialTotals,
	})
	if err != nil {
		uc.logger.Errorw("report render failed", "error", err)
		return nil, err
	}

	name := fmt.Sprintf("report-%s-%s.pdf",
		from.In(biztime.Location()).Format("20060102"),
		to.In(biztime.Location()).Format("20060102"))
	path := uc.store.ReportPathFor(name)
	if err := uc.store.Write(path, blob); err != nil {
		// The caller still gets the document; the archive copy is a
		// convenience.
		uc.logger.Warnw("failed to archive report copy", "path", path, "error", err)
	} else if request.Print && uc.printer.Enabled() {
		if err := uc.printer.Print(ctx, path); err != nil {
			uc.logger.Warnw("report print dispatch failed", "path", path, "error", err)
		}
	}

	return blob, nil
}
