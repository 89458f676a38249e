package usecases

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scalehouse/internal/application/ticket/dto"
	"scalehouse/internal/domain/ticket"
	vo "scalehouse/internal/domain/ticket/valueobjects"
	"scalehouse/internal/shared/logger"
)

func reportTicket(t *testing.T, seq int) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		uint(seq), ticket.FormatNumber(2025, seq), 2025, seq, vo.DirectionIn,
		time.Date(2025, 6, 10+seq, 9, 0, 0, 0, time.UTC),
		ticket.Snapshot{
			JobCode:      "1001",
			JobName:      "Main St Resurfacing",
			TruckNumber:  "T-12",
			MaterialName: "Crushed Limestone",
		}, 10, "tons", "", "", nil)
	require.NoError(t, err)
	return tk
}

func TestGetReport(t *testing.T) {
	repo := &mockTicketRepo{
		searchFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
			// Report ranges are always bounded.
			require.NotNil(t, filter.DateFrom)
			require.NotNil(t, filter.DateTo)
			return []*ticket.Ticket{reportTicket(t, 2), reportTicket(t, 1)}, nil
		},
		totalsByUnitFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]ticket.UnitTotal, error) {
			return []ticket.UnitTotal{{Unit: "tons", TotalQuantity: 20}}, nil
		},
		totalsByMaterialFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]ticket.MaterialTotal, error) {
			return []ticket.MaterialTotal{{MaterialName: "Crushed Limestone", Unit: "tons", TotalQuantity: 20}}, nil
		},
	}
	uc := NewGetReportUseCase(repo, logger.NewLogger())

	t.Run("explicit range", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), dto.ReportRequest{
			DateFrom: "2025-06-01",
			DateTo:   "2025-06-30",
		})
		require.NoError(t, err)
		assert.Equal(t, "2025-06-01", result.DateFrom)
		assert.Equal(t, "2025-06-30", result.DateTo)
		assert.Len(t, result.Tickets, 2)
		require.Len(t, result.UnitTotals, 1)
		assert.Equal(t, 20.0, result.UnitTotals[0].TotalQuantity)
	})

	t.Run("defaults to a bounded recent range", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), dto.ReportRequest{})
		require.NoError(t, err)
		assert.NotEmpty(t, result.DateFrom)
		assert.NotEmpty(t, result.DateTo)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), dto.ReportRequest{
			DateFrom: "2025-06-30",
			DateTo:   "2025-06-01",
		})
		assert.Error(t, err)
	})
}

func TestExportReportCSV(t *testing.T) {
	repo := &mockTicketRepo{
		searchFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{reportTicket(t, 1)}, nil
		},
		totalsByUnitFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]ticket.UnitTotal, error) {
			return []ticket.UnitTotal{{Unit: "tons", TotalQuantity: 10}}, nil
		},
		totalsByMaterialFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]ticket.MaterialTotal, error) {
			return []ticket.MaterialTotal{{MaterialName: "Crushed Limestone", Unit: "tons", TotalQuantity: 10}}, nil
		},
	}
	report := NewGetReportUseCase(repo, logger.NewLogger())
	uc := NewExportReportCSVUseCase(report, logger.NewLogger())

	var buf bytes.Buffer
	err := uc.Execute(context.Background(), dto.ReportRequest{
		DateFrom: "2025-06-01",
		DateTo:   "2025-06-30",
	}, &buf)
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], "Ticket #")
	assert.Contains(t, lines[1], "DT-2025-000001")
	assert.Contains(t, lines[1], "Crushed Limestone")
	assert.Contains(t, lines[1], "10.00")

	// The totals sections follow the listing, each after a blank row.
	assert.Contains(t, out, "\n\nTotals by Unit\nUnit,Total Quantity\ntons,10.00\n")
	assert.Contains(t, out, "\n\nTotals by Material\nMaterial,Unit,Total Quantity\nCrushed Limestone,tons,10.00\n")
}
