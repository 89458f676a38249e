package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "scalehouse/internal/domain/ticket/valueobjects"
)

func validSnapshot() Snapshot {
	return Snapshot{
		JobCode:      "1001",
		JobName:      "Main St Resurfacing",
		Customer:     "City of Garfield Heights",
		TruckNumber:  "T-12",
		MaterialName: "Crushed Limestone",
	}
}

func TestNewTicket(t *testing.T) {
	createdAt := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	t.Run("valid ticket", func(t *testing.T) {
		tk, err := NewTicket(vo.DirectionIn, createdAt, validSnapshot(), 12.5, "tons", "wet load")
		require.NoError(t, err)
		assert.Equal(t, vo.DirectionIn, tk.Direction())
		assert.Equal(t, 12.5, tk.Quantity())
		assert.Equal(t, "tons", tk.Unit())
		assert.Empty(t, tk.Number())
	})

	tests := []struct {
		name    string
		mutate  func(s *Snapshot)
		dir     vo.Direction
		created time.Time
		qty     float64
		unit    string
	}{
		{"invalid direction", nil, vo.Direction("SIDEWAYS"), createdAt, 1, "tons"},
		{"zero created time", nil, vo.DirectionIn, time.Time{}, 1, "tons"},
		{"missing job code", func(s *Snapshot) { s.JobCode = "" }, vo.DirectionIn, createdAt, 1, "tons"},
		{"missing truck number", func(s *Snapshot) { s.TruckNumber = "" }, vo.DirectionIn, createdAt, 1, "tons"},
		{"missing material", func(s *Snapshot) { s.MaterialName = "" }, vo.DirectionIn, createdAt, 1, "tons"},
		{"negative quantity", nil, vo.DirectionIn, createdAt, -1, "tons"},
		{"missing unit", nil, vo.DirectionIn, createdAt, 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := validSnapshot()
			if tt.mutate != nil {
				tt.mutate(&snapshot)
			}
			_, err := NewTicket(tt.dir, tt.created, snapshot, tt.qty, tt.unit, "")
			assert.Error(t, err)
		})
	}

	t.Run("zero quantity is allowed", func(t *testing.T) {
		_, err := NewTicket(vo.DirectionOut, createdAt, validSnapshot(), 0, "loads", "")
		assert.NoError(t, err)
	})
}

func TestTicket_SetNumber(t *testing.T) {
	createdAt := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	tk, err := NewTicket(vo.DirectionIn, createdAt, validSnapshot(), 10, "tons", "")
	require.NoError(t, err)

	require.NoError(t, tk.SetNumber(2025, 7))
	assert.Equal(t, "DT-2025-000007", tk.Number())
	assert.Equal(t, 2025, tk.Year())
	assert.Equal(t, 7, tk.Sequence())

	t.Run("number cannot be reassigned", func(t *testing.T) {
		assert.Error(t, tk.SetNumber(2025, 8))
		assert.Equal(t, "DT-2025-000007", tk.Number())
	})

	t.Run("rejects non positive inputs", func(t *testing.T) {
		fresh, err := NewTicket(vo.DirectionIn, createdAt, validSnapshot(), 10, "tons", "")
		require.NoError(t, err)
		assert.Error(t, fresh.SetNumber(0, 1))
		assert.Error(t, fresh.SetNumber(2025, 0))
	})
}

func TestTicket_SetDocument(t *testing.T) {
	createdAt := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	tk, err := NewTicket(vo.DirectionIn, createdAt, validSnapshot(), 10, "tons", "")
	require.NoError(t, err)
	require.NoError(t, tk.SetNumber(2025, 1))

	blob := []byte("%PDF-1.4 test")
	require.NoError(t, tk.SetDocument("tickets_pdf/2025/DT-2025-000001.pdf", blob))
	assert.Equal(t, "tickets_pdf/2025/DT-2025-000001.pdf", tk.DocumentPath())
	assert.Equal(t, blob, tk.Document())

	t.Run("document cannot be replaced", func(t *testing.T) {
		assert.Error(t, tk.SetDocument("other.pdf", []byte("x")))
	})

	t.Run("rejects empty inputs", func(t *testing.T) {
		fresh, err := NewTicket(vo.DirectionIn, createdAt, validSnapshot(), 10, "tons", "")
		require.NoError(t, err)
		assert.Error(t, fresh.SetDocument("", blob))
		assert.Error(t, fresh.SetDocument("a.pdf", nil))
	})
}

func TestReconstructTicket(t *testing.T) {
	createdAt := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	t.Run("valid reconstruction", func(t *testing.T) {
		tk, err := ReconstructTicket(3, "DT-2025-000003", 2025, 3, vo.DirectionOut,
			createdAt, validSnapshot(), 8, "loads", "", "tickets_pdf/2025/DT-2025-000003.pdf", nil)
		require.NoError(t, err)
		assert.Equal(t, uint(3), tk.ID())
		assert.Nil(t, tk.Document())
	})

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := ReconstructTicket(0, "DT-2025-000003", 2025, 3, vo.DirectionOut,
			createdAt, validSnapshot(), 8, "loads", "", "", nil)
		assert.Error(t, err)
	})
}
