package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		sequence int
		want     string
	}{
		{"first of year", 2025, 1, "DT-2025-000001"},
		{"six digit padding", 2025, 42, "DT-2025-000042"},
		{"large sequence", 2026, 123456, "DT-2026-123456"},
		{"beyond padding width", 2026, 1234567, "DT-2026-1234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.year, tt.sequence))
		})
	}
}

func TestParseNumber(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		year, sequence, err := ParseNumber(FormatNumber(2025, 37))
		require.NoError(t, err)
		assert.Equal(t, 2025, year)
		assert.Equal(t, 37, sequence)
	})

	t.Run("round trip past padding width", func(t *testing.T) {
		year, sequence, err := ParseNumber(FormatNumber(2026, 1234567))
		require.NoError(t, err)
		assert.Equal(t, 2026, year)
		assert.Equal(t, 1234567, sequence)
	})

	invalid := []struct {
		name   string
		number string
	}{
		{"empty", ""},
		{"wrong prefix", "TK-2025-000001"},
		{"missing sequence", "DT-2025"},
		{"short sequence", "DT-2025-01"},
		{"zero sequence", "DT-2025-000000"},
		{"non numeric year", "DT-20XX-000001"},
		{"non numeric sequence", "DT-2025-00000X"},
		{"extra segment", "DT-2025-000001-A"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseNumber(tt.number)
			assert.Error(t, err)
		})
	}
}
