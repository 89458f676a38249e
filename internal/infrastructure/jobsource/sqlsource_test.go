package jobsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckColumns(t *testing.T) {
	t.Run("exact contract accepted", func(t *testing.T) {
		err := checkColumns([]string{"job_code", "job_name", "customer", "active", "source_updated_at"})
		assert.NoError(t, err)
	})

	tests := []struct {
		name    string
		columns []string
	}{
		{"too few columns", []string{"job_code", "job_name"}},
		{"extra column", []string{"job_code", "job_name", "customer", "active", "source_updated_at", "extra"}},
		{"wrong order", []string{"job_name", "job_code", "customer", "active", "source_updated_at"}},
		{"wrong name", []string{"job_code", "job_name", "customer_name", "active", "source_updated_at"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, checkColumns(tt.columns))
		})
	}
}
