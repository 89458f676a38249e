package jobsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"scalehouse/internal/domain/jobs"
	"scalehouse/internal/shared/config"
	sharederrors "scalehouse/internal/shared/errors"
)

// headerAliases maps the column spellings seen in exported spreadsheets
// to canonical field names.
var headerAliases = map[string]string{
	"job #":         "job_code",
	"job_code":      "job_code",
	"job code":      "job_code",
	"job name":      "job_name",
	"job_name":      "job_name",
	"customer name": "customer",
	"customer":      "customer",
	"job status":    "status",
	"status":        "status",
}

// CSVSource reads the job list from an exported CSV file. Job status "A"
// marks an active job; anything else is inactive.
type CSVSource struct {
	path string
}

func NewCSVSource(cfg *config.JobsConfig) *CSVSource {
	return &CSVSource{path: cfg.CSVPath}
}

func (s *CSVSource) Name() string {
	return "csv"
}

func (s *CSVSource) Fetch(ctx context.Context) ([]jobs.SourceRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, sharederrors.NewExternalSourceError(
			fmt.Sprintf("failed to open jobs CSV: %v", err))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, sharederrors.NewExternalSourceError(
			fmt.Sprintf("failed to read jobs CSV header: %v", err))
	}

	fields := make(map[string]int)
	for i, name := range header {
		canonical, ok := headerAliases[strings.ToLower(strings.TrimSpace(name))]
		if ok {
			fields[canonical] = i
		}
	}
	for _, required := range []string{"job_code", "job_name"} {
		if _, ok := fields[required]; !ok {
			return nil, sharederrors.NewExternalSourceError(
				fmt.Sprintf("jobs CSV is missing a %s column", required))
		}
	}

	var result []jobs.SourceRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, sharederrors.NewExternalSourceError(
				fmt.Sprintf("failed to read jobs CSV record: %v", err))
		}

		row := jobs.SourceRow{
			JobCode: strings.TrimSpace(field(record, fields, "job_code")),
			JobName: strings.TrimSpace(field(record, fields, "job_name")),
			Active:  true,
		}
		if idx, ok := fields["customer"]; ok && idx < len(record) {
			row.Customer = strings.TrimSpace(record[idx])
		}
		if idx, ok := fields["status"]; ok && idx < len(record) {
			row.Active = strings.EqualFold(strings.TrimSpace(record[idx]), "A")
		}
		if row.JobCode == "" {
			continue
		}
		result = append(result, row)
	}

	return result, nil
}

func field(record []string, fields map[string]int, name string) string {
	idx, ok := fields[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

var _ jobs.Source = (*CSVSource)(nil)
