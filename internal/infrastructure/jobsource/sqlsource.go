package jobsource

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"scalehouse/internal/domain/jobs"
	"scalehouse/internal/shared/config"
	sharederrors "scalehouse/internal/shared/errors"
)

// expectedColumns is the contract the configured query must satisfy, in
// order. A query returning anything else is rejected before any rows are
// consumed.
var expectedColumns = []string{"job_code", "job_name", "customer", "active", "source_updated_at"}

// SQLSource pulls the job list from an external MySQL system of record.
// A fresh connection is opened per fetch and closed before returning;
// refreshes are rare enough that pooling buys nothing.
type SQLSource struct {
	dsn   string
	query string
}

func NewSQLSource(cfg *config.JobsConfig) *SQLSource {
	return &SQLSource{
		dsn:   cfg.DSN,
		query: cfg.Query,
	}
}

func (s *SQLSource) Name() string {
	return "sql"
}

func (s *SQLSource) Fetch(ctx context.Context) ([]jobs.SourceRow, error) {
	database, err := gorm.Open(mysql.Open(s.dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, sharederrors.NewExternalSourceError(
			fmt.Sprintf("failed to connect to jobs source: %v", err))
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, sharederrors.NewExternalSourceError(
			fmt.Sprintf("failed to get jobs source connection: %v", err))
	}
	defer sqlDB.Close()

	rows, err := database.WithContext(ctx).Raw(s.query).Rows()
	if err != nil {
		return nil, sharederrors.NewExternalSourceError(
			fmt.Sprintf("jobs source query failed: %v", err))
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, sharederrors.NewExternalSourceError(
			fmt.Sprintf("failed to read jobs source columns: %v", err))
	}
	if err := checkColumns(columns); err != nil {
		return nil, err
	}

	var result []jobs.SourceRow
	for rows.Next() {
		var (
			jobCode         string
			jobName         string
			customer        sql.NullString
			active          bool
			sourceUpdatedAt sql.NullTime
		)
		if err := rows.Scan(&jobCode, &jobName, &customer, &active, &sourceUpdatedAt); err != nil {
			return nil, sharederrors.NewExternalSourceError(
				fmt.Sprintf("failed to scan jobs source row: %v", err))
		}

		row := jobs.SourceRow{
			JobCode:  jobCode,
			JobName:  jobName,
			Customer: customer.String,
			Active:   active,
		}
		if sourceUpdatedAt.Valid {
			t := sourceUpdatedAt.Time
			row.SourceUpdatedAt = &t
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, sharederrors.NewExternalSourceError(
			fmt.Sprintf("jobs source row iteration failed: %v", err))
	}

	return result, nil
}

func checkColumns(columns []string) error {
	if len(columns) != len(expectedColumns) {
		return sharederrors.NewExternalSourceError(fmt.Sprintf(
			"jobs source query returned %d columns, expected %d (%v)",
			len(columns), len(expectedColumns), expectedColumns))
	}
	for i, want := range expectedColumns {
		if columns[i] != want {
			return sharederrors.NewExternalSourceError(fmt.Sprintf(
				"jobs source query column %d is %q, expected %q", i, columns[i], want))
		}
	}
	return nil
}

var _ jobs.Source = (*SQLSource)(nil)
