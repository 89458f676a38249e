package jobsource

import (
	"context"

	"scalehouse/internal/domain/jobs"
	"scalehouse/internal/shared/config"
	sharederrors "scalehouse/internal/shared/errors"
)

// NewSource builds the configured jobs source. An empty source name
// yields a source that rejects every fetch, so refresh endpoints stay
// wired but report the missing configuration.
func NewSource(cfg *config.JobsConfig) jobs.Source {
	switch cfg.Source {
	case "sql":
		return NewSQLSource(cfg)
	case "csv":
		return NewCSVSource(cfg)
	default:
		return &disabledSource{}
	}
}

type disabledSource struct{}

func (s *disabledSource) Name() string {
	return "disabled"
}

func (s *disabledSource) Fetch(ctx context.Context) ([]jobs.SourceRow, error) {
	return nil, sharederrors.NewExternalSourceError("no jobs source is configured")
}
