package usecases

import (
	"context"
	"fmt"
	"time"

	"scalehouse/internal/application/jobs/dto"
	"scalehouse/internal/domain/jobs"
	"scalehouse/internal/shared/biztime"
	"scalehouse/internal/shared/db"
	"scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
)

// RefreshJobsUseCase pulls the full job list from the external source and
// upserts it into the local cache. The fetch is validated before any row
// is written, and all upserts run in one transaction, so a failed refresh
// leaves the cache exactly as it was.
type RefreshJobsUseCase struct {
	source       jobs.Source
	repo         jobs.Repository
	txManager    *db.TransactionManager
	fetchTimeout time.Duration
	logger       logger.Interface
}

func NewRefreshJobsUseCase(
	source jobs.Source,
	repo jobs.Repository,
	txManager *db.TransactionManager,
	fetchTimeout time.Duration,
	logger logger.Interface,
) *RefreshJobsUseCase {
	if fetchTimeout <= 0 {
		fetchTimeout = 30 * time.Second
	}
	return &RefreshJobsUseCase{
		source:       source,
		repo:         repo,
		txManager:    txManager,
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

func (uc *RefreshJobsUseCase) Execute(ctx context.Context) (*dto.RefreshResult, error) {
	uc.logger.Infow("refreshing jobs cache", "source", uc.source.Name())

	fetchCtx, cancel := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancel()

	rows, err := uc.source.Fetch(fetchCtx)
	if err != nil {
		uc.logger.Errorw("jobs fetch failed, cache left untouched",
			"source", uc.source.Name(), "error", err)
		return nil, err
	}

	if err := validateRows(rows); err != nil {
		uc.logger.Errorw("jobs fetch returned malformed rows, cache left untouched",
			"source", uc.source.Name(), "error", err)
		return nil, err
	}

	refreshedAt := biztime.Now()
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, row := range rows {
			if err := uc.repo.Upsert(txCtx, row, refreshedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("jobs cache refresh failed, rolled back", "error", err)
		return nil, fmt.Errorf("failed to refresh jobs cache: %w", err)
	}

	uc.logger.Infow("jobs cache refreshed",
		"source", uc.source.Name(), "rows", len(rows))

	return &dto.RefreshResult{
		Source:      uc.source.Name(),
		RowCount:    len(rows),
		RefreshedAt: refreshedAt,
	}, nil
}

func validateRows(rows []jobs.SourceRow) error {
	if len(rows) == 0 {
		return errors.NewExternalSourceError("jobs source returned no rows")
	}
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		if row.JobCode == "" {
			return errors.NewExternalSourceError(
				fmt.Sprintf("jobs source row %d has an empty job code", i))
		}
		if _, dup := seen[row.JobCode]; dup {
			return errors.NewExternalSourceError(
				fmt.Sprintf("jobs source repeats job code %s", row.JobCode))
		}
		seen[row.JobCode] = struct{}{}
	}
	return nil
}
