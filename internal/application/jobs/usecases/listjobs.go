package usecases

import (
	"context"
	"fmt"

	"scalehouse/internal/application/jobs/dto"
	"scalehouse/internal/domain/jobs"
	"scalehouse/internal/shared/logger"
)

// ListJobsUseCase lists the active jobs from the local cache.
type ListJobsUseCase struct {
	repo   jobs.Repository
	logger logger.Interface
}

func NewListJobsUseCase(repo jobs.Repository, logger logger.Interface) *ListJobsUseCase {
	return &ListJobsUseCase{repo: repo, logger: logger}
}

func (uc *ListJobsUseCase) Execute(ctx context.Context) ([]dto.JobResponse, error) {
	entries, err := uc.repo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list jobs", "error", err)
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	responses := make([]dto.JobResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToJobResponse(entry))
	}
	return responses, nil
}

// ToJobResponse maps a cache entry to its external view.
func ToJobResponse(entry *jobs.CacheEntry) dto.JobResponse {
	return dto.JobResponse{
		ID:              entry.ID,
		JobCode:         entry.JobCode,
		JobName:         entry.JobName,
		Customer:        entry.Customer,
		Active:          entry.Active,
		SourceUpdatedAt: entry.SourceUpdatedAt,
		RefreshedAt:     entry.RefreshedAt,
	}
}
