package mappers

import (
	"time"

	"scalehouse/internal/domain/jobs"
	"scalehouse/internal/infrastructure/persistence/models"
)

// JobMapper converts between jobs cache entries and persistence models.
type JobMapper interface {
	ToModel(entry *jobs.CacheEntry) *models.JobCacheModel
	ToDomain(m *models.JobCacheModel) *jobs.CacheEntry
}

type jobMapper struct{}

func NewJobMapper() JobMapper {
	return &jobMapper{}
}

func (mp *jobMapper) ToModel(entry *jobs.CacheEntry) *models.JobCacheModel {
	var sourceUpdatedAt *int64
	if entry.SourceUpdatedAt != nil {
		ms := entry.SourceUpdatedAt.UnixMilli()
		sourceUpdatedAt = &ms
	}
	return &models.JobCacheModel{
		ID:              entry.ID,
		JobCode:         entry.JobCode,
		JobName:         entry.JobName,
		Customer:        entry.Customer,
		Active:          entry.Active,
		SourceUpdatedAt: sourceUpdatedAt,
		RefreshedAt:     entry.RefreshedAt.UnixMilli(),
	}
}

func (mp *jobMapper) ToDomain(m *models.JobCacheModel) *jobs.CacheEntry {
	var sourceUpdatedAt *time.Time
	if m.SourceUpdatedAt != nil {
		t := time.UnixMilli(*m.SourceUpdatedAt)
		sourceUpdatedAt = &t
	}
	return &jobs.CacheEntry{
		ID:              m.ID,
		JobCode:         m.JobCode,
		JobName:         m.JobName,
		Customer:        m.Customer,
		Active:          m.Active,
		SourceUpdatedAt: sourceUpdatedAt,
		RefreshedAt:     time.UnixMilli(m.RefreshedAt),
	}
}
