package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scalehouse/internal/domain/jobs"
	"scalehouse/internal/infrastructure/persistence/mappers"
	"scalehouse/internal/infrastructure/persistence/models"
	"scalehouse/internal/shared/db"
	sharederrors "scalehouse/internal/shared/errors"
)

type JobCacheRepository struct {
	db     *gorm.DB
	mapper mappers.JobMapper
}

func NewJobCacheRepository(database *gorm.DB) *JobCacheRepository {
	return &JobCacheRepository{
		db:     database,
		mapper: mappers.NewJobMapper(),
	}
}

func (r *JobCacheRepository) Upsert(ctx context.Context, row jobs.SourceRow, refreshedAt time.Time) error {
	var sourceUpdatedAt *int64
	if row.SourceUpdatedAt != nil {
		ms := row.SourceUpdatedAt.UnixMilli()
		sourceUpdatedAt = &ms
	}
	model := models.JobCacheModel{
		JobCode:         row.JobCode,
		JobName:         row.JobName,
		Customer:        row.Customer,
		Active:          row.Active,
		SourceUpdatedAt: sourceUpdatedAt,
		RefreshedAt:     refreshedAt.UnixMilli(),
	}

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "job_code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"job_name", "customer", "active", "source_updated_at", "refreshed_at",
		}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert job %s: %w", row.JobCode, err)
	}
	return nil
}

func (r *JobCacheRepository) FindByID(ctx context.Context, id uint) (*jobs.CacheEntry, error) {
	var model models.JobCacheModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sharederrors.NewNotFoundError(fmt.Sprintf("job %d not found", id))
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *JobCacheRepository) FindByCode(ctx context.Context, jobCode string) (*jobs.CacheEntry, error) {
	var model models.JobCacheModel
	err := r.db.WithContext(ctx).Where("job_code = ?", jobCode).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sharederrors.NewNotFoundError(fmt.Sprintf("job %s not found", jobCode))
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *JobCacheRepository) ListActive(ctx context.Context) ([]*jobs.CacheEntry, error) {
	var modelList []models.JobCacheModel
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("job_code").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	entries := make([]*jobs.CacheEntry, 0, len(modelList))
	for i := range modelList {
		entries = append(entries, r.mapper.ToDomain(&modelList[i]))
	}
	return entries, nil
}
