package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scalehouse/internal/domain/jobs"
	sharederrors "scalehouse/internal/shared/errors"
)

func TestJobCacheRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobCacheRepository(db)
	ctx := context.Background()
	refreshedAt := time.Date(2025, 6, 15, 6, 0, 0, 0, time.UTC)

	row := jobs.SourceRow{
		JobCode:  "1001",
		JobName:  "Main St Resurfacing",
		Customer: "City of Garfield Heights",
		Active:   true,
	}

	t.Run("insert then find", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, row, refreshedAt))

		entry, err := repo.FindByCode(ctx, "1001")
		require.NoError(t, err)
		assert.Equal(t, "Main St Resurfacing", entry.JobName)
		assert.True(t, entry.Active)
		assert.True(t, entry.RefreshedAt.Equal(refreshedAt))
	})

	t.Run("upsert overwrites by job code, id is stable", func(t *testing.T) {
		first, err := repo.FindByCode(ctx, "1001")
		require.NoError(t, err)

		updated := row
		updated.JobName = "Main St Resurfacing Phase 2"
		updated.Active = false
		later := refreshedAt.Add(24 * time.Hour)
		require.NoError(t, repo.Upsert(ctx, updated, later))

		entry, err := repo.FindByCode(ctx, "1001")
		require.NoError(t, err)
		assert.Equal(t, first.ID, entry.ID)
		assert.Equal(t, "Main St Resurfacing Phase 2", entry.JobName)
		assert.False(t, entry.Active)
		assert.True(t, entry.RefreshedAt.Equal(later))
	})

	t.Run("upsert is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, row, refreshedAt))
		require.NoError(t, repo.Upsert(ctx, row, refreshedAt))

		entries, err := repo.ListActive(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestJobCacheRepository_ListActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobCacheRepository(db)
	ctx := context.Background()
	refreshedAt := time.Now().UTC()

	require.NoError(t, repo.Upsert(ctx, jobs.SourceRow{JobCode: "2002", JobName: "B", Active: true}, refreshedAt))
	require.NoError(t, repo.Upsert(ctx, jobs.SourceRow{JobCode: "1001", JobName: "A", Active: true}, refreshedAt))
	require.NoError(t, repo.Upsert(ctx, jobs.SourceRow{JobCode: "3003", JobName: "C", Active: false}, refreshedAt))

	entries, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "1001", entries[0].JobCode)
	assert.Equal(t, "2002", entries[1].JobCode)
}

func TestJobCacheRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobCacheRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, jobs.SourceRow{JobCode: "1001", JobName: "A", Active: true}, time.Now().UTC()))
	entry, err := repo.FindByCode(ctx, "1001")
	require.NoError(t, err)

	byID, err := repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.JobCode, byID.JobCode)

	_, err = repo.FindByID(ctx, 9999)
	assert.True(t, sharederrors.IsNotFoundError(err))
}
