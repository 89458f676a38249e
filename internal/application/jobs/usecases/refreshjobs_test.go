package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"scalehouse/internal/domain/jobs"
	"scalehouse/internal/infrastructure/persistence/models"
	"scalehouse/internal/infrastructure/repository"
	"scalehouse/internal/shared/db"
	sharederrors "scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
)

type mockSource struct {
	rows []jobs.SourceRow
	err  error
}

func (s *mockSource) Name() string { return "mock" }

func (s *mockSource) Fetch(ctx context.Context) ([]jobs.SourceRow, error) {
	return s.rows, s.err
}

func setupJobsTest(t *testing.T) (*gorm.DB, jobs.Repository, *db.TransactionManager) {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(&models.JobCacheModel{}))

	repo := repository.NewJobCacheRepository(database)
	return database, repo, db.NewTransactionManager(database)
}

func TestRefreshJobs_Success(t *testing.T) {
	_, repo, txManager := setupJobsTest(t)
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	source := &mockSource{rows: []jobs.SourceRow{
		{JobCode: "1001", JobName: "Main St Resurfacing", Customer: "City", Active: true, SourceUpdatedAt: &updated},
		{JobCode: "2002", JobName: "Quarry Haul", Active: false},
	}}

	uc := NewRefreshJobsUseCase(source, repo, txManager, time.Second, logger.NewLogger())
	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.RowCount)
	assert.Equal(t, "mock", result.Source)

	active, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "1001", active[0].JobCode)
	require.NotNil(t, active[0].SourceUpdatedAt)
	assert.True(t, active[0].SourceUpdatedAt.Equal(updated))
}

func TestRefreshJobs_RepeatedRefreshIsIdempotent(t *testing.T) {
	_, repo, txManager := setupJobsTest(t)
	source := &mockSource{rows: []jobs.SourceRow{
		{JobCode: "1001", JobName: "Main St Resurfacing", Active: true},
	}}

	uc := NewRefreshJobsUseCase(source, repo, txManager, time.Second, logger.NewLogger())
	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	source.rows[0].JobName = "Main St Resurfacing Phase 2"
	_, err = uc.Execute(context.Background())
	require.NoError(t, err)

	active, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Main St Resurfacing Phase 2", active[0].JobName)
}

func TestRefreshJobs_FetchFailureLeavesCacheUntouched(t *testing.T) {
	_, repo, txManager := setupJobsTest(t)

	good := &mockSource{rows: []jobs.SourceRow{{JobCode: "1001", JobName: "A", Active: true}}}
	uc := NewRefreshJobsUseCase(good, repo, txManager, time.Second, logger.NewLogger())
	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	bad := &mockSource{err: sharederrors.NewExternalSourceError("connection refused")}
	uc = NewRefreshJobsUseCase(bad, repo, txManager, time.Second, logger.NewLogger())
	_, err = uc.Execute(context.Background())
	require.Error(t, err)

	active, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestRefreshJobs_MalformedRowsRejectedBeforeWrite(t *testing.T) {
	_, repo, txManager := setupJobsTest(t)

	tests := []struct {
		name string
		rows []jobs.SourceRow
	}{
		{"empty result", nil},
		{"empty job code", []jobs.SourceRow{{JobCode: "", JobName: "A", Active: true}}},
		{"duplicate job code", []jobs.SourceRow{
			{JobCode: "1001", JobName: "A", Active: true},
			{JobCode: "1001", JobName: "B", Active: true},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRefreshJobsUseCase(&mockSource{rows: tt.rows}, repo, txManager, time.Second, logger.NewLogger())
			_, err := uc.Execute(context.Background())
			require.Error(t, err)
			appErr := sharederrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, sharederrors.ErrorTypeExternalSource, appErr.Type)
		})
	}

	// Nothing was written by any rejected refresh.
	active, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestRefreshJobs_UpsertFailureRollsBack(t *testing.T) {
	_, repo, txManager := setupJobsTest(t)

	source := &mockSource{rows: []jobs.SourceRow{
		{JobCode: "1001", JobName: "A", Active: true},
		{JobCode: "2002", JobName: "B", Active: true},
	}}
	failing := &failingRepo{Repository: repo, failOn: "2002"}
	uc := NewRefreshJobsUseCase(source, failing, txManager, time.Second, logger.NewLogger())

	_, err := uc.Execute(context.Background())
	require.Error(t, err)

	// The first row's upsert was rolled back with the failed one.
	active, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)
}

type failingRepo struct {
	jobs.Repository
	failOn string
}

func (r *failingRepo) Upsert(ctx context.Context, row jobs.SourceRow, refreshedAt time.Time) error {
	if row.JobCode == r.failOn {
		return fmt.Errorf("forced failure")
	}
	return r.Repository.Upsert(ctx, row, refreshedAt)
}
