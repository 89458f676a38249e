package jobs

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert inserts the row keyed on job_code, or overwrites
	// job_name/customer/active/source_updated_at and stamps refreshed_at
	// when the key already exists. Rows absent from a refresh are left
	// untouched.
	Upsert(ctx context.Context, row SourceRow, refreshedAt time.Time) error
	FindByID(ctx context.Context, id uint) (*CacheEntry, error)
	FindByCode(ctx context.Context, jobCode string) (*CacheEntry, error)
	ListActive(ctx context.Context) ([]*CacheEntry, error)
}

// Source fetches the full current job list from the external system of
// record. Implementations must fail fast rather than hang; callers bound
// the fetch with a context timeout.
type Source interface {
	Fetch(ctx context.Context) ([]SourceRow, error)
	Name() string
}
