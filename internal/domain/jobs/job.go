// Package jobs models the local read-through cache of job metadata owned by
// an external system of record. Rows are created and updated exclusively by
// the synchronizer; ticket flows only read them.
package jobs

import "time"

// CacheEntry is one cached job, keyed by its natural key JobCode.
// SourceUpdatedAt is the external system's own timestamp; RefreshedAt is
// when this process last wrote the row.
type CacheEntry struct {
	ID              uint
	JobCode         string
	JobName         string
	Customer        string
	Active          bool
	SourceUpdatedAt *time.Time
	RefreshedAt     time.Time
}

// SourceRow is one job as fetched from the external source, before it is
// upserted into the cache.
type SourceRow struct {
	JobCode         string
	JobName         string
	Customer        string
	Active          bool
	SourceUpdatedAt *time.Time
}
