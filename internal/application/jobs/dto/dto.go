package dto

import "time"

// JobResponse is the external view of a cached job.
type JobResponse struct {
	ID              uint       `json:"id"`
	JobCode         string     `json:"job_code"`
	JobName         string     `json:"job_name"`
	Customer        string     `json:"customer,omitempty"`
	Active          bool       `json:"active"`
	SourceUpdatedAt *time.Time `json:"source_updated_at,omitempty"`
	RefreshedAt     time.Time  `json:"refreshed_at"`
}

// RefreshResult summarizes a completed cache refresh.
type RefreshResult struct {
	Source      string    `json:"source"`
	RowCount    int       `json:"row_count"`
	RefreshedAt time.Time `json:"refreshed_at"`
}
