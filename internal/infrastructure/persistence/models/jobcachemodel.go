package models

// JobCacheModel is the local mirror of the external jobs source.
// Rows are upserted by job_code during a refresh; rows absent from the
// source are kept but stay marked inactive by the source flag.
type JobCacheModel struct {
	ID              uint   `gorm:"primaryKey"`
	JobCode         string `gorm:"uniqueIndex;size:100;not null"`
	JobName         string `gorm:"size:255;not null"`
	Customer        string `gorm:"size:255;not null;default:''"`
	Active          bool   `gorm:"not null;default:true;index"`
	SourceUpdatedAt *int64
	RefreshedAt     int64 `gorm:"not null"`
}

func (JobCacheModel) TableName() string {
	return "jobs_cache"
}
