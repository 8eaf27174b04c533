package model

import (
	"time"

	"gorm.io/gorm"
)

type SyncStatus string

const (
	StatusSuccess SyncStatus = "SUCCESS"
	StatusFailed  SyncStatus = "FAILED"
)

type History struct {
	gorm.Model
	JobID      string     `gorm:"not null;index"`
	Status     SyncStatus `gorm:"not null"`
	SrcPath    string     `gorm:"not null"`
	Filename   string
	Strategy   string
	Failure    FailureKind
	RamUsage   float64
	ErrMsg     string
	DurationMs int64
	SyncedAt   time.Time `gorm:"not null"`
}
