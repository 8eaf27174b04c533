package model

import (
	"time"

	"github.com/google/uuid"
)

type FailureKind string

const (
	FailureNone        FailureKind = ""
	FailureInvalidName FailureKind = "INVALID_NAME"
	FailureDisallowed  FailureKind = "DISALLOWED"
	FailureUnreadable  FailureKind = "UNREADABLE"
	FailureTransform   FailureKind = "TRANSFORM"
	FailureUnreachable FailureKind = "UNREACHABLE"
	FailureRejected    FailureKind = "REJECTED"
)

// SyncJob lives for exactly one sync attempt.
type SyncJob struct {
	ID                uuid.UUID
	SourcePath        string
	RelativePath      string
	CanonicalFilename string
}

func NewSyncJob(sourcePath, relativePath string) SyncJob {
	return SyncJob{
		ID:           uuid.New(),
		SourcePath:   sourcePath,
		RelativePath: relativePath,
	}
}

type SyncResult struct {
	Job      SyncJob
	Strategy string
	RamUsage float64
	Failure  FailureKind
	Err      error
	Duration time.Duration
}

func (r SyncResult) Succeeded() bool {
	return r.Err == nil && r.Failure == FailureNone
}
