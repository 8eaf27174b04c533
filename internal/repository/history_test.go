package repository

import (
	"bbsync/internal/db"
	"bbsync/internal/model"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, db.Init(filepath.Join(t.TempDir(), "test.db")))

	t.Cleanup(func() {
		if sqlDB, err := db.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
}

func result(filename string, failure model.FailureKind, err error) model.SyncResult {
	job := model.NewSyncJob("/w/"+filename, filename)
	job.CanonicalFilename = filename

	return model.SyncResult{
		Job:      job,
		Strategy: "single",
		RamUsage: 1.6,
		Failure:  failure,
		Err:      err,
		Duration: 15 * time.Millisecond,
	}
}

func TestHistoryRepository_SaveAndRecent(t *testing.T) {
	openTestDB(t)
	repo := NewHistoryRepository()

	require.NoError(t, repo.Save(result("a.js", model.FailureNone, nil)))
	require.NoError(t, repo.Save(result("b.js", model.FailureUnreachable, errors.New("connection refused"))))

	recent, err := repo.GetRecent(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	assert.Equal(t, "b.js", recent[0].Filename)
	assert.Equal(t, model.StatusFailed, recent[0].Status)
	assert.Equal(t, model.FailureUnreachable, recent[0].Failure)
	assert.Equal(t, "connection refused", recent[0].ErrMsg)

	assert.Equal(t, "a.js", recent[1].Filename)
	assert.Equal(t, model.StatusSuccess, recent[1].Status)
	assert.Equal(t, 1.6, recent[1].RamUsage)
	assert.Equal(t, int64(15), recent[1].DurationMs)

	limited, err := repo.GetRecent(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestHistoryRepository_Stats(t *testing.T) {
	openTestDB(t)
	repo := NewHistoryRepository()

	require.NoError(t, repo.Save(result("a.js", model.FailureNone, nil)))
	require.NoError(t, repo.Save(result("b.js", model.FailureNone, nil)))
	require.NoError(t, repo.Save(result("c.js", model.FailureTransform, errors.New("syntax"))))

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 3, Success: 2, Failed: 1}, stats)

	failed, err := repo.GetFailed(10)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "c.js", failed[0].Filename)
}
