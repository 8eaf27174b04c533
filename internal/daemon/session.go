package daemon

import (
	"bbsync/internal/config"
	"bbsync/internal/model"
	"sync"
	"time"
)

// Session tracks counters for one watch run.
type Session struct {
	mu        sync.RWMutex
	watchDir  string
	target    string
	startedAt time.Time
	synced    int
	failed    int
	inFlight  int
	lastSync  *time.Time
	lastFile  string
}

func NewSession(opts config.Options) *Session {
	return &Session{
		watchDir:  opts.WatchDir,
		target:    opts.APIAddr(),
		startedAt: time.Now(),
	}
}

func (s *Session) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight++
}

func (s *Session) RecordSync(result model.SyncResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight--
	s.lastSync = new(time.Now())
	s.lastFile = result.Job.CanonicalFilename
	if result.Succeeded() {
		s.synced++
	} else {
		s.failed++
	}
}

func (s *Session) Snapshot() model.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.SessionSnapshot{
		WatchDir:  s.watchDir,
		Target:    s.target,
		StartedAt: s.startedAt,
		Synced:    s.synced,
		Failed:    s.failed,
		InFlight:  s.inFlight,
		LastSync:  s.lastSync,
		LastFile:  s.lastFile,
	}
}
